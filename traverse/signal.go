// SPDX-License-Identifier: MIT
package traverse

import (
	"errors"
	"fmt"
)

type (
	// Signal directs the traversal from within a VisitFunc.
	//
	// A Signal is only valid for the duration of the VisitFunc call that received it.
	Signal[T any] struct {
		node  T
		depth int

		output  outputState
		descent descentState
		stopped bool

		// pending holds the nodes queued through Next.
		pending []T
		// limit caps the number of queued nodes, zero is unbounded.
		limit int

		err error
	}

	outputState  uint8
	descentState uint8
)

const (
	outputDefault outputState = iota
	outputSkipped
	outputYielded
)

const (
	descentDefault descentState = iota
	descentExpanded
	descentPruned
)

// Signal protocol errors.
var (
	ErrSignalConflict = errors.New("conflicting traversal signals")
	ErrBranching      = errors.New("sequence element has more than one successor")
)

// Node retrieves the node being visited.
func (s *Signal[T]) Node() T { return s.node }

// Depth retrieves the number of levels between the node and the traversal roots.
func (s *Signal[T]) Depth() int { return s.depth }

// Next queues nodes to visit after the current one; calls accumulate.
func (s *Signal[T]) Next(nodes ...T) error {
	if s.descent == descentPruned {
		return s.conflict("next", "prune")
	}
	if s.limit > 0 && len(s.pending)+len(nodes) > s.limit {
		return s.fail(fmt.Errorf("%w: %d queued", ErrBranching, len(s.pending)+len(nodes)))
	}

	s.descent = descentExpanded
	s.pending = append(s.pending, nodes...)

	return nil
}

// Skip omits the current node from the output; queued nodes are still visited.
func (s *Signal[T]) Skip() error {
	if s.output == outputYielded {
		return s.conflict("skip", "yield")
	}
	s.output = outputSkipped

	return nil
}

// Yield affirms that the current node is part of the output.
func (s *Signal[T]) Yield() error {
	if s.output == outputSkipped {
		return s.conflict("yield", "skip")
	}
	s.output = outputYielded

	return nil
}

// Prune stops the traversal from descending past the current node.
func (s *Signal[T]) Prune() error {
	if s.descent == descentExpanded {
		return s.conflict("prune", "next")
	}
	s.descent = descentPruned
	s.pending = nil

	return nil
}

// Stop discards every pending node, ending the traversal after the current node.
func (s *Signal[T]) Stop() { s.stopped = true }

// Err retrieves the first protocol violation recorded on the Signal.
func (s *Signal[T]) Err() error { return s.err }

func (s *Signal[T]) conflict(call, previous string) error {
	return s.fail(fmt.Errorf("%w: %s after %s on (%v)", ErrSignalConflict, call, previous, s.node))
}

// fail records the first error; the traversal aborts with it once the VisitFunc returns.
func (s *Signal[T]) fail(err error) error {
	if s.err == nil {
		s.err = err
	}

	return err
}
