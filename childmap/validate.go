// SPDX-License-Identifier: MIT
package childmap

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"gitlab.com/fisherprime/hierarchy/v4/traverse"
)

// Validation errors.
var (
	ErrMultipleParents = errors.New("has multiple parents")
	ErrSelfLink        = errors.New("is its own child")
	ErrUnreachable     = errors.New("is unreachable from every root")
)

// Validate checks that m describes a forest.
//
// Every violation is reported, aggregated in a *multierror.Error.
func Validate[K comparable](m *ChildMap[K]) error {
	var result *multierror.Error

	for child, parents := range ParentMap(m).All() {
		if len(parents) > 1 {
			result = multierror.Append(result, fmt.Errorf("(%v) %w %v", child, ErrMultipleParents, parents))
		}
	}

	for parent, set := range m.entries.All() {
		if set.Has(parent) {
			result = multierror.Append(result, fmt.Errorf("(%v) %w", parent, ErrSelfLink))
		}
	}

	reached := make(map[K]struct{})
	for id := range traverse.Graph(m.RootIDs(), m.next, traverse.WithCycleDetection(true)).Values() {
		reached[id] = struct{}{}
	}
	for _, id := range m.IDs() {
		if _, ok := reached[id]; !ok {
			result = multierror.Append(result, fmt.Errorf("(%v) %w", id, ErrUnreachable))
		}
	}

	return result.ErrorOrNil()
}
