// SPDX-License-Identifier: MIT
package childmap

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"gitlab.com/fisherprime/hierarchy/v4/lexer"
)

// Text format errors.
var (
	ErrInvalidID = errors.New("invalid id")
	ErrSyntax    = errors.New("syntax error")
)

type parseState uint8

const (
	stateLineStart parseState = iota
	stateParent
	stateSeparator
	stateChild
	stateSplitter
)

// Render renders m as text, one entry per line.
//
// A line holds a parent, the separator & its splitter separated children; empty entries are a bare
// id. Ids that are empty or hold a reserved rune fail with ErrInvalidID.
func Render[K comparable](m *ChildMap[K], opts ...lexer.Option) (string, error) {
	return render(m, lexer.NewConfig(opts...), true)
}

func render[K comparable](m *ChildMap[K], cfg *lexer.Config, strict bool) (text string, err error) {
	if cfg == nil {
		cfg = lexer.DefaultConfig()
	}

	var b strings.Builder
	write := func(id K) {
		s := fmt.Sprint(id)
		if strict && err == nil && (s == "" || strings.ContainsFunc(s, cfg.IsReserved)) {
			err = fmt.Errorf("%w (%q)", ErrInvalidID, s)
		}
		b.WriteString(s)
	}

	for parent, set := range m.entries.All() {
		write(parent)

		first := true
		for child := range set.All() {
			if first {
				b.WriteRune(cfg.Separator)
				first = false
			} else {
				b.WriteRune(cfg.Splitter)
			}
			write(child)
		}
		b.WriteRune(cfg.LineEnd)
	}

	if err != nil {
		return
	}
	text = b.String()

	return
}

// Parse reads a rendered ChildMap from src.
//
// Blank lines are ignored, a parent followed by a separator & no children is an empty entry.
// Repeated parents merge their children.
func Parse(ctx context.Context, src io.Reader, opts ...lexer.Option) (m *ChildMap[string], err error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	l := lexer.New(bufio.NewReader(src), opts...)
	go l.Lex(ctx)

	cfg := l.Config()
	m = New[string]()

	var parent string
	state := stateLineStart
	for {
		item, ok := l.Item()
		if !ok {
			// The lexer only stops short of EOF when cancelled.
			return nil, ctx.Err()
		}

		if cfg.Debug {
			cfg.Logger.Debugf("parse: state %d, item %s %q", state, item.ID, item.Val)
		}

		switch item.ID {
		case lexer.ItemError:
			return nil, fmt.Errorf("line %d: %w", item.Line, item.Err)
		case lexer.ItemLineEnd, lexer.ItemEOF:
			switch state {
			case stateParent, stateSeparator:
				m.Add(parent)
			case stateSplitter:
				return nil, unexpected(item)
			}

			if item.ID == lexer.ItemEOF {
				return m, nil
			}
			state = stateLineStart
		case lexer.ItemValue:
			switch state {
			case stateLineStart:
				parent = item.Val
				state = stateParent
			case stateSeparator, stateSplitter:
				m.Add(parent, item.Val)
				state = stateChild
			default:
				return nil, unexpected(item)
			}
		case lexer.ItemSeparator:
			if state != stateParent {
				return nil, unexpected(item)
			}
			state = stateSeparator
		case lexer.ItemSplitter:
			if state != stateChild {
				return nil, unexpected(item)
			}
			state = stateSplitter
		default:
			return nil, unexpected(item)
		}
	}
}

// ParseString reads a rendered ChildMap from s.
func ParseString(ctx context.Context, s string, opts ...lexer.Option) (*ChildMap[string], error) {
	return Parse(ctx, strings.NewReader(s), opts...)
}

func unexpected(item lexer.Item) error {
	return fmt.Errorf("line %d: %w: unexpected %s %q", item.Line, ErrSyntax, item.ID, item.Val)
}
