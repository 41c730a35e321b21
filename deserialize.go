// SPDX-License-Identifier: MIT
package hierarchy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"gitlab.com/fisherprime/hierarchy/v4/childmap"
	"gitlab.com/fisherprime/hierarchy/v4/lexer"
)

// Deserialization errors.
var (
	ErrEmptyDeserializationSrc = errors.New("empty deserialization source")
	ErrInvalidHierarchySrc     = errors.New("invalid hierarchy source")
)

// Deserialize reads a serialized id Hierarchy from input.
func Deserialize(ctx context.Context, input string, opts ...Option) (*Hierarchy[string, string], error) {
	if strings.TrimSpace(input) == "" {
		return nil, ErrEmptyDeserializationSrc
	}

	return DeserializeFrom(ctx, strings.NewReader(input), nil, opts...)
}

// DeserializeFrom reads a serialized id Hierarchy from src, lexing with lexOpts.
func DeserializeFrom(ctx context.Context, src io.Reader, lexOpts []lexer.Option, opts ...Option) (h *Hierarchy[string, string], err error) {
	cfg := newConfig(opts)
	lexOpts = append([]lexer.Option{lexer.WithLogger(cfg.Logger), lexer.WithDebug(cfg.Debug)}, lexOpts...)

	m, err := childmap.Parse(ctx, src, lexOpts...)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrInvalidHierarchySrc, err)
		return
	}
	if m.Len() < 1 {
		err = ErrEmptyDeserializationSrc
		return
	}

	if h, err = AssembleIDHierarchy(m, WithConfig(*cfg)); err != nil {
		err = fmt.Errorf("%w: %w", ErrInvalidHierarchySrc, err)
		return
	}

	if cfg.Debug {
		cfg.Logger.Debugf("hierarchy: deserialized roots %v", h.RootIDs())
	}

	return
}
