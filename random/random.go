// SPDX-License-Identifier: MIT

// Package random generates child-map fixtures for tests & benchmarks.
//
// Ids are digit paths: roots are single digits and a child extends its parent's id by one digit,
// so an id's length is its depth plus one.
package random

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/hierarchy/v4/childmap"
)

type (
	// Config defines the shape of generated forests.
	Config struct {
		Logger logrus.FieldLogger

		// Roots is the number of roots, between 1 & 9.
		Roots int
		// Depth is the deepest level generated; roots are level 0.
		Depth int
		// MaxChildren caps the children of a node, between 1 & 9.
		MaxChildren int
		// Full gives every node above Depth exactly MaxChildren children.
		Full bool

		Seed uint64

		// Workers sizes the GenerateBatch pool.
		Workers int
	}

	// Option defines the generator functional option type.
	Option func(*Config)
)

const (
	maxDigit = 9

	defRoots       = 2
	defDepth       = 3
	defMaxChildren = 3
	defWorkers     = 4
)

// Generation errors.
var (
	ErrInvalidConfig = errors.New("invalid generator config")
)

// DefConfig configures the generator defaults.
func DefConfig() *Config {
	return &Config{
		Logger:      logrus.StandardLogger(),
		Roots:       defRoots,
		Depth:       defDepth,
		MaxChildren: defMaxChildren,
		Workers:     defWorkers,
	}
}

// Validate checks the Config bounds.
func (c *Config) Validate() (err error) {
	switch {
	case c.Roots < 1 || c.Roots > maxDigit:
		err = fmt.Errorf("%w: roots %d", ErrInvalidConfig, c.Roots)
	case c.MaxChildren < 1 || c.MaxChildren > maxDigit:
		err = fmt.Errorf("%w: max children %d", ErrInvalidConfig, c.MaxChildren)
	case c.Depth < 0:
		err = fmt.Errorf("%w: depth %d", ErrInvalidConfig, c.Depth)
	case c.Workers < 1:
		err = fmt.Errorf("%w: workers %d", ErrInvalidConfig, c.Workers)
	}

	return
}

// WithRoots configures the number of roots.
func WithRoots(n int) Option { return func(c *Config) { c.Roots = n } }

// WithDepth configures the deepest generated level.
func WithDepth(depth int) Option { return func(c *Config) { c.Depth = depth } }

// WithMaxChildren configures the children cap.
func WithMaxChildren(n int) Option { return func(c *Config) { c.MaxChildren = n } }

// WithFull configures full forests.
func WithFull(full bool) Option { return func(c *Config) { c.Full = full } }

// WithSeed configures the random seed.
func WithSeed(seed uint64) Option { return func(c *Config) { c.Seed = seed } }

// WithWorkers configures the GenerateBatch pool size.
func WithWorkers(n int) Option { return func(c *Config) { c.Workers = n } }

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option { return func(c *Config) { c.Logger = logger } }

func newConfig(opts []Option) (cfg *Config, err error) {
	cfg = DefConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	err = cfg.Validate()

	return
}

// Generate creates a random forest child-map; leaves are recorded only as children, except for
// childless roots.
//
// The same options always generate the same map.
func Generate(opts ...Option) (*childmap.ChildMap[string], error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	return generate(cfg, cfg.Seed), nil
}

func generate(cfg *Config, seed uint64) *childmap.ChildMap[string] {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	m := childmap.New[string]()

	level := make([]string, 0, cfg.Roots)
	for index := 1; index <= cfg.Roots; index++ {
		level = append(level, strconv.Itoa(index))
	}

	for depth := 0; len(level) > 0; depth++ {
		var next []string
		for _, id := range level {
			if depth == 0 {
				m.Add(id)
			}
			if depth >= cfg.Depth {
				continue
			}

			count := cfg.MaxChildren
			if !cfg.Full {
				count = rng.IntN(cfg.MaxChildren + 1)
			}
			for index := 1; index <= count; index++ {
				child := id + strconv.Itoa(index)
				m.Add(id, child)
				next = append(next, child)
			}
		}
		level = next
	}

	return m
}

// GenerateBatch creates n maps concurrently on a worker pool.
//
// The map at index i is the one Generate creates with the configured seed plus i.
func GenerateBatch(ctx context.Context, n int, opts ...Option) (maps []*childmap.ChildMap[string], err error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return
	}

	pool, err := ants.NewPool(cfg.Workers, ants.WithLogger(cfg.Logger))
	if err != nil {
		return nil, fmt.Errorf("worker pool: %w", err)
	}
	defer pool.Release()

	maps = make([]*childmap.ChildMap[string], n)
	wg := new(sync.WaitGroup)

	for index := 0; index < n; index++ {
		if err = ctx.Err(); err != nil {
			break
		}

		wg.Add(1)
		index := index
		if err = pool.Submit(func() {
			defer wg.Done()
			maps[index] = generate(cfg, cfg.Seed+uint64(index))
		}); err != nil {
			wg.Done()
			err = fmt.Errorf("submit: %w", err)
			break
		}
	}
	wg.Wait()

	if err != nil {
		return nil, err
	}

	return
}
