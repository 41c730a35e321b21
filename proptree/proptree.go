// SPDX-License-Identifier: MIT

// Package proptree derives child-maps from nested key-value documents.
//
// Every key becomes an id, the keys of a nested object become its children. Maps carry no order
// so their keys are visited sorted; YAML & TOML documents keep the order they were written in.
package proptree

import (
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"gitlab.com/fisherprime/hierarchy/v4/childmap"
)

type (
	// Config defines configuration options for property tree ingestion.
	Config struct {
		Logger logrus.FieldLogger
		Debug  bool

		// Include filters the properties; an excluded object is not descended.
		Include func(key string, value any) bool

		// PathSeparator, when set, makes ids the joined key paths.
		PathSeparator string
	}

	// Option defines the ingestion functional option type.
	Option func(*Config)

	// tree accumulates the child-map of a document.
	tree struct {
		cfg *Config
		m   *childmap.ChildMap[string]
	}
)

// Ingestion errors.
var (
	ErrNotObject = errors.New("document is not an object")
)

// DefConfig configures the ingestion defaults.
func DefConfig() *Config {
	return &Config{
		Logger:  logrus.StandardLogger(),
		Include: func(string, any) bool { return true },
	}
}

// WithInclude configures the property filter.
func WithInclude(fn func(key string, value any) bool) Option {
	return func(c *Config) { c.Include = fn }
}

// WithPathIDs makes ids the key paths joined by separator, keeping repeated keys apart.
func WithPathIDs(separator string) Option { return func(c *Config) { c.PathSeparator = separator } }

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option { return func(c *Config) { c.Logger = logger } }

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(c *Config) { c.Debug = debug } }

func newTree(opts []Option) *tree {
	cfg := DefConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.Include == nil {
		cfg.Include = DefConfig().Include
	}

	return &tree{cfg: cfg, m: childmap.New[string]()}
}

// FromMap derives the child-map of obj.
//
// Keys are visited in sorted order at every level. Values of type map[string]any are descended.
func FromMap(obj map[string]any, opts ...Option) *childmap.ChildMap[string] {
	t := newTree(opts)
	t.walkMap(nil, obj)

	return t.m
}

func (t *tree) walkMap(parent []string, obj map[string]any) {
	keys := maps.Keys(obj)
	slices.Sort(keys)

	for _, key := range keys {
		value := obj[key]

		path, ok := t.add(parent, key, value)
		if !ok {
			continue
		}
		if nested, isMap := value.(map[string]any); isMap {
			t.walkMap(path, nested)
		}
	}
}

// add records key under parent, reporting false for excluded keys.
func (t *tree) add(parent []string, key string, value any) (path []string, ok bool) {
	if !t.cfg.Include(key, value) {
		if t.cfg.Debug {
			t.cfg.Logger.Debugf("proptree: excluded (%s)", t.id(append(parent, key)))
		}
		return
	}

	path = append(slices.Clip(parent), key)

	// Nested leaves are recorded as children alone.
	id := t.id(path)
	if len(parent) > 0 {
		t.m.Add(t.id(parent), id)
	} else {
		t.m.Add(id)
	}

	return path, true
}

func (t *tree) id(path []string) string {
	if t.cfg.PathSeparator == "" {
		return path[len(path)-1]
	}

	return strings.Join(path, t.cfg.PathSeparator)
}
