// SPDX-License-Identifier: MIT
package hierarchy

import (
	"github.com/sirupsen/logrus"
)

type (
	// Config defines configuration options for a Hierarchy.
	Config struct {
		Logger logrus.FieldLogger

		// Debug enables noisy indexing & query logs.
		Debug bool
	}

	// Option defines the Hierarchy functional option type.
	Option func(*Config)
)

var fLogger logrus.FieldLogger = logrus.NewEntry(logrus.New())

// SetLogger configures a logrus.FieldLogger for the package.
//
// Hierarchies created afterwards default to it.
func SetLogger(l logrus.FieldLogger) { fLogger = l }

// DefConfig configures the Hierarchy defaults.
func DefConfig() *Config { return &Config{Logger: fLogger} }

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option { return func(c *Config) { c.Logger = logger } }

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(c *Config) { c.Debug = debug } }

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option { return func(c *Config) { *c = cfg } }

func newConfig(opts []Option) *Config {
	cfg := DefConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.Logger == nil {
		cfg.Logger = fLogger
	}

	return cfg
}
