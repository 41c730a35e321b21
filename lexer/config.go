// SPDX-License-Identifier: MIT
package lexer

import (
	"github.com/sirupsen/logrus"
)

type (
	// Config defines configuration options for the Lexer's operations.
	//
	// The same Config drives rendering, so that rendered output lexes back.
	Config struct {
		Logger    logrus.FieldLogger
		Debug     bool
		Separator rune
		Splitter  rune
		LineEnd   rune
	}

	// Option defines the Lexer functional option type.
	Option func(*Config)
)

const (
	// DefaultSeparator is the rune between a parent & its children.
	DefaultSeparator = ':'

	// DefaultSplitter is the rune between sibling children.
	DefaultSplitter = ','

	// DefaultLineEnd is the rune terminating an entry.
	DefaultLineEnd = '\n'

	emptyRune rune = 0
)

// DefaultConfig configures the lexer's defaults.
func DefaultConfig() *Config {
	return &Config{
		Separator: DefaultSeparator,
		Splitter:  DefaultSplitter,
		LineEnd:   DefaultLineEnd,
		Logger:    logrus.New(),
	}
}

// NewConfig applies opts over the defaults.
func NewConfig(opts ...Option) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	cfg.Validate()

	return cfg
}

// Validate populates missing Config entries with defaults.
func (c *Config) Validate() {
	if c.Separator == emptyRune {
		c.Separator = DefaultSeparator
	}
	if c.Splitter == emptyRune {
		c.Splitter = DefaultSplitter
	}
	if c.LineEnd == emptyRune {
		c.LineEnd = DefaultLineEnd
	}
	if c.Logger == nil {
		c.Logger = logrus.New()
	}
}

// IsReserved checks whether r can not be part of a value.
//
// NUL is reserved.
func (c *Config) IsReserved(r rune) bool {
	return r == emptyRune || r == c.Separator || r == c.Splitter || r == c.LineEnd || isWhitespace(r)
}

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(c *Config) { c.Debug = debug } }

// WithSeparator configures the parent/children separator.
func WithSeparator(r rune) Option { return func(c *Config) { c.Separator = r } }

// WithSplitter configures the sibling splitter.
func WithSplitter(r rune) Option { return func(c *Config) { c.Splitter = r } }

// WithLineEnd configures the entry terminator.
func WithLineEnd(r rune) Option { return func(c *Config) { c.LineEnd = r } }

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option { return func(c *Config) { c.Logger = logger } }
