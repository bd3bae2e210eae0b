// SPDX-License-Identifier: MIT
package dataquery

import (
	"runtime"

	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/dataquery/lexer"
)

type (
	// Config defines configuration options for compilation.
	Config struct {
		Logger logrus.FieldLogger

		// Debug enables lexer tracing on Logger.
		Debug bool

		// TrailingIdentifier emits identifier text left at the end of a path expression.
		TrailingIdentifier bool

		// Workers bounds the goroutines used by CompileAll.
		Workers int
	}
)

// DefaultConfig configures compilation using the package logger.
func DefaultConfig() *Config {
	return &Config{
		Logger:  fLogger,
		Workers: runtime.GOMAXPROCS(0),
	}
}

// Validate populates missing Config entries with defaults.
func (c *Config) Validate() {
	if c.Logger == nil {
		c.Logger = fLogger
	}
	if c.Workers < 1 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
}

// options translates the Config to lexer options.
func (c *Config) options() []lexer.Option {
	return []lexer.Option{
		lexer.WithLogger(c.Logger),
		lexer.WithDebug(c.Debug),
		lexer.WithTrailingIdentifier(c.TrailingIdentifier),
	}
}
