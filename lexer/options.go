// SPDX-License-Identifier: MIT
package lexer

import (
	"github.com/sirupsen/logrus"
)

type (
	// Option defines the Lexer functional option type.
	Option func(*Lexer)
)

// Lexical markers.
const (
	// Separator delimits identifiers.
	Separator = '.'

	// Escape causes the next rune to be taken literally.
	Escape = '\\'

	// Whitespace is dropped unless escaped.
	Whitespace = ' '

	// Generic markers delimit a bracket scope, its elements & ranges.
	GenericStart = '['
	GenericSplit = ','
	GenericRange = '-'
	GenericEnd   = ']'

	// Pipe & capsule markers are reserved for a combinator stage; neither scanner reads them.
	PipeMarker   = '|'
	CapsuleStart = '('
	CapsuleEnd   = ')'

	defBufferSize = 16
)

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(l *Lexer) { l.debug = debug } }

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(l *Lexer) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithTrailingIdentifier configures whether identifier text still buffered when the input is
// exhausted is emitted.
//
// Disabled by default: only a Separator or GenericStart flushes an identifier.
func WithTrailingIdentifier(flush bool) Option {
	return func(l *Lexer) { l.flushTrailing = flush }
}
