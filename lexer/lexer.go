// SPDX-License-Identifier: MIT
package lexer

import (
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
)

type (
	// Lexer converts a path expression into LexicalOperations.
	//
	// A Lexer is single use, it consumes its source in one Lex call.
	Lexer struct {
		logger        logrus.FieldLogger
		debug         bool
		flushTrailing bool

		cursor *cursor
	}

	// scanState is the state threaded across top-level scan steps.
	scanState struct {
		buffer strings.Builder
		escape bool

		operations LexicalOperations
	}
)

// New creates a Lexer for the source path expression.
func New(source string, opts ...Option) *Lexer {
	l := &Lexer{
		logger: logrus.New(),
		cursor: newCursor(source),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Compile converts a path expression into LexicalOperations.
//
// e.g. `.metadata[1,2,4-6,hello]` yields:
//
//	Identifier("metadata"), Generic{GenericSlice{Index(1), Index(2), Slice{4, 6}, Ident("hello")}}
func Compile(source string, opts ...Option) (LexicalOperations, error) {
	return New(source, opts...).Lex()
}

// Logger obtains the logger.
func (l *Lexer) Logger() logrus.FieldLogger { return l.logger }

// Lex scans the whole source.
//
// Identifier text still buffered at the end of the source is discarded unless the Lexer was
// created using WithTrailingIdentifier(true).
func (l *Lexer) Lex() (LexicalOperations, error) {
	state := &scanState{operations: make(LexicalOperations, 0, defBufferSize)}

	for {
		r, ok := l.cursor.Next()
		if !ok {
			break
		}

		if state.escape {
			state.buffer.WriteRune(r)
			state.escape = false

			continue
		}

		switch r {
		case Escape:
			state.escape = true
		case Separator:
			l.flush(state)
		case GenericStart:
			l.flush(state)

			index, err := l.lexGeneric()
			if err != nil {
				return nil, err
			}
			l.emit(state, Generic{Index: index})
		case Whitespace:
			// Insignificant.
		default:
			state.buffer.WriteRune(r)
		}
	}

	if l.flushTrailing {
		l.flush(state)
	} else if l.debug && state.buffer.Len() > 0 {
		l.logger.Debugf("lexer discarding trailing text: %q", state.buffer.String())
	}

	return state.operations, nil
}

// flush emits the buffered text as an Identifier, skipping empty buffers.
func (l *Lexer) flush(state *scanState) {
	if state.buffer.Len() < 1 {
		return
	}

	l.emit(state, Identifier(state.buffer.String()))
	state.buffer.Reset()
}

func (l *Lexer) emit(state *scanState, op LexOperator) {
	if l.debug {
		l.logger.Debugf("lexer emit: %s at character %d", spew.Sprint(op), l.cursor.Consumed())
	}

	state.operations = append(state.operations, op)
}
