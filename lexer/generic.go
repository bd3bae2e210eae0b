// SPDX-License-Identifier: MIT
package lexer

import (
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

type (
	// genericState is the state threaded across bracket scan steps.
	genericState struct {
		buffer strings.Builder
		escape bool

		slicers GenericSlice

		// rangeStart is the pending "from" bound, valid while hasRangeStart is set.
		rangeStart    uint
		hasRangeStart bool
	}
)

// lexGeneric scans the content of a bracket pair; the cursor sits past the GenericStart rune.
//
// The scan terminates on the matching GenericEnd.
func (l *Lexer) lexGeneric() (GenericObjectIndex, error) {
	state := &genericState{}

	for {
		r, ok := l.cursor.Next()
		if !ok {
			return nil, &EndOfQueryError{
				Expected:    string(GenericEnd),
				CharPointer: l.cursor.Consumed(),
				Lex:         l.cursor.Remaining(),
			}
		}

		if state.escape {
			state.buffer.WriteRune(r)
			state.escape = false

			continue
		}

		switch r {
		case Escape:
			state.escape = true
		case GenericEnd:
			if state.empty() {
				return Wildcard{}, nil
			}

			if state.buffer.Len() > 0 || state.hasRangeStart {
				if err := state.resolve(); err != nil {
					return nil, err
				}
			}
			if l.debug {
				l.logger.Debugf("lexer generic: %s", spew.Sdump(state.slicers))
			}

			return state.slicers, nil
		case GenericSplit:
			if state.unstarted() {
				return nil, l.unexpected(expectIntOrString, string(GenericSplit))
			}

			if err := state.resolve(); err != nil {
				return nil, err
			}
		case GenericRange:
			if state.unstarted() {
				return nil, l.unexpected(expectIntOrString, string(GenericRange))
			}

			from, err := parseUint(state.buffer.String())
			if err != nil {
				return nil, l.unexpected(expectInt, foundString)
			}
			state.rangeStart, state.hasRangeStart = from, true
			state.buffer.Reset()
		case Whitespace:
			// Insignificant.
		default:
			state.buffer.WriteRune(r)
		}
	}
}

func (l *Lexer) unexpected(expected, found string) error {
	return &UnexpectedCharacterError{
		Expected:    expected,
		Found:       found,
		CharPointer: l.cursor.Consumed(),
		Lex:         l.cursor.Remaining(),
	}
}

// empty reports whether the bracket scope holds nothing, a pending range start included.
func (s *genericState) empty() bool { return s.unstarted() && !s.hasRangeStart }

// unstarted reports whether neither text nor a resolved Slicer has been collected.
func (s *genericState) unstarted() bool { return s.buffer.Len() < 1 && len(s.slicers) < 1 }

// resolve finalizes the pending element into a Slicer & resets the buffer.
func (s *genericState) resolve() (err error) {
	collected := s.buffer.String()
	s.buffer.Reset()

	if s.hasRangeStart {
		var to uint
		if to, err = parseUint(collected); err != nil {
			err = &FailedToParseIntError{Err: err}
			return
		}

		s.slicers = append(s.slicers, Slice{From: s.rangeStart, To: to})
		s.rangeStart, s.hasRangeStart = 0, false

		return
	}

	if index, pErr := parseUint(collected); pErr == nil {
		s.slicers = append(s.slicers, Index(index))
		return
	}
	s.slicers = append(s.slicers, Ident(collected))

	return
}

// parseUint parses a base 10 unsigned integer, a single leading '+' is permitted.
func parseUint(s string) (uint, error) {
	u, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, strconv.IntSize)
	return uint(u), err
}
