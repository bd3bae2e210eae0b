// SPDX-License-Identifier: MIT
package lexer

import (
	"errors"
	"fmt"
)

type (
	// LexerError is implemented by every error the scanners return.
	LexerError interface {
		error
		lexerError()
	}

	// EndOfQueryError is returned when the input is exhausted before a required terminator.
	EndOfQueryError struct {
		Expected    string
		CharPointer int    // Runes consumed when the input ran out.
		Lex         string // Unconsumed input.
	}

	// FailedToParseIntError wraps the integer parse failure of a range bound.
	FailedToParseIntError struct {
		Err error
	}

	// UnexpectedCharacterError is returned when a structural rune appears where it isn't permitted.
	UnexpectedCharacterError struct {
		Expected    string
		Found       string
		CharPointer int    // Runes consumed, including the offending rune.
		Lex         string // Unconsumed input.
	}
)

// Lexing errors.
var (
	ErrEndOfQuery          = errors.New("end of query")
	ErrFailedToParseInt    = errors.New("failed to parse integer")
	ErrUnexpectedCharacter = errors.New("unexpected character")
)

const (
	expectIntOrString = "Integer/String"
	expectInt         = "Integer"
	foundString       = "String"
)

func (*EndOfQueryError) lexerError()          {}
func (*FailedToParseIntError) lexerError()    {}
func (*UnexpectedCharacterError) lexerError() {}

func (e *EndOfQueryError) Error() string {
	return fmt.Sprintf("%v: expected %q at character %d, remaining %q", ErrEndOfQuery, e.Expected, e.CharPointer, e.Lex)
}

// Unwrap returns ErrEndOfQuery.
func (e *EndOfQueryError) Unwrap() error { return ErrEndOfQuery }

func (e *FailedToParseIntError) Error() string {
	return fmt.Sprintf("%v: %v", ErrFailedToParseInt, e.Err)
}

// Unwrap returns ErrFailedToParseInt & the inner parse error.
func (e *FailedToParseIntError) Unwrap() []error { return []error{ErrFailedToParseInt, e.Err} }

func (e *UnexpectedCharacterError) Error() string {
	return fmt.Sprintf("%v: expected %s, found %q at character %d, remaining %q",
		ErrUnexpectedCharacter, e.Expected, e.Found, e.CharPointer, e.Lex)
}

// Unwrap returns ErrUnexpectedCharacter.
func (e *UnexpectedCharacterError) Unwrap() error { return ErrUnexpectedCharacter }
