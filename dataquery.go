// SPDX-License-Identifier: MIT

// Package dataquery compiles path expressions such as `.metadata[1,2,4-6,hello]` into the
// lexer.LexicalOperations consumed by a path-query evaluator.
package dataquery

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/dataquery/lexer"
)

var fLogger logrus.FieldLogger = logrus.NewEntry(logrus.New())

// SetLogger configures a logrus.FieldLogger for the package.
func SetLogger(l logrus.FieldLogger) { fLogger = l }

// Compile converts a path expression into lexer.LexicalOperations.
func Compile(source string) (lexer.LexicalOperations, error) {
	return lexer.Compile(source, lexer.WithLogger(fLogger))
}

// CompileWith converts a path expression into lexer.LexicalOperations using cfg.
func CompileWith(cfg *Config, source string) (lexer.LexicalOperations, error) {
	cfg.Validate()

	return lexer.Compile(source, cfg.options()...)
}

// MustCompile is like Compile but panics if the expression can't be compiled.
//
// It simplifies initialization of global variables holding compiled expressions.
func MustCompile(source string) lexer.LexicalOperations {
	ops, err := Compile(source)
	if err != nil {
		panic(fmt.Sprintf("dataquery: Compile(%q): %v", source, err))
	}

	return ops
}
