// SPDX-License-Identifier: MIT
package lexer

import (
	"fmt"
	"strconv"
	"strings"
)

type (
	// Renderer is implemented by values with a canonical constructor expression.
	Renderer interface {
		GoString() string
	}
)

const qualifier = "lexer."

// Render produces the canonical Go constructor expression for a value.
func Render(r Renderer) string { return r.GoString() }

// GoString renders an Identifier.
func (i Identifier) GoString() string { return qualifier + "Identifier(" + strconv.Quote(string(i)) + ")" }

// GoString renders a Pipe.
func (p Pipe) GoString() string { return renderList[LexOperator]("Pipe", p) }

// GoString renders a Generic.
func (g Generic) GoString() string {
	index := "nil"
	if g.Index != nil {
		index = g.Index.GoString()
	}

	return qualifier + "Generic{Index: " + index + "}"
}

// GoString renders a Wildcard.
func (Wildcard) GoString() string { return qualifier + "Wildcard{}" }

// GoString renders a GenericSlice.
func (gs GenericSlice) GoString() string { return renderList[Slicer]("GenericSlice", gs) }

// GoString renders an Index.
func (i Index) GoString() string { return fmt.Sprintf("%sIndex(%d)", qualifier, uint(i)) }

// GoString renders a Slice.
func (s Slice) GoString() string {
	return fmt.Sprintf("%sSlice{From: %d, To: %d}", qualifier, s.From, s.To)
}

// GoString renders an Ident.
func (i Ident) GoString() string { return qualifier + "Ident(" + strconv.Quote(string(i)) + ")" }

// GoString renders LexicalOperations.
func (ops LexicalOperations) GoString() string { return renderList[LexOperator]("LexicalOperations", ops) }

// renderList renders a braced, comma-joined sequence of element renderings.
func renderList[T Renderer](name string, list []T) string {
	var buffer strings.Builder

	buffer.WriteString(qualifier)
	buffer.WriteString(name)
	buffer.WriteByte('{')
	for index := range list {
		if index > 0 {
			buffer.WriteString(", ")
		}
		buffer.WriteString(renderElement(list[index]))
	}
	buffer.WriteByte('}')

	return buffer.String()
}

// renderElement renders a list element, nil interface values included.
func renderElement[T Renderer](element T) string {
	if Renderer(element) == nil {
		return "nil"
	}

	return element.GoString()
}
