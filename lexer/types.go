// SPDX-License-Identifier: MIT
package lexer

import (
	"golang.org/x/exp/slices"
)

type (
	// LexOperator is a single traversal step: an Identifier, a Pipe or a Generic.
	LexOperator interface {
		Renderer
		lexOperator()
	}

	// Identifier is a dotted path segment name.
	Identifier string

	// Pipe is reserved for a combinator stage, the scanners never produce it.
	Pipe []LexOperator

	// Generic is a bracketed index applied to the preceding segment.
	Generic struct {
		Index GenericObjectIndex
	}

	// GenericObjectIndex is the content of a bracket pair: a Wildcard or a GenericSlice.
	GenericObjectIndex interface {
		Renderer
		genericObjectIndex()
	}

	// Wildcard matches any element, produced by an empty bracket pair.
	Wildcard struct{}

	// GenericSlice holds one or more selectors applied together.
	GenericSlice []Slicer

	// Slicer is a single selector inside a GenericSlice: an Index, a Slice or an Ident.
	Slicer interface {
		Renderer
		slicer()
	}

	// Index selects a single position.
	Index uint

	// Slice selects an integer range.
	//
	// From & To are not validated against each other.
	Slice struct {
		From, To uint
	}

	// Ident is a bare string key, used when bracket content isn't a non-negative integer.
	Ident string

	// LexicalOperations is the ordered sequence of LexOperator(s) for a path expression.
	LexicalOperations []LexOperator
)

func (Identifier) lexOperator() {}
func (Pipe) lexOperator()       {}
func (Generic) lexOperator()    {}

func (Wildcard) genericObjectIndex()     {}
func (GenericSlice) genericObjectIndex() {}

func (Index) slicer() {}
func (Slice) slicer() {}
func (Ident) slicer() {}

// Equal reports whether two LexicalOperations hold structurally equal operators in the same order.
func (ops LexicalOperations) Equal(other LexicalOperations) bool {
	return slices.EqualFunc(ops, other, operatorEqual)
}

// Equal reports whether two Pipe(s) are structurally equal.
func (p Pipe) Equal(other Pipe) bool { return slices.EqualFunc(p, other, operatorEqual) }

// Equal reports whether two Generic(s) hold equal indices.
func (g Generic) Equal(other Generic) bool { return indexEqual(g.Index, other.Index) }

// Equal reports whether two GenericSlice(s) hold equal slicers in the same order.
func (gs GenericSlice) Equal(other GenericSlice) bool { return slices.Equal(gs, other) }

func operatorEqual(a, b LexOperator) bool {
	switch a := a.(type) {
	case Identifier:
		b, ok := b.(Identifier)
		return ok && a == b
	case Pipe:
		b, ok := b.(Pipe)
		return ok && a.Equal(b)
	case Generic:
		b, ok := b.(Generic)
		return ok && a.Equal(b)
	}

	return false
}

func indexEqual(a, b GenericObjectIndex) bool {
	switch a := a.(type) {
	case Wildcard:
		_, ok := b.(Wildcard)
		return ok
	case GenericSlice:
		b, ok := b.(GenericSlice)
		return ok && a.Equal(b)
	}

	return false
}
