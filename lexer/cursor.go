// SPDX-License-Identifier: MIT
package lexer

type (
	// cursor walks a rune slice forward, counting consumed runes.
	cursor struct {
		// source holds the decoded input.
		source []rune
		// index is the position of the next rune to consume; it doubles as the consumed count.
		index int
	}
)

func newCursor(source string) *cursor { return &cursor{source: []rune(source)} }

// Next consumes & returns the next rune, ok is false once the input is exhausted.
func (c *cursor) Next() (r rune, ok bool) {
	if c.index >= len(c.source) {
		return
	}

	r, ok = c.source[c.index], true
	c.index++

	return
}

// Consumed obtains the number of runes consumed.
func (c *cursor) Consumed() int { return c.index }

// Remaining obtains the unconsumed input.
func (c *cursor) Remaining() string { return string(c.source[c.index:]) }
