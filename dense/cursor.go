// SPDX-License-Identifier: MIT

package dense

import (
	"fmt"

	"github.com/katalvlaran/fieldkit/scalar"
)

const panicCursorInvalid = "dense: cursor is not on an element"

// Cursor is a position handle into a Vector or a matrix row.
// It supports forward (Next) and reverse (Prev) traversal, reports its index,
// and reads or writes the element it points at. Writes go straight to the
// underlying storage.
//
//	for c := v.Begin(); c.Valid(); c.Next() {
//		*c.Ref() *= 2
//	}
//
// Value, Set and Ref panic when the cursor is not Valid, like indexing past
// the end of a slice.
type Cursor[K scalar.Scalar] struct {
	data []K
	pos  int
}

// Valid reports whether the cursor points at an element.
func (c *Cursor[K]) Valid() bool { return c.pos >= 0 && c.pos < len(c.data) }

// Index returns the current position.
func (c *Cursor[K]) Index() int { return c.pos }

// Next moves one element forward.
func (c *Cursor[K]) Next() { c.pos++ }

// Prev moves one element backward.
func (c *Cursor[K]) Prev() { c.pos-- }

// Value returns the current element.
func (c *Cursor[K]) Value() K { return *c.Ref() }

// Set overwrites the current element.
func (c *Cursor[K]) Set(x K) { *c.Ref() = x }

// Ref returns a pointer to the current element for in-place updates.
func (c *Cursor[K]) Ref() *K {
	if !c.Valid() {
		panic(fmt.Sprintf("%s (index %d)", panicCursorInvalid, c.pos))
	}

	return &c.data[c.pos]
}
