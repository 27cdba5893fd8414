/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

// Cursor reveals an already computed result one element at a time. The
// caller owns it; the draw itself always runs to completion first.
type Cursor[T any] struct {
	items []T
	pos   int
}

func NewCursor[T any](items []T) *Cursor[T] {
	return &Cursor[T]{items: items}
}

// Next returns the next element, or false once everything is revealed.
func (c *Cursor[T]) Next() (T, bool) {
	var zero T
	if c.pos >= len(c.items) {
		return zero, false
	}
	item := c.items[c.pos]
	c.pos++
	return item, true
}

// Revealed returns the elements handed out so far.
func (c *Cursor[T]) Revealed() []T {
	return c.items[:c.pos]
}

func (c *Cursor[T]) Remaining() int {
	return len(c.items) - c.pos
}

func (c *Cursor[T]) Reset() {
	c.pos = 0
}
