/*
 * Copyright (c) 2024-present Opalbase, Ltd.
 */

package index

// Row is one row produced by an index lookup.
type Row struct {
	// Position of the row within its table storage
	Pos int

	Values []any
}

// # Cursor
//
// Cursor iterates the rows matched by an index lookup.
//
// A fresh cursor is positioned before the first row: Current returns nil
// until the first successful Next, and nil again once Next has reported
// exhaustion.
type Cursor interface {
	// Advances to the next row. Returns false when no row is available.
	Next() bool

	// Returns the current row, nil before the first Next and after
	// exhaustion.
	Current() *Row
}

// The cursor of a point lookup: yields exactly one row, then reports
// exhaustion on the next advance. A nil row makes the cursor empty.
type pointCursor struct {
	row *Row
	end bool
}

func NewPointCursor(row *Row) Cursor {
	return &pointCursor{row: row}
}

func (c *pointCursor) Next() bool {
	if c.row == nil || c.end {
		c.row = nil
		return false
	}
	c.end = true
	return true
}

func (c *pointCursor) Current() *Row {
	if !c.end {
		return nil
	}
	return c.row
}

// Cursor over an in-memory row slice, used to compose lookup results.
type sliceCursor struct {
	rows []*Row
	pos  int
}

func NewSliceCursor(rows []*Row) Cursor {
	return &sliceCursor{rows: rows, pos: -1}
}

// An always-exhausted cursor.
func NewEmptyCursor() Cursor {
	return NewSliceCursor(nil)
}

func (c *sliceCursor) Next() bool {
	if c.pos >= len(c.rows) {
		return false
	}
	c.pos++
	return c.pos < len(c.rows)
}

func (c *sliceCursor) Current() *Row {
	if c.pos < 0 || c.pos >= len(c.rows) {
		return nil
	}
	return c.rows[c.pos]
}
