/*
 * Copyright (c) 2024-present Opalbase, Ltd.
 */

package index

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPointCursor(t *testing.T) {
	require := require.New(t)

	row := &Row{Pos: 7, Values: []any{int64(1), "one"}}
	c := NewPointCursor(row)

	require.Nil(c.Current(), "no current row before the first Next")

	require.True(c.Next())
	require.Equal(row, c.Current())

	require.False(c.Next(), "exactly one row, then exhausted")
	require.Nil(c.Current())

	t.Run("stays exhausted", func(t *testing.T) {
		require.False(c.Next())
		require.Nil(c.Current())
	})

	t.Run("nil row makes an empty cursor", func(t *testing.T) {
		empty := NewPointCursor(nil)
		require.False(empty.Next())
		require.Nil(empty.Current())
	})
}

func TestSliceCursor(t *testing.T) {
	require := require.New(t)

	rows := []*Row{{Pos: 1}, {Pos: 2}, {Pos: 3}}
	c := NewSliceCursor(rows)

	require.Nil(c.Current())
	for _, want := range rows {
		require.True(c.Next())
		require.Equal(want, c.Current())
	}
	require.False(c.Next())
	require.Nil(c.Current())
	require.False(c.Next())
}

func TestEmptyCursor(t *testing.T) {
	require := require.New(t)

	c := NewEmptyCursor()
	require.Nil(c.Current())
	require.False(c.Next())
	require.Nil(c.Current())
}
