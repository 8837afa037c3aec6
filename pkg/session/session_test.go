/*
 * Copyright (c) 2024-present Opalbase, Ltd.
 */

package session

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opalbase/opal/pkg/schema"
)

type noopDatabase struct{}

func (noopDatabase) NextID() int { return 1 }

func (noopDatabase) RemoveSchemaObject(schema.Session, schema.SchemaObject) error { return nil }

func (noopDatabase) RemoveMeta(schema.Session, int) error { return nil }

func TestSessionLocalTempTables(t *testing.T) {
	require := require.New(t)

	sess := New()
	require.NotEqual(New().ID(), sess.ID())

	s := schema.NewSchema(noopDatabase{}, 1, "APP", nil, false)
	tmp := s.CreateTable(2, "TMP", nil, false, false)

	require.Nil(sess.FindLocalTempTable("TMP"))
	require.NoError(sess.AddLocalTempTable(tmp))
	require.Equal(schema.Table(tmp), sess.FindLocalTempTable("TMP"))

	t.Run("duplicate add is a user error", func(t *testing.T) {
		err := sess.AddLocalTempTable(tmp)
		require.ErrorIs(err, schema.ErrAlreadyExistsError)
		require.ErrorContains(err, "TMP")
	})

	t.Run("temp tables are session private", func(t *testing.T) {
		other := New()
		require.Nil(other.FindLocalTempTable("TMP"))
	})

	t.Run("schema lookup falls back to this session", func(t *testing.T) {
		require.Equal(schema.Table(tmp), s.FindTableOrView(sess, "TMP"))
	})

	t.Run("remove", func(t *testing.T) {
		require.NoError(sess.RemoveLocalTempTable(tmp))
		require.Nil(sess.FindLocalTempTable("TMP"))

		err := sess.RemoveLocalTempTable(tmp)
		require.ErrorIs(err, schema.ErrNotFoundError)
	})
}
