/*
 * Copyright (c) 2024-present Opalbase, Ltd.
 */

package catalog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opalbase/opal/pkg/schema"
	"github.com/opalbase/opal/pkg/session"
)

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, cleanup, err := New(filepath.Join(t.TempDir(), "meta.db"))
	require.NoError(t, err)
	t.Cleanup(cleanup)
	return c
}

func TestNewCatalog(t *testing.T) {
	require := require.New(t)

	c := newTestCatalog(t)

	t.Run("should create the admin user", func(t *testing.T) {
		admin, err := c.GetUser(AdminUserName)
		require.NoError(err)
		require.True(admin.IsAdmin())

		_, err = c.GetUser("NOBODY")
		require.ErrorIs(err, ErrUserNotFoundError)
	})

	t.Run("should create the protected system schemas", func(t *testing.T) {
		for _, name := range []string{schema.MainSchema, schema.InformationSchema} {
			s, err := c.GetSchema(name)
			require.NoError(err)
			require.True(s.IsSystem())
			require.False(s.CanDrop())
			require.Empty(s.CreateSQL(), "system schemas have no re-creation statement")
		}
	})

	t.Run("object ids are distinct", func(t *testing.T) {
		a, b := c.NextID(), c.NextID()
		require.NotEqual(a, b)
	})
}

func TestCatalogCreateSchema(t *testing.T) {
	require := require.New(t)

	c := newTestCatalog(t)
	admin, err := c.GetUser(AdminUserName)
	require.NoError(err)

	app, err := c.CreateSchema("APP", admin)
	require.NoError(err)
	require.Equal(app, c.FindSchema("APP"))
	require.Equal(`CREATE SCHEMA "APP" AUTHORIZATION "SA"`, app.CreateSQL())

	t.Run("should persist the schema row", func(t *testing.T) {
		rec, ok, err := c.meta.get(app.ID())
		require.NoError(err)
		require.True(ok)
		require.Equal(metaRecord{Kind: metaKindSchema, Name: "APP"}, rec)
	})

	t.Run("duplicate name is a user error", func(t *testing.T) {
		_, err := c.CreateSchema("APP", admin)
		require.ErrorIs(err, ErrSchemaAlreadyExistsError)
	})

	t.Run("schemas are enumerated ordered by name", func(t *testing.T) {
		names := []string{}
		for _, s := range c.Schemas() {
			names = append(names, s.Name())
		}
		require.Equal([]string{"APP", schema.InformationSchema, schema.MainSchema}, names)
	})
}

func TestCatalogSchemaObjects(t *testing.T) {
	require := require.New(t)

	c := newTestCatalog(t)
	admin, err := c.GetUser(AdminUserName)
	require.NoError(err)
	app, err := c.CreateSchema("APP", admin)
	require.NoError(err)

	tbl := app.CreateTable(c.NextID(), "T", []schema.Column{{Name: "ID", DataType: "INT"}}, true, false)
	require.NoError(c.AddSchemaObject(tbl))

	indexes := []*schema.Index{}
	for _, name := range []string{"IDX_A", "IDX_B", "IDX_C"} {
		idx := schema.NewIndex(app, c.NextID(), name, "T", []string{"ID"}, false)
		require.NoError(c.AddSchemaObject(idx))
		tbl.AddIndex(idx)
		indexes = append(indexes, idx)
	}

	t.Run("add persists the object row", func(t *testing.T) {
		rec, ok, err := c.meta.get(tbl.ID())
		require.NoError(err)
		require.True(ok)
		require.Equal(metaRecord{Kind: "TableOrView", Schema: "APP", Name: "T"}, rec)
	})

	t.Run("removing the table cascades to all its indexes", func(t *testing.T) {
		require.NoError(c.RemoveSchemaObject(nil, tbl))

		require.Nil(app.FindTableOrView(nil, "T"))
		require.Empty(tbl.Indexes())

		_, ok, err := c.meta.get(tbl.ID())
		require.NoError(err)
		require.False(ok)

		for _, idx := range indexes {
			require.Nil(app.FindIndex(idx.Name()), "index %s must be unregistered with its table", idx.Name())
			_, ok, err := c.meta.get(idx.ID())
			require.NoError(err)
			require.False(ok, "index %s must lose its persisted row", idx.Name())
		}
	})
}

func TestCatalogDropSchema(t *testing.T) {
	require := require.New(t)

	c := newTestCatalog(t)
	admin, err := c.GetUser(AdminUserName)
	require.NoError(err)

	app, err := c.CreateSchema("APP", admin)
	require.NoError(err)

	tbl := app.CreateTable(c.NextID(), "T", []schema.Column{{Name: "ID", DataType: "INT"}}, true, false)
	require.NoError(c.AddSchemaObject(tbl))

	conName := app.UniqueConstraintName(tbl)
	require.True(len(conName) > len(schema.ConstraintNamePrefix))
	con := schema.NewConstraint(app, c.NextID(), conName, schema.ConstraintType_PrimaryKey, "T", []string{"ID"}, "")
	require.NoError(c.AddSchemaObject(con))

	seq := schema.NewSequence(app, c.NextID(), "SEQ", 1, 1)
	require.NoError(c.AddSchemaObject(seq))

	sess := session.New()
	require.NoError(c.DropSchema(sess, "APP"))

	t.Run("schema is gone from the catalog", func(t *testing.T) {
		require.Nil(c.FindSchema("APP"))
		_, err := c.GetSchema("APP")
		require.ErrorIs(err, ErrSchemaNotFoundError)
	})

	t.Run("all persisted rows are gone", func(t *testing.T) {
		for _, id := range []int{app.ID(), tbl.ID(), con.ID(), seq.ID()} {
			_, ok, err := c.meta.get(id)
			require.NoError(err)
			require.False(ok)
		}
	})

	t.Run("schema is invalidated", func(t *testing.T) {
		require.False(app.IsValid())
		require.Nil(app.Owner())
	})

	t.Run("protected schemas can not be dropped", func(t *testing.T) {
		for _, name := range []string{schema.MainSchema, schema.InformationSchema} {
			err := c.DropSchema(sess, name)
			require.ErrorIs(err, ErrSchemaCanNotBeDroppedError)
			require.NotNil(c.FindSchema(name))
		}
	})

	t.Run("dropping an unknown schema is a user error", func(t *testing.T) {
		require.ErrorIs(c.DropSchema(sess, "GONE"), ErrSchemaNotFoundError)
	})
}

func TestCatalogUsers(t *testing.T) {
	require := require.New(t)

	c := newTestCatalog(t)

	u, err := c.CreateUser("ALICE", false)
	require.NoError(err)
	require.Equal("ALICE", u.Name())
	require.False(u.IsAdmin())
	require.Equal(u, c.FindUser("ALICE"))

	t.Run("duplicate user is a user error", func(t *testing.T) {
		_, err := c.CreateUser("ALICE", true)
		require.ErrorIs(err, ErrUserAlreadyExistsError)
	})

	t.Run("schemas can be owned by any user", func(t *testing.T) {
		s, err := c.CreateSchema("ALICE_SPACE", u)
		require.NoError(err)
		require.Equal(`CREATE SCHEMA "ALICE_SPACE" AUTHORIZATION "ALICE"`, s.CreateSQL())
	})
}
