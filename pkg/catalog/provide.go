/*
 * Copyright (c) 2024-present Opalbase, Ltd.
 */

package catalog

import "github.com/opalbase/opal/pkg/schema"

// Default administrator user, owner of the built-in schemas.
const AdminUserName = "SA"

// Creates and returns a new catalog with its meta store at metaPath. The
// two protected system schemas and the admin user are created immediately.
// The returned cleanup closes the meta store.
func New(metaPath string) (c *Catalog, cleanup func(), err error) {
	meta, err := openMetaStore(metaPath)
	if err != nil {
		return nil, nil, err
	}
	c = &Catalog{
		schemas: make(map[string]*schema.Schema),
		users:   make(map[string]*User),
		meta:    meta,
	}
	admin, err := c.CreateUser(AdminUserName, true)
	if err == nil {
		_, err = c.createSchema(schema.MainSchema, admin, true)
	}
	if err == nil {
		_, err = c.createSchema(schema.InformationSchema, admin, true)
	}
	if err != nil {
		meta.close()
		return nil, nil, err
	}
	return c, func() { _ = meta.close() }, nil
}
