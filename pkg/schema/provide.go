/*
 * Copyright (c) 2024-present Opalbase, Ltd.
 */

package schema

// Creates and returns a new schema. Called by the owning database catalog;
// the id must be unique within the catalog and the name unique among its
// schemas.
func NewSchema(db Database, id int, name string, owner Owner, system bool) *Schema {
	s := &Schema{
		db:           db,
		id:           id,
		name:         name,
		owner:        owner,
		system:       system,
		pendingNames: make(map[string]struct{}),
	}
	for k := Kind_null + 1; k < Kind_count; k++ {
		s.objects[k] = make(map[string]SchemaObject)
	}
	return s
}
