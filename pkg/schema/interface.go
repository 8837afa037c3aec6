/*
 * Copyright (c) 2024-present Opalbase, Ltd.
 */

package schema

// # SchemaObject
//
// SchemaObject is the capability every named object living inside a schema
// provides: tables and views, indexes, sequences, triggers, constraints and
// constants.
//
// The schema registry is the authoritative lookup path by name, but it does
// not necessarily own the object's lifetime: an index, for example, may be
// lifetime-managed by its table.
type SchemaObject interface {
	// Globally unique object id, assigned by the owning database catalog.
	ID() int

	Name() string

	// Owning schema. For every registered object the back-reference equals
	// the schema instance holding it.
	Schema() *Schema

	Kind() Kind

	// Rename hook. Called by Schema.Rename between unregistering the old
	// name and registering the new one, so the object's own name field and
	// any self-referential SQL text stay consistent. Never call directly.
	Rename(newName string)

	// Returns the SQL statement that re-creates this object,
	// empty if the object has no visible re-creation statement.
	CreateSQL() string

	// Returns the SQL statement that drops this object, empty if drop
	// statements for this kind are synthesized elsewhere.
	DropSQL() string
}

// # Database
//
// Database is the owning database catalog, the external authority for any
// removal that has cross-schema or persisted-metadata effects. The schema
// never bypasses it.
type Database interface {
	// Allocates the next globally unique object id.
	NextID() int

	// Kind-dispatched object deletion. Unregisters the object from its
	// schema as a side effect and triggers dependent cleanup.
	RemoveSchemaObject(s Session, obj SchemaObject) error

	// Deletes the persisted catalog row of the schema with the given id.
	RemoveMeta(s Session, schemaID int) error
}

// # Session
//
// Session is the calling session context. Used by table lookups to fall
// back to session-private temporary tables that are never registered in
// any schema.
type Session interface {
	// Returns the session-local temporary table with the given name,
	// nil if there is none.
	FindLocalTempTable(name string) Table
}

// # Owner
//
// Owner is the principal owning a schema.
type Owner interface {
	Name() string
}
