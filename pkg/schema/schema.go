/*
 * Copyright (c) 2024-present Opalbase, Ltd.
 */

package schema

import (
	"sync"

	"github.com/untillpro/goutils/logger"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Cascading teardown drains the kind registries in this order, so that a
// dependent object never outlives the object it depends on in an
// observable state.
var teardownOrder = [...]Kind{
	Kind_Trigger,
	Kind_Constraint,
	Kind_TableOrView,
	Kind_Index,
	Kind_Sequence,
	Kind_Constant,
}

// # Schema
//
// A schema as created by the SQL statement CREATE SCHEMA. Owns one
// name registry per object kind and generates collision-free synthetic
// names for unnamed constraints and indexes.
//
// All mutating operations on one Schema are serialized by a per-instance
// lock; lookups run concurrently with each other but never observe a
// half-completed rename.
type Schema struct {
	mx      sync.RWMutex
	db      Database
	id      int
	name    string
	owner   Owner
	system  bool
	invalid bool
	objects [Kind_count]map[string]SchemaObject

	// Set of returned unique names that are not yet stored, to avoid
	// returning the same unique name twice when multiple sessions
	// concurrently create objects.
	pendingNames map[string]struct{}
}

func (s *Schema) ID() int { return s.id }

func (s *Schema) Name() string { return s.name }

func (s *Schema) IsSystem() bool { return s.system }

// Returns false once RemoveChildrenAndResources has completed. Only
// identity queries remain valid on an invalidated schema.
func (s *Schema) IsValid() bool {
	s.mx.RLock()
	defer s.mx.RUnlock()
	return !s.invalid
}

// Returns the owning principal, nil after teardown.
func (s *Schema) Owner() Owner {
	s.mx.RLock()
	defer s.mx.RUnlock()
	return s.owner
}

// Returns false exactly for the two permanently protected schemas.
func (s *Schema) CanDrop() bool {
	return s.name != InformationSchema && s.name != MainSchema
}

// Returns the CREATE SCHEMA statement re-creating this schema, empty for
// system schemas, which have no externally visible re-creation statement.
func (s *Schema) CreateSQL() string {
	s.mx.RLock()
	defer s.mx.RUnlock()
	s.mustBeValid()
	if s.system {
		return ""
	}
	return "CREATE SCHEMA " + QuoteIdent(s.name) + " AUTHORIZATION " + QuoteIdent(s.owner.Name())
}

// Schema drop statements are synthesized by the DDL layer.
func (s *Schema) DropSQL() string { return "" }

// Registers the object under its name for its kind and releases any pending
// reservation of that name.
//
// # Panics (checked contract):
//   - if the object belongs to another schema
//   - if the name is already committed for that kind
//   - if the schema is invalidated
func (s *Schema) Add(obj SchemaObject) {
	s.mx.Lock()
	defer s.mx.Unlock()
	s.mustBeValid()
	if ChecksEnabled() && obj.Schema() != s {
		panic(errInternal("%s «%s»: wrong schema", obj.Kind().TrimString(), obj.Name()))
	}
	name := obj.Name()
	m := s.kindObjects(obj.Kind())
	if ChecksEnabled() && m[name] != nil {
		panic(errInternal("%s «%s» already exists in schema «%s»", obj.Kind().TrimString(), name, s.name))
	}
	m[name] = obj
	s.freeUniqueName(name)
}

// Atomically moves the object from its current name to newName, invoking
// the object's own rename hook in between. Reservations of both names are
// released.
//
// # Panics (checked contract):
//   - if the old name is not registered
//   - if newName equals the current name or is already committed
//   - if the schema is invalidated
func (s *Schema) Rename(obj SchemaObject, newName string) {
	s.mx.Lock()
	defer s.mx.Unlock()
	s.mustBeValid()
	m := s.kindObjects(obj.Kind())
	if ChecksEnabled() {
		if _, ok := m[obj.Name()]; !ok {
			panic(errInternal("%s «%s» not found in schema «%s»", obj.Kind().TrimString(), obj.Name(), s.name))
		}
		if _, ok := m[newName]; ok || obj.Name() == newName {
			panic(errInternal("%s «%s» already exists in schema «%s»", obj.Kind().TrimString(), newName, s.name))
		}
	}
	delete(m, obj.Name())
	s.freeUniqueName(obj.Name())
	obj.Rename(newName)
	m[newName] = obj
	s.freeUniqueName(newName)
}

// Unregisters the object from its kind registry and releases any pending
// reservation of its name. Removals with cross-schema or persisted-metadata
// effects go through Database.RemoveSchemaObject, which calls back here.
//
// # Panics (checked contract):
//   - if the name is not registered
//   - if the schema is invalidated
func (s *Schema) Remove(obj SchemaObject) {
	s.mx.Lock()
	defer s.mx.Unlock()
	s.mustBeValid()
	name := obj.Name()
	m := s.kindObjects(obj.Kind())
	if ChecksEnabled() {
		if _, ok := m[name]; !ok {
			panic(errInternal("%s «%s» not found in schema «%s»", obj.Kind().TrimString(), name, s.name))
		}
	}
	delete(m, name)
	s.freeUniqueName(name)
}

// Returns the table or view with the given name, nil if there is none.
// On a miss the session's local temporary tables are searched before
// giving up.
func (s *Schema) FindTableOrView(sess Session, name string) Table {
	s.mx.RLock()
	obj := s.objects[Kind_TableOrView][name]
	s.mx.RUnlock()
	if obj != nil {
		return obj.(Table)
	}
	if sess != nil {
		return sess.FindLocalTempTable(name)
	}
	return nil
}

// Like FindTableOrView, but a miss is an error carrying the requested name.
func (s *Schema) GetTableOrView(sess Session, name string) (Table, error) {
	if t := s.FindTableOrView(sess, name); t != nil {
		return t, nil
	}
	return nil, ErrTableOrViewNotFound(name)
}

// Returns the index with the given name, nil if there is none.
func (s *Schema) FindIndex(name string) *Index {
	if obj := s.findObject(Kind_Index, name); obj != nil {
		return obj.(*Index)
	}
	return nil
}

func (s *Schema) GetIndex(name string) (*Index, error) {
	if idx := s.FindIndex(name); idx != nil {
		return idx, nil
	}
	return nil, ErrIndexNotFound(name)
}

// Returns the sequence with the given name, nil if there is none.
func (s *Schema) FindSequence(name string) *Sequence {
	if obj := s.findObject(Kind_Sequence, name); obj != nil {
		return obj.(*Sequence)
	}
	return nil
}

func (s *Schema) GetSequence(name string) (*Sequence, error) {
	if seq := s.FindSequence(name); seq != nil {
		return seq, nil
	}
	return nil, ErrSequenceNotFound(name)
}

// Returns the trigger with the given name, nil if there is none.
func (s *Schema) FindTrigger(name string) *TriggerObject {
	if obj := s.findObject(Kind_Trigger, name); obj != nil {
		return obj.(*TriggerObject)
	}
	return nil
}

// Returns the constraint with the given name, nil if there is none.
func (s *Schema) FindConstraint(name string) *Constraint {
	if obj := s.findObject(Kind_Constraint, name); obj != nil {
		return obj.(*Constraint)
	}
	return nil
}

func (s *Schema) GetConstraint(name string) (*Constraint, error) {
	if c := s.FindConstraint(name); c != nil {
		return c, nil
	}
	return nil, ErrConstraintNotFound(name)
}

// Returns the constant with the given name, nil if there is none.
func (s *Schema) FindConstant(name string) *Constant {
	if obj := s.findObject(Kind_Constant, name); obj != nil {
		return obj.(*Constant)
	}
	return nil
}

func (s *Schema) GetConstant(name string) (*Constant, error) {
	if c := s.FindConstant(name); c != nil {
		return c, nil
	}
	return nil, ErrConstantNotFound(name)
}

// Returns all objects of the given kind, ordered by name.
func (s *Schema) All(kind Kind) []SchemaObject {
	s.mx.RLock()
	defer s.mx.RUnlock()
	m := s.kindObjects(kind)
	names := maps.Keys(m)
	slices.Sort(names)
	oo := make([]SchemaObject, 0, len(names))
	for _, n := range names {
		oo = append(oo, m[n])
	}
	return oo
}

// Returns the number of objects of the given kind.
func (s *Schema) Len(kind Kind) int {
	s.mx.RLock()
	defer s.mx.RUnlock()
	return len(s.kindObjects(kind))
}

// Ordered cascading teardown. Drains the kind registries in teardownOrder,
// removing one arbitrary remaining object at a time through the owning
// database catalog, which recursively unregisters it from this schema and
// frees catalog-wide resources. After all six kinds are drained the
// schema's own catalog row is removed, the owner reference is cleared and
// the schema is invalidated.
func (s *Schema) RemoveChildrenAndResources(sess Session) error {
	if logger.IsVerbose() {
		logger.Verbose("schema", s.name, "teardown started")
	}
	for _, kind := range teardownOrder {
		for {
			obj, remaining := s.anyOfKind(kind)
			if obj == nil {
				break
			}
			if err := s.db.RemoveSchemaObject(sess, obj); err != nil {
				return err
			}
			if _, now := s.anyOfKind(kind); now >= remaining {
				// Non-progress would loop forever, so it is fatal.
				panic(errInternal("removing %s «%s» did not shrink schema «%s»",
					kind.TrimString(), obj.Name(), s.name))
			}
		}
	}
	if err := s.db.RemoveMeta(sess, s.id); err != nil {
		return err
	}
	s.mx.Lock()
	s.owner = nil
	s.invalid = true
	maps.Clear(s.pendingNames)
	s.mx.Unlock()
	if logger.IsVerbose() {
		logger.Verbose("schema", s.name, "teardown completed")
	}
	return nil
}

// Constructs a new regular table bound to this schema. The result is not
// registered; registration is a separate Add call by the DDL executor.
func (s *Schema) CreateTable(id int, name string, columns []Column, persistent, clustered bool) *TableData {
	return newTableData(s, id, name, columns, persistent, clustered)
}

// Constructs a new linked table bound to this schema. The result is not
// registered; registration is a separate Add call by the DDL executor.
func (s *Schema) CreateTableLink(id int, name, driver, url, user, password, originalTable string, emitUpdates, force bool) *TableLink {
	return newTableLink(s, id, name, driver, url, user, password, originalTable, emitUpdates, force)
}

// Returns the kind registry. The lock must be held.
func (s *Schema) kindObjects(kind Kind) map[string]SchemaObject {
	if kind > Kind_null && kind < Kind_count {
		return s.objects[kind]
	}
	panic(errInternal("unknown schema object kind %v", kind))
}

func (s *Schema) findObject(kind Kind, name string) SchemaObject {
	s.mx.RLock()
	defer s.mx.RUnlock()
	return s.kindObjects(kind)[name]
}

// Returns one arbitrary object of the given kind and the registry size,
// (nil, 0) if the registry is empty.
func (s *Schema) anyOfKind(kind Kind) (SchemaObject, int) {
	s.mx.RLock()
	defer s.mx.RUnlock()
	m := s.kindObjects(kind)
	for _, obj := range m {
		return obj, len(m)
	}
	return nil, 0
}

func (s *Schema) mustBeValid() {
	if ChecksEnabled() && s.invalid {
		panic(errInternal("schema «%s» is invalidated", s.name))
	}
}
