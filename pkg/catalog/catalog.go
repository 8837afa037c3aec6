/*
 * Copyright (c) 2024-present Opalbase, Ltd.
 */

package catalog

import (
	"sync"
	"sync/atomic"

	"github.com/untillpro/goutils/logger"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/opalbase/opal/pkg/schema"
)

const metaKindSchema = "Schema"

// # Catalog
//
// The top-level database catalog. Owns all schemas, allocates globally
// unique object ids and is the single authority for removals with
// cross-schema or persisted-metadata effects.
//
// Implements schema.Database.
type Catalog struct {
	mx      sync.RWMutex
	schemas map[string]*schema.Schema
	users   map[string]*User
	nextID  int64
	meta    *metaStore
}

// Allocates the next globally unique object id.
func (c *Catalog) NextID() int {
	return int(atomic.AddInt64(&c.nextID, 1))
}

func (c *Catalog) CreateUser(name string, admin bool) (*User, error) {
	c.mx.Lock()
	defer c.mx.Unlock()
	if _, ok := c.users[name]; ok {
		return nil, ErrUserAlreadyExists(name)
	}
	u := &User{name: name, admin: admin}
	c.users[name] = u
	return u, nil
}

func (c *Catalog) FindUser(name string) *User {
	c.mx.RLock()
	defer c.mx.RUnlock()
	return c.users[name]
}

func (c *Catalog) GetUser(name string) (*User, error) {
	if u := c.FindUser(name); u != nil {
		return u, nil
	}
	return nil, ErrUserNotFound(name)
}

// Creates a new non-system schema and persists its catalog row.
func (c *Catalog) CreateSchema(name string, owner *User) (*schema.Schema, error) {
	return c.createSchema(name, owner, false)
}

func (c *Catalog) createSchema(name string, owner *User, system bool) (*schema.Schema, error) {
	c.mx.Lock()
	defer c.mx.Unlock()
	if _, ok := c.schemas[name]; ok {
		return nil, ErrSchemaAlreadyExists(name)
	}
	s := schema.NewSchema(c, c.NextID(), name, owner, system)
	if err := c.meta.put(s.ID(), metaRecord{Kind: metaKindSchema, Name: name}); err != nil {
		return nil, err
	}
	c.schemas[name] = s
	if logger.IsVerbose() {
		logger.Verbose("schema", name, "created, id", s.ID())
	}
	return s, nil
}

func (c *Catalog) FindSchema(name string) *schema.Schema {
	c.mx.RLock()
	defer c.mx.RUnlock()
	return c.schemas[name]
}

func (c *Catalog) GetSchema(name string) (*schema.Schema, error) {
	if s := c.FindSchema(name); s != nil {
		return s, nil
	}
	return nil, ErrSchemaNotFound(name)
}

// Returns all schemas, ordered by name.
func (c *Catalog) Schemas() []*schema.Schema {
	c.mx.RLock()
	defer c.mx.RUnlock()
	names := maps.Keys(c.schemas)
	slices.Sort(names)
	ss := make([]*schema.Schema, 0, len(names))
	for _, n := range names {
		ss = append(ss, c.schemas[n])
	}
	return ss
}

// Registers the object in its schema and persists its catalog row. The
// object must have been constructed bound to one of this catalog's schemas.
func (c *Catalog) AddSchemaObject(obj schema.SchemaObject) error {
	obj.Schema().Add(obj)
	if logger.IsVerbose() {
		logger.Verbose(obj.Kind().TrimString(), obj.Name(), "added to schema", obj.Schema().Name())
	}
	return c.meta.put(obj.ID(), metaRecord{
		Kind:   obj.Kind().TrimString(),
		Schema: obj.Schema().Name(),
		Name:   obj.Name(),
	})
}

// Kind-dispatched object deletion: unregisters the object from its schema,
// cascades to table-owned indexes and deletes the persisted rows.
//
// Implements schema.Database.
func (c *Catalog) RemoveSchemaObject(sess schema.Session, obj schema.SchemaObject) error {
	if t, ok := obj.(*schema.TableData); ok {
		// RemoveIndex compacts the table's index slice, so range over a copy
		indexes := append([]*schema.Index(nil), t.Indexes()...)
		for _, idx := range indexes {
			s := idx.Schema()
			if s.FindIndex(idx.Name()) != idx {
				continue
			}
			s.Remove(idx)
			t.RemoveIndex(idx)
			if err := c.meta.delete(idx.ID()); err != nil {
				return err
			}
			if logger.IsVerbose() {
				logger.Verbose("index", idx.Name(), "removed with table", t.Name())
			}
		}
	}
	obj.Schema().Remove(obj)
	if logger.IsVerbose() {
		logger.Verbose(obj.Kind().TrimString(), obj.Name(), "removed from schema", obj.Schema().Name())
	}
	return c.meta.delete(obj.ID())
}

// Deletes the persisted catalog row of a schema.
//
// Implements schema.Database.
func (c *Catalog) RemoveMeta(_ schema.Session, schemaID int) error {
	return c.meta.delete(schemaID)
}

// Drops a schema with all its contents. Protected system schemas can not
// be dropped.
func (c *Catalog) DropSchema(sess schema.Session, name string) error {
	s := c.FindSchema(name)
	if s == nil {
		return ErrSchemaNotFound(name)
	}
	if !s.CanDrop() {
		return ErrSchemaCanNotBeDropped(name)
	}
	if err := s.RemoveChildrenAndResources(sess); err != nil {
		return err
	}
	c.mx.Lock()
	delete(c.schemas, name)
	c.mx.Unlock()
	if logger.IsVerbose() {
		logger.Verbose("schema", name, "dropped")
	}
	return nil
}
