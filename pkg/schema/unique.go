/*
 * Copyright (c) 2024-present Opalbase, Ltd.
 */

package schema

import (
	"hash/crc32"
	"strconv"
	"strings"
)

// Returns a synthetic name for an unnamed constraint, unique among the
// committed constraint names and the pending reservations of this schema.
//
// The returned name is reserved until it is committed by a successful Add
// or explicitly released with FreeUniqueName.
func (s *Schema) UniqueConstraintName(obj SchemaObject) string {
	s.mx.Lock()
	defer s.mx.Unlock()
	s.mustBeValid()
	return s.uniqueName(obj, s.objects[Kind_Constraint], ConstraintNamePrefix)
}

// Returns a synthetic name for an unnamed index with the given prefix,
// unique among the committed index names and the pending reservations of
// this schema. Same reservation contract as UniqueConstraintName.
func (s *Schema) UniqueIndexName(obj SchemaObject, prefix string) string {
	s.mx.Lock()
	defer s.mx.Unlock()
	s.mustBeValid()
	return s.uniqueName(obj, s.objects[Kind_Index], prefix)
}

// Releases the reservation of a generated name that will not be committed.
func (s *Schema) FreeUniqueName(name string) {
	s.mx.Lock()
	defer s.mx.Unlock()
	s.freeUniqueName(name)
}

// The lock must be held.
func (s *Schema) freeUniqueName(name string) {
	delete(s.pendingNames, name)
}

// Probes candidates prefix+hash[:1], prefix+hash[:2], ... built from the
// uppercase hex hash of the source object's own name; if every prefix up to
// the full hash collides, falls back to prefix+hash+"_"+i for i = 0, 1, ...
// The winner is reserved in pendingNames before it is returned, inside the
// same critical section as the search, so two concurrent calls never return
// the same candidate. The lock must be held.
func (s *Schema) uniqueName(obj SchemaObject, m map[string]SchemaObject, prefix string) string {
	hash := strings.ToUpper(strconv.FormatUint(uint64(crc32.ChecksumIEEE([]byte(obj.Name()))), 16))
	name := ""
	for i := 1; i <= len(hash); i++ {
		candidate := prefix + hash[:i]
		if s.isNameFree(m, candidate) {
			name = candidate
			break
		}
	}
	if name == "" {
		prefix += hash + "_"
		for i := 0; ; i++ {
			candidate := prefix + strconv.Itoa(i)
			if s.isNameFree(m, candidate) {
				name = candidate
				break
			}
		}
	}
	s.pendingNames[name] = struct{}{}
	return name
}

func (s *Schema) isNameFree(m map[string]SchemaObject, name string) bool {
	if _, ok := m[name]; ok {
		return false
	}
	_, pending := s.pendingNames[name]
	return !pending
}
