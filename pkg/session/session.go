/*
 * Copyright (c) 2024-present Opalbase, Ltd.
 */

package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/opalbase/opal/pkg/schema"
)

// # Session
//
// A session context. Holds session-private temporary tables, which are
// visible to table lookups of this session only and are never registered
// in any schema.
//
// Implements schema.Session.
type Session struct {
	id uuid.UUID

	mx              sync.RWMutex
	localTempTables map[string]schema.Table
}

func New() *Session {
	return &Session{
		id:              uuid.New(),
		localTempTables: make(map[string]schema.Table),
	}
}

// Correlation id, used in logs only.
func (s *Session) ID() uuid.UUID { return s.id }

func (s *Session) FindLocalTempTable(name string) schema.Table {
	s.mx.RLock()
	defer s.mx.RUnlock()
	return s.localTempTables[name]
}

func (s *Session) AddLocalTempTable(t schema.Table) error {
	s.mx.Lock()
	defer s.mx.Unlock()
	if _, ok := s.localTempTables[t.Name()]; ok {
		return schema.ErrAlreadyExists("temporary table «%s»", t.Name())
	}
	s.localTempTables[t.Name()] = t
	return nil
}

func (s *Session) RemoveLocalTempTable(t schema.Table) error {
	s.mx.Lock()
	defer s.mx.Unlock()
	if _, ok := s.localTempTables[t.Name()]; !ok {
		return schema.ErrTableOrViewNotFound(t.Name())
	}
	delete(s.localTempTables, t.Name())
	return nil
}
