/*
 * Copyright (c) 2024-present Opalbase, Ltd.
 */

package schema

import (
	"strconv"
	"sync"
)

// # Sequence
//
// A sequence as created by CREATE SEQUENCE. Value access is serialized
// independently of the schema registries.
type Sequence struct {
	object
	mx        sync.Mutex
	value     int64
	increment int64
}

func NewSequence(s *Schema, id int, name string, startValue, increment int64) *Sequence {
	if increment == 0 {
		increment = 1
	}
	return &Sequence{
		object:    makeObject(s, id, name, Kind_Sequence),
		value:     startValue,
		increment: increment,
	}
}

// Returns the current value without advancing it.
func (q *Sequence) Current() int64 {
	q.mx.Lock()
	defer q.mx.Unlock()
	return q.value
}

// Returns the current value and advances the sequence by its increment.
func (q *Sequence) Next() int64 {
	q.mx.Lock()
	defer q.mx.Unlock()
	v := q.value
	q.value += q.increment
	return v
}

func (q *Sequence) Increment() int64 { return q.increment }

func (q *Sequence) CreateSQL() string {
	sql := "CREATE SEQUENCE " + q.SQL() + " START WITH " + strconv.FormatInt(q.Current(), 10)
	if q.increment != 1 {
		sql += " INCREMENT BY " + strconv.FormatInt(q.increment, 10)
	}
	return sql
}

func (q *Sequence) DropSQL() string {
	return "DROP SEQUENCE IF EXISTS " + q.SQL()
}
