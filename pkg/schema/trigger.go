/*
 * Copyright (c) 2024-present Opalbase, Ltd.
 */

package schema

import (
	"strconv"
	"strings"
)

// Trigger event bits.
const (
	TriggerInsert = 1 << iota
	TriggerUpdate
	TriggerDelete
)

// # TriggerObject
//
// A trigger as created by CREATE TRIGGER. The trigger references its table
// by name; it does not keep the table alive.
type TriggerObject struct {
	object
	tableName    string
	before       bool
	typeMask     int
	rowBased     bool
	queueSize    int
	handlerClass string
}

func NewTrigger(s *Schema, id int, name, tableName string, before bool, typeMask int, rowBased bool, handlerClass string) *TriggerObject {
	return &TriggerObject{
		object:       makeObject(s, id, name, Kind_Trigger),
		tableName:    tableName,
		before:       before,
		typeMask:     typeMask,
		rowBased:     rowBased,
		handlerClass: handlerClass,
	}
}

// Limits the size of the pending event queue of a queued trigger,
// 0 keeps the default unbounded queue.
func (t *TriggerObject) SetQueueSize(size int) { t.queueSize = size }

func (t *TriggerObject) QueueSize() int { return t.queueSize }

func (t *TriggerObject) TableName() string { return t.tableName }

func (t *TriggerObject) IsBefore() bool { return t.before }

func (t *TriggerObject) TypeMask() int { return t.typeMask }

func (t *TriggerObject) CreateSQL() string {
	var b strings.Builder
	b.WriteString("CREATE TRIGGER ")
	b.WriteString(t.SQL())
	if t.before {
		b.WriteString(" BEFORE ")
	} else {
		b.WriteString(" AFTER ")
	}
	b.WriteString(t.typeNames())
	b.WriteString(" ON ")
	b.WriteString(QuoteIdent(t.tableName))
	if t.rowBased {
		b.WriteString(" FOR EACH ROW")
	}
	if t.queueSize > 0 {
		b.WriteString(" QUEUE ")
		b.WriteString(strconv.Itoa(t.queueSize))
	}
	b.WriteString(" CALL ")
	b.WriteString(QuoteString(t.handlerClass))
	return b.String()
}

func (t *TriggerObject) DropSQL() string {
	return "DROP TRIGGER IF EXISTS " + t.SQL()
}

func (t *TriggerObject) typeNames() string {
	names := make([]string, 0, 3)
	if t.typeMask&TriggerInsert != 0 {
		names = append(names, "INSERT")
	}
	if t.typeMask&TriggerUpdate != 0 {
		names = append(names, "UPDATE")
	}
	if t.typeMask&TriggerDelete != 0 {
		names = append(names, "DELETE")
	}
	return strings.Join(names, ", ")
}
