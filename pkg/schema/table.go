/*
 * Copyright (c) 2024-present Opalbase, Ltd.
 */

package schema

import "strings"

// Column of a table or view.
type Column struct {
	Name     string
	DataType string
	Nullable bool
}

func (c Column) SQL() string {
	sql := QuoteIdent(c.Name) + " " + c.DataType
	if !c.Nullable {
		sql += " NOT NULL"
	}
	return sql
}

// # Table
//
// Common capability of regular and linked tables. Session-local temporary
// tables provide it as well without ever being registered in a schema.
type Table interface {
	SchemaObject
	Columns() []Column
}

// # TableData
//
// A regular table. Indexes created for the table are lifetime-managed by
// it: the schema registry holds the authoritative lookup edge, the table
// holds the ownership edge.
type TableData struct {
	object
	columns    []Column
	persistent bool
	clustered  bool
	indexes    []*Index
}

func newTableData(s *Schema, id int, name string, columns []Column, persistent, clustered bool) *TableData {
	return &TableData{
		object:     makeObject(s, id, name, Kind_TableOrView),
		columns:    columns,
		persistent: persistent,
		clustered:  clustered,
	}
}

func (t *TableData) Columns() []Column { return t.columns }

func (t *TableData) IsPersistent() bool { return t.persistent }

func (t *TableData) IsClustered() bool { return t.clustered }

// Records an index as owned by this table. Called by the DDL executor
// after the index is registered in the schema.
func (t *TableData) AddIndex(idx *Index) {
	t.indexes = append(t.indexes, idx)
}

func (t *TableData) RemoveIndex(idx *Index) {
	for i, x := range t.indexes {
		if x == idx {
			t.indexes = append(t.indexes[:i], t.indexes[i+1:]...)
			return
		}
	}
}

func (t *TableData) Indexes() []*Index { return t.indexes }

func (t *TableData) CreateSQL() string {
	var b strings.Builder
	b.WriteString("CREATE ")
	if t.persistent {
		b.WriteString("CACHED ")
	} else {
		b.WriteString("MEMORY ")
	}
	b.WriteString("TABLE ")
	b.WriteString(t.SQL())
	b.WriteString("(")
	for i, c := range t.columns {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(c.SQL())
	}
	b.WriteString(")")
	return b.String()
}

func (t *TableData) DropSQL() string {
	return "DROP TABLE IF EXISTS " + t.SQL() + " CASCADE"
}

// # TableLink
//
// A linked table, backed by a table in another database reachable over a
// driver/url pair.
type TableLink struct {
	object
	driver        string
	url           string
	user          string
	password      string
	originalTable string
	emitUpdates   bool
	force         bool
	columns       []Column
}

func newTableLink(s *Schema, id int, name, driver, url, user, password, originalTable string, emitUpdates, force bool) *TableLink {
	return &TableLink{
		object:        makeObject(s, id, name, Kind_TableOrView),
		driver:        driver,
		url:           url,
		user:          user,
		password:      password,
		originalTable: originalTable,
		emitUpdates:   emitUpdates,
		force:         force,
	}
}

func (t *TableLink) Columns() []Column { return t.columns }

func (t *TableLink) Driver() string { return t.driver }

func (t *TableLink) URL() string { return t.url }

func (t *TableLink) User() string { return t.user }

func (t *TableLink) OriginalTable() string { return t.originalTable }

func (t *TableLink) EmitUpdates() bool { return t.emitUpdates }

// The password is never part of the regenerated statement.
func (t *TableLink) CreateSQL() string {
	var b strings.Builder
	b.WriteString("CREATE ")
	if t.force {
		b.WriteString("FORCE ")
	}
	b.WriteString("LINKED TABLE ")
	b.WriteString(t.SQL())
	b.WriteString("(")
	b.WriteString(QuoteString(t.driver))
	b.WriteString(", ")
	b.WriteString(QuoteString(t.url))
	b.WriteString(", ")
	b.WriteString(QuoteString(t.user))
	b.WriteString(", '', ")
	b.WriteString(QuoteString(t.originalTable))
	b.WriteString(")")
	if t.emitUpdates {
		b.WriteString(" EMIT UPDATES")
	}
	return b.String()
}

func (t *TableLink) DropSQL() string {
	return "DROP TABLE IF EXISTS " + t.SQL() + " CASCADE"
}
