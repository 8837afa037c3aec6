/*
 * Copyright (c) 2024-present Opalbase, Ltd.
 */

package schema

import "strings"

// # Index
//
// Index metadata as tracked by the catalog. The page-level index structure
// itself lives in the storage subsystem; the catalog only needs the name,
// the indexed table and the column list.
type Index struct {
	object
	tableName string
	columns   []string
	unique    bool
}

func NewIndex(s *Schema, id int, name, tableName string, columns []string, unique bool) *Index {
	return &Index{
		object:    makeObject(s, id, name, Kind_Index),
		tableName: tableName,
		columns:   columns,
		unique:    unique,
	}
}

func (i *Index) TableName() string { return i.tableName }

func (i *Index) ColumnNames() []string { return i.columns }

func (i *Index) IsUnique() bool { return i.unique }

func (i *Index) CreateSQL() string {
	var b strings.Builder
	b.WriteString("CREATE ")
	if i.unique {
		b.WriteString("UNIQUE ")
	}
	b.WriteString("INDEX ")
	b.WriteString(i.SQL())
	b.WriteString(" ON ")
	b.WriteString(QuoteIdent(i.tableName))
	b.WriteString("(")
	for n, col := range i.columns {
		if n > 0 {
			b.WriteString(", ")
		}
		b.WriteString(QuoteIdent(col))
	}
	b.WriteString(")")
	return b.String()
}

func (i *Index) DropSQL() string {
	return "DROP INDEX IF EXISTS " + i.SQL()
}
