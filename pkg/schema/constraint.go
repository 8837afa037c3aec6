/*
 * Copyright (c) 2024-present Opalbase, Ltd.
 */

package schema

import "strings"

// Constraint types enumeration
type ConstraintType uint8

const (
	ConstraintType_null ConstraintType = iota

	ConstraintType_PrimaryKey
	ConstraintType_Unique
	ConstraintType_Check
	ConstraintType_Referential

	ConstraintType_count
)

var constraintTypeSQL = map[ConstraintType]string{
	ConstraintType_PrimaryKey:  "PRIMARY KEY",
	ConstraintType_Unique:      "UNIQUE",
	ConstraintType_Check:       "CHECK",
	ConstraintType_Referential: "FOREIGN KEY",
}

// # Constraint
//
// A named table constraint. The constraint references its table by name,
// which is why teardown drains constraints before tables.
type Constraint struct {
	object
	ctype     ConstraintType
	tableName string
	columns   []string
	// check expression or referenced table, depending on ctype
	expression string
}

func NewConstraint(s *Schema, id int, name string, ctype ConstraintType, tableName string, columns []string, expression string) *Constraint {
	return &Constraint{
		object:     makeObject(s, id, name, Kind_Constraint),
		ctype:      ctype,
		tableName:  tableName,
		columns:    columns,
		expression: expression,
	}
}

func (c *Constraint) Type() ConstraintType { return c.ctype }

func (c *Constraint) TableName() string { return c.tableName }

func (c *Constraint) ColumnNames() []string { return c.columns }

func (c *Constraint) CreateSQL() string {
	var b strings.Builder
	b.WriteString("ALTER TABLE ")
	b.WriteString(QuoteIdent(c.schema.Name()))
	b.WriteString(".")
	b.WriteString(QuoteIdent(c.tableName))
	b.WriteString(" ADD CONSTRAINT ")
	b.WriteString(QuoteIdent(c.name))
	b.WriteString(" ")
	b.WriteString(constraintTypeSQL[c.ctype])
	switch c.ctype {
	case ConstraintType_Check:
		b.WriteString("(")
		b.WriteString(c.expression)
		b.WriteString(")")
	case ConstraintType_Referential:
		b.WriteString(c.columnList())
		b.WriteString(" REFERENCES ")
		b.WriteString(QuoteIdent(c.expression))
	default:
		b.WriteString(c.columnList())
	}
	return b.String()
}

func (c *Constraint) columnList() string {
	quoted := make([]string, len(c.columns))
	for i, col := range c.columns {
		quoted[i] = QuoteIdent(col)
	}
	return "(" + strings.Join(quoted, ", ") + ")"
}
