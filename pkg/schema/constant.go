/*
 * Copyright (c) 2024-present Opalbase, Ltd.
 */

package schema

// # Constant
//
// A named constant as created by CREATE CONSTANT. The value is kept as its
// SQL literal text.
type Constant struct {
	object
	value string
}

func NewConstant(s *Schema, id int, name, value string) *Constant {
	return &Constant{
		object: makeObject(s, id, name, Kind_Constant),
		value:  value,
	}
}

func (c *Constant) Value() string { return c.value }

func (c *Constant) CreateSQL() string {
	return "CREATE CONSTANT " + c.SQL() + " VALUE " + c.value
}

func (c *Constant) DropSQL() string {
	return "DROP CONSTANT IF EXISTS " + c.SQL()
}
