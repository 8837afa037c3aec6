/*
 * Copyright (c) 2024-present Opalbase, Ltd.
 */

package schema

// object is the common part of every schema object kind. Concrete kinds
// embed it and provide CreateSQL / DropSQL themselves.
type object struct {
	schema *Schema
	id     int
	name   string
	kind   Kind
}

func makeObject(schema *Schema, id int, name string, kind Kind) object {
	return object{schema: schema, id: id, name: name, kind: kind}
}

func (o *object) ID() int { return o.id }

func (o *object) Name() string { return o.name }

func (o *object) Schema() *Schema { return o.schema }

func (o *object) Kind() Kind { return o.kind }

func (o *object) Rename(newName string) { o.name = newName }

// Returns the quoted, schema-qualified SQL name of the object.
func (o *object) SQL() string {
	return QuoteIdent(o.schema.Name()) + "." + QuoteIdent(o.name)
}

func (o *object) DropSQL() string { return "" }
