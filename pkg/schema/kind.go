/*
 * Copyright (c) 2024-present Opalbase, Ltd.
 */

package schema

import (
	"strconv"
	"strings"
)

// Schema object kinds enumeration
type Kind uint8

//go:generate stringer -type=Kind -output=kind_string.go

const (
	Kind_null Kind = iota

	// Tables and views share one name space
	Kind_TableOrView

	Kind_Index

	Kind_Sequence

	Kind_Trigger

	Kind_Constraint

	// Named constant, as created by CREATE CONSTANT
	Kind_Constant

	Kind_count
)

func (k Kind) MarshalText() ([]byte, error) {
	var s string
	if k < Kind_count {
		s = k.String()
	} else {
		const base = 10
		s = strconv.FormatUint(uint64(k), base)
	}
	return []byte(s), nil
}

// Renders a Kind in human-readable form, without `Kind_` prefix,
// suitable for debugging or error messages
func (k Kind) TrimString() string {
	const pref = "Kind_"
	return strings.TrimPrefix(k.String(), pref)
}
