/*
 * Copyright (c) 2024-present Opalbase, Ltd.
 */

package schema

import "strings"

// Quotes an SQL identifier with double quotes. Embedded double quotes
// are doubled.
func QuoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// Quotes an SQL string literal with single quotes. Embedded single quotes
// are doubled.
func QuoteString(s string) string {
	return `'` + strings.ReplaceAll(s, `'`, `''`) + `'`
}
