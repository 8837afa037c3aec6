/*
 * Copyright (c) 2024-present Opalbase, Ltd.
 */

package catalog

// # User
//
// A database principal. Schemas reference their owning user through the
// schema.Owner capability.
type User struct {
	name  string
	admin bool
}

func (u *User) Name() string { return u.name }

func (u *User) IsAdmin() bool { return u.admin }
