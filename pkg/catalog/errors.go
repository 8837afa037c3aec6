/*
 * Copyright (c) 2024-present Opalbase, Ltd.
 */

package catalog

import (
	"errors"

	"github.com/opalbase/opal/pkg/schema"
)

var ErrSchemaNotFoundError = errors.New("schema not found")

func ErrSchemaNotFound(name string) error {
	return schema.EnrichError(ErrSchemaNotFoundError, "«%s»", name)
}

var ErrSchemaAlreadyExistsError = errors.New("schema already exists")

func ErrSchemaAlreadyExists(name string) error {
	return schema.EnrichError(ErrSchemaAlreadyExistsError, "«%s»", name)
}

var ErrUserNotFoundError = errors.New("user not found")

func ErrUserNotFound(name string) error {
	return schema.EnrichError(ErrUserNotFoundError, "«%s»", name)
}

var ErrUserAlreadyExistsError = errors.New("user already exists")

func ErrUserAlreadyExists(name string) error {
	return schema.EnrichError(ErrUserAlreadyExistsError, "«%s»", name)
}

// Dropping a protected system schema is a user error, raised here: the
// CanDrop query itself never raises.
var ErrSchemaCanNotBeDroppedError = errors.New("schema can not be dropped")

func ErrSchemaCanNotBeDropped(name string) error {
	return schema.EnrichError(ErrSchemaCanNotBeDroppedError, "«%s»", name)
}
