/*
 * Copyright (c) 2024-present Opalbase, Ltd.
 */

package schema

import (
	"errors"
	"fmt"
)

func EnrichError(err error, msg string, args ...any) error {
	s := msg
	if len(args) > 0 {
		s = fmt.Sprintf(msg, args...)
	}
	return fmt.Errorf("%w: %s", err, s)
}

var ErrNotFoundError = errors.New("not found")

func ErrNotFound(msg string, args ...any) error {
	return EnrichError(ErrNotFoundError, msg, args...)
}

func ErrTableOrViewNotFound(name string) error {
	return ErrNotFound("table or view «%s»", name)
}

func ErrIndexNotFound(name string) error {
	return ErrNotFound("index «%s»", name)
}

func ErrSequenceNotFound(name string) error {
	return ErrNotFound("sequence «%s»", name)
}

func ErrConstraintNotFound(name string) error {
	return ErrNotFound("constraint «%s»", name)
}

func ErrConstantNotFound(name string) error {
	return ErrNotFound("constant «%s»", name)
}

var ErrAlreadyExistsError = errors.New("already exists")

func ErrAlreadyExists(msg string, args ...any) error {
	return EnrichError(ErrAlreadyExistsError, msg, args...)
}

// ErrInternalError indicates a broken programming contract, such as
// registering an object into a foreign schema or renaming to an occupied
// name. Contract violations are raised as panics wrapping this sentinel
// and are only actively verified while consistency checks are enabled.
var ErrInternalError = errors.New("internal error")

func errInternal(msg string, args ...any) error {
	return EnrichError(ErrInternalError, msg, args...)
}
