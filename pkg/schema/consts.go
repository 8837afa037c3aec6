/*
 * Copyright (c) 2024-present Opalbase, Ltd.
 */

package schema

// Maximum identifier length
const MaxIdentLen = 255

const (
	// Name of the metadata schema, always present and never droppable
	InformationSchema = "INFORMATION_SCHEMA"

	// Name of the default schema, always present and never droppable
	MainSchema = "PUBLIC"
)

// Prefix of synthetic names generated for unnamed constraints
const ConstraintNamePrefix = "CONSTRAINT_"
