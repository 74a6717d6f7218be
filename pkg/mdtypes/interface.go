/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package mdtypes

import "github.com/voedger/mdtypes/pkg/mlname"

// Value type: primitive, platform, metadata-derived or custom.
//
// Value types are immutable and interned, so they can be compared with `==`
// and used as map keys.
type IValueType interface {
	// Returns bilingual type name, e.g. `CatalogRef` and `СправочникСсылка`
	FullName() *mlname.Name

	// Returns Russian name if it is not empty, otherwise English one
	Name() string
	NameEn() string
	NameRu() string

	Variant() ValueTypeVariant

	// Returns kind of metadata object which type is derived from.
	//
	// Returns ObjectKind_null for primitive, platform and opaque custom types
	Kind() ObjectKind

	// Returns is type stands for a set of types, e.g. `AnyRef` or `CatalogRef`
	Composite() bool

	isValueType()
}

// Qualifier of value type, e.g. string length or number precision.
//
// Qualifiers are immutable values.
type IQualifier interface {
	// Returns bilingual description, e.g. `StringQualifiers (10, Fixed)`.
	// Descriptions are used to order and deduplicate qualifiers.
	Description() *mlname.Name

	IsEmpty() bool
}
