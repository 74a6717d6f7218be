/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package mdtypes

import (
	"cmp"

	"github.com/voedger/mdtypes/pkg/mlname"
)

type valueType struct {
	name      *mlname.Name
	variant   ValueTypeVariant
	kind      ObjectKind
	composite bool
}

func (t *valueType) FullName() *mlname.Name    { return t.name }
func (t *valueType) Name() string              { return t.name.Get() }
func (t *valueType) NameEn() string            { return t.name.En() }
func (t *valueType) NameRu() string            { return t.name.Ru() }
func (t *valueType) Variant() ValueTypeVariant { return t.variant }
func (t *valueType) Kind() ObjectKind          { return t.kind }
func (t *valueType) Composite() bool           { return t.composite }
func (t *valueType) String() string            { return t.name.Get() }
func (t *valueType) isValueType()              {}

// Primitive type: String, Date, Number, Boolean or Null.
type PrimitiveType struct {
	valueType
}

// Built-in type of platform, e.g. ValueStorage.
type PlatformType struct {
	valueType
}

// Type derived from metadata object kind, e.g. CatalogRef.
type MetadataType struct {
	valueType
}

// Type which is not known by builtin catalogs.
//
// Custom type is derived from metadata if its name prefix is a metadata type,
// e.g. `CatalogRef.Products`, otherwise it is opaque.
type CustomType struct {
	valueType
}

// Compares types by English name, then by Russian one.
func CompareValueTypes(a, b IValueType) int {
	if c := cmp.Compare(a.NameEn(), b.NameEn()); c != 0 {
		return c
	}
	return cmp.Compare(a.NameRu(), b.NameRu())
}
