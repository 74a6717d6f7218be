/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package mdtypes

import (
	"slices"
	"strings"
)

// Declared type of attribute: set of value types with qualifiers.
//
// Types are sorted by names and unique. Qualifiers are sorted by English
// descriptions and unique by description.
type ValueTypeDescription struct {
	types      []IValueType
	qualifiers []IQualifier
	composite  bool
}

// Description without types.
var EmptyValueTypeDescription = &ValueTypeDescription{}

// Returns new description of specified types and qualifiers.
//
// Description is composite if it has more than one type or any of its types is composite.
// Returns EmptyValueTypeDescription if no types specified.
func NewValueTypeDescription(types []IValueType, qualifiers ...IQualifier) *ValueTypeDescription {
	tt := normalizeTypes(types)
	if len(tt) == 0 {
		return EmptyValueTypeDescription
	}
	composite := len(tt) > 1 || slices.ContainsFunc(tt, IValueType.Composite)
	return &ValueTypeDescription{
		types:      tt,
		qualifiers: normalizeQualifiers(qualifiers),
		composite:  composite,
	}
}

// Returns new description with explicit composite flag.
//
// Returns EmptyValueTypeDescription if no types specified.
func NewCompositeValueTypeDescription(types []IValueType, composite bool, qualifiers ...IQualifier) *ValueTypeDescription {
	tt := normalizeTypes(types)
	if len(tt) == 0 {
		return EmptyValueTypeDescription
	}
	return &ValueTypeDescription{
		types:      tt,
		qualifiers: normalizeQualifiers(qualifiers),
		composite:  composite,
	}
}

// Returns description of String type with specified length.
func StringDescription(length uint, allowedLength ...AllowedLength) *ValueTypeDescription {
	return NewValueTypeDescription([]IValueType{StringType}, NewStringQualifiers(length, allowedLength...))
}

// Returns description of Number type with specified precision, scale is zero, sign is allowed.
func NumberDescription(precision uint) *ValueTypeDescription {
	return NumberDescriptionExt(precision, 0, false)
}

// Returns description of Number type with specified precision, scale and sign.
func NumberDescriptionExt(precision, scale uint, nonNegative bool) *ValueTypeDescription {
	return NewValueTypeDescription([]IValueType{NumberType}, NewNumberQualifiers(precision, scale, nonNegative))
}

// Returns sorted types. Returned slice must not be modified.
func (d *ValueTypeDescription) Types() []IValueType { return d.types }

// Returns sorted qualifiers. Returned slice must not be modified.
func (d *ValueTypeDescription) Qualifiers() []IQualifier { return d.qualifiers }

func (d *ValueTypeDescription) Composite() bool { return d.composite }

func (d *ValueTypeDescription) IsEmpty() bool { return len(d.types) == 0 }

// Returns is description contains specified type.
func (d *ValueTypeDescription) Contains(t IValueType) bool {
	return slices.Contains(d.types, t)
}

// Returns first qualifier of type Q, if any.
//
// # Example:
//
//	if q, ok := QualifierOf[*StringQualifiers](d); ok {
//		...
//	}
func QualifierOf[Q IQualifier](d *ValueTypeDescription) (q Q, ok bool) {
	for _, v := range d.qualifiers {
		if q, ok = v.(Q); ok {
			return q, true
		}
	}
	return q, false
}

// Renders description as English type names and qualifiers descriptions, e.g.
// `[CatalogRef.Products, String] [StringQualifiers (10, Variable)]`
func (d *ValueTypeDescription) String() string {
	if d.IsEmpty() {
		return "[]"
	}
	b := strings.Builder{}
	b.WriteByte('[')
	for i, t := range d.types {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(typeDisplayName(t))
	}
	b.WriteByte(']')
	if len(d.qualifiers) > 0 {
		b.WriteString(" [")
		for i, q := range d.qualifiers {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(q.Description().En())
		}
		b.WriteByte(']')
	}
	return b.String()
}

func typeDisplayName(t IValueType) string {
	if en := t.NameEn(); en != "" {
		return en
	}
	return t.NameRu()
}

// Returns sorted copy of types without nils and duplicates
func normalizeTypes(types []IValueType) []IValueType {
	tt := make([]IValueType, 0, len(types))
	for _, t := range types {
		if t != nil {
			tt = append(tt, t)
		}
	}
	slices.SortStableFunc(tt, CompareValueTypes)
	return slices.Clip(slices.Compact(tt))
}

// Returns sorted copy of qualifiers without empty ones and duplicates.
// Returns nil if no qualifiers remains.
func normalizeQualifiers(qualifiers []IQualifier) []IQualifier {
	qq := make([]IQualifier, 0, len(qualifiers))
	for _, q := range qualifiers {
		if q != nil && !q.IsEmpty() {
			qq = append(qq, q)
		}
	}
	if len(qq) == 0 {
		return nil
	}
	slices.SortStableFunc(qq, func(a, b IQualifier) int {
		return strings.Compare(a.Description().En(), b.Description().En())
	})
	return slices.Clip(slices.CompactFunc(qq, func(a, b IQualifier) bool {
		return a.Description() == b.Description()
	}))
}
