/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package mdtypes

import "strings"

// Returns description of reference type to specified object, e.g. `CatalogRef.Products`.
func (r *Registry) RefDescription(kind ObjectKind, name string) *ValueTypeDescription {
	mustKindAndName(kind, name)
	t := r.ValueTypeOrCompute(kind.NameEn() + suffixRef + PathSeparator + name)
	return NewValueTypeDescription([]IValueType{t})
}

// Returns description of reference type to object referenced by ref.
//
// Returns EmptyValueTypeDescription if ref is nil or empty.
func (r *Registry) MdoRefDescription(ref *MdoReference) *ValueTypeDescription {
	t := r.refType(ref)
	if t == nil {
		return EmptyValueTypeDescription
	}
	return NewValueTypeDescription([]IValueType{t})
}

// Returns description of reference types to objects referenced by refs.
// Empty references are skipped.
//
// Returns EmptyValueTypeDescription if there are no references.
func (r *Registry) MdoRefsDescription(refs []*MdoReference) *ValueTypeDescription {
	tt := make([]IValueType, 0, len(refs))
	for _, ref := range refs {
		if t := r.refType(ref); t != nil {
			tt = append(tt, t)
		}
	}
	return NewValueTypeDescription(tt)
}

// Returns reference type to object, e.g. `Catalog.Products` → `CatalogRef.Products`.
// Returns nil if ref is nil or empty.
func (r *Registry) refType(ref *MdoReference) IValueType {
	if ref == nil || ref.IsEmpty() {
		return nil
	}
	kind, path, found := strings.Cut(ref.MdoRef(), PathSeparator)
	if !found {
		return r.ValueTypeOrCompute(kind + suffixRef)
	}
	return r.ValueTypeOrCompute(kind + suffixRef + PathSeparator + path)
}
