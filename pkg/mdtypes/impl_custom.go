/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package mdtypes

import (
	"fmt"
	"strings"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/mdtypes/pkg/mlname"
)

// Finds built-in type by English or Russian name, case-insensitive.
//
// Only primitive, platform and metadata types are found, custom types are not.
func (r *Registry) ValueType(name string) (IValueType, bool) {
	return FindValueType(name)
}

// Finds built-in type by English or Russian name, case-insensitive.
func FindValueType(name string) (IValueType, bool) {
	return builtinTypes.Find(name)
}

// Finds custom type previously computed by ValueTypeOrCompute.
func (r *Registry) FindCustomValueType(name string) (*CustomType, bool) {
	return r.customs.Get(mlname.Fold(name))
}

// Returns built-in type by name, or computes custom type.
//
// Custom type name with dotted prefix of metadata type, e.g. `CatalogRef.Products`,
// inherits kind and both names from this type: `CatalogRef.Products` and
// `СправочникСсылка.Products`. Otherwise custom type is opaque.
//
// Never returns nil.
func (r *Registry) ValueTypeOrCompute(name string) IValueType {
	if t, ok := builtinTypes.Find(name); ok {
		r.metrics.lookup(lookupValueType, lookupHit)
		return t
	}
	if t, ok := r.FindCustomValueType(name); ok {
		r.metrics.lookup(lookupValueType, lookupHit)
		return t
	}

	t := r.computeCustomType(name)

	spellings := t.FullName().Spellings()
	if len(spellings) == 0 {
		// nameless type is cached under empty key
		spellings = []string{""}
	}
	actual, loaded := r.customs.GetOrPut(mlname.Fold(spellings[0]), t)
	if !loaded {
		for _, s := range spellings[1:] {
			r.customs.GetOrPut(mlname.Fold(s), actual)
		}
	}

	if loaded {
		r.metrics.lookup(lookupValueType, lookupHit)
		return actual
	}

	r.customsCount.Add(1)
	r.metrics.lookup(lookupValueType, lookupCreated)
	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("%v: custom value type «%s» computed, kind %v", r, name, actual.Kind()))
	}
	return actual
}

func (r *Registry) computeCustomType(name string) *CustomType {
	if prefix, rest, found := strings.Cut(name, PathSeparator); found {
		if base, ok := builtinTypes.Find(prefix); ok {
			if mt, ok := base.(*MetadataType); ok {
				return &CustomType{valueType{
					name:    r.names.Name(mt.NameEn()+PathSeparator+rest, mt.NameRu()+PathSeparator+rest),
					variant: ValueTypeVariant_Metadata,
					kind:    mt.Kind(),
				}}
			}
		}
	}
	return &CustomType{valueType{
		name: r.names.Name(name, ""),
	}}
}
