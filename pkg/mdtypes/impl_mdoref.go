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

// Returns reference to top-level object, e.g. `Catalog.Products`.
//
// Panics if kind is null or name is empty.
func (r *Registry) MdoRef(kind ObjectKind, name string) *MdoReference {
	mustKindAndName(kind, name)
	return r.mdoRef(kind,
		kind.NameEn()+PathSeparator+name,
		kind.NameRu()+PathSeparator+name)
}

// Returns reference with specified paths. Caller is responsible for paths consistency.
//
// Panics if kind is null or English path is empty.
func (r *Registry) MdoRefFull(kind ObjectKind, mdoRef, mdoRefRu string) *MdoReference {
	mustKindAndName(kind, mdoRef)
	return r.mdoRef(kind, mdoRef, mdoRefRu)
}

// Returns reference to child object, e.g. `Catalog.Products.Attribute.Code`.
//
// If parent is nil or empty then returns top-level reference, see MdoRef.
func (r *Registry) ChildMdoRef(parent *MdoReference, kind ObjectKind, name string) *MdoReference {
	return r.ChildMdoRefRu(parent, kind, name, name)
}

// Returns reference to child object with localized name, e.g. standard attribute
// `Catalog.Products.StandardAttribute.Code` and `Справочник.Products.СтандартныйРеквизит.Код`.
//
// If parent is nil or empty then returns top-level reference with English name.
func (r *Registry) ChildMdoRefRu(parent *MdoReference, kind ObjectKind, name, nameRu string) *MdoReference {
	if parent == nil || parent.IsEmpty() {
		return r.MdoRef(kind, name)
	}
	mustKindAndName(kind, name)
	if nameRu == "" {
		nameRu = name
	}
	return r.mdoRef(kind,
		parent.mdoRef+PathSeparator+kind.NameEn()+PathSeparator+name,
		parent.mdoRefRu+PathSeparator+kind.NameRu()+PathSeparator+nameRu)
}

// Parses full name of metadata object, English or Russian, e.g. `Catalog.Products`,
// `Справочник.Products.Реквизит.Code`.
//
// Full name is a sequence of kind and name pairs separated by dots. Pairs with
// unknown kinds are skipped.
//
// Returns ErrIllFormedReferenceError if full name has less than two parts,
// has no known kinds or has known kind without name.
func (r *Registry) ParseMdoRef(fullName string) (*MdoReference, error) {
	parts := strings.Split(fullName, PathSeparator)
	if len(parts) < 2 {
		return nil, ErrIllFormedReference(fullName)
	}

	var ref *MdoReference
	for i := 0; i < len(parts); i += 2 {
		kind, ok := ObjectKindFromName(parts[i])
		if !ok {
			continue
		}
		if i+1 >= len(parts) || parts[i+1] == "" {
			return nil, ErrIllFormedReference(fullName)
		}
		ref = r.ChildMdoRef(ref, kind, parts[i+1])
	}

	if ref == nil {
		return nil, ErrIllFormedReference(fullName)
	}
	return ref, nil
}

// Parses full name of metadata object. Panics if full name is ill-formed.
func (r *Registry) MustParseMdoRef(fullName string) *MdoReference {
	ref, err := r.ParseMdoRef(fullName)
	if err != nil {
		panic(err)
	}
	return ref
}

// Finds previously created reference by English or Russian path, case-insensitive.
func (r *Registry) FindMdoRef(path string) (*MdoReference, bool) {
	ref, ok := r.refs.Get(mlname.Fold(path))
	if ok {
		r.metrics.lookup(lookupReference, lookupHit)
	} else {
		r.metrics.lookup(lookupReference, lookupMiss)
	}
	return ref, ok
}

func (r *Registry) mdoRef(kind ObjectKind, mdoRef, mdoRefRu string) *MdoReference {
	key := mlname.Fold(mdoRef)
	if ref, ok := r.refs.Get(key); ok {
		r.metrics.lookup(lookupReference, lookupHit)
		return ref
	}

	ref, loaded := r.refs.GetOrPut(key, &MdoReference{kind, mdoRef, mdoRefRu})
	if loaded {
		r.metrics.lookup(lookupReference, lookupHit)
		return ref
	}

	if mdoRefRu != "" {
		if keyRu := mlname.Fold(mdoRefRu); keyRu != key {
			r.refs.GetOrPut(keyRu, ref)
		}
	}
	r.refsCount.Add(1)
	r.metrics.lookup(lookupReference, lookupCreated)

	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("%v: reference «%s» created", r, mdoRef))
	}
	return ref
}

func mustKindAndName(kind ObjectKind, name string) {
	if kind == ObjectKind_null {
		panic(ErrMissed("object kind"))
	}
	if name == "" {
		panic(ErrMissed("%v name", kind))
	}
}
