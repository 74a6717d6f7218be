/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package mdtypes

import (
	"cmp"

	"github.com/google/uuid"

	"github.com/voedger/mdtypes/pkg/mlname"
)

// Reference to metadata object, e.g. `Catalog.Products` (`Справочник.Products`).
//
// References are created and interned by Registry, so references with the same
// case-folded path are the same pointer.
type MdoReference struct {
	kind     ObjectKind
	mdoRef   string
	mdoRefRu string
}

// Reference to nothing.
var EmptyMdoReference = &MdoReference{}

// Namespace of reference identifiers
var mdoRefNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("github.com/voedger/mdtypes/MdoReference"))

func (r *MdoReference) Kind() ObjectKind { return r.kind }

// Returns English path, e.g. `Catalog.Products.Attribute.Code`
func (r *MdoReference) MdoRef() string { return r.mdoRef }

// Returns Russian path, e.g. `Справочник.Products.Реквизит.Code`
func (r *MdoReference) MdoRefRu() string { return r.mdoRefRu }

// Returns English path for English script variant, Russian one otherwise.
func (r *MdoReference) MdoRefFor(v mlname.ScriptVariant) string {
	if v == mlname.ScriptVariant_English {
		return r.mdoRef
	}
	return r.mdoRefRu
}

func (r *MdoReference) IsEmpty() bool { return r == EmptyMdoReference }

// Returns stable identifier, name-based UUID of case-folded English path.
func (r *MdoReference) ID() uuid.UUID {
	if r.IsEmpty() {
		return uuid.Nil
	}
	return uuid.NewSHA1(mdoRefNamespace, []byte(mlname.Fold(r.mdoRef)))
}

func (r *MdoReference) String() string { return r.mdoRef }

// Compares references by kind, then by English path, then by Russian path.
// EmptyMdoReference is less than any other reference.
func CompareMdoRef(a, b *MdoReference) int {
	if a == b {
		return 0
	}
	if a.IsEmpty() {
		return -1
	}
	if b.IsEmpty() {
		return 1
	}
	if c := cmp.Compare(a.kind, b.kind); c != 0 {
		return c
	}
	if c := cmp.Compare(a.mdoRef, b.mdoRef); c != 0 {
		return c
	}
	return cmp.Compare(a.mdoRefRu, b.mdoRefRu)
}
