/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package mdtypes

import (
	"cmp"
	"fmt"

	"github.com/voedger/mdtypes/pkg/mlname"
)

type emptyQualifiers struct{}

func (emptyQualifiers) Description() *mlname.Name { return mlname.Empty }
func (emptyQualifiers) IsEmpty() bool             { return true }
func (emptyQualifiers) String() string            { return "" }

// Qualifier which qualifies nothing.
//
// Value type descriptions never store it.
var EmptyQualifiers IQualifier = emptyQualifiers{}

type qualifier struct {
	desc *mlname.Name
}

func (q *qualifier) Description() *mlname.Name { return q.desc }
func (q *qualifier) IsEmpty() bool             { return false }
func (q *qualifier) String() string            { return q.desc.En() }

// Qualifiers of String type: length and allowed length.
type StringQualifiers struct {
	qualifier
	length        uint
	allowedLength AllowedLength
}

// Returns new string qualifiers. If allowed length is omitted then Variable is used.
//
// Zero length means unlimited string.
func NewStringQualifiers(length uint, allowedLength ...AllowedLength) *StringQualifiers {
	l := allowedLengthOrDefault(allowedLength...)
	return &StringQualifiers{
		qualifier: qualifier{newName(
			fmt.Sprintf("StringQualifiers (%d, %s)", length, l.NameEn()),
			fmt.Sprintf("КвалификаторыСтроки (%d, %s)", length, l.NameRu()),
		)},
		length:        length,
		allowedLength: l,
	}
}

func (q *StringQualifiers) Length() uint                 { return q.length }
func (q *StringQualifiers) AllowedLength() AllowedLength { return q.allowedLength }

// Qualifiers of binary data: length and allowed length.
type BinaryDataQualifiers struct {
	qualifier
	length        uint
	allowedLength AllowedLength
}

// Returns new binary data qualifiers. If allowed length is omitted then Variable is used.
func NewBinaryDataQualifiers(length uint, allowedLength ...AllowedLength) *BinaryDataQualifiers {
	l := allowedLengthOrDefault(allowedLength...)
	return &BinaryDataQualifiers{
		qualifier: qualifier{newName(
			fmt.Sprintf("BinaryDataQualifiers (%d, %s)", length, l.NameEn()),
			fmt.Sprintf("КвалификаторыДвоичныхДанных (%d, %s)", length, l.NameRu()),
		)},
		length:        length,
		allowedLength: l,
	}
}

func (q *BinaryDataQualifiers) Length() uint                 { return q.length }
func (q *BinaryDataQualifiers) AllowedLength() AllowedLength { return q.allowedLength }

// Qualifiers of Number type: precision, scale and sign.
type NumberQualifiers struct {
	qualifier
	precision   uint
	scale       uint
	nonNegative bool
}

func NewNumberQualifiers(precision, scale uint, nonNegative bool) *NumberQualifiers {
	en := fmt.Sprintf("NumberQualifiers (%d.%d", precision, scale)
	ru := fmt.Sprintf("КвалификаторыЧисла (%d.%d", precision, scale)
	if nonNegative {
		en += " nonneg"
		ru += " неотр"
	}
	return &NumberQualifiers{
		qualifier:   qualifier{newName(en+")", ru+")")},
		precision:   precision,
		scale:       scale,
		nonNegative: nonNegative,
	}
}

func (q *NumberQualifiers) Precision() uint   { return q.precision }
func (q *NumberQualifiers) Scale() uint       { return q.scale }
func (q *NumberQualifiers) NonNegative() bool { return q.nonNegative }

// Compares number qualifiers by precision, then by scale, then by sign.
// Signed qualifiers are less than non-negative ones.
func CompareNumberQualifiers(a, b *NumberQualifiers) int {
	if c := cmp.Compare(a.precision, b.precision); c != 0 {
		return c
	}
	if c := cmp.Compare(a.scale, b.scale); c != 0 {
		return c
	}
	switch {
	case a.nonNegative == b.nonNegative:
		return 0
	case a.nonNegative:
		return 1
	default:
		return -1
	}
}

// Qualifiers of Date type: date fractions.
type DateQualifiers struct {
	qualifier
	fractions DateFractions
}

// Returns new date qualifiers. If fractions are omitted then DateTime is used.
func NewDateQualifiers(fractions ...DateFractions) *DateQualifiers {
	f := DefaultDateFractions
	if len(fractions) > 0 && fractions[0] != DateFractions_null {
		f = fractions[0]
	}
	return &DateQualifiers{
		qualifier: qualifier{newName(
			fmt.Sprintf("DateQualifiers (%s)", f.NameEn()),
			fmt.Sprintf("КвалификаторыДаты (%s)", f.NameRu()),
		)},
		fractions: f,
	}
}

func (q *DateQualifiers) Fractions() DateFractions { return q.fractions }
