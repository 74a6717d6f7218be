/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package mdtypes

import (
	"strconv"
	"strings"

	"github.com/voedger/mdtypes/pkg/mlname"
)

// Variant of string or binary data length.
type AllowedLength uint8

//go:generate stringer -type=AllowedLength -output=allowed-length_string.go

const (
	AllowedLength_null AllowedLength = iota

	AllowedLength_Fixed
	AllowedLength_Variable

	AllowedLength_Count
)

// Used if no allowed length is specified
const DefaultAllowedLength = AllowedLength_Variable

var allowedLengthNames = [AllowedLength_Count]*mlname.Name{
	AllowedLength_null:     mlname.Empty,
	AllowedLength_Fixed:    newName("Fixed", "Фиксированная"),
	AllowedLength_Variable: newName("Variable", "Переменная"),
}

var allowedLengths = mlname.NewIndex[AllowedLength](
	func(yield func(AllowedLength, []string) bool) {
		for l := range AllowedLength_Count {
			if !yield(l, allowedLengthNames[l].Spellings()) {
				return
			}
		}
	})

// Returns allowed length by English or Russian name, case-insensitive.
// Returns DefaultAllowedLength if name is unknown.
func AllowedLengthFromName(name string) AllowedLength {
	return allowedLengths.FindOr(name, DefaultAllowedLength)
}

func (l AllowedLength) FullName() *mlname.Name {
	if l < AllowedLength_Count {
		return allowedLengthNames[l]
	}
	return mlname.Empty
}

func (l AllowedLength) NameEn() string { return l.FullName().En() }

func (l AllowedLength) NameRu() string { return l.FullName().Ru() }

func (l AllowedLength) MarshalText() ([]byte, error) {
	var s string
	if l < AllowedLength_Count {
		s = l.String()
	} else {
		const base = 10
		s = strconv.FormatUint(uint64(l), base)
	}
	return []byte(s), nil
}

// Renders an AllowedLength in human-readable form, without "AllowedLength_" prefix,
// suitable for debugging or error messages
func (l AllowedLength) TrimString() string {
	const pref = "AllowedLength_"
	return strings.TrimPrefix(l.String(), pref)
}

// Returns first specified allowed length, or DefaultAllowedLength if nothing or null is specified.
func allowedLengthOrDefault(l ...AllowedLength) AllowedLength {
	if len(l) > 0 && l[0] != AllowedLength_null {
		return l[0]
	}
	return DefaultAllowedLength
}
