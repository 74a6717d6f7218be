/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package mdtypes

import (
	"strconv"
	"strings"

	"github.com/voedger/mdtypes/pkg/mlname"
)

// Parts of date value: date, time or both.
type DateFractions uint8

//go:generate stringer -type=DateFractions -output=date-fractions_string.go

const (
	DateFractions_null DateFractions = iota

	DateFractions_Date
	DateFractions_DateTime
	DateFractions_Time

	DateFractions_Count
)

// Used if no date fractions are specified
const DefaultDateFractions = DateFractions_DateTime

var dateFractionsNames = [DateFractions_Count]*mlname.Name{
	DateFractions_null:     mlname.Empty,
	DateFractions_Date:     newName("Date", "Дата"),
	DateFractions_DateTime: newName("DateTime", "ДатаВремя"),
	DateFractions_Time:     newName("Time", "Время"),
}

var dateFractions = mlname.NewIndex[DateFractions](
	func(yield func(DateFractions, []string) bool) {
		for f := range DateFractions_Count {
			if !yield(f, dateFractionsNames[f].Spellings()) {
				return
			}
		}
	})

// Returns date fractions by English or Russian name, case-insensitive.
// Returns DefaultDateFractions if name is unknown.
func DateFractionsFromName(name string) DateFractions {
	return dateFractions.FindOr(name, DefaultDateFractions)
}

func (f DateFractions) FullName() *mlname.Name {
	if f < DateFractions_Count {
		return dateFractionsNames[f]
	}
	return mlname.Empty
}

func (f DateFractions) NameEn() string { return f.FullName().En() }

func (f DateFractions) NameRu() string { return f.FullName().Ru() }

func (f DateFractions) MarshalText() ([]byte, error) {
	var s string
	if f < DateFractions_Count {
		s = f.String()
	} else {
		const base = 10
		s = strconv.FormatUint(uint64(f), base)
	}
	return []byte(s), nil
}

// Renders a DateFractions in human-readable form, without "DateFractions_" prefix,
// suitable for debugging or error messages
func (f DateFractions) TrimString() string {
	const pref = "DateFractions_"
	return strings.TrimPrefix(f.String(), pref)
}
