/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package mdtypes

import (
	"strconv"
	"strings"
)

// Variant (origin) of value type.
type ValueTypeVariant uint8

//go:generate stringer -type=ValueTypeVariant -output=value-type-variant_string.go

const (
	// null - unknown variant, used by custom types which are not derived from metadata
	ValueTypeVariant_null ValueTypeVariant = iota

	// String, Date, Number, Boolean and Null
	ValueTypeVariant_Primitive

	// Built-in types of platform, e.g. ValueStorage or UUID
	ValueTypeVariant_Platform

	// Types derived from metadata objects, e.g. CatalogRef
	ValueTypeVariant_Metadata

	// Types of form attributes
	ValueTypeVariant_Form

	ValueTypeVariant_Count
)

func (v ValueTypeVariant) MarshalText() ([]byte, error) {
	var s string
	if v < ValueTypeVariant_Count {
		s = v.String()
	} else {
		const base = 10
		s = strconv.FormatUint(uint64(v), base)
	}
	return []byte(s), nil
}

// Renders a ValueTypeVariant in human-readable form, without "ValueTypeVariant_" prefix,
// suitable for debugging or error messages
func (v ValueTypeVariant) TrimString() string {
	const pref = "ValueTypeVariant_"
	return strings.TrimPrefix(v.String(), pref)
}
