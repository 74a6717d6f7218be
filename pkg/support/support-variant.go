/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package support

import (
	"strconv"
	"strings"

	"github.com/voedger/mdtypes/pkg/mlname"
)

// Variant of vendor support of metadata object.
//
// Variants are ordered by priority: the less priority number, the stronger support.
type SupportVariant uint8

//go:generate stringer -type=SupportVariant -output=support-variant_string.go

const (
	// null - object is not supported. Has the lowest priority
	SupportVariant_null SupportVariant = iota

	// Object is not editable
	SupportVariant_NotEditable

	// Object is editable, vendor support is enabled
	SupportVariant_EditableSupportEnabled

	// Object is removed from vendor support
	SupportVariant_NotSupported

	SupportVariant_Count
)

// Priority of SupportVariant_null
const NonePriority = 99

var supportVariantProps = [SupportVariant_Count]struct {
	name     *mlname.Name
	priority int
}{
	SupportVariant_null:                   {mlname.NewName("None", "Нет"), NonePriority},
	SupportVariant_NotEditable:            {mlname.NewName("NotEditable", "Не редактируется"), 0},
	SupportVariant_EditableSupportEnabled: {mlname.NewName("EditableSupportEnabled", "Редактируется с сохранением поддержки"), 1},
	SupportVariant_NotSupported:           {mlname.NewName("NotSupported", "Снято с поддержки"), 2},
}

var supportVariants = mlname.NewIndex[SupportVariant](
	func(yield func(SupportVariant, []string) bool) {
		for v := range SupportVariant_Count {
			if !yield(v, append(supportVariantProps[v].name.Spellings(), v.TrimString())) {
				return
			}
		}
	})

// Returns variant by English or Russian name, case-insensitive.
// Returns SupportVariant_null if name is unknown.
func SupportVariantFromName(name string) SupportVariant {
	return supportVariants.FindOr(name, SupportVariant_null)
}

// Returns variant with specified priority.
// Returns SupportVariant_null if there is no such priority.
func SupportVariantFromPriority(priority int) SupportVariant {
	for v := range SupportVariant_Count {
		if supportVariantProps[v].priority == priority {
			return v
		}
	}
	return SupportVariant_null
}

// Returns variant with the strongest support, i.e. with the least priority number.
// Returns SupportVariant_null if no variants specified.
func Max(variants ...SupportVariant) SupportVariant {
	res := SupportVariant_null
	for _, v := range variants {
		res = Max2(res, v)
	}
	return res
}

// Returns variant with the strongest support. If priorities are equal, then returns a.
func Max2(a, b SupportVariant) SupportVariant {
	if a.Priority() <= b.Priority() {
		return a
	}
	return b
}

// Returns priority number. Unknown variants have NonePriority.
func (v SupportVariant) Priority() int {
	if v < SupportVariant_Count {
		return supportVariantProps[v].priority
	}
	return NonePriority
}

func (v SupportVariant) FullName() *mlname.Name {
	if v < SupportVariant_Count {
		return supportVariantProps[v].name
	}
	return mlname.Empty
}

func (v SupportVariant) MarshalText() ([]byte, error) {
	var s string
	if v < SupportVariant_Count {
		s = v.String()
	} else {
		const base = 10
		s = strconv.FormatUint(uint64(v), base)
	}
	return []byte(s), nil
}

// Renders a SupportVariant in human-readable form, without "SupportVariant_" prefix,
// suitable for debugging or error messages
func (v SupportVariant) TrimString() string {
	const pref = "SupportVariant_"
	return strings.TrimPrefix(v.String(), pref)
}
