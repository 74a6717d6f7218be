/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package mlname

import (
	"iter"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// Language in which source identifiers are written.
type ScriptVariant uint8

//go:generate stringer -type=ScriptVariant -output=script-variant_string.go

const (
	// Unknown script variant. Never returned by ScriptVariantFromName
	ScriptVariant_null ScriptVariant = iota

	ScriptVariant_English
	ScriptVariant_Russian

	ScriptVariant_Count
)

var scriptVariantProps = [ScriptVariant_Count]struct {
	name      *Name
	shortName string
	tag       language.Tag
}{
	ScriptVariant_null:    {NewName("unknown", "неизвестный"), "--", language.Und},
	ScriptVariant_English: {NewName("English", "Английский"), "en", language.English},
	ScriptVariant_Russian: {NewName("Russian", "Русский"), "ru", language.Russian},
}

var scriptVariants = NewIndex[ScriptVariant](
	func(yield func(ScriptVariant, []string) bool) {
		for v := range ScriptVariant_Count {
			p := scriptVariantProps[v]
			if !yield(v, append(p.name.Spellings(), p.shortName)) {
				return
			}
		}
	},
	ExcludeSentinel(ScriptVariant_null))

// Returns script variant by English, Russian or short name, case-insensitive.
// Returns ScriptVariant_Russian if name is unknown.
func ScriptVariantFromName(name string) ScriptVariant {
	return scriptVariants.FindOr(name, ScriptVariant_Russian)
}

// Returns script variant by base language of tag.
// Returns ScriptVariant_Russian if language is not English.
func ScriptVariantFromTag(tag language.Tag) ScriptVariant {
	if base, _ := tag.Base(); base == enBase {
		return ScriptVariant_English
	}
	return ScriptVariant_Russian
}

var enBase, _ = language.English.Base()

// Returns all known script variants, except null.
func ScriptVariants() iter.Seq[ScriptVariant] {
	return func(yield func(ScriptVariant) bool) {
		for v := ScriptVariant_null + 1; v < ScriptVariant_Count; v++ {
			if !yield(v) {
				return
			}
		}
	}
}

func (v ScriptVariant) FullName() *Name {
	if v < ScriptVariant_Count {
		return scriptVariantProps[v].name
	}
	return Empty
}

// Returns short name, e.g. "en" or "ru".
func (v ScriptVariant) ShortName() string {
	if v < ScriptVariant_Count {
		return scriptVariantProps[v].shortName
	}
	return ""
}

// Returns language tag. Returns language.Und for unknown variant.
func (v ScriptVariant) Tag() language.Tag {
	if v < ScriptVariant_Count {
		return scriptVariantProps[v].tag
	}
	return language.Und
}

func (v ScriptVariant) MarshalText() ([]byte, error) {
	var s string
	if v < ScriptVariant_Count {
		s = v.String()
	} else {
		const base = 10
		s = strconv.FormatUint(uint64(v), base)
	}
	return []byte(s), nil
}

// Renders a ScriptVariant in human-readable form, without "ScriptVariant_" prefix,
// suitable for debugging or error messages
func (v ScriptVariant) TrimString() string {
	const pref = "ScriptVariant_"
	return strings.TrimPrefix(v.String(), pref)
}
