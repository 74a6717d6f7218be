/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package mlname

import "fmt"

// Bilingual (English and Russian) name.
//
// Names are interned: names with equal spellings are the same pointer,
// so names can be compared with `==`.
type Name struct {
	en, ru string
}

// Empty name. Both spellings are empty.
var Empty = &Name{}

// Returns interned name with specified English and Russian spellings.
//
// If both spellings are empty, then Empty is returned.
// If only one spelling is specified, then it is stored as English if it contains
// only ASCII letters, digits and underscores, otherwise as Russian.
func NewName(en, ru string) *Name {
	return builtin.Name(en, ru)
}

// Returns interned name with one spelling. Language is detected automatically.
func NewNameAuto(s string) *Name {
	return builtin.Name(s, "")
}

// Returns Russian spelling if it is not empty, otherwise English one.
func (n *Name) Get() string {
	if n.ru == "" {
		return n.en
	}
	return n.ru
}

// Returns spelling for language code, e.g. "en" or "ru". Unknown code is treated as Russian.
func (n *Name) GetByCode(code string) string {
	return n.GetFor(ScriptVariantFromName(code))
}

// Returns English spelling for English script variant if it is not empty,
// otherwise Russian.
func (n *Name) GetFor(v ScriptVariant) string {
	if v == ScriptVariant_English && n.en != "" {
		return n.en
	}
	return n.ru
}

func (n *Name) En() string { return n.en }

func (n *Name) Ru() string { return n.ru }

func (n *Name) IsEmpty() bool { return n == Empty }

// Returns not empty spellings, English first.
func (n *Name) Spellings() []string {
	s := make([]string, 0, 2)
	if n.en != "" {
		s = append(s, n.en)
	}
	if n.ru != "" {
		s = append(s, n.ru)
	}
	return s
}

func (n *Name) String() string {
	if n.IsEmpty() {
		return ""
	}
	return fmt.Sprintf("Name (ru: %s, en: %s)", n.ru, n.en)
}

// Compares two names by Russian spelling, then by English one.
//
// nil is less than any name.
func Compare(a, b *Name) int {
	switch {
	case a == b:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	if a.ru != b.ru {
		if a.ru < b.ru {
			return -1
		}
		return 1
	}
	switch {
	case a.en < b.en:
		return -1
	case a.en > b.en:
		return 1
	}
	return 0
}
