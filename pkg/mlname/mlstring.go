/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package mlname

import (
	"cmp"
	"strings"
)

// Language-tagged value of multi-language string.
type MLEntry struct {
	Lang  string
	Value string
}

func compareEntries(a, b MLEntry) int {
	if c := cmp.Compare(a.Lang, b.Lang); c != 0 {
		return c
	}
	return cmp.Compare(a.Value, b.Value)
}

// Multi-language string, e.g. synonym or comment of metadata object.
//
// Multi-language string is a set of entries, ordered by language and value.
// Strings are interned, equal strings are the same pointer.
type MLString struct {
	entries []MLEntry
}

// Empty multi-language string.
var EmptyMLString = &MLString{}

// Returns interned multi-language string with single entry.
func NewMLString(lang, value string) *MLString {
	return builtin.MLString(lang, value)
}

// Returns interned union of specified strings.
func MergeMLStrings(ss ...*MLString) *MLString {
	return builtin.MergeMLStrings(ss...)
}

// Returns value for specified language. Language is case-insensitive.
// Returns empty string if language is not found.
func (s *MLString) Get(lang string) string {
	for _, e := range s.entries {
		if strings.EqualFold(e.Lang, lang) {
			return e.Value
		}
	}
	return ""
}

// Returns value of the first entry or empty string if string is empty.
func (s *MLString) Any() string {
	if len(s.entries) == 0 {
		return ""
	}
	return s.entries[0].Value
}

// Returns entries ordered by language and value.
func (s *MLString) Entries() []MLEntry {
	return append([]MLEntry(nil), s.entries...)
}

func (s *MLString) IsEmpty() bool { return len(s.entries) == 0 }

func (s *MLString) Len() int { return len(s.entries) }

func (s *MLString) String() string {
	if s.IsEmpty() {
		return "empty"
	}
	b := strings.Builder{}
	for i, e := range s.entries {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.Lang)
		b.WriteString(": ")
		b.WriteString(e.Value)
	}
	return b.String()
}

// Compares multi-language strings by entries count, then by entries.
func CompareMLStrings(a, b *MLString) int {
	if a == b {
		return 0
	}
	if c := cmp.Compare(len(a.entries), len(b.entries)); c != 0 {
		return c
	}
	for i := range a.entries {
		if c := compareEntries(a.entries[i], b.entries[i]); c != 0 {
			return c
		}
	}
	return 0
}
