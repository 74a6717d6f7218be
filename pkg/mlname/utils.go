/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package mlname

import (
	"sync"

	"golang.org/x/text/cases"
)

// Caser is not safe for concurrent use
var folders = sync.Pool{
	New: func() any {
		c := cases.Fold()
		return &c
	},
}

// Returns case-folded form of s, used as a key for case-insensitive lookups.
//
// Folding is full Unicode case folding, so Latin and Cyrillic spellings
// are folded alike.
func Fold(s string) string {
	c := folders.Get().(*cases.Caser)
	defer folders.Put(c)
	return c.String(s)
}

// Returns is s contains only ASCII letters, digits and underscores.
//
// Empty string is Latin.
func IsLatin(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z':
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '_':
		default:
			return false
		}
	}
	return true
}

// Returns normalized pair of name spellings.
//
// If exactly one spelling is specified, then it is stored as English if it is Latin,
// otherwise as Russian.
func normalize(en, ru string) (string, string) {
	switch {
	case en == "" && ru == "":
		return "", ""
	case en == "":
		en, ru = ru, ""
		fallthrough
	case ru == "":
		if !IsLatin(en) {
			return "", en
		}
		return en, ""
	}
	return en, ru
}
