/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package mlname

import (
	"slices"
	"strings"

	"github.com/voedger/mdtypes/pkg/objcache"
)

type nameKey struct {
	en, ru string
}

// Interns names and multi-language strings.
//
// All interners store values into the single package level store,
// so equal names are the same pointer regardless of interner used.
// Interner also remembers values requested through it, to count them.
type Interner struct {
	root      *Interner
	names     objcache.ICache[nameKey, *Name]
	mlStrings objcache.ICache[string, *MLString]
}

// Package level store. Names of static catalogs and names from NewName are interned here.
var builtin = newInterner(nil)

func newInterner(root *Interner) *Interner {
	return &Interner{
		root:      root,
		names:     objcache.New[nameKey, *Name](),
		mlStrings: objcache.New[string, *MLString](),
	}
}

// Returns new interner over package level store.
func NewInterner() *Interner {
	return newInterner(builtin)
}

// Returns interned name. See NewName for normalization rules.
func (i *Interner) Name(en, ru string) *Name {
	en, ru = normalize(en, ru)
	if en == "" && ru == "" {
		return Empty
	}
	key := nameKey{en, ru}
	if n, ok := i.names.Get(key); ok {
		return n
	}
	n := &Name{en, ru}
	if i.root != nil {
		n, _ = i.root.names.GetOrPut(key, n)
	}
	n, _ = i.names.GetOrPut(key, n)
	return n
}

// Returns count of distinct names requested through this interner.
func (i *Interner) NamesLen() int {
	return i.names.Len()
}

// Returns interned multi-language string with single entry.
func (i *Interner) MLString(lang, value string) *MLString {
	return i.mlString([]MLEntry{{lang, value}})
}

// Returns interned union of specified multi-language strings.
//
// Returns EmptyMLString if no strings specified, and the string itself if only one specified.
func (i *Interner) MergeMLStrings(ss ...*MLString) *MLString {
	switch len(ss) {
	case 0:
		return EmptyMLString
	case 1:
		return ss[0]
	}
	e := make([]MLEntry, 0, len(ss)*2)
	for _, s := range ss {
		e = append(e, s.entries...)
	}
	return i.mlString(e)
}

func (i *Interner) mlString(e []MLEntry) *MLString {
	slices.SortFunc(e, compareEntries)
	e = slices.Compact(e)
	if len(e) == 0 {
		return EmptyMLString
	}

	key := mlStringKey(e)
	if s, ok := i.mlStrings.Get(key); ok {
		return s
	}
	s := &MLString{entries: slices.Clip(e)}
	if i.root != nil {
		s, _ = i.root.mlStrings.GetOrPut(key, s)
	}
	s, _ = i.mlStrings.GetOrPut(key, s)
	return s
}

func mlStringKey(e []MLEntry) string {
	b := strings.Builder{}
	for _, e := range e {
		b.WriteString(e.Lang)
		b.WriteByte(0)
		b.WriteString(e.Value)
		b.WriteByte(0)
	}
	return b.String()
}
