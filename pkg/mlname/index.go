/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package mlname

import (
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/untillpro/goutils/logger"
)

// Case-insensitive reverse index from spellings to entities.
//
// Index is built once and read-only after that, so it is safe for concurrent use.
// If several entities have the same spelling, the first one wins.
type Index[E comparable] struct {
	keys map[string]E
}

type indexOptions[E comparable] struct {
	sentinel    E
	hasSentinel bool
}

type IndexOption[E comparable] func(*indexOptions[E])

// Entity e is not indexed. It can be returned only as default by FindOr.
func ExcludeSentinel[E comparable](e E) IndexOption[E] {
	return func(o *indexOptions[E]) {
		o.sentinel = e
		o.hasSentinel = true
	}
}

// Builds new index from entities and their spellings. Empty spellings are not indexed.
func NewIndex[E comparable](entries iter.Seq2[E, []string], opts ...IndexOption[E]) *Index[E] {
	o := indexOptions[E]{}
	for _, opt := range opts {
		opt(&o)
	}

	idx := &Index[E]{keys: make(map[string]E)}
	for e, spellings := range entries {
		if o.hasSentinel && e == o.sentinel {
			continue
		}
		for _, s := range spellings {
			if s == "" {
				continue
			}
			key := Fold(s)
			if exists, ok := idx.keys[key]; ok {
				if exists != e && logger.IsVerbose() {
					logger.Verbose(fmt.Sprintf("spelling «%s» of %v is already indexed by %v", s, e, exists))
				}
				continue
			}
			idx.keys[key] = e
		}
	}
	return idx
}

// Returns entity by spelling, case-insensitive.
func (idx *Index[E]) Find(s string) (e E, ok bool) {
	e, ok = idx.keys[Fold(s)]
	return e, ok
}

// Returns entity by spelling, case-insensitive. Returns def if spelling is not found.
func (idx *Index[E]) FindOr(s string, def E) E {
	if e, ok := idx.Find(s); ok {
		return e
	}
	return def
}

// Returns count of indexed spellings.
func (idx *Index[E]) Len() int { return len(idx.keys) }

// Returns folded spellings in sorted order.
func (idx *Index[E]) Keys() []string {
	return slices.Sorted(maps.Keys(idx.keys))
}
