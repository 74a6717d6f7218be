/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package set

import (
	"fmt"
	"iter"
	"math/bits"
	"strings"
)

// Set of uint8-based enumeration values, e.g. module kinds.
//
// Zero value is an empty set ready to use.
// Set is a value type, copy of set is independent from origin.
type Set[V ~uint8] struct {
	bitmap [4]uint64
}

// Returns new empty set.
func Empty[V ~uint8]() Set[V] {
	return Set[V]{}
}

// Returns new set with specified values.
func From[V ~uint8](values ...V) Set[V] {
	s := Set[V]{}
	for _, v := range values {
		s.bitmap[v/64] |= 1 << (v % 64)
	}
	return s
}

// Iterates over set values in ascending order.
func (s Set[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for w, b := range s.bitmap {
			for b != 0 {
				i := bits.TrailingZeros64(b)
				if !yield(V(w*64 + i)) {
					return
				}
				b &^= 1 << i
			}
		}
	}
}

// Returns slice of set values in ascending order. Returns nil if set is empty.
func (s Set[V]) AsArray() (a []V) {
	if l := s.Len(); l > 0 {
		a = make([]V, 0, l)
		for v := range s.All() {
			a = append(a, v)
		}
	}
	return a
}

// Returns is set contains specified value.
func (s Set[V]) Contains(v V) bool {
	return s.bitmap[v/64]&(1<<(v%64)) != 0
}

// Returns count of values in set.
func (s Set[V]) Len() int {
	c := 0
	for _, b := range s.bitmap {
		c += bits.OnesCount64(b)
	}
	return c
}

// Renders set values in square brackets separated by space.
//
// If value type has `TrimString() string` method, then it is used to render values,
// otherwise values are rendered with fmt.Sprint
func (s Set[V]) String() string {
	ss := make([]string, 0, s.Len())
	for v := range s.All() {
		if t, ok := any(v).(interface{ TrimString() string }); ok {
			ss = append(ss, t.TrimString())
		} else {
			ss = append(ss, fmt.Sprint(v))
		}
	}
	return "[" + strings.Join(ss, " ") + "]"
}
