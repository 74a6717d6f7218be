/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

// Package require extends testify require assertions with checks
// of recovered panics and error chains.
package require

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type Require struct {
	*require.Assertions
	t *testing.T
}

func New(t *testing.T) *Require {
	return &Require{
		Assertions: require.New(t),
		t:          t,
	}
}

func (r *Require) Has(substr ...any) Constraint { return Has(substr...) }

func (r *Require) NotHas(substr any) Constraint { return NotHas(substr) }

func (r *Require) Is(target error) Constraint { return Is(target) }

func (r *Require) NotIs(target error) Constraint { return NotIs(target) }

// PanicsWith asserts that f panics and recovered value satisfies the given constraints.
//
//	require := require.New(t)
//	require.PanicsWith(
//		func() { registry.MustParseMdoRef("Catalog") },
//		require.Is(mdtypes.ErrIllFormedReferenceError),
//		require.Has("Catalog"))
func (r *Require) PanicsWith(f func(), c ...Constraint) {
	if !PanicsWith(r.t, f, c...) {
		r.t.FailNow()
	}
}

// ErrorWith asserts that err is not nil and satisfies the given constraints.
func (r *Require) ErrorWith(err error, c ...Constraint) {
	if !ErrorWith(r.t, err, c...) {
		r.t.FailNow()
	}
}
