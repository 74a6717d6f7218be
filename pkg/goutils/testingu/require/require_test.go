/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package require_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/voedger/mdtypes/pkg/goutils/testingu/require"
)

var (
	Is         = require.Is
	Has        = require.Has
	PanicsWith = require.PanicsWith
	ErrorWith  = require.ErrorWith
)

func TestConstraints(t *testing.T) {
	require := require.New(t)

	errTest := errors.New("test error")

	t.Run("ErrorWith", func(t *testing.T) {
		err := fmt.Errorf("%w: catalog «Items»", errTest)
		require.ErrorWith(err,
			require.Is(errTest),
			require.NotIs(errors.ErrUnsupported),
			require.Has("catalog", "Items"),
			require.NotHas("document"))
	})

	t.Run("PanicsWith", func(t *testing.T) {
		require.PanicsWith(func() { panic(fmt.Errorf("%w: bang", errTest)) },
			require.Is(errTest),
			require.Has("bang"))
		require.PanicsWith(func() { panic("text panic") },
			require.Has("text"),
			require.NotIs(errTest))
	})

	t.Run("should fail", func(t *testing.T) {
		m := new(mockT)
		require.False(Is(errTest)(m, "not an error"))
		require.False(Has("x")(m, "abc"))
		require.False(PanicsWith(m, func() {}))
		require.False(ErrorWith(m, nil))
		require.Equal(4, m.failed)
	})
}

type mockT struct{ failed int }

func (m *mockT) Errorf(string, ...any) { m.failed++ }
