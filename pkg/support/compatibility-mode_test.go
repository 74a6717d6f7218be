/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package support_test

import (
	"testing"

	"github.com/voedger/mdtypes/pkg/goutils/testingu/require"
	"github.com/voedger/mdtypes/pkg/support"
)

func TestParseCompatibilityMode(t *testing.T) {
	require := require.New(t)

	tests := []struct {
		s              string
		minor, version uint
	}{
		{"Version_8_3_10", 3, 10},
		{"Version8_1", 1, 0},
		{"Version8_2_16", 2, 16},
		{"DontUse", 3, 99},
		{"dontuse", 3, 99},
		{"", 3, 99},
		{"Version_7_7", 3, 99},
		{"Version_8_x", 3, 99},
		{"8.3.10", 3, 99},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			m := support.ParseCompatibilityMode(tt.s)
			require.EqualValues(support.CompatibilityModeMajor, m.Major())
			require.Equal(tt.minor, m.Minor())
			require.Equal(tt.version, m.Version())
		})
	}

	require.Equal(support.DefaultCompatibilityMode, support.ParseCompatibilityMode("DontUse"))
	require.Equal("8.3.10", support.ParseCompatibilityMode("Version_8_3_10").String())
}

// Modes are ordered ascending: older modes are less
func TestCompareCompatibilityModes(t *testing.T) {
	require := require.New(t)

	a := support.NewCompatibilityMode(3, 10)
	b := support.NewCompatibilityMode(3, 11)
	c := support.NewCompatibilityMode(2, 19)

	require.Negative(support.CompareCompatibilityModes(a, b))
	require.Positive(support.CompareCompatibilityModes(b, a))
	require.Zero(support.CompareCompatibilityModes(a, support.NewCompatibilityMode(3, 10)))
	require.Zero(support.CompareCompatibilityModes(a, support.ParseCompatibilityMode("Version_8_3_10")))
	require.Positive(support.CompareCompatibilityModes(b, c))
	require.Positive(support.CompareCompatibilityModes(a, c))
}
