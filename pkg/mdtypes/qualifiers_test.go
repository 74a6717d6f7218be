/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package mdtypes_test

import (
	"testing"

	"github.com/voedger/mdtypes/pkg/goutils/testingu/require"
	"github.com/voedger/mdtypes/pkg/mdtypes"
)

func TestQualifiers_Description(t *testing.T) {
	require := require.New(t)

	tests := []struct {
		name   string
		q      mdtypes.IQualifier
		en, ru string
	}{
		{"string fixed", mdtypes.NewStringQualifiers(10, mdtypes.AllowedLength_Fixed),
			"StringQualifiers (10, Fixed)", "КвалификаторыСтроки (10, Фиксированная)"},
		{"string default", mdtypes.NewStringQualifiers(0),
			"StringQualifiers (0, Variable)", "КвалификаторыСтроки (0, Переменная)"},
		{"binary", mdtypes.NewBinaryDataQualifiers(1024),
			"BinaryDataQualifiers (1024, Variable)", "КвалификаторыДвоичныхДанных (1024, Переменная)"},
		{"number nonneg", mdtypes.NewNumberQualifiers(10, 5, true),
			"NumberQualifiers (10.5 nonneg)", "КвалификаторыЧисла (10.5 неотр)"},
		{"number", mdtypes.NewNumberQualifiers(10, 0, false),
			"NumberQualifiers (10.0)", "КвалификаторыЧисла (10.0)"},
		{"date default", mdtypes.NewDateQualifiers(),
			"DateQualifiers (DateTime)", "КвалификаторыДаты (ДатаВремя)"},
		{"date", mdtypes.NewDateQualifiers(mdtypes.DateFractions_Date),
			"DateQualifiers (Date)", "КвалификаторыДаты (Дата)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.False(tt.q.IsEmpty())
			require.Equal(tt.en, tt.q.Description().En())
			require.Equal(tt.ru, tt.q.Description().Ru())
		})
	}

	t.Run("equal qualifiers have the same description", func(t *testing.T) {
		require.Same(
			mdtypes.NewStringQualifiers(10, mdtypes.AllowedLength_Fixed).Description(),
			mdtypes.NewStringQualifiers(10, mdtypes.AllowedLength_Fixed).Description())
	})

	t.Run("empty qualifiers", func(t *testing.T) {
		require.True(mdtypes.EmptyQualifiers.IsEmpty())
		require.True(mdtypes.EmptyQualifiers.Description().IsEmpty())
	})
}

func TestQualifiers_Props(t *testing.T) {
	require := require.New(t)

	s := mdtypes.NewStringQualifiers(25, mdtypes.AllowedLength_null)
	require.EqualValues(25, s.Length())
	require.Equal(mdtypes.AllowedLength_Variable, s.AllowedLength())

	b := mdtypes.NewBinaryDataQualifiers(8, mdtypes.AllowedLength_Fixed)
	require.EqualValues(8, b.Length())
	require.Equal(mdtypes.AllowedLength_Fixed, b.AllowedLength())

	n := mdtypes.NewNumberQualifiers(15, 2, true)
	require.EqualValues(15, n.Precision())
	require.EqualValues(2, n.Scale())
	require.True(n.NonNegative())

	require.Equal(mdtypes.DateFractions_Time, mdtypes.NewDateQualifiers(mdtypes.DateFractions_Time).Fractions())
	require.Equal(mdtypes.DateFractions_DateTime, mdtypes.NewDateQualifiers(mdtypes.DateFractions_null).Fractions())
}

func TestCompareNumberQualifiers(t *testing.T) {
	require := require.New(t)

	q := mdtypes.NewNumberQualifiers

	require.Zero(mdtypes.CompareNumberQualifiers(q(10, 2, true), q(10, 2, true)))
	require.Negative(mdtypes.CompareNumberQualifiers(q(5, 2, true), q(10, 0, false)))
	require.Positive(mdtypes.CompareNumberQualifiers(q(10, 3, false), q(10, 2, true)))
	require.Negative(mdtypes.CompareNumberQualifiers(q(10, 2, false), q(10, 2, true)))
	require.Positive(mdtypes.CompareNumberQualifiers(q(10, 2, true), q(10, 2, false)))
}

func TestAllowedLengthAndDateFractionsFromName(t *testing.T) {
	require := require.New(t)

	require.Equal(mdtypes.AllowedLength_Fixed, mdtypes.AllowedLengthFromName("fixed"))
	require.Equal(mdtypes.AllowedLength_Fixed, mdtypes.AllowedLengthFromName("Фиксированная"))
	require.Equal(mdtypes.AllowedLength_Variable, mdtypes.AllowedLengthFromName("unknown"))
	require.Equal(mdtypes.AllowedLength_Variable, mdtypes.AllowedLengthFromName(""))

	require.Equal(mdtypes.DateFractions_Date, mdtypes.DateFractionsFromName("DATE"))
	require.Equal(mdtypes.DateFractions_Time, mdtypes.DateFractionsFromName("время"))
	require.Equal(mdtypes.DateFractions_DateTime, mdtypes.DateFractionsFromName("🙂"))
}
