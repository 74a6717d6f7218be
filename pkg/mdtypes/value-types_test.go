/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package mdtypes_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/voedger/mdtypes/pkg/goutils/testingu/require"
	"github.com/voedger/mdtypes/pkg/mdtypes"
	"github.com/voedger/mdtypes/pkg/mlname"
)

func TestBuiltinValueTypes(t *testing.T) {
	require := require.New(t)

	require.Len(mdtypes.PrimitiveTypes(), 5)
	require.Len(mdtypes.PlatformTypes(), 36)

	t.Run("every builtin type is found by its names", func(t *testing.T) {
		all := append(append(mdtypes.PrimitiveTypes(), mdtypes.PlatformTypes()...), mdtypes.MetadataTypes()...)
		for _, vt := range all {
			for _, n := range vt.FullName().Spellings() {
				got, ok := mdtypes.FindValueType(n)
				require.True(ok, n)
				require.Same(vt, got, n)
			}
		}
	})

	t.Run("variants", func(t *testing.T) {
		for _, vt := range mdtypes.PrimitiveTypes() {
			require.Equal(mdtypes.ValueTypeVariant_Primitive, vt.Variant())
			require.Equal(mdtypes.ObjectKind_null, vt.Kind())
			require.False(vt.Composite())
		}
		for _, vt := range mdtypes.PlatformTypes() {
			require.Equal(mdtypes.ValueTypeVariant_Platform, vt.Variant())
			require.False(vt.Composite())
		}
		for _, vt := range mdtypes.MetadataTypes() {
			require.Equal(mdtypes.ValueTypeVariant_Metadata, vt.Variant())
			require.NotEqual(mdtypes.ObjectKind_null, vt.Kind(), vt)
			require.Equal(vt != mdtypes.ConstantsSetType, vt.Composite(), vt)
		}
	})

	t.Run("metadata types", func(t *testing.T) {
		tests := []struct {
			name, en, ru string
			kind         mdtypes.ObjectKind
		}{
			{"catalogref", "CatalogRef", "СправочникСсылка", mdtypes.ObjectKind_Catalog},
			{"ДокументОбъект", "DocumentObject", "ДокументОбъект", mdtypes.ObjectKind_Document},
			{"InformationRegisterRecordSet", "InformationRegisterRecordSet", "РегистрСведенийНаборЗаписей", mdtypes.ObjectKind_InformationRegister},
			{"AccumulationRegisterManager", "AccumulationRegisterManager", "РегистрНакопленияМенеджер", mdtypes.ObjectKind_AccumulationRegister},
			{"ПеречислениеСписок", "EnumList", "ПеречислениеСписок", mdtypes.ObjectKind_Enum},
			{"ConstantValueManager", "ConstantValueManager", "КонстантаМенеджерЗначения", mdtypes.ObjectKind_Constant},
			{"КонстантыНабор", "ConstantsSet", "КонстантыНабор", mdtypes.ObjectKind_Constant},
			{"AnyRef", "AnyRef", "ЛюбаяСсылка", mdtypes.ObjectKind_Configuration},
			{"ОпределяемыйТип", "DefinedType", "ОпределяемыйТип", mdtypes.ObjectKind_DefinedType},
			{"Characteristic", "Characteristic", "Характеристика", mdtypes.ObjectKind_ChartOfCharacteristicTypes},
			{"BusinessProcessRoutePointRef", "BusinessProcessRoutePointRef", "ТочкаМаршрутаБизнесПроцессаСсылка", mdtypes.ObjectKind_BusinessProcess},
			{"ExternalDataSourceTableRef", "ExternalDataSourceTableRef", "ВнешнийИсточникДанныхТаблицаСсылка", mdtypes.ObjectKind_ExternalDataSource},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				vt, ok := mdtypes.FindValueType(tt.name)
				require.True(ok)
				require.Equal(tt.en, vt.NameEn())
				require.Equal(tt.ru, vt.NameRu())
				require.Equal(tt.ru, vt.Name())
				require.Equal(tt.kind, vt.Kind())
			})
		}
	})

	t.Run("primitive and platform types", func(t *testing.T) {
		vt, ok := mdtypes.FindValueType("строка")
		require.True(ok)
		require.Same(mdtypes.StringType, vt)

		vt, ok = mdtypes.FindValueType("valuestorage")
		require.True(ok)
		require.Same(mdtypes.ValueStorageType, vt)
		require.Equal("ХранилищеЗначений", vt.Name())
	})

	t.Run("totality", func(t *testing.T) {
		for _, s := range []string{"", "Unknown", "CatalogRef.", "🙂", "Catalog"} {
			require.NotPanics(func() {
				_, ok := mdtypes.FindValueType(s)
				require.False(ok, s)
			})
		}
	})
}

func TestRegistry_ValueTypeOrCompute(t *testing.T) {
	require := require.New(t)

	r := testRegistry("test")

	t.Run("builtin types are not computed", func(t *testing.T) {
		require.Same(mdtypes.NumberType, r.ValueTypeOrCompute("NUMBER"))
		vt, ok := r.ValueType("число")
		require.True(ok)
		require.Same(mdtypes.NumberType, vt)
		require.Zero(r.CustomTypesLen())
	})

	t.Run("custom type derived from metadata type", func(t *testing.T) {
		vt := r.ValueTypeOrCompute("DefinedType.AccessValue")
		require.IsType(&mdtypes.CustomType{}, vt)
		require.Equal(mdtypes.ObjectKind_DefinedType, vt.Kind())
		require.Equal(mdtypes.ValueTypeVariant_Metadata, vt.Variant())
		require.Equal("DefinedType.AccessValue", vt.NameEn())
		require.Equal("ОпределяемыйТип.AccessValue", vt.NameRu())
		require.False(vt.Composite())

		require.Same(vt, r.ValueTypeOrCompute("definedtype.accessvalue"))
		require.Same(vt, r.ValueTypeOrCompute("ОпределяемыйТип.AccessValue"))

		ct, ok := r.FindCustomValueType("ОПРЕДЕЛЯЕМЫЙТИП.ACCESSVALUE")
		require.True(ok)
		require.Same(vt, ct)

		_, ok = r.ValueType("DefinedType.AccessValue")
		require.False(ok)
	})

	t.Run("custom type derived from Russian metadata type", func(t *testing.T) {
		vt := r.ValueTypeOrCompute("СправочникСсылка.Товары")
		require.Equal(mdtypes.ObjectKind_Catalog, vt.Kind())
		require.Equal("CatalogRef.Товары", vt.NameEn())
		require.Equal("СправочникСсылка.Товары", vt.NameRu())
		require.Same(vt, r.ValueTypeOrCompute("CatalogRef.Товары"))
	})

	t.Run("opaque custom type", func(t *testing.T) {
		vt := r.ValueTypeOrCompute("МойТип")
		require.Equal(mdtypes.ValueTypeVariant_null, vt.Variant())
		require.Equal(mdtypes.ObjectKind_null, vt.Kind())
		require.Empty(vt.NameEn())
		require.Equal("МойТип", vt.NameRu())
		require.Same(vt, r.ValueTypeOrCompute("мойтип"))

		vt = r.ValueTypeOrCompute("MyType")
		require.Equal("MyType", vt.NameEn())
		require.Empty(vt.NameRu())

		// dot is not Latin, so dotted name is kept as Russian
		vt = r.ValueTypeOrCompute("Catalog.Products")
		require.Equal(mdtypes.ObjectKind_null, vt.Kind())
		require.Empty(vt.NameEn())
		require.Equal("Catalog.Products", vt.NameRu())
	})

	t.Run("registries are isolated", func(t *testing.T) {
		other := testRegistry("other")
		_, ok := other.FindCustomValueType("МойТип")
		require.False(ok)
		require.NotSame(r.ValueTypeOrCompute("МойТип"), other.ValueTypeOrCompute("МойТип"))
		require.Same(r.ValueTypeOrCompute("МойТип").FullName(), other.ValueTypeOrCompute("МойТип").FullName(),
			"names are shared by registries")
	})

	t.Run("custom type names keep identity with names from other sources", func(t *testing.T) {
		vt := r.ValueTypeOrCompute("SharedOpaque")
		n := vt.FullName()
		require.Same(n, mlname.NewName("SharedOpaque", ""))
		require.Same(n, r.Names().Name("SharedOpaque", ""))

		before := r.Names().Name("NameBeforeNewName", "")
		require.Same(before, mlname.NewNameAuto("NameBeforeNewName"))
		require.Same(before, r.Names().Name("NameBeforeNewName", ""))

		vt = r.ValueTypeOrCompute("CatalogRef.SharedItems")
		require.Same(vt.FullName(), mlname.NewName("CatalogRef.SharedItems", "СправочникСсылка.SharedItems"))
	})

	t.Run("nameless custom type is cached", func(t *testing.T) {
		vt := r.ValueTypeOrCompute("")
		require.IsType(&mdtypes.CustomType{}, vt)
		require.True(vt.FullName().IsEmpty())
		require.Same(vt, r.ValueTypeOrCompute(""))

		ct, ok := r.FindCustomValueType("")
		require.True(ok)
		require.Same(vt, ct)
	})

	t.Run("totality", func(t *testing.T) {
		for _, s := range []string{"", ".", "..", "CatalogRef.", ".Products", "🙂"} {
			require.NotPanics(func() {
				require.NotNil(r.ValueTypeOrCompute(s))
			}, s)
		}
	})
}

func TestRegistry_ValueTypeOrCompute_Concurrent(t *testing.T) {
	require := require.New(t)

	r := testRegistry("concurrent")

	const goroutines, types = 16, 100
	got := make([][]mdtypes.IValueType, goroutines)

	wg := sync.WaitGroup{}
	for g := range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range types {
				got[g] = append(got[g], r.ValueTypeOrCompute(fmt.Sprintf("CatalogRef.Item%d", i)))
			}
		}()
	}
	wg.Wait()

	for g := 1; g < goroutines; g++ {
		for i := range types {
			require.Same(got[0][i], got[g][i])
		}
	}
	require.Equal(types, r.CustomTypesLen())
}

func TestCompareValueTypes(t *testing.T) {
	require := require.New(t)

	require.Negative(mdtypes.CompareValueTypes(mdtypes.BooleanType, mdtypes.StringType))
	require.Positive(mdtypes.CompareValueTypes(mdtypes.StringType, mdtypes.NumberType))
	require.Zero(mdtypes.CompareValueTypes(mdtypes.DateType, mdtypes.DateType))
}
