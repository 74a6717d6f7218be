/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package mdtypes_test

import (
	"fmt"

	"github.com/voedger/mdtypes/pkg/mdtypes"
	"github.com/voedger/mdtypes/pkg/mlname"
)

func ExampleRegistry_ParseMdoRef() {
	r := mdtypes.MustNew(mdtypes.DefaultConfig())

	ref, err := r.ParseMdoRef("Справочник.Products.ТабличнаяЧасть.Prices")
	if err != nil {
		panic(err)
	}
	fmt.Println(ref.Kind().TrimString())
	fmt.Println(ref.MdoRef())
	fmt.Println(ref.MdoRefFor(mlname.ScriptVariant_Russian))

	parent, _ := r.FindMdoRef("catalog.products")
	fmt.Println(parent.MdoRefRu())

	_, err = r.ParseMdoRef("nope")
	fmt.Println(err)

	// Output:
	// TabularSection
	// Catalog.Products.TabularSection.Prices
	// Справочник.Products.ТабличнаяЧасть.Prices
	// Справочник.Products
	// ill-formed reference: Incorrect full name nope
}

func ExampleNewValueTypeDescription() {
	r := mdtypes.MustNew(mdtypes.DefaultConfig())

	d := mdtypes.NewValueTypeDescription(
		[]mdtypes.IValueType{
			mdtypes.StringType,
			r.ValueTypeOrCompute("CatalogRef.Products"),
			mdtypes.StringType,
		},
		mdtypes.NewStringQualifiers(25, mdtypes.AllowedLength_Fixed))

	fmt.Println(d)
	fmt.Println("composite:", d.Composite())
	for _, t := range d.Types() {
		fmt.Println(t.Variant().TrimString(), t.NameRu())
	}

	// Output:
	// [CatalogRef.Products, String] [StringQualifiers (25, Fixed)]
	// composite: true
	// Metadata СправочникСсылка.Products
	// Primitive Строка
}

func ExampleModuleKindsFor() {
	for _, k := range []mdtypes.ObjectKind{mdtypes.ObjectKind_Catalog, mdtypes.ObjectKind_CommonModule, mdtypes.ObjectKind_Role} {
		fmt.Println(k.Name(), mdtypes.ModuleKindsFor(k))
	}

	// Output:
	// Справочник [ObjectModule ManagerModule]
	// ОбщийМодуль [CommonModule]
	// Роль []
}
