/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package mdtypes

import (
	"github.com/voedger/mdtypes/pkg/mlname"
)

func newPrimitiveType(en, ru string) *PrimitiveType {
	return &PrimitiveType{valueType{name: newName(en, ru), variant: ValueTypeVariant_Primitive}}
}

var (
	StringType  = newPrimitiveType("String", "Строка")
	DateType    = newPrimitiveType("Date", "Дата")
	NumberType  = newPrimitiveType("Number", "Число")
	BooleanType = newPrimitiveType("Boolean", "Булево")
	NullType    = newPrimitiveType("Null", "Null")
)

var primitiveTypes = []*PrimitiveType{StringType, DateType, NumberType, BooleanType, NullType}

// Returns primitive types: String, Date, Number, Boolean and Null.
func PrimitiveTypes() []IValueType {
	return asValueTypes(primitiveTypes)
}

func newPlatformType(en, ru string) *PlatformType {
	return &PlatformType{valueType{name: newName(en, ru), variant: ValueTypeVariant_Platform}}
}

var (
	ValueStorageType = newPlatformType("ValueStorage", "ХранилищеЗначений")
	UUIDType         = newPlatformType("UUID", "УникальныйИдентификатор")
)

var platformTypes = []*PlatformType{
	newPlatformType("AccountingRecordType", "ВидДвиженияБухгалтерии"),
	newPlatformType("AccumulationRecordType", "ВидДвиженияНакопления"),
	newPlatformType("Chart", "Диаграмма"),
	newPlatformType("Color", "Цвет"),
	newPlatformType("ComparisonType", "ВидСравнения"),
	newPlatformType("DataAnalysisTimeIntervalUnitType", "ТипЕдиницыИнтервалаВремениАнализаДанных"),
	newPlatformType("DataCompositionSettingsComposer", "КомпоновщикНастроекКомпоновкиДанных"),
	newPlatformType("DynamicList", "ДинамическийСписок"),
	newPlatformType("Filter", "Отбор"),
	newPlatformType("FixedArray", "ФиксированныйМассив"),
	newPlatformType("FixedMap", "ФиксированноеСоответствие"),
	newPlatformType("FixedStructure", "ФиксированнаяСтруктура"),
	newPlatformType("Font", "Шрифт"),
	newPlatformType("FormattedDocument", "ФорматированныйДокумент"),
	newPlatformType("FormattedString", "ФорматированнаяСтрока"),
	newPlatformType("GanttChart", "ДиаграммаГанта"),
	newPlatformType("GeographicalSchema", "ГеографическаяСхема"),
	newPlatformType("GraphicalSchema", "ГрафическаяСхема"),
	newPlatformType("Order", "Порядок"),
	newPlatformType("PDFDocument", "PDFДокумент"),
	newPlatformType("Picture", "Картинка"),
	newPlatformType("Planner", "Планировщик"),
	newPlatformType("ReportBuilder", "ПостроительОтчета"),
	newPlatformType("SettingsComposer", "НастройкиКомпоновщика"),
	newPlatformType("SizeChangeMode", "РежимИзмененияРазмера"),
	newPlatformType("SpreadsheetDocument", "ТабличныйДокумент"),
	newPlatformType("StandardBeginningDate", "СтандартнаяДатаНачала"),
	newPlatformType("StandardPeriod", "СтандартныйПериод"),
	newPlatformType("TextDocument", "ТекстовыйДокумент"),
	newPlatformType("TypeDescription", "ОписаниеТипа"),
	UUIDType,
	newPlatformType("ValueList", "СписокЗначений"),
	ValueStorageType,
	newPlatformType("ValueTable", "ТаблицаЗначений"),
	newPlatformType("ValueTree", "ДеревоЗначений"),
	newPlatformType("VerticalAlign", "ВертикальноеПоложение"),
}

// Returns built-in platform types, ordered by English name.
func PlatformTypes() []IValueType {
	return asValueTypes(platformTypes)
}

func newMetadataType(k ObjectKind, en, ru string, composite bool) *MetadataType {
	return &MetadataType{valueType{name: newName(en, ru), variant: ValueTypeVariant_Metadata, kind: k, composite: composite}}
}

// Returns composite metadata type, named by object kind name and suffix, e.g. `CatalogRef`
func kindType(k ObjectKind, suffix, suffixRu string) *MetadataType {
	return newMetadataType(k, k.NameEn()+suffix, k.NameRu()+suffixRu, true)
}

var (
	AnyRefType         = newMetadataType(ObjectKind_Configuration, "AnyRef", "ЛюбаяСсылка", true)
	DefinedTypeType    = newMetadataType(ObjectKind_DefinedType, ObjectKind_DefinedType.NameEn(), ObjectKind_DefinedType.NameRu(), true)
	CharacteristicType = newMetadataType(ObjectKind_ChartOfCharacteristicTypes, "Characteristic", "Характеристика", true)

	// Set of all constants of configuration, single for configuration
	ConstantsSetType = newMetadataType(ObjectKind_Constant,
		ObjectKind_Constant.GroupName()+"Set", ObjectKind_Constant.GroupNameRu()+"Набор", false)
)

var metadataTypes = func() []*MetadataType {
	tt := []*MetadataType{AnyRefType, DefinedTypeType, CharacteristicType, ConstantsSetType}

	for _, k := range []ObjectKind{
		ObjectKind_AccountingRegister,
		ObjectKind_AccumulationRegister,
		ObjectKind_CalculationRegister,
		ObjectKind_InformationRegister,
	} {
		tt = append(tt,
			kindType(k, suffixManager, suffixManagerRu),
			kindType(k, suffixRecordManager, suffixRecordManagerRu),
			kindType(k, suffixRecordSet, suffixRecordSetRu))
	}

	for _, k := range []ObjectKind{
		ObjectKind_BusinessProcess,
		ObjectKind_Catalog,
		ObjectKind_ChartOfAccounts,
		ObjectKind_ChartOfCalculationTypes,
		ObjectKind_ChartOfCharacteristicTypes,
		ObjectKind_Document,
		ObjectKind_ExchangePlan,
		ObjectKind_Task,
	} {
		tt = append(tt,
			kindType(k, suffixManager, suffixManagerRu),
			kindType(k, suffixObject, suffixObjectRu),
			kindType(k, suffixRef, suffixRefRu))
	}

	for _, k := range []ObjectKind{ObjectKind_DataProcessor, ObjectKind_Report} {
		tt = append(tt,
			kindType(k, suffixManager, suffixManagerRu),
			kindType(k, suffixObject, suffixObjectRu))
	}

	eds := ObjectKind_ExternalDataSource
	tt = append(tt,
		kindType(ObjectKind_DocumentJournal, suffixManager, suffixManagerRu),
		kindType(ObjectKind_Enum, suffixRef, suffixRefRu),
		kindType(ObjectKind_Enum, suffixList, suffixListRu),
		kindType(ObjectKind_InformationRegister, suffixList, suffixListRu),
		kindType(ObjectKind_ExternalDataProcessor, suffixObject, suffixObjectRu),
		kindType(ObjectKind_ExternalReport, suffixObject, suffixObjectRu),
		kindType(ObjectKind_Recalculation, suffixRecordManager, suffixRecordManagerRu),
		kindType(ObjectKind_Recalculation, suffixRecordSet, suffixRecordSetRu),
		kindType(ObjectKind_Sequence, suffixRecordManager, suffixRecordManagerRu),
		kindType(ObjectKind_Sequence, suffixRecordSet, suffixRecordSetRu),
		kindType(ObjectKind_Constant, suffixValueManager, suffixValueManagerRu),
		newMetadataType(ObjectKind_BusinessProcess,
			ObjectKind_BusinessProcess.NameEn()+"RoutePointRef", "ТочкаМаршрутаБизнесПроцессаСсылка", true),
		kindType(eds, "Table"+suffixRef, "Таблица"+suffixRefRu),
		kindType(eds, "Table"+suffixObject, "Таблица"+suffixObjectRu),
		kindType(eds, "Table"+suffixRecordManager, "Таблица"+suffixRecordManagerRu),
		kindType(eds, "CubeDimensionTable"+suffixRef, "КубТаблицаИзмерений"+suffixRefRu),
		kindType(eds, "CubeDimensionTable"+suffixObject, "КубТаблицаИзмерений"+suffixObjectRu),
	)

	return tt
}()

// Returns metadata-derived types.
func MetadataTypes() []IValueType {
	return asValueTypes(metadataTypes)
}

// Index of primitive, platform and metadata types by English and Russian names
var builtinTypes = mlname.NewIndex[IValueType](
	func(yield func(IValueType, []string) bool) {
		for _, t := range allBuiltinTypes() {
			if !yield(t, t.FullName().Spellings()) {
				return
			}
		}
	})

func allBuiltinTypes() []IValueType {
	tt := make([]IValueType, 0, len(primitiveTypes)+len(platformTypes)+len(metadataTypes))
	tt = append(tt, PrimitiveTypes()...)
	tt = append(tt, PlatformTypes()...)
	tt = append(tt, MetadataTypes()...)
	return tt
}

func asValueTypes[T IValueType](tt []T) []IValueType {
	res := make([]IValueType, len(tt))
	for i, t := range tt {
		res[i] = t
	}
	return res
}
