/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package mdtypes

import (
	"strconv"
	"strings"

	"github.com/voedger/mdtypes/pkg/mlname"
)

// Kind of metadata object.
type ObjectKind uint8

//go:generate stringer -type=ObjectKind -output=object-kind_string.go

const (
	// null - unknown kind. Returned when the requested kind does not exist
	ObjectKind_null ObjectKind = iota

	ObjectKind_AccountingFlag
	ObjectKind_AccountingRegister
	ObjectKind_AccumulationRegister
	ObjectKind_Attribute
	ObjectKind_Bot
	ObjectKind_BusinessProcess
	ObjectKind_CalculationRegister
	ObjectKind_Catalog
	ObjectKind_ChartOfAccounts
	ObjectKind_ChartOfCalculationTypes
	ObjectKind_ChartOfCharacteristicTypes
	ObjectKind_Column
	ObjectKind_Command
	ObjectKind_CommandGroup
	ObjectKind_CommonAttribute
	ObjectKind_CommonCommand
	ObjectKind_CommonForm
	ObjectKind_CommonModule
	ObjectKind_CommonPicture
	ObjectKind_CommonTemplate
	ObjectKind_Configuration
	ObjectKind_Constant
	ObjectKind_DataProcessor
	ObjectKind_DefinedType
	ObjectKind_Dimension
	ObjectKind_Document
	ObjectKind_DocumentJournal
	ObjectKind_DocumentNumerator
	ObjectKind_Enum
	ObjectKind_EnumValue
	ObjectKind_EventSubscription
	ObjectKind_ExchangePlan
	ObjectKind_ExternalDataProcessor
	ObjectKind_ExternalDataSource
	ObjectKind_ExternalDataSourceTable
	ObjectKind_ExternalDataSourceTableField
	ObjectKind_ExternalReport
	ObjectKind_ExtDimensionAccountingFlag
	ObjectKind_FilterCriterion
	ObjectKind_Form
	ObjectKind_FunctionalOption
	ObjectKind_FunctionalOptionsParameter
	ObjectKind_HTTPService
	ObjectKind_HTTPServiceMethod
	ObjectKind_HTTPServiceURLTemplate
	ObjectKind_InformationRegister
	ObjectKind_IntegrationService
	ObjectKind_IntegrationServiceChannel
	ObjectKind_Interface
	ObjectKind_Language
	ObjectKind_PaletteColor
	ObjectKind_Recalculation
	ObjectKind_Report
	ObjectKind_Resource
	ObjectKind_Role
	ObjectKind_ScheduledJob
	ObjectKind_Sequence
	ObjectKind_SessionParameter
	ObjectKind_SettingsStorage
	ObjectKind_StandardAttribute
	ObjectKind_StandardTabularSection
	ObjectKind_Style
	ObjectKind_StyleItem
	ObjectKind_Subsystem
	ObjectKind_TabularSection
	ObjectKind_Task
	ObjectKind_TaskAddressingAttribute
	ObjectKind_Template
	ObjectKind_WebService
	ObjectKind_WebSocketClient
	ObjectKind_WSOperation
	ObjectKind_WSOperationParameter
	ObjectKind_WSReference
	ObjectKind_XDTOPackage

	ObjectKind_Count
)

var objectKinds = mlname.NewIndex[ObjectKind](
	func(yield func(ObjectKind, []string) bool) {
		for k := range ObjectKind_Count {
			p := objectKindProps[k]
			if !yield(k, append(p.name.Spellings(), p.groupName.Spellings()...)) {
				return
			}
		}
	},
	mlname.ExcludeSentinel(ObjectKind_null))

// Returns object kind by English or Russian, singular or plural name, case-insensitive.
//
// Returns false if name is unknown.
func ObjectKindFromName(name string) (ObjectKind, bool) {
	return objectKinds.Find(name)
}

// Returns object kind by English or Russian, singular or plural name, case-insensitive.
//
// Returns ObjectKind_null if name is unknown.
func ObjectKindByName(name string) ObjectKind {
	return objectKinds.FindOr(name, ObjectKind_null)
}

// Returns all object kinds, except null, in declaration order.
func ObjectKinds() []ObjectKind {
	kk := make([]ObjectKind, 0, ObjectKind_Count-1)
	for k := ObjectKind_null + 1; k < ObjectKind_Count; k++ {
		kk = append(kk, k)
	}
	return kk
}

// Returns object kinds which are not children of other objects, in declaration order.
func TopLevelObjectKinds() []ObjectKind {
	kk := make([]ObjectKind, 0, ObjectKind_Count-1)
	for _, k := range ObjectKinds() {
		if !k.IsChild() {
			kk = append(kk, k)
		}
	}
	return kk
}

// Returns is kind describes nested object, such as attribute, form or tabular section.
func (k ObjectKind) IsChild() bool {
	return k < ObjectKind_Count && objectKindProps[k].child
}

// Returns bilingual singular name.
func (k ObjectKind) FullName() *mlname.Name {
	if k < ObjectKind_Count {
		return objectKindProps[k].name
	}
	return mlname.Empty
}

// Returns bilingual plural name. Returns mlname.Empty for kinds without plural.
func (k ObjectKind) FullGroupName() *mlname.Name {
	if k < ObjectKind_Count {
		return objectKindProps[k].groupName
	}
	return mlname.Empty
}

func (k ObjectKind) Name() string { return k.FullName().Get() }

func (k ObjectKind) NameEn() string { return k.FullName().En() }

func (k ObjectKind) NameRu() string { return k.FullName().Ru() }

func (k ObjectKind) GroupName() string { return k.FullGroupName().En() }

func (k ObjectKind) GroupNameRu() string { return k.FullGroupName().Ru() }

func (k ObjectKind) MarshalText() ([]byte, error) {
	var s string
	if k < ObjectKind_Count {
		s = k.String()
	} else {
		const base = 10
		s = strconv.FormatUint(uint64(k), base)
	}
	return []byte(s), nil
}

// Renders an ObjectKind in human-readable form, without "ObjectKind_" prefix,
// suitable for debugging or error messages
func (k ObjectKind) TrimString() string {
	const pref = "ObjectKind_"
	return strings.TrimPrefix(k.String(), pref)
}
