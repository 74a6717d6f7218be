/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package mdtypes

import (
	"strconv"
	"strings"

	"github.com/voedger/mdtypes/pkg/goutils/set"
	"github.com/voedger/mdtypes/pkg/mlname"
)

// Kind of source module.
type ModuleKind uint8

//go:generate stringer -type=ModuleKind -output=module-kind_string.go

const (
	// null - unknown module kind, has no file name
	ModuleKind_null ModuleKind = iota

	ModuleKind_BotModule
	ModuleKind_IntegrationServiceModule
	ModuleKind_CommandModule
	ModuleKind_CommonModule
	ModuleKind_ObjectModule
	ModuleKind_ManagerModule
	ModuleKind_FormModule
	ModuleKind_RecordSetModule
	ModuleKind_ValueManagerModule
	ModuleKind_ApplicationModule
	ModuleKind_ManagedApplicationModule
	ModuleKind_SessionModule
	ModuleKind_ExternalConnectionModule
	ModuleKind_OrdinaryApplicationModule
	ModuleKind_HTTPServiceModule
	ModuleKind_WEBServiceModule
	ModuleKind_RecalculationModule

	ModuleKind_OScriptClass
	ModuleKind_OScriptModule

	ModuleKind_Count
)

var moduleKindFileNames = [ModuleKind_Count]string{
	ModuleKind_null:                      "",
	ModuleKind_BotModule:                 "Module.bsl",
	ModuleKind_IntegrationServiceModule:  "Module.bsl",
	ModuleKind_CommandModule:             "CommandModule.bsl",
	ModuleKind_CommonModule:              "Module.bsl",
	ModuleKind_ObjectModule:              "ObjectModule.bsl",
	ModuleKind_ManagerModule:             "ManagerModule.bsl",
	ModuleKind_FormModule:                "Module.bsl",
	ModuleKind_RecordSetModule:           "RecordSetModule.bsl",
	ModuleKind_ValueManagerModule:        "ValueManagerModule.bsl",
	ModuleKind_ApplicationModule:         "ApplicationModule.bsl",
	ModuleKind_ManagedApplicationModule:  "ManagedApplicationModule.bsl",
	ModuleKind_SessionModule:             "SessionModule.bsl",
	ModuleKind_ExternalConnectionModule:  "ExternalConnectionModule.bsl",
	ModuleKind_OrdinaryApplicationModule: "OrdinaryApplicationModule.bsl",
	ModuleKind_HTTPServiceModule:         "Module.bsl",
	ModuleKind_WEBServiceModule:          "Module.bsl",
	ModuleKind_RecalculationModule:       "RecordSetModule.bsl",
	ModuleKind_OScriptClass:              "Class.os",
	ModuleKind_OScriptModule:             "Module.os",
}

var moduleKinds = mlname.NewIndex[ModuleKind](
	func(yield func(ModuleKind, []string) bool) {
		for k := range ModuleKind_Count {
			if !yield(k, []string{k.TrimString()}) {
				return
			}
		}
	},
	mlname.ExcludeSentinel(ModuleKind_null))

// Module kinds of each object kind
var objectModuleKinds = func() (m [ObjectKind_Count]set.Set[ModuleKind]) {
	for k := range ObjectKind_Count {
		switch k {
		case ObjectKind_IntegrationService:
			m[k] = set.From(ModuleKind_IntegrationServiceModule)
		case ObjectKind_Bot:
			m[k] = set.From(ModuleKind_BotModule)
		case ObjectKind_AccountingRegister,
			ObjectKind_AccumulationRegister,
			ObjectKind_CalculationRegister,
			ObjectKind_InformationRegister,
			ObjectKind_ExternalDataSourceTable:
			m[k] = set.From(ModuleKind_ManagerModule, ModuleKind_RecordSetModule)
		case ObjectKind_BusinessProcess,
			ObjectKind_Catalog,
			ObjectKind_ChartOfAccounts,
			ObjectKind_ChartOfCalculationTypes,
			ObjectKind_ChartOfCharacteristicTypes,
			ObjectKind_DataProcessor,
			ObjectKind_Document,
			ObjectKind_ExchangePlan,
			ObjectKind_Report,
			ObjectKind_Task:
			m[k] = set.From(ModuleKind_ManagerModule, ModuleKind_ObjectModule)
		case ObjectKind_CommonCommand, ObjectKind_Command:
			m[k] = set.From(ModuleKind_CommandModule)
		case ObjectKind_CommonForm, ObjectKind_Form:
			m[k] = set.From(ModuleKind_FormModule)
		case ObjectKind_CommonModule:
			m[k] = set.From(ModuleKind_CommonModule)
		case ObjectKind_Configuration:
			m[k] = set.From(
				ModuleKind_ApplicationModule,
				ModuleKind_SessionModule,
				ModuleKind_ExternalConnectionModule,
				ModuleKind_ManagedApplicationModule,
				ModuleKind_OrdinaryApplicationModule)
		case ObjectKind_Constant:
			m[k] = set.From(ModuleKind_ValueManagerModule, ModuleKind_ManagerModule)
		case ObjectKind_DocumentJournal,
			ObjectKind_Enum,
			ObjectKind_FilterCriterion,
			ObjectKind_SettingsStorage:
			m[k] = set.From(ModuleKind_ManagerModule)
		case ObjectKind_HTTPService:
			m[k] = set.From(ModuleKind_HTTPServiceModule)
		case ObjectKind_Sequence:
			m[k] = set.From(ModuleKind_RecordSetModule)
		case ObjectKind_WebService:
			m[k] = set.From(ModuleKind_WEBServiceModule)
		case ObjectKind_Recalculation:
			m[k] = set.From(ModuleKind_RecalculationModule)
		case ObjectKind_ExternalDataProcessor, ObjectKind_ExternalReport:
			m[k] = set.From(ModuleKind_ObjectModule)
		case ObjectKind_CommandGroup,
			ObjectKind_CommonAttribute,
			ObjectKind_CommonPicture,
			ObjectKind_CommonTemplate,
			ObjectKind_DefinedType,
			ObjectKind_DocumentNumerator,
			ObjectKind_EventSubscription,
			ObjectKind_FunctionalOption,
			ObjectKind_Role,
			ObjectKind_ScheduledJob,
			ObjectKind_SessionParameter,
			ObjectKind_StyleItem,
			ObjectKind_Style,
			ObjectKind_Subsystem,
			ObjectKind_WSReference,
			ObjectKind_XDTOPackage:
			// no modules
		}
	}
	return m
}()

// Returns module kinds which objects of specified kind can have.
//
// Returns empty set for kinds without modules and for unknown kinds.
func ModuleKindsFor(k ObjectKind) set.Set[ModuleKind] {
	if k < ObjectKind_Count {
		return objectModuleKinds[k]
	}
	return set.Empty[ModuleKind]()
}

// Returns module kind by name, e.g. "ObjectModule", case-insensitive.
func ModuleKindFromName(name string) (ModuleKind, bool) {
	return moduleKinds.Find(name)
}

// Returns module kinds of OScript sources.
func OScriptModuleKinds() []ModuleKind {
	return []ModuleKind{ModuleKind_OScriptClass, ModuleKind_OScriptModule}
}

// Returns canonical file name of module, e.g. "ObjectModule.bsl".
// Returns empty string for unknown kind.
func (k ModuleKind) FileName() string {
	if k < ModuleKind_Count {
		return moduleKindFileNames[k]
	}
	return ""
}

func (k ModuleKind) MarshalText() ([]byte, error) {
	var s string
	if k < ModuleKind_Count {
		s = k.String()
	} else {
		const base = 10
		s = strconv.FormatUint(uint64(k), base)
	}
	return []byte(s), nil
}

// Renders a ModuleKind in human-readable form, without "ModuleKind_" prefix,
// suitable for debugging or error messages
func (k ModuleKind) TrimString() string {
	const pref = "ModuleKind_"
	return strings.TrimPrefix(k.String(), pref)
}
