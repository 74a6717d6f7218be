/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package mdtypes

// Separator of reference path parts and of custom type name parts
const PathSeparator = "."

// Default registry name, used if config has no name
const DefaultRegistryName = "default"

// Default prometheus namespace of registry metrics
const DefaultMetricsNamespace = "mdtypes"

// Suffixes of metadata-derived value type names
const (
	suffixManager       = "Manager"
	suffixObject        = "Object"
	suffixRef           = "Ref"
	suffixRecordSet     = "RecordSet"
	suffixRecordManager = "RecordManager"
	suffixList          = "List"
	suffixValueManager  = "ValueManager"
)

// Russian suffixes of metadata-derived value type names
const (
	suffixManagerRu       = "Менеджер"
	suffixObjectRu        = "Объект"
	suffixRefRu           = "Ссылка"
	suffixRecordSetRu     = "НаборЗаписей"
	suffixRecordManagerRu = "МенеджерЗаписи"
	suffixListRu          = "Список"
	suffixValueManagerRu  = "МенеджерЗначения"
)

// Lookup results, used as metrics label values
const (
	lookupHit     = "hit"
	lookupMiss    = "miss"
	lookupCreated = "created"
)
