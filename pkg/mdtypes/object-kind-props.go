/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package mdtypes

import "github.com/voedger/mdtypes/pkg/mlname"

var newName = mlname.NewName

// Object kind properties: singular name, plural name and child flag.
//
// Single Dimension kind is used both by registers and sequences.
// Configuration has no plural name.
var objectKindProps = [ObjectKind_Count]struct {
	name      *mlname.Name
	groupName *mlname.Name
	child     bool
}{
	ObjectKind_null:                         {mlname.Empty, mlname.Empty, false},
	ObjectKind_AccountingFlag:               {newName("AccountingFlag", "ПризнакУчета"), newName("AccountingFlags", "ПризнакиУчета"), true},
	ObjectKind_AccountingRegister:           {newName("AccountingRegister", "РегистрБухгалтерии"), newName("AccountingRegisters", "РегистрыБухгалтерии"), false},
	ObjectKind_AccumulationRegister:         {newName("AccumulationRegister", "РегистрНакопления"), newName("AccumulationRegisters", "РегистрыНакопления"), false},
	ObjectKind_Attribute:                    {newName("Attribute", "Реквизит"), newName("Attributes", "Реквизиты"), true},
	ObjectKind_Bot:                          {newName("Bot", "Бот"), newName("Bots", "Боты"), false},
	ObjectKind_BusinessProcess:              {newName("BusinessProcess", "БизнесПроцесс"), newName("BusinessProcesses", "БизнесПроцессы"), false},
	ObjectKind_CalculationRegister:          {newName("CalculationRegister", "РегистрРасчета"), newName("CalculationRegisters", "РегистрыРасчета"), false},
	ObjectKind_Catalog:                      {newName("Catalog", "Справочник"), newName("Catalogs", "Справочники"), false},
	ObjectKind_ChartOfAccounts:              {newName("ChartOfAccounts", "ПланСчетов"), newName("ChartsOfAccounts", "ПланыСчетов"), false},
	ObjectKind_ChartOfCalculationTypes:      {newName("ChartOfCalculationTypes", "ПланВидовРасчета"), newName("ChartsOfCalculationTypes", "ПланыВидовРасчета"), false},
	ObjectKind_ChartOfCharacteristicTypes:   {newName("ChartOfCharacteristicTypes", "ПланВидовХарактеристик"), newName("ChartsOfCharacteristicTypes", "ПланыВидовХарактеристик"), false},
	ObjectKind_Column:                       {newName("Column", "Колонка"), newName("Columns", "Колонки"), true},
	ObjectKind_Command:                      {newName("Command", "Команда"), newName("Commands", "Команды"), true},
	ObjectKind_CommandGroup:                 {newName("CommandGroup", "ГруппаКоманд"), newName("CommandGroups", "ГруппыКоманд"), false},
	ObjectKind_CommonAttribute:              {newName("CommonAttribute", "ОбщийРеквизит"), newName("CommonAttributes", "ОбщиеРеквизиты"), false},
	ObjectKind_CommonCommand:                {newName("CommonCommand", "ОбщаяКоманда"), newName("CommonCommands", "ОбщиеКоманды"), false},
	ObjectKind_CommonForm:                   {newName("CommonForm", "ОбщаяФорма"), newName("CommonForms", "ОбщиеФормы"), false},
	ObjectKind_CommonModule:                 {newName("CommonModule", "ОбщийМодуль"), newName("CommonModules", "ОбщиеМодули"), false},
	ObjectKind_CommonPicture:                {newName("CommonPicture", "ОбщаяКартинка"), newName("CommonPictures", "ОбщиеКартинки"), false},
	ObjectKind_CommonTemplate:               {newName("CommonTemplate", "ОбщийМакет"), newName("CommonTemplates", "ОбщиеМакеты"), false},
	ObjectKind_Configuration:                {newName("Configuration", "Конфигурация"), newName("", ""), false},
	ObjectKind_Constant:                     {newName("Constant", "Константа"), newName("Constants", "Константы"), false},
	ObjectKind_DataProcessor:                {newName("DataProcessor", "Обработка"), newName("DataProcessors", "Обработки"), false},
	ObjectKind_DefinedType:                  {newName("DefinedType", "ОпределяемыйТип"), newName("DefinedTypes", "ОпределяемыеТипы"), false},
	ObjectKind_Dimension:                    {newName("Dimension", "Измерение"), newName("Dimensions", "Измерения"), true},
	ObjectKind_Document:                     {newName("Document", "Документ"), newName("Documents", "Документы"), false},
	ObjectKind_DocumentJournal:              {newName("DocumentJournal", "ЖурналДокументов"), newName("DocumentJournals", "ЖурналыДокументов"), false},
	ObjectKind_DocumentNumerator:            {newName("DocumentNumerator", "НумераторДокументов"), newName("DocumentNumerators", "НумераторыДокументов"), false},
	ObjectKind_Enum:                         {newName("Enum", "Перечисление"), newName("Enums", "Перечисления"), false},
	ObjectKind_EnumValue:                    {newName("EnumValue", "ЗначениеПеречисления"), newName("EnumValues", "ЗначенияПеречисления"), true},
	ObjectKind_EventSubscription:            {newName("EventSubscription", "ПодпискаНаСобытие"), newName("EventSubscriptions", "ПодпискиНаСобытия"), false},
	ObjectKind_ExchangePlan:                 {newName("ExchangePlan", "ПланОбмена"), newName("ExchangePlans", "ПланыОбмена"), false},
	ObjectKind_ExternalDataProcessor:        {newName("ExternalDataProcessor", "ВнешняяОбработка"), newName("ExternalDataProcessors", "ВнешниеОбработки"), false},
	ObjectKind_ExternalDataSource:           {newName("ExternalDataSource", "ВнешнийИсточникДанных"), newName("ExternalDataSources", "ВнешниеИсточникиДанных"), false},
	ObjectKind_ExternalDataSourceTable:      {newName("Table", "Таблица"), newName("Tables", "Таблицы"), true},
	ObjectKind_ExternalDataSourceTableField: {newName("Field", "Поле"), newName("Fields", "Поля"), true},
	ObjectKind_ExternalReport:               {newName("ExternalReport", "ВнешнийОтчет"), newName("ExternalReports", "ВнешниеОтчеты"), false},
	ObjectKind_ExtDimensionAccountingFlag:   {newName("ExtDimensionAccountingFlag", "ПризнакУчетаСубконто"), newName("ExtDimensionAccountingFlags", "ПризнакиУчетаСубконто"), true},
	ObjectKind_FilterCriterion:              {newName("FilterCriterion", "КритерийОтбора"), newName("FilterCriteria", "КритерииОтбора"), false},
	ObjectKind_Form:                         {newName("Form", "Форма"), newName("Forms", "Формы"), true},
	ObjectKind_FunctionalOption:             {newName("FunctionalOption", "ФункциональнаяОпция"), newName("FunctionalOptions", "ФункциональныеОпции"), false},
	ObjectKind_FunctionalOptionsParameter:   {newName("FunctionalOptionsParameter", "ПараметрФункциональныхОпций"), newName("FunctionalOptionsParameters", "ПараметрыФункциональныхОпций"), false},
	ObjectKind_HTTPService:                  {newName("HTTPService", "HTTPСервис"), newName("HTTPServices", "HTTPСервисы"), false},
	ObjectKind_HTTPServiceMethod:            {newName("Method", "Метод"), newName("Methods", "Методы"), true},
	ObjectKind_HTTPServiceURLTemplate:       {newName("URLTemplate", "ШаблонURL"), newName("URLTemplates", "ШаблоныURL"), true},
	ObjectKind_InformationRegister:          {newName("InformationRegister", "РегистрСведений"), newName("InformationRegisters", "РегистрыСведений"), false},
	ObjectKind_IntegrationService:           {newName("IntegrationService", "СервисИнтеграции"), newName("IntegrationServices", "СервисыИнтеграции"), false},
	ObjectKind_IntegrationServiceChannel:    {newName("IntegrationServiceChannel", "КаналСервисаИнтеграции"), newName("IntegrationServiceChannels", "Каналы"), true},
	ObjectKind_Interface:                    {newName("Interface", "Интерфейс"), newName("Interfaces", "Интерфейсы"), false},
	ObjectKind_Language:                     {newName("Language", "Язык"), newName("Languages", "Языки"), false},
	ObjectKind_PaletteColor:                 {newName("PaletteColor", "ЦветПалитры"), newName("PaletteColors", "ЦветаПалитры"), false},
	ObjectKind_Recalculation:                {newName("Recalculation", "Перерасчет"), newName("Recalculations", "Перерасчеты"), true},
	ObjectKind_Report:                       {newName("Report", "Отчет"), newName("Reports", "Отчеты"), false},
	ObjectKind_Resource:                     {newName("Resource", "Ресурс"), newName("Resources", "Ресурсы"), true},
	ObjectKind_Role:                         {newName("Role", "Роль"), newName("Roles", "Роли"), false},
	ObjectKind_ScheduledJob:                 {newName("ScheduledJob", "РегламентноеЗадание"), newName("ScheduledJobs", "РегламентныеЗадания"), false},
	ObjectKind_Sequence:                     {newName("Sequence", "Последовательность"), newName("Sequences", "Последовательности"), false},
	ObjectKind_SessionParameter:             {newName("SessionParameter", "ПараметрСеанса"), newName("SessionParameters", "ПараметрыСеанса"), false},
	ObjectKind_SettingsStorage:              {newName("SettingsStorage", "ХранилищеНастроек"), newName("SettingsStorages", "ХранилищаНастроек"), false},
	ObjectKind_StandardAttribute:            {newName("StandardAttribute", "СтандартныйРеквизит"), newName("StandardAttributes", "СтандартныеРеквизиты"), true},
	ObjectKind_StandardTabularSection:       {newName("StandardTabularSection", "СтандартнаяТабличнаяЧасть"), newName("StandardTabularSections", "СтандартныеТабличныеЧасти"), true},
	ObjectKind_Style:                        {newName("Style", "Стиль"), newName("Styles", "Стили"), false},
	ObjectKind_StyleItem:                    {newName("StyleItem", "ЭлементСтиля"), newName("StyleItems", "ЭлементыСтиля"), false},
	ObjectKind_Subsystem:                    {newName("Subsystem", "Подсистема"), newName("Subsystems", "Подсистемы"), false},
	ObjectKind_TabularSection:               {newName("TabularSection", "ТабличнаяЧасть"), newName("TabularSections", "ТабличныеЧасти"), true},
	ObjectKind_Task:                         {newName("Task", "Задача"), newName("Tasks", "Задачи"), false},
	ObjectKind_TaskAddressingAttribute:      {newName("AddressingAttribute", "РеквизитАдресации"), newName("AddressingAttributes", "Реквизиты адресации"), true},
	ObjectKind_Template:                     {newName("Template", "Макет"), newName("Templates", "Макеты"), true},
	ObjectKind_WebService:                   {newName("WebService", "WebСервис"), newName("WebServices", "WebСервисы"), false},
	ObjectKind_WebSocketClient:              {newName("WebSocketClient", "WebSocketКлиент"), newName("WebSocketClients", "WebSocketКлиенты"), false},
	ObjectKind_WSOperation:                  {newName("Operation", "Операция"), newName("Operations", "Операции"), true},
	ObjectKind_WSOperationParameter:         {newName("Parameter", "Параметр"), newName("Parameters", "Параметры"), true},
	ObjectKind_WSReference:                  {newName("WSReference", "WSСсылка"), newName("WSReferences", "WSСсылки"), false},
	ObjectKind_XDTOPackage:                  {newName("XDTOPackage", "ПакетXDTO"), newName("XDTOPackages", "ПакетыXDTO"), false},
}
