package model

// Unknown is the wire code of every enum's fallback member.
const Unknown = "UNKNOWN"

type enumEntry struct {
	code string
	name string
}

// Table identifies the upload channel named by the `table` query parameter.
type Table int

const (
	TableUnknown Table = iota
	TableOperLog
	TableAttLog
	TableAttPhoto
)

var tableEntries = []enumEntry{
	TableUnknown:  {Unknown, "unknown"},
	TableOperLog:  {"OPERLOG", "operlog"},
	TableAttLog:   {"ATTLOG", "attlog"},
	TableAttPhoto: {"ATTPHOTO", "attphoto"},
}

var tableCodes = indexEntries[Table](tableEntries)

// ParseTable never fails: unrecognized codes yield TableUnknown.
func ParseTable(code string) Table {
	if t, ok := tableCodes[code]; ok {
		return t
	}
	return TableUnknown
}

func (t Table) String() string { return lookupEntry(tableEntries, int(t)).code }
func (t Table) Name() string   { return lookupEntry(tableEntries, int(t)).name }

func (t Table) MarshalText() ([]byte, error) { return []byte(t.Name()), nil }

// AlarmKind classifies an Operation whose kind is OperationAlarm.
type AlarmKind int

const (
	AlarmUnknown AlarmKind = iota
	AlarmDoorCloseDetected
	AlarmDoorOpenDetected
	AlarmOutDoorButton
	AlarmDoorBrokenAccidentally
	AlarmMachineBeenBroken
	AlarmTryInvalidVerification
	AlarmCancelled
)

var alarmEntries = []enumEntry{
	AlarmUnknown:                {Unknown, "unknown"},
	AlarmDoorCloseDetected:      {"50", "door_close_detected"},
	AlarmDoorOpenDetected:       {"51", "door_open_detected"},
	AlarmOutDoorButton:          {"53", "out_door_button"},
	AlarmDoorBrokenAccidentally: {"54", "door_broken_accidentally"},
	AlarmMachineBeenBroken:      {"55", "machine_been_broken"},
	AlarmTryInvalidVerification: {"58", "try_invalid_verification"},
	AlarmCancelled:              {"65535", "alarm_cancelled"},
}

var alarmCodes = indexEntries[AlarmKind](alarmEntries)

// ParseAlarm never fails: unrecognized codes yield AlarmUnknown.
func ParseAlarm(code string) AlarmKind {
	if a, ok := alarmCodes[code]; ok {
		return a
	}
	return AlarmUnknown
}

func (a AlarmKind) String() string { return lookupEntry(alarmEntries, int(a)).code }
func (a AlarmKind) Name() string   { return lookupEntry(alarmEntries, int(a)).name }

func (a AlarmKind) MarshalText() ([]byte, error) { return []byte(a.Name()), nil }

// OperationKind is the event code in the first field of an OPLOG line.
type OperationKind int

const (
	OperationUnknown OperationKind = iota
	OperationStartUp
	OperationShutdown
	OperationValidationFailure
	OperationAlarm
	OperationEnterTheMenu
	OperationChangeSettings
	OperationRegistrationFingerprint
	OperationRegistrationPassword
	OperationCardRegistration
	OperationDeleteUser
	OperationDeleteFingerprints
	OperationDeleteThePassword
	OperationDeleteRFCard
	OperationRemoveData
	OperationMFCreateCards
	OperationMFRegistrationCards
	OperationMFRegistrationCards2
	OperationMFRegistrationCardDeleted
	OperationMFClearanceCardContent
	OperationMovedToTheRegistrationCardData
	OperationCardDataCopiedToTheMachine
	OperationSetTime
	OperationRestoreFactorySettings
	OperationDeleteRecordsAccess
	OperationRemoveAdministratorRights
	OperationGroupSetUpToAmendAccess
	OperationModifyUserAccessControlSettings
	OperationAccessTimeToAmendParagraph
	OperationAmendUnlockPortfolio
	OperationUnlock
	OperationRegistrationOfNewUsers
	OperationFingerprintAttributeChanges
	OperationStressAlarm
)

// Operation codes are the member's ordinal minus one.
var operationEntries = []enumEntry{
	OperationUnknown:                         {Unknown, "unknown"},
	OperationStartUp:                         {"0", "start_up"},
	OperationShutdown:                        {"1", "shutdown"},
	OperationValidationFailure:               {"2", "validation_failure"},
	OperationAlarm:                           {"3", "alarm"},
	OperationEnterTheMenu:                    {"4", "enter_the_menu"},
	OperationChangeSettings:                  {"5", "change_settings"},
	OperationRegistrationFingerprint:         {"6", "registration_fingerprint"},
	OperationRegistrationPassword:            {"7", "registration_password"},
	OperationCardRegistration:                {"8", "card_registration"},
	OperationDeleteUser:                      {"9", "delete_user"},
	OperationDeleteFingerprints:              {"10", "delete_fingerprints"},
	OperationDeleteThePassword:               {"11", "delete_the_password"},
	OperationDeleteRFCard:                    {"12", "delete_rf_card"},
	OperationRemoveData:                      {"13", "remove_data"},
	OperationMFCreateCards:                   {"14", "mf_create_cards"},
	OperationMFRegistrationCards:             {"15", "mf_registration_cards"},
	OperationMFRegistrationCards2:            {"16", "mf_registration_cards_2"},
	OperationMFRegistrationCardDeleted:       {"17", "mf_registration_card_deleted"},
	OperationMFClearanceCardContent:          {"18", "mf_clearance_card_content"},
	OperationMovedToTheRegistrationCardData:  {"19", "moved_to_the_registration_card_data"},
	OperationCardDataCopiedToTheMachine:      {"20", "the_data_in_the_card_copied_to_the_machine"},
	OperationSetTime:                         {"21", "set_time"},
	OperationRestoreFactorySettings:          {"22", "restore_factory_settings"},
	OperationDeleteRecordsAccess:             {"23", "delete_records_access"},
	OperationRemoveAdministratorRights:       {"24", "remove_administrator_rights"},
	OperationGroupSetUpToAmendAccess:         {"25", "group_set_up_to_amend_access"},
	OperationModifyUserAccessControlSettings: {"26", "modify_user_access_control_settings"},
	OperationAccessTimeToAmendParagraph:      {"27", "access_time_to_amend_paragraph"},
	OperationAmendUnlockPortfolio:            {"28", "amend_unlock_portfolio"},
	OperationUnlock:                          {"29", "unlock"},
	OperationRegistrationOfNewUsers:          {"30", "registration_of_new_users"},
	OperationFingerprintAttributeChanges:     {"31", "fingerprint_attribute_changes"},
	OperationStressAlarm:                     {"32", "stress_alarm"},
}

var operationCodes = indexEntries[OperationKind](operationEntries)

// ParseOperation never fails: unrecognized codes yield OperationUnknown.
func ParseOperation(code string) OperationKind {
	if o, ok := operationCodes[code]; ok {
		return o
	}
	return OperationUnknown
}

func (o OperationKind) String() string { return lookupEntry(operationEntries, int(o)).code }
func (o OperationKind) Name() string   { return lookupEntry(operationEntries, int(o)).name }

func (o OperationKind) MarshalText() ([]byte, error) { return []byte(o.Name()), nil }

func indexEntries[T ~int](entries []enumEntry) map[string]T {
	index := make(map[string]T, len(entries))
	for i, e := range entries {
		if i == 0 {
			continue
		}
		index[e.code] = T(i)
	}
	return index
}

func lookupEntry(entries []enumEntry, i int) enumEntry {
	if i < 0 || i >= len(entries) {
		return entries[0]
	}
	return entries[i]
}
