package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeParticipantEmptyName          = "PARTICIPANT_EMPTY_NAME"
	CodeParticipantDuplicateName      = "PARTICIPANT_DUPLICATE_NAME"
	CodeParticipantInvalidKind        = "PARTICIPANT_INVALID_KIND"
	CodeParticipantInvalidMaxHP       = "PARTICIPANT_INVALID_MAX_HP"
	CodeParticipantInvalidHP          = "PARTICIPANT_INVALID_HP"
	CodeParticipantInvalidInitiative  = "PARTICIPANT_INVALID_INITIATIVE"
	CodeParticipantNotFound           = "PARTICIPANT_NOT_FOUND"
	CodeSubmissionEmpty               = "SUBMISSION_EMPTY"
	CodeSubmissionTargetWithoutDamage = "SUBMISSION_TARGET_WITHOUT_DAMAGE"
	CodeSubmissionInvalidRound        = "SUBMISSION_INVALID_ROUND"
	CodeHealingInvalidAmount          = "HEALING_INVALID_AMOUNT"
	CodeSnapshotDecode                = "SNAPSHOT_DECODE"
	CodeNotFound                      = "NOT_FOUND"
)

var enUSCatalog = &Catalog{
	locale: "en-US",
	messages: map[Code]string{
		// Participant errors
		CodeParticipantEmptyName:         "Participant name cannot be empty",
		CodeParticipantDuplicateName:     "A participant named {{.Name}} already exists",
		CodeParticipantInvalidKind:       "Invalid participant kind specified",
		CodeParticipantInvalidMaxHP:      "Maximum HP must be at least 1",
		CodeParticipantInvalidHP:         "HP {{.HP}} must be between 0 and {{.MaxHP}}",
		CodeParticipantInvalidInitiative: "Initiative must be non-negative",
		CodeParticipantNotFound:          "No participant named {{.Name}} exists",

		// Round submission errors
		CodeSubmissionEmpty:               "Please enter at least one action, attack, damage taken, healing, or magic spell",
		CodeSubmissionTargetWithoutDamage: "Attack on {{.Target}} has a target but no damage specified",
		CodeSubmissionInvalidRound:        "Round number must be at least 1",

		// Healing errors
		CodeHealingInvalidAmount: "Healing amount must be positive",

		// Snapshot errors
		CodeSnapshotDecode: "Saved encounter data could not be read",

		// Storage errors
		CodeNotFound: "Record not found",
	},
}
