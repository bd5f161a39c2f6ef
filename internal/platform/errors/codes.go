// Package errors provides structured error handling with i18n support.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Participant errors
	CodeParticipantEmptyName         Code = "PARTICIPANT_EMPTY_NAME"
	CodeParticipantDuplicateName     Code = "PARTICIPANT_DUPLICATE_NAME"
	CodeParticipantInvalidKind       Code = "PARTICIPANT_INVALID_KIND"
	CodeParticipantInvalidMaxHP      Code = "PARTICIPANT_INVALID_MAX_HP"
	CodeParticipantInvalidHP         Code = "PARTICIPANT_INVALID_HP"
	CodeParticipantInvalidInitiative Code = "PARTICIPANT_INVALID_INITIATIVE"
	CodeParticipantNotFound          Code = "PARTICIPANT_NOT_FOUND"

	// Round submission errors
	CodeSubmissionEmpty               Code = "SUBMISSION_EMPTY"
	CodeSubmissionTargetWithoutDamage Code = "SUBMISSION_TARGET_WITHOUT_DAMAGE"
	CodeSubmissionInvalidRound        Code = "SUBMISSION_INVALID_ROUND"

	// Healing errors
	CodeHealingInvalidAmount Code = "HEALING_INVALID_AMOUNT"

	// Snapshot errors
	CodeSnapshotDecode Code = "SNAPSHOT_DECODE"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeParticipantEmptyName,
		CodeParticipantDuplicateName,
		CodeParticipantInvalidKind,
		CodeParticipantInvalidMaxHP,
		CodeParticipantInvalidHP,
		CodeParticipantInvalidInitiative,
		CodeSubmissionEmpty,
		CodeSubmissionTargetWithoutDamage,
		CodeSubmissionInvalidRound,
		CodeHealingInvalidAmount:
		return codes.InvalidArgument

	// NotFound - resource doesn't exist
	case CodeNotFound,
		CodeParticipantNotFound:
		return codes.NotFound

	// FailedPrecondition - stored state cannot be used
	case CodeSnapshotDecode:
		return codes.FailedPrecondition

	default:
		return codes.Internal
	}
}
