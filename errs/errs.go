// Package errs provides the typed failure taxonomy returned by the session
// authority. Every rejection is an expected outcome with a machine-readable
// code; nothing here is ever a crash.
package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Code is a machine-readable error code.
type Code string

const (
	// Membership errors
	CodeNotAMember       Code = "NOT_A_MEMBER"
	CodeAlreadyJoined    Code = "ALREADY_JOINED"
	CodeChairTaken       Code = "CHAIR_TAKEN"
	CodeDuplicateCountry Code = "DUPLICATE_COUNTRY"

	// Authorization errors
	CodeForbidden Code = "FORBIDDEN"

	// Floor errors
	CodeFloorBusy       Code = "FLOOR_BUSY"
	CodeNoActiveSpeaker Code = "NO_ACTIVE_SPEAKER"
	CodeNotQueued       Code = "NOT_QUEUED"

	// Voting errors
	CodeVoteAlreadyActive Code = "VOTE_ALREADY_ACTIVE"
	CodeNoActiveVote      Code = "NO_ACTIVE_VOTE"
	CodeInvalidOptions    Code = "INVALID_OPTIONS"
	CodeInvalidOption     Code = "INVALID_OPTION"
	CodeAlreadyVoted      Code = "ALREADY_VOTED"

	// Messaging errors
	CodeEmptyMessage     Code = "EMPTY_MESSAGE"
	CodeUnknownRecipient Code = "UNKNOWN_RECIPIENT"
	CodeSelfChit         Code = "SELF_CHIT"

	// Marking errors
	CodeUnknownDelegate Code = "UNKNOWN_DELEGATE"

	// Malformed request, never retriable without correction
	CodeBadRequest Code = "BAD_REQUEST"
)

// Error is a typed failure carrying its taxonomy code.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// New creates a typed error.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates a typed error with a formatted message.
func Newf(code Code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the taxonomy code from err, defaulting to BAD_REQUEST for
// anything that did not originate here.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeBadRequest
}

// HTTPStatus maps a taxonomy code to its HTTP response status.
func HTTPStatus(code Code) int {
	switch code {
	case CodeNotAMember:
		return http.StatusUnauthorized
	case CodeForbidden, CodeSelfChit:
		return http.StatusForbidden
	case CodeUnknownDelegate, CodeUnknownRecipient, CodeNotQueued:
		return http.StatusNotFound
	case CodeAlreadyJoined, CodeChairTaken, CodeDuplicateCountry,
		CodeFloorBusy, CodeNoActiveSpeaker,
		CodeVoteAlreadyActive, CodeNoActiveVote, CodeAlreadyVoted:
		return http.StatusConflict
	case CodeInvalidOptions, CodeInvalidOption, CodeEmptyMessage, CodeBadRequest:
		return http.StatusBadRequest
	}
	return http.StatusBadRequest
}
