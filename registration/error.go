package registration

import "fmt"

type ErrorReason string

const (
	REASON_DUPLICATE_SYMPOSIUM      ErrorReason = "DUPLICATE_SYMPOSIUM"
	REASON_DUPLICATE_ONLINE_GAME    ErrorReason = "DUPLICATE_ONLINE_GAME"
	REASON_INVALID_EVENT_SELECTION  ErrorReason = "INVALID_EVENT_SELECTION"
	REASON_FAILED_TO_WRITE          ErrorReason = "FAILED_TO_WRITE"
	REASON_FAILED_TO_FETCH          ErrorReason = "FAILED_TO_FETCH"
	REASON_FAILED_TO_ALLOCATE_SEQ   ErrorReason = "FAILED_TO_ALLOCATE_SEQ"
	REASON_REGISTRATION_NOT_FOUND   ErrorReason = "REGISTRATION_NOT_FOUND"
	REASON_INVALID_REGISTRATION_ID  ErrorReason = "INVALID_REGISTRATION_ID"
	REASON_CODE_ALREADY_EXISTS      ErrorReason = "CODE_ALREADY_EXISTS"
	REASON_FAILED_TO_TRANSLATE_DOC  ErrorReason = "FAILED_TO_TRANSLATE_DOC"
)

type Error struct {
	Reason  ErrorReason
	Message string
	Cause   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s. Cause: %s", e.Reason, e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func newRegistrationError(reason ErrorReason, message string, cause error) *Error {
	return &Error{
		Reason:  reason,
		Message: message,
		Cause:   cause,
	}
}

// NewDuplicateSymposiumError carries the exact message the legacy client
// renders when an email already holds a symposium-category registration.
func NewDuplicateSymposiumError(email string) *Error {
	return newRegistrationError(REASON_DUPLICATE_SYMPOSIUM, "Email already registered for Symposium Events", nil)
}

// NewDuplicateOnlineGameError names the specific game that is already
// registered for this email.
func NewDuplicateOnlineGameError(email, game string) *Error {
	return newRegistrationError(REASON_DUPLICATE_ONLINE_GAME, fmt.Sprintf("Email already registered for %s", game), nil)
}

func NewInvalidEventSelectionError(count int) *Error {
	return newRegistrationError(REASON_INVALID_EVENT_SELECTION, fmt.Sprintf("Event selection must be between %d and %d, got %d", MinEvents, MaxEvents, count), nil)
}

func NewFailedToWriteError(message string, cause error) *Error {
	return newRegistrationError(REASON_FAILED_TO_WRITE, message, cause)
}

func NewFailedToFetchError(message string, cause error) *Error {
	return newRegistrationError(REASON_FAILED_TO_FETCH, message, cause)
}

func NewFailedToAllocateSequenceError(cause error) *Error {
	return newRegistrationError(REASON_FAILED_TO_ALLOCATE_SEQ, "Failed to allocate registration sequence", cause)
}

func NewRegistrationNotFoundError(message string) *Error {
	return newRegistrationError(REASON_REGISTRATION_NOT_FOUND, message, nil)
}

func NewInvalidRegistrationIDError(id string, cause error) *Error {
	return newRegistrationError(REASON_INVALID_REGISTRATION_ID, fmt.Sprintf("Invalid registration id %q", id), cause)
}

func NewCodeAlreadyExistsError(code string, cause error) *Error {
	return newRegistrationError(REASON_CODE_ALREADY_EXISTS, fmt.Sprintf("Registration code %q already exists", code), cause)
}

func NewFailedToTranslateDocError(message string, cause error) *Error {
	return newRegistrationError(REASON_FAILED_TO_TRANSLATE_DOC, message, cause)
}
