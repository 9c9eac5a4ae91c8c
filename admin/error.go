package admin

import "fmt"

type ErrorReason string

const (
	REASON_INVALID_CREDENTIALS     ErrorReason = "INVALID_CREDENTIALS"
	REASON_ADMIN_NOT_FOUND         ErrorReason = "ADMIN_NOT_FOUND"
	REASON_USERNAME_ALREADY_EXISTS ErrorReason = "USERNAME_ALREADY_EXISTS"
	REASON_FAILED_TO_WRITE         ErrorReason = "FAILED_TO_WRITE"
	REASON_FAILED_TO_FETCH         ErrorReason = "FAILED_TO_FETCH"
	REASON_INVALID_TOKEN           ErrorReason = "INVALID_TOKEN"
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

func newAdminError(reason ErrorReason, message string, cause error) *Error {
	return &Error{
		Reason:  reason,
		Message: message,
		Cause:   cause,
	}
}

func NewInvalidCredentialsError(username string) *Error {
	return newAdminError(REASON_INVALID_CREDENTIALS, fmt.Sprintf("Invalid credentials for %q", username), nil)
}

func NewAdminNotFoundError(username string) *Error {
	return newAdminError(REASON_ADMIN_NOT_FOUND, fmt.Sprintf("No admin matching %q", username), nil)
}

func NewUsernameAlreadyExistsError(username string, cause error) *Error {
	return newAdminError(REASON_USERNAME_ALREADY_EXISTS, fmt.Sprintf("Username %q already exists", username), cause)
}

func NewFailedToWriteError(message string, cause error) *Error {
	return newAdminError(REASON_FAILED_TO_WRITE, message, cause)
}

func NewFailedToFetchError(message string, cause error) *Error {
	return newAdminError(REASON_FAILED_TO_FETCH, message, cause)
}

func NewInvalidTokenError(cause error) *Error {
	return newAdminError(REASON_INVALID_TOKEN, "Token is invalid or expired", cause)
}
