// Package errors defines the client's error taxonomy: decode failures are
// recovered locally, validation failures are surfaced and leave state
// unchanged, and transport failures fall back to empty reads or preserved
// drafts. Nothing here is fatal to the process.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError is the interface every surfaced error implements so the screen
// shell can translate it into a response.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code for the local screen surface
	ErrorCode() string // Business error code
	Message() string   // User-facing message
	Details() string   // Optional detail
}

// BaseError is the standard AppError implementation.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing error message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information.
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying detailed error information.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

var (
	// Session errors.
	ErrInvalidCredentials = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CREDENTIALS",
		"Email or password is incorrect",
		"",
	)

	ErrNotSignedIn = NewBaseError(
		http.StatusUnauthorized,
		"NOT_SIGNED_IN",
		"Please log in to continue",
		"",
	)

	// Validation errors: the user corrects input and retries; no state is
	// lost and no remote call is made.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Some fields are missing or invalid",
		"",
	)

	ErrSubscriptionRequired = NewBaseError(
		http.StatusBadRequest,
		"SUBSCRIPTION_REQUIRED",
		"Please select a subscription model",
		"",
	)

	ErrFeedbackEmpty = NewBaseError(
		http.StatusBadRequest,
		"FEEDBACK_EMPTY",
		"Please enter some feedback",
		"",
	)

	// Checkout state errors.
	ErrOrderContextMissing = NewBaseError(
		http.StatusConflict,
		"ORDER_CONTEXT_MISSING",
		"No meal is selected yet",
		"",
	)

	ErrNotEditing = NewBaseError(
		http.StatusConflict,
		"NOT_EDITING",
		"The order cannot be changed right now",
		"",
	)

	ErrNotConfirming = NewBaseError(
		http.StatusConflict,
		"NOT_CONFIRMING",
		"There is no pending confirmation",
		"",
	)

	ErrSubmissionInFlight = NewBaseError(
		http.StatusConflict,
		"SUBMISSION_IN_FLIGHT",
		"Your order is already being placed",
		"",
	)

	ErrOrderFailed = NewBaseError(
		http.StatusBadGateway,
		"ORDER_FAILED",
		"Failed to place order. Please try again",
		"",
	)

	// Remote collaborator errors. Reads fall back to empty collections;
	// writes surface this and keep the draft for a user-initiated retry.
	ErrRemoteUnavailable = NewBaseError(
		http.StatusBadGateway,
		"REMOTE_UNAVAILABLE",
		"Something went wrong. Please try again",
		"",
	)

	// Access errors.
	ErrScreenDenied = NewBaseError(
		http.StatusForbidden,
		"SCREEN_DENIED",
		"Vendors do not have access to this screen",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// RemoteError carries a message returned by the marketplace API, e.g. a
// registration rejection, so it can be shown verbatim.
type RemoteError struct {
	status  int
	message string
}

// NewRemoteError creates an error from a non-2xx marketplace response.
func NewRemoteError(status int, message string) AppError {
	if message == "" {
		message = "Something went wrong. Please try again"
	}

	return &RemoteError{status: status, message: message}
}

// Error implements the error interface.
func (e *RemoteError) Error() string {
	return e.message
}

// HTTPCode returns the upstream status code.
func (e *RemoteError) HTTPCode() int {
	return e.status
}

// ErrorCode returns the business error code.
func (e *RemoteError) ErrorCode() string {
	return "REMOTE_ERROR"
}

// Message returns the upstream message.
func (e *RemoteError) Message() string {
	return e.message
}

// Details returns detailed error information.
func (e *RemoteError) Details() string {
	return ""
}
