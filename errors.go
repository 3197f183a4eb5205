package authstate

import (
	goerrors "github.com/goliatone/go-errors"
)

// CodeTokenInvalid is the provider code the verification service uses for
// invalid or expired credentials. Resolution collapses this code into the
// unauthenticated outcome instead of surfacing an error.
const CodeTokenInvalid = 10020

// UnknownErrorMessage is the fallback for failures that carry no message.
const UnknownErrorMessage = "Unknown Error"

const (
	TextCodeServiceFailure  = "AUTH_SERVICE_FAILURE"
	TextCodeProfileNotFound = "PROFILE_NOT_FOUND"
)

// ErrProfileNotFound is the error we return when a validated subject has no
// profile record. Template for richer instances built via WithMetadata.
var ErrProfileNotFound = goerrors.New("profile not found", goerrors.CategoryNotFound).
	WithTextCode(TextCodeProfileNotFound).
	WithCode(goerrors.CodeNotFound)

// NewServiceError builds a classified failure carrying the provider's code
// and human-readable message.
func NewServiceError(code int, message string) *goerrors.Error {
	if message == "" {
		message = UnknownErrorMessage
	}
	return goerrors.New(message, goerrors.CategoryOperation).
		WithTextCode(TextCodeServiceFailure).
		WithCode(code)
}

// IsInvalidTokenError reports whether err is the service-classified
// invalid/expired credential failure.
func IsInvalidTokenError(err error) bool {
	if err == nil {
		return false
	}
	var richErr *goerrors.Error
	if goerrors.As(err, &richErr) {
		return richErr.Code == CodeTokenInvalid
	}
	return false
}

// ServiceCode extracts the provider code from a classified failure.
func ServiceCode(err error) (int, bool) {
	var richErr *goerrors.Error
	if goerrors.As(err, &richErr) {
		return richErr.Code, true
	}
	return 0, false
}

// FailureMessage converts a resolution failure into the human-readable
// message surfaced on a Failed envelope: the service-provided message for
// classified failures, the error text otherwise, and the "Unknown Error"
// literal when neither is available.
func FailureMessage(err error) string {
	if err == nil {
		return UnknownErrorMessage
	}

	var richErr *goerrors.Error
	if goerrors.As(err, &richErr) && richErr.Message != "" {
		return richErr.Message
	}

	if msg := err.Error(); msg != "" {
		return msg
	}

	return UnknownErrorMessage
}
