package common

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so callers can react without parsing messages.
type Kind string

const (
	// KindInvalidCredentials means the login exchange was rejected.
	KindInvalidCredentials Kind = "invalid_credentials"
	// KindUnauthenticated means an authenticated operation was attempted
	// with no credential present. Precondition failure, not a network error.
	KindUnauthenticated Kind = "unauthenticated"
	// KindAuthExpired means an authenticated request came back with an
	// authentication-rejection status.
	KindAuthExpired Kind = "auth_expired"
	// KindValidationFailure means client-side input was invalid before any
	// network call was made.
	KindValidationFailure Kind = "validation_failure"
	// KindRemoteFailure means a transport error or a server-side rejection.
	KindRemoteFailure Kind = "remote_failure"
)

// ErrNoSourceAccount is returned when a transfer is attempted with an empty
// account collection. It never reaches the network.
var ErrNoSourceAccount = errors.New("no source account available")

// AppError carries a failure classification, a user-facing message and the
// underlying cause.
type AppError struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(kind Kind, message string, err error) *AppError {
	return &AppError{
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// KindOf extracts the classification from err, or empty if err is not an
// AppError.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

// IsKind reports whether err carries the given classification.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// Remotef builds a RemoteFailure with a formatted message.
func Remotef(err error, format string, args ...interface{}) *AppError {
	return NewAppError(KindRemoteFailure, fmt.Sprintf(format, args...), err)
}
