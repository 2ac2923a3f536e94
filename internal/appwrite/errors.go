package appwrite

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the adapter. Callers should match them with
// errors.Is; the remote error message is preserved by wrapping.
var (
	// ErrInvalidCredentials means the email/password pair was rejected on
	// session creation.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotAuthenticated means the operation requires a session that is
	// absent or expired.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrConflict means the resource already exists (e.g. duplicate email).
	ErrConflict = errors.New("already exists")

	// ErrNotFound means the requested resource is absent.
	ErrNotFound = errors.New("not found")

	// ErrValidation means the request was rejected before or during
	// processing (bad field, file type, file size).
	ErrValidation = errors.New("validation error")

	// ErrUnavailable means the transport failed or the service did not
	// respond.
	ErrUnavailable = errors.New("service unavailable")
)

// RequestError is returned for every rejected remote request. It keeps the
// HTTP status and the remote message and unwraps to one of the sentinels
// above, so both errors.Is matching and the human-readable detail survive.
type RequestError struct {
	Status   int
	Message  string
	sentinel error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("remote error %d: %s", e.Status, e.Message)
}

func (e *RequestError) Unwrap() error { return e.sentinel }
