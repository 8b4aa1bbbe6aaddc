package service

import "errors"

var (
	// ErrApplication matches every [*ApplicationError] via errors.Is.
	ErrApplication = errors.New("backend reported an error")

	ErrAccessDenied       = errors.New("access to lab manager configs denied")
	ErrEndpointNotFound   = errors.New("lab manager configs endpoint not found")
	ErrBackendUnavailable = errors.New("lab manager backend unavailable")
	ErrBadBackendRequest  = errors.New("backend rejected the request")
)

// ApplicationError is the <error> text embedded in a backend response. It is
// not a transport or parse failure: the request succeeded and the backend
// explained why it returned no configurations.
type ApplicationError struct {
	Message string
}

func (e *ApplicationError) Error() string {
	return e.Message
}

// Is reports whether target is [ErrApplication].
func (e *ApplicationError) Is(target error) bool {
	return target == ErrApplication
}
