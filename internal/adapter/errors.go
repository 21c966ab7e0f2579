package adapter

import "errors"

// Sentinel errors mapped from HTTP responses of the remote store. Callers use
// [errors.Is] to tell permanent rejections from transient failures.
var (
	// ErrBadRequest is returned for 400 and 422: the remote store rejected
	// the record itself.
	ErrBadRequest = errors.New("bad request")
	// ErrUnauthorized is returned for 401.
	ErrUnauthorized = errors.New("client unauthorized")
	// ErrForbidden is returned for 403.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound is returned for 404 outside of deletes.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned for 409.
	ErrConflict = errors.New("conflict")
	// ErrRejected is returned for any other 4xx status.
	ErrRejected = errors.New("request rejected by remote store")
	// ErrUnavailable is returned for 5xx, 429, timeouts and transport
	// failures.
	ErrUnavailable = errors.New("remote store unavailable")
)
