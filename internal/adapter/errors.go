package adapter

import "errors"

var (
	// ErrBackendUnavailable wraps transport failures: refused connections,
	// DNS errors and timeouts.
	ErrBackendUnavailable = errors.New("backend unavailable")

	// ErrMalformedResponse is returned when a 2xx body cannot be decoded.
	ErrMalformedResponse = errors.New("malformed backend response")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("terminal unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)
