// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Errors returned by the auth and integrity middleware.
var (
	// ErrEmptyAuthorizationHeader is returned when a request without an
	// "Authorization" header reaches a protected route.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header is not a
	// bearer token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	ErrInvalidTerminalToken = errors.New("terminal token is invalid or expired")

	ErrMissingBodyHash  = errors.New("missing `HashSHA256` header")
	ErrIntegrityCheck   = errors.New("integrity check failed")
	ErrInvalidJSON      = errors.New("invalid JSON was passed")
	ErrInvalidDateRange = errors.New("invalid date range")
)
