package crypto

import "errors"

var (
	ErrEmptyKey       = errors.New("field cipher key is empty")
	ErrMalformedToken = errors.New("malformed field cipher token")
)
