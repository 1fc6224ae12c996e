package models

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// TerminalToken is a signed bearer token that identifies a point-of-sale
// terminal to the backend.
//
// It embeds [jwt.RegisteredClaims]; the terminal identifier travels in the
// "sub" claim. SignedString holds the compact form sent in the
// Authorization header.
type TerminalToken struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	SignedString string `json:"-"`
	TerminalID   string `json:"-"`
}

// GetTerminalID returns the terminal identifier from the subject claim.
func (t *TerminalToken) GetTerminalID() (string, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return "", err
	}
	if sub == "" {
		return "", errors.New("empty terminal id in token subject")
	}
	return sub, nil
}

// String returns the compact JWS serialization.
func (t *TerminalToken) String() string {
	return t.SignedString
}
