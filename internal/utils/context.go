// Package utils holds small helpers shared by both binaries: typed context
// keys, HMAC hashing, JSON response writing, the resty client wrapper,
// terminal tokens and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys so they cannot collide with
// string keys from other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// TerminalIDCtxKey stores the authenticated terminal identifier.
var TerminalIDCtxKey = contextKey("terminalID")

// WithTerminalID returns a copy of ctx carrying terminalID.
func WithTerminalID(ctx context.Context, terminalID string) context.Context {
	return context.WithValue(ctx, TerminalIDCtxKey, terminalID)
}

// GetTerminalIDFromContext returns the terminal identifier put into ctx by
// the auth middleware. ok is false when it is missing or empty.
func GetTerminalIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(TerminalIDCtxKey).(string)
	return id, ok && id != ""
}
