// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "terminalID", TerminalIDCtxKey.String())
}

func TestGetTerminalIDFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		wantID string
		wantOK bool
	}{
		{"present", WithTerminalID(context.Background(), "till-1"), "till-1", true},
		{"missing", context.Background(), "", false},
		{"empty", WithTerminalID(context.Background(), ""), "", false},
		{"wrong type", context.WithValue(context.Background(), TerminalIDCtxKey, 42), "", false},
		{"plain string key", context.WithValue(context.Background(), "terminalID", "x"), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := GetTerminalIDFromContext(tt.ctx)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}
