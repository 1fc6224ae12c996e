package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTerminalToken_Success(t *testing.T) {
	token, err := GenerateTerminalToken("pos-lite", "till-7", time.Hour, "secret-key")

	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, token.SignedString, token.String())
	assert.Equal(t, "till-7", token.TerminalID)
	assert.Equal(t, "pos-lite", token.Issuer)
}

func TestGenerateTerminalToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name       string
		issuer     string
		terminalID string
		duration   time.Duration
		key        string
	}{
		{"empty issuer", "", "till", time.Hour, "key"},
		{"empty terminal", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "till", 0, "key"},
		{"empty key", "iss", "till", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateTerminalToken(tt.issuer, tt.terminalID, tt.duration, tt.key)
			assert.Error(t, err)
		})
	}
}

func TestValidateTerminalToken_Success(t *testing.T) {
	gen, err := GenerateTerminalToken("pos-lite", "till-1", 5*time.Minute, "key")
	require.NoError(t, err)

	parsed, err := ValidateTerminalToken(gen.SignedString, "key", "pos-lite")

	require.NoError(t, err)
	assert.Equal(t, "till-1", parsed.TerminalID)
}

func TestValidateTerminalToken_Failures(t *testing.T) {
	valid, err := GenerateTerminalToken("pos-lite", "till-1", time.Hour, "key")
	require.NoError(t, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "pos-lite",
		Subject:   "till-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Second)),
	})
	expiredStr, err := expired.SignedString([]byte("key"))
	require.NoError(t, err)

	noSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Issuer: "pos-lite"})
	noSubjectStr, err := noSubject.SignedString([]byte("key"))
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{"wrong key", valid.SignedString, "other", "pos-lite"},
		{"wrong issuer", valid.SignedString, "key", "someone-else"},
		{"expired", expiredStr, "key", "pos-lite"},
		{"no subject", noSubjectStr, "key", "pos-lite"},
		{"malformed", "not.a.token", "key", "pos-lite"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateTerminalToken(tt.token, tt.key, tt.issuer)
			assert.Error(t, err)
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tok, err := ParseBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", tok)

	for _, h := range []string{"", "Bearer", "Basic abc", "Bearer a b"} {
		_, err := ParseBearerToken(h)
		assert.Error(t, err, h)
	}
}
