package crypto

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCipher(t *testing.T, key string) FieldCipher {
	t.Helper()
	c, err := NewFieldCipher(key)
	require.NoError(t, err)
	return c
}

func TestNewFieldCipher_EmptyKey(t *testing.T) {
	c, err := NewFieldCipher("")
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrEmptyKey)
}

func TestGenerateInstallationKey(t *testing.T) {
	k1, err := GenerateInstallationKey()
	require.NoError(t, err)
	k2, err := GenerateInstallationKey()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(k1, installationKeyPrefix))
	assert.Len(t, k1, len(installationKeyPrefix)+24)
	assert.NotEqual(t, k1, k2)
}

// TestEncryptDecrypt_RoundTrip checks decrypt(encrypt(v)) == v for the
// values that actually get stored, including non-ASCII text.
func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	c := newTestCipher(t, "poslite_key_0123456789abcdef01234567")

	for _, v := range []string{"Coffee", "", "cash", "Café au lait ☕", strings.Repeat("x", 200)} {
		token, err := c.Encrypt(v)
		require.NoError(t, err)

		var got string
		require.NoError(t, c.Decrypt(token, &got))
		assert.Equal(t, v, got)
	}
}

func TestEncrypt_IsNotPlaintext(t *testing.T) {
	c := newTestCipher(t, "k")

	token, err := c.Encrypt("Coffee")
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(token)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "Coffee")
}

func TestEncrypt_DependsOnKey(t *testing.T) {
	a, err := newTestCipher(t, "key-a").Encrypt("Coffee")
	require.NoError(t, err)
	b, err := newTestCipher(t, "key-b").Encrypt("Coffee")
	require.NoError(t, err)
	again, err := newTestCipher(t, "key-a").Encrypt("Coffee")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.Equal(t, a, again)
}

func TestDecrypt_Malformed(t *testing.T) {
	c := newTestCipher(t, "key")

	var out string
	assert.ErrorIs(t, c.Decrypt("%%% not base64 %%%", &out), ErrMalformedToken)

	notJSON := base64.StdEncoding.EncodeToString([]byte{0x01, 0x02, 0x03})
	assert.ErrorIs(t, c.Decrypt(notJSON, &out), ErrMalformedToken)
}

func TestDecryptString(t *testing.T) {
	c := newTestCipher(t, "key")
	ctx := context.Background()

	token, err := c.Encrypt("card")
	require.NoError(t, err)
	got := c.DecryptString(ctx, token)
	require.NotNil(t, got)
	assert.Equal(t, "card", *got)

	nullToken, err := c.Encrypt(nil)
	require.NoError(t, err)
	assert.Nil(t, c.DecryptString(ctx, nullToken))

	numberToken, err := c.Encrypt(42)
	require.NoError(t, err)
	assert.Nil(t, c.DecryptString(ctx, numberToken))

	assert.Nil(t, c.DecryptString(ctx, "garbage!!"))
}

// TestDecryptString_WrongKey verifies that a token written under another
// installation key does not surface as an error.
func TestDecryptString_WrongKey(t *testing.T) {
	token, err := newTestCipher(t, "original-key").Encrypt("Tea")
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		got := newTestCipher(t, "other-key-entirely").DecryptString(context.Background(), token)
		if got != nil {
			assert.NotEqual(t, "Tea", *got)
		}
	})
}
