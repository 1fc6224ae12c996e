// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the terminal's field-level obfuscation and the
// generation of the per-installation key it uses.
package crypto

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/pos-lite/internal/logger"
)

// installationKeyPrefix marks keys produced by GenerateInstallationKey.
const installationKeyPrefix = "poslite_key_"

type fieldCipher struct {
	key []byte
}

// NewFieldCipher returns a [FieldCipher] bound to key.
func NewFieldCipher(key string) (FieldCipher, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	return &fieldCipher{key: []byte(key)}, nil
}

// GenerateInstallationKey returns a fresh installation key: a fixed prefix
// followed by 12 random bytes in hex, read from the OS CSPRNG.
func GenerateInstallationKey() (string, error) {
	buf := make([]byte, 12)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return "", fmt.Errorf("error generating installation key: %w", err)
	}
	return installationKeyPrefix + hex.EncodeToString(buf), nil
}

func (c *fieldCipher) Encrypt(value any) (string, error) {
	plain, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("error serializing field: %w", err)
	}

	return base64.StdEncoding.EncodeToString(c.xor(plain)), nil
}

func (c *fieldCipher) Decrypt(token string, target any) error {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}

	if err := json.Unmarshal(c.xor(raw), target); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}

	return nil
}

func (c *fieldCipher) DecryptString(ctx context.Context, token string) *string {
	var value *string
	if err := c.Decrypt(token, &value); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "fieldCipher.DecryptString").
			Msg("field could not be decrypted, reporting it as null")
		return nil
	}
	return value
}

// xor returns data XOR key, with the key repeated over the whole input.
// Applying it twice restores the input.
func (c *fieldCipher) xor(data []byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ c.key[i%len(c.key)]
	}
	return out
}
