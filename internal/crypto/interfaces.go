package crypto

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/field_cipher_mock.go -package=mock

// FieldCipher obfuscates individual record fields at rest on the terminal.
//
// A token is base64(JSON(value) XOR key), where the installation key is
// repeated cyclically over the serialized bytes. This keeps casual readers
// of the database file away from product names and tenders; it is not
// confidentiality and is not meant to resist an attacker holding the file.
type FieldCipher interface {
	// Encrypt serializes value to JSON and returns its token.
	Encrypt(value any) (string, error)

	// Decrypt reverses Encrypt into target (as json.Unmarshal would).
	// A token that is not valid base64, or that does not decode to JSON
	// matching target, yields ErrMalformedToken.
	Decrypt(token string, target any) error

	// DecryptString decrypts a string-valued token. Any failure is logged
	// and reported as nil; it never returns an error.
	DecryptString(ctx context.Context, token string) *string
}
