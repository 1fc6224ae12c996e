package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// HashHeader carries the hex HMAC-SHA256 of a request or response body.
const HashHeader = "HashSHA256"

// hasherPool holds HMAC-SHA256 instances keyed with the integrity key.
// InitHasherPool must be called before Hash.
var hasherPool sync.Pool

// InitHasherPool configures the pool with hashKey. It is called once at
// startup when an integrity key is configured.
func InitHasherPool(hashKey string) {
	hasherPool = sync.Pool{
		New: func() any {
			return hmac.New(sha256.New, []byte(hashKey))
		},
	}
}

// Hash returns the HMAC-SHA256 of data using a pooled hasher.
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()
	h.Write(data)
	sum := h.Sum(nil)
	hasherPool.Put(h)

	return sum
}

// HashString returns the hex HMAC-SHA256 of data under hashKey without
// touching the pool. The client uses it to sign outgoing bodies.
func HashString(data []byte, hashKey string) string {
	h := hmac.New(sha256.New, []byte(hashKey))
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
