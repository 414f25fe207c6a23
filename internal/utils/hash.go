package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// HashHeader carries the hex HMAC-SHA256 of a response body.
const HashHeader = "HashSHA256"

// hasherPool is a package-level pool of reusable HMAC-SHA256 hash instances.
// Must be initialized via InitHasherPool before Hash is used.
var hasherPool sync.Pool

// InitHasherPool initializes the pool of HMAC-SHA256 hashers keyed with
// hashKey. The server calls it once at startup when response signing is
// enabled.
func InitHasherPool(hashKey string) {
	hasherPool = sync.Pool{
		New: func() any {
			return hmac.New(sha256.New, []byte(hashKey))
		},
	}
}

// Hash computes an HMAC-SHA256 signature over data using a hasher pulled
// from the pool.
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}

// HashString computes a hex-encoded HMAC-SHA256 of data with hashKey. It does
// not touch the pool, so the client can sign and verify independently of the
// server process state.
func HashString(data []byte, hashKey string) string {
	return hex.EncodeToString(hashBytes(data, hashKey))
}

// VerifyHash reports whether signature is the hex HMAC-SHA256 of data under
// hashKey. The comparison runs in constant time.
func VerifyHash(data []byte, signature, hashKey string) bool {
	got, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(got, hashBytes(data, hashKey))
}

func hashBytes(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}
