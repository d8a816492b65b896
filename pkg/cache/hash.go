package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// deriveHash builds a namespaced cache key from the request parameters that
// determine a derivation. Each part is JSON-encoded straight into the
// hasher, so key construction never allocates an intermediate buffer.
// Format: "<ns>:<64 hex chars>"; the full SHA-256 digest keeps distinct
// requests from ever sharing an entry.
func deriveHash(ns string, parts ...any) string {
	h := sha256.New()
	enc := json.NewEncoder(h)
	for _, p := range parts {
		// Encoding a marshalable value into a hash never fails.
		_ = enc.Encode(p)
	}
	return ns + ":" + hex.EncodeToString(h.Sum(nil))
}

// Hash returns the hex SHA-256 digest of data. FileCache uses it to turn
// derivation keys into filesystem-safe names.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
