// Package cache provides the small caching surface used to memoize
// oracle responses within a process. Nothing here persists across
// restarts; the pipeline itself stays stateless between requests.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is a byte-value cache with per-entry TTL.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration)
}

// Key derives a stable cache key from an operation name and the
// serialized request payload.
func Key(op string, payload []byte) string {
	hash := sha256.Sum256(payload)
	return "kyclens:v1:" + op + ":" + hex.EncodeToString(hash[:])
}
