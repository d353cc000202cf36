package domain

import (
	"crypto/sha256"
	"encoding/hex"
)

// CacheKey is a fixed-width digest identifying a listing URL in both
// cache tiers.
type CacheKey string

// DeriveKey maps a listing URL to its cache key: the hex-encoded SHA-256
// of the raw URL bytes. The function is pure and deterministic.
//
// No normalization is performed. Two URLs that differ only cosmetically
// (trailing slash, query order, case) produce different keys. This is a
// documented limitation, not something callers should paper over.
func DeriveKey(url string) CacheKey {
	sum := sha256.Sum256([]byte(url))
	return CacheKey(hex.EncodeToString(sum[:]))
}
