package filter

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/gowebpki/jcs"
)

// CacheKey returns a stable digest of n's fields, computed over RFC 8785
// canonical JSON. Two normalized filters with the same fields share a key
// in every process.
func CacheKey(n Normalized) (string, error) {
	if !n.sealed {
		return "", fmt.Errorf("cache key: filter is not normalized")
	}
	data, err := json.Marshal(n.fields)
	if err != nil {
		return "", fmt.Errorf("cache key: %w", err)
	}
	canonical, err := jcs.Transform(data)
	if err != nil {
		return "", fmt.Errorf("cache key: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}
