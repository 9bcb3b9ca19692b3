package usecase

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"
)

// extractionCacheKey derives a stable idempotency key for a URL extraction.
// The same URL always maps to the same key, so re-submitting a posting hits
// the cache instead of repeating paid fetch and model calls.
func extractionCacheKey(url string) string {
	url = strings.TrimSpace(strings.ToLower(url))
	url = strings.TrimRight(url, "/")
	h := sha1.Sum([]byte(url))
	return "extract:url:" + hex.EncodeToString(h[:])
}
