package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// hashKey builds a content-addressed cache key: "prefix:sha256(parts)".
// Parts are JSON-encoded before hashing so render options and the drawing
// hash fold into one stable digest.
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	sum := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(sum[:]))
}

// Hash digests raw bytes to a 64-character hex string. Callers feed it the
// drawing file contents to key previews by what the drawing actually holds,
// not by its path or mtime.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
