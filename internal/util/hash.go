package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashAnswer returns the sha-256 hex digest of an answer string.
// The same digest is stored at seed time and compared at score time,
// so the plaintext correct answer never has to be persisted or served.
func HashAnswer(answer string) string {
	sum := sha256.Sum256([]byte(answer))
	return hex.EncodeToString(sum[:])
}
