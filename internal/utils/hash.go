package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// HashJSON returns the hex-encoded SHA-256 digest of the JSON encoding of v.
//
// encoding/json sorts map keys, so equal values always produce the same
// digest. It is used to derive entity tags of response payloads.
//
// Example usage:
//
//	tag, err := utils.HashJSON(item)
func HashJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("error marshaling data for hashing: %w", err)
	}

	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
