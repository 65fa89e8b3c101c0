package security

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// API keys look like clk_<40 hex chars>. Only the SHA-256 digest is stored;
// the prefix (clk_ plus the first 8 hex chars) is kept for identification.
const (
	apiKeyScheme    = "clk_"
	apiKeySecretLen = 20
	apiKeyPrefixLen = len(apiKeyScheme) + 8
)

// GenerateApiKey returns a fresh plaintext key, its display prefix, and the
// digest to persist. The plaintext exists only in the caller's hands.
func GenerateApiKey() (plaintext, prefix, hash string, err error) {
	buf := make([]byte, apiKeySecretLen)
	if _, err := rand.Read(buf); err != nil {
		return "", "", "", fmt.Errorf("failed to generate api key: %w", err)
	}
	plaintext = apiKeyScheme + hex.EncodeToString(buf)
	return plaintext, plaintext[:apiKeyPrefixLen], HashApiKey(plaintext), nil
}

// HashApiKey computes the stored digest for a plaintext key.
func HashApiKey(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}
