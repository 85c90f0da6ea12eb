package pkg

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

const episodeIDBytes = 16

// GenerateEpisodeID - generates a new unique, URL-safe episode ID.
func GenerateEpisodeID() (string, error) {
	b := make([]byte, episodeIDBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}
