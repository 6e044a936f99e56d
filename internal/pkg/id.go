package pkg

import "github.com/google/uuid"

// GenerateGameID - returns a new opaque game identifier.
func GenerateGameID() string {
	return uuid.NewString()
}
