package random

import (
	"crypto/rand"
	"fmt"
)

const (
	// CollisionResistantLength is the byte length used when generating the
	// random name of the temporary file that replaces the directorysizes
	// cache. It is large enough that two concurrent callers colliding on the
	// same random name is not a realistic concern.
	CollisionResistantLength = 16
)

// New returns a byte slice of the specified length with cryptographically
// random contents.
func New(length int) ([]byte, error) {
	// Create the buffer.
	result := make([]byte, length)

	// Read random data.
	if _, err := rand.Read(result); err != nil {
		return nil, fmt.Errorf("unable to read random data: %w", err)
	}

	// Success.
	return result, nil
}
