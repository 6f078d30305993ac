package tools

import (
	"github.com/google/uuid"
)

// GenerateRandomToken returns a fresh UUID string, used for storage object
// names and Firebase download tokens.
func GenerateRandomToken() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}

	return id.String(), nil
}
