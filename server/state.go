package server

import (
	"fmt"

	"github.com/google/uuid"
)

// StateGenerator returns a fresh opaque state value for one authorization request.
type StateGenerator func() (string, error)

// NewUUIDState returns a random (version 4) UUID.
func NewUUIDState() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("[server state] failed to generate state: %w", err)
	}
	return id.String(), nil
}
