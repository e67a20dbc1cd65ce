package giveaway

import (
	"errors"
	"fmt"
)

var (
	// ErrGiveawayNotFound is returned when a giveaway is not found
	ErrGiveawayNotFound = errors.New("giveaway not found")

	// ErrGiveawayExists is returned when creating a giveaway whose ID is taken
	ErrGiveawayExists = errors.New("giveaway already exists")

	// ErrWinNotFound is returned when a user has no win in a bracket
	ErrWinNotFound = errors.New("win not found")
)

// PersistenceError wraps a failure of the backing store
type PersistenceError struct {
	Op         string
	GiveawayID string
	Err        error
}

func (e *PersistenceError) Error() string {
	if e.GiveawayID != "" {
		return fmt.Sprintf("failed to %s giveaway %s: %v", e.Op, e.GiveawayID, e.Err)
	}
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
