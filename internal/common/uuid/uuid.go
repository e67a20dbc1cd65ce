package uuid

import (
	"strings"

	"github.com/google/uuid"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/giveawayd/internal/common/uuid Generator

// Generator produces identifiers for new records
type Generator interface {
	NewID() string
}

// DefaultGenerator issues random (v4) UUIDs without dashes so they fit
// comfortably in slash command options and log lines.
type DefaultGenerator struct{}

func New() *DefaultGenerator {
	return &DefaultGenerator{}
}

// NewID returns a new identifier
func (d *DefaultGenerator) NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
