package draw

import (
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_picker.go github.com/KirkDiggler/giveawayd/internal/draw Picker

// Picker selects giveaway winners
type Picker interface {
	// Pick returns one participant chosen uniformly at random, or false when there are none
	Pick(participants []string) (string, bool)
}

// Drawer picks winners from a seeded random source
type Drawer struct {
	mu     sync.Mutex
	random *rand.Rand
}

// Config for the drawer
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new drawer
func New(cfg *Config) *Drawer {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Drawer{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Pick selects a single winner
func (d *Drawer) Pick(participants []string) (string, bool) {
	switch len(participants) {
	case 0:
		return "", false
	case 1:
		return participants[0], true
	}

	d.mu.Lock()
	idx := d.random.Intn(len(participants))
	d.mu.Unlock()

	return participants[idx], true
}
