// Package status keeps the standing warnings operators see in /giveaway status.
package status

import (
	"sort"
	"sync"
	"time"

	"github.com/KirkDiggler/giveawayd/internal/common/clock"
)

const (
	// KeyChannelNotSet is raised while no giveaway channel can be resolved
	KeyChannelNotSet = "channel_not_set"

	// KeyMessagePermission is raised when the bot cannot remove reactions
	KeyMessagePermission = "message_permission"

	defaultLimit = 32
)

// Entry is one standing warning
type Entry struct {
	Key   string
	Text  string
	Since time.Time
}

// Registry is a bounded set of warnings keyed by a fixed identifier.
// It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
	clock   clock.Clock
	limit   int
}

// Config for the registry
type Config struct {
	Clock clock.Clock

	// Limit caps the number of distinct keys
	Limit int
}

// New creates an empty registry
func New(cfg *Config) *Registry {
	r := &Registry{
		entries: make(map[string]Entry),
		clock:   &clock.DefaultClock{},
		limit:   defaultLimit,
	}

	if cfg != nil {
		if cfg.Clock != nil {
			r.clock = cfg.Clock
		}
		if cfg.Limit > 0 {
			r.limit = cfg.Limit
		}
	}

	return r
}

// Add raises a warning. Re-adding a key updates its text and keeps the
// original Since. It reports false when the registry is full.
func (r *Registry) Add(key, text string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.entries[key]; ok {
		existing.Text = text
		r.entries[key] = existing
		return true
	}

	if len(r.entries) >= r.limit {
		return false
	}

	r.entries[key] = Entry{
		Key:   key,
		Text:  text,
		Since: r.clock.Now(),
	}
	return true
}

// Remove clears a warning; it reports whether one was present
func (r *Registry) Remove(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[key]; !ok {
		return false
	}
	delete(r.entries, key)
	return true
}

func (r *Registry) Has(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.entries[key]
	return ok
}

// List returns the warnings ordered by key
func (r *Registry) List() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})

	return entries
}
