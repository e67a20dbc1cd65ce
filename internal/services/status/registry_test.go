package status

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/KirkDiggler/giveawayd/internal/common/clock/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRegistry_AddRemove(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClock := mocks.NewMockClock(ctrl)

	first := time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	mockClock.EXPECT().Now().Return(first)

	r := New(&Config{Clock: mockClock})

	assert.True(t, r.Add(KeyChannelNotSet, "No giveaway channel configured"))
	assert.True(t, r.Has(KeyChannelNotSet))

	// re-adding keeps the original time and does not consult the clock
	assert.True(t, r.Add(KeyChannelNotSet, "Giveaway channel was deleted"))

	entries := r.List()
	require.Len(t, entries, 1)
	assert.Equal(t, "Giveaway channel was deleted", entries[0].Text)
	assert.Equal(t, first, entries[0].Since)

	assert.True(t, r.Remove(KeyChannelNotSet))
	assert.False(t, r.Remove(KeyChannelNotSet))
	assert.False(t, r.Has(KeyChannelNotSet))
	assert.Empty(t, r.List())
}

func TestRegistry_ListIsOrdered(t *testing.T) {
	r := New(nil)
	r.Add(KeyMessagePermission, "b")
	r.Add(KeyChannelNotSet, "a")

	entries := r.List()
	require.Len(t, entries, 2)
	assert.Equal(t, KeyChannelNotSet, entries[0].Key)
	assert.Equal(t, KeyMessagePermission, entries[1].Key)
}

func TestRegistry_Bounded(t *testing.T) {
	r := New(&Config{Limit: 2})

	assert.True(t, r.Add("one", "1"))
	assert.True(t, r.Add("two", "2"))
	assert.False(t, r.Add("three", "3"))
	assert.True(t, r.Add("two", "updated"))
	assert.Len(t, r.List(), 2)
}

func TestRegistry_ConcurrentUse(t *testing.T) {
	r := New(nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", i%4)
			r.Add(key, "text")
			r.List()
			r.Remove(key)
		}(i)
	}
	wg.Wait()
}
