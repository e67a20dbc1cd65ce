package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)

func newPendingGiveaway() *Giveaway {
	return &Giveaway{
		ID:              "giveaway-1",
		OwnerID:         "owner-1",
		GameName:        "Hollow Knight",
		GameURL:         "https://store.example.com/hollow-knight",
		Price:           "15",
		Created:         testNow.Add(-time.Hour),
		DurationMinutes: 60,
		State:           PendingState{},
	}
}

func TestGiveaway_ForwardTransitions(t *testing.T) {
	g := newPendingGiveaway()
	assert.Equal(t, GiveawayStatusPending, g.Status())
	_, started := g.Started()
	assert.False(t, started)

	require.NoError(t, g.MarkOpen(testNow, "channel-1", "url-msg", "start-msg"))
	assert.Equal(t, GiveawayStatusOpen, g.Status())
	assert.Equal(t, testNow, g.LastUpdated)

	open, ok := g.Open()
	require.True(t, ok)
	assert.True(t, open.AddParticipant("user-1"))
	assert.False(t, open.AddParticipant("user-1"))

	ended := testNow.Add(61 * time.Minute)
	require.NoError(t, g.MarkClosed(ended, "user-1"))
	assert.Equal(t, GiveawayStatusClosed, g.Status())
	assert.True(t, g.Status().IsTerminal())

	winner, ok := g.WinnerID()
	assert.True(t, ok)
	assert.Equal(t, "user-1", winner)

	startedAt, ok := g.Started()
	assert.True(t, ok)
	assert.Equal(t, testNow, startedAt)

	endedAt, ok := g.Ended()
	assert.True(t, ok)
	assert.Equal(t, ended, endedAt)
}

func TestGiveaway_RejectsBackwardTransitions(t *testing.T) {
	g := newPendingGiveaway()

	assert.ErrorIs(t, g.MarkClosed(testNow, "user-1"), ErrInvalidTransition)
	assert.ErrorIs(t, g.MarkCancelled(testNow, "nope"), ErrInvalidTransition)

	require.NoError(t, g.MarkOpen(testNow, "channel-1", "url-msg", "start-msg"))
	assert.ErrorIs(t, g.MarkOpen(testNow, "channel-1", "url-msg", "start-msg"), ErrInvalidTransition)

	require.NoError(t, g.MarkCancelled(testNow, "message not found"))
	assert.ErrorIs(t, g.MarkClosed(testNow, ""), ErrInvalidTransition)
	assert.ErrorIs(t, g.MarkOpen(testNow, "channel-1", "url-msg", "start-msg"), ErrInvalidTransition)

	_, hasWinner := g.WinnerID()
	assert.False(t, hasWinner)
}

func TestGiveaway_ClosedWithoutWinner(t *testing.T) {
	g := newPendingGiveaway()
	require.NoError(t, g.MarkOpen(testNow, "channel-1", "url-msg", "start-msg"))
	require.NoError(t, g.MarkClosed(testNow, ""))

	_, ok := g.WinnerID()
	assert.False(t, ok)
}

func TestGiveaway_JSONKeepsClosedState(t *testing.T) {
	g := newPendingGiveaway()
	g.Code = "AAAA-BBBB"
	require.NoError(t, g.MarkOpen(testNow, "channel-1", "url-msg", "start-msg"))
	open, _ := g.Open()
	open.AddParticipant("user-1")
	open.AddCooldownUser("user-2")
	require.NoError(t, g.MarkClosed(testNow.Add(time.Hour), "user-1"))

	data, err := json.Marshal(g)
	require.NoError(t, err)

	var decoded Giveaway
	require.NoError(t, json.Unmarshal(data, &decoded))

	closed, ok := decoded.State.(*ClosedState)
	require.True(t, ok)
	assert.Equal(t, "user-1", closed.WinnerID)
	assert.Equal(t, []string{"user-1"}, closed.Participants)
	assert.Equal(t, []string{"user-2"}, closed.CooldownUsers)
	assert.Equal(t, "start-msg", closed.StartMessageID)
	assert.True(t, closed.Ended.Equal(testNow.Add(time.Hour)))
	assert.Equal(t, "AAAA-BBBB", decoded.Code)
}

func TestGiveaway_JSONPendingHasNoOpenFields(t *testing.T) {
	data, err := json.Marshal(newPendingGiveaway())
	require.NoError(t, err)

	assert.NotContains(t, string(data), "started")
	assert.NotContains(t, string(data), "winner_id")

	var decoded Giveaway
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, GiveawayStatusPending, decoded.Status())
	assert.IsType(t, PendingState{}, decoded.State)
}

func TestGiveaway_JSONRejectsOpenWithoutStart(t *testing.T) {
	var decoded Giveaway
	err := json.Unmarshal([]byte(`{"id":"g","status":"open"}`), &decoded)
	assert.Error(t, err)
}
