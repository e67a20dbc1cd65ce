package models

import (
	"errors"
	"slices"
	"time"
)

// GiveawayStatus represents where a giveaway is in its lifecycle
type GiveawayStatus string

const (
	// GiveawayStatusPending indicates a giveaway waiting for its start delay to elapse
	GiveawayStatusPending GiveawayStatus = "pending"

	// GiveawayStatusOpen indicates a giveaway accepting entries
	GiveawayStatusOpen GiveawayStatus = "open"

	// GiveawayStatusClosed indicates a giveaway that has been drawn
	GiveawayStatusClosed GiveawayStatus = "closed"

	// GiveawayStatusCancelled indicates a giveaway that ended without a draw
	GiveawayStatusCancelled GiveawayStatus = "cancelled"
)

// IsTerminal reports whether no further transitions are possible
func (s GiveawayStatus) IsTerminal() bool {
	return s == GiveawayStatusClosed || s == GiveawayStatusCancelled
}

// ErrInvalidTransition is returned when a transition would move a giveaway backwards
var ErrInvalidTransition = errors.New("invalid giveaway state transition")

// State is the status-specific part of a giveaway. Each variant carries
// only the fields that are valid in that status.
type State interface {
	Status() GiveawayStatus
}

// PendingState is a giveaway that has not been announced yet
type PendingState struct{}

// Status implements State
func (PendingState) Status() GiveawayStatus { return GiveawayStatusPending }

// OpenState is an announced giveaway collecting entries
type OpenState struct {
	// Started is when the giveaway was announced
	Started time.Time

	// ChannelID is the channel the announcement was posted to
	ChannelID string

	// URLMessageID is the message carrying the game link
	URLMessageID string

	// StartMessageID is the giveaway post users react to
	StartMessageID string

	// Participants are the user IDs currently entered
	Participants []string

	// CooldownUsers are the user IDs already told they are on cooldown
	CooldownUsers []string
}

// Status implements State
func (*OpenState) Status() GiveawayStatus { return GiveawayStatusOpen }

// HasParticipant reports whether the user is entered
func (o *OpenState) HasParticipant(userID string) bool {
	return slices.Contains(o.Participants, userID)
}

// AddParticipant enters a user once; it reports whether the set changed
func (o *OpenState) AddParticipant(userID string) bool {
	if o.HasParticipant(userID) {
		return false
	}
	o.Participants = append(o.Participants, userID)
	return true
}

// HasCooldownUser reports whether the user was already notified of a cooldown
func (o *OpenState) HasCooldownUser(userID string) bool {
	return slices.Contains(o.CooldownUsers, userID)
}

// AddCooldownUser records a cooldown notification; it reports whether the set changed
func (o *OpenState) AddCooldownUser(userID string) bool {
	if o.HasCooldownUser(userID) {
		return false
	}
	o.CooldownUsers = append(o.CooldownUsers, userID)
	return true
}

// ClosedState is a giveaway that has been drawn
type ClosedState struct {
	OpenState

	// Ended is when the draw happened
	Ended time.Time

	// WinnerID is empty when nobody was eligible
	WinnerID string
}

// Status implements State
func (*ClosedState) Status() GiveawayStatus { return GiveawayStatusClosed }

// CancelledState is a giveaway that ended without a draw
type CancelledState struct {
	OpenState

	// Ended is when the giveaway was cancelled
	Ended time.Time

	// Comment records why it was cancelled
	Comment string
}

// Status implements State
func (*CancelledState) Status() GiveawayStatus { return GiveawayStatusCancelled }

// Giveaway represents one scheduled prize draw
type Giveaway struct {
	// ID is the unique identifier for the giveaway
	ID string

	// OwnerID is the user who donated the prize
	OwnerID string

	// GameName is the prize's display name
	GameName string

	// GameURL links to the prize's store page
	GameURL string

	// Price is the bracket key used for cooldowns
	Price string

	// Code is the optional redeemable key handed to the winner
	Code string

	// Created is when the giveaway was registered
	Created time.Time

	// StartMinutes delays the announcement; zero opens on the next tick
	StartMinutes int

	// DurationMinutes is how long entries stay open
	DurationMinutes int

	// LastUpdated is when the public post was last refreshed
	LastUpdated time.Time

	// State holds the status-specific fields
	State State
}

// Status returns the current lifecycle status
func (g *Giveaway) Status() GiveawayStatus {
	if g.State == nil {
		return GiveawayStatusPending
	}
	return g.State.Status()
}

// Open returns the open-phase fields for any announced giveaway
func (g *Giveaway) Open() (*OpenState, bool) {
	switch s := g.State.(type) {
	case *OpenState:
		return s, true
	case *ClosedState:
		return &s.OpenState, true
	case *CancelledState:
		return &s.OpenState, true
	}
	return nil, false
}

// Started returns when the giveaway was announced, if it has been
func (g *Giveaway) Started() (time.Time, bool) {
	open, ok := g.Open()
	if !ok {
		return time.Time{}, false
	}
	return open.Started, true
}

// Ended returns when the giveaway reached a terminal status, if it has
func (g *Giveaway) Ended() (time.Time, bool) {
	switch s := g.State.(type) {
	case *ClosedState:
		return s.Ended, true
	case *CancelledState:
		return s.Ended, true
	}
	return time.Time{}, false
}

// WinnerID returns the winner of a closed giveaway
func (g *Giveaway) WinnerID() (string, bool) {
	s, ok := g.State.(*ClosedState)
	if !ok || s.WinnerID == "" {
		return "", false
	}
	return s.WinnerID, true
}

// MarkOpen moves a pending giveaway to open
func (g *Giveaway) MarkOpen(now time.Time, channelID, urlMessageID, startMessageID string) error {
	if g.Status() != GiveawayStatusPending {
		return ErrInvalidTransition
	}
	g.State = &OpenState{
		Started:        now,
		ChannelID:      channelID,
		URLMessageID:   urlMessageID,
		StartMessageID: startMessageID,
		Participants:   []string{},
		CooldownUsers:  []string{},
	}
	g.LastUpdated = now
	return nil
}

// MarkClosed moves an open giveaway to closed; an empty winnerID means no winner
func (g *Giveaway) MarkClosed(now time.Time, winnerID string) error {
	open, ok := g.State.(*OpenState)
	if !ok {
		return ErrInvalidTransition
	}
	g.State = &ClosedState{
		OpenState: *open,
		Ended:     now,
		WinnerID:  winnerID,
	}
	return nil
}

// MarkCancelled moves an open giveaway to cancelled
func (g *Giveaway) MarkCancelled(now time.Time, comment string) error {
	open, ok := g.State.(*OpenState)
	if !ok {
		return ErrInvalidTransition
	}
	g.State = &CancelledState{
		OpenState: *open,
		Ended:     now,
		Comment:   comment,
	}
	return nil
}
