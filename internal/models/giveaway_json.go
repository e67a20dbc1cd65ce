package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// giveawayRecord is the flat persisted shape of a Giveaway
type giveawayRecord struct {
	ID              string         `json:"id"`
	OwnerID         string         `json:"owner_id"`
	GameName        string         `json:"game_name"`
	GameURL         string         `json:"game_url"`
	Price           string         `json:"price"`
	Code            string         `json:"code,omitempty"`
	Created         time.Time      `json:"created"`
	StartMinutes    int            `json:"start_minutes,omitempty"`
	DurationMinutes int            `json:"duration_minutes"`
	LastUpdated     time.Time      `json:"last_updated"`
	Status          GiveawayStatus `json:"status"`

	Started        *time.Time `json:"started,omitempty"`
	ChannelID      string     `json:"channel_id,omitempty"`
	URLMessageID   string     `json:"url_message_id,omitempty"`
	StartMessageID string     `json:"start_message_id,omitempty"`
	Participants   []string   `json:"participants,omitempty"`
	CooldownUsers  []string   `json:"cooldown_users,omitempty"`
	Ended          *time.Time `json:"ended,omitempty"`
	WinnerID       string     `json:"winner_id,omitempty"`
	Comment        string     `json:"comment,omitempty"`
}

// MarshalJSON flattens the tagged state behind a status discriminator
func (g Giveaway) MarshalJSON() ([]byte, error) {
	rec := giveawayRecord{
		ID:              g.ID,
		OwnerID:         g.OwnerID,
		GameName:        g.GameName,
		GameURL:         g.GameURL,
		Price:           g.Price,
		Code:            g.Code,
		Created:         g.Created,
		StartMinutes:    g.StartMinutes,
		DurationMinutes: g.DurationMinutes,
		LastUpdated:     g.LastUpdated,
		Status:          g.Status(),
	}

	if open, ok := g.Open(); ok {
		started := open.Started
		rec.Started = &started
		rec.ChannelID = open.ChannelID
		rec.URLMessageID = open.URLMessageID
		rec.StartMessageID = open.StartMessageID
		rec.Participants = open.Participants
		rec.CooldownUsers = open.CooldownUsers
	}

	switch s := g.State.(type) {
	case *ClosedState:
		ended := s.Ended
		rec.Ended = &ended
		rec.WinnerID = s.WinnerID
	case *CancelledState:
		ended := s.Ended
		rec.Ended = &ended
		rec.Comment = s.Comment
	}

	return json.Marshal(rec)
}

// UnmarshalJSON rebuilds the tagged state from its status discriminator
func (g *Giveaway) UnmarshalJSON(data []byte) error {
	var rec giveawayRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}

	*g = Giveaway{
		ID:              rec.ID,
		OwnerID:         rec.OwnerID,
		GameName:        rec.GameName,
		GameURL:         rec.GameURL,
		Price:           rec.Price,
		Code:            rec.Code,
		Created:         rec.Created,
		StartMinutes:    rec.StartMinutes,
		DurationMinutes: rec.DurationMinutes,
		LastUpdated:     rec.LastUpdated,
	}

	if rec.Status == "" || rec.Status == GiveawayStatusPending {
		g.State = PendingState{}
		return nil
	}

	if rec.Started == nil {
		return fmt.Errorf("giveaway %s is %s but has no start time", rec.ID, rec.Status)
	}
	open := OpenState{
		Started:        *rec.Started,
		ChannelID:      rec.ChannelID,
		URLMessageID:   rec.URLMessageID,
		StartMessageID: rec.StartMessageID,
		Participants:   rec.Participants,
		CooldownUsers:  rec.CooldownUsers,
	}
	if open.Participants == nil {
		open.Participants = []string{}
	}
	if open.CooldownUsers == nil {
		open.CooldownUsers = []string{}
	}

	var ended time.Time
	if rec.Ended != nil {
		ended = *rec.Ended
	}

	switch rec.Status {
	case GiveawayStatusOpen:
		g.State = &open
	case GiveawayStatusClosed:
		g.State = &ClosedState{OpenState: open, Ended: ended, WinnerID: rec.WinnerID}
	case GiveawayStatusCancelled:
		g.State = &CancelledState{OpenState: open, Ended: ended, Comment: rec.Comment}
	default:
		return fmt.Errorf("giveaway %s has unknown status %q", rec.ID, rec.Status)
	}

	return nil
}
