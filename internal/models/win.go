package models

import (
	"time"
)

// Win records that a user won a giveaway in a price bracket
type Win struct {
	// GiveawayID is the giveaway that was won
	GiveawayID string `json:"giveaway_id"`

	// UserID is the winner
	UserID string `json:"user_id"`

	// Price is the bracket the prize belonged to
	Price string `json:"price"`

	// Ended is when the giveaway was drawn
	Ended time.Time `json:"ended"`
}
