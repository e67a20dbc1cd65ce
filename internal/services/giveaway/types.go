package giveaway

import "github.com/KirkDiggler/giveawayd/internal/models"

// CreateGiveawayInput describes a donated prize
type CreateGiveawayInput struct {
	OwnerID  string
	GameName string
	GameURL  string

	// Price is the bracket key used for cooldowns
	Price string

	// Code is handed to the winner when set
	Code string

	// StartMinutes delays the announcement
	StartMinutes int

	DurationMinutes int
}

type CreateGiveawayOutput struct {
	Giveaway *models.Giveaway
}

type ListActiveInput struct {
}

type ListActiveOutput struct {
	Giveaways []*models.Giveaway
}
