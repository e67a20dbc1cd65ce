package giveaway

import "github.com/KirkDiggler/giveawayd/internal/models"

type CreateGiveawayInput struct {
	Giveaway *models.Giveaway
}

type SaveGiveawayInput struct {
	Giveaway *models.Giveaway
}

type GetGiveawayInput struct {
	GiveawayID string
}

type GetActiveGiveawaysInput struct {
}

type GetActiveGiveawaysOutput struct {
	Giveaways []*models.Giveaway
}

type GetComparableWinningInput struct {
	UserID string
	Price  string
}

type CleanInput struct {
}

type CleanOutput struct {
	// Deleted is the number of giveaways purged
	Deleted int
}
