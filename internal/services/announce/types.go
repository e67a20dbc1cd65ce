package announce

import "github.com/KirkDiggler/giveawayd/internal/models"

type WriteNewInput struct {
	ChannelID string
	Giveaway  *models.Giveaway
}

type WriteUpdateInput struct {
	ChannelID string
	MessageID string
	Giveaway  *models.Giveaway
}

type WriteWinnerInput struct {
	ChannelID string
	MessageID string
	Giveaway  *models.Giveaway
}
