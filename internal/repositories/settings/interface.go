package settings

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/giveawayd/internal/repositories/settings Repository

import "context"

// Repository defines the interface for bot settings persistence
type Repository interface {
	// GetGiveawayChannel retrieves the channel giveaways are posted to
	GetGiveawayChannel(ctx context.Context) (string, error)

	// SetGiveawayChannel stores the channel giveaways are posted to
	SetGiveawayChannel(ctx context.Context, input *SetGiveawayChannelInput) error
}

type SetGiveawayChannelInput struct {
	ChannelID string
}
