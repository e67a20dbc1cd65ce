package giveaway

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/giveawayd/internal/repositories/giveaway Repository

import (
	"context"

	"github.com/KirkDiggler/giveawayd/internal/models"
)

// Repository defines the interface for giveaway persistence
type Repository interface {
	// CreateGiveaway stores a new pending giveaway
	CreateGiveaway(ctx context.Context, input *CreateGiveawayInput) error

	// SaveGiveaway persists the full state of a giveaway
	SaveGiveaway(ctx context.Context, input *SaveGiveawayInput) error

	// GetGiveaway retrieves a giveaway by ID
	GetGiveaway(ctx context.Context, input *GetGiveawayInput) (*models.Giveaway, error)

	// GetActiveGiveaways retrieves every pending or open giveaway
	GetActiveGiveaways(ctx context.Context, input *GetActiveGiveawaysInput) (*GetActiveGiveawaysOutput, error)

	// GetComparableWinning retrieves a user's most recent win in a price bracket
	GetComparableWinning(ctx context.Context, input *GetComparableWinningInput) (*models.Win, error)

	// Clean purges terminal giveaways older than the retention window
	Clean(ctx context.Context, input *CleanInput) (*CleanOutput, error)
}
