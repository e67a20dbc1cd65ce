package giveaway

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/giveawayd/internal/services/giveaway Service

import "context"

// Service defines the admin operations on giveaways
type Service interface {
	// CreateGiveaway registers a pending giveaway for the scheduler to announce
	CreateGiveaway(ctx context.Context, input *CreateGiveawayInput) (*CreateGiveawayOutput, error)

	// ListActive returns every pending and open giveaway
	ListActive(ctx context.Context, input *ListActiveInput) (*ListActiveOutput, error)
}
