package cooldown

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/giveawayd/internal/services/cooldown Service

import "context"

// Service decides whether a user may enter a giveaway in a price bracket
type Service interface {
	// GetComparableWinning returns the user's most recent win in the bracket
	// when it is still inside the cooldown window
	GetComparableWinning(ctx context.Context, input *GetComparableWinningInput) (*GetComparableWinningOutput, error)
}
