package announce

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/giveawayd/internal/services/announce Service

import (
	"context"

	"github.com/KirkDiggler/giveawayd/internal/platform"
)

// Service writes the public giveaway post
type Service interface {
	// WriteNew posts the initial giveaway embed
	WriteNew(ctx context.Context, input *WriteNewInput) (*platform.Message, error)

	// WriteUpdate refreshes the live status of an open giveaway
	WriteUpdate(ctx context.Context, input *WriteUpdateInput) error

	// WriteWinner replaces the post with the final result
	WriteWinner(ctx context.Context, input *WriteWinnerInput) error
}
