package channel

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/giveawayd/internal/services/channel Service

import (
	"context"

	"github.com/KirkDiggler/giveawayd/internal/platform"
)

// Service resolves the channel giveaways are posted to
type Service interface {
	// Resolve returns nil without error when no usable channel is configured
	Resolve(ctx context.Context) (*platform.Channel, error)

	// SetChannel verifies and stores the giveaway channel
	SetChannel(ctx context.Context, input *SetChannelInput) (*platform.Channel, error)
}

type SetChannelInput struct {
	ChannelID string
}
