package channel

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/giveawayd/internal/platform"
	settingsRepo "github.com/KirkDiggler/giveawayd/internal/repositories/settings"
)

// ErrUnknownChannel is returned when setting a channel the bot cannot see
var ErrUnknownChannel = errors.New("channel does not exist or is not visible to the bot")

// Config holds the dependencies of the channel provider
type Config struct {
	SettingsRepo settingsRepo.Repository
	Client       platform.Client

	// DefaultChannelID is used when no channel has been stored
	DefaultChannelID string
}

type service struct {
	settingsRepo     settingsRepo.Repository
	client           platform.Client
	defaultChannelID string
}

// New creates a new channel provider
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.SettingsRepo == nil {
		return nil, errors.New("settings repository cannot be nil")
	}

	if cfg.Client == nil {
		return nil, errors.New("platform client cannot be nil")
	}

	return &service{
		settingsRepo:     cfg.SettingsRepo,
		client:           cfg.Client,
		defaultChannelID: cfg.DefaultChannelID,
	}, nil
}

func (s *service) Resolve(ctx context.Context) (*platform.Channel, error) {
	channelID, err := s.settingsRepo.GetGiveawayChannel(ctx)
	if err != nil {
		if !errors.Is(err, settingsRepo.ErrSettingNotFound) {
			return nil, fmt.Errorf("failed to read giveaway channel: %w", err)
		}
		channelID = s.defaultChannelID
	}

	if channelID == "" {
		return nil, nil
	}

	ch, err := s.client.FetchChannel(ctx, channelID)
	if err != nil {
		if errors.Is(err, platform.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return ch, nil
}

func (s *service) SetChannel(ctx context.Context, input *SetChannelInput) (*platform.Channel, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	ch, err := s.client.FetchChannel(ctx, input.ChannelID)
	if err != nil {
		if errors.Is(err, platform.ErrNotFound) {
			return nil, ErrUnknownChannel
		}
		return nil, err
	}

	if err := s.settingsRepo.SetGiveawayChannel(ctx, &settingsRepo.SetGiveawayChannelInput{
		ChannelID: ch.ID,
	}); err != nil {
		return nil, err
	}

	return ch, nil
}
