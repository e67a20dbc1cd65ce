package announce

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/giveawayd/internal/common/clock"
	"github.com/KirkDiggler/giveawayd/internal/platform"
)

// Config holds the dependencies of the announcement writer
type Config struct {
	Client platform.Client
	Clock  clock.Clock

	// EntryEmoji is the reaction users add to enter
	EntryEmoji string
}

type service struct {
	client     platform.Client
	clock      clock.Clock
	entryEmoji string
}

// New creates a new announcement writer
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Client == nil {
		return nil, errors.New("platform client cannot be nil")
	}

	if cfg.EntryEmoji == "" {
		return nil, errors.New("entry emoji cannot be empty")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}

	return &service{
		client:     cfg.Client,
		clock:      clk,
		entryEmoji: cfg.EntryEmoji,
	}, nil
}

func (s *service) WriteNew(ctx context.Context, input *WriteNewInput) (*platform.Message, error) {
	if input == nil || input.Giveaway == nil {
		return nil, errors.New("input and giveaway cannot be nil")
	}

	msg, err := s.client.SendEmbed(ctx, input.ChannelID, openEmbed(input.Giveaway, s.entryEmoji, s.clock.Now()))
	if err != nil {
		return nil, fmt.Errorf("failed to post giveaway %s: %w", input.Giveaway.ID, err)
	}

	return msg, nil
}

func (s *service) WriteUpdate(ctx context.Context, input *WriteUpdateInput) error {
	if input == nil || input.Giveaway == nil {
		return errors.New("input and giveaway cannot be nil")
	}

	embed := openEmbed(input.Giveaway, s.entryEmoji, s.clock.Now())
	if err := s.client.EditEmbed(ctx, input.ChannelID, input.MessageID, embed); err != nil {
		return fmt.Errorf("failed to update giveaway %s: %w", input.Giveaway.ID, err)
	}

	return nil
}

func (s *service) WriteWinner(ctx context.Context, input *WriteWinnerInput) error {
	if input == nil || input.Giveaway == nil {
		return errors.New("input and giveaway cannot be nil")
	}

	if err := s.client.EditEmbed(ctx, input.ChannelID, input.MessageID, resultEmbed(input.Giveaway)); err != nil {
		return fmt.Errorf("failed to write result of giveaway %s: %w", input.Giveaway.ID, err)
	}

	return nil
}
