package giveaway

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/KirkDiggler/giveawayd/internal/common/clock"
	"github.com/KirkDiggler/giveawayd/internal/common/uuid"
	"github.com/KirkDiggler/giveawayd/internal/models"
	giveawayRepo "github.com/KirkDiggler/giveawayd/internal/repositories/giveaway"
)

const maxMinutes = 30 * 24 * 60

// Config holds the dependencies of the giveaway service
type Config struct {
	GiveawayRepo  giveawayRepo.Repository
	Clock         clock.Clock
	UUIDGenerator uuid.Generator
}

type service struct {
	giveawayRepo  giveawayRepo.Repository
	clock         clock.Clock
	uuidGenerator uuid.Generator
}

// New creates a new giveaway service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GiveawayRepo == nil {
		return nil, ErrNilGiveawayRepo
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}

	return &service{
		giveawayRepo:  cfg.GiveawayRepo,
		clock:         clk,
		uuidGenerator: cfg.UUIDGenerator,
	}, nil
}

func (s *service) CreateGiveaway(ctx context.Context, input *CreateGiveawayInput) (*CreateGiveawayOutput, error) {
	if err := validateCreate(input); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	g := &models.Giveaway{
		ID:              s.uuidGenerator.NewID(),
		OwnerID:         input.OwnerID,
		GameName:        strings.TrimSpace(input.GameName),
		GameURL:         strings.TrimSpace(input.GameURL),
		Price:           strings.TrimSpace(input.Price),
		Code:            strings.TrimSpace(input.Code),
		Created:         now,
		StartMinutes:    input.StartMinutes,
		DurationMinutes: input.DurationMinutes,
		LastUpdated:     now,
		State:           models.PendingState{},
	}

	if err := s.giveawayRepo.CreateGiveaway(ctx, &giveawayRepo.CreateGiveawayInput{
		Giveaway: g,
	}); err != nil {
		return nil, fmt.Errorf("failed to create giveaway: %w", err)
	}

	return &CreateGiveawayOutput{
		Giveaway: g,
	}, nil
}

func (s *service) ListActive(ctx context.Context, input *ListActiveInput) (*ListActiveOutput, error) {
	output, err := s.giveawayRepo.GetActiveGiveaways(ctx, &giveawayRepo.GetActiveGiveawaysInput{})
	if err != nil {
		return nil, err
	}

	return &ListActiveOutput{
		Giveaways: output.Giveaways,
	}, nil
}

func validateCreate(input *CreateGiveawayInput) error {
	if input == nil || input.OwnerID == "" {
		return ErrMissingOwner
	}

	if strings.TrimSpace(input.GameName) == "" {
		return ErrMissingGameName
	}

	u, err := url.Parse(strings.TrimSpace(input.GameURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidGameURL
	}

	if strings.TrimSpace(input.Price) == "" {
		return ErrMissingPrice
	}

	if input.DurationMinutes < 1 {
		return ErrInvalidDuration
	}

	if input.DurationMinutes > maxMinutes {
		return ErrDurationTooLong
	}

	if input.StartMinutes < 0 {
		return ErrInvalidStart
	}

	if input.StartMinutes > maxMinutes {
		return ErrStartDelayTooLong
	}

	return nil
}
