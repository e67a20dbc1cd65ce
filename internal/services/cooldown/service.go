package cooldown

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/giveawayd/internal/common/clock"
	giveawayRepo "github.com/KirkDiggler/giveawayd/internal/repositories/giveaway"
)

// Config holds the dependencies of the cooldown policy
type Config struct {
	GiveawayRepo giveawayRepo.Repository
	Clock        clock.Clock

	// CooldownDays is the window after a win during which the same bracket is closed to the user
	CooldownDays int
}

type service struct {
	giveawayRepo giveawayRepo.Repository
	clock        clock.Clock
	cooldownDays int
}

// New creates a new cooldown policy
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.GiveawayRepo == nil {
		return nil, errors.New("giveaway repository cannot be nil")
	}

	if cfg.CooldownDays <= 0 {
		return nil, errors.New("cooldown days must be positive")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}

	return &service{
		giveawayRepo: cfg.GiveawayRepo,
		clock:        clk,
		cooldownDays: cfg.CooldownDays,
	}, nil
}

func (s *service) GetComparableWinning(ctx context.Context, input *GetComparableWinningInput) (*GetComparableWinningOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	win, err := s.giveawayRepo.GetComparableWinning(ctx, &giveawayRepo.GetComparableWinningInput{
		UserID: input.UserID,
		Price:  input.Price,
	})
	if err != nil {
		if errors.Is(err, giveawayRepo.ErrWinNotFound) {
			return &GetComparableWinningOutput{}, nil
		}
		return nil, fmt.Errorf("failed to look up wins for user %s: %w", input.UserID, err)
	}

	now := s.clock.Now()
	window := time.Duration(s.cooldownDays) * 24 * time.Hour
	if now.Sub(win.Ended) >= window {
		return &GetComparableWinningOutput{}, nil
	}

	daysSince := clock.DaysSince(now, win.Ended)

	return &GetComparableWinningOutput{
		Win:           win,
		DaysSinceWin:  daysSince,
		DaysRemaining: max(1, s.cooldownDays-daysSince),
	}, nil
}
