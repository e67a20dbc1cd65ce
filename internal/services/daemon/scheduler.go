package daemon

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/KirkDiggler/giveawayd/internal/common/clock"
	"github.com/KirkDiggler/giveawayd/internal/common/logger"
	"github.com/KirkDiggler/giveawayd/internal/draw"
	"github.com/KirkDiggler/giveawayd/internal/models"
	"github.com/KirkDiggler/giveawayd/internal/platform"
	giveawayRepo "github.com/KirkDiggler/giveawayd/internal/repositories/giveaway"
	"github.com/KirkDiggler/giveawayd/internal/services/announce"
	"github.com/KirkDiggler/giveawayd/internal/services/channel"
	"github.com/KirkDiggler/giveawayd/internal/services/cooldown"
	"github.com/KirkDiggler/giveawayd/internal/services/status"
	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc/panics"
)

// Result is the outcome of one tick
type Result string

const (
	// ResultFinished means every active giveaway was processed
	ResultFinished Result = "DAEMON_FINISHED"

	// ResultChannelNotSet means no giveaway channel could be resolved and nothing was processed
	ResultChannelNotSet Result = "CHANNEL_NOT_SET"

	// ResultBusy means a previous tick was still running
	ResultBusy Result = "DAEMON_BUSY"

	// ResultFailed means the tick was aborted by an error
	ResultFailed Result = "DAEMON_FAILED"
)

const (
	cancelledComment = "message not found"

	channelNotSetText     = "No giveaway channel is configured, or the configured channel no longer exists. Use /giveaway channel to set one."
	messagePermissionText = "The bot cannot remove reactions in the giveaway channel. Grant it the Manage Messages permission."

	defaultTickInterval = 30 * time.Second
)

// Config holds the dependencies of the scheduler
type Config struct {
	GiveawayRepo giveawayRepo.Repository
	Cooldown     cooldown.Service
	Picker       draw.Picker
	Announcer    announce.Service
	Channels     channel.Service
	Client       platform.Client
	Status       *status.Registry
	Clock        clock.Clock

	// EntryEmoji is the reaction users add to enter
	EntryEmoji string

	// TickInterval is how often Start fires a tick
	TickInterval time.Duration

	// Logger defaults to the global logger tagged with the daemon component
	Logger *zerolog.Logger
}

// Scheduler advances every active giveaway through its lifecycle, one tick at a time
type Scheduler struct {
	giveawayRepo giveawayRepo.Repository
	cooldown     cooldown.Service
	picker       draw.Picker
	announcer    announce.Service
	channels     channel.Service
	client       platform.Client
	status       *status.Registry
	clock        clock.Clock
	entryEmoji   string
	interval     time.Duration
	log          zerolog.Logger

	busy atomic.Bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a new scheduler
func New(cfg *Config) (*Scheduler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	switch {
	case cfg.GiveawayRepo == nil:
		return nil, errors.New("giveaway repository cannot be nil")
	case cfg.Cooldown == nil:
		return nil, errors.New("cooldown service cannot be nil")
	case cfg.Picker == nil:
		return nil, errors.New("winner picker cannot be nil")
	case cfg.Announcer == nil:
		return nil, errors.New("announcer cannot be nil")
	case cfg.Channels == nil:
		return nil, errors.New("channel provider cannot be nil")
	case cfg.Client == nil:
		return nil, errors.New("platform client cannot be nil")
	case cfg.Status == nil:
		return nil, errors.New("status registry cannot be nil")
	case cfg.EntryEmoji == "":
		return nil, errors.New("entry emoji cannot be empty")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}

	interval := cfg.TickInterval
	if interval <= 0 {
		interval = defaultTickInterval
	}

	log := logger.Component("daemon")
	if cfg.Logger != nil {
		log = *cfg.Logger
	}

	return &Scheduler{
		giveawayRepo: cfg.GiveawayRepo,
		cooldown:     cfg.Cooldown,
		picker:       cfg.Picker,
		announcer:    cfg.Announcer,
		channels:     cfg.Channels,
		client:       cfg.Client,
		status:       cfg.Status,
		clock:        clk,
		entryEmoji:   cfg.EntryEmoji,
		interval:     interval,
		log:          log,
	}, nil
}

// Start fires a tick immediately and then on every interval until Stop is called
func (s *Scheduler) Start() {
	s.ctx, s.cancel = context.WithCancel(context.Background())

	s.log.Info().Dur("interval", s.interval).Msg("starting giveaway scheduler")

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.fire()
		for {
			select {
			case <-ticker.C:
				s.fire()
			case <-s.ctx.Done():
				return
			}
		}
	}()
}

// Stop halts the trigger and waits for an in-flight tick to finish
func (s *Scheduler) Stop() {
	if s.cancel == nil {
		return
	}

	s.log.Info().Msg("stopping giveaway scheduler")
	s.cancel()
	s.wg.Wait()
	s.log.Info().Msg("giveaway scheduler stopped")
}

// fire runs a tick without blocking the trigger, so a slow tick makes the
// next one observe the busy guard
func (s *Scheduler) fire() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		// ticks are never cancelled midway
		ctx := context.WithoutCancel(s.ctx)
		if _, err := s.Tick(ctx); err != nil {
			s.log.Error().Err(err).Msg("giveaway tick aborted")
		}
	}()
}

// Tick processes every active giveaway once. A tick started while another
// is running returns ResultBusy without touching the store.
func (s *Scheduler) Tick(ctx context.Context) (result Result, err error) {
	if !s.busy.CompareAndSwap(false, true) {
		s.log.Debug().Msg("previous tick still running, skipping")
		return ResultBusy, nil
	}
	defer s.busy.Store(false)

	recovered := panics.Try(func() {
		result, err = s.tick(ctx)
	})
	if recovered != nil {
		err = fmt.Errorf("tick panicked: %w", recovered.AsError())
	}

	if err != nil {
		return ResultFailed, err
	}
	return result, nil
}

type tickStats struct {
	active    int
	opened    int
	cancelled int
	closed    int
	entered   int
	rejected  int
	cleaned   int
}

func (s *Scheduler) tick(ctx context.Context) (Result, error) {
	ch, err := s.channels.Resolve(ctx)
	if err != nil {
		return ResultFailed, fmt.Errorf("failed to resolve giveaway channel: %w", err)
	}
	if ch == nil {
		s.status.Add(status.KeyChannelNotSet, channelNotSetText)
		s.log.Warn().Msg("giveaway channel not set, skipping tick")
		return ResultChannelNotSet, nil
	}
	s.status.Remove(status.KeyChannelNotSet)

	active, err := s.giveawayRepo.GetActiveGiveaways(ctx, &giveawayRepo.GetActiveGiveawaysInput{})
	if err != nil {
		return ResultFailed, fmt.Errorf("failed to load active giveaways: %w", err)
	}

	stats := &tickStats{active: len(active.Giveaways)}
	for _, g := range active.Giveaways {
		if err := s.process(ctx, ch, g, stats); err != nil {
			return ResultFailed, fmt.Errorf("failed to process giveaway %s: %w", g.ID, err)
		}
	}

	cleaned, err := s.giveawayRepo.Clean(ctx, &giveawayRepo.CleanInput{})
	if err != nil {
		return ResultFailed, fmt.Errorf("failed to clean giveaways: %w", err)
	}
	stats.cleaned = cleaned.Deleted

	event := s.log.Debug()
	if stats.opened+stats.cancelled+stats.closed+stats.entered+stats.cleaned > 0 {
		event = s.log.Info()
	}
	event.
		Int("active", stats.active).
		Int("opened", stats.opened).
		Int("cancelled", stats.cancelled).
		Int("closed", stats.closed).
		Int("entered", stats.entered).
		Int("rejected", stats.rejected).
		Int("cleaned", stats.cleaned).
		Msg("tick finished")

	return ResultFinished, nil
}

func (s *Scheduler) process(ctx context.Context, ch *platform.Channel, g *models.Giveaway, stats *tickStats) error {
	now := s.clock.Now()

	if g.Status() == models.GiveawayStatusPending {
		if g.StartMinutes > 0 && clock.MinutesSince(now, g.Created) < g.StartMinutes {
			return nil
		}
		stats.opened++
		return s.open(ctx, ch, g, now)
	}

	open, ok := g.State.(*models.OpenState)
	if !ok {
		return nil
	}

	if _, err := s.client.FetchMessage(ctx, open.ChannelID, open.StartMessageID); err != nil {
		if errors.Is(err, platform.ErrNotFound) {
			stats.cancelled++
			return s.cancelMissing(ctx, g, open, now)
		}
		return fmt.Errorf("failed to fetch giveaway post: %w", err)
	}

	if err := s.ingest(ctx, g, open, stats); err != nil {
		return err
	}

	if clock.MinutesSince(now, open.Started) >= g.DurationMinutes {
		stats.closed++
		return s.close(ctx, g, open, now)
	}

	if clock.MinutesSince(now, g.LastUpdated) >= 1 {
		return s.heartbeat(ctx, g, open, now)
	}

	return nil
}

func (s *Scheduler) open(ctx context.Context, ch *platform.Channel, g *models.Giveaway, now time.Time) error {
	urlMsg, err := s.client.SendMessage(ctx, ch.ID, announce.URLMessage(g))
	if err != nil {
		return fmt.Errorf("failed to post giveaway link: %w", err)
	}

	startMsg, err := s.announcer.WriteNew(ctx, &announce.WriteNewInput{
		ChannelID: ch.ID,
		Giveaway:  g,
	})
	if err != nil {
		return err
	}

	if err := g.MarkOpen(now, ch.ID, urlMsg.ID, startMsg.ID); err != nil {
		return err
	}

	if err := s.client.AddReaction(ctx, ch.ID, startMsg.ID, s.entryEmoji); err != nil {
		return fmt.Errorf("failed to add entry reaction: %w", err)
	}

	if err := s.save(ctx, g); err != nil {
		return err
	}

	s.log.Info().
		Str("giveaway_id", g.ID).
		Str("channel_id", ch.ID).
		Str("game", g.GameName).
		Msg("giveaway opened")

	return nil
}

func (s *Scheduler) cancelMissing(ctx context.Context, g *models.Giveaway, open *models.OpenState, now time.Time) error {
	channelID, urlMessageID := open.ChannelID, open.URLMessageID

	if err := g.MarkCancelled(now, cancelledComment); err != nil {
		return err
	}

	if err := s.save(ctx, g); err != nil {
		return err
	}

	s.log.Info().
		Str("giveaway_id", g.ID).
		Str("status", string(g.Status())).
		Msg("giveaway post was deleted, giveaway cancelled")

	if urlMessageID != "" {
		if err := s.client.DeleteMessage(ctx, channelID, urlMessageID); err != nil && !errors.Is(err, platform.ErrNotFound) {
			s.log.Warn().Err(err).Str("giveaway_id", g.ID).Msg("failed to delete giveaway link")
		}
	}

	return nil
}

// ingest adds newly reacting users to the participants. Reaction snapshots
// may be partial, so users are only ever added.
func (s *Scheduler) ingest(ctx context.Context, g *models.Giveaway, open *models.OpenState, stats *tickStats) error {
	users, err := s.client.ReactionUsers(ctx, open.ChannelID, open.StartMessageID, s.entryEmoji)
	if err != nil {
		return fmt.Errorf("failed to read entries: %w", err)
	}

	selfID := s.client.SelfID()
	var canManage *bool

	for _, u := range users {
		if u.ID == "" || u.ID == selfID {
			continue
		}

		if open.HasParticipant(u.ID) {
			continue
		}

		cd, err := s.cooldown.GetComparableWinning(ctx, &cooldown.GetComparableWinningInput{
			UserID: u.ID,
			Price:  g.Price,
		})
		if err != nil {
			return err
		}

		if cd.Win == nil {
			open.AddParticipant(u.ID)
			stats.entered++
			continue
		}

		stats.rejected++
		if canManage == nil {
			allowed, err := s.client.CanManageMessages(ctx, open.ChannelID)
			if err != nil {
				s.log.Warn().Err(err).Str("channel_id", open.ChannelID).Msg("failed to check message permissions")
			}
			canManage = &allowed
		}
		s.reject(ctx, g, open, u, cd, *canManage)
	}

	return s.save(ctx, g)
}

func (s *Scheduler) reject(ctx context.Context, g *models.Giveaway, open *models.OpenState, u *platform.User, cd *cooldown.GetComparableWinningOutput, canManage bool) {
	log := s.log.With().Str("giveaway_id", g.ID).Str("user_id", u.ID).Logger()

	if !canManage {
		s.status.Add(status.KeyMessagePermission, messagePermissionText)
	} else if err := s.client.RemoveReaction(ctx, open.ChannelID, open.StartMessageID, s.entryEmoji, u.ID); err != nil {
		log.Warn().Err(err).Msg("failed to remove cooldown entry")
		s.status.Add(status.KeyMessagePermission, messagePermissionText)
	} else {
		s.status.Remove(status.KeyMessagePermission)
	}

	if !open.AddCooldownUser(u.ID) {
		return
	}

	notice := announce.CooldownNotice(g, cd.DaysSinceWin, cd.DaysRemaining)
	if err := s.client.SendDirectMessage(ctx, u.ID, notice); err != nil {
		log.Warn().Err(err).Msg("failed to send cooldown notice")
		return
	}

	log.Debug().Int("days_remaining", cd.DaysRemaining).Msg("cooldown notice sent")
}

func (s *Scheduler) close(ctx context.Context, g *models.Giveaway, open *models.OpenState, now time.Time) error {
	channelID, startMessageID := open.ChannelID, open.StartMessageID

	winnerID, _ := s.picker.Pick(open.Participants)
	if err := g.MarkClosed(now, winnerID); err != nil {
		return err
	}

	if err := s.save(ctx, g); err != nil {
		return err
	}

	log := s.log.With().Str("giveaway_id", g.ID).Str("winner_id", winnerID).Logger()
	log.Info().Int("participants", len(open.Participants)).Msg("giveaway closed")

	if err := s.announcer.WriteWinner(ctx, &announce.WriteWinnerInput{
		ChannelID: channelID,
		MessageID: startMessageID,
		Giveaway:  g,
	}); err != nil {
		log.Warn().Err(err).Msg("failed to write giveaway result")
	}

	if winnerID == "" {
		s.notifyOwner(ctx, g, announce.OwnerNoWinnerNotice(g))
		return nil
	}

	winner, err := s.client.FetchUser(ctx, winnerID)
	if err != nil {
		log.Warn().Err(err).Msg("winner could not be resolved")
		s.notifyOwner(ctx, g, announce.OwnerLostWinnerNotice(g, winnerID))
		return nil
	}

	if _, err := s.client.SendMessage(ctx, channelID, announce.Congratulation(g, winner.ID)); err != nil {
		log.Warn().Err(err).Msg("failed to congratulate winner")
	}

	if err := s.client.SendDirectMessage(ctx, winner.ID, announce.WinnerDirectMessage(g)); err != nil {
		log.Warn().Err(err).Msg("failed to message winner")
	}

	s.notifyOwner(ctx, g, announce.OwnerWinnerNotice(g, winner.Username))
	return nil
}

func (s *Scheduler) heartbeat(ctx context.Context, g *models.Giveaway, open *models.OpenState, now time.Time) error {
	if err := s.announcer.WriteUpdate(ctx, &announce.WriteUpdateInput{
		ChannelID: open.ChannelID,
		MessageID: open.StartMessageID,
		Giveaway:  g,
	}); err != nil {
		return err
	}

	g.LastUpdated = now
	return s.save(ctx, g)
}

func (s *Scheduler) notifyOwner(ctx context.Context, g *models.Giveaway, text string) {
	if err := s.client.SendDirectMessage(ctx, g.OwnerID, text); err != nil {
		s.log.Warn().Err(err).Str("giveaway_id", g.ID).Str("owner_id", g.OwnerID).Msg("failed to notify giveaway owner")
	}
}

func (s *Scheduler) save(ctx context.Context, g *models.Giveaway) error {
	return s.giveawayRepo.SaveGiveaway(ctx, &giveawayRepo.SaveGiveawayInput{
		Giveaway: g,
	})
}
