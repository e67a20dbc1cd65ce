package giveaway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/KirkDiggler/giveawayd/internal/common/clock"
	"github.com/KirkDiggler/giveawayd/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	giveawayKeyPrefix = "giveaway:"
	winKeyPrefix      = "win:"
	userWinsKeyPrefix = "wins:"
	activeKey         = "giveaways:active"
	endedKey          = "giveaways:ended"

	defaultRetention = 7 * 24 * time.Hour
)

// Config holds configuration for the Redis giveaway repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Retention is how long terminal giveaways are kept before Clean purges them
	Retention time.Duration

	// Clock defaults to the system clock
	Clock clock.Clock
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client    *redis.Client
	retention time.Duration
	clock     clock.Clock
}

// NewRedis creates a new Redis-backed giveaway repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	retention := cfg.Retention
	if retention <= 0 {
		retention = defaultRetention
	}

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}

	return &redisRepository{
		client:    cfg.RedisClient,
		retention: retention,
		clock:     clk,
	}, nil
}

func giveawayKey(id string) string {
	return giveawayKeyPrefix + id
}

func winKey(giveawayID string) string {
	return winKeyPrefix + giveawayID
}

func userWinsKey(userID, price string) string {
	return fmt.Sprintf("%s%s:%s", userWinsKeyPrefix, userID, price)
}

// CreateGiveaway stores a new giveaway without overwriting an existing one
func (r *redisRepository) CreateGiveaway(ctx context.Context, input *CreateGiveawayInput) error {
	if input == nil || input.Giveaway == nil {
		return errors.New("input and giveaway cannot be nil")
	}

	g := input.Giveaway
	if g.ID == "" {
		return errors.New("giveaway ID cannot be empty")
	}

	if g.Status() != models.GiveawayStatusPending {
		return fmt.Errorf("new giveaway must be pending, got %s", g.Status())
	}

	giveawayJSON, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("failed to marshal giveaway: %w", err)
	}

	created, err := r.client.SetNX(ctx, giveawayKey(g.ID), giveawayJSON, 0).Result()
	if err != nil {
		return &PersistenceError{Op: "create", GiveawayID: g.ID, Err: err}
	}
	if !created {
		return ErrGiveawayExists
	}

	if err := r.client.SAdd(ctx, activeKey, g.ID).Err(); err != nil {
		return &PersistenceError{Op: "create", GiveawayID: g.ID, Err: err}
	}

	return nil
}

// SaveGiveaway persists a giveaway and keeps the status indexes in step.
// Closing a giveaway with a winner also records the win.
func (r *redisRepository) SaveGiveaway(ctx context.Context, input *SaveGiveawayInput) error {
	if input == nil || input.Giveaway == nil {
		return errors.New("input and giveaway cannot be nil")
	}

	g := input.Giveaway
	if g.ID == "" {
		return errors.New("giveaway ID cannot be empty")
	}

	giveawayJSON, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("failed to marshal giveaway: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, giveawayKey(g.ID), giveawayJSON, 0)

	if ended, ok := g.Ended(); ok {
		pipe.SRem(ctx, activeKey, g.ID)
		pipe.ZAdd(ctx, endedKey, redis.Z{
			Score:  float64(ended.Unix()),
			Member: g.ID,
		})
	} else {
		pipe.SAdd(ctx, activeKey, g.ID)
	}

	if winnerID, ok := g.WinnerID(); ok {
		ended, _ := g.Ended()
		win := &models.Win{
			GiveawayID: g.ID,
			UserID:     winnerID,
			Price:      g.Price,
			Ended:      ended,
		}
		winJSON, err := json.Marshal(win)
		if err != nil {
			return fmt.Errorf("failed to marshal win: %w", err)
		}
		pipe.Set(ctx, winKey(g.ID), winJSON, 0)
		pipe.ZAdd(ctx, userWinsKey(winnerID, g.Price), redis.Z{
			Score:  float64(ended.Unix()),
			Member: g.ID,
		})
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return &PersistenceError{Op: "save", GiveawayID: g.ID, Err: err}
	}

	return nil
}

// GetGiveaway retrieves a giveaway by ID from Redis
func (r *redisRepository) GetGiveaway(ctx context.Context, input *GetGiveawayInput) (*models.Giveaway, error) {
	if input == nil || input.GiveawayID == "" {
		return nil, errors.New("input and giveaway ID cannot be empty")
	}

	giveawayJSON, err := r.client.Get(ctx, giveawayKey(input.GiveawayID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrGiveawayNotFound
		}
		return nil, &PersistenceError{Op: "get", GiveawayID: input.GiveawayID, Err: err}
	}

	var g models.Giveaway
	if err := json.Unmarshal([]byte(giveawayJSON), &g); err != nil {
		return nil, fmt.Errorf("failed to unmarshal giveaway %s: %w", input.GiveawayID, err)
	}

	return &g, nil
}

// GetActiveGiveaways retrieves all pending and open giveaways, oldest first
func (r *redisRepository) GetActiveGiveaways(ctx context.Context, input *GetActiveGiveawaysInput) (*GetActiveGiveawaysOutput, error) {
	ids, err := r.client.SMembers(ctx, activeKey).Result()
	if err != nil {
		return nil, &PersistenceError{Op: "list active giveaways", Err: err}
	}

	if len(ids) == 0 {
		return &GetActiveGiveawaysOutput{
			Giveaways: []*models.Giveaway{},
		}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make(map[string]*redis.StringCmd, len(ids))
	for _, id := range ids {
		cmds[id] = pipe.Get(ctx, giveawayKey(id))
	}

	// redis.Nil for a single key surfaces here too; it is handled per command below
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, &PersistenceError{Op: "list active giveaways", Err: err}
	}

	giveaways := make([]*models.Giveaway, 0, len(ids))
	for id, cmd := range cmds {
		giveawayJSON, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// Giveaway was deleted between reading the index and fetching it
				continue
			}
			return nil, &PersistenceError{Op: "get", GiveawayID: id, Err: err}
		}

		var g models.Giveaway
		if err := json.Unmarshal([]byte(giveawayJSON), &g); err != nil {
			return nil, fmt.Errorf("failed to unmarshal giveaway %s: %w", id, err)
		}

		giveaways = append(giveaways, &g)
	}

	sort.Slice(giveaways, func(i, j int) bool {
		if giveaways[i].Created.Equal(giveaways[j].Created) {
			return giveaways[i].ID < giveaways[j].ID
		}
		return giveaways[i].Created.Before(giveaways[j].Created)
	})

	return &GetActiveGiveawaysOutput{
		Giveaways: giveaways,
	}, nil
}

// GetComparableWinning retrieves the user's most recent win in the same price bracket
func (r *redisRepository) GetComparableWinning(ctx context.Context, input *GetComparableWinningInput) (*models.Win, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	ids, err := r.client.ZRevRange(ctx, userWinsKey(input.UserID, input.Price), 0, 0).Result()
	if err != nil {
		return nil, &PersistenceError{Op: "get wins", Err: err}
	}
	if len(ids) == 0 {
		return nil, ErrWinNotFound
	}

	winJSON, err := r.client.Get(ctx, winKey(ids[0])).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrWinNotFound
		}
		return nil, &PersistenceError{Op: "get win", GiveawayID: ids[0], Err: err}
	}

	var win models.Win
	if err := json.Unmarshal([]byte(winJSON), &win); err != nil {
		return nil, fmt.Errorf("failed to unmarshal win %s: %w", ids[0], err)
	}

	return &win, nil
}

// Clean purges terminal giveaways that ended before the retention window.
// Win records are kept so cooldowns outlive the giveaways that produced them.
func (r *redisRepository) Clean(ctx context.Context, input *CleanInput) (*CleanOutput, error) {
	cutoff := r.clock.Now().Add(-r.retention)

	ids, err := r.client.ZRangeByScore(ctx, endedKey, &redis.ZRangeBy{
		Min: "-inf",
		Max: "(" + strconv.FormatInt(cutoff.Unix(), 10),
	}).Result()
	if err != nil {
		return nil, &PersistenceError{Op: "list ended giveaways", Err: err}
	}

	if len(ids) == 0 {
		return &CleanOutput{}, nil
	}

	keys := make([]string, 0, len(ids))
	members := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, giveawayKey(id))
		members = append(members, id)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, keys...)
	pipe.ZRem(ctx, endedKey, members...)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, &PersistenceError{Op: "clean", Err: err}
	}

	return &CleanOutput{
		Deleted: len(ids),
	}, nil
}
