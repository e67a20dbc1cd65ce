package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	settingKeyPrefix = "setting:"

	giveawayChannelSetting = "giveaway_channel"
)

// ErrSettingNotFound is returned when a setting has never been stored
var ErrSettingNotFound = errors.New("setting not found")

// Config holds configuration for the Redis settings repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed settings repository
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

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func (r *redisRepository) GetGiveawayChannel(ctx context.Context) (string, error) {
	channelID, err := r.client.Get(ctx, settingKeyPrefix+giveawayChannelSetting).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrSettingNotFound
		}
		return "", fmt.Errorf("failed to get setting %s: %w", giveawayChannelSetting, err)
	}

	return channelID, nil
}

func (r *redisRepository) SetGiveawayChannel(ctx context.Context, input *SetGiveawayChannelInput) error {
	if input == nil || input.ChannelID == "" {
		return errors.New("input and channel ID cannot be empty")
	}

	if err := r.client.Set(ctx, settingKeyPrefix+giveawayChannelSetting, input.ChannelID, 0).Err(); err != nil {
		return fmt.Errorf("failed to set setting %s: %w", giveawayChannelSetting, err)
	}

	return nil
}
