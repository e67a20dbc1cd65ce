package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds the process configuration loaded from the environment
type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Discord struct {
		Token         string `env:"DISCORD_TOKEN,required,notEmpty"`
		ApplicationID string `env:"APPLICATION_ID"`
		// Optional guild ID for development (server-specific commands)
		GuildID string `env:"GUILD_ID"`
	}

	Redis struct {
		Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
		Password string `env:"REDIS_PASSWORD" envDefault:""`
		DB       int    `env:"REDIS_DB" envDefault:"0"`
	}

	Giveaway struct {
		// ChannelID is used when no channel has been configured through the bot
		ChannelID    string        `env:"GIVEAWAY_CHANNEL_ID"`
		TickInterval time.Duration `env:"GIVEAWAY_TICK_INTERVAL" envDefault:"30s"`
		EntryEmoji   string        `env:"GIVEAWAY_ENTRY_EMOJI" envDefault:"🎉"`
		CooldownDays int           `env:"GIVEAWAY_COOLDOWN_DAYS" envDefault:"30"`
		Retention    time.Duration `env:"GIVEAWAY_RETENTION" envDefault:"168h"`
	}
}

// Load reads an optional .env file and parses the environment into a Config
func Load() (*Config, error) {
	// A missing .env is fine, production sets the variables directly
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values env tags cannot express
func (c *Config) Validate() error {
	if c.Giveaway.TickInterval <= 0 {
		return errors.New("GIVEAWAY_TICK_INTERVAL must be positive")
	}
	if c.Giveaway.CooldownDays <= 0 {
		return errors.New("GIVEAWAY_COOLDOWN_DAYS must be positive")
	}
	if c.Giveaway.Retention <= 0 {
		return errors.New("GIVEAWAY_RETENTION must be positive")
	}
	if c.Giveaway.EntryEmoji == "" {
		return errors.New("GIVEAWAY_ENTRY_EMOJI cannot be empty")
	}
	return nil
}
