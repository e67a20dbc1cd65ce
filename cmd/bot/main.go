package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/giveawayd/internal/common/clock"
	"github.com/KirkDiggler/giveawayd/internal/common/logger"
	"github.com/KirkDiggler/giveawayd/internal/common/uuid"
	"github.com/KirkDiggler/giveawayd/internal/config"
	"github.com/KirkDiggler/giveawayd/internal/draw"
	"github.com/KirkDiggler/giveawayd/internal/handlers/discord"
	discordClient "github.com/KirkDiggler/giveawayd/internal/platform/discord"
	giveawayRepo "github.com/KirkDiggler/giveawayd/internal/repositories/giveaway"
	settingsRepo "github.com/KirkDiggler/giveawayd/internal/repositories/settings"
	"github.com/KirkDiggler/giveawayd/internal/services/announce"
	"github.com/KirkDiggler/giveawayd/internal/services/channel"
	"github.com/KirkDiggler/giveawayd/internal/services/cooldown"
	"github.com/KirkDiggler/giveawayd/internal/services/daemon"
	"github.com/KirkDiggler/giveawayd/internal/services/giveaway"
	"github.com/KirkDiggler/giveawayd/internal/services/status"
	"github.com/bwmarrin/discordgo"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.Init("giveawayd", cfg.Debug)

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("failed to connect to Redis")
	}

	clk := &clock.DefaultClock{}

	// Initialize repositories
	giveaways, err := giveawayRepo.NewRedis(&giveawayRepo.Config{
		RedisClient: redisClient,
		Retention:   cfg.Giveaway.Retention,
		Clock:       clk,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create giveaway repository")
	}

	settings, err := settingsRepo.NewRedis(&settingsRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create settings repository")
	}

	// One session serves both the slash commands and the scheduler's REST calls
	session, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create Discord session")
	}

	client, err := discordClient.New(&discordClient.Config{
		Session: session,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create Discord client")
	}

	// Initialize services
	cooldownSvc, err := cooldown.New(&cooldown.Config{
		GiveawayRepo: giveaways,
		Clock:        clk,
		CooldownDays: cfg.Giveaway.CooldownDays,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create cooldown service")
	}

	announcer, err := announce.New(&announce.Config{
		Client:     client,
		Clock:      clk,
		EntryEmoji: cfg.Giveaway.EntryEmoji,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create announcer")
	}

	channels, err := channel.New(&channel.Config{
		SettingsRepo:     settings,
		Client:           client,
		DefaultChannelID: cfg.Giveaway.ChannelID,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create channel provider")
	}

	giveawaySvc, err := giveaway.New(&giveaway.Config{
		GiveawayRepo:  giveaways,
		Clock:         clk,
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create giveaway service")
	}

	registry := status.New(&status.Config{Clock: clk})

	scheduler, err := daemon.New(&daemon.Config{
		GiveawayRepo: giveaways,
		Cooldown:     cooldownSvc,
		Picker:       draw.New(&draw.Config{}),
		Announcer:    announcer,
		Channels:     channels,
		Client:       client,
		Status:       registry,
		Clock:        clk,
		EntryEmoji:   cfg.Giveaway.EntryEmoji,
		TickInterval: cfg.Giveaway.TickInterval,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create scheduler")
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Session:       session,
		ApplicationID: cfg.Discord.ApplicationID,
		GuildID:       cfg.Discord.GuildID,
		Commands: []discord.CommandHandler{
			discord.NewGiveawayCommand(giveawaySvc, channels, registry),
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create Discord bot")
	}

	// The scheduler needs the bot's own user ID, which is known once the session is open
	if err := bot.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start Discord bot")
	}

	scheduler.Start()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	scheduler.Stop()

	if err := bot.Stop(); err != nil {
		log.Error().Err(err).Msg("error stopping bot")
	}

	if err := redisClient.Close(); err != nil {
		log.Error().Err(err).Msg("error closing Redis client")
	}

	log.Info().Msg("giveawayd has been shut down")
}
