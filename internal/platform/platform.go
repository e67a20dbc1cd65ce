// Package platform describes the slice of the messaging platform the
// giveaway services consume.
package platform

//go:generate mockgen -package=mocks -destination=mocks/mock_client.go github.com/KirkDiggler/giveawayd/internal/platform Client

import (
	"context"
	"errors"

	"github.com/bwmarrin/discordgo"
)

// ErrNotFound is returned when a message, user or channel no longer exists
var ErrNotFound = errors.New("platform: not found")

// Message is a posted channel message
type Message struct {
	ID        string
	ChannelID string
}

// User is a platform account
type User struct {
	ID       string
	Username string
	Bot      bool
}

// Channel is a text channel messages can be posted to
type Channel struct {
	ID      string
	GuildID string
	Name    string
}

// Client is the capability surface of the messaging platform
type Client interface {
	// SelfID returns the bot's own user ID
	SelfID() string

	SendMessage(ctx context.Context, channelID, content string) (*Message, error)
	SendEmbed(ctx context.Context, channelID string, embed *discordgo.MessageEmbed) (*Message, error)
	EditEmbed(ctx context.Context, channelID, messageID string, embed *discordgo.MessageEmbed) error

	// FetchMessage returns ErrNotFound when the message was deleted
	FetchMessage(ctx context.Context, channelID, messageID string) (*Message, error)
	DeleteMessage(ctx context.Context, channelID, messageID string) error

	AddReaction(ctx context.Context, channelID, messageID, emoji string) error

	// ReactionUsers is a best-effort snapshot of the users reacting with emoji.
	// It may be incomplete.
	ReactionUsers(ctx context.Context, channelID, messageID, emoji string) ([]*User, error)
	RemoveReaction(ctx context.Context, channelID, messageID, emoji, userID string) error

	// FetchUser returns ErrNotFound when the user cannot be resolved
	FetchUser(ctx context.Context, userID string) (*User, error)
	SendDirectMessage(ctx context.Context, userID, content string) error

	// FetchChannel returns ErrNotFound when the channel does not exist
	FetchChannel(ctx context.Context, channelID string) (*Channel, error)

	// CanManageMessages reports whether the bot may remove other users' reactions
	CanManageMessages(ctx context.Context, channelID string) (bool, error)
}
