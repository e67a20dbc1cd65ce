package discord

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/KirkDiggler/giveawayd/internal/platform"
	"github.com/bwmarrin/discordgo"
)

const (
	// Discord caps reaction pages at 100 users
	reactionPageSize = 100

	// maxReactionPages bounds a single snapshot read
	maxReactionPages = 10
)

// Config holds the configuration for the Discord client
type Config struct {
	Session *discordgo.Session
}

// Client implements platform.Client on top of a discordgo session
type Client struct {
	session *discordgo.Session
}

// New creates a new Discord platform client
func New(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	return &Client{
		session: cfg.Session,
	}, nil
}

// SelfID returns the bot's user ID once the session is ready
func (c *Client) SelfID() string {
	if c.session.State == nil || c.session.State.User == nil {
		return ""
	}
	return c.session.State.User.ID
}

func (c *Client) SendMessage(ctx context.Context, channelID, content string) (*platform.Message, error) {
	msg, err := c.session.ChannelMessageSend(channelID, content, discordgo.WithContext(ctx))
	if err != nil {
		return nil, mapError(fmt.Errorf("failed to send message to channel %s: %w", channelID, err))
	}
	return toMessage(msg), nil
}

func (c *Client) SendEmbed(ctx context.Context, channelID string, embed *discordgo.MessageEmbed) (*platform.Message, error) {
	msg, err := c.session.ChannelMessageSendEmbed(channelID, embed, discordgo.WithContext(ctx))
	if err != nil {
		return nil, mapError(fmt.Errorf("failed to send embed to channel %s: %w", channelID, err))
	}
	return toMessage(msg), nil
}

func (c *Client) EditEmbed(ctx context.Context, channelID, messageID string, embed *discordgo.MessageEmbed) error {
	if _, err := c.session.ChannelMessageEditEmbed(channelID, messageID, embed, discordgo.WithContext(ctx)); err != nil {
		return mapError(fmt.Errorf("failed to edit message %s: %w", messageID, err))
	}
	return nil
}

func (c *Client) FetchMessage(ctx context.Context, channelID, messageID string) (*platform.Message, error) {
	msg, err := c.session.ChannelMessage(channelID, messageID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, mapError(fmt.Errorf("failed to fetch message %s: %w", messageID, err))
	}
	return toMessage(msg), nil
}

func (c *Client) DeleteMessage(ctx context.Context, channelID, messageID string) error {
	if err := c.session.ChannelMessageDelete(channelID, messageID, discordgo.WithContext(ctx)); err != nil {
		return mapError(fmt.Errorf("failed to delete message %s: %w", messageID, err))
	}
	return nil
}

func (c *Client) AddReaction(ctx context.Context, channelID, messageID, emoji string) error {
	if err := c.session.MessageReactionAdd(channelID, messageID, emoji, discordgo.WithContext(ctx)); err != nil {
		return mapError(fmt.Errorf("failed to add reaction to message %s: %w", messageID, err))
	}
	return nil
}

// ReactionUsers pages through the reaction users. Discord may still omit
// users, so callers must treat the result as a partial snapshot.
func (c *Client) ReactionUsers(ctx context.Context, channelID, messageID, emoji string) ([]*platform.User, error) {
	var users []*platform.User
	afterID := ""

	for page := 0; page < maxReactionPages; page++ {
		batch, err := c.session.MessageReactions(channelID, messageID, emoji, reactionPageSize, "", afterID, discordgo.WithContext(ctx))
		if err != nil {
			return nil, mapError(fmt.Errorf("failed to read reactions on message %s: %w", messageID, err))
		}

		for _, u := range batch {
			users = append(users, toUser(u))
		}

		if len(batch) < reactionPageSize {
			break
		}
		afterID = batch[len(batch)-1].ID
	}

	return users, nil
}

func (c *Client) RemoveReaction(ctx context.Context, channelID, messageID, emoji, userID string) error {
	if err := c.session.MessageReactionRemove(channelID, messageID, emoji, userID, discordgo.WithContext(ctx)); err != nil {
		return mapError(fmt.Errorf("failed to remove reaction of user %s: %w", userID, err))
	}
	return nil
}

func (c *Client) FetchUser(ctx context.Context, userID string) (*platform.User, error) {
	u, err := c.session.User(userID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, mapError(fmt.Errorf("failed to fetch user %s: %w", userID, err))
	}
	return toUser(u), nil
}

func (c *Client) SendDirectMessage(ctx context.Context, userID, content string) error {
	dm, err := c.session.UserChannelCreate(userID, discordgo.WithContext(ctx))
	if err != nil {
		return mapError(fmt.Errorf("failed to open DM with user %s: %w", userID, err))
	}

	if _, err := c.session.ChannelMessageSend(dm.ID, content, discordgo.WithContext(ctx)); err != nil {
		return mapError(fmt.Errorf("failed to send DM to user %s: %w", userID, err))
	}

	return nil
}

func (c *Client) FetchChannel(ctx context.Context, channelID string) (*platform.Channel, error) {
	ch, err := c.session.Channel(channelID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, mapError(fmt.Errorf("failed to fetch channel %s: %w", channelID, err))
	}

	return &platform.Channel{
		ID:      ch.ID,
		GuildID: ch.GuildID,
		Name:    ch.Name,
	}, nil
}

func (c *Client) CanManageMessages(ctx context.Context, channelID string) (bool, error) {
	selfID := c.SelfID()
	if selfID == "" {
		return false, errors.New("session is not ready")
	}

	perms, err := c.session.UserChannelPermissions(selfID, channelID, discordgo.WithContext(ctx))
	if err != nil {
		return false, mapError(fmt.Errorf("failed to read permissions in channel %s: %w", channelID, err))
	}

	return perms&discordgo.PermissionManageMessages != 0, nil
}

func toMessage(msg *discordgo.Message) *platform.Message {
	return &platform.Message{
		ID:        msg.ID,
		ChannelID: msg.ChannelID,
	}
}

func toUser(u *discordgo.User) *platform.User {
	return &platform.User{
		ID:       u.ID,
		Username: u.Username,
		Bot:      u.Bot,
	}
}

// mapError joins platform.ErrNotFound onto errors for deleted or unknown objects
func mapError(err error) error {
	var restErr *discordgo.RESTError
	if !errors.As(err, &restErr) {
		return err
	}

	if restErr.Message != nil {
		switch restErr.Message.Code {
		case discordgo.ErrCodeUnknownMessage,
			discordgo.ErrCodeUnknownChannel,
			discordgo.ErrCodeUnknownUser:
			return errors.Join(platform.ErrNotFound, err)
		}
	}

	if restErr.Response != nil && restErr.Response.StatusCode == http.StatusNotFound {
		return errors.Join(platform.ErrNotFound, err)
	}

	return err
}
