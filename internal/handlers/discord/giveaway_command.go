package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/giveawayd/internal/models"
	"github.com/KirkDiggler/giveawayd/internal/services/channel"
	"github.com/KirkDiggler/giveawayd/internal/services/giveaway"
	"github.com/KirkDiggler/giveawayd/internal/services/status"
	"github.com/bwmarrin/discordgo"
)

// maxStatusFields keeps the status embed under Discord's field limit
const maxStatusFields = 25

var manageGuild int64 = discordgo.PermissionManageServer

// GiveawayCommand handles the /giveaway command
type GiveawayCommand struct {
	BaseCommand
	giveawayService giveaway.Service
	channelService  channel.Service
	status          *status.Registry
}

// NewGiveawayCommand creates a new giveaway command handler
func NewGiveawayCommand(giveawayService giveaway.Service, channelService channel.Service, registry *status.Registry) *GiveawayCommand {
	return &GiveawayCommand{
		BaseCommand: BaseCommand{
			Name:                     "giveaway",
			Description:              "Manage scheduled giveaways",
			DefaultMemberPermissions: &manageGuild,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "channel",
					Description: "Set the channel giveaways are posted to",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:         discordgo.ApplicationCommandOptionChannel,
							Name:         "channel",
							Description:  "Giveaway channel",
							Required:     true,
							ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "create",
					Description: "Schedule a new giveaway",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "game",
							Description: "Name of the game",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "url",
							Description: "Store page of the game",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "price",
							Description: "Price bracket used for winner cooldowns",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "duration",
							Description: "Minutes the giveaway stays open",
							Required:    true,
							MinValue:    floatPtr(1),
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "start",
							Description: "Minutes to wait before announcing",
							MinValue:    floatPtr(0),
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "code",
							Description: "Key sent to the winner",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "status",
					Description: "Show scheduler warnings and running giveaways",
				},
			},
		},
		giveawayService: giveawayService,
		channelService:  channelService,
		status:          registry,
	}
}

// Handle processes a Discord interaction for the giveaway command
func (c *GiveawayCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	ctx := context.Background()
	sub := data.Options[0]
	options := subcommandOptions(sub)

	switch sub.Name {
	case "channel":
		msg, err := c.setChannel(ctx, options)
		if err != nil {
			return c.respondFailure(s, i, err)
		}
		return RespondWithEphemeralMessage(s, i, msg)
	case "create":
		msg, err := c.create(ctx, interactionUserID(i), options)
		if err != nil {
			return c.respondFailure(s, i, err)
		}
		return RespondWithEphemeralMessage(s, i, msg)
	case "status":
		description, fields, err := c.report(ctx)
		if err != nil {
			return c.respondFailure(s, i, err)
		}
		return RespondWithEphemeralEmbed(s, i, "Giveaway status", description, fields)
	default:
		return RespondWithError(s, i, "Unknown subcommand")
	}
}

// respondFailure shows validation errors to the user and hides the rest
func (c *GiveawayCommand) respondFailure(s *discordgo.Session, i *discordgo.InteractionCreate, err error) error {
	var giveawayErr giveaway.GiveawayError
	if errors.As(err, &giveawayErr) || errors.Is(err, channel.ErrUnknownChannel) {
		return RespondWithError(s, i, err.Error())
	}

	if respErr := RespondWithError(s, i, "Something went wrong, try again later"); respErr != nil {
		return errors.Join(err, respErr)
	}
	return err
}

func (c *GiveawayCommand) setChannel(ctx context.Context, options map[string]*discordgo.ApplicationCommandInteractionDataOption) (string, error) {
	opt, ok := options["channel"]
	if !ok {
		return "", errors.New("channel option is required")
	}

	ch, err := c.channelService.SetChannel(ctx, &channel.SetChannelInput{
		ChannelID: opt.ChannelValue(nil).ID,
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Giveaways will be posted in <#%s>.", ch.ID), nil
}

func (c *GiveawayCommand) create(ctx context.Context, ownerID string, options map[string]*discordgo.ApplicationCommandInteractionDataOption) (string, error) {
	input := &giveaway.CreateGiveawayInput{
		OwnerID:         ownerID,
		GameName:        stringOption(options, "game"),
		GameURL:         stringOption(options, "url"),
		Price:           stringOption(options, "price"),
		Code:            stringOption(options, "code"),
		StartMinutes:    intOption(options, "start"),
		DurationMinutes: intOption(options, "duration"),
	}

	output, err := c.giveawayService.CreateGiveaway(ctx, input)
	if err != nil {
		return "", err
	}

	g := output.Giveaway
	if g.StartMinutes > 0 {
		return fmt.Sprintf("Giveaway for **%s** scheduled. It opens in %d minutes and runs for %d minutes.", g.GameName, g.StartMinutes, g.DurationMinutes), nil
	}
	return fmt.Sprintf("Giveaway for **%s** scheduled. It opens on the next check and runs for %d minutes.", g.GameName, g.DurationMinutes), nil
}

func (c *GiveawayCommand) report(ctx context.Context) (string, []*discordgo.MessageEmbedField, error) {
	output, err := c.giveawayService.ListActive(ctx, &giveaway.ListActiveInput{})
	if err != nil {
		return "", nil, err
	}

	var sb strings.Builder
	entries := c.status.List()
	if len(entries) == 0 {
		sb.WriteString("No warnings.")
	}
	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("⚠️ %s (since <t:%d:R>)\n", e.Text, e.Since.Unix()))
	}

	fields := make([]*discordgo.MessageEmbedField, 0, len(output.Giveaways))
	for _, g := range output.Giveaways {
		if len(fields) == maxStatusFields {
			break
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  g.GameName,
			Value: describeGiveaway(g),
		})
	}

	if len(output.Giveaways) == 0 {
		sb.WriteString("\nNo giveaways are running.")
	}

	return sb.String(), fields, nil
}

func describeGiveaway(g *models.Giveaway) string {
	open, ok := g.Open()
	if !ok {
		return fmt.Sprintf("Pending, opens %d minutes after <t:%d:f>", g.StartMinutes, g.Created.Unix())
	}
	return fmt.Sprintf("Open since <t:%d:R>, %d entries, %d minutes", open.Started.Unix(), len(open.Participants), g.DurationMinutes)
}

func stringOption(options map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	if opt, ok := options[name]; ok {
		return opt.StringValue()
	}
	return ""
}

func intOption(options map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) int {
	if opt, ok := options[name]; ok {
		return int(opt.IntValue())
	}
	return 0
}

func floatPtr(f float64) *float64 {
	return &f
}
