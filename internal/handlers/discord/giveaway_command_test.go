package discord

import (
	"context"
	"errors"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/giveawayd/internal/common/clock/mocks"
	"github.com/KirkDiggler/giveawayd/internal/models"
	"github.com/KirkDiggler/giveawayd/internal/platform"
	"github.com/KirkDiggler/giveawayd/internal/services/channel"
	channelMocks "github.com/KirkDiggler/giveawayd/internal/services/channel/mocks"
	"github.com/KirkDiggler/giveawayd/internal/services/giveaway"
	giveawayMocks "github.com/KirkDiggler/giveawayd/internal/services/giveaway/mocks"
	"github.com/KirkDiggler/giveawayd/internal/services/status"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GiveawayCommandTestSuite struct {
	suite.Suite
	mockCtrl            *gomock.Controller
	mockGiveawayService *giveawayMocks.MockService
	mockChannelService  *channelMocks.MockService
	mockClock           *clockMocks.MockClock
	registry            *status.Registry
	command             *GiveawayCommand
	ctx                 context.Context
	testTime            time.Time
}

func (s *GiveawayCommandTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGiveawayService = giveawayMocks.NewMockService(s.mockCtrl)
	s.mockChannelService = channelMocks.NewMockService(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()
	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.registry = status.New(&status.Config{Clock: s.mockClock})
	s.command = NewGiveawayCommand(s.mockGiveawayService, s.mockChannelService, s.registry)
}

func (s *GiveawayCommandTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func option(name string, t discordgo.ApplicationCommandOptionType, value interface{}) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  t,
		Value: value,
	}
}

func optionMap(opts ...*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	return subcommandOptions(&discordgo.ApplicationCommandInteractionDataOption{Options: opts})
}

func (s *GiveawayCommandTestSuite) TestCommandDefinition() {
	cmd := s.command.GetCommand()
	s.Equal("giveaway", cmd.Name)
	s.Require().NotNil(cmd.DefaultMemberPermissions)
	s.Equal(int64(discordgo.PermissionManageServer), *cmd.DefaultMemberPermissions)

	var names []string
	for _, o := range cmd.Options {
		names = append(names, o.Name)
	}
	s.Equal([]string{"channel", "create", "status"}, names)
}

func (s *GiveawayCommandTestSuite) TestSetChannel() {
	s.mockChannelService.EXPECT().
		SetChannel(s.ctx, &channel.SetChannelInput{ChannelID: "chan-1"}).
		Return(&platform.Channel{ID: "chan-1", GuildID: "guild-1", Name: "giveaways"}, nil)

	msg, err := s.command.setChannel(s.ctx, optionMap(
		option("channel", discordgo.ApplicationCommandOptionChannel, "chan-1"),
	))

	s.NoError(err)
	s.Contains(msg, "<#chan-1>")
}

func (s *GiveawayCommandTestSuite) TestSetChannel_Unknown() {
	s.mockChannelService.EXPECT().
		SetChannel(s.ctx, gomock.Any()).
		Return(nil, channel.ErrUnknownChannel)

	_, err := s.command.setChannel(s.ctx, optionMap(
		option("channel", discordgo.ApplicationCommandOptionChannel, "gone"),
	))

	s.ErrorIs(err, channel.ErrUnknownChannel)
}

func (s *GiveawayCommandTestSuite) TestCreate() {
	s.mockGiveawayService.EXPECT().
		CreateGiveaway(s.ctx, &giveaway.CreateGiveawayInput{
			OwnerID:         "owner-1",
			GameName:        "Hollow Knight",
			GameURL:         "https://store.example.com/hk",
			Price:           "15",
			Code:            "AAAA-BBBB",
			StartMinutes:    10,
			DurationMinutes: 60,
		}).
		DoAndReturn(func(_ context.Context, input *giveaway.CreateGiveawayInput) (*giveaway.CreateGiveawayOutput, error) {
			return &giveaway.CreateGiveawayOutput{Giveaway: &models.Giveaway{
				ID:              "g-1",
				GameName:        input.GameName,
				StartMinutes:    input.StartMinutes,
				DurationMinutes: input.DurationMinutes,
			}}, nil
		})

	// Integer options arrive as JSON numbers
	msg, err := s.command.create(s.ctx, "owner-1", optionMap(
		option("game", discordgo.ApplicationCommandOptionString, "Hollow Knight"),
		option("url", discordgo.ApplicationCommandOptionString, "https://store.example.com/hk"),
		option("price", discordgo.ApplicationCommandOptionString, "15"),
		option("duration", discordgo.ApplicationCommandOptionInteger, float64(60)),
		option("start", discordgo.ApplicationCommandOptionInteger, float64(10)),
		option("code", discordgo.ApplicationCommandOptionString, "AAAA-BBBB"),
	))

	s.NoError(err)
	s.Contains(msg, "Hollow Knight")
	s.Contains(msg, "opens in 10 minutes")
}

func (s *GiveawayCommandTestSuite) TestCreate_OptionalOptionsOmitted() {
	s.mockGiveawayService.EXPECT().
		CreateGiveaway(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *giveaway.CreateGiveawayInput) (*giveaway.CreateGiveawayOutput, error) {
			s.Empty(input.Code)
			s.Zero(input.StartMinutes)
			return &giveaway.CreateGiveawayOutput{Giveaway: &models.Giveaway{
				GameName:        input.GameName,
				DurationMinutes: input.DurationMinutes,
			}}, nil
		})

	msg, err := s.command.create(s.ctx, "owner-1", optionMap(
		option("game", discordgo.ApplicationCommandOptionString, "Celeste"),
		option("url", discordgo.ApplicationCommandOptionString, "https://store.example.com/celeste"),
		option("price", discordgo.ApplicationCommandOptionString, "20"),
		option("duration", discordgo.ApplicationCommandOptionInteger, float64(30)),
	))

	s.NoError(err)
	s.Contains(msg, "next check")
}

func (s *GiveawayCommandTestSuite) TestCreate_ValidationError() {
	s.mockGiveawayService.EXPECT().
		CreateGiveaway(s.ctx, gomock.Any()).
		Return(nil, giveaway.ErrInvalidGameURL)

	_, err := s.command.create(s.ctx, "owner-1", optionMap(
		option("game", discordgo.ApplicationCommandOptionString, "Celeste"),
		option("url", discordgo.ApplicationCommandOptionString, "not a url"),
		option("price", discordgo.ApplicationCommandOptionString, "20"),
		option("duration", discordgo.ApplicationCommandOptionInteger, float64(30)),
	))

	var giveawayErr giveaway.GiveawayError
	s.True(errors.As(err, &giveawayErr))
}

func (s *GiveawayCommandTestSuite) TestReport() {
	s.registry.Add(status.KeyChannelNotSet, "No giveaway channel is set")
	s.mockGiveawayService.EXPECT().
		ListActive(s.ctx, &giveaway.ListActiveInput{}).
		Return(&giveaway.ListActiveOutput{Giveaways: []*models.Giveaway{
			{ID: "g-1", GameName: "Celeste", Created: s.testTime, StartMinutes: 5, DurationMinutes: 30},
			{ID: "g-2", GameName: "Hades", DurationMinutes: 60, State: &models.OpenState{
				Started:      s.testTime,
				Participants: []string{"u1", "u2"},
			}},
		}}, nil)

	description, fields, err := s.command.report(s.ctx)

	s.NoError(err)
	s.Contains(description, "No giveaway channel is set")
	s.Require().Len(fields, 2)
	s.Equal("Celeste", fields[0].Name)
	s.Contains(fields[0].Value, "Pending")
	s.Equal("Hades", fields[1].Name)
	s.Contains(fields[1].Value, "2 entries")
}

func (s *GiveawayCommandTestSuite) TestReport_Empty() {
	s.mockGiveawayService.EXPECT().
		ListActive(s.ctx, gomock.Any()).
		Return(&giveaway.ListActiveOutput{}, nil)

	description, fields, err := s.command.report(s.ctx)

	s.NoError(err)
	s.Contains(description, "No warnings.")
	s.Contains(description, "No giveaways are running.")
	s.Empty(fields)
}

func (s *GiveawayCommandTestSuite) TestReport_StoreError() {
	s.mockGiveawayService.EXPECT().
		ListActive(s.ctx, gomock.Any()).
		Return(nil, errors.New("redis down"))

	_, _, err := s.command.report(s.ctx)
	s.Error(err)
}

func TestGiveawayCommandSuite(t *testing.T) {
	suite.Run(t, new(GiveawayCommandTestSuite))
}
