package announce

import (
	"context"
	"errors"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/giveawayd/internal/common/clock/mocks"
	"github.com/KirkDiggler/giveawayd/internal/models"
	"github.com/KirkDiggler/giveawayd/internal/platform"
	platformMocks "github.com/KirkDiggler/giveawayd/internal/platform/mocks"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AnnounceServiceTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockClient *platformMocks.MockClient
	mockClock  *clockMocks.MockClock
	service    Service
	ctx        context.Context
	testTime   time.Time
	giveaway   *models.Giveaway
}

func (s *AnnounceServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClient = platformMocks.NewMockClient(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()
	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	svc, err := New(&Config{
		Client:     s.mockClient,
		Clock:      s.mockClock,
		EntryEmoji: "🎉",
	})
	s.Require().NoError(err)
	s.service = svc

	s.giveaway = &models.Giveaway{
		ID:              "g1",
		OwnerID:         "owner-1",
		GameName:        "Hades",
		GameURL:         "https://store.example.com/hades",
		Price:           "25",
		Created:         s.testTime.Add(-time.Hour),
		DurationMinutes: 90,
		State:           models.PendingState{},
	}
}

func (s *AnnounceServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAnnounceServiceSuite(t *testing.T) {
	suite.Run(t, new(AnnounceServiceTestSuite))
}

func (s *AnnounceServiceTestSuite) TestWriteNew() {
	s.mockClient.EXPECT().
		SendEmbed(s.ctx, "channel-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, embed *discordgo.MessageEmbed) (*platform.Message, error) {
			s.Contains(embed.Title, "Hades")
			s.Contains(embed.Description, "🎉")
			s.Equal("https://store.example.com/hades", embed.URL)
			s.Equal("1h 30m", embed.Fields[2].Value)
			return &platform.Message{ID: "start-msg", ChannelID: "channel-1"}, nil
		})

	msg, err := s.service.WriteNew(s.ctx, &WriteNewInput{
		ChannelID: "channel-1",
		Giveaway:  s.giveaway,
	})
	s.Require().NoError(err)
	s.Equal("start-msg", msg.ID)
}

func (s *AnnounceServiceTestSuite) TestWriteNew_SendFails() {
	s.mockClient.EXPECT().
		SendEmbed(s.ctx, "channel-1", gomock.Any()).
		Return(nil, errors.New("missing access"))

	_, err := s.service.WriteNew(s.ctx, &WriteNewInput{
		ChannelID: "channel-1",
		Giveaway:  s.giveaway,
	})
	s.Error(err)
}

func (s *AnnounceServiceTestSuite) TestWriteUpdate_ShowsEntriesAndTimeLeft() {
	s.Require().NoError(s.giveaway.MarkOpen(s.testTime.Add(-45*time.Minute), "channel-1", "url-msg", "start-msg"))
	open, _ := s.giveaway.Open()
	open.AddParticipant("user-1")
	open.AddParticipant("user-2")

	s.mockClient.EXPECT().
		EditEmbed(s.ctx, "channel-1", "start-msg", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, embed *discordgo.MessageEmbed) error {
			s.Equal("2", embed.Fields[1].Value)
			s.Equal("45 minutes", embed.Fields[2].Value)
			return nil
		})

	err := s.service.WriteUpdate(s.ctx, &WriteUpdateInput{
		ChannelID: "channel-1",
		MessageID: "start-msg",
		Giveaway:  s.giveaway,
	})
	s.NoError(err)
}

func (s *AnnounceServiceTestSuite) TestWriteWinner() {
	s.Require().NoError(s.giveaway.MarkOpen(s.testTime.Add(-2*time.Hour), "channel-1", "url-msg", "start-msg"))
	s.Require().NoError(s.giveaway.MarkClosed(s.testTime, "user-1"))

	s.mockClient.EXPECT().
		EditEmbed(s.ctx, "channel-1", "start-msg", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, embed *discordgo.MessageEmbed) error {
			s.Contains(embed.Description, "<@user-1>")
			s.Equal(s.testTime.Format(time.RFC3339), embed.Timestamp)
			return nil
		})

	err := s.service.WriteWinner(s.ctx, &WriteWinnerInput{
		ChannelID: "channel-1",
		MessageID: "start-msg",
		Giveaway:  s.giveaway,
	})
	s.NoError(err)
}

func (s *AnnounceServiceTestSuite) TestWriteWinner_NoWinner() {
	s.Require().NoError(s.giveaway.MarkOpen(s.testTime.Add(-2*time.Hour), "channel-1", "url-msg", "start-msg"))
	s.Require().NoError(s.giveaway.MarkClosed(s.testTime, ""))

	s.mockClient.EXPECT().
		EditEmbed(s.ctx, "channel-1", "start-msg", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, embed *discordgo.MessageEmbed) error {
			s.Equal("No winner was found.", embed.Description)
			return nil
		})

	err := s.service.WriteWinner(s.ctx, &WriteWinnerInput{
		ChannelID: "channel-1",
		MessageID: "start-msg",
		Giveaway:  s.giveaway,
	})
	s.NoError(err)
}

func (s *AnnounceServiceTestSuite) TestWinnerDirectMessage() {
	s.Contains(WinnerDirectMessage(s.giveaway), "contact <@owner-1>")

	s.giveaway.Code = "XXXX-YYYY"
	s.Contains(WinnerDirectMessage(s.giveaway), "`XXXX-YYYY`")
}

func (s *AnnounceServiceTestSuite) TestOwnerNotices() {
	s.Contains(OwnerNoWinnerNotice(s.giveaway), "No winner was found")
	s.Contains(OwnerWinnerNotice(s.giveaway, "alice"), "alice won")
	s.Contains(OwnerLostWinnerNotice(s.giveaway, "user-9"), "user-9")
}

func (s *AnnounceServiceTestSuite) TestCooldownNotice() {
	s.Contains(CooldownNotice(s.giveaway, 29, 1), "in 1 day.")
	s.Contains(CooldownNotice(s.giveaway, 10, 20), "in 20 days.")
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes  int
		expected string
	}{
		{0, "closing now"},
		{-5, "closing now"},
		{1, "1 minute"},
		{59, "59 minutes"},
		{60, "1h"},
		{61, "1h 1m"},
		{150, "2h 30m"},
	}

	for _, tt := range tests {
		if got := formatMinutes(tt.minutes); got != tt.expected {
			t.Errorf("formatMinutes(%d) = %q, want %q", tt.minutes, got, tt.expected)
		}
	}
}
