package announce

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/giveawayd/internal/common/clock"
	"github.com/KirkDiggler/giveawayd/internal/models"
	"github.com/bwmarrin/discordgo"
)

const (
	colorOpen      = 0x2ecc71
	colorClosed    = 0xf1c40f
	colorNoWinner  = 0x95a5a6
	giveawayFooter = "Giveaway %s"
)

func mention(userID string) string {
	return fmt.Sprintf("<@%s>", userID)
}

// MinutesRemaining is how long an open giveaway keeps accepting entries
func MinutesRemaining(g *models.Giveaway, now time.Time) int {
	started, ok := g.Started()
	if !ok {
		return g.DurationMinutes
	}
	return max(0, g.DurationMinutes-clock.MinutesSince(now, started))
}

func formatMinutes(minutes int) string {
	switch {
	case minutes <= 0:
		return "closing now"
	case minutes == 1:
		return "1 minute"
	case minutes < 60:
		return fmt.Sprintf("%d minutes", minutes)
	}

	hours, rest := minutes/60, minutes%60
	if rest == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, rest)
}

func participantCount(g *models.Giveaway) int {
	open, ok := g.Open()
	if !ok {
		return 0
	}
	return len(open.Participants)
}

func openEmbed(g *models.Giveaway, emoji string, now time.Time) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🎁 Giveaway: %s", g.GameName),
		URL:         g.GameURL,
		Description: fmt.Sprintf("React with %s to enter!", emoji),
		Color:       colorOpen,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Hosted by",
				Value:  mention(g.OwnerID),
				Inline: true,
			},
			{
				Name:   "Entries",
				Value:  fmt.Sprintf("%d", participantCount(g)),
				Inline: true,
			},
			{
				Name:   "Time remaining",
				Value:  formatMinutes(MinutesRemaining(g, now)),
				Inline: true,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf(giveawayFooter, g.ID),
		},
	}
}

func resultEmbed(g *models.Giveaway) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("🎁 Giveaway ended: %s", g.GameName),
		URL:   g.GameURL,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Hosted by",
				Value:  mention(g.OwnerID),
				Inline: true,
			},
			{
				Name:   "Entries",
				Value:  fmt.Sprintf("%d", participantCount(g)),
				Inline: true,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf(giveawayFooter, g.ID),
		},
	}

	if winnerID, ok := g.WinnerID(); ok {
		embed.Description = fmt.Sprintf("Winner: %s 🎉", mention(winnerID))
		embed.Color = colorClosed
	} else {
		embed.Description = "No winner was found."
		embed.Color = colorNoWinner
	}

	if ended, ok := g.Ended(); ok {
		embed.Timestamp = ended.Format(time.RFC3339)
	}

	return embed
}

// URLMessage is the plain link post sent ahead of the giveaway embed
func URLMessage(g *models.Giveaway) string {
	return fmt.Sprintf("**%s** is up for grabs! %s", g.GameName, g.GameURL)
}

// CooldownNotice tells a rejected user when they may enter this bracket again
func CooldownNotice(g *models.Giveaway, daysSinceWin, daysRemaining int) string {
	dayWord := "days"
	if daysRemaining == 1 {
		dayWord = "day"
	}
	return fmt.Sprintf(
		"Your entry for **%s** was removed. You won a giveaway in the same price range %d days ago, so you can enter again in %d %s.",
		g.GameName, daysSinceWin, daysRemaining, dayWord,
	)
}

// Congratulation is the public in-channel winner announcement
func Congratulation(g *models.Giveaway, winnerID string) string {
	return fmt.Sprintf("Congratulations %s, you won **%s**! 🎉", mention(winnerID), g.GameName)
}

// WinnerDirectMessage carries the code, or tells the winner to reach out to the owner
func WinnerDirectMessage(g *models.Giveaway) string {
	if g.Code != "" {
		return fmt.Sprintf("You won **%s**! Here is your code: `%s`", g.GameName, g.Code)
	}
	return fmt.Sprintf("You won **%s**! Please contact %s to receive your prize.", g.GameName, mention(g.OwnerID))
}

// OwnerWinnerNotice tells the owner who won
func OwnerWinnerNotice(g *models.Giveaway, winner string) string {
	if g.Code != "" {
		return fmt.Sprintf("Your giveaway for **%s** ended. %s won and received the code.", g.GameName, winner)
	}
	return fmt.Sprintf("Your giveaway for **%s** ended. %s won, please send them the prize.", g.GameName, winner)
}

// OwnerNoWinnerNotice tells the owner nobody entered
func OwnerNoWinnerNotice(g *models.Giveaway) string {
	return fmt.Sprintf("Your giveaway for **%s** ended. No winner was found.", g.GameName)
}

// OwnerLostWinnerNotice tells the owner the drawn winner could not be reached
func OwnerLostWinnerNotice(g *models.Giveaway, winnerID string) string {
	return fmt.Sprintf(
		"Your giveaway for **%s** ended. The winner (%s) could not be found, please contact them yourself.",
		g.GameName, winnerID,
	)
}
