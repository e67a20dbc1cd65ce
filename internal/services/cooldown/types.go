package cooldown

import "github.com/KirkDiggler/giveawayd/internal/models"

type GetComparableWinningInput struct {
	UserID string
	Price  string
}

type GetComparableWinningOutput struct {
	// Win is nil when the user is eligible
	Win *models.Win

	DaysSinceWin int

	// DaysRemaining is at least 1 while Win is set
	DaysRemaining int
}
