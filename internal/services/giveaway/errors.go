package giveaway

// GiveawayError is a custom error type for giveaway validation errors
type GiveawayError string

// Error implements the error interface
func (e GiveawayError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrMissingOwner      GiveawayError = "giveaway owner is required"
	ErrMissingGameName   GiveawayError = "game name is required"
	ErrInvalidGameURL    GiveawayError = "game URL must be an http or https link"
	ErrMissingPrice      GiveawayError = "price bracket is required"
	ErrInvalidDuration   GiveawayError = "duration must be at least one minute"
	ErrDurationTooLong   GiveawayError = "duration cannot exceed 30 days"
	ErrInvalidStart      GiveawayError = "start delay cannot be negative"
	ErrStartDelayTooLong GiveawayError = "start delay cannot exceed 30 days"
	ErrNilConfig         GiveawayError = "config cannot be nil"
	ErrNilGiveawayRepo   GiveawayError = "giveaway repository cannot be nil"
	ErrNilUUIDGenerator  GiveawayError = "UUID generator cannot be nil"
)
