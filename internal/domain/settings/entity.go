package settings

import "time"

type Location string

const (
	LocationAustralia Location = "australia"
	LocationBangalore Location = "bangalore"
)

// DefaultTargetPercentage is the in-office compliance target applied when
// the user has never saved settings.
const DefaultTargetPercentage = 50

// AustralianStates lists the state codes holiday calendars are keyed by.
var AustralianStates = []string{"nsw", "vic", "qld", "wa", "sa", "tas", "act", "nt"}

type UserSettings struct {
	Location         Location
	State            string
	TargetPercentage int
	UpdatedAt        time.Time
}

// Default returns the settings used before the user saves any.
func Default() UserSettings {
	return UserSettings{
		Location:         LocationAustralia,
		State:            "nsw",
		TargetPercentage: DefaultTargetPercentage,
	}
}
