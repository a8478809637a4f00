package holiday

import (
	"context"
	"time"
)

type HolidayService interface {
	// ForMonth returns the public holidays of the given month for the user's
	// configured location and state.
	ForMonth(ctx context.Context, year int, month time.Month) ([]HolidayResponse, error)

	// DayStates classifies every day of the given month.
	DayStates(ctx context.Context, year int, month time.Month) ([]DayStateResponse, error)
}
