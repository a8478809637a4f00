package holiday

import "context"

// HolidayRepository supplies the reference holiday calendar. Implementations
// load the data once; Calendar must be cheap to call.
type HolidayRepository interface {
	Calendar(ctx context.Context) (Calendar, error)
}
