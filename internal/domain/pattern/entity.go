package pattern

import (
	"time"

	"github.com/dylanbyc/hi-fifty/internal/domain/attendance"
)

// RecurringPattern auto-generates attendance records on the configured
// weekdays within [StartDate, EndDate] (open-ended when EndDate is nil).
// Generated records are subordinate to manual entries.
type RecurringPattern struct {
	ID             string
	Name           string
	DaysOfWeek     []int // 0-6, Sunday=0
	AttendanceType attendance.Type
	StartDate      string  // YYYY-MM-DD, inclusive
	EndDate        *string // YYYY-MM-DD, inclusive; nil means open-ended
	LeaveType      *attendance.LeaveType
	Enabled        bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Conflict reports a date matched by more than one enabled pattern. The
// first pattern in input order wins; the rest are recorded here so callers
// can warn instead of silently dropping them.
type Conflict struct {
	Date     string   `json:"date"`
	WinnerID string   `json:"winner_id"`
	LoserIDs []string `json:"loser_ids"`
}
