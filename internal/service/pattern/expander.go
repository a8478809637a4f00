package pattern

import (
	"time"

	"github.com/dylanbyc/hi-fifty/internal/domain/attendance"
	"github.com/dylanbyc/hi-fifty/internal/domain/pattern"
)

// Expander materializes recurring patterns into concrete daily records. It
// is pure and unaware of existing records; the caller is responsible for
// never letting its output overwrite a manual entry.
type Expander struct{}

func NewExpander() *Expander {
	return &Expander{}
}

type boundedPattern struct {
	pattern.RecurringPattern
	start    time.Time
	end      time.Time
	openEnd  bool
	weekdays map[int]struct{}
}

// Expand generates one record per date in [rangeStart, rangeEnd] inclusive
// that is matched by an enabled pattern whose weekday set and date bounds
// cover it.
//
// When several patterns match the same date the first one in input order
// wins. The tie-break is deterministic but arbitrary; each such date is
// reported in the returned conflicts so callers can warn rather than
// silently drop the losers.
func (e *Expander) Expand(patterns []pattern.RecurringPattern, rangeStart, rangeEnd time.Time) ([]attendance.Record, []pattern.Conflict) {
	bounded := make([]boundedPattern, 0, len(patterns))
	for _, p := range patterns {
		if !p.Enabled {
			continue
		}
		start, err := time.Parse(attendance.DateLayout, p.StartDate)
		if err != nil {
			// A pattern with an unparseable start date matches nothing.
			continue
		}
		bp := boundedPattern{RecurringPattern: p, start: start, openEnd: true}
		if p.EndDate != nil && *p.EndDate != "" {
			end, err := time.Parse(attendance.DateLayout, *p.EndDate)
			if err != nil {
				continue
			}
			bp.end = end
			bp.openEnd = false
		}
		bp.weekdays = make(map[int]struct{}, len(p.DaysOfWeek))
		for _, d := range p.DaysOfWeek {
			bp.weekdays[d] = struct{}{}
		}
		bounded = append(bounded, bp)
	}

	var records []attendance.Record
	var conflicts []pattern.Conflict

	for date := truncate(rangeStart); !date.After(truncate(rangeEnd)); date = date.AddDate(0, 0, 1) {
		var matched []boundedPattern
		for _, bp := range bounded {
			if bp.matches(date) {
				matched = append(matched, bp)
			}
		}
		if len(matched) == 0 {
			continue
		}

		winner := matched[0]
		rec := attendance.Record{
			Date:   date.Format(attendance.DateLayout),
			Type:   winner.AttendanceType,
			Source: attendance.SourcePattern,
		}
		if winner.AttendanceType == attendance.TypeLeave && winner.LeaveType != nil {
			lt := *winner.LeaveType
			rec.LeaveType = &lt
		}
		records = append(records, rec)

		if len(matched) > 1 {
			losers := make([]string, 0, len(matched)-1)
			for _, m := range matched[1:] {
				losers = append(losers, m.ID)
			}
			conflicts = append(conflicts, pattern.Conflict{
				Date:     rec.Date,
				WinnerID: winner.ID,
				LoserIDs: losers,
			})
		}
	}

	return records, conflicts
}

func (bp boundedPattern) matches(date time.Time) bool {
	if _, ok := bp.weekdays[int(date.Weekday())]; !ok {
		return false
	}
	if date.Before(bp.start) {
		return false
	}
	if !bp.openEnd && date.After(bp.end) {
		return false
	}
	return true
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
