package holiday

import (
	"strings"
	"time"

	"github.com/dylanbyc/hi-fifty/internal/domain/holiday"
	"github.com/dylanbyc/hi-fifty/internal/domain/settings"
)

// The lookup functions are pure: they read the supplied calendar and
// settings and return derived values. Missing years or locations degrade to
// empty results, never errors.

// ForMonth returns the public holidays falling in the given month for the
// configured location. For Australia the result is the union of the
// national list and the configured state's list; for Bangalore the flat
// list is used and state is ignored.
func ForMonth(cal holiday.Calendar, year int, month time.Month, st settings.UserSettings) []holiday.Holiday {
	yearData, ok := cal[year]
	if !ok {
		return nil
	}

	var source []holiday.Holiday
	switch st.Location {
	case settings.LocationAustralia:
		source = append(source, yearData.Australia.National...)
		if st.State != "" {
			source = append(source, yearData.Australia.States[st.State]...)
		}
	case settings.LocationBangalore:
		source = yearData.Bangalore
	}

	prefix := monthPrefix(year, month)
	var result []holiday.Holiday
	for _, h := range source {
		if strings.HasPrefix(h.Date, prefix) {
			result = append(result, h)
		}
	}
	return result
}

// DateSet returns the month's holiday dates as a set, for O(1) membership
// checks while iterating a month.
func DateSet(cal holiday.Calendar, year int, month time.Month, st settings.UserSettings) map[string]struct{} {
	hols := ForMonth(cal, year, month, st)
	set := make(map[string]struct{}, len(hols))
	for _, h := range hols {
		set[h.Date] = struct{}{}
	}
	return set
}

// Classify determines a date's exclusion class. Weekend always wins,
// regardless of calendar content or any attendance record; then holiday;
// otherwise ClassNone, meaning the day's type must come from an explicit
// record.
func Classify(date time.Time, cal holiday.Calendar, st settings.UserSettings) holiday.DayClass {
	if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return holiday.ClassWeekend
	}
	set := DateSet(cal, date.Year(), date.Month(), st)
	if _, ok := set[date.Format("2006-01-02")]; ok {
		return holiday.ClassHoliday
	}
	return holiday.ClassNone
}

func monthPrefix(year int, month time.Month) string {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01-")
}
