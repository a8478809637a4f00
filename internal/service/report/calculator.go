package report

import (
	"math"
	"strings"
	"time"

	"github.com/dylanbyc/hi-fifty/internal/domain/attendance"
	domainholiday "github.com/dylanbyc/hi-fifty/internal/domain/holiday"
	"github.com/dylanbyc/hi-fifty/internal/domain/report"
	"github.com/dylanbyc/hi-fifty/internal/domain/settings"
	holidaysvc "github.com/dylanbyc/hi-fifty/internal/service/holiday"
)

// Calculator is the attendance compliance engine. Every method is a pure
// function over its arguments: no I/O, no clock access, no state carried
// between calls. "Today" is always passed in as asOf so one computation
// stays internally consistent even if wall-clock time advances during it.
type Calculator struct{}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// WorkingDaysInMonth counts the days of the month that are not weekends,
// not public holidays, and not recorded leave.
//
// Weekend and holiday exclusion is decided by the calendar alone: a record
// on such a date (even type=office) never makes it count. Days with no
// record and no exclusion reason do count; the denominator measures
// opportunity, not completed entries.
func (c *Calculator) WorkingDaysInMonth(records []attendance.Record, year int, month time.Month, cal domainholiday.Calendar, st settings.UserSettings) int {
	return c.workingDays(records, year, month, cal, st, daysInMonth(year, month))
}

// WorkingDaysElapsed counts working days from the start of the month
// through min(asOf, end of month) inclusive. Zero when asOf is before the
// month starts.
func (c *Calculator) WorkingDaysElapsed(records []attendance.Record, year int, month time.Month, cal domainholiday.Calendar, st settings.UserSettings, asOf time.Time) int {
	return c.workingDays(records, year, month, cal, st, lastElapsedDay(year, month, asOf))
}

func (c *Calculator) workingDays(records []attendance.Record, year int, month time.Month, cal domainholiday.Calendar, st settings.UserSettings, throughDay int) int {
	holidaySet := holidaysvc.DateSet(cal, year, month, st)

	leaveDates := make(map[string]struct{})
	for _, rec := range records {
		if rec.Type == attendance.TypeLeave {
			leaveDates[rec.Date] = struct{}{}
		}
	}

	count := 0
	for d := 1; d <= throughDay; d++ {
		date := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		key := date.Format(attendance.DateLayout)
		if _, ok := holidaySet[key]; ok {
			continue
		}
		if _, ok := leaveDates[key]; ok {
			continue
		}
		count++
	}
	return count
}

// Monthly aggregates one month's records into a compliance report.
//
// The percentage denominator is the elapsed-to-date working-day count (an
// accurate mid-month status), while the shortfall is measured against the
// full month's target. Zero denominators yield 0, never a division error.
//
// Records on weekend- or holiday-classified dates are left out of the
// office/wfh/leave tallies. Those dates sit outside the working-day
// denominator, so tallying them would let the percentage exceed 100.
func (c *Calculator) Monthly(records []attendance.Record, year int, month time.Month, cal domainholiday.Calendar, st settings.UserSettings, asOf time.Time) report.MonthlyReport {
	monthRecords := recordsInMonth(records, year, month)
	holidaySet := holidaysvc.DateSet(cal, year, month, st)

	var office, wfh, leave int
	for _, rec := range monthRecords {
		if excludedDate(rec.Date, holidaySet) {
			continue
		}
		switch rec.Type {
		case attendance.TypeOffice:
			office++
		case attendance.TypeWFH:
			wfh++
		case attendance.TypeLeave:
			leave++
		}
	}

	total := c.WorkingDaysInMonth(monthRecords, year, month, cal, st)
	available := c.WorkingDaysElapsed(monthRecords, year, month, cal, st, asOf)

	percentage := 0
	if available > 0 {
		percentage = int(math.Round(float64(office) / float64(available) * 100))
	}

	targetDays := int(math.Ceil(float64(total) * float64(st.TargetPercentage) / 100))
	needed := targetDays - office
	if needed < 0 {
		needed = 0
	}

	return report.MonthlyReport{
		Month:                     int(month),
		Year:                      year,
		TotalWorkingDays:          total,
		WorkingDaysAvailableSoFar: available,
		DaysInOffice:              office,
		DaysWFH:                   wfh,
		DaysLeave:                 leave,
		AttendancePercentage:      percentage,
		DaysNeededForTarget:       needed,
	}
}

// History computes reports for the monthCount months ending at asOf's
// month, oldest first. Year rollover is handled by time.Date
// normalization.
func (c *Calculator) History(records []attendance.Record, monthCount int, cal domainholiday.Calendar, st settings.UserSettings, asOf time.Time) []report.MonthlyReport {
	reports := make([]report.MonthlyReport, 0, monthCount)
	for i := monthCount - 1; i >= 0; i-- {
		target := time.Date(asOf.Year(), asOf.Month()-time.Month(i), 1, 0, 0, 0, 0, time.UTC)
		reports = append(reports, c.Monthly(records, target.Year(), target.Month(), cal, st, asOf))
	}
	return reports
}

// excludedDate reports whether a date is weekend- or holiday-classified.
// Unparseable dates are not excluded; date format is the caller's problem.
func excludedDate(date string, holidaySet map[string]struct{}) bool {
	d, err := time.Parse(attendance.DateLayout, date)
	if err != nil {
		return false
	}
	if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return true
	}
	_, ok := holidaySet[date]
	return ok
}

func recordsInMonth(records []attendance.Record, year int, month time.Month) []attendance.Record {
	prefix := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01-")
	var result []attendance.Record
	for _, rec := range records {
		if strings.HasPrefix(rec.Date, prefix) {
			result = append(result, rec)
		}
	}
	return result
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1).Day()
}

// lastElapsedDay returns min(asOf's day, last day of month) when asOf is in
// or after the month, and 0 when the month has not started yet.
func lastElapsedDay(year int, month time.Month, asOf time.Time) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	asOfDate := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, time.UTC)

	if asOfDate.Before(first) {
		return 0
	}
	if asOfDate.Year() == year && asOfDate.Month() == month {
		return asOfDate.Day()
	}
	return daysInMonth(year, month)
}
