package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dylanbyc/hi-fifty/internal/domain/attendance"
	domainholiday "github.com/dylanbyc/hi-fifty/internal/domain/holiday"
	"github.com/dylanbyc/hi-fifty/internal/domain/settings"
)

// January 2024 has 31 calendar days and 8 weekend days. With the New Year
// and Australia Day holidays (both weekdays) the month has 21 working days
// for NSW; Bangalore observes only Republic Day here, giving 22.
func testCalendar() domainholiday.Calendar {
	return domainholiday.Calendar{
		2024: {
			Australia: domainholiday.AustralianHolidays{
				National: []domainholiday.Holiday{
					{Date: "2024-01-01", Name: "New Year's Day"},
					{Date: "2024-01-26", Name: "Australia Day"},
				},
				States: map[string][]domainholiday.Holiday{
					"vic": {{Date: "2024-03-11", Name: "Labour Day"}},
				},
			},
			Bangalore: []domainholiday.Holiday{
				{Date: "2024-01-26", Name: "Republic Day"},
			},
		},
	}
}

func nswSettings() settings.UserSettings {
	return settings.UserSettings{
		Location:         settings.LocationAustralia,
		State:            "nsw",
		TargetPercentage: 50,
	}
}

func bangaloreSettings() settings.UserSettings {
	return settings.UserSettings{
		Location:         settings.LocationBangalore,
		TargetPercentage: 50,
	}
}

// endOfJan is an asOf safely past the month so elapsed == full month.
var endOfJan = time.Date(2024, time.February, 15, 12, 0, 0, 0, time.UTC)

// officeRecords marks the first n working days of January 2024 as office.
func officeRecords(t *testing.T, n int) []attendance.Record {
	t.Helper()
	return recordsOnWorkingDays(t, n, attendance.TypeOffice)
}

func recordsOnWorkingDays(t *testing.T, n int, typ attendance.Type) []attendance.Record {
	t.Helper()
	holidays := map[string]struct{}{"2024-01-01": {}, "2024-01-26": {}}
	var recs []attendance.Record
	for d := 1; d <= 31 && len(recs) < n; d++ {
		date := time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC)
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		key := date.Format("2006-01-02")
		if _, ok := holidays[key]; ok {
			continue
		}
		recs = append(recs, attendance.Record{Date: key, Type: typ, Source: attendance.SourceManual})
	}
	if len(recs) < n {
		t.Fatalf("month has only %d working days, wanted %d", len(recs), n)
	}
	return recs
}

func TestWorkingDaysInMonth_NSWJanuary2024(t *testing.T) {
	t.Parallel()
	calc := NewCalculator()

	got := calc.WorkingDaysInMonth(nil, 2024, time.January, testCalendar(), nswSettings())

	// 31 calendar days - 8 weekend days - 2 holidays
	assert.Equal(t, 21, got)
}

func TestWorkingDaysInMonth_BangaloreJanuary2024(t *testing.T) {
	t.Parallel()
	calc := NewCalculator()

	got := calc.WorkingDaysInMonth(nil, 2024, time.January, testCalendar(), bangaloreSettings())

	// 31 - 8 weekends - 1 holiday; state setting is ignored for Bangalore
	assert.Equal(t, 22, got)
}

func TestWorkingDaysInMonth_LeaveReducesCount(t *testing.T) {
	t.Parallel()
	calc := NewCalculator()

	leave := attendance.LeaveAnnual
	records := []attendance.Record{
		{Date: "2024-01-02", Type: attendance.TypeLeave, LeaveType: &leave},
		{Date: "2024-01-03", Type: attendance.TypeLeave, LeaveType: &leave},
	}

	got := calc.WorkingDaysInMonth(records, 2024, time.January, testCalendar(), nswSettings())

	assert.Equal(t, 19, got)
}

func TestWorkingDaysInMonth_WeekendNeverOverridable(t *testing.T) {
	t.Parallel()
	calc := NewCalculator()

	// 2024-01-06 is a Saturday; an office record there must not add a
	// working day.
	records := []attendance.Record{
		{Date: "2024-01-06", Type: attendance.TypeOffice},
	}

	got := calc.WorkingDaysInMonth(records, 2024, time.January, testCalendar(), nswSettings())

	assert.Equal(t, 21, got)
}

func TestWorkingDaysInMonth_HolidayNeverOverridable(t *testing.T) {
	t.Parallel()
	calc := NewCalculator()

	// Australia Day stays excluded even with an office record on it.
	records := []attendance.Record{
		{Date: "2024-01-26", Type: attendance.TypeOffice},
	}

	got := calc.WorkingDaysInMonth(records, 2024, time.January, testCalendar(), nswSettings())

	assert.Equal(t, 21, got)
}

func TestWorkingDaysInMonth_MissingCalendarYear(t *testing.T) {
	t.Parallel()
	calc := NewCalculator()

	// 2023 is absent from the calendar: no holidays, no error.
	// January 2023: 31 days, 9 weekend days.
	got := calc.WorkingDaysInMonth(nil, 2023, time.January, testCalendar(), nswSettings())

	assert.Equal(t, 22, got)
}

func TestWorkingDaysElapsed(t *testing.T) {
	t.Parallel()
	calc := NewCalculator()

	cases := []struct {
		name string
		asOf time.Time
		want int
	}{
		{
			// days 1-15: minus weekends 6,7,13,14 and the Jan 1 holiday
			name: "mid month",
			asOf: time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC),
			want: 10,
		},
		{
			name: "after month end clamps to full month",
			asOf: endOfJan,
			want: 21,
		},
		{
			name: "before month start",
			asOf: time.Date(2023, time.December, 20, 0, 0, 0, 0, time.UTC),
			want: 0,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := calc.WorkingDaysElapsed(nil, 2024, time.January, testCalendar(), nswSettings(), c.asOf)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestMonthly_ElevenOfTwentyOne(t *testing.T) {
	t.Parallel()
	calc := NewCalculator()

	records := officeRecords(t, 11)

	rep := calc.Monthly(records, 2024, time.January, testCalendar(), nswSettings(), endOfJan)

	assert.Equal(t, 21, rep.TotalWorkingDays)
	assert.Equal(t, 21, rep.WorkingDaysAvailableSoFar)
	assert.Equal(t, 11, rep.DaysInOffice)
	assert.Equal(t, 0, rep.DaysWFH)
	assert.Equal(t, 0, rep.DaysLeave)
	// round(11/21*100) = 52
	assert.Equal(t, 52, rep.AttendancePercentage)
	// target = ceil(21*50/100) = 11, already met
	assert.Equal(t, 0, rep.DaysNeededForTarget)
}

func TestMonthly_ShortfallAgainstFullMonthTarget(t *testing.T) {
	t.Parallel()
	calc := NewCalculator()

	records := officeRecords(t, 5)

	rep := calc.Monthly(records, 2024, time.January, testCalendar(), nswSettings(), endOfJan)

	assert.Equal(t, 24, rep.AttendancePercentage)
	assert.Equal(t, 6, rep.DaysNeededForTarget)
}

func TestMonthly_MidMonthUsesElapsedDenominator(t *testing.T) {
	t.Parallel()
	calc := NewCalculator()

	// Office on the first two working days of the month, report as of the
	// second: 2/2 elapsed reads 100%, not diluted by future days.
	records := []attendance.Record{
		{Date: "2024-01-02", Type: attendance.TypeOffice},
		{Date: "2024-01-03", Type: attendance.TypeOffice},
	}
	asOf := time.Date(2024, time.January, 3, 17, 0, 0, 0, time.UTC)

	rep := calc.Monthly(records, 2024, time.January, testCalendar(), nswSettings(), asOf)

	assert.Equal(t, 21, rep.TotalWorkingDays)
	assert.Equal(t, 2, rep.WorkingDaysAvailableSoFar)
	assert.Equal(t, 100, rep.AttendancePercentage)
	// full-month target still owes 9 more office days
	assert.Equal(t, 9, rep.DaysNeededForTarget)
}

func TestMonthly_AllLeaveMonth(t *testing.T) {
	t.Parallel()
	calc := NewCalculator()

	records := recordsOnWorkingDays(t, 21, attendance.TypeLeave)

	rep := calc.Monthly(records, 2024, time.January, testCalendar(), nswSettings(), endOfJan)

	assert.Equal(t, 0, rep.DaysInOffice)
	assert.Equal(t, 21, rep.DaysLeave)
	assert.Equal(t, 0, rep.TotalWorkingDays)
	assert.Equal(t, 0, rep.WorkingDaysAvailableSoFar)
	assert.Equal(t, 0, rep.AttendancePercentage)
	assert.Equal(t, 0, rep.DaysNeededForTarget)
}

func TestMonthly_EmptyMonth(t *testing.T) {
	t.Parallel()
	calc := NewCalculator()

	rep := calc.Monthly(nil, 2024, time.January, testCalendar(), nswSettings(), endOfJan)

	assert.Equal(t, 0, rep.DaysInOffice)
	assert.Equal(t, 21, rep.TotalWorkingDays)
	assert.Equal(t, 0, rep.AttendancePercentage)
	assert.Equal(t, 11, rep.DaysNeededForTarget)
}

func TestMonthly_HolidayAndWeekendRecordsDoNotTally(t *testing.T) {
	t.Parallel()
	calc := NewCalculator()

	records := []attendance.Record{
		{Date: "2024-01-01", Type: attendance.TypeHoliday, Source: attendance.SourceHoliday},
		{Date: "2024-01-06", Type: attendance.TypeWeekend},
		{Date: "2024-01-02", Type: attendance.TypeOffice},
	}

	rep := calc.Monthly(records, 2024, time.January, testCalendar(), nswSettings(), endOfJan)

	assert.Equal(t, 1, rep.DaysInOffice)
	assert.Equal(t, 0, rep.DaysWFH)
	assert.Equal(t, 0, rep.DaysLeave)
}

func TestMonthly_PercentageWithinBounds(t *testing.T) {
	t.Parallel()
	calc := NewCalculator()

	// Excluded dates: both holidays plus a Saturday. Office records on them
	// must not push the percentage past 100.
	excluded := []attendance.Record{
		{Date: "2024-01-01", Type: attendance.TypeOffice, Source: attendance.SourceManual},
		{Date: "2024-01-26", Type: attendance.TypeOffice, Source: attendance.SourceManual},
		{Date: "2024-01-06", Type: attendance.TypeOffice, Source: attendance.SourceManual},
	}

	for n := 0; n <= 21; n++ {
		records := append(officeRecords(t, n), excluded...)
		rep := calc.Monthly(records, 2024, time.January, testCalendar(), nswSettings(), endOfJan)
		assert.GreaterOrEqual(t, rep.AttendancePercentage, 0)
		assert.LessOrEqual(t, rep.AttendancePercentage, 100)
		assert.GreaterOrEqual(t, rep.DaysNeededForTarget, 0)
	}
}

// Office marks on weekend and holiday dates must not inflate the tallies:
// the dates are outside the denominator, so a fully attended month plus
// such marks still reads exactly 100%.
func TestMonthly_OfficeOnExcludedDatesDoesNotInflate(t *testing.T) {
	t.Parallel()
	calc := NewCalculator()

	records := officeRecords(t, 21)
	records = append(records,
		attendance.Record{Date: "2024-01-01", Type: attendance.TypeOffice, Source: attendance.SourceManual},
		attendance.Record{Date: "2024-01-26", Type: attendance.TypeOffice, Source: attendance.SourceManual},
		attendance.Record{Date: "2024-01-06", Type: attendance.TypeOffice, Source: attendance.SourceManual},
	)

	rep := calc.Monthly(records, 2024, time.January, testCalendar(), nswSettings(), endOfJan)

	assert.Equal(t, 21, rep.DaysInOffice)
	assert.Equal(t, 21, rep.WorkingDaysAvailableSoFar)
	assert.Equal(t, 100, rep.AttendancePercentage)
	assert.Equal(t, 0, rep.DaysNeededForTarget)
}

func TestMonthly_Idempotent(t *testing.T) {
	t.Parallel()
	calc := NewCalculator()

	records := officeRecords(t, 7)

	first := calc.Monthly(records, 2024, time.January, testCalendar(), nswSettings(), endOfJan)
	second := calc.Monthly(records, 2024, time.January, testCalendar(), nswSettings(), endOfJan)

	assert.Equal(t, first, second)
}

func TestHistory_OrderAndYearRollover(t *testing.T) {
	t.Parallel()
	calc := NewCalculator()

	asOf := time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC)

	reports := calc.History(nil, 4, testCalendar(), nswSettings(), asOf)

	assert.Len(t, reports, 4)
	assert.Equal(t, 2023, reports[0].Year)
	assert.Equal(t, 11, reports[0].Month)
	assert.Equal(t, 2023, reports[1].Year)
	assert.Equal(t, 12, reports[1].Month)
	assert.Equal(t, 2024, reports[2].Year)
	assert.Equal(t, 1, reports[2].Month)
	assert.Equal(t, 2024, reports[3].Year)
	assert.Equal(t, 2, reports[3].Month)
}

func TestHistory_UsesMonthlySemantics(t *testing.T) {
	t.Parallel()
	calc := NewCalculator()

	asOf := endOfJan
	records := officeRecords(t, 11)

	reports := calc.History(records, 2, testCalendar(), nswSettings(), asOf)

	assert.Len(t, reports, 2)
	jan := reports[0]
	assert.Equal(t, 2024, jan.Year)
	assert.Equal(t, 1, jan.Month)
	assert.Equal(t, 21, jan.TotalWorkingDays)
	assert.Equal(t, 52, jan.AttendancePercentage)
}
