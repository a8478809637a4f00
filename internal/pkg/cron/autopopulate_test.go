package cron

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dylanbyc/hi-fifty/internal/domain/attendance"
	domainholiday "github.com/dylanbyc/hi-fifty/internal/domain/holiday"
	"github.com/dylanbyc/hi-fifty/internal/domain/pattern"
	"github.com/dylanbyc/hi-fifty/internal/domain/settings"
)

type stubPatternService struct {
	applied []pattern.ApplyPatternsRequest
}

func (s *stubPatternService) Create(ctx context.Context, req pattern.CreatePatternRequest) (pattern.PatternResponse, error) {
	return pattern.PatternResponse{}, nil
}

func (s *stubPatternService) Get(ctx context.Context, id string) (pattern.PatternResponse, error) {
	return pattern.PatternResponse{}, nil
}

func (s *stubPatternService) List(ctx context.Context) ([]pattern.PatternResponse, error) {
	return nil, nil
}

func (s *stubPatternService) Update(ctx context.Context, req pattern.UpdatePatternRequest) (pattern.PatternResponse, error) {
	return pattern.PatternResponse{}, nil
}

func (s *stubPatternService) Delete(ctx context.Context, id string) error {
	return nil
}

func (s *stubPatternService) Apply(ctx context.Context, req pattern.ApplyPatternsRequest) (pattern.ApplyPatternsResponse, error) {
	s.applied = append(s.applied, req)
	return pattern.ApplyPatternsResponse{}, nil
}

type stubAttendanceService struct {
	generated []attendance.Record
}

func (s *stubAttendanceService) MarkDay(ctx context.Context, req attendance.MarkDayRequest) (attendance.RecordResponse, error) {
	return attendance.RecordResponse{}, nil
}

func (s *stubAttendanceService) UnmarkDay(ctx context.Context, date string) error {
	return nil
}

func (s *stubAttendanceService) GetDay(ctx context.Context, date string) (attendance.RecordResponse, error) {
	return attendance.RecordResponse{}, nil
}

func (s *stubAttendanceService) ListMonth(ctx context.Context, year int, month time.Month) ([]attendance.RecordResponse, error) {
	return nil, nil
}

func (s *stubAttendanceService) ApplyGenerated(ctx context.Context, recs []attendance.Record) (int, error) {
	s.generated = append(s.generated, recs...)
	return len(recs), nil
}

type stubHolidayRepo struct {
	cal domainholiday.Calendar
}

func (r *stubHolidayRepo) Calendar(ctx context.Context) (domainholiday.Calendar, error) {
	return r.cal, nil
}

type stubSettingsRepo struct {
	st settings.UserSettings
}

func (r *stubSettingsRepo) Get(ctx context.Context) (settings.UserSettings, error) {
	return r.st, nil
}

func (r *stubSettingsRepo) Save(ctx context.Context, s settings.UserSettings) (settings.UserSettings, error) {
	return s, nil
}

func fixedNow() time.Time {
	return time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC)
}

// The expansion range starts at today, never earlier. Backfilling a past
// day with a pattern record would mark attendance the user never confirmed.
func TestExpandRecurringPatterns_RangeStartsToday(t *testing.T) {
	t.Parallel()

	ps := &stubPatternService{}
	jobs := NewAutoPopulateJobs(ps, &stubAttendanceService{}, &stubHolidayRepo{}, &stubSettingsRepo{})
	jobs.now = fixedNow

	err := jobs.ExpandRecurringPatterns(context.Background())

	require.NoError(t, err)
	require.Len(t, ps.applied, 1)
	assert.Equal(t, "2024-01-15", ps.applied[0].StartDate)
	assert.Equal(t, "2024-02-29", ps.applied[0].EndDate)
}

func TestMarkHolidays_CurrentAndNextMonth(t *testing.T) {
	t.Parallel()

	cal := domainholiday.Calendar{
		2024: {
			Australia: domainholiday.AustralianHolidays{
				National: []domainholiday.Holiday{
					{Date: "2024-01-26", Name: "Australia Day"},
					{Date: "2024-04-25", Name: "Anzac Day"},
				},
			},
		},
	}
	as := &stubAttendanceService{}
	jobs := NewAutoPopulateJobs(&stubPatternService{}, as, &stubHolidayRepo{cal: cal},
		&stubSettingsRepo{st: settings.Default()})
	jobs.now = fixedNow

	err := jobs.MarkHolidays(context.Background())

	require.NoError(t, err)
	// January's holiday only; April is outside the two-month window.
	require.Len(t, as.generated, 1)
	assert.Equal(t, "2024-01-26", as.generated[0].Date)
	assert.Equal(t, attendance.TypeHoliday, as.generated[0].Type)
	assert.Equal(t, attendance.SourceHoliday, as.generated[0].Source)
}
