package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dylanbyc/hi-fifty/internal/domain/attendance"
	domainholiday "github.com/dylanbyc/hi-fifty/internal/domain/holiday"
	"github.com/dylanbyc/hi-fifty/internal/domain/pattern"
	"github.com/dylanbyc/hi-fifty/internal/domain/settings"
	holidaysvc "github.com/dylanbyc/hi-fifty/internal/service/holiday"
)

// AutoPopulateJobs runs the record auto-population: recurring pattern
// materialization and holiday marking. Both write through
// attendance.ApplyGenerated, so an existing record on a date is never
// overwritten and re-runs are harmless.
type AutoPopulateJobs struct {
	patternService    pattern.PatternService
	attendanceService attendance.AttendanceService
	holidayRepo       domainholiday.HolidayRepository
	settingsRepo      settings.SettingsRepository

	now func() time.Time
}

func NewAutoPopulateJobs(
	patternService pattern.PatternService,
	attendanceService attendance.AttendanceService,
	holidayRepo domainholiday.HolidayRepository,
	settingsRepo settings.SettingsRepository,
) *AutoPopulateJobs {
	return &AutoPopulateJobs{
		patternService:    patternService,
		attendanceService: attendanceService,
		holidayRepo:       holidayRepo,
		settingsRepo:      settingsRepo,
		now:               time.Now,
	}
}

func (j *AutoPopulateJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("expand_recurring_patterns", 1*time.Hour, j.ExpandRecurringPatterns)
	scheduler.AddJob("mark_holidays", 1*time.Hour, j.MarkHolidays)
}

// ExpandRecurringPatterns materializes enabled patterns from today through
// the end of next month. Past days are never backfilled: a pattern record
// for a day the user never confirmed would inflate the month's compliance.
func (j *AutoPopulateJobs) ExpandRecurringPatterns(ctx context.Context) error {
	now := j.now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 2, -1)

	result, err := j.patternService.Apply(ctx, pattern.ApplyPatternsRequest{
		StartDate: start.Format(attendance.DateLayout),
		EndDate:   end.Format(attendance.DateLayout),
	})
	if err != nil {
		return fmt.Errorf("failed to expand recurring patterns: %w", err)
	}

	if result.Inserted > 0 {
		slog.Info("Cron: recurring patterns materialized",
			"generated", result.Generated, "inserted", result.Inserted)
	}
	return nil
}

// MarkHolidays inserts type=holiday records for the current and next
// month's public holidays.
func (j *AutoPopulateJobs) MarkHolidays(ctx context.Context) error {
	cal, err := j.holidayRepo.Calendar(ctx)
	if err != nil {
		return fmt.Errorf("failed to load holiday calendar: %w", err)
	}
	st, err := j.settingsRepo.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	now := j.now()
	var recs []attendance.Record
	for _, offset := range []int{0, 1} {
		target := time.Date(now.Year(), now.Month()+time.Month(offset), 1, 0, 0, 0, 0, time.UTC)
		for _, h := range holidaysvc.ForMonth(cal, target.Year(), target.Month(), st) {
			recs = append(recs, attendance.Record{
				Date:   h.Date,
				Type:   attendance.TypeHoliday,
				Source: attendance.SourceHoliday,
			})
		}
	}

	inserted, err := j.attendanceService.ApplyGenerated(ctx, recs)
	if err != nil {
		return fmt.Errorf("failed to mark holidays: %w", err)
	}

	if inserted > 0 {
		slog.Info("Cron: holidays marked", "inserted", inserted)
	}
	return nil
}
