package report

import (
	"context"
	"fmt"
	"time"

	"github.com/dylanbyc/hi-fifty/internal/domain/attendance"
	domainholiday "github.com/dylanbyc/hi-fifty/internal/domain/holiday"
	"github.com/dylanbyc/hi-fifty/internal/domain/report"
	"github.com/dylanbyc/hi-fifty/internal/domain/settings"
)

type ReportServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	holidayRepo    domainholiday.HolidayRepository
	settingsRepo   settings.SettingsRepository
	calculator     *Calculator

	// now is sampled once per request so a single computation is
	// internally consistent.
	now func() time.Time
}

func NewReportService(
	attendanceRepo attendance.AttendanceRepository,
	holidayRepo domainholiday.HolidayRepository,
	settingsRepo settings.SettingsRepository,
	calculator *Calculator,
) report.ReportService {
	return &ReportServiceImpl{
		attendanceRepo: attendanceRepo,
		holidayRepo:    holidayRepo,
		settingsRepo:   settingsRepo,
		calculator:     calculator,
		now:            time.Now,
	}
}

// Monthly implements report.ReportService.
func (s *ReportServiceImpl) Monthly(ctx context.Context, year int, month time.Month) (report.MonthlyReport, error) {
	asOf := s.now()

	cal, st, err := s.loadRefs(ctx)
	if err != nil {
		return report.MonthlyReport{}, err
	}

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	records, err := s.attendanceRepo.ListByRange(ctx, start.Format(attendance.DateLayout), end.Format(attendance.DateLayout))
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	return s.calculator.Monthly(records, year, month, cal, st, asOf), nil
}

// History implements report.ReportService.
func (s *ReportServiceImpl) History(ctx context.Context, months int) ([]report.MonthlyReport, error) {
	if months < 1 || months > 24 {
		return nil, report.ErrInvalidMonthCount
	}
	asOf := s.now()

	cal, st, err := s.loadRefs(ctx)
	if err != nil {
		return nil, err
	}

	// One range query spanning the whole window; the calculator filters per
	// month.
	start := time.Date(asOf.Year(), asOf.Month()-time.Month(months-1), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1)
	records, err := s.attendanceRepo.ListByRange(ctx, start.Format(attendance.DateLayout), end.Format(attendance.DateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	return s.calculator.History(records, months, cal, st, asOf), nil
}

func (s *ReportServiceImpl) loadRefs(ctx context.Context) (domainholiday.Calendar, settings.UserSettings, error) {
	cal, err := s.holidayRepo.Calendar(ctx)
	if err != nil {
		return nil, settings.UserSettings{}, fmt.Errorf("failed to load holiday calendar: %w", err)
	}
	st, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, settings.UserSettings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	return cal, st, nil
}
