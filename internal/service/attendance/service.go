package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/dylanbyc/hi-fifty/internal/domain/attendance"
	"github.com/dylanbyc/hi-fifty/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository

	now func() time.Time
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		now:                  time.Now,
	}
}

// MarkDay implements attendance.AttendanceService. A manual mark always
// overwrites whatever record exists for the date.
func (s *AttendanceServiceImpl) MarkDay(ctx context.Context, req attendance.MarkDayRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if date.After(today) {
		return attendance.RecordResponse{}, attendance.ErrDateInFuture
	}

	rec := attendance.Record{
		Date:   req.Date,
		Type:   attendance.Type(req.Type),
		Source: attendance.SourceManual,
	}
	if req.LeaveType != nil && rec.Type == attendance.TypeLeave {
		lt := attendance.LeaveType(*req.LeaveType)
		rec.LeaveType = &lt
	}

	saved, err := s.AttendanceRepository.Upsert(ctx, rec)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to save attendance record: %w", err)
	}

	return attendance.ToResponse(saved), nil
}

// UnmarkDay implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) UnmarkDay(ctx context.Context, date string) error {
	if _, ok := validator.IsValidDate(date); !ok {
		return validator.ValidationErrors{{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		}}
	}
	return s.AttendanceRepository.Delete(ctx, date)
}

// GetDay implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetDay(ctx context.Context, date string) (attendance.RecordResponse, error) {
	if _, ok := validator.IsValidDate(date); !ok {
		return attendance.RecordResponse{}, validator.ValidationErrors{{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		}}
	}

	rec, err := s.AttendanceRepository.GetByDate(ctx, date)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	return attendance.ToResponse(rec), nil
}

// ListMonth implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListMonth(ctx context.Context, year int, month time.Month) ([]attendance.RecordResponse, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	records, err := s.AttendanceRepository.ListByRange(ctx,
		start.Format(attendance.DateLayout), end.Format(attendance.DateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	resp := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		resp = append(resp, attendance.ToResponse(rec))
	}
	return resp, nil
}

// ApplyGenerated implements attendance.AttendanceService. Inserts skip any
// date that already has a record, so manual marks are never overwritten.
func (s *AttendanceServiceImpl) ApplyGenerated(ctx context.Context, recs []attendance.Record) (int, error) {
	if len(recs) == 0 {
		return 0, nil
	}
	inserted, err := s.AttendanceRepository.CreateIfAbsent(ctx, recs)
	if err != nil {
		return 0, fmt.Errorf("failed to insert generated records: %w", err)
	}
	return inserted, nil
}
