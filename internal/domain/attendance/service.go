package attendance

import (
	"context"
	"time"
)

// AttendanceService defines business logic for attendance records.
type AttendanceService interface {
	// MarkDay creates or overwrites the record for a date (manual action).
	MarkDay(ctx context.Context, req MarkDayRequest) (RecordResponse, error)

	// UnmarkDay removes the record for a date.
	UnmarkDay(ctx context.Context, date string) error

	// GetDay returns the record for a single date.
	GetDay(ctx context.Context, date string) (RecordResponse, error)

	// ListMonth returns all records within a calendar month.
	ListMonth(ctx context.Context, year int, month time.Month) ([]RecordResponse, error)

	// ApplyGenerated persists auto-populated records (pattern expansion,
	// holiday marking) without overwriting existing records. Returns the
	// number inserted.
	ApplyGenerated(ctx context.Context, recs []Record) (int, error)
}
