package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dylanbyc/hi-fifty/internal/domain/attendance"
	"github.com/dylanbyc/hi-fifty/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Upsert implements attendance.AttendanceRepository.
func (a *attendanceRepository) Upsert(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (date, type, leave_type, source)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (date) DO UPDATE
		SET type = EXCLUDED.type,
		    leave_type = EXCLUDED.leave_type,
		    source = EXCLUDED.source,
		    updated_at = NOW()
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.Date,
		string(rec.Type),
		leaveTypePtr(rec.LeaveType),
		string(rec.Source),
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to upsert attendance record: %w", err)
	}

	return rec, nil
}

// CreateIfAbsent implements attendance.AttendanceRepository. Each insert
// skips dates that already hold a record, whatever its source, so manual
// marks keep precedence over auto-population.
func (a *attendanceRepository) CreateIfAbsent(ctx context.Context, recs []attendance.Record) (int, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (date, type, leave_type, source)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (date) DO NOTHING
	`

	inserted := 0
	for _, rec := range recs {
		tag, err := q.Exec(ctx, query,
			rec.Date,
			string(rec.Type),
			leaveTypePtr(rec.LeaveType),
			string(rec.Source),
		)
		if err != nil {
			return inserted, fmt.Errorf("failed to insert attendance record for %s: %w", rec.Date, err)
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}

// GetByDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByDate(ctx context.Context, date string) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT date, type, leave_type, source, created_at, updated_at
		FROM attendance_records
		WHERE date = $1
	`

	rec, err := scanRecord(q.QueryRow(ctx, query, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return rec, nil
}

// ListByRange implements attendance.AttendanceRepository. Bounds are
// inclusive.
func (a *attendanceRepository) ListByRange(ctx context.Context, start, end string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT date, type, leave_type, source, created_at, updated_at
		FROM attendance_records
		WHERE date BETWEEN $1 AND $2
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}

	return records, nil
}

// Delete implements attendance.AttendanceRepository.
func (a *attendanceRepository) Delete(ctx context.Context, date string) error {
	q := GetQuerier(ctx, a.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance_records WHERE date = $1`, date)
	if err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

func scanRecord(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	var date time.Time
	var leaveType *string

	err := row.Scan(&date, &rec.Type, &leaveType, &rec.Source, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return attendance.Record{}, err
	}

	rec.Date = date.Format(attendance.DateLayout)
	if leaveType != nil {
		lt := attendance.LeaveType(*leaveType)
		rec.LeaveType = &lt
	}
	return rec, nil
}

func leaveTypePtr(lt *attendance.LeaveType) *string {
	if lt == nil {
		return nil
	}
	s := string(*lt)
	return &s
}
