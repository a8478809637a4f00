package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dylanbyc/hi-fifty/internal/domain/attendance"
	"github.com/dylanbyc/hi-fifty/internal/domain/pattern"
	"github.com/dylanbyc/hi-fifty/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type patternRepository struct {
	db *database.DB
}

func NewPatternRepository(db *database.DB) pattern.PatternRepository {
	return &patternRepository{db: db}
}

// Create implements pattern.PatternRepository.
func (r *patternRepository) Create(ctx context.Context, p pattern.RecurringPattern) (pattern.RecurringPattern, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO recurring_patterns (
			id, name, days_of_week, attendance_type, start_date, end_date, leave_type, enabled
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		p.ID,
		p.Name,
		toInt32s(p.DaysOfWeek),
		string(p.AttendanceType),
		p.StartDate,
		p.EndDate,
		leaveTypePtr(p.LeaveType),
		p.Enabled,
	).Scan(&p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		return pattern.RecurringPattern{}, fmt.Errorf("failed to create pattern: %w", err)
	}

	return p, nil
}

// GetByID implements pattern.PatternRepository.
func (r *patternRepository) GetByID(ctx context.Context, id string) (pattern.RecurringPattern, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, days_of_week, attendance_type, start_date, end_date, leave_type, enabled,
		       created_at, updated_at
		FROM recurring_patterns
		WHERE id = $1
	`

	p, err := scanPattern(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return pattern.RecurringPattern{}, pattern.ErrPatternNotFound
		}
		return pattern.RecurringPattern{}, fmt.Errorf("failed to get pattern: %w", err)
	}

	return p, nil
}

// List implements pattern.PatternRepository. Creation order doubles as the
// precedence order during expansion.
func (r *patternRepository) List(ctx context.Context) ([]pattern.RecurringPattern, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, days_of_week, attendance_type, start_date, end_date, leave_type, enabled,
		       created_at, updated_at
		FROM recurring_patterns
		ORDER BY created_at, id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list patterns: %w", err)
	}
	defer rows.Close()

	var patterns []pattern.RecurringPattern
	for rows.Next() {
		p, err := scanPattern(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pattern: %w", err)
		}
		patterns = append(patterns, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate patterns: %w", err)
	}

	return patterns, nil
}

// Update implements pattern.PatternRepository.
func (r *patternRepository) Update(ctx context.Context, p pattern.RecurringPattern) (pattern.RecurringPattern, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE recurring_patterns
		SET name = $2,
		    days_of_week = $3,
		    attendance_type = $4,
		    start_date = $5,
		    end_date = $6,
		    leave_type = $7,
		    enabled = $8,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		p.ID,
		p.Name,
		toInt32s(p.DaysOfWeek),
		string(p.AttendanceType),
		p.StartDate,
		p.EndDate,
		leaveTypePtr(p.LeaveType),
		p.Enabled,
	).Scan(&p.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return pattern.RecurringPattern{}, pattern.ErrPatternNotFound
		}
		return pattern.RecurringPattern{}, fmt.Errorf("failed to update pattern: %w", err)
	}

	return p, nil
}

// Delete implements pattern.PatternRepository.
func (r *patternRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM recurring_patterns WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete pattern: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pattern.ErrPatternNotFound
	}

	return nil
}

func scanPattern(row pgx.Row) (pattern.RecurringPattern, error) {
	var p pattern.RecurringPattern
	var days []int32
	var startDate time.Time
	var endDate *time.Time
	var leaveType *string

	err := row.Scan(&p.ID, &p.Name, &days, &p.AttendanceType, &startDate, &endDate, &leaveType,
		&p.Enabled, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return pattern.RecurringPattern{}, err
	}

	p.DaysOfWeek = toInts(days)
	p.StartDate = startDate.Format(attendance.DateLayout)
	if endDate != nil {
		end := endDate.Format(attendance.DateLayout)
		p.EndDate = &end
	}
	if leaveType != nil {
		lt := attendance.LeaveType(*leaveType)
		p.LeaveType = &lt
	}
	return p, nil
}

func toInt32s(in []int) []int32 {
	out := make([]int32, len(in))
	for i, v := range in {
		out[i] = int32(v)
	}
	return out
}

func toInts(in []int32) []int {
	out := make([]int, len(in))
	for i, v := range in {
		out[i] = int(v)
	}
	return out
}
