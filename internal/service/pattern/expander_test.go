package pattern

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dylanbyc/hi-fifty/internal/domain/attendance"
	"github.com/dylanbyc/hi-fifty/internal/domain/pattern"
)

func strPtr(s string) *string { return &s }

// Week of 2024-01-08 (Mon) through 2024-01-14 (Sun).
var (
	weekStart = time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC)
	weekEnd   = time.Date(2024, time.January, 14, 0, 0, 0, 0, time.UTC)
)

func officePattern(id string, days ...int) pattern.RecurringPattern {
	return pattern.RecurringPattern{
		ID:             id,
		Name:           "office " + id,
		DaysOfWeek:     days,
		AttendanceType: attendance.TypeOffice,
		StartDate:      "2024-01-01",
		Enabled:        true,
	}
}

func TestExpand_WeekdaySelection(t *testing.T) {
	t.Parallel()
	e := NewExpander()

	// Monday=1, Wednesday=3
	records, conflicts := e.Expand([]pattern.RecurringPattern{officePattern("p1", 1, 3)}, weekStart, weekEnd)

	assert.Empty(t, conflicts)
	assert.Len(t, records, 2)
	assert.Equal(t, "2024-01-08", records[0].Date)
	assert.Equal(t, "2024-01-10", records[1].Date)
	assert.Equal(t, attendance.TypeOffice, records[0].Type)
	assert.Equal(t, attendance.SourcePattern, records[0].Source)
}

func TestExpand_RangeBoundsInclusive(t *testing.T) {
	t.Parallel()
	e := NewExpander()

	// Every day of the week; both endpoints must be generated.
	p := officePattern("p1", 0, 1, 2, 3, 4, 5, 6)
	records, _ := e.Expand([]pattern.RecurringPattern{p}, weekStart, weekEnd)

	assert.Len(t, records, 7)
	assert.Equal(t, "2024-01-08", records[0].Date)
	assert.Equal(t, "2024-01-14", records[6].Date)
}

func TestExpand_PatternDateBounds(t *testing.T) {
	t.Parallel()
	e := NewExpander()

	p := officePattern("p1", 0, 1, 2, 3, 4, 5, 6)
	p.StartDate = "2024-01-10"
	p.EndDate = strPtr("2024-01-12")

	records, _ := e.Expand([]pattern.RecurringPattern{p}, weekStart, weekEnd)

	assert.Len(t, records, 3)
	assert.Equal(t, "2024-01-10", records[0].Date)
	assert.Equal(t, "2024-01-12", records[2].Date)
}

func TestExpand_OpenEndedPattern(t *testing.T) {
	t.Parallel()
	e := NewExpander()

	p := officePattern("p1", 1)
	p.EndDate = nil

	farFuture := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	records, _ := e.Expand([]pattern.RecurringPattern{p}, farFuture, farFuture)

	assert.Len(t, records, 1)
	assert.Equal(t, "2026-03-02", records[0].Date)
}

func TestExpand_DisabledPatternSkipped(t *testing.T) {
	t.Parallel()
	e := NewExpander()

	p := officePattern("p1", 1, 2, 3)
	p.Enabled = false

	records, conflicts := e.Expand([]pattern.RecurringPattern{p}, weekStart, weekEnd)

	assert.Empty(t, records)
	assert.Empty(t, conflicts)
}

func TestExpand_FirstMatchWinsAndConflictReported(t *testing.T) {
	t.Parallel()
	e := NewExpander()

	lt := attendance.LeaveAnnual
	first := officePattern("p1", 1)
	second := pattern.RecurringPattern{
		ID:             "p2",
		Name:           "monday leave",
		DaysOfWeek:     []int{1},
		AttendanceType: attendance.TypeLeave,
		LeaveType:      &lt,
		StartDate:      "2024-01-01",
		Enabled:        true,
	}

	records, conflicts := e.Expand([]pattern.RecurringPattern{first, second}, weekStart, weekStart)

	assert.Len(t, records, 1)
	assert.Equal(t, attendance.TypeOffice, records[0].Type)
	assert.Nil(t, records[0].LeaveType)

	assert.Len(t, conflicts, 1)
	assert.Equal(t, "2024-01-08", conflicts[0].Date)
	assert.Equal(t, "p1", conflicts[0].WinnerID)
	assert.Equal(t, []string{"p2"}, conflicts[0].LoserIDs)
}

func TestExpand_OneRecordPerDate(t *testing.T) {
	t.Parallel()
	e := NewExpander()

	patterns := []pattern.RecurringPattern{
		officePattern("p1", 1, 2, 3, 4, 5),
		officePattern("p2", 1, 2, 3, 4, 5),
		officePattern("p3", 3),
	}

	records, _ := e.Expand(patterns, weekStart, weekEnd)

	seen := make(map[string]int)
	for _, rec := range records {
		seen[rec.Date]++
	}
	for date, n := range seen {
		assert.Equal(t, 1, n, "date %s generated %d records", date, n)
	}
}

func TestExpand_LeaveTypeCopied(t *testing.T) {
	t.Parallel()
	e := NewExpander()

	lt := attendance.LeaveSick
	p := pattern.RecurringPattern{
		ID:             "p1",
		Name:           "sick mondays",
		DaysOfWeek:     []int{1},
		AttendanceType: attendance.TypeLeave,
		LeaveType:      &lt,
		StartDate:      "2024-01-01",
		Enabled:        true,
	}

	records, _ := e.Expand([]pattern.RecurringPattern{p}, weekStart, weekStart)

	assert.Len(t, records, 1)
	if assert.NotNil(t, records[0].LeaveType) {
		assert.Equal(t, attendance.LeaveSick, *records[0].LeaveType)
	}
}

func TestExpand_UnparseableDatesMatchNothing(t *testing.T) {
	t.Parallel()
	e := NewExpander()

	bad := officePattern("p1", 1, 2, 3, 4, 5)
	bad.StartDate = "not-a-date"

	records, conflicts := e.Expand([]pattern.RecurringPattern{bad}, weekStart, weekEnd)

	assert.Empty(t, records)
	assert.Empty(t, conflicts)
}

func TestExpand_EmptyInputs(t *testing.T) {
	t.Parallel()
	e := NewExpander()

	records, conflicts := e.Expand(nil, weekStart, weekEnd)

	assert.Empty(t, records)
	assert.Empty(t, conflicts)
}
