package attendance

import "time"

// Type classifies a date's attendance. The values are mutually exclusive:
// a date holds at most one record.
type Type string

const (
	TypeOffice  Type = "office"
	TypeWFH     Type = "wfh"
	TypeLeave   Type = "leave"
	TypeHoliday Type = "holiday"
	TypeWeekend Type = "weekend"
)

type LeaveType string

const (
	LeaveAnnual LeaveType = "annual"
	LeaveSick   LeaveType = "sick"
	LeaveOther  LeaveType = "other"
)

// Source records how a record came to exist. Manual marks always take
// precedence: auto-population never overwrites an existing record.
type Source string

const (
	SourceManual  Source = "manual"
	SourcePattern Source = "pattern"
	SourceHoliday Source = "holiday"
)

// Record is one attendance entry. Date (YYYY-MM-DD, local time zone) is the
// identity field: at most one record per calendar date.
type Record struct {
	Date      string
	Type      Type
	LeaveType *LeaveType
	Source    Source
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DateLayout is the canonical date format for record identity.
const DateLayout = "2006-01-02"
