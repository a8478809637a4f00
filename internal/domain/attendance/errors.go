package attendance

import "errors"

// Attendance domain errors
var (
	ErrRecordNotFound = errors.New("attendance record not found")
	ErrDateInFuture   = errors.New("cannot mark attendance for a future date")
)
