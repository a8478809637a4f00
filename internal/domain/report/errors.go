package report

import "errors"

var (
	ErrInvalidMonthCount = errors.New("months must be between 1 and 24")
)
