package pattern

import "errors"

var (
	ErrPatternNotFound = errors.New("recurring pattern not found")
)
