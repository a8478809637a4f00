package response

import (
	"errors"
	"net/http"

	"github.com/dylanbyc/hi-fifty/internal/domain/attendance"
	"github.com/dylanbyc/hi-fifty/internal/domain/pattern"
	"github.com/dylanbyc/hi-fifty/internal/domain/report"
	"github.com/dylanbyc/hi-fifty/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrDateInFuture):
		BadRequest(w, "Cannot mark attendance for a future date", nil)

	// Pattern domain errors
	case errors.Is(err, pattern.ErrPatternNotFound):
		NotFound(w, "Recurring pattern not found")

	// Report domain errors
	case errors.Is(err, report.ErrInvalidMonthCount):
		BadRequest(w, "months must be between 1 and 24", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
