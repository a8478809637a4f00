package pattern

import (
	"github.com/dylanbyc/hi-fifty/internal/domain/attendance"
	"github.com/dylanbyc/hi-fifty/internal/pkg/validator"
)

type CreatePatternRequest struct {
	Name           string  `json:"name"`
	DaysOfWeek     []int   `json:"days_of_week"`
	AttendanceType string  `json:"attendance_type"`
	StartDate      string  `json:"start_date"`
	EndDate        *string `json:"end_date,omitempty"`
	LeaveType      *string `json:"leave_type,omitempty"`
	Enabled        *bool   `json:"enabled,omitempty"` // defaults to true
}

func (r *CreatePatternRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(r.DaysOfWeek) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "days_of_week",
			Message: "at least one weekday is required",
		})
	}
	for _, d := range r.DaysOfWeek {
		if d < 0 || d > 6 {
			errs = append(errs, validator.ValidationError{
				Field:   "days_of_week",
				Message: "weekdays must be between 0 (Sunday) and 6 (Saturday)",
			})
			break
		}
	}

	validTypes := []string{
		string(attendance.TypeOffice), string(attendance.TypeWFH), string(attendance.TypeLeave),
	}
	if !validator.IsInSlice(r.AttendanceType, validTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "attendance_type",
			Message: "attendance_type must be one of: office, wfh, leave",
		})
	}

	if r.AttendanceType == string(attendance.TypeLeave) {
		if r.LeaveType == nil || validator.IsEmpty(*r.LeaveType) {
			errs = append(errs, validator.ValidationError{
				Field:   "leave_type",
				Message: "leave_type is required when attendance_type is leave",
			})
		} else if !validator.IsInSlice(*r.LeaveType, []string{
			string(attendance.LeaveAnnual), string(attendance.LeaveSick), string(attendance.LeaveOther),
		}) {
			errs = append(errs, validator.ValidationError{
				Field:   "leave_type",
				Message: "leave_type must be one of: annual, sick, other",
			})
		}
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if r.EndDate != nil && *r.EndDate != "" {
		end, endOK := validator.IsValidDate(*r.EndDate)
		if !endOK {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		} else if startOK && end.Before(start) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must not be before start_date",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdatePatternRequest struct {
	ID             string  `json:"-"`
	Name           *string `json:"name,omitempty"`
	DaysOfWeek     []int   `json:"days_of_week,omitempty"`
	AttendanceType *string `json:"attendance_type,omitempty"`
	StartDate      *string `json:"start_date,omitempty"`
	EndDate        *string `json:"end_date,omitempty"`
	LeaveType      *string `json:"leave_type,omitempty"`
	Enabled        *bool   `json:"enabled,omitempty"`
}

func (r *UpdatePatternRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	for _, d := range r.DaysOfWeek {
		if d < 0 || d > 6 {
			errs = append(errs, validator.ValidationError{
				Field:   "days_of_week",
				Message: "weekdays must be between 0 (Sunday) and 6 (Saturday)",
			})
			break
		}
	}

	if r.AttendanceType != nil && !validator.IsInSlice(*r.AttendanceType, []string{
		string(attendance.TypeOffice), string(attendance.TypeWFH), string(attendance.TypeLeave),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "attendance_type",
			Message: "attendance_type must be one of: office, wfh, leave",
		})
	}

	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.EndDate != nil && *r.EndDate != "" {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.LeaveType != nil && !validator.IsInSlice(*r.LeaveType, []string{
		string(attendance.LeaveAnnual), string(attendance.LeaveSick), string(attendance.LeaveOther),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of: annual, sick, other",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ApplyPatternsRequest materializes all enabled patterns over a date range.
type ApplyPatternsRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *ApplyPatternsRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	} else if startOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PatternResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	DaysOfWeek     []int   `json:"days_of_week"`
	AttendanceType string  `json:"attendance_type"`
	StartDate      string  `json:"start_date"`
	EndDate        *string `json:"end_date,omitempty"`
	LeaveType      *string `json:"leave_type,omitempty"`
	Enabled        bool    `json:"enabled"`
}

type ApplyPatternsResponse struct {
	Generated int        `json:"generated"`
	Inserted  int        `json:"inserted"`
	Skipped   int        `json:"skipped"`
	Conflicts []Conflict `json:"conflicts,omitempty"`
}

func ToResponse(p RecurringPattern) PatternResponse {
	resp := PatternResponse{
		ID:             p.ID,
		Name:           p.Name,
		DaysOfWeek:     p.DaysOfWeek,
		AttendanceType: string(p.AttendanceType),
		StartDate:      p.StartDate,
		EndDate:        p.EndDate,
		Enabled:        p.Enabled,
	}
	if p.LeaveType != nil {
		lt := string(*p.LeaveType)
		resp.LeaveType = &lt
	}
	return resp
}
