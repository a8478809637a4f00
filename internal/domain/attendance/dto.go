package attendance

import (
	"github.com/dylanbyc/hi-fifty/internal/pkg/validator"
)

type MarkDayRequest struct {
	Date      string  `json:"-"` // from URL path
	Type      string  `json:"type"`
	LeaveType *string `json:"leave_type,omitempty"`
}

func (r *MarkDayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	validTypes := []string{
		string(TypeOffice), string(TypeWFH), string(TypeLeave),
		string(TypeHoliday), string(TypeWeekend),
	}
	if !validator.IsInSlice(r.Type, validTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: office, wfh, leave, holiday, weekend",
		})
	}

	if r.Type == string(TypeLeave) {
		if r.LeaveType == nil || validator.IsEmpty(*r.LeaveType) {
			errs = append(errs, validator.ValidationError{
				Field:   "leave_type",
				Message: "leave_type is required when type is leave",
			})
		} else if !validator.IsInSlice(*r.LeaveType, []string{
			string(LeaveAnnual), string(LeaveSick), string(LeaveOther),
		}) {
			errs = append(errs, validator.ValidationError{
				Field:   "leave_type",
				Message: "leave_type must be one of: annual, sick, other",
			})
		}
	} else if r.LeaveType != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type is only allowed when type is leave",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecordResponse struct {
	Date      string  `json:"date"`
	Type      string  `json:"type"`
	LeaveType *string `json:"leave_type,omitempty"`
	Source    string  `json:"source"`
}

func ToResponse(rec Record) RecordResponse {
	resp := RecordResponse{
		Date:   rec.Date,
		Type:   string(rec.Type),
		Source: string(rec.Source),
	}
	if rec.LeaveType != nil {
		lt := string(*rec.LeaveType)
		resp.LeaveType = &lt
	}
	return resp
}
