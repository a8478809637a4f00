package settings

import (
	"github.com/dylanbyc/hi-fifty/internal/pkg/validator"
)

type UpdateSettingsRequest struct {
	Location         string  `json:"location"`
	State            *string `json:"state,omitempty"`
	TargetPercentage *int    `json:"target_percentage,omitempty"`
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Location, []string{string(LocationAustralia), string(LocationBangalore)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "location",
			Message: "location must be one of: australia, bangalore",
		})
	}

	if r.Location == string(LocationAustralia) {
		if r.State == nil || validator.IsEmpty(*r.State) {
			errs = append(errs, validator.ValidationError{
				Field:   "state",
				Message: "state is required when location is australia",
			})
		} else if !validator.IsInSlice(*r.State, AustralianStates) {
			errs = append(errs, validator.ValidationError{
				Field:   "state",
				Message: "state must be one of: nsw, vic, qld, wa, sa, tas, act, nt",
			})
		}
	}

	if r.TargetPercentage != nil && (*r.TargetPercentage < 0 || *r.TargetPercentage > 100) {
		errs = append(errs, validator.ValidationError{
			Field:   "target_percentage",
			Message: "target_percentage must be between 0 and 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SettingsResponse struct {
	Location         string  `json:"location"`
	State            *string `json:"state,omitempty"`
	TargetPercentage int     `json:"target_percentage"`
}
