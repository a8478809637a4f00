package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dylanbyc/hi-fifty/internal/pkg/validator"
)

func TestMarkDayRequest_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid office day", func(t *testing.T) {
		req := MarkDayRequest{Date: "2024-01-15", Type: "office"}
		assert.NoError(t, req.Validate())
	})

	t.Run("valid leave day", func(t *testing.T) {
		lt := "sick"
		req := MarkDayRequest{Date: "2024-01-15", Type: "leave", LeaveType: &lt}
		assert.NoError(t, req.Validate())
	})

	cases := []struct {
		name  string
		req   MarkDayRequest
		field string
	}{
		{
			name:  "bad date",
			req:   MarkDayRequest{Date: "15-01-2024", Type: "office"},
			field: "date",
		},
		{
			name:  "unknown type",
			req:   MarkDayRequest{Date: "2024-01-15", Type: "remote"},
			field: "type",
		},
		{
			name:  "leave without leave type",
			req:   MarkDayRequest{Date: "2024-01-15", Type: "leave"},
			field: "leave_type",
		},
		{
			name: "unknown leave type",
			req: func() MarkDayRequest {
				lt := "sabbatical"
				return MarkDayRequest{Date: "2024-01-15", Type: "leave", LeaveType: &lt}
			}(),
			field: "leave_type",
		},
		{
			name: "leave type on non-leave day",
			req: func() MarkDayRequest {
				lt := "annual"
				return MarkDayRequest{Date: "2024-01-15", Type: "office", LeaveType: &lt}
			}(),
			field: "leave_type",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.req.Validate()

			var verrs validator.ValidationErrors
			if assert.ErrorAs(t, err, &verrs) {
				assert.Contains(t, verrs.ToMap(), c.field)
			}
		})
	}
}

func TestToResponse(t *testing.T) {
	t.Parallel()

	lt := LeaveAnnual
	rec := Record{Date: "2024-01-15", Type: TypeLeave, LeaveType: &lt, Source: SourceManual}

	resp := ToResponse(rec)

	assert.Equal(t, "2024-01-15", resp.Date)
	assert.Equal(t, "leave", resp.Type)
	assert.Equal(t, "manual", resp.Source)
	if assert.NotNil(t, resp.LeaveType) {
		assert.Equal(t, "annual", *resp.LeaveType)
	}
}
