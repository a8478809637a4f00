package report

// MonthlyReport is derived data, recomputed on demand and never persisted.
//
// AttendancePercentage uses the elapsed-to-date denominator so a user who
// attended every elapsed working day reads 100% mid-month, while
// DaysNeededForTarget is measured against the full month's working days so
// the shortfall reflects the whole month's obligation.
type MonthlyReport struct {
	Month                     int `json:"month"`
	Year                      int `json:"year"`
	TotalWorkingDays          int `json:"total_working_days"`
	WorkingDaysAvailableSoFar int `json:"working_days_available_so_far"`
	DaysInOffice              int `json:"days_in_office"`
	DaysWFH                   int `json:"days_wfh"`
	DaysLeave                 int `json:"days_leave"`
	AttendancePercentage      int `json:"attendance_percentage"`
	DaysNeededForTarget       int `json:"days_needed_for_target"`
}
