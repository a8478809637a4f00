package holiday

type HolidayResponse struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

// DayStateResponse is one calendar day with its exclusion classification,
// used by the calendar view to grey out weekends and holidays.
type DayStateResponse struct {
	Date  string `json:"date"`
	Class string `json:"class"` // "weekend", "holiday", or "" for a working day
}
