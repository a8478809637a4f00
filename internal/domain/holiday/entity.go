package holiday

// Holiday is one public holiday entry from the reference calendar.
// Dates are YYYY-MM-DD in the user's local time zone.
type Holiday struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

// Calendar is the full holiday data set, keyed by year. It is read-only
// reference data: loaded once at startup and passed by value into every
// calculation, never fetched or cached by the engine itself.
type Calendar map[int]YearData

// YearData mirrors the shape the reference data is published in: Australia
// carries a national list plus per-state lists, Bangalore a single flat list.
type YearData struct {
	Australia AustralianHolidays `json:"australia"`
	Bangalore []Holiday          `json:"bangalore"`
}

type AustralianHolidays struct {
	National []Holiday            `json:"national"`
	States   map[string][]Holiday `json:"states"`
}

// DayClass is the exclusion classification of a calendar date.
type DayClass string

const (
	ClassWeekend DayClass = "weekend"
	ClassHoliday DayClass = "holiday"

	// ClassNone marks an ordinary working day. Its attendance type must come
	// from an explicit record; there is no silent default to WFH.
	ClassNone DayClass = ""
)
