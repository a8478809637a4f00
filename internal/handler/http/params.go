package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dylanbyc/hi-fifty/internal/handler/http/response"
	"github.com/dylanbyc/hi-fifty/internal/pkg/validator"
)

// yearMonthParams parses the required year and month query parameters,
// defaulting to the current month when both are absent. Writes the error
// response itself and returns ok=false on invalid input.
func yearMonthParams(w http.ResponseWriter, r *http.Request) (int, time.Month, bool) {
	yearStr := r.URL.Query().Get("year")
	monthStr := r.URL.Query().Get("month")

	if yearStr == "" && monthStr == "" {
		now := time.Now()
		return now.Year(), now.Month(), true
	}

	year, errY := strconv.Atoi(yearStr)
	month, errM := strconv.Atoi(monthStr)
	if errY != nil || errM != nil || !validator.IsValidYearMonth(year, month) {
		response.BadRequest(w, "year and month must form a valid calendar month", nil)
		return 0, 0, false
	}

	return year, time.Month(month), true
}
