// Package holidayfile supplies the read-only holiday calendar from a JSON
// file. The data is loaded once at construction and handed to callers by
// value; the calculation engine never fetches or caches it itself.
package holidayfile

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/dylanbyc/hi-fifty/internal/domain/holiday"
)

//go:embed holidays.json
var defaultData []byte

type holidayRepository struct {
	calendar holiday.Calendar
}

// New loads the holiday calendar from path, or from the embedded default
// data set when path is empty.
func New(path string) (holiday.HolidayRepository, error) {
	data := defaultData
	source := "embedded"

	if path != "" {
		fileData, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read holiday data file: %w", err)
		}
		data = fileData
		source = path
	}

	var raw map[string]holiday.YearData
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse holiday data: %w", err)
	}

	cal := make(holiday.Calendar, len(raw))
	for yearStr, yearData := range raw {
		var year int
		if _, err := fmt.Sscanf(yearStr, "%d", &year); err != nil {
			slog.Warn("Skipping holiday data entry with non-numeric year", "year", yearStr)
			continue
		}
		cal[year] = yearData
	}

	slog.Info("Holiday calendar loaded", "source", source, "years", len(cal))

	return &holidayRepository{calendar: cal}, nil
}

// Calendar implements holiday.HolidayRepository.
func (r *holidayRepository) Calendar(ctx context.Context) (holiday.Calendar, error) {
	return r.calendar, nil
}
