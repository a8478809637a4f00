package holiday

import (
	"context"
	"fmt"
	"time"

	"github.com/dylanbyc/hi-fifty/internal/domain/holiday"
	"github.com/dylanbyc/hi-fifty/internal/domain/settings"
)

type HolidayServiceImpl struct {
	holidayRepo  holiday.HolidayRepository
	settingsRepo settings.SettingsRepository
}

func NewHolidayService(holidayRepo holiday.HolidayRepository, settingsRepo settings.SettingsRepository) holiday.HolidayService {
	return &HolidayServiceImpl{
		holidayRepo:  holidayRepo,
		settingsRepo: settingsRepo,
	}
}

// ForMonth implements holiday.HolidayService.
func (s *HolidayServiceImpl) ForMonth(ctx context.Context, year int, month time.Month) ([]holiday.HolidayResponse, error) {
	cal, st, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	hols := ForMonth(cal, year, month, st)
	resp := make([]holiday.HolidayResponse, 0, len(hols))
	for _, h := range hols {
		resp = append(resp, holiday.HolidayResponse{Date: h.Date, Name: h.Name})
	}
	return resp, nil
}

// DayStates implements holiday.HolidayService.
func (s *HolidayServiceImpl) DayStates(ctx context.Context, year int, month time.Month) ([]holiday.DayStateResponse, error) {
	cal, st, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysIn := first.AddDate(0, 1, -1).Day()
	holidaySet := DateSet(cal, year, month, st)

	states := make([]holiday.DayStateResponse, 0, daysIn)
	for d := 1; d <= daysIn; d++ {
		date := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
		class := holiday.ClassNone
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			class = holiday.ClassWeekend
		} else if _, ok := holidaySet[date.Format("2006-01-02")]; ok {
			class = holiday.ClassHoliday
		}
		states = append(states, holiday.DayStateResponse{
			Date:  date.Format("2006-01-02"),
			Class: string(class),
		})
	}
	return states, nil
}

func (s *HolidayServiceImpl) load(ctx context.Context) (holiday.Calendar, settings.UserSettings, error) {
	cal, err := s.holidayRepo.Calendar(ctx)
	if err != nil {
		return nil, settings.UserSettings{}, fmt.Errorf("failed to load holiday calendar: %w", err)
	}
	st, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, settings.UserSettings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	return cal, st, nil
}
