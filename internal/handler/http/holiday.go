package http

import (
	"net/http"

	"github.com/dylanbyc/hi-fifty/internal/domain/holiday"
	"github.com/dylanbyc/hi-fifty/internal/handler/http/response"
)

type HolidayHandler interface {
	ForMonth(w http.ResponseWriter, r *http.Request)
	DayStates(w http.ResponseWriter, r *http.Request)
}

type holidayHandlerImpl struct {
	holidayService holiday.HolidayService
}

func NewHolidayHandler(holidayService holiday.HolidayService) HolidayHandler {
	return &holidayHandlerImpl{
		holidayService: holidayService,
	}
}

// ForMonth implements HolidayHandler.
func (h *holidayHandlerImpl) ForMonth(w http.ResponseWriter, r *http.Request) {
	year, month, ok := yearMonthParams(w, r)
	if !ok {
		return
	}

	result, err := h.holidayService.ForMonth(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DayStates implements HolidayHandler.
func (h *holidayHandlerImpl) DayStates(w http.ResponseWriter, r *http.Request) {
	year, month, ok := yearMonthParams(w, r)
	if !ok {
		return
	}

	result, err := h.holidayService.DayStates(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
