package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dylanbyc/hi-fifty/internal/domain/pattern"
	"github.com/dylanbyc/hi-fifty/internal/handler/http/response"
	"github.com/dylanbyc/hi-fifty/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type PatternHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Apply(w http.ResponseWriter, r *http.Request)
}

type patternHandlerImpl struct {
	patternService pattern.PatternService
}

func NewPatternHandler(patternService pattern.PatternService) PatternHandler {
	return &patternHandlerImpl{
		patternService: patternService,
	}
}

// Create implements PatternHandler.
func (h *patternHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req pattern.CreatePatternRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode create pattern request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.patternService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Pattern created", result)
}

// patternID extracts and validates the {id} URL parameter. Writes the
// error response itself and returns ok=false on a malformed id.
func patternID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.ValidationError(w, map[string]string{"id": "id must be a valid UUID"})
		return "", false
	}
	return id, true
}

// Get implements PatternHandler.
func (h *patternHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := patternID(w, r)
	if !ok {
		return
	}

	result, err := h.patternService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements PatternHandler.
func (h *patternHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.patternService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements PatternHandler.
func (h *patternHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req pattern.UpdatePatternRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode update pattern request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	id, ok := patternID(w, r)
	if !ok {
		return
	}
	req.ID = id

	result, err := h.patternService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Pattern updated", result)
}

// Delete implements PatternHandler.
func (h *patternHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := patternID(w, r)
	if !ok {
		return
	}

	if err := h.patternService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Pattern deleted", nil)
}

// Apply implements PatternHandler.
func (h *patternHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	var req pattern.ApplyPatternsRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode apply patterns request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.patternService.Apply(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Patterns applied", result)
}
