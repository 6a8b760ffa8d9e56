package handler

import (
	"errors"

	"staffing-engine/internal/delivery/http/dto"
	"staffing-engine/internal/delivery/http/middleware"
	"staffing-engine/internal/pkg/response"
	"staffing-engine/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type EventHandler struct {
	suggestions usecase.SuggestionUsecase
	assignments usecase.AssignmentUsecase
}

func NewEventHandler(suggestions usecase.SuggestionUsecase, assignments usecase.AssignmentUsecase) *EventHandler {
	return &EventHandler{suggestions: suggestions, assignments: assignments}
}

func (h *EventHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/events")
	grp.Get("/:id/phases", h.ListPhases)
	grp.Get("/:id/suggestions", h.Suggestions)
}

func (h *EventHandler) ListPhases(c fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid event id", nil, err)
	}

	items, err := h.assignments.ListEventPhases(c.Context(), eventID)
	if err != nil {
		return mapEventUsecaseError(err)
	}

	res := make([]dto.PhaseResponse, 0, len(items))
	for _, it := range items {
		res = append(res, dto.NewPhaseResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *EventHandler) Suggestions(c fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid event id", nil, err)
	}

	suggestions, err := h.suggestions.SuggestForEvent(c.Context(), eventID)
	if err != nil {
		return mapEventUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewEventSuggestionsResponse(suggestions))
}

func mapEventUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrEventNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Event not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
