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

type AssignmentHandler struct {
	uc usecase.AssignmentUsecase
}

type createAssignmentsRequest struct {
	EmployeeID uuid.UUID   `json:"employee_id"`
	Role       string      `json:"role"`
	PhaseIDs   []uuid.UUID `json:"phase_ids"`
}

func NewAssignmentHandler(uc usecase.AssignmentUsecase) *AssignmentHandler {
	return &AssignmentHandler{uc: uc}
}

func (h *AssignmentHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/assignments", h.Create)
}

// Create fans one employee out over the requested phases. The call succeeds
// even when individual phases fail; each phase reports its own outcome.
func (h *AssignmentHandler) Create(c fiber.Ctx) error {
	var req createAssignmentsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	results, err := h.uc.AssignToPhases(c.Context(), req.EmployeeID, req.Role, req.PhaseIDs)
	if err != nil {
		return mapAssignmentUsecaseError(err)
	}

	res := make([]dto.PhaseAssignmentResultResponse, 0, len(results))
	for _, r := range results {
		res = append(res, dto.NewPhaseAssignmentResultResponse(r))
	}
	return response.Success(c, fiber.StatusOK, "Assignment processed", res)
}

func mapAssignmentUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrEmployeeNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Employee not found", nil, err)
	case errors.Is(err, usecase.ErrEventNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Event not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
