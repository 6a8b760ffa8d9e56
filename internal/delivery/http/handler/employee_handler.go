package handler

import (
	"errors"

	"staffing-engine/internal/delivery/http/dto"
	"staffing-engine/internal/delivery/http/middleware"
	"staffing-engine/internal/domain/skill"
	"staffing-engine/internal/domain/staffing"
	"staffing-engine/internal/pkg/response"
	"staffing-engine/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type EmployeeHandler struct {
	uc          usecase.EmployeeSkillUsecase
	assignments usecase.AssignmentUsecase
}

type grantSkillRequest struct {
	SkillID          uuid.UUID `json:"skill_id"`
	ProficiencyLevel string    `json:"proficiency_level"`
	YearsExperience  int       `json:"years_experience"`
}

func NewEmployeeHandler(uc usecase.EmployeeSkillUsecase, assignments usecase.AssignmentUsecase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc, assignments: assignments}
}

func (h *EmployeeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/employees")
	grp.Get("/", h.List)
	grp.Get("/:id/skills", h.ListGrants)
	grp.Post("/:id/skills", h.Grant)
	grp.Delete("/:id/skills/:skillId", h.Revoke)
	grp.Get("/:id/assignments", h.ListAssignments)
}

func (h *EmployeeHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListEmployees(c.Context())
	if err != nil {
		return mapEmployeeUsecaseError(err)
	}

	res := make([]dto.EmployeeResponse, 0, len(items))
	for _, it := range items {
		res = append(res, dto.NewEmployeeResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *EmployeeHandler) ListGrants(c fiber.Ctx) error {
	employeeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid employee id", nil, err)
	}

	items, err := h.uc.ListGrants(c.Context(), employeeID)
	if err != nil {
		return mapEmployeeUsecaseError(err)
	}

	res := make([]dto.SkillGrantResponse, 0, len(items))
	for _, it := range items {
		res = append(res, dto.NewSkillGrantResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *EmployeeHandler) Grant(c fiber.Ctx) error {
	employeeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid employee id", nil, err)
	}

	var req grantSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.Grant(c.Context(), employeeID, req.SkillID, req.ProficiencyLevel, req.YearsExperience)
	if err != nil {
		return mapEmployeeUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, "Skill granted successfully", dto.NewSkillGrantResponse(created))
}

func (h *EmployeeHandler) Revoke(c fiber.Ctx) error {
	employeeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid employee id", nil, err)
	}
	skillID, err := uuid.Parse(c.Params("skillId"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid skill id", nil, err)
	}

	if err := h.uc.Revoke(c.Context(), employeeID, skillID); err != nil {
		return mapEmployeeUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Skill revoked successfully", nil)
}

func (h *EmployeeHandler) ListAssignments(c fiber.Ctx) error {
	employeeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid employee id", nil, err)
	}

	items, err := h.assignments.ListEmployeeAssignments(c.Context(), employeeID)
	if err != nil {
		return mapAssignmentUsecaseError(err)
	}

	res := make([]dto.AssignmentResponse, 0, len(items))
	for _, it := range items {
		res = append(res, dto.NewAssignmentResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func mapEmployeeUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrEmployeeNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Employee not found", nil, err)
	case errors.Is(err, usecase.ErrSkillNotFound), errors.Is(err, staffing.ErrUnknownSkillReference):
		return middleware.NewAppError(fiber.StatusNotFound, "Skill not found", nil, err)
	case errors.Is(err, usecase.ErrGrantNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Skill grant not found", nil, err)
	case errors.Is(err, skill.ErrInvalidProficiencyLevel):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid proficiency level", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
