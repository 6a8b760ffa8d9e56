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

type EquipmentHandler struct {
	uc usecase.QualificationUsecase
}

type createRequirementRequest struct {
	SkillID            uuid.UUID `json:"skill_id"`
	MinimumProficiency string    `json:"minimum_proficiency"`
	IsRequired         bool      `json:"is_required"`
	Notes              string    `json:"notes"`
}

func NewEquipmentHandler(uc usecase.QualificationUsecase) *EquipmentHandler {
	return &EquipmentHandler{uc: uc}
}

func (h *EquipmentHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/equipment")
	grp.Get("/:id/requirements", h.ListRequirements)
	grp.Post("/:id/requirements", h.CreateRequirement)
	grp.Get("/:id/qualified", h.Qualified)
}

func (h *EquipmentHandler) ListRequirements(c fiber.Ctx) error {
	equipmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid equipment id", nil, err)
	}

	items, err := h.uc.ListRequirements(c.Context(), equipmentID)
	if err != nil {
		return mapQualificationUsecaseError(err)
	}

	res := make([]dto.RequirementResponse, 0, len(items))
	for _, it := range items {
		res = append(res, dto.NewRequirementResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *EquipmentHandler) CreateRequirement(c fiber.Ctx) error {
	equipmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid equipment id", nil, err)
	}

	var req createRequirementRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.AddRequirement(c.Context(), equipmentID, req.SkillID, req.MinimumProficiency, req.IsRequired, req.Notes)
	if err != nil {
		return mapQualificationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, "Requirement created successfully", dto.NewRequirementResponse(created))
}

func (h *EquipmentHandler) Qualified(c fiber.Ctx) error {
	equipmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid equipment id", nil, err)
	}

	report, err := h.uc.QualifiedForEquipment(c.Context(), equipmentID)
	if err != nil {
		return mapQualificationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewQualificationReportResponse(report))
}

func mapQualificationUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrEquipmentNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Equipment not found", nil, err)
	case errors.Is(err, usecase.ErrSkillNotFound), errors.Is(err, staffing.ErrUnknownSkillReference):
		return middleware.NewAppError(fiber.StatusNotFound, "Skill not found", nil, err)
	case errors.Is(err, skill.ErrInvalidProficiencyLevel):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid proficiency level", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
