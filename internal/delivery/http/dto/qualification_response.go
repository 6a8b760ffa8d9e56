package dto

import (
	"staffing-engine/internal/domain/equipment"
	"staffing-engine/internal/usecase"

	"github.com/google/uuid"
)

type RequirementResponse struct {
	ID                 uuid.UUID `json:"id"`
	EquipmentID        uuid.UUID `json:"equipment_id"`
	SkillID            uuid.UUID `json:"skill_id"`
	SkillName          string    `json:"skill_name"`
	MinimumProficiency string    `json:"minimum_proficiency"`
	IsRequired         bool      `json:"is_required"`
	Notes              string    `json:"notes,omitempty"`
}

type RequirementQualificationResponse struct {
	Requirement RequirementResponse `json:"requirement"`
	Qualified   []EmployeeResponse  `json:"qualified"`
}

type QualificationReportResponse struct {
	EquipmentID  uuid.UUID                          `json:"equipment_id"`
	Requirements []RequirementQualificationResponse `json:"requirements"`
	Operators    []EmployeeResponse                 `json:"operators"`
}

func NewRequirementResponse(r equipment.SkillRequirement) RequirementResponse {
	return RequirementResponse{
		ID:                 r.ID,
		EquipmentID:        r.EquipmentID,
		SkillID:            r.SkillID,
		SkillName:          r.SkillName,
		MinimumProficiency: string(r.MinimumProficiency),
		IsRequired:         r.IsRequired,
		Notes:              r.Notes,
	}
}

func NewQualificationReportResponse(rep usecase.QualificationReport) QualificationReportResponse {
	reqs := make([]RequirementQualificationResponse, 0, len(rep.Requirements))
	for _, rq := range rep.Requirements {
		qualified := make([]EmployeeResponse, 0, len(rq.Qualified))
		for _, e := range rq.Qualified {
			qualified = append(qualified, NewEmployeeResponse(e))
		}
		reqs = append(reqs, RequirementQualificationResponse{
			Requirement: NewRequirementResponse(rq.Requirement),
			Qualified:   qualified,
		})
	}

	operators := make([]EmployeeResponse, 0, len(rep.Operators))
	for _, e := range rep.Operators {
		operators = append(operators, NewEmployeeResponse(e))
	}

	return QualificationReportResponse{
		EquipmentID:  rep.EquipmentID,
		Requirements: reqs,
		Operators:    operators,
	}
}
