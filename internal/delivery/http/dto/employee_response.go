package dto

import (
	"staffing-engine/internal/domain/employee"

	"github.com/google/uuid"
)

type SkillGrantResponse struct {
	ID               uuid.UUID `json:"id"`
	SkillID          uuid.UUID `json:"skill_id"`
	SkillName        string    `json:"skill_name"`
	ProficiencyLevel string    `json:"proficiency_level"`
	YearsExperience  int       `json:"years_experience"`
}

type EmployeeResponse struct {
	ID     uuid.UUID            `json:"id"`
	Name   string               `json:"name"`
	Email  string               `json:"email"`
	Phone  string               `json:"phone,omitempty"`
	Active bool                 `json:"active"`
	Skills []SkillGrantResponse `json:"skills"`
}

func NewSkillGrantResponse(g employee.SkillGrant) SkillGrantResponse {
	return SkillGrantResponse{
		ID:               g.ID,
		SkillID:          g.SkillID,
		SkillName:        g.SkillName,
		ProficiencyLevel: string(g.Level),
		YearsExperience:  g.YearsExperience,
	}
}

func NewEmployeeResponse(e employee.Employee) EmployeeResponse {
	grants := make([]SkillGrantResponse, 0, len(e.Grants))
	for _, g := range e.Grants {
		grants = append(grants, NewSkillGrantResponse(g))
	}
	return EmployeeResponse{
		ID:     e.ID,
		Name:   e.Name,
		Email:  e.Email,
		Phone:  e.Phone,
		Active: e.Active,
		Skills: grants,
	}
}
