package usecase

import (
	"context"
	"errors"

	"staffing-engine/internal/domain/employee"
	"staffing-engine/internal/domain/equipment"
	"staffing-engine/internal/domain/skill"
	"staffing-engine/internal/domain/staffing"
	"staffing-engine/internal/repository"

	"github.com/google/uuid"
)

var ErrEquipmentNotFound = errors.New("equipment not found")

// RequirementQualification pairs one requirement with the employees who
// satisfy it, so a soft preference with nobody qualified can render as a
// warning rather than a hard rejection.
type RequirementQualification struct {
	Requirement equipment.SkillRequirement
	Qualified   []employee.Employee
}

type QualificationReport struct {
	EquipmentID  uuid.UUID
	Requirements []RequirementQualification
	// Operators satisfy every hard requirement at once.
	Operators []employee.Employee
}

type QualificationUsecase interface {
	ListRequirements(ctx context.Context, equipmentID uuid.UUID) ([]equipment.SkillRequirement, error)
	AddRequirement(ctx context.Context, equipmentID, skillID uuid.UUID, minimum string, isRequired bool, notes string) (equipment.SkillRequirement, error)
	QualifiedForEquipment(ctx context.Context, equipmentID uuid.UUID) (QualificationReport, error)
}

type Qualification struct {
	requirements repository.RequirementRepository
	employees    repository.EmployeeRepository
	skills       repository.SkillRepository
}

func NewQualificationUsecase(
	requirements repository.RequirementRepository,
	employees repository.EmployeeRepository,
	skills repository.SkillRepository,
) *Qualification {
	return &Qualification{requirements: requirements, employees: employees, skills: skills}
}

func (u *Qualification) ListRequirements(ctx context.Context, equipmentID uuid.UUID) ([]equipment.SkillRequirement, error) {
	if equipmentID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	exists, err := u.requirements.EquipmentExistsByID(ctx, equipmentID)
	if err != nil {
		return nil, ErrInternal
	}
	if !exists {
		return nil, ErrEquipmentNotFound
	}

	reqs, err := u.requirements.FindByEquipmentID(ctx, equipmentID)
	if err != nil {
		return nil, ErrInternal
	}
	return reqs, nil
}

func (u *Qualification) AddRequirement(ctx context.Context, equipmentID, skillID uuid.UUID, minimum string, isRequired bool, notes string) (equipment.SkillRequirement, error) {
	if equipmentID == uuid.Nil {
		return equipment.SkillRequirement{}, ErrInvalidInput
	}
	if skillID == uuid.Nil {
		return equipment.SkillRequirement{}, staffing.ErrUnknownSkillReference
	}

	lvl, err := skill.ParseProficiencyLevel(minimum)
	if err != nil {
		return equipment.SkillRequirement{}, err
	}

	exists, err := u.requirements.EquipmentExistsByID(ctx, equipmentID)
	if err != nil {
		return equipment.SkillRequirement{}, ErrInternal
	}
	if !exists {
		return equipment.SkillRequirement{}, ErrEquipmentNotFound
	}

	skillExists, err := u.skills.SkillExistsByID(ctx, skillID)
	if err != nil {
		return equipment.SkillRequirement{}, ErrInternal
	}
	if !skillExists {
		return equipment.SkillRequirement{}, staffing.ErrUnknownSkillReference
	}

	created, err := u.requirements.Create(ctx, equipment.SkillRequirement{
		EquipmentID:        equipmentID,
		SkillID:            skillID,
		MinimumProficiency: lvl,
		IsRequired:         isRequired,
		Notes:              notes,
	})
	if err != nil {
		return equipment.SkillRequirement{}, ErrInternal
	}
	return created, nil
}

// QualifiedForEquipment resolves every requirement against the full active
// pool; the resolver never assumes a pre-filtered list.
func (u *Qualification) QualifiedForEquipment(ctx context.Context, equipmentID uuid.UUID) (QualificationReport, error) {
	reqs, err := u.ListRequirements(ctx, equipmentID)
	if err != nil {
		return QualificationReport{}, err
	}

	pool, err := u.employees.ListActive(ctx)
	if err != nil {
		return QualificationReport{}, ErrInternal
	}

	report := QualificationReport{
		EquipmentID:  equipmentID,
		Requirements: make([]RequirementQualification, 0, len(reqs)),
	}

	for _, req := range reqs {
		qualified, err := staffing.ResolveQualified(req, pool)
		if err != nil {
			return QualificationReport{}, err
		}
		report.Requirements = append(report.Requirements, RequirementQualification{
			Requirement: req,
			Qualified:   qualified,
		})
	}

	operators, err := staffing.ResolveOperators(reqs, pool)
	if err != nil {
		return QualificationReport{}, err
	}
	report.Operators = operators

	return report, nil
}
