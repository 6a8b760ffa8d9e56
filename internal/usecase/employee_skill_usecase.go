package usecase

import (
	"context"
	"errors"

	"staffing-engine/internal/domain/employee"
	"staffing-engine/internal/domain/skill"
	"staffing-engine/internal/domain/staffing"
	"staffing-engine/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrSkillNotFound    = errors.New("skill not found")
	ErrGrantNotFound    = errors.New("skill grant not found")
)

type EmployeeSkillUsecase interface {
	ListEmployees(ctx context.Context) ([]employee.Employee, error)
	ListGrants(ctx context.Context, employeeID uuid.UUID) ([]employee.SkillGrant, error)
	Grant(ctx context.Context, employeeID, skillID uuid.UUID, level string, yearsExperience int) (employee.SkillGrant, error)
	Revoke(ctx context.Context, employeeID, skillID uuid.UUID) error
}

type EmployeeSkill struct {
	employees repository.EmployeeRepository
	grants    repository.EmployeeSkillRepository
	skills    repository.SkillRepository
	cache     SuggestionCache
}

func NewEmployeeSkillUsecase(
	employees repository.EmployeeRepository,
	grants repository.EmployeeSkillRepository,
	skills repository.SkillRepository,
	cache SuggestionCache,
) *EmployeeSkill {
	return &EmployeeSkill{employees: employees, grants: grants, skills: skills, cache: cache}
}

func (u *EmployeeSkill) ListEmployees(ctx context.Context) ([]employee.Employee, error) {
	items, err := u.employees.ListActive(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *EmployeeSkill) ListGrants(ctx context.Context, employeeID uuid.UUID) ([]employee.SkillGrant, error) {
	if employeeID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	exists, err := u.employees.ExistsByID(ctx, employeeID)
	if err != nil {
		return nil, ErrInternal
	}
	if !exists {
		return nil, ErrEmployeeNotFound
	}

	items, err := u.grants.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *EmployeeSkill) Grant(ctx context.Context, employeeID, skillID uuid.UUID, level string, yearsExperience int) (employee.SkillGrant, error) {
	if employeeID == uuid.Nil || yearsExperience < 0 {
		return employee.SkillGrant{}, ErrInvalidInput
	}
	if skillID == uuid.Nil {
		return employee.SkillGrant{}, staffing.ErrUnknownSkillReference
	}

	lvl, err := skill.ParseProficiencyLevel(level)
	if err != nil {
		return employee.SkillGrant{}, err
	}

	exists, err := u.employees.ExistsByID(ctx, employeeID)
	if err != nil {
		return employee.SkillGrant{}, ErrInternal
	}
	if !exists {
		return employee.SkillGrant{}, ErrEmployeeNotFound
	}

	skillExists, err := u.skills.SkillExistsByID(ctx, skillID)
	if err != nil {
		return employee.SkillGrant{}, ErrInternal
	}
	if !skillExists {
		return employee.SkillGrant{}, staffing.ErrUnknownSkillReference
	}

	created, err := u.grants.Upsert(ctx, employee.SkillGrant{
		EmployeeID:      employeeID,
		SkillID:         skillID,
		Level:           lvl,
		YearsExperience: yearsExperience,
	})
	if err != nil {
		return employee.SkillGrant{}, ErrInternal
	}

	u.invalidateSuggestions(ctx)
	return created, nil
}

func (u *EmployeeSkill) Revoke(ctx context.Context, employeeID, skillID uuid.UUID) error {
	if employeeID == uuid.Nil || skillID == uuid.Nil {
		return ErrInvalidInput
	}
	if err := u.grants.Delete(ctx, employeeID, skillID); err != nil {
		if errors.Is(err, repository.ErrGrantNotFound) {
			return ErrGrantNotFound
		}
		return ErrInternal
	}

	u.invalidateSuggestions(ctx)
	return nil
}

// Grant mutations change the candidate pool, so cached shortlists for every
// event go stale at once.
func (u *EmployeeSkill) invalidateSuggestions(ctx context.Context) {
	if u.cache == nil {
		return
	}
	_ = u.cache.DeleteByPattern(ctx, suggestionKeyPattern)
}
