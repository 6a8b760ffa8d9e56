package usecase

import (
	"context"
	"errors"
	"testing"

	"staffing-engine/internal/domain/employee"
	"staffing-engine/internal/domain/skill"
	"staffing-engine/internal/domain/staffing"
	"staffing-engine/internal/repository"

	"github.com/google/uuid"
)

type mockGrantRepo struct {
	grants  map[uuid.UUID][]employee.SkillGrant
	deleted map[uuid.UUID]bool
	err     error
}

func (m *mockGrantRepo) FindByEmployeeID(_ context.Context, employeeID uuid.UUID) ([]employee.SkillGrant, error) {
	return m.grants[employeeID], m.err
}

func (m *mockGrantRepo) Upsert(_ context.Context, g employee.SkillGrant) (employee.SkillGrant, error) {
	if m.err != nil {
		return employee.SkillGrant{}, m.err
	}
	g.ID = uuid.New()
	if m.grants == nil {
		m.grants = make(map[uuid.UUID][]employee.SkillGrant)
	}
	kept := m.grants[g.EmployeeID][:0]
	for _, existing := range m.grants[g.EmployeeID] {
		if existing.SkillID != g.SkillID {
			kept = append(kept, existing)
		}
	}
	m.grants[g.EmployeeID] = append(kept, g)
	return g, nil
}

func (m *mockGrantRepo) Delete(_ context.Context, employeeID, skillID uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	for _, g := range m.grants[employeeID] {
		if g.SkillID == skillID {
			return nil
		}
	}
	return repository.ErrGrantNotFound
}

func TestEmployeeSkillUsecase_Grant_InvalidLevel(t *testing.T) {
	emp := employee.Employee{ID: uuid.New(), Name: "Dana", Active: true}
	skillID := uuid.New()

	uc := NewEmployeeSkillUsecase(
		mockEmployeeRepo{employees: map[uuid.UUID]employee.Employee{emp.ID: emp}},
		&mockGrantRepo{},
		mockSkillRepo{skills: map[uuid.UUID]skill.Skill{skillID: {ID: skillID}}},
		nil,
	)

	_, err := uc.Grant(context.Background(), emp.ID, skillID, "master", 3)
	if !errors.Is(err, skill.ErrInvalidProficiencyLevel) {
		t.Fatalf("expected ErrInvalidProficiencyLevel, got %v", err)
	}
}

func TestEmployeeSkillUsecase_Grant_UnknownSkill(t *testing.T) {
	emp := employee.Employee{ID: uuid.New(), Name: "Dana", Active: true}

	uc := NewEmployeeSkillUsecase(
		mockEmployeeRepo{employees: map[uuid.UUID]employee.Employee{emp.ID: emp}},
		&mockGrantRepo{},
		mockSkillRepo{skills: map[uuid.UUID]skill.Skill{}},
		nil,
	)

	_, err := uc.Grant(context.Background(), emp.ID, uuid.New(), "basic", 0)
	if !errors.Is(err, staffing.ErrUnknownSkillReference) {
		t.Fatalf("expected ErrUnknownSkillReference, got %v", err)
	}
}

func TestEmployeeSkillUsecase_Grant_UpsertReplacesAndInvalidates(t *testing.T) {
	emp := employee.Employee{ID: uuid.New(), Name: "Dana", Active: true}
	skillID := uuid.New()

	grants := &mockGrantRepo{}
	cache := newFakeSuggestionCache()
	if err := cache.SetJSON(context.Background(), suggestionCacheKey(uuid.New()), EventSuggestions{}, 0); err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	uc := NewEmployeeSkillUsecase(
		mockEmployeeRepo{employees: map[uuid.UUID]employee.Employee{emp.ID: emp}},
		grants,
		mockSkillRepo{skills: map[uuid.UUID]skill.Skill{skillID: {ID: skillID}}},
		cache,
	)

	if _, err := uc.Grant(context.Background(), emp.ID, skillID, "basic", 1); err != nil {
		t.Fatalf("first grant: %v", err)
	}
	updated, err := uc.Grant(context.Background(), emp.ID, skillID, "expert", 6)
	if err != nil {
		t.Fatalf("second grant: %v", err)
	}

	if updated.Level != skill.ProficiencyExpert {
		t.Fatalf("expected expert, got %s", updated.Level)
	}
	if got := len(grants.grants[emp.ID]); got != 1 {
		t.Fatalf("re-granting the same skill should replace, got %d grants", got)
	}
	if len(cache.entries) != 0 {
		t.Fatalf("grant must invalidate cached shortlists")
	}
}

func TestEmployeeSkillUsecase_Revoke_NotFound(t *testing.T) {
	emp := employee.Employee{ID: uuid.New(), Name: "Dana", Active: true}

	uc := NewEmployeeSkillUsecase(
		mockEmployeeRepo{employees: map[uuid.UUID]employee.Employee{emp.ID: emp}},
		&mockGrantRepo{},
		mockSkillRepo{},
		nil,
	)

	if err := uc.Revoke(context.Background(), emp.ID, uuid.New()); !errors.Is(err, ErrGrantNotFound) {
		t.Fatalf("expected ErrGrantNotFound, got %v", err)
	}
}
