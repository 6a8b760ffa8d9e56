package usecase

import (
	"context"
	"errors"
	"testing"

	"staffing-engine/internal/domain/employee"
	"staffing-engine/internal/domain/equipment"
	"staffing-engine/internal/domain/skill"

	"github.com/google/uuid"
)

type mockRequirementRepo struct {
	requirements map[uuid.UUID][]equipment.SkillRequirement
	err          error
}

func (m mockRequirementRepo) FindByEquipmentID(_ context.Context, equipmentID uuid.UUID) ([]equipment.SkillRequirement, error) {
	return m.requirements[equipmentID], m.err
}

func (m mockRequirementRepo) Create(_ context.Context, req equipment.SkillRequirement) (equipment.SkillRequirement, error) {
	if m.err != nil {
		return equipment.SkillRequirement{}, m.err
	}
	req.ID = uuid.New()
	return req, nil
}

func (m mockRequirementRepo) EquipmentExistsByID(_ context.Context, equipmentID uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.requirements[equipmentID]
	return ok, nil
}

type mockSkillRepo struct {
	skills map[uuid.UUID]skill.Skill
	err    error
}

func (m mockSkillRepo) GetAllSkills(context.Context) ([]skill.Skill, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]skill.Skill, 0, len(m.skills))
	for _, s := range m.skills {
		out = append(out, s)
	}
	return out, nil
}

func (m mockSkillRepo) GetSkillByID(_ context.Context, id uuid.UUID) (skill.Skill, error) {
	s, ok := m.skills[id]
	if !ok {
		return skill.Skill{}, errors.New("not found")
	}
	return s, nil
}

func (m mockSkillRepo) SkillExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.skills[id]
	return ok, nil
}

func (m mockSkillRepo) CreateSkill(_ context.Context, s skill.Skill) (skill.Skill, error) {
	if m.err != nil {
		return skill.Skill{}, m.err
	}
	s.ID = uuid.New()
	return s, nil
}

func (m mockSkillRepo) ListCategories(context.Context) ([]skill.Category, error) {
	return nil, m.err
}

func (m mockSkillRepo) CreateCategory(_ context.Context, c skill.Category) (skill.Category, error) {
	if m.err != nil {
		return skill.Category{}, m.err
	}
	c.ID = uuid.New()
	return c, nil
}

func TestQualificationUsecase_QualifiedForEquipment_EquipmentNotFound(t *testing.T) {
	uc := NewQualificationUsecase(
		mockRequirementRepo{requirements: map[uuid.UUID][]equipment.SkillRequirement{}},
		mockEmployeeRepo{},
		mockSkillRepo{},
	)

	_, err := uc.QualifiedForEquipment(context.Background(), uuid.New())
	if !errors.Is(err, ErrEquipmentNotFound) {
		t.Fatalf("expected ErrEquipmentNotFound, got %v", err)
	}
}

func TestQualificationUsecase_QualifiedForEquipment_Report(t *testing.T) {
	equipmentID := uuid.New()
	forkliftID := uuid.New()
	riggingID := uuid.New()

	hard := equipment.SkillRequirement{
		ID: uuid.New(), EquipmentID: equipmentID, SkillID: forkliftID,
		SkillName: "Forklift Operation", MinimumProficiency: skill.ProficiencyAdvanced, IsRequired: true,
	}
	soft := equipment.SkillRequirement{
		ID: uuid.New(), EquipmentID: equipmentID, SkillID: riggingID,
		SkillName: "Rigging", MinimumProficiency: skill.ProficiencyBasic, IsRequired: false,
	}

	operator := employee.Employee{
		ID: uuid.New(), Name: "Alex", Active: true,
		Grants: []employee.SkillGrant{{SkillID: forkliftID, SkillName: "Forklift Operation", Level: skill.ProficiencyExpert}},
	}
	rigger := employee.Employee{
		ID: uuid.New(), Name: "Blake", Active: true,
		Grants: []employee.SkillGrant{{SkillID: riggingID, SkillName: "Rigging", Level: skill.ProficiencyBasic}},
	}

	uc := NewQualificationUsecase(
		mockRequirementRepo{requirements: map[uuid.UUID][]equipment.SkillRequirement{
			equipmentID: {hard, soft},
		}},
		mockEmployeeRepo{active: []employee.Employee{operator, rigger}},
		mockSkillRepo{},
	)

	report, err := uc.QualifiedForEquipment(context.Background(), equipmentID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(report.Requirements) != 2 {
		t.Fatalf("expected 2 requirement entries, got %d", len(report.Requirements))
	}

	if len(report.Requirements[0].Qualified) != 1 || report.Requirements[0].Qualified[0].ID != operator.ID {
		t.Fatalf("hard requirement: expected only Alex, got %+v", report.Requirements[0].Qualified)
	}
	if len(report.Requirements[1].Qualified) != 1 || report.Requirements[1].Qualified[0].ID != rigger.ID {
		t.Fatalf("soft requirement: expected only Blake, got %+v", report.Requirements[1].Qualified)
	}

	// Operators must clear every hard requirement; the soft one never gates.
	if len(report.Operators) != 1 || report.Operators[0].ID != operator.ID {
		t.Fatalf("expected Alex as sole operator, got %+v", report.Operators)
	}
}

func TestQualificationUsecase_AddRequirement_InvalidLevel(t *testing.T) {
	equipmentID := uuid.New()
	skillID := uuid.New()

	uc := NewQualificationUsecase(
		mockRequirementRepo{requirements: map[uuid.UUID][]equipment.SkillRequirement{equipmentID: {}}},
		mockEmployeeRepo{},
		mockSkillRepo{skills: map[uuid.UUID]skill.Skill{skillID: {ID: skillID, Name: "Rigging"}}},
	)

	_, err := uc.AddRequirement(context.Background(), equipmentID, skillID, "virtuoso", true, "")
	if !errors.Is(err, skill.ErrInvalidProficiencyLevel) {
		t.Fatalf("expected ErrInvalidProficiencyLevel, got %v", err)
	}
}
