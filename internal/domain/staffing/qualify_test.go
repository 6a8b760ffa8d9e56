package staffing

import (
	"errors"
	"reflect"
	"testing"

	"staffing-engine/internal/domain/employee"
	"staffing-engine/internal/domain/equipment"
	"staffing-engine/internal/domain/skill"

	"github.com/google/uuid"
)

func testEmployee(name string, grants ...employee.SkillGrant) employee.Employee {
	return employee.Employee{ID: uuid.New(), Name: name, Active: true, Grants: grants}
}

func grant(skillID uuid.UUID, skillName string, level skill.ProficiencyLevel, years int) employee.SkillGrant {
	return employee.SkillGrant{ID: uuid.New(), SkillID: skillID, SkillName: skillName, Level: level, YearsExperience: years}
}

func TestResolveQualified_NoGrantIsNonMatch(t *testing.T) {
	rigging := uuid.New()
	audio := uuid.New()

	pool := []employee.Employee{
		testEmployee("Asta", grant(audio, "Audio", skill.ProficiencyExpert, 8)),
	}
	req := equipment.SkillRequirement{SkillID: rigging, SkillName: "Rigging", MinimumProficiency: skill.ProficiencyBasic}

	got, err := ResolveQualified(req, pool)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no qualified employees, got %d", len(got))
	}

	// Soft preference uses the same test.
	req.IsRequired = false
	got, err = ResolveQualified(req, pool)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no qualified employees for soft requirement, got %d", len(got))
	}
}

func TestResolveQualified_MinimumProficiencyGate(t *testing.T) {
	rigging := uuid.New()
	pool := []employee.Employee{
		testEmployee("Basic", grant(rigging, "Rigging", skill.ProficiencyBasic, 1)),
		testEmployee("Advanced", grant(rigging, "Rigging", skill.ProficiencyAdvanced, 4)),
		testEmployee("Expert", grant(rigging, "Rigging", skill.ProficiencyExpert, 12)),
	}
	req := equipment.SkillRequirement{SkillID: rigging, SkillName: "Rigging", MinimumProficiency: skill.ProficiencyAdvanced, IsRequired: true}

	got, err := ResolveQualified(req, pool)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 qualified, got %d", len(got))
	}
	if got[0].Name != "Advanced" || got[1].Name != "Expert" {
		t.Fatalf("expected pool order preserved, got %s, %s", got[0].Name, got[1].Name)
	}
}

func TestResolveQualified_UnknownSkillReference(t *testing.T) {
	req := equipment.SkillRequirement{SkillID: uuid.Nil, MinimumProficiency: skill.ProficiencyBasic}
	if _, err := ResolveQualified(req, nil); !errors.Is(err, ErrUnknownSkillReference) {
		t.Fatalf("expected ErrUnknownSkillReference, got %v", err)
	}
}

func TestResolveQualified_InvalidMinimumProficiency(t *testing.T) {
	req := equipment.SkillRequirement{SkillID: uuid.New(), MinimumProficiency: "ninja"}
	if _, err := ResolveQualified(req, nil); !errors.Is(err, skill.ErrInvalidProficiencyLevel) {
		t.Fatalf("expected ErrInvalidProficiencyLevel, got %v", err)
	}
}

func TestResolveQualified_MalformedGrantLevel(t *testing.T) {
	rigging := uuid.New()
	pool := []employee.Employee{
		testEmployee("Broken", grant(rigging, "Rigging", "legendary", 3)),
	}
	req := equipment.SkillRequirement{SkillID: rigging, MinimumProficiency: skill.ProficiencyBasic}
	if _, err := ResolveQualified(req, pool); !errors.Is(err, skill.ErrInvalidProficiencyLevel) {
		t.Fatalf("expected ErrInvalidProficiencyLevel, got %v", err)
	}
}

func TestResolveQualified_Idempotent(t *testing.T) {
	rigging := uuid.New()
	pool := []employee.Employee{
		testEmployee("A", grant(rigging, "Rigging", skill.ProficiencyExpert, 6)),
		testEmployee("B", grant(rigging, "Rigging", skill.ProficiencyIntermediate, 2)),
		testEmployee("C", grant(rigging, "Rigging", skill.ProficiencyAdvanced, 9)),
	}
	req := equipment.SkillRequirement{SkillID: rigging, MinimumProficiency: skill.ProficiencyIntermediate}

	first, err := ResolveQualified(req, pool)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	second, err := ResolveQualified(req, pool)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical output on identical input")
	}
}

func TestResolveOperators_IntersectsHardRequirements(t *testing.T) {
	rigging := uuid.New()
	forklift := uuid.New()
	audio := uuid.New()

	both := testEmployee("Both",
		grant(rigging, "Rigging", skill.ProficiencyAdvanced, 7),
		grant(forklift, "Forklift Operation", skill.ProficiencyIntermediate, 3),
	)
	riggerOnly := testEmployee("RiggerOnly", grant(rigging, "Rigging", skill.ProficiencyExpert, 10))
	pool := []employee.Employee{both, riggerOnly}

	reqs := []equipment.SkillRequirement{
		{SkillID: rigging, SkillName: "Rigging", MinimumProficiency: skill.ProficiencyIntermediate, IsRequired: true},
		{SkillID: forklift, SkillName: "Forklift Operation", MinimumProficiency: skill.ProficiencyIntermediate, IsRequired: true},
		// Soft preference must not shrink the operator set.
		{SkillID: audio, SkillName: "Audio", MinimumProficiency: skill.ProficiencyExpert, IsRequired: false},
	}

	got, err := ResolveOperators(reqs, pool)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Both" {
		t.Fatalf("expected only the fully qualified employee, got %d", len(got))
	}
}

func TestResolveOperators_NoHardRequirements(t *testing.T) {
	pool := []employee.Employee{testEmployee("Anyone")}
	got, err := ResolveOperators(nil, pool)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected full pool when nothing is required, got %d", len(got))
	}
}
