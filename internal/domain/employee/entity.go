package employee

import (
	"time"

	"staffing-engine/internal/domain/skill"

	"github.com/google/uuid"
)

// SkillGrant records that an employee holds a skill at a given proficiency.
// An employee holds at most one grant per skill; the latest grant wins.
type SkillGrant struct {
	ID              uuid.UUID
	EmployeeID      uuid.UUID
	SkillID         uuid.UUID
	SkillName       string
	Level           skill.ProficiencyLevel
	YearsExperience int
	CreatedAt       time.Time
}

type Employee struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	Active    bool
	Grants    []SkillGrant
	CreatedAt time.Time
}

// GrantFor returns the employee's grant for the given skill, if any.
func (e Employee) GrantFor(skillID uuid.UUID) (SkillGrant, bool) {
	for _, g := range e.Grants {
		if g.SkillID == skillID {
			return g, true
		}
	}
	return SkillGrant{}, false
}

// HoldsSkillNamed reports whether the employee holds a skill with the exact
// given name. Matching is case-sensitive.
func (e Employee) HoldsSkillNamed(name string) bool {
	for _, g := range e.Grants {
		if g.SkillName == name {
			return true
		}
	}
	return false
}

// MaxYearsExperience is the employee's deepest experience figure across all
// held skills. Grants carry years per skill; scoring treats the maximum as
// the employee-level number.
func (e Employee) MaxYearsExperience() int {
	years := 0
	for _, g := range e.Grants {
		if g.YearsExperience > years {
			years = g.YearsExperience
		}
	}
	return years
}
