package staffing

import (
	"errors"

	"staffing-engine/internal/domain/employee"
	"staffing-engine/internal/domain/equipment"
	"staffing-engine/internal/domain/skill"

	"github.com/google/uuid"
)

var ErrUnknownSkillReference = errors.New("unknown skill reference")

// ResolveQualified returns the employees from pool whose grant for the
// requirement's skill meets the minimum proficiency. An employee without a
// grant for the skill is a non-match, not an error. The result preserves
// pool order; the function is pure over its arguments.
//
// IsRequired does not change the test here; required-ness only affects how
// callers treat an empty result.
func ResolveQualified(req equipment.SkillRequirement, pool []employee.Employee) ([]employee.Employee, error) {
	if req.SkillID == uuid.Nil {
		return nil, ErrUnknownSkillReference
	}
	if !req.MinimumProficiency.Valid() {
		return nil, skill.ErrInvalidProficiencyLevel
	}

	qualified := make([]employee.Employee, 0, len(pool))
	for _, emp := range pool {
		grant, ok := emp.GrantFor(req.SkillID)
		if !ok {
			continue
		}
		meets, err := grant.Level.Meets(req.MinimumProficiency)
		if err != nil {
			return nil, err
		}
		if meets {
			qualified = append(qualified, emp)
		}
	}
	return qualified, nil
}

// ResolveOperators intersects ResolveQualified over every hard requirement:
// an operator must satisfy all IsRequired requirements at once. Soft
// preferences never shrink the operator set.
func ResolveOperators(reqs []equipment.SkillRequirement, pool []employee.Employee) ([]employee.Employee, error) {
	operators := pool
	for _, req := range reqs {
		if !req.IsRequired {
			continue
		}
		var err error
		operators, err = ResolveQualified(req, operators)
		if err != nil {
			return nil, err
		}
		if len(operators) == 0 {
			break
		}
	}
	out := make([]employee.Employee, len(operators))
	copy(out, operators)
	return out, nil
}
