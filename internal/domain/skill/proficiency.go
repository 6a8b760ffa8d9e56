package skill

import "errors"

// ProficiencyLevel is the ordinal mastery scale. Exactly four levels exist;
// comparisons go through Rank, never through string ordering.
type ProficiencyLevel string

const (
	ProficiencyBasic        ProficiencyLevel = "basic"
	ProficiencyIntermediate ProficiencyLevel = "intermediate"
	ProficiencyAdvanced     ProficiencyLevel = "advanced"
	ProficiencyExpert       ProficiencyLevel = "expert"
)

var ErrInvalidProficiencyLevel = errors.New("invalid proficiency level")

var proficiencyRanks = map[ProficiencyLevel]int{
	ProficiencyBasic:        0,
	ProficiencyIntermediate: 1,
	ProficiencyAdvanced:     2,
	ProficiencyExpert:       3,
}

// Rank maps the level to its ordinal index 0..3. An unmapped value is a
// hard error; coercing it to a default would silently mis-qualify staff.
func (p ProficiencyLevel) Rank() (int, error) {
	r, ok := proficiencyRanks[p]
	if !ok {
		return 0, ErrInvalidProficiencyLevel
	}
	return r, nil
}

func (p ProficiencyLevel) Valid() bool {
	_, ok := proficiencyRanks[p]
	return ok
}

// Meets reports whether p satisfies the given minimum level.
func (p ProficiencyLevel) Meets(minimum ProficiencyLevel) (bool, error) {
	pr, err := p.Rank()
	if err != nil {
		return false, err
	}
	mr, err := minimum.Rank()
	if err != nil {
		return false, err
	}
	return pr >= mr, nil
}

func ParseProficiencyLevel(s string) (ProficiencyLevel, error) {
	p := ProficiencyLevel(s)
	if !p.Valid() {
		return "", ErrInvalidProficiencyLevel
	}
	return p, nil
}
