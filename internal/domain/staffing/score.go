package staffing

import (
	"sort"
	"strings"

	"staffing-engine/internal/domain/employee"

	"github.com/google/uuid"
)

const (
	skillMatchPoints      = 20
	experienceBonusPoints = 10

	// ShortlistLimit caps the caller-facing suggestion list.
	ShortlistLimit = 5
)

// DemandEntry is one demanded skill from an event's aggregated product
// demand. SkillID is uuid.Nil for legacy free-text demand entries; those
// match by exact, case-sensitive name instead.
type DemandEntry struct {
	SkillID   uuid.UUID
	SkillName string
}

type CandidateScore struct {
	EmployeeID    uuid.UUID
	EmployeeName  string
	Score         int
	MatchedSkills []string
	Reason        string
}

// ScoreCandidates ranks pool against the demanded skills: 20 points per
// matched skill, +10 for more than five years of experience and +10 more for
// more than ten. Zero-scoring employees never appear in the result. Ordering
// is descending by score with ties kept in input order, so identical inputs
// always rank identically.
//
// The weighting is a deliberately simple, auditable heuristic; coordinators
// must be able to explain every suggestion from the reason string alone.
func ScoreCandidates(demand []DemandEntry, pool []employee.Employee) []CandidateScore {
	scored := make([]CandidateScore, 0, len(pool))

	for _, emp := range pool {
		score := 0
		matched := make([]string, 0, len(demand))
		for _, d := range demand {
			if demandMatches(d, emp) {
				score += skillMatchPoints
				matched = append(matched, d.SkillName)
			}
		}

		years := emp.MaxYearsExperience()
		if years > 5 {
			score += experienceBonusPoints
		}
		if years > 10 {
			score += experienceBonusPoints
		}

		if score == 0 {
			continue
		}

		reason := "Experienced employee"
		if len(matched) > 0 {
			reason = "Skills: " + strings.Join(matched, ", ")
		}

		scored = append(scored, CandidateScore{
			EmployeeID:    emp.ID,
			EmployeeName:  emp.Name,
			Score:         score,
			MatchedSkills: matched,
			Reason:        reason,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// Shortlist truncates a scored ranking to the top ShortlistLimit entries.
func Shortlist(scored []CandidateScore) []CandidateScore {
	if len(scored) <= ShortlistLimit {
		return scored
	}
	return scored[:ShortlistLimit]
}

// demandMatches checks the demand entry against the employee's grants. A
// skill identity match wins when the entry carries one; name equality is the
// documented fallback for free-text demand.
func demandMatches(d DemandEntry, emp employee.Employee) bool {
	if d.SkillID != uuid.Nil {
		_, ok := emp.GrantFor(d.SkillID)
		return ok
	}
	return emp.HoldsSkillNamed(d.SkillName)
}
