package dto

import (
	"staffing-engine/internal/usecase"

	"github.com/google/uuid"
)

type DemandEntryResponse struct {
	SkillID   *uuid.UUID `json:"skill_id,omitempty"`
	SkillName string     `json:"skill_name"`
}

type CandidateResponse struct {
	EmployeeID    uuid.UUID `json:"employee_id"`
	EmployeeName  string    `json:"employee_name"`
	Score         int       `json:"score"`
	MatchedSkills []string  `json:"matched_skills"`
	Reason        string    `json:"reason"`
}

type EventSuggestionsResponse struct {
	EventID    uuid.UUID             `json:"event_id"`
	Demand     []DemandEntryResponse `json:"demand"`
	Candidates []CandidateResponse   `json:"candidates"`
}

func NewEventSuggestionsResponse(s usecase.EventSuggestions) EventSuggestionsResponse {
	demand := make([]DemandEntryResponse, 0, len(s.Demand))
	for _, d := range s.Demand {
		entry := DemandEntryResponse{SkillName: d.SkillName}
		if d.SkillID != uuid.Nil {
			id := d.SkillID
			entry.SkillID = &id
		}
		demand = append(demand, entry)
	}

	candidates := make([]CandidateResponse, 0, len(s.Candidates))
	for _, c := range s.Candidates {
		matched := c.MatchedSkills
		if matched == nil {
			matched = []string{}
		}
		candidates = append(candidates, CandidateResponse{
			EmployeeID:    c.EmployeeID,
			EmployeeName:  c.EmployeeName,
			Score:         c.Score,
			MatchedSkills: matched,
			Reason:        c.Reason,
		})
	}

	return EventSuggestionsResponse{
		EventID:    s.EventID,
		Demand:     demand,
		Candidates: candidates,
	}
}
