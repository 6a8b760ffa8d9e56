package dto

import (
	"time"

	"staffing-engine/internal/domain/event"
	"staffing-engine/internal/usecase"

	"github.com/google/uuid"
)

type PhaseResponse struct {
	ID        uuid.UUID `json:"id"`
	EventID   uuid.UUID `json:"event_id"`
	Name      string    `json:"name"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

type AssignmentResponse struct {
	ID         uuid.UUID `json:"id"`
	PhaseID    uuid.UUID `json:"phase_id"`
	PhaseName  string    `json:"phase_name,omitempty"`
	EmployeeID uuid.UUID `json:"employee_id"`
	Role       string    `json:"role"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	CreatedAt  time.Time `json:"created_at"`
}

// PhaseAssignmentResultResponse reports one phase of an assignment fan-out.
// Conflicts are warnings: the assignment listed alongside them was created
// anyway.
type PhaseAssignmentResultResponse struct {
	PhaseID       uuid.UUID            `json:"phase_id"`
	Created       bool                 `json:"created"`
	Assignment    *AssignmentResponse  `json:"assignment,omitempty"`
	Conflicts     []AssignmentResponse `json:"conflicts,omitempty"`
	FailureReason string               `json:"failure_reason,omitempty"`
}

func NewPhaseResponse(p event.Phase) PhaseResponse {
	return PhaseResponse{
		ID:        p.ID,
		EventID:   p.EventID,
		Name:      p.Name,
		StartTime: p.StartTime,
		EndTime:   p.EndTime,
	}
}

func NewAssignmentResponse(a event.PhaseAssignment) AssignmentResponse {
	return AssignmentResponse{
		ID:         a.ID,
		PhaseID:    a.PhaseID,
		PhaseName:  a.PhaseName,
		EmployeeID: a.EmployeeID,
		Role:       a.Role,
		StartTime:  a.StartTime,
		EndTime:    a.EndTime,
		CreatedAt:  a.CreatedAt,
	}
}

func NewPhaseAssignmentResultResponse(r usecase.PhaseAssignmentResult) PhaseAssignmentResultResponse {
	res := PhaseAssignmentResultResponse{
		PhaseID:       r.PhaseID,
		Created:       r.Created(),
		FailureReason: r.FailureReason,
	}
	if r.Assignment != nil {
		a := NewAssignmentResponse(*r.Assignment)
		res.Assignment = &a
	}
	for _, c := range r.Conflicts {
		res.Conflicts = append(res.Conflicts, NewAssignmentResponse(c))
	}
	return res
}
