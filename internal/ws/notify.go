package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"

	"staffing-engine/internal/domain/event"
)

type AssignmentCreatedEvent struct {
	Type       string `json:"type"`
	Assignment string `json:"assignment_id"`
	PhaseID    string `json:"phase_id"`
	PhaseName  string `json:"phase_name"`
	EmployeeID string `json:"employee_id"`
	Role       string `json:"role"`
	Conflicts  int    `json:"conflicts"`
	Timestamp  string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyAssignmentCreated broadcasts a created assignment to connected
// dashboards. With no hub configured it is a no-op.
func NotifyAssignmentCreated(a event.PhaseAssignment, conflicts int) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	evt := AssignmentCreatedEvent{
		Type:       "assignment_created",
		Assignment: a.ID.String(),
		PhaseID:    a.PhaseID.String(),
		PhaseName:  a.PhaseName,
		EmployeeID: a.EmployeeID.String(),
		Role:       a.Role,
		Conflicts:  conflicts,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}
