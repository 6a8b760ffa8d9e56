package event

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidTimeWindow = errors.New("invalid time window")

type Event struct {
	ID        uuid.UUID
	Name      string
	StartsAt  time.Time
	CreatedAt time.Time
}

// Phase is a time-boxed slice of an event. Zero-length phases are valid and
// represent instantaneous milestones.
type Phase struct {
	ID        uuid.UUID
	EventID   uuid.UUID
	Name      string
	StartTime time.Time
	EndTime   time.Time
}

func (p Phase) Validate() error {
	if p.EndTime.Before(p.StartTime) {
		return ErrInvalidTimeWindow
	}
	return nil
}

// PhaseAssignment books an employee into a phase for a role. Its window is
// settable independently of the phase window, though callers normally copy
// the phase's own start and end.
type PhaseAssignment struct {
	ID         uuid.UUID
	PhaseID    uuid.UUID
	PhaseName  string
	EmployeeID uuid.UUID
	Role       string
	StartTime  time.Time
	EndTime    time.Time
	CreatedAt  time.Time
}

func (a PhaseAssignment) Validate() error {
	if a.EndTime.Before(a.StartTime) {
		return ErrInvalidTimeWindow
	}
	return nil
}
