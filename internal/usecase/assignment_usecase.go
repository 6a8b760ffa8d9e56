package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"

	"staffing-engine/internal/domain/event"
	"staffing-engine/internal/domain/staffing"
	"staffing-engine/internal/repository"
	"staffing-engine/internal/ws"

	"github.com/google/uuid"
)

var (
	ErrPhaseNotFound            = errors.New("phase not found")
	ErrAssignmentCreationFailed = errors.New("assignment creation failed")
)

// PhaseAssignmentResult is the per-phase outcome of a fan-out. Exactly one
// of Assignment or FailureReason is set; Conflicts are advisory warnings
// attached to a successful creation.
type PhaseAssignmentResult struct {
	PhaseID       uuid.UUID
	Assignment    *event.PhaseAssignment
	Conflicts     []event.PhaseAssignment
	FailureReason string
}

func (r PhaseAssignmentResult) Created() bool {
	return r.Assignment != nil
}

type AssignmentUsecase interface {
	AssignToPhases(ctx context.Context, employeeID uuid.UUID, role string, phaseIDs []uuid.UUID) ([]PhaseAssignmentResult, error)
	ListEmployeeAssignments(ctx context.Context, employeeID uuid.UUID) ([]event.PhaseAssignment, error)
	ListEventPhases(ctx context.Context, eventID uuid.UUID) ([]event.Phase, error)
}

type Assignment struct {
	employees   repository.EmployeeRepository
	phases      repository.PhaseRepository
	assignments repository.AssignmentRepository

	locks employeeLocks
}

func NewAssignmentUsecase(
	employees repository.EmployeeRepository,
	phases repository.PhaseRepository,
	assignments repository.AssignmentRepository,
) *Assignment {
	return &Assignment{employees: employees, phases: phases, assignments: assignments}
}

// AssignToPhases creates one assignment per phase, in input order. Phases
// fail independently: a store failure on one never rolls back or blocks the
// others. Detected conflicts do not stop creation; double-booking is
// sometimes intentional and the caller decides whether to confirm first.
//
// Calls for the same employee are serialized for the whole fan-out so two
// concurrent requests cannot both pass a conflict check that the other's
// write just invalidated.
func (u *Assignment) AssignToPhases(ctx context.Context, employeeID uuid.UUID, role string, phaseIDs []uuid.UUID) ([]PhaseAssignmentResult, error) {
	role = strings.TrimSpace(role)
	if employeeID == uuid.Nil || role == "" || len(phaseIDs) == 0 {
		return nil, ErrInvalidInput
	}

	exists, err := u.employees.ExistsByID(ctx, employeeID)
	if err != nil {
		return nil, ErrInternal
	}
	if !exists {
		return nil, ErrEmployeeNotFound
	}

	unlock := u.locks.lock(employeeID)
	defer unlock()

	existing, err := u.assignments.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, ErrInternal
	}

	phases, err := u.phases.FindByIDs(ctx, phaseIDs)
	if err != nil {
		return nil, ErrInternal
	}

	results := make([]PhaseAssignmentResult, 0, len(phaseIDs))
	for _, phaseID := range phaseIDs {
		res := u.assignOne(ctx, employeeID, role, phaseID, phases, existing)
		if res.Created() {
			// Later phases in the same call must see this booking.
			existing = append(existing, *res.Assignment)
		}
		results = append(results, res)
	}
	return results, nil
}

func (u *Assignment) assignOne(
	ctx context.Context,
	employeeID uuid.UUID,
	role string,
	phaseID uuid.UUID,
	phases map[uuid.UUID]event.Phase,
	existing []event.PhaseAssignment,
) PhaseAssignmentResult {
	res := PhaseAssignmentResult{PhaseID: phaseID}

	phase, ok := phases[phaseID]
	if !ok {
		res.FailureReason = ErrPhaseNotFound.Error()
		return res
	}
	if err := phase.Validate(); err != nil {
		res.FailureReason = err.Error()
		return res
	}

	conflicts, err := staffing.FindConflicts(phase.StartTime, phase.EndTime, existing)
	if err != nil {
		res.FailureReason = err.Error()
		return res
	}

	created, err := u.assignments.Create(ctx, event.PhaseAssignment{
		PhaseID:    phase.ID,
		EmployeeID: employeeID,
		Role:       role,
		StartTime:  phase.StartTime,
		EndTime:    phase.EndTime,
	})
	if err != nil {
		res.FailureReason = ErrAssignmentCreationFailed.Error()
		return res
	}

	res.Assignment = &created
	res.Conflicts = conflicts
	ws.NotifyAssignmentCreated(created, len(conflicts))
	return res
}

func (u *Assignment) ListEmployeeAssignments(ctx context.Context, employeeID uuid.UUID) ([]event.PhaseAssignment, error) {
	if employeeID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	exists, err := u.employees.ExistsByID(ctx, employeeID)
	if err != nil {
		return nil, ErrInternal
	}
	if !exists {
		return nil, ErrEmployeeNotFound
	}

	items, err := u.assignments.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Assignment) ListEventPhases(ctx context.Context, eventID uuid.UUID) ([]event.Phase, error) {
	if eventID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	exists, err := u.phases.EventExistsByID(ctx, eventID)
	if err != nil {
		return nil, ErrInternal
	}
	if !exists {
		return nil, ErrEventNotFound
	}

	items, err := u.phases.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

// employeeLocks hands out one mutex per employee ID. Entries are never
// reaped; the employee population is small and stable.
type employeeLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func (l *employeeLocks) lock(id uuid.UUID) func() {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = make(map[uuid.UUID]*sync.Mutex)
	}
	m, ok := l.locks[id]
	if !ok {
		m = &sync.Mutex{}
		l.locks[id] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
