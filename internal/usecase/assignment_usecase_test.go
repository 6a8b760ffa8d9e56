package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"staffing-engine/internal/domain/employee"
	"staffing-engine/internal/domain/event"

	"github.com/google/uuid"
)

type mockEmployeeRepo struct {
	employees map[uuid.UUID]employee.Employee
	active    []employee.Employee
	err       error
}

func (m mockEmployeeRepo) ListActive(context.Context) ([]employee.Employee, error) {
	return m.active, m.err
}

func (m mockEmployeeRepo) GetByID(_ context.Context, id uuid.UUID) (employee.Employee, error) {
	e, ok := m.employees[id]
	if !ok {
		return employee.Employee{}, errors.New("not found")
	}
	return e, nil
}

func (m mockEmployeeRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.employees[id]
	return ok, nil
}

type mockPhaseRepo struct {
	phases   map[uuid.UUID]event.Phase
	eventIDs map[uuid.UUID][]event.Phase
	upcoming []uuid.UUID
	err      error
}

func (m mockPhaseRepo) FindByEventID(_ context.Context, eventID uuid.UUID) ([]event.Phase, error) {
	return m.eventIDs[eventID], m.err
}

func (m mockPhaseRepo) FindByIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]event.Phase, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make(map[uuid.UUID]event.Phase, len(ids))
	for _, id := range ids {
		if p, ok := m.phases[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func (m mockPhaseRepo) EventExistsByID(_ context.Context, eventID uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.eventIDs[eventID]
	return ok, nil
}

func (m mockPhaseRepo) ListUpcomingEventIDs(context.Context, int) ([]uuid.UUID, error) {
	return m.upcoming, m.err
}

// mockAssignmentRepo stores created assignments and can be told to fail
// the nth Create call.
type mockAssignmentRepo struct {
	existing []event.PhaseAssignment
	stored   []event.PhaseAssignment
	failOn   map[int]error
	calls    int
}

func (m *mockAssignmentRepo) FindByEmployeeID(_ context.Context, employeeID uuid.UUID) ([]event.PhaseAssignment, error) {
	var out []event.PhaseAssignment
	for _, a := range m.existing {
		if a.EmployeeID == employeeID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockAssignmentRepo) Create(_ context.Context, a event.PhaseAssignment) (event.PhaseAssignment, error) {
	m.calls++
	if err, ok := m.failOn[m.calls]; ok {
		return event.PhaseAssignment{}, err
	}
	a.ID = uuid.New()
	a.CreatedAt = time.Now().UTC()
	m.stored = append(m.stored, a)
	return a, nil
}

func phaseBetween(startHour, endHour int) event.Phase {
	day := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	return event.Phase{
		ID:        uuid.New(),
		EventID:   uuid.New(),
		Name:      "phase",
		StartTime: day.Add(time.Duration(startHour) * time.Hour),
		EndTime:   day.Add(time.Duration(endHour) * time.Hour),
	}
}

func TestAssignmentUsecase_AssignToPhases_InvalidInput(t *testing.T) {
	uc := NewAssignmentUsecase(mockEmployeeRepo{}, mockPhaseRepo{}, &mockAssignmentRepo{})

	if _, err := uc.AssignToPhases(context.Background(), uuid.Nil, "rigger", []uuid.UUID{uuid.New()}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("nil employee: expected ErrInvalidInput, got %v", err)
	}
	if _, err := uc.AssignToPhases(context.Background(), uuid.New(), "  ", []uuid.UUID{uuid.New()}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank role: expected ErrInvalidInput, got %v", err)
	}
	if _, err := uc.AssignToPhases(context.Background(), uuid.New(), "rigger", nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("no phases: expected ErrInvalidInput, got %v", err)
	}
}

func TestAssignmentUsecase_AssignToPhases_EmployeeNotFound(t *testing.T) {
	uc := NewAssignmentUsecase(mockEmployeeRepo{employees: map[uuid.UUID]employee.Employee{}}, mockPhaseRepo{}, &mockAssignmentRepo{})

	_, err := uc.AssignToPhases(context.Background(), uuid.New(), "rigger", []uuid.UUID{uuid.New()})
	if !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestAssignmentUsecase_AssignToPhases_PartialStoreFailure(t *testing.T) {
	emp := employee.Employee{ID: uuid.New(), Name: "Dana", Active: true}
	p1 := phaseBetween(8, 10)
	p2 := phaseBetween(11, 13)
	p3 := phaseBetween(14, 16)

	assignments := &mockAssignmentRepo{failOn: map[int]error{2: errors.New("write refused")}}
	uc := NewAssignmentUsecase(
		mockEmployeeRepo{employees: map[uuid.UUID]employee.Employee{emp.ID: emp}},
		mockPhaseRepo{phases: map[uuid.UUID]event.Phase{p1.ID: p1, p2.ID: p2, p3.ID: p3}},
		assignments,
	)

	results, err := uc.AssignToPhases(context.Background(), emp.ID, "rigger", []uuid.UUID{p1.ID, p2.ID, p3.ID})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	if !results[0].Created() || !results[2].Created() {
		t.Fatalf("expected phases 1 and 3 created, got %+v", results)
	}
	if results[1].Created() {
		t.Fatalf("expected phase 2 to fail")
	}
	if results[1].FailureReason != ErrAssignmentCreationFailed.Error() {
		t.Fatalf("unexpected failure reason %q", results[1].FailureReason)
	}

	// The failing phase must not roll back its siblings.
	if len(assignments.stored) != 2 {
		t.Fatalf("expected 2 stored assignments, got %d", len(assignments.stored))
	}
}

func TestAssignmentUsecase_AssignToPhases_MissingPhase(t *testing.T) {
	emp := employee.Employee{ID: uuid.New(), Name: "Dana", Active: true}
	p1 := phaseBetween(8, 10)
	missing := uuid.New()

	uc := NewAssignmentUsecase(
		mockEmployeeRepo{employees: map[uuid.UUID]employee.Employee{emp.ID: emp}},
		mockPhaseRepo{phases: map[uuid.UUID]event.Phase{p1.ID: p1}},
		&mockAssignmentRepo{},
	)

	results, err := uc.AssignToPhases(context.Background(), emp.ID, "rigger", []uuid.UUID{missing, p1.ID})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if results[0].Created() {
		t.Fatalf("expected missing phase to fail")
	}
	if results[0].FailureReason != ErrPhaseNotFound.Error() {
		t.Fatalf("unexpected failure reason %q", results[0].FailureReason)
	}
	if !results[1].Created() {
		t.Fatalf("expected second phase to succeed despite first failing")
	}
}

func TestAssignmentUsecase_AssignToPhases_ConflictIsAdvisory(t *testing.T) {
	emp := employee.Employee{ID: uuid.New(), Name: "Dana", Active: true}
	p1 := phaseBetween(9, 12)

	booked := event.PhaseAssignment{
		ID:         uuid.New(),
		PhaseID:    uuid.New(),
		EmployeeID: emp.ID,
		Role:       "audio",
		StartTime:  p1.StartTime.Add(time.Hour),
		EndTime:    p1.EndTime.Add(time.Hour),
	}

	assignments := &mockAssignmentRepo{existing: []event.PhaseAssignment{booked}}
	uc := NewAssignmentUsecase(
		mockEmployeeRepo{employees: map[uuid.UUID]employee.Employee{emp.ID: emp}},
		mockPhaseRepo{phases: map[uuid.UUID]event.Phase{p1.ID: p1}},
		assignments,
	)

	results, err := uc.AssignToPhases(context.Background(), emp.ID, "rigger", []uuid.UUID{p1.ID})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !results[0].Created() {
		t.Fatalf("conflicting assignment should still be created, got %+v", results[0])
	}
	if len(results[0].Conflicts) != 1 || results[0].Conflicts[0].ID != booked.ID {
		t.Fatalf("expected the existing booking as a conflict, got %+v", results[0].Conflicts)
	}
}

func TestAssignmentUsecase_AssignToPhases_SeesConflictsFromSameCall(t *testing.T) {
	emp := employee.Employee{ID: uuid.New(), Name: "Dana", Active: true}
	p1 := phaseBetween(9, 12)
	p2 := phaseBetween(11, 14)

	uc := NewAssignmentUsecase(
		mockEmployeeRepo{employees: map[uuid.UUID]employee.Employee{emp.ID: emp}},
		mockPhaseRepo{phases: map[uuid.UUID]event.Phase{p1.ID: p1, p2.ID: p2}},
		&mockAssignmentRepo{},
	)

	results, err := uc.AssignToPhases(context.Background(), emp.ID, "rigger", []uuid.UUID{p1.ID, p2.ID})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(results[0].Conflicts) != 0 {
		t.Fatalf("first phase should have no conflicts, got %+v", results[0].Conflicts)
	}
	if !results[1].Created() {
		t.Fatalf("second phase should still be created")
	}
	if len(results[1].Conflicts) != 1 {
		t.Fatalf("second phase should conflict with the first created in this call, got %+v", results[1].Conflicts)
	}
}

// sharedAssignmentRepo is safe for concurrent callers. Create sleeps
// before appending, widening the gap between a caller's conflict check and
// its write so an unserialized interleaving would be caught.
type sharedAssignmentRepo struct {
	mu     sync.Mutex
	stored []event.PhaseAssignment
}

func (m *sharedAssignmentRepo) FindByEmployeeID(_ context.Context, employeeID uuid.UUID) ([]event.PhaseAssignment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]event.PhaseAssignment, 0, len(m.stored))
	for _, a := range m.stored {
		if a.EmployeeID == employeeID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *sharedAssignmentRepo) Create(_ context.Context, a event.PhaseAssignment) (event.PhaseAssignment, error) {
	time.Sleep(20 * time.Millisecond)
	a.ID = uuid.New()
	a.CreatedAt = time.Now().UTC()
	m.mu.Lock()
	m.stored = append(m.stored, a)
	m.mu.Unlock()
	return a, nil
}

func TestAssignmentUsecase_AssignToPhases_SerializesPerEmployee(t *testing.T) {
	emp := employee.Employee{ID: uuid.New(), Name: "Dana", Active: true}
	p1 := phaseBetween(9, 12)
	p2 := phaseBetween(10, 13)

	assignments := &sharedAssignmentRepo{}
	uc := NewAssignmentUsecase(
		mockEmployeeRepo{employees: map[uuid.UUID]employee.Employee{emp.ID: emp}},
		mockPhaseRepo{phases: map[uuid.UUID]event.Phase{p1.ID: p1, p2.ID: p2}},
		assignments,
	)

	outcomes := make([][]PhaseAssignmentResult, 2)
	var wg sync.WaitGroup
	for i, phaseID := range []uuid.UUID{p1.ID, p2.ID} {
		wg.Add(1)
		go func(i int, phaseID uuid.UUID) {
			defer wg.Done()
			results, err := uc.AssignToPhases(context.Background(), emp.ID, "rigger", []uuid.UUID{phaseID})
			if err != nil {
				t.Errorf("call %d: unexpected err: %v", i, err)
				return
			}
			outcomes[i] = results
		}(i, phaseID)
	}
	wg.Wait()

	totalConflicts := 0
	for i, results := range outcomes {
		if len(results) != 1 || !results[0].Created() {
			t.Fatalf("call %d: expected one created result, got %+v", i, results)
		}
		totalConflicts += len(results[0].Conflicts)
	}

	// Whichever call runs second must see the first call's booking. If the
	// conflict checks interleaved, both would read an empty store and
	// neither would report the overlap.
	if totalConflicts != 1 {
		t.Fatalf("expected exactly one call to observe the other's booking, got %d conflicts", totalConflicts)
	}
	if len(assignments.stored) != 2 {
		t.Fatalf("expected both assignments stored, got %d", len(assignments.stored))
	}
}

func TestAssignmentUsecase_ListEventPhases_EventNotFound(t *testing.T) {
	uc := NewAssignmentUsecase(mockEmployeeRepo{}, mockPhaseRepo{eventIDs: map[uuid.UUID][]event.Phase{}}, &mockAssignmentRepo{})

	_, err := uc.ListEventPhases(context.Background(), uuid.New())
	if !errors.Is(err, ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}
