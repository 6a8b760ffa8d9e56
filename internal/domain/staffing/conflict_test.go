package staffing

import (
	"errors"
	"testing"
	"time"

	"staffing-engine/internal/domain/event"

	"github.com/google/uuid"
)

func assignmentAt(start, end time.Time) event.PhaseAssignment {
	return event.PhaseAssignment{
		ID:         uuid.New(),
		PhaseID:    uuid.New(),
		EmployeeID: uuid.New(),
		Role:       "technician",
		StartTime:  start,
		EndTime:    end,
	}
}

func at(hour, minute int) time.Time {
	return time.Date(2026, time.September, 12, hour, minute, 0, 0, time.UTC)
}

func TestFindConflicts_TouchingWindowsDoNotConflict(t *testing.T) {
	existing := []event.PhaseAssignment{assignmentAt(at(11, 0), at(12, 0))}
	got, err := FindConflicts(at(10, 0), at(11, 0), existing)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected touching windows not to conflict, got %d", len(got))
	}
}

func TestFindConflicts_ContainedWindowConflicts(t *testing.T) {
	existing := []event.PhaseAssignment{assignmentAt(at(10, 30), at(10, 45))}
	got, err := FindConflicts(at(10, 0), at(11, 0), existing)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 conflict, got %d", len(got))
	}
}

func TestFindConflicts_ZeroLengthInsideWindowConflicts(t *testing.T) {
	existing := []event.PhaseAssignment{assignmentAt(at(10, 0), at(11, 0))}
	got, err := FindConflicts(at(10, 30), at(10, 30), existing)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected zero-length window inside a booking to conflict, got %d", len(got))
	}
}

func TestFindConflicts_TwoZeroLengthWindowsDoNotConflict(t *testing.T) {
	existing := []event.PhaseAssignment{assignmentAt(at(10, 30), at(10, 30))}
	got, err := FindConflicts(at(10, 30), at(10, 30), existing)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected two zero-length windows at the same instant not to conflict, got %d", len(got))
	}
}

func TestFindConflicts_ReturnsAllConflictingAssignments(t *testing.T) {
	existing := []event.PhaseAssignment{
		assignmentAt(at(9, 0), at(10, 30)),
		assignmentAt(at(10, 45), at(12, 0)),
		assignmentAt(at(13, 0), at(14, 0)),
	}
	got, err := FindConflicts(at(10, 0), at(11, 0), existing)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 conflicts for a doubly booked window, got %d", len(got))
	}
	if got[0].ID != existing[0].ID || got[1].ID != existing[1].ID {
		t.Fatalf("expected conflicts in input order")
	}
}

func TestFindConflicts_InvalidWindow(t *testing.T) {
	if _, err := FindConflicts(at(11, 0), at(10, 0), nil); !errors.Is(err, event.ErrInvalidTimeWindow) {
		t.Fatalf("expected ErrInvalidTimeWindow, got %v", err)
	}
}

func TestFindConflicts_AbsoluteInstants(t *testing.T) {
	// Same instant expressed in different zones must still not conflict
	// when windows only touch.
	jakarta := time.FixedZone("WIB", 7*3600)
	existing := []event.PhaseAssignment{assignmentAt(at(11, 0).In(jakarta), at(12, 0).In(jakarta))}
	got, err := FindConflicts(at(10, 0), at(11, 0), existing)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected comparison on absolute instants, got %d conflicts", len(got))
	}
}
