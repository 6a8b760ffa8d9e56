package staffing

import (
	"time"

	"staffing-engine/internal/domain/event"
)

// FindConflicts returns every assignment whose window strictly overlaps
// [start, end]. Windows that merely touch at an endpoint do not conflict;
// a zero-length window strictly inside another does. The caller supplies
// one employee's assignments; conflicts are never computed across
// employees.
func FindConflicts(start, end time.Time, assignments []event.PhaseAssignment) ([]event.PhaseAssignment, error) {
	if end.Before(start) {
		return nil, event.ErrInvalidTimeWindow
	}

	conflicts := make([]event.PhaseAssignment, 0)
	for _, a := range assignments {
		if start.Before(a.EndTime) && a.StartTime.Before(end) {
			conflicts = append(conflicts, a)
		}
	}
	return conflicts, nil
}
