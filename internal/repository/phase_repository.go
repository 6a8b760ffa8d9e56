package repository

import (
	"context"
	"errors"

	"staffing-engine/internal/database"
	"staffing-engine/internal/domain/event"

	"github.com/google/uuid"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrPhaseNotFound = errors.New("phase not found")
)

type PhaseRepository interface {
	FindByEventID(ctx context.Context, eventID uuid.UUID) ([]event.Phase, error)
	// FindByIDs returns the phases it can find, keyed by ID; missing IDs
	// are simply absent so the caller can report them per phase.
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]event.Phase, error)
	EventExistsByID(ctx context.Context, eventID uuid.UUID) (bool, error)
	ListUpcomingEventIDs(ctx context.Context, limit int) ([]uuid.UUID, error)
}

type PostgresPhaseRepository struct {
	db database.DB
}

func NewPostgresPhaseRepository(db database.DB) *PostgresPhaseRepository {
	return &PostgresPhaseRepository{db: db}
}

func (r *PostgresPhaseRepository) FindByEventID(ctx context.Context, eventID uuid.UUID) ([]event.Phase, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, event_id, name, start_time, end_time
		 FROM event_phases
		 WHERE event_id = $1
		 ORDER BY start_time ASC, id ASC`,
		eventID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]event.Phase, 0)
	for rows.Next() {
		var p event.Phase
		if err := rows.Scan(&p.ID, &p.EventID, &p.Name, &p.StartTime, &p.EndTime); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresPhaseRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]event.Phase, error) {
	out := make(map[uuid.UUID]event.Phase, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, event_id, name, start_time, end_time
		 FROM event_phases
		 WHERE id = ANY($1)`,
		ids,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var p event.Phase
		if err := rows.Scan(&p.ID, &p.EventID, &p.Name, &p.StartTime, &p.EndTime); err != nil {
			return nil, err
		}
		out[p.ID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresPhaseRepository) EventExistsByID(ctx context.Context, eventID uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM events WHERE id = $1)`, eventID)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresPhaseRepository) ListUpcomingEventIDs(ctx context.Context, limit int) ([]uuid.UUID, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.Query(ctx,
		`SELECT id FROM events WHERE starts_at IS NULL OR starts_at >= now() ORDER BY starts_at ASC NULLS LAST LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]uuid.UUID, 0, limit)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
