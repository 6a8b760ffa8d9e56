package repository

import (
	"context"

	"staffing-engine/internal/database"
	"staffing-engine/internal/domain/staffing"

	"github.com/google/uuid"
)

type DemandRepository interface {
	// GetAggregatedDemand unions the skill requirements of every product
	// sold on the event's accepted offers. The result is ephemeral input
	// for the scorer, never stored.
	GetAggregatedDemand(ctx context.Context, eventID uuid.UUID) ([]staffing.DemandEntry, error)
}

type PostgresDemandRepository struct {
	db database.DB
}

func NewPostgresDemandRepository(db database.DB) *PostgresDemandRepository {
	return &PostgresDemandRepository{db: db}
}

func (r *PostgresDemandRepository) GetAggregatedDemand(ctx context.Context, eventID uuid.UUID) ([]staffing.DemandEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT DISTINCT s.id, s.name
		 FROM offers o
		 JOIN offer_items oi ON oi.offer_id = o.id
		 JOIN product_skill_requirements psr ON psr.product_id = oi.product_id
		 JOIN skills s ON s.id = psr.skill_id
		 WHERE o.event_id = $1 AND o.status = 'accepted'
		 ORDER BY s.name ASC`,
		eventID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]staffing.DemandEntry, 0)
	for rows.Next() {
		var d staffing.DemandEntry
		if err := rows.Scan(&d.SkillID, &d.SkillName); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
