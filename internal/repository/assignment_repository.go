package repository

import (
	"context"

	"staffing-engine/internal/database"
	"staffing-engine/internal/domain/event"

	"github.com/google/uuid"
)

type AssignmentRepository interface {
	FindByEmployeeID(ctx context.Context, employeeID uuid.UUID) ([]event.PhaseAssignment, error)
	Create(ctx context.Context, a event.PhaseAssignment) (event.PhaseAssignment, error)
}

type PostgresAssignmentRepository struct {
	db database.DB
}

func NewPostgresAssignmentRepository(db database.DB) *PostgresAssignmentRepository {
	return &PostgresAssignmentRepository{db: db}
}

func (r *PostgresAssignmentRepository) FindByEmployeeID(ctx context.Context, employeeID uuid.UUID) ([]event.PhaseAssignment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT pa.id, pa.phase_id, p.name, pa.employee_id, pa.role, pa.start_time, pa.end_time, pa.created_at
		 FROM phase_assignments pa
		 JOIN event_phases p ON p.id = pa.phase_id
		 WHERE pa.employee_id = $1
		 ORDER BY pa.start_time ASC, pa.created_at ASC`,
		employeeID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]event.PhaseAssignment, 0)
	for rows.Next() {
		var a event.PhaseAssignment
		if err := rows.Scan(&a.ID, &a.PhaseID, &a.PhaseName, &a.EmployeeID, &a.Role, &a.StartTime, &a.EndTime, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresAssignmentRepository) Create(ctx context.Context, a event.PhaseAssignment) (event.PhaseAssignment, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO phase_assignments (id, phase_id, employee_id, role, start_time, end_time)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		a.ID, a.PhaseID, a.EmployeeID, a.Role, a.StartTime, a.EndTime,
	)
	if err != nil {
		return event.PhaseAssignment{}, err
	}

	row := r.db.QueryRow(ctx,
		`SELECT pa.id, pa.phase_id, p.name, pa.employee_id, pa.role, pa.start_time, pa.end_time, pa.created_at
		 FROM phase_assignments pa
		 JOIN event_phases p ON p.id = pa.phase_id
		 WHERE pa.id = $1`,
		a.ID,
	)

	var created event.PhaseAssignment
	if err := row.Scan(&created.ID, &created.PhaseID, &created.PhaseName, &created.EmployeeID, &created.Role, &created.StartTime, &created.EndTime, &created.CreatedAt); err != nil {
		return event.PhaseAssignment{}, err
	}
	return created, nil
}
