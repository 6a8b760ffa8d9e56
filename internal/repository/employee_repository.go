package repository

import (
	"context"
	"errors"

	"staffing-engine/internal/database"
	"staffing-engine/internal/domain/employee"
	"staffing-engine/internal/domain/skill"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrEmployeeNotFound = errors.New("employee not found")

type EmployeeRepository interface {
	// ListActive returns all active employees with their skill grants
	// embedded, ordered by name then ID so downstream ranking is
	// reproducible.
	ListActive(ctx context.Context) ([]employee.Employee, error)
	GetByID(ctx context.Context, id uuid.UUID) (employee.Employee, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

type PostgresEmployeeRepository struct {
	db database.DB
}

func NewPostgresEmployeeRepository(db database.DB) *PostgresEmployeeRepository {
	return &PostgresEmployeeRepository{db: db}
}

func (r *PostgresEmployeeRepository) ListActive(ctx context.Context) ([]employee.Employee, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, email, phone, active, created_at
		 FROM employees
		 WHERE active = TRUE
		 ORDER BY name ASC, id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]employee.Employee, 0)
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		var e employee.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Phone, &e.Active, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Grants = make([]employee.SkillGrant, 0)
		index[e.ID] = len(out)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(out) == 0 {
		return out, nil
	}

	grants, err := r.grantsForActive(ctx)
	if err != nil {
		return nil, err
	}
	for _, g := range grants {
		if i, ok := index[g.EmployeeID]; ok {
			out[i].Grants = append(out[i].Grants, g)
		}
	}
	return out, nil
}

func (r *PostgresEmployeeRepository) GetByID(ctx context.Context, id uuid.UUID) (employee.Employee, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name, email, phone, active, created_at FROM employees WHERE id = $1`, id)

	var e employee.Employee
	if err := row.Scan(&e.ID, &e.Name, &e.Email, &e.Phone, &e.Active, &e.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}

	grants, err := r.grantsFor(ctx, id)
	if err != nil {
		return employee.Employee{}, err
	}
	e.Grants = grants
	return e, nil
}

func (r *PostgresEmployeeRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE id = $1)`, id)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresEmployeeRepository) grantsFor(ctx context.Context, employeeID uuid.UUID) ([]employee.SkillGrant, error) {
	rows, err := r.db.Query(ctx,
		`SELECT es.id, es.employee_id, es.skill_id, s.name, es.proficiency_level, COALESCE(es.years_experience, 0), es.created_at
		 FROM employee_skills es
		 JOIN skills s ON s.id = es.skill_id
		 WHERE es.employee_id = $1
		 ORDER BY s.name ASC`,
		employeeID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanGrants(rows)
}

func (r *PostgresEmployeeRepository) grantsForActive(ctx context.Context) ([]employee.SkillGrant, error) {
	rows, err := r.db.Query(ctx,
		`SELECT es.id, es.employee_id, es.skill_id, s.name, es.proficiency_level, COALESCE(es.years_experience, 0), es.created_at
		 FROM employee_skills es
		 JOIN skills s ON s.id = es.skill_id
		 JOIN employees e ON e.id = es.employee_id
		 WHERE e.active = TRUE
		 ORDER BY s.name ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanGrants(rows)
}

func scanGrants(rows database.Rows) ([]employee.SkillGrant, error) {
	out := make([]employee.SkillGrant, 0)
	for rows.Next() {
		var g employee.SkillGrant
		var level string
		if err := rows.Scan(&g.ID, &g.EmployeeID, &g.SkillID, &g.SkillName, &level, &g.YearsExperience, &g.CreatedAt); err != nil {
			return nil, err
		}
		g.Level = skill.ProficiencyLevel(level)
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
