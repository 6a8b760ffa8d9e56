package repository

import (
	"context"
	"errors"

	"staffing-engine/internal/database"
	"staffing-engine/internal/domain/employee"
	"staffing-engine/internal/domain/skill"

	"github.com/google/uuid"
)

var ErrGrantNotFound = errors.New("skill grant not found")

type EmployeeSkillRepository interface {
	FindByEmployeeID(ctx context.Context, employeeID uuid.UUID) ([]employee.SkillGrant, error)
	// Upsert writes the grant; a second grant for the same (employee,
	// skill) pair replaces the first: latest grant wins.
	Upsert(ctx context.Context, g employee.SkillGrant) (employee.SkillGrant, error)
	Delete(ctx context.Context, employeeID, skillID uuid.UUID) error
}

type PostgresEmployeeSkillRepository struct {
	db database.DB
}

func NewPostgresEmployeeSkillRepository(db database.DB) *PostgresEmployeeSkillRepository {
	return &PostgresEmployeeSkillRepository{db: db}
}

func (r *PostgresEmployeeSkillRepository) FindByEmployeeID(ctx context.Context, employeeID uuid.UUID) ([]employee.SkillGrant, error) {
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

func (r *PostgresEmployeeSkillRepository) Upsert(ctx context.Context, g employee.SkillGrant) (employee.SkillGrant, error) {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO employee_skills (id, employee_id, skill_id, proficiency_level, years_experience)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (employee_id, skill_id)
		 DO UPDATE SET proficiency_level = EXCLUDED.proficiency_level, years_experience = EXCLUDED.years_experience`,
		g.ID, g.EmployeeID, g.SkillID, string(g.Level), g.YearsExperience,
	)
	if err != nil {
		return employee.SkillGrant{}, err
	}

	row := r.db.QueryRow(ctx,
		`SELECT es.id, es.employee_id, es.skill_id, s.name, es.proficiency_level, COALESCE(es.years_experience, 0), es.created_at
		 FROM employee_skills es
		 JOIN skills s ON s.id = es.skill_id
		 WHERE es.employee_id = $1 AND es.skill_id = $2`,
		g.EmployeeID, g.SkillID,
	)

	var created employee.SkillGrant
	var level string
	if err := row.Scan(&created.ID, &created.EmployeeID, &created.SkillID, &created.SkillName, &level, &created.YearsExperience, &created.CreatedAt); err != nil {
		return employee.SkillGrant{}, err
	}
	created.Level = skill.ProficiencyLevel(level)
	return created, nil
}

func (r *PostgresEmployeeSkillRepository) Delete(ctx context.Context, employeeID, skillID uuid.UUID) error {
	affected, err := r.db.Exec(ctx,
		`DELETE FROM employee_skills WHERE employee_id = $1 AND skill_id = $2`,
		employeeID, skillID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrGrantNotFound
	}
	return nil
}
