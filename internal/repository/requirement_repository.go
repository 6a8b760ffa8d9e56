package repository

import (
	"context"
	"errors"

	"staffing-engine/internal/database"
	"staffing-engine/internal/domain/equipment"
	"staffing-engine/internal/domain/skill"

	"github.com/google/uuid"
)

var ErrEquipmentNotFound = errors.New("equipment not found")

type RequirementRepository interface {
	FindByEquipmentID(ctx context.Context, equipmentID uuid.UUID) ([]equipment.SkillRequirement, error)
	Create(ctx context.Context, req equipment.SkillRequirement) (equipment.SkillRequirement, error)
	EquipmentExistsByID(ctx context.Context, equipmentID uuid.UUID) (bool, error)
}

type PostgresRequirementRepository struct {
	db database.DB
}

func NewPostgresRequirementRepository(db database.DB) *PostgresRequirementRepository {
	return &PostgresRequirementRepository{db: db}
}

func (r *PostgresRequirementRepository) FindByEquipmentID(ctx context.Context, equipmentID uuid.UUID) ([]equipment.SkillRequirement, error) {
	rows, err := r.db.Query(ctx,
		`SELECT sr.id, sr.equipment_id, sr.skill_id, s.name, sr.minimum_proficiency, sr.is_required, COALESCE(sr.notes, '')
		 FROM equipment_skill_requirements sr
		 JOIN skills s ON s.id = sr.skill_id
		 WHERE sr.equipment_id = $1
		 ORDER BY sr.is_required DESC, s.name ASC`,
		equipmentID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]equipment.SkillRequirement, 0)
	for rows.Next() {
		var req equipment.SkillRequirement
		var level string
		if err := rows.Scan(&req.ID, &req.EquipmentID, &req.SkillID, &req.SkillName, &level, &req.IsRequired, &req.Notes); err != nil {
			return nil, err
		}
		req.MinimumProficiency = skill.ProficiencyLevel(level)
		out = append(out, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresRequirementRepository) Create(ctx context.Context, req equipment.SkillRequirement) (equipment.SkillRequirement, error) {
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO equipment_skill_requirements (id, equipment_id, skill_id, minimum_proficiency, is_required, notes)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		req.ID, req.EquipmentID, req.SkillID, string(req.MinimumProficiency), req.IsRequired, req.Notes,
	)
	if err != nil {
		return equipment.SkillRequirement{}, err
	}

	row := r.db.QueryRow(ctx,
		`SELECT s.name FROM skills s WHERE s.id = $1`, req.SkillID)
	if err := row.Scan(&req.SkillName); err != nil {
		return equipment.SkillRequirement{}, err
	}
	return req, nil
}

func (r *PostgresRequirementRepository) EquipmentExistsByID(ctx context.Context, equipmentID uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM equipment WHERE id = $1)`, equipmentID)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
