package seeder

import (
	"context"

	"staffing-engine/internal/database"

	"github.com/google/uuid"
)

type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "skills", "id", "name", "description", "category_id", "created_at"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []struct {
		Name     string
		Category string
	}{
		{Name: "Rigging", Category: "Rigging & Stage"},
		{Name: "Stage Management", Category: "Rigging & Stage"},
		{Name: "Truss Assembly", Category: "Rigging & Stage"},
		{Name: "Audio Engineering", Category: "Audio"},
		{Name: "Monitor Mixing", Category: "Audio"},
		{Name: "Lighting Design", Category: "Lighting"},
		{Name: "Followspot Operation", Category: "Lighting"},
		{Name: "Video Projection", Category: "Video"},
		{Name: "LED Wall Assembly", Category: "Video"},
		{Name: "Forklift Operation", Category: "Logistics"},
		{Name: "Truck Loading", Category: "Logistics"},
		{Name: "Power Distribution", Category: "Safety"},
		{Name: "Pyrotechnics", Category: "Safety"},
	}

	for _, it := range items {
		if _, err := tx.Exec(ctx,
			`INSERT INTO skills (id, name, category_id)
			 VALUES ($1, $2, (SELECT id FROM skill_categories WHERE name = $3))
			 ON CONFLICT (name) DO NOTHING`,
			uuid.New(), it.Name, it.Category,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
