package seeder

import (
	"context"

	"staffing-engine/internal/database"

	"github.com/google/uuid"
)

type CategoriesSeeder struct{}

func (CategoriesSeeder) Name() string { return "skill_categories" }

func (CategoriesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "skill_categories", "id", "name", "color"); err != nil {
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
		Name  string
		Color string
	}{
		{Name: "Rigging & Stage", Color: "#d97706"},
		{Name: "Audio", Color: "#2563eb"},
		{Name: "Lighting", Color: "#facc15"},
		{Name: "Video", Color: "#7c3aed"},
		{Name: "Logistics", Color: "#16a34a"},
		{Name: "Safety", Color: "#dc2626"},
	}

	for _, it := range items {
		if _, err := tx.Exec(ctx,
			`INSERT INTO skill_categories (id, name, color)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (name) DO NOTHING`,
			uuid.New(), it.Name, it.Color,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
