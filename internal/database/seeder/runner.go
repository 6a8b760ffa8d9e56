package seeder

import (
	"context"
	"fmt"

	"staffing-engine/internal/database"
)

type Runner struct {
	Seeders []Seeder
}

// Default returns the runner used on bootstrap: schema first, then
// reference data.
func Default() Runner {
	return Runner{Seeders: []Seeder{
		SchemaSeeder{},
		CategoriesSeeder{},
		SkillsSeeder{},
	}}
}

func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
	}
	return nil
}
