package seeder

import (
	"context"

	"staffing-engine/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
