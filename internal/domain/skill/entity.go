package skill

import (
	"time"

	"github.com/google/uuid"
)

// Category groups skills for display purposes only; it carries no
// qualification semantics.
type Category struct {
	ID    uuid.UUID
	Name  string
	Color string
}

type Skill struct {
	ID          uuid.UUID
	Name        string
	Description string
	CategoryID  *uuid.UUID
	CreatedAt   time.Time
}
