package user

import (
	"time"

	"github.com/google/uuid"
)

// User is a back-office account (staffing coordinator, administrator).
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
