package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserRole is the user<->role junction. The junction does not enforce
// composite uniqueness; reports must tolerate duplicates and dangling ids.
type UserRole struct {
	UserID    uuid.UUID `db:"user_id"`
	RoleID    uuid.UUID `db:"role_id"`
	CreatedAt time.Time `db:"created_at"`
}
