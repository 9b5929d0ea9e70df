package entity

import (
	"github.com/google/uuid"
)

// Profile is an optional attribute bag for a user. At most one profile per
// user is assumed but not enforced by the schema.
type Profile struct {
	BaseSimple
	UserID  uuid.UUID `db:"user_id"`
	Phone   *string   `db:"phone"`
	City    *string   `db:"city"`
	Country *string   `db:"country"`
}
