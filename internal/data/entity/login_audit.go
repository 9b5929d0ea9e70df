package entity

import (
	"time"

	"github.com/google/uuid"
)

// LoginAudit is an append-only log of login events, many rows per user.
type LoginAudit struct {
	BaseSimple
	UserID     uuid.UUID `db:"user_id"`
	IPAddress  string    `db:"ip_address"`
	OccurredAt time.Time `db:"occurred_at"`
}
