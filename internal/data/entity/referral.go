package entity

import (
	"time"

	"github.com/google/uuid"
)

// Referral is a directed "referred" edge between two users.
type Referral struct {
	BaseSimple
	ReferrerUserID uuid.UUID `db:"referrer_user_id"`
	ReferredUserID uuid.UUID `db:"referred_user_id"`
	ReferredAt     time.Time `db:"referred_at"`
}
