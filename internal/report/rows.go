package report

import (
	"time"

	"github.com/google/uuid"
)

// Row types for the seven reports. Pointer fields serialize as JSON null
// when the joined side has no match.

// UserRoleRow is one (user, role) pairing.
// Shared by the inner-join and cross-join reports.
type UserRoleRow struct {
	UserID   uuid.UUID `json:"user_id"`
	Email    string    `json:"email"`
	RoleName string    `json:"role_name"`
}

// UserProfileRow is a user with its profile fields, absent when unprofiled.
type UserProfileRow struct {
	UserID  uuid.UUID `json:"user_id"`
	Email   string    `json:"email"`
	Phone   *string   `json:"phone"`
	City    *string   `json:"city"`
	Country *string   `json:"country"`
}

// RoleAssignmentRow is a role with its holder, absent when unassigned.
type RoleAssignmentRow struct {
	RoleName string     `json:"role_name"`
	UserID   *uuid.UUID `json:"user_id"`
	Email    *string    `json:"email"`
}

// UserProfileOuterRow is one row of the emulated full outer join between
// users and profiles. Either side may be absent, never both.
type UserProfileOuterRow struct {
	UserID    *uuid.UUID `json:"user_id"`
	Email     *string    `json:"email"`
	ProfileID *uuid.UUID `json:"profile_id"`
	Phone     *string    `json:"phone"`
	City      *string    `json:"city"`
	Country   *string    `json:"country"`
}

// ReferralRow is one referral edge with both endpoints resolved.
type ReferralRow struct {
	ReferrerUserID uuid.UUID `json:"referrer_user_id"`
	ReferrerEmail  string    `json:"referrer_email"`
	ReferredUserID uuid.UUID `json:"referred_user_id"`
	ReferredEmail  string    `json:"referred_email"`
	ReferredAt     time.Time `json:"referred_at"`
}

// LatestLoginRow is a user with its most recent login, absent when the
// user has no login history.
type LatestLoginRow struct {
	UserID     uuid.UUID  `json:"user_id"`
	Email      string     `json:"email"`
	IPAddress  *string    `json:"ip_address"`
	OccurredAt *time.Time `json:"occurred_at"`
}
