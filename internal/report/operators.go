package report

import (
	"sort"

	"account-insights/internal/data/entity"

	"github.com/google/uuid"
)

// UsersWithRoles inner-joins users to roles through the junction. Users
// without roles produce no rows; junction rows pointing at a missing user
// or role are dropped. Ordered by user id, then role name.
func UsersWithRoles(d *Dataset) []UserRoleRow {
	roles := rolesByID(d)

	assignments := make(map[uuid.UUID][]entity.Role, len(d.UserRoles))
	for _, ur := range d.UserRoles {
		role, ok := roles[ur.RoleID]
		if !ok {
			continue
		}
		assignments[ur.UserID] = append(assignments[ur.UserID], role)
	}

	rows := make([]UserRoleRow, 0, len(d.UserRoles))
	for _, u := range sortedUsers(d) {
		matched := assignments[u.ID]
		sort.Slice(matched, func(i, j int) bool {
			if matched[i].RoleName != matched[j].RoleName {
				return matched[i].RoleName < matched[j].RoleName
			}
			return uuidLess(matched[i].ID, matched[j].ID)
		})
		for _, role := range matched {
			rows = append(rows, UserRoleRow{
				UserID:   u.ID,
				Email:    u.Email,
				RoleName: role.RoleName,
			})
		}
	}

	return rows
}

// UsersWithProfiles left-joins every user to its profile rows. Users
// without a profile keep one row with absent profile fields; a user owning
// several profiles fans out, one row per profile. Ordered by user id, then
// profile id.
func UsersWithProfiles(d *Dataset) []UserProfileRow {
	profiles := profilesByUser(d)

	rows := make([]UserProfileRow, 0, len(d.Users))
	for _, u := range sortedUsers(d) {
		matched := profiles[u.ID]
		if len(matched) == 0 {
			rows = append(rows, UserProfileRow{UserID: u.ID, Email: u.Email})
			continue
		}
		for _, p := range matched {
			rows = append(rows, UserProfileRow{
				UserID:  u.ID,
				Email:   u.Email,
				Phone:   p.Phone,
				City:    p.City,
				Country: p.Country,
			})
		}
	}

	return rows
}

// RolesWithAssignment keeps every role, joined through the junction to its
// holders. Unassigned roles keep one row with an absent user; a junction
// row pointing at a missing user also yields an absent user (the user side
// is a left join). Ordered by role name, then user id with absent users
// first. The sort runs over the flattened rows: nothing forbids two roles
// sharing a name, and their holders must still interleave by user id.
func RolesWithAssignment(d *Dataset) []RoleAssignmentRow {
	users := usersByID(d)

	holders := make(map[uuid.UUID][]entity.UserRole, len(d.UserRoles))
	for _, ur := range d.UserRoles {
		holders[ur.RoleID] = append(holders[ur.RoleID], ur)
	}

	rows := make([]RoleAssignmentRow, 0, len(d.Roles))
	for _, role := range d.Roles {
		assigned := holders[role.ID]
		if len(assigned) == 0 {
			rows = append(rows, RoleAssignmentRow{RoleName: role.RoleName})
			continue
		}

		for _, ur := range assigned {
			row := RoleAssignmentRow{RoleName: role.RoleName}
			if u, ok := users[ur.UserID]; ok {
				id := u.ID
				email := u.Email
				row.UserID = &id
				row.Email = &email
			}
			rows = append(rows, row)
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].RoleName != rows[j].RoleName {
			return rows[i].RoleName < rows[j].RoleName
		}
		a, b := rows[i].UserID, rows[j].UserID
		if a == nil {
			return b != nil
		}
		if b == nil {
			return false
		}
		return uuidLess(*a, *b)
	})

	return rows
}

// outerKey identifies a full-outer row by side presence and ids. All other
// columns derive from the two ids, so this is enough to collapse rows that
// both constituent left joins produce.
type outerKey struct {
	hasUser    bool
	userID     uuid.UUID
	hasProfile bool
	profileID  uuid.UUID
}

// ProfilesFullOuterUnion emulates a full outer join of users and profiles
// with two left joins and a deduplicating union: all users whether or not
// profiled, all profiles whether or not user-matched, matched pairs exactly
// once. Ordered by user id; orphan profiles (no matching user) come last,
// ordered among themselves by profile id.
func ProfilesFullOuterUnion(d *Dataset) []UserProfileOuterRow {
	users := usersByID(d)
	profiles := profilesByUser(d)

	seen := make(map[outerKey]struct{}, len(d.Users)+len(d.Profiles))
	rows := make([]UserProfileOuterRow, 0, len(d.Users)+len(d.Profiles))

	add := func(u *entity.User, p *entity.Profile) {
		var key outerKey
		var row UserProfileOuterRow
		if u != nil {
			key.hasUser = true
			key.userID = u.ID
			id := u.ID
			email := u.Email
			row.UserID = &id
			row.Email = &email
		}
		if p != nil {
			key.hasProfile = true
			key.profileID = p.ID
			id := p.ID
			row.ProfileID = &id
			row.Phone = p.Phone
			row.City = p.City
			row.Country = p.Country
		}
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		rows = append(rows, row)
	}

	// Left join by user: every user, with each of its profiles if any.
	for _, u := range sortedUsers(d) {
		matched := profiles[u.ID]
		if len(matched) == 0 {
			add(&u, nil)
			continue
		}
		for i := range matched {
			add(&u, &matched[i])
		}
	}

	// Left join by profile: contributes only the orphan profiles, every
	// matched pair is already present from the first pass.
	for _, p := range sortedProfiles(d) {
		if u, ok := users[p.UserID]; ok {
			add(&u, &p)
			continue
		}
		add(nil, &p)
	}

	return rows
}

// UserRoleCombinations is the plain Cartesian product of users and roles,
// |users| x |roles| rows with no predicate at all. Ordered by user id,
// then role name.
func UserRoleCombinations(d *Dataset) []UserRoleRow {
	roles := sortedRoles(d)

	rows := make([]UserRoleRow, 0, len(d.Users)*len(d.Roles))
	for _, u := range sortedUsers(d) {
		for _, role := range roles {
			rows = append(rows, UserRoleRow{
				UserID:   u.ID,
				Email:    u.Email,
				RoleName: role.RoleName,
			})
		}
	}

	return rows
}

// Referrals self-joins users over the referral edges: one row per edge
// whose referrer and referred users both exist. Ordered by referred_at
// descending, ties by referral id.
func Referrals(d *Dataset) []ReferralRow {
	users := usersByID(d)

	refs := make([]entity.Referral, len(d.Referrals))
	copy(refs, d.Referrals)
	sort.Slice(refs, func(i, j int) bool {
		if !refs[i].ReferredAt.Equal(refs[j].ReferredAt) {
			return refs[i].ReferredAt.After(refs[j].ReferredAt)
		}
		return uuidLess(refs[i].ID, refs[j].ID)
	})

	rows := make([]ReferralRow, 0, len(refs))
	for _, ref := range refs {
		referrer, ok := users[ref.ReferrerUserID]
		if !ok {
			continue
		}
		referred, ok := users[ref.ReferredUserID]
		if !ok {
			continue
		}
		rows = append(rows, ReferralRow{
			ReferrerUserID: referrer.ID,
			ReferrerEmail:  referrer.Email,
			ReferredUserID: referred.ID,
			ReferredEmail:  referred.Email,
			ReferredAt:     ref.ReferredAt,
		})
	}

	return rows
}

// LatestLoginPerUser picks, per user, the audit row with the maximum
// occurred_at, then left-joins it onto the full user catalog so users with
// no logins still appear with absent fields. When two audit rows share the
// same maximum timestamp the one with the greater id wins, keeping the
// report one row per user. Ordered by user id.
func LatestLoginPerUser(d *Dataset) []LatestLoginRow {
	best := make(map[uuid.UUID]entity.LoginAudit, len(d.Users))
	for _, la := range d.LoginAudit {
		cur, ok := best[la.UserID]
		switch {
		case !ok:
			best[la.UserID] = la
		case la.OccurredAt.After(cur.OccurredAt):
			best[la.UserID] = la
		case la.OccurredAt.Equal(cur.OccurredAt) && uuidLess(cur.ID, la.ID):
			best[la.UserID] = la
		}
	}

	rows := make([]LatestLoginRow, 0, len(d.Users))
	for _, u := range sortedUsers(d) {
		row := LatestLoginRow{UserID: u.ID, Email: u.Email}
		if la, ok := best[u.ID]; ok {
			ip := la.IPAddress
			at := la.OccurredAt
			row.IPAddress = &ip
			row.OccurredAt = &at
		}
		rows = append(rows, row)
	}

	return rows
}
