// Package report implements the fixed relational reports as pure functions
// over an in-memory snapshot of the store. Each operator takes one Dataset
// and returns an ordered row slice; none of them mutate the snapshot, so
// re-running an operator against the same snapshot yields identical output.
package report

import (
	"bytes"
	"sort"

	"account-insights/internal/data/entity"

	"github.com/google/uuid"
)

// Dataset is one consistent snapshot of the six report tables.
type Dataset struct {
	Users      []entity.User
	Roles      []entity.Role
	UserRoles  []entity.UserRole
	Profiles   []entity.Profile
	Referrals  []entity.Referral
	LoginAudit []entity.LoginAudit
}

// uuidLess orders uuids bytewise, matching Postgres uuid ordering
func uuidLess(a, b uuid.UUID) bool {
	return bytes.Compare(a[:], b[:]) < 0
}

// sortedUsers returns the users ordered by id without touching the snapshot
func sortedUsers(d *Dataset) []entity.User {
	users := make([]entity.User, len(d.Users))
	copy(users, d.Users)
	sort.Slice(users, func(i, j int) bool {
		return uuidLess(users[i].ID, users[j].ID)
	})
	return users
}

// sortedRoles returns the roles ordered by role_name, then id for stability
func sortedRoles(d *Dataset) []entity.Role {
	roles := make([]entity.Role, len(d.Roles))
	copy(roles, d.Roles)
	sort.Slice(roles, func(i, j int) bool {
		if roles[i].RoleName != roles[j].RoleName {
			return roles[i].RoleName < roles[j].RoleName
		}
		return uuidLess(roles[i].ID, roles[j].ID)
	})
	return roles
}

// profilesByUser indexes profiles per user, each bucket ordered by id.
// A user may own more than one profile; the reports fan out in that case.
func profilesByUser(d *Dataset) map[uuid.UUID][]entity.Profile {
	byUser := make(map[uuid.UUID][]entity.Profile, len(d.Profiles))
	for _, p := range d.Profiles {
		byUser[p.UserID] = append(byUser[p.UserID], p)
	}
	for _, bucket := range byUser {
		sort.Slice(bucket, func(i, j int) bool {
			return uuidLess(bucket[i].ID, bucket[j].ID)
		})
	}
	return byUser
}

// sortedProfiles returns all profiles ordered by id
func sortedProfiles(d *Dataset) []entity.Profile {
	profiles := make([]entity.Profile, len(d.Profiles))
	copy(profiles, d.Profiles)
	sort.Slice(profiles, func(i, j int) bool {
		return uuidLess(profiles[i].ID, profiles[j].ID)
	})
	return profiles
}

func usersByID(d *Dataset) map[uuid.UUID]entity.User {
	byID := make(map[uuid.UUID]entity.User, len(d.Users))
	for _, u := range d.Users {
		byID[u.ID] = u
	}
	return byID
}

func rolesByID(d *Dataset) map[uuid.UUID]entity.Role {
	byID := make(map[uuid.UUID]entity.Role, len(d.Roles))
	for _, r := range d.Roles {
		byID[r.ID] = r
	}
	return byID
}
