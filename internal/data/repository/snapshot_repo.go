package repository

import (
	"context"
	"fmt"

	"account-insights/internal/data/entity"
	"account-insights/internal/report"
	"account-insights/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// SnapshotRepository loads the six report tables as one consistent view.
type SnapshotRepository interface {
	LoadSnapshot(ctx context.Context) (*report.Dataset, error)
}

type snapshotRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSnapshotRepository(db database.PgxIface, log *zap.Logger) SnapshotRepository {
	return &snapshotRepository{
		db:  db,
		log: log.With(zap.String("repository", "snapshot")),
	}
}

// LoadSnapshot reads all report tables inside a single repeatable-read
// transaction, so every table reflects the same data version even while
// the ingest side keeps writing.
func (r *snapshotRepository) LoadSnapshot(ctx context.Context) (*report.Dataset, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		r.log.Error("Failed to begin snapshot transaction", zap.Error(err))
		return nil, fmt.Errorf("begin snapshot: %w", err)
	}
	defer tx.Rollback(ctx)

	dataset := &report.Dataset{}

	if dataset.Users, err = r.loadUsers(ctx, tx); err != nil {
		return nil, err
	}
	if dataset.Roles, err = r.loadRoles(ctx, tx); err != nil {
		return nil, err
	}
	if dataset.UserRoles, err = r.loadUserRoles(ctx, tx); err != nil {
		return nil, err
	}
	if dataset.Profiles, err = r.loadProfiles(ctx, tx); err != nil {
		return nil, err
	}
	if dataset.Referrals, err = r.loadReferrals(ctx, tx); err != nil {
		return nil, err
	}
	if dataset.LoginAudit, err = r.loadLoginAudit(ctx, tx); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit snapshot transaction", zap.Error(err))
		return nil, fmt.Errorf("commit snapshot: %w", err)
	}

	return dataset, nil
}

func (r *snapshotRepository) loadUsers(ctx context.Context, tx pgx.Tx) ([]entity.User, error) {
	query := `SELECT id, email FROM users WHERE deleted_at IS NULL`

	rows, err := tx.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to load users", zap.Error(err))
		return nil, fmt.Errorf("load users: %w", err)
	}
	defer rows.Close()

	var users []entity.User
	for rows.Next() {
		var user entity.User
		if err := rows.Scan(&user.ID, &user.Email); err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Users rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate users rows: %w", err)
	}

	return users, nil
}

func (r *snapshotRepository) loadRoles(ctx context.Context, tx pgx.Tx) ([]entity.Role, error) {
	query := `SELECT id, role_name FROM roles`

	rows, err := tx.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to load roles", zap.Error(err))
		return nil, fmt.Errorf("load roles: %w", err)
	}
	defer rows.Close()

	var roles []entity.Role
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.RoleName); err != nil {
			return nil, fmt.Errorf("scan role row: %w", err)
		}
		roles = append(roles, role)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Roles rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate roles rows: %w", err)
	}

	return roles, nil
}

func (r *snapshotRepository) loadUserRoles(ctx context.Context, tx pgx.Tx) ([]entity.UserRole, error) {
	query := `SELECT user_id, role_id FROM user_roles`

	rows, err := tx.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to load user roles", zap.Error(err))
		return nil, fmt.Errorf("load user roles: %w", err)
	}
	defer rows.Close()

	var userRoles []entity.UserRole
	for rows.Next() {
		var ur entity.UserRole
		if err := rows.Scan(&ur.UserID, &ur.RoleID); err != nil {
			return nil, fmt.Errorf("scan user role row: %w", err)
		}
		userRoles = append(userRoles, ur)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("User roles rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate user roles rows: %w", err)
	}

	return userRoles, nil
}

func (r *snapshotRepository) loadProfiles(ctx context.Context, tx pgx.Tx) ([]entity.Profile, error) {
	query := `SELECT id, user_id, phone, city, country FROM profiles`

	rows, err := tx.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to load profiles", zap.Error(err))
		return nil, fmt.Errorf("load profiles: %w", err)
	}
	defer rows.Close()

	var profiles []entity.Profile
	for rows.Next() {
		var profile entity.Profile
		err := rows.Scan(
			&profile.ID,
			&profile.UserID,
			&profile.Phone,
			&profile.City,
			&profile.Country,
		)
		if err != nil {
			return nil, fmt.Errorf("scan profile row: %w", err)
		}
		profiles = append(profiles, profile)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Profiles rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate profiles rows: %w", err)
	}

	return profiles, nil
}

func (r *snapshotRepository) loadReferrals(ctx context.Context, tx pgx.Tx) ([]entity.Referral, error) {
	query := `SELECT id, referrer_user_id, referred_user_id, referred_at FROM referrals`

	rows, err := tx.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to load referrals", zap.Error(err))
		return nil, fmt.Errorf("load referrals: %w", err)
	}
	defer rows.Close()

	var referrals []entity.Referral
	for rows.Next() {
		var referral entity.Referral
		err := rows.Scan(
			&referral.ID,
			&referral.ReferrerUserID,
			&referral.ReferredUserID,
			&referral.ReferredAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan referral row: %w", err)
		}
		referrals = append(referrals, referral)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Referrals rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate referrals rows: %w", err)
	}

	return referrals, nil
}

func (r *snapshotRepository) loadLoginAudit(ctx context.Context, tx pgx.Tx) ([]entity.LoginAudit, error) {
	query := `SELECT id, user_id, ip_address, occurred_at FROM login_audit`

	rows, err := tx.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to load login audit", zap.Error(err))
		return nil, fmt.Errorf("load login audit: %w", err)
	}
	defer rows.Close()

	var audits []entity.LoginAudit
	for rows.Next() {
		var audit entity.LoginAudit
		err := rows.Scan(
			&audit.ID,
			&audit.UserID,
			&audit.IPAddress,
			&audit.OccurredAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan login audit row: %w", err)
		}
		audits = append(audits, audit)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Login audit rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate login audit rows: %w", err)
	}

	return audits, nil
}
