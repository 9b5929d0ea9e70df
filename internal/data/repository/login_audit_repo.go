package repository

import (
	"context"
	"fmt"

	"account-insights/internal/data/entity"
	"account-insights/pkg/database"

	"go.uber.org/zap"
)

type LoginAuditRepository interface {
	Create(ctx context.Context, audit *entity.LoginAudit) error
}

type loginAuditRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewLoginAuditRepository(db database.PgxIface, log *zap.Logger) LoginAuditRepository {
	return &loginAuditRepository{
		db:  db,
		log: log.With(zap.String("repository", "login_audit")),
	}
}

// Create appends one login event. The table is append-only; nothing in
// this service updates or deletes audit rows.
func (r *loginAuditRepository) Create(ctx context.Context, audit *entity.LoginAudit) error {
	query := `
		INSERT INTO login_audit (id, user_id, ip_address, occurred_at, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		audit.ID,
		audit.UserID,
		audit.IPAddress,
		audit.OccurredAt,
		audit.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to record login audit",
			zap.Error(err),
			zap.String("user_id", audit.UserID.String()),
		)
		return fmt.Errorf("record login audit for user %s: %w", audit.UserID.String(), err)
	}

	return nil
}
