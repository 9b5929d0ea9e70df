package repository

import (
	"account-insights/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User       UserRepository
	Session    SessionRepository
	Profile    ProfileRepository
	LoginAudit LoginAuditRepository
	Snapshot   SnapshotRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:       NewUserRepository(db, log),
		Session:    NewSessionRepository(db, log),
		Profile:    NewProfileRepository(db, log),
		LoginAudit: NewLoginAuditRepository(db, log),
		Snapshot:   NewSnapshotRepository(db, log),
	}
}
