package wire

import (
	"account-insights/internal/adaptor"
	"account-insights/internal/data/repository"
	"account-insights/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/auth/signup", authHandler.Signup)
	r.Post("/api/auth/login", authHandler.Login)

	// ==================== PROTECTED ROUTES ====================
	r.With(middleware.AuthSession(repo.Session, log)).Post("/api/auth/logout", authHandler.Logout)
	r.With(middleware.AuthSession(repo.Session, log)).Get("/api/auth/profile", userHandler.GetProfile)
}
