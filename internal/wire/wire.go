package wire

import (
	"net/http"
	"time"

	"account-insights/internal/adaptor"
	"account-insights/internal/data/repository"
	"account-insights/internal/usecase"
	"account-insights/pkg/database"
	"account-insights/pkg/middleware"
	"account-insights/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(
	db database.PgxIface,
	repo *repository.Repository,
	rdb *redis.Client,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(db, handler, repo, rdb, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router
func setupRouter(
	db database.PgxIface,
	handler *adaptor.Handler,
	repo *repository.Repository,
	rdb *redis.Client,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth, handler.User, repo, logger)
	wireReports(r, handler.Report, rdb, config, logger)

	// Health check endpoint, includes store reachability
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		dbStatus := "connected"
		if err := db.Ping(r.Context()); err != nil {
			dbStatus = "unreachable"
		}

		utils.ResponseSuccess(w, "Service healthy", map[string]any{
			"db":   dbStatus,
			"time": time.Now().UTC(),
		})
	})

	return r
}
