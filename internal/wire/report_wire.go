package wire

import (
	"account-insights/internal/adaptor"
	"account-insights/pkg/middleware"
	"account-insights/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// wireReports mounts the seven read-only report routes. The reports take
// no parameters, so the whole group can sit behind the response cache.
func wireReports(
	r chi.Router,
	reportHandler *adaptor.ReportHandler,
	rdb *redis.Client,
	config *utils.Config,
	log *zap.Logger,
) {
	r.With(middleware.ReportCache(config.Cache, rdb, log)).Route("/api/reports", func(r chi.Router) {
		r.Get("/users-with-roles", reportHandler.UsersWithRoles)
		r.Get("/users-with-profiles", reportHandler.UsersWithProfiles)
		r.Get("/roles-right-join", reportHandler.RolesRightJoin)
		r.Get("/profiles-full-outer", reportHandler.ProfilesFullOuter)
		r.Get("/user-role-combos", reportHandler.UserRoleCombos)
		r.Get("/referrals", reportHandler.Referrals)
		r.Get("/latest-login", reportHandler.LatestLogin)
	})
}
