package usecase

import (
	"account-insights/internal/data/repository"
	"account-insights/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth   AuthService
	User   UserService
	Report ReportService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:   NewAuthService(repo, config, log),
		User:   NewUserService(repo, log),
		Report: NewReportService(repo.Snapshot, log),
	}
}
