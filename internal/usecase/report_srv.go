package usecase

import (
	"context"
	"fmt"

	"account-insights/internal/data/repository"
	"account-insights/internal/report"

	"go.uber.org/zap"
)

// ReportService runs the fixed reports. Every method loads one consistent
// snapshot, hands it to the matching operator, and returns the ordered
// rows. A store failure surfaces as the single "report query failed"
// condition with zero rows, never a partial result.
type ReportService interface {
	UsersWithRoles(ctx context.Context) ([]report.UserRoleRow, error)
	UsersWithProfiles(ctx context.Context) ([]report.UserProfileRow, error)
	RolesWithAssignment(ctx context.Context) ([]report.RoleAssignmentRow, error)
	ProfilesFullOuter(ctx context.Context) ([]report.UserProfileOuterRow, error)
	UserRoleCombinations(ctx context.Context) ([]report.UserRoleRow, error)
	Referrals(ctx context.Context) ([]report.ReferralRow, error)
	LatestLoginPerUser(ctx context.Context) ([]report.LatestLoginRow, error)
}

type reportService struct {
	snapshot repository.SnapshotRepository
	log      *zap.Logger
}

func NewReportService(snapshot repository.SnapshotRepository, log *zap.Logger) ReportService {
	return &reportService{
		snapshot: snapshot,
		log:      log,
	}
}

// loadDataset wraps any store failure into the uniform report error
func (s *reportService) loadDataset(ctx context.Context, reportName string) (*report.Dataset, error) {
	dataset, err := s.snapshot.LoadSnapshot(ctx)
	if err != nil {
		s.log.Error("Failed to load report snapshot",
			zap.Error(err),
			zap.String("report", reportName),
		)
		return nil, fmt.Errorf("report query failed: %w", err)
	}
	return dataset, nil
}

func (s *reportService) UsersWithRoles(ctx context.Context) ([]report.UserRoleRow, error) {
	dataset, err := s.loadDataset(ctx, "users_with_roles")
	if err != nil {
		return nil, err
	}
	return report.UsersWithRoles(dataset), nil
}

func (s *reportService) UsersWithProfiles(ctx context.Context) ([]report.UserProfileRow, error) {
	dataset, err := s.loadDataset(ctx, "users_with_profiles")
	if err != nil {
		return nil, err
	}
	return report.UsersWithProfiles(dataset), nil
}

func (s *reportService) RolesWithAssignment(ctx context.Context) ([]report.RoleAssignmentRow, error) {
	dataset, err := s.loadDataset(ctx, "roles_with_assignment")
	if err != nil {
		return nil, err
	}
	return report.RolesWithAssignment(dataset), nil
}

func (s *reportService) ProfilesFullOuter(ctx context.Context) ([]report.UserProfileOuterRow, error) {
	dataset, err := s.loadDataset(ctx, "profiles_full_outer")
	if err != nil {
		return nil, err
	}
	return report.ProfilesFullOuterUnion(dataset), nil
}

func (s *reportService) UserRoleCombinations(ctx context.Context) ([]report.UserRoleRow, error) {
	dataset, err := s.loadDataset(ctx, "user_role_combinations")
	if err != nil {
		return nil, err
	}
	return report.UserRoleCombinations(dataset), nil
}

func (s *reportService) Referrals(ctx context.Context) ([]report.ReferralRow, error) {
	dataset, err := s.loadDataset(ctx, "referrals")
	if err != nil {
		return nil, err
	}
	return report.Referrals(dataset), nil
}

func (s *reportService) LatestLoginPerUser(ctx context.Context) ([]report.LatestLoginRow, error) {
	dataset, err := s.loadDataset(ctx, "latest_login_per_user")
	if err != nil {
		return nil, err
	}
	return report.LatestLoginPerUser(dataset), nil
}
