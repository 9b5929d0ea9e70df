package usecase

import (
	"context"
	"errors"
	"testing"

	"account-insights/internal/data/entity"
	"account-insights/internal/report"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockSnapshotRepo struct {
	mock.Mock
}

func (m *mockSnapshotRepo) LoadSnapshot(ctx context.Context) (*report.Dataset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.Dataset), args.Error(1)
}

func TestReportServiceUsersWithRoles(t *testing.T) {
	userID := uuid.New()
	roleID := uuid.New()

	dataset := &report.Dataset{
		Users: []entity.User{
			{Base: entity.Base{ID: userID}, Email: "a@x.com"},
		},
		Roles: []entity.Role{
			{BaseSimple: entity.BaseSimple{ID: roleID}, RoleName: "admin"},
		},
		UserRoles: []entity.UserRole{
			{UserID: userID, RoleID: roleID},
		},
	}

	snapshot := new(mockSnapshotRepo)
	snapshot.On("LoadSnapshot", mock.Anything).Return(dataset, nil).Once()

	svc := NewReportService(snapshot, zap.NewNop())

	rows, err := svc.UsersWithRoles(context.Background())

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "admin", rows[0].RoleName)
	snapshot.AssertExpectations(t)
}

func TestReportServiceFailurePropagation(t *testing.T) {
	cause := errors.New("connection refused")

	snapshot := new(mockSnapshotRepo)
	snapshot.On("LoadSnapshot", mock.Anything).Return(nil, cause)

	svc := NewReportService(snapshot, zap.NewNop())
	ctx := context.Background()

	// every report surfaces the single uniform failure with zero rows
	rows, err := svc.UsersWithRoles(ctx)
	assert.Nil(t, rows)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "report query failed")
	assert.ErrorIs(t, err, cause)

	profileRows, err := svc.UsersWithProfiles(ctx)
	assert.Nil(t, profileRows)
	assert.ErrorIs(t, err, cause)

	roleRows, err := svc.RolesWithAssignment(ctx)
	assert.Nil(t, roleRows)
	assert.ErrorIs(t, err, cause)

	outerRows, err := svc.ProfilesFullOuter(ctx)
	assert.Nil(t, outerRows)
	assert.ErrorIs(t, err, cause)

	comboRows, err := svc.UserRoleCombinations(ctx)
	assert.Nil(t, comboRows)
	assert.ErrorIs(t, err, cause)

	referralRows, err := svc.Referrals(ctx)
	assert.Nil(t, referralRows)
	assert.ErrorIs(t, err, cause)

	loginRows, err := svc.LatestLoginPerUser(ctx)
	assert.Nil(t, loginRows)
	assert.ErrorIs(t, err, cause)
}

func TestReportServiceEmptyStore(t *testing.T) {
	snapshot := new(mockSnapshotRepo)
	snapshot.On("LoadSnapshot", mock.Anything).Return(&report.Dataset{}, nil)

	svc := NewReportService(snapshot, zap.NewNop())

	rows, err := svc.UserRoleCombinations(context.Background())

	require.NoError(t, err)
	assert.Empty(t, rows)
}
