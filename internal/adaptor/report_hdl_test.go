package adaptor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"account-insights/internal/report"
	"account-insights/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockReportService struct {
	mock.Mock
}

func (m *mockReportService) UsersWithRoles(ctx context.Context) ([]report.UserRoleRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.UserRoleRow), args.Error(1)
}

func (m *mockReportService) UsersWithProfiles(ctx context.Context) ([]report.UserProfileRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.UserProfileRow), args.Error(1)
}

func (m *mockReportService) RolesWithAssignment(ctx context.Context) ([]report.RoleAssignmentRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.RoleAssignmentRow), args.Error(1)
}

func (m *mockReportService) ProfilesFullOuter(ctx context.Context) ([]report.UserProfileOuterRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.UserProfileOuterRow), args.Error(1)
}

func (m *mockReportService) UserRoleCombinations(ctx context.Context) ([]report.UserRoleRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.UserRoleRow), args.Error(1)
}

func (m *mockReportService) Referrals(ctx context.Context) ([]report.ReferralRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.ReferralRow), args.Error(1)
}

func (m *mockReportService) LatestLoginPerUser(ctx context.Context) ([]report.LatestLoginRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.LatestLoginRow), args.Error(1)
}

func TestReportHandlerSuccess(t *testing.T) {
	rows := []report.UserRoleRow{
		{UserID: uuid.New(), Email: "a@x.com", RoleName: "admin"},
	}

	service := new(mockReportService)
	service.On("UsersWithRoles", mock.Anything).Return(rows, nil).Once()

	handler := NewReportHandler(service, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/reports/users-with-roles", nil)
	rec := httptest.NewRecorder()

	handler.UsersWithRoles(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Status)

	data, ok := body.Data.([]any)
	require.True(t, ok)
	require.Len(t, data, 1)

	row, ok := data[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "a@x.com", row["email"])
	assert.Equal(t, "admin", row["role_name"])

	service.AssertExpectations(t)
}

func TestReportHandlerEmptyResult(t *testing.T) {
	service := new(mockReportService)
	service.On("UserRoleCombinations", mock.Anything).Return([]report.UserRoleRow{}, nil).Once()

	handler := NewReportHandler(service, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/reports/user-role-combos", nil)
	rec := httptest.NewRecorder()

	handler.UserRoleCombos(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Status)
}

func TestReportHandlerStoreFailure(t *testing.T) {
	service := new(mockReportService)
	service.On("LatestLoginPerUser", mock.Anything).
		Return(nil, errors.New("report query failed: connection refused")).Once()

	handler := NewReportHandler(service, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/reports/latest-login", nil)
	rec := httptest.NewRecorder()

	handler.LatestLogin(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Status)
	assert.Contains(t, body.Message, "report query failed")
	assert.Nil(t, body.Data)
}
