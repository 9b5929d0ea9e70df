package usecase

import (
	"context"
	"testing"

	"account-insights/internal/data/entity"
	"account-insights/internal/data/repository"
	"account-insights/internal/dto/request"
	"account-insights/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

type mockSessionRepo struct {
	mock.Mock
}

func (m *mockSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *mockSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Session), args.Error(1)
}

func (m *mockSessionRepo) Revoke(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

type mockLoginAuditRepo struct {
	mock.Mock
}

func (m *mockLoginAuditRepo) Create(ctx context.Context, audit *entity.LoginAudit) error {
	return m.Called(ctx, audit).Error(0)
}

func newAuthFixture(users *mockUserRepo, sessions *mockSessionRepo, audits *mockLoginAuditRepo) AuthService {
	repo := &repository.Repository{
		User:       users,
		Session:    sessions,
		LoginAudit: audits,
	}
	config := &utils.Config{Session: utils.SessionConfig{ExpiryHours: 24}}
	return NewAuthService(repo, config, zap.NewNop())
}

func TestSignupSuccess(t *testing.T) {
	users := new(mockUserRepo)
	sessions := new(mockSessionRepo)
	audits := new(mockLoginAuditRepo)

	users.On("FindByEmail", mock.Anything, "a@x.com").Return(nil, nil).Once()
	users.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).Return(nil).Once()
	sessions.On("Create", mock.Anything, mock.AnythingOfType("*entity.Session")).Return(nil).Once()

	svc := newAuthFixture(users, sessions, audits)

	resp, err := svc.Signup(context.Background(), &request.SignupRequest{
		Email:    "a@x.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, "a@x.com", resp.Email)
	assert.NotEmpty(t, resp.Token)
	users.AssertExpectations(t)
	sessions.AssertExpectations(t)
}

func TestSignupDuplicateEmail(t *testing.T) {
	users := new(mockUserRepo)
	sessions := new(mockSessionRepo)
	audits := new(mockLoginAuditRepo)

	existing := &entity.User{Base: entity.Base{ID: uuid.New()}, Email: "a@x.com"}
	users.On("FindByEmail", mock.Anything, "a@x.com").Return(existing, nil).Once()

	svc := newAuthFixture(users, sessions, audits)

	_, err := svc.Signup(context.Background(), &request.SignupRequest{
		Email:    "a@x.com",
		Password: "secret123",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLoginSuccessRecordsAudit(t *testing.T) {
	users := new(mockUserRepo)
	sessions := new(mockSessionRepo)
	audits := new(mockLoginAuditRepo)

	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)

	user := &entity.User{
		Base:         entity.Base{ID: uuid.New()},
		Email:        "a@x.com",
		PasswordHash: hash,
		IsActive:     true,
	}

	users.On("FindByEmail", mock.Anything, "a@x.com").Return(user, nil).Once()
	sessions.On("Create", mock.Anything, mock.AnythingOfType("*entity.Session")).Return(nil).Once()
	audits.On("Create", mock.Anything, mock.MatchedBy(func(a *entity.LoginAudit) bool {
		return a.UserID == user.ID && a.IPAddress == "10.0.0.1"
	})).Return(nil).Once()

	svc := newAuthFixture(users, sessions, audits)

	resp, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "a@x.com",
		Password: "secret123",
	}, "10.0.0.1")

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	audits.AssertExpectations(t)
}

func TestLoginWrongPassword(t *testing.T) {
	users := new(mockUserRepo)
	sessions := new(mockSessionRepo)
	audits := new(mockLoginAuditRepo)

	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)

	user := &entity.User{
		Base:         entity.Base{ID: uuid.New()},
		Email:        "a@x.com",
		PasswordHash: hash,
		IsActive:     true,
	}

	users.On("FindByEmail", mock.Anything, "a@x.com").Return(user, nil).Once()

	svc := newAuthFixture(users, sessions, audits)

	_, err = svc.Login(context.Background(), &request.LoginRequest{
		Email:    "a@x.com",
		Password: "wrongpass",
	}, "10.0.0.1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
	audits.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogoutInvalidToken(t *testing.T) {
	svc := newAuthFixture(new(mockUserRepo), new(mockSessionRepo), new(mockLoginAuditRepo))

	err := svc.Logout(context.Background(), "not-a-uuid")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token format")
}
