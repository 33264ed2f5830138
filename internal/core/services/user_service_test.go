package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bookloft/bookstore_backend/internal/apperrors"
	"github.com/bookloft/bookstore_backend/internal/core/domain"
	portssvc "github.com/bookloft/bookstore_backend/internal/core/ports/services"
	"github.com/bookloft/bookstore_backend/internal/core/services"
	"github.com/bookloft/bookstore_backend/internal/dto"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByProvider(ctx context.Context, provider, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, provider, providerUserID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID, tokenHash string, expiresAt *time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiresAt)
	return args.Error(0)
}

func (m *MockUserRepository) DeactivateUser(ctx context.Context, userID, updatedBy string, at time.Time) error {
	args := m.Called(ctx, userID, updatedBy, at)
	return args.Error(0)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

// --- Register Tests ---
func (suite *UserServiceTestSuite) TestRegister_Success() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Email:    "Reader@Example.com",
		Name:     "Reader",
		Password: "password123",
	}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "reader@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Email == "reader@example.com" &&
			user.Role == domain.RoleMember &&
			user.PasswordHash != "" &&
			user.PasswordHash != req.Password
	})).Return(nil).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Equal("reader@example.com", user.Email)
	suite.Equal(domain.RoleMember, user.Role)
	suite.NotEmpty(user.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegister_DuplicateEmail() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Email:    "reader@example.com",
		Name:     "Reader",
		Password: "password123",
	}
	existing := &domain.User{UserID: uuid.NewString(), Email: req.Email}

	suite.mockUserRepo.On("FindUserByEmail", ctx, req.Email).Return(existing, nil).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegister_NeverGrantsAdmin() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Email:    "admin-wannabe@example.com",
		Name:     "Member",
		Password: "password123",
	}

	suite.mockUserRepo.On("FindUserByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(nil).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.RoleMember, user.Role)
	suite.False(user.Role == domain.RoleAdmin)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- FindOrCreateOAuthUser Tests ---
func (suite *UserServiceTestSuite) TestFindOrCreateOAuthUser_ExistingProviderIdentity() {
	ctx := context.Background()
	existing := &domain.User{
		UserID:         uuid.NewString(),
		Email:          "reader@example.com",
		AuthProvider:   "google",
		ProviderUserID: "sub-123",
	}

	suite.mockUserRepo.On("FindUserByProvider", ctx, "google", "sub-123").Return(existing, nil).Once()

	user, err := suite.service.FindOrCreateOAuthUser(ctx, "google", "sub-123", "reader@example.com", "Reader")

	suite.Require().NoError(err)
	suite.Equal(existing.UserID, user.UserID)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestFindOrCreateOAuthUser_LinksExistingEmailAccount() {
	ctx := context.Background()
	existing := &domain.User{
		UserID: uuid.NewString(),
		Email:  "reader@example.com",
		Role:   domain.RoleMember,
	}

	suite.mockUserRepo.On("FindUserByProvider", ctx, "google", "sub-123").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "reader@example.com").Return(existing, nil).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.UserID == existing.UserID && user.AuthProvider == "google" && user.ProviderUserID == "sub-123"
	})).Return(nil).Once()

	user, err := suite.service.FindOrCreateOAuthUser(ctx, "google", "sub-123", "reader@example.com", "Reader")

	suite.Require().NoError(err)
	suite.Equal(existing.UserID, user.UserID)
	suite.Equal("google", user.AuthProvider)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestFindOrCreateOAuthUser_CreatesMember() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByProvider", ctx, "google", "sub-456").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "new@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Email == "new@example.com" &&
			user.Role == domain.RoleMember &&
			user.AuthProvider == "google" &&
			user.ProviderUserID == "sub-456" &&
			user.PasswordHash == ""
	})).Return(nil).Once()

	user, err := suite.service.FindOrCreateOAuthUser(ctx, "google", "sub-456", "new@example.com", "New Reader")

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(user.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- GetUserByID Tests ---
func (suite *UserServiceTestSuite) TestGetUserByID_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.GetUserByID(ctx, userID)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- DeactivateUser Tests ---
func (suite *UserServiceTestSuite) TestDeactivateUser_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	adminID := uuid.NewString()
	target := &domain.User{UserID: userID}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(target, nil).Once()
	suite.mockUserRepo.On("DeactivateUser", ctx, userID, adminID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeactivateUser(ctx, userID, adminID)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestDeactivateUser_RepoError() {
	ctx := context.Background()
	userID := uuid.NewString()
	expectedErr := assert.AnError

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(nil, expectedErr).Once()

	err := suite.service.DeactivateUser(ctx, userID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
