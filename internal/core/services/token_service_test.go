package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bookloft/bookstore_backend/internal/apperrors"
	"github.com/bookloft/bookstore_backend/internal/core/domain"
	portssvc "github.com/bookloft/bookstore_backend/internal/core/ports/services"
	"github.com/bookloft/bookstore_backend/internal/core/services"
	"github.com/bookloft/bookstore_backend/internal/platform/config"
	"github.com/bookloft/bookstore_backend/internal/utils"
)

type TokenServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	cfg          *config.Config
	service      portssvc.TokenSvcFacade
}

func (suite *TokenServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.cfg = &config.Config{
		JWTSecret:                  "test-secret",
		JWTExpiryDuration:          time.Hour,
		JWTIssuer:                  "test-issuer",
		RefreshTokenExpiryDuration: 7 * 24 * time.Hour,
	}
	suite.service = services.NewTokenService(suite.mockUserRepo, suite.cfg)
}

func (suite *TokenServiceTestSuite) TestIssueTokenPair_Success() {
	ctx := context.Background()
	user := &domain.User{UserID: uuid.NewString(), Role: domain.RoleMember}

	suite.mockUserRepo.On("UpdateRefreshToken", ctx, user.UserID, mock.AnythingOfType("string"), mock.AnythingOfType("*time.Time")).Return(nil).Once()

	pair, err := suite.service.IssueTokenPair(ctx, user)

	suite.Require().NoError(err)
	suite.Require().NotNil(pair)
	suite.NotEmpty(pair.AccessToken)
	suite.NotEmpty(pair.RefreshToken)
	suite.True(pair.AccessTokenExpiresAt.After(time.Now()))
	suite.True(pair.RefreshTokenExpiresAt.After(pair.AccessTokenExpiresAt))

	// The access token must carry the user's identity and role.
	claims, err := utils.ParseAndValidateJWT(pair.AccessToken, suite.cfg.JWTSecret)
	suite.Require().NoError(err)
	suite.Equal(user.UserID, claims.Subject)
	suite.Equal(string(domain.RoleMember), claims.Role)
	suite.Equal("test-issuer", claims.Issuer)

	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *TokenServiceTestSuite) TestIssueTokenPair_StoresHashNotToken() {
	ctx := context.Background()
	user := &domain.User{UserID: uuid.NewString(), Role: domain.RoleAdmin}

	var storedHash string
	suite.mockUserRepo.On("UpdateRefreshToken", ctx, user.UserID, mock.AnythingOfType("string"), mock.AnythingOfType("*time.Time")).
		Run(func(args mock.Arguments) {
			storedHash = args.String(2)
		}).Return(nil).Once()

	pair, err := suite.service.IssueTokenPair(ctx, user)

	suite.Require().NoError(err)
	suite.NotEqual(pair.RefreshToken, storedHash)
	suite.Equal(utils.HashRefreshToken(pair.RefreshToken), storedHash)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *TokenServiceTestSuite) TestRefresh_Success() {
	ctx := context.Background()
	rawToken := "raw-refresh-token"
	expiry := time.Now().Add(time.Hour)
	user := &domain.User{
		UserID:                 uuid.NewString(),
		Role:                   domain.RoleMember,
		RefreshTokenHash:       utils.HashRefreshToken(rawToken),
		RefreshTokenExpiryTime: &expiry,
	}

	suite.mockUserRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()
	suite.mockUserRepo.On("UpdateRefreshToken", ctx, user.UserID, mock.AnythingOfType("string"), mock.AnythingOfType("*time.Time")).Return(nil).Once()

	gotUser, pair, err := suite.service.Refresh(ctx, user.UserID, rawToken)

	suite.Require().NoError(err)
	suite.Equal(user.UserID, gotUser.UserID)
	suite.Require().NotNil(pair)
	suite.NotEqual(rawToken, pair.RefreshToken) // rotated
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *TokenServiceTestSuite) TestRefresh_WrongToken() {
	ctx := context.Background()
	expiry := time.Now().Add(time.Hour)
	user := &domain.User{
		UserID:                 uuid.NewString(),
		RefreshTokenHash:       utils.HashRefreshToken("the-real-token"),
		RefreshTokenExpiryTime: &expiry,
	}

	suite.mockUserRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()

	_, pair, err := suite.service.Refresh(ctx, user.UserID, "some-other-token")

	suite.Require().Error(err)
	suite.Nil(pair)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateRefreshToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *TokenServiceTestSuite) TestRefresh_Expired() {
	ctx := context.Background()
	rawToken := "raw-refresh-token"
	expiry := time.Now().Add(-time.Minute)
	user := &domain.User{
		UserID:                 uuid.NewString(),
		RefreshTokenHash:       utils.HashRefreshToken(rawToken),
		RefreshTokenExpiryTime: &expiry,
	}

	suite.mockUserRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()

	_, pair, err := suite.service.Refresh(ctx, user.UserID, rawToken)

	suite.Require().Error(err)
	suite.Nil(pair)
	suite.ErrorIs(err, apperrors.ErrRefreshTokenExpired)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *TokenServiceTestSuite) TestRefresh_NoStoredToken() {
	ctx := context.Background()
	user := &domain.User{UserID: uuid.NewString()}

	suite.mockUserRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()

	_, pair, err := suite.service.Refresh(ctx, user.UserID, "anything")

	suite.Require().Error(err)
	suite.Nil(pair)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *TokenServiceTestSuite) TestInvalidate_ClearsToken() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("UpdateRefreshToken", ctx, userID, "", (*time.Time)(nil)).Return(nil).Once()

	err := suite.service.Invalidate(ctx, userID)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestTokenServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}
