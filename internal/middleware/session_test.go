package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bookloft/bookstore_backend/internal/apperrors"
	"github.com/bookloft/bookstore_backend/internal/core/domain"
	"github.com/bookloft/bookstore_backend/internal/dto"
	"github.com/bookloft/bookstore_backend/internal/middleware"
	"github.com/bookloft/bookstore_backend/internal/platform/config"
	"github.com/bookloft/bookstore_backend/internal/utils"
)

// --- Mock TokenSvcFacade ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) IssueTokenPair(ctx context.Context, user *domain.User) (*dto.TokenPair, error) {
	args := m.Called(ctx, user)
	var pair *dto.TokenPair
	if args.Get(0) != nil {
		pair = args.Get(0).(*dto.TokenPair)
	}
	return pair, args.Error(1)
}

func (m *MockTokenService) Refresh(ctx context.Context, userID, refreshToken string) (*domain.User, *dto.TokenPair, error) {
	args := m.Called(ctx, userID, refreshToken)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	var pair *dto.TokenPair
	if args.Get(1) != nil {
		pair = args.Get(1).(*dto.TokenPair)
	}
	return user, pair, args.Error(2)
}

func (m *MockTokenService) Invalidate(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func sessionTestConfig() *config.Config {
	return &config.Config{
		JWTSecret:                  "test-secret",
		JWTExpiryDuration:          time.Hour,
		JWTIssuer:                  "test-issuer",
		RefreshTokenExpiryDuration: 7 * 24 * time.Hour,
		AccessTokenCookieName:      "atid",
		RefreshTokenCookieName:     "rtid",
		RefreshTokenCookiePath:     "/",
	}
}

// newSessionRouter wires the resolver in front of a probe handler that
// reports the resolved session.
func newSessionRouter(cfg *config.Config, tokenSvc *MockTokenService, captured **domain.Session) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.SessionResolver(cfg, tokenSvc))
	r.GET("/probe", func(c *gin.Context) {
		*captured = middleware.SessionFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})
	return r
}

func TestSessionResolver_NoToken(t *testing.T) {
	cfg := sessionTestConfig()
	tokenSvc := new(MockTokenService)
	var session *domain.Session
	r := newSessionRouter(cfg, tokenSvc, &session)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Nil(t, session)
}

func TestSessionResolver_ValidCookie(t *testing.T) {
	cfg := sessionTestConfig()
	tokenSvc := new(MockTokenService)
	var session *domain.Session
	r := newSessionRouter(cfg, tokenSvc, &session)

	userID := uuid.NewString()
	token, err := utils.GenerateJWT(userID, domain.RoleAdmin, cfg.JWTSecret, cfg.JWTExpiryDuration, cfg.JWTIssuer)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.AddCookie(&http.Cookie{Name: "atid", Value: token})
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, session)
	require.Equal(t, userID, session.UserID)
	require.Equal(t, domain.RoleAdmin, session.Role)
}

func TestSessionResolver_BearerHeader(t *testing.T) {
	cfg := sessionTestConfig()
	tokenSvc := new(MockTokenService)
	var session *domain.Session
	r := newSessionRouter(cfg, tokenSvc, &session)

	userID := uuid.NewString()
	token, err := utils.GenerateJWT(userID, domain.RoleMember, cfg.JWTSecret, cfg.JWTExpiryDuration, cfg.JWTIssuer)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, session)
	require.Equal(t, userID, session.UserID)
}

func TestSessionResolver_GarbageTokenIsAnonymous(t *testing.T) {
	cfg := sessionTestConfig()
	tokenSvc := new(MockTokenService)
	var session *domain.Session
	r := newSessionRouter(cfg, tokenSvc, &session)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.AddCookie(&http.Cookie{Name: "atid", Value: "not-a-jwt"})
	r.ServeHTTP(w, req)

	// The resolver never rejects the request itself.
	require.Equal(t, http.StatusOK, w.Code)
	require.Nil(t, session)
}

func TestSessionResolver_ExpiredTokenRefreshedOnce(t *testing.T) {
	cfg := sessionTestConfig()
	tokenSvc := new(MockTokenService)
	var session *domain.Session
	r := newSessionRouter(cfg, tokenSvc, &session)

	userID := uuid.NewString()
	expired, err := utils.GenerateJWT(userID, domain.RoleMember, cfg.JWTSecret, -time.Minute, cfg.JWTIssuer)
	require.NoError(t, err)

	fresh, err := utils.GenerateJWT(userID, domain.RoleMember, cfg.JWTSecret, cfg.JWTExpiryDuration, cfg.JWTIssuer)
	require.NoError(t, err)

	user := &domain.User{UserID: userID, Role: domain.RoleMember}
	pair := &dto.TokenPair{
		AccessToken:           fresh,
		AccessTokenExpiresAt:  time.Now().Add(cfg.JWTExpiryDuration),
		RefreshToken:          "rotated-refresh-token",
		RefreshTokenExpiresAt: time.Now().Add(cfg.RefreshTokenExpiryDuration),
	}
	tokenSvc.On("Refresh", mock.Anything, userID, "old-refresh-token").Return(user, pair, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.AddCookie(&http.Cookie{Name: "atid", Value: expired})
	req.AddCookie(&http.Cookie{Name: "rtid", Value: "old-refresh-token"})
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, session)
	require.Equal(t, userID, session.UserID)

	// New cookies must carry the rotated pair.
	cookies := w.Result().Cookies()
	byName := map[string]*http.Cookie{}
	for _, ck := range cookies {
		byName[ck.Name] = ck
	}
	require.Contains(t, byName, "atid")
	require.Contains(t, byName, "rtid")
	require.Equal(t, fresh, byName["atid"].Value)
	require.Equal(t, "rotated-refresh-token", byName["rtid"].Value)

	tokenSvc.AssertNumberOfCalls(t, "Refresh", 1)
	tokenSvc.AssertExpectations(t)
}

func TestSessionResolver_ExpiredWithoutRefreshToken(t *testing.T) {
	cfg := sessionTestConfig()
	tokenSvc := new(MockTokenService)
	var session *domain.Session
	r := newSessionRouter(cfg, tokenSvc, &session)

	expired, err := utils.GenerateJWT(uuid.NewString(), domain.RoleMember, cfg.JWTSecret, -time.Minute, cfg.JWTIssuer)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.AddCookie(&http.Cookie{Name: "atid", Value: expired})
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Nil(t, session)
	tokenSvc.AssertNotCalled(t, "Refresh", mock.Anything, mock.Anything, mock.Anything)
}

func TestSessionResolver_FailedRefreshIsAnonymous(t *testing.T) {
	cfg := sessionTestConfig()
	tokenSvc := new(MockTokenService)
	var session *domain.Session
	r := newSessionRouter(cfg, tokenSvc, &session)

	userID := uuid.NewString()
	expired, err := utils.GenerateJWT(userID, domain.RoleMember, cfg.JWTSecret, -time.Minute, cfg.JWTIssuer)
	require.NoError(t, err)

	tokenSvc.On("Refresh", mock.Anything, userID, "stale-token").Return(nil, nil, apperrors.ErrRefreshTokenExpired).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.AddCookie(&http.Cookie{Name: "atid", Value: expired})
	req.AddCookie(&http.Cookie{Name: "rtid", Value: "stale-token"})
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Nil(t, session)
	tokenSvc.AssertExpectations(t)
}
