package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/bookloft/bookstore_backend/internal/core/domain"
	"github.com/bookloft/bookstore_backend/internal/middleware"
	"github.com/bookloft/bookstore_backend/internal/platform/config"
	"github.com/bookloft/bookstore_backend/internal/utils"
)

func TestDecideAccess(t *testing.T) {
	tests := []struct {
		name    string
		session *domain.Session
		want    middleware.AccessDecision
	}{
		{"anonymous redirects to login", nil, middleware.DecisionRedirectToLogin},
		{"member is denied", &domain.Session{UserID: "u1", Role: domain.RoleMember}, middleware.DecisionDeny},
		{"admin is allowed", &domain.Session{UserID: "u2", Role: domain.RoleAdmin}, middleware.DecisionAllow},
		{"unknown role is denied", &domain.Session{UserID: "u3", Role: "viewer"}, middleware.DecisionDeny},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, middleware.DecideAccess(tt.session))
		})
	}
}

// newGuardedRouter builds a router with the session resolver and admin guard
// in front of a probe route.
func newGuardedRouter(cfg *config.Config, captured **domain.Session) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.SessionResolver(cfg, nil))
	admin := r.Group("/admin", middleware.RequireAdmin(cfg.AdminLoginPath))
	admin.GET("/orders", func(c *gin.Context) {
		*captured = middleware.SessionFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})
	return r
}

func guardTestConfig() *config.Config {
	return &config.Config{
		JWTSecret:              "test-secret",
		JWTExpiryDuration:      time.Hour,
		JWTIssuer:              "test-issuer",
		AccessTokenCookieName:  "atid",
		RefreshTokenCookieName: "rtid",
		AdminLoginPath:         "/admin/login",
	}
}

func TestRequireAdmin_AnonymousRedirectsWithNext(t *testing.T) {
	cfg := guardTestConfig()
	var session *domain.Session
	r := newGuardedRouter(cfg, &session)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/orders?status=new", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/admin/login?next=%2Fadmin%2Forders%3Fstatus%3Dnew", w.Header().Get("Location"))
	require.Nil(t, session)
}

func TestRequireAdmin_MemberDenied(t *testing.T) {
	cfg := guardTestConfig()
	var session *domain.Session
	r := newGuardedRouter(cfg, &session)

	token, err := utils.GenerateJWT(uuid.NewString(), domain.RoleMember, cfg.JWTSecret, cfg.JWTExpiryDuration, cfg.JWTIssuer)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	req.AddCookie(&http.Cookie{Name: "atid", Value: token})
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)
	require.Nil(t, session)
}

func TestRequireAdmin_AdminAllowed(t *testing.T) {
	cfg := guardTestConfig()
	var session *domain.Session
	r := newGuardedRouter(cfg, &session)

	userID := uuid.NewString()
	token, err := utils.GenerateJWT(userID, domain.RoleAdmin, cfg.JWTSecret, cfg.JWTExpiryDuration, cfg.JWTIssuer)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	req.AddCookie(&http.Cookie{Name: "atid", Value: token})
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, session)
	require.Equal(t, userID, session.UserID)
	require.Equal(t, domain.RoleAdmin, session.Role)
}
