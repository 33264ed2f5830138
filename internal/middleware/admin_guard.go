package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/bookloft/bookstore_backend/internal/core/domain"
)

// AccessDecision is the outcome of evaluating a session against an
// admin-only route.
type AccessDecision int

const (
	// DecisionRedirectToLogin sends the caller to the login page, preserving
	// the originally requested path.
	DecisionRedirectToLogin AccessDecision = iota
	// DecisionDeny rejects an authenticated caller who lacks the admin role.
	DecisionDeny
	// DecisionAllow lets the request through with the session intact.
	DecisionAllow
)

// DecideAccess evaluates a session for an admin-only route. Anonymous callers
// are redirected to login; authenticated non-admins are denied outright.
func DecideAccess(session *domain.Session) AccessDecision {
	if session == nil {
		return DecisionRedirectToLogin
	}
	if !session.IsAdmin() {
		return DecisionDeny
	}
	return DecisionAllow
}

// RequireAdmin creates a Gin middleware that guards admin routes. loginPath
// is where anonymous callers are redirected; the original path travels in the
// "next" query parameter so login can return the caller where they started.
func RequireAdmin(loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := SessionFromContext(c.Request.Context())

		switch DecideAccess(session) {
		case DecisionAllow:
			c.Next()

		case DecisionDeny:
			GetLoggerFromCtx(c.Request.Context()).Warn("Non-admin attempted to access admin route")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})

		default:
			target := loginPath + "?next=" + url.QueryEscape(c.Request.URL.RequestURI())
			c.Redirect(http.StatusFound, target)
			c.Abort()
		}
	}
}
