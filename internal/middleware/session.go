package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	portssvc "github.com/bookloft/bookstore_backend/internal/core/ports/services"
	"github.com/bookloft/bookstore_backend/internal/dto"
	"github.com/bookloft/bookstore_backend/internal/platform/config"
	"github.com/bookloft/bookstore_backend/internal/utils"
)

// SessionResolver creates a Gin middleware that resolves the caller's session
// from the access token cookie or the Authorization header. It never aborts:
// anonymous or invalid tokens simply leave the request without a session.
//
// When the access token is expired and a refresh token cookie is present, it
// attempts the refresh exactly once; a failed refresh falls back to anonymous.
func SessionResolver(cfg *config.Config, tokenSvc portssvc.TokenSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		tokenString := accessTokenFromRequest(c, cfg)
		if tokenString == "" {
			c.Next()
			return
		}

		claims, err := utils.ParseAndValidateJWT(tokenString, cfg.JWTSecret)
		switch {
		case err == nil:
			attachSession(c, claims)

		case utils.IsTokenExpired(err) && claims != nil && claims.Subject != "":
			refreshToken, cookieErr := c.Cookie(cfg.RefreshTokenCookieName)
			if cookieErr != nil || refreshToken == "" {
				logger.Debug("Access token expired and no refresh token present")
				break
			}
			user, pair, refreshErr := tokenSvc.Refresh(c.Request.Context(), claims.Subject, refreshToken)
			if refreshErr != nil {
				logger.Warn("Token refresh failed", slog.String("error", refreshErr.Error()))
				break
			}
			SetAuthCookies(c, cfg, pair)
			newClaims, parseErr := utils.ParseAndValidateJWT(pair.AccessToken, cfg.JWTSecret)
			if parseErr != nil {
				logger.Error("Freshly issued access token failed validation", slog.String("error", parseErr.Error()))
				break
			}
			logger.Info("Session refreshed", slog.String("user_id", user.UserID))
			attachSession(c, newClaims)

		default:
			logger.Debug("Invalid access token", slog.String("error", err.Error()))
		}

		c.Next()
	}
}

// accessTokenFromRequest pulls the raw access token from the session cookie,
// falling back to a Bearer Authorization header.
func accessTokenFromRequest(c *gin.Context, cfg *config.Config) string {
	if token, err := c.Cookie(cfg.AccessTokenCookieName); err == nil && token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// attachSession stores the session in the request context and enriches the
// request logger with the user ID.
func attachSession(c *gin.Context, claims *utils.SessionClaims) {
	session := utils.SessionFromClaims(claims)

	logger := GetLoggerFromCtx(c.Request.Context()).With(slog.String("user_id", session.UserID))
	ctx := context.WithValue(c.Request.Context(), sessionCtxKey, session)
	ctx = context.WithValue(ctx, loggerCtxKey, logger)
	c.Request = c.Request.WithContext(ctx)
}

// SetAuthCookies writes the access and refresh token cookies for an issued
// pair. Both are HttpOnly; Secure tracks the production flag.
func SetAuthCookies(c *gin.Context, cfg *config.Config, pair *dto.TokenPair) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		cfg.AccessTokenCookieName,
		pair.AccessToken,
		int(cfg.JWTExpiryDuration.Seconds()),
		"/",
		"",
		cfg.IsProduction,
		true,
	)
	c.SetCookie(
		cfg.RefreshTokenCookieName,
		pair.RefreshToken,
		int(cfg.RefreshTokenExpiryDuration.Seconds()),
		cfg.RefreshTokenCookiePath,
		"",
		cfg.IsProduction,
		true,
	)
}

// ClearAuthCookies expires both token cookies (sign-out).
func ClearAuthCookies(c *gin.Context, cfg *config.Config) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.AccessTokenCookieName, "", -1, "/", "", cfg.IsProduction, true)
	c.SetCookie(cfg.RefreshTokenCookieName, "", -1, cfg.RefreshTokenCookiePath, "", cfg.IsProduction, true)
}
