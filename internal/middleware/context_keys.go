package middleware

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/bookloft/bookstore_backend/internal/core/domain"
)

// contextKey is a private type for request context keys. Using a custom type
// prevents collisions.
type contextKey string

const (
	loggerCtxKey  = contextKey("logger")
	sessionCtxKey = contextKey("session")
)

// GetLoggerFromCtx retrieves the request-scoped logger from the standard
// context. It returns the default logger if none is found.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return logger
}

// SessionFromContext retrieves the resolved session from the request context.
// A nil session means the request is anonymous.
func SessionFromContext(ctx context.Context) *domain.Session {
	session, ok := ctx.Value(sessionCtxKey).(*domain.Session)
	if !ok {
		return nil
	}
	return session
}

// GetUserIDFromContext retrieves the authenticated user ID from the Gin
// context. It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	session := SessionFromContext(c.Request.Context())
	if session == nil {
		return "", false
	}
	return session.UserID, true
}
