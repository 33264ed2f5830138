package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/bookloft/bookstore_backend/internal/apperrors"
	portssvc "github.com/bookloft/bookstore_backend/internal/core/ports/services"
	"github.com/bookloft/bookstore_backend/internal/dto"
	"github.com/bookloft/bookstore_backend/internal/middleware"
	"github.com/bookloft/bookstore_backend/internal/platform/config"
	"github.com/bookloft/bookstore_backend/internal/utils"
)

// authHandler handles authentication related requests.
type authHandler struct {
	cfg          *config.Config
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
}

func newAuthHandler(cfg *config.Config, us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade) *authHandler {
	return &authHandler{cfg: cfg, userService: us, tokenService: ts}
}

// registerAuthRoutes sets up the authentication routes. Credential endpoints
// are rate limited per IP.
func registerAuthRoutes(rg *gin.RouterGroup, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newAuthHandler(cfg, services.User, services.Token)

	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	limitMiddleware := middleware.RateLimit(limiter.New(store, rate))

	auth := rg.Group("/auth")
	{
		auth.POST("/register", limitMiddleware, h.register)
		auth.POST("/login", limitMiddleware, h.login)
		auth.POST("/refresh", limitMiddleware, h.refresh)
		auth.POST("/logout", h.logout)
		auth.GET("/me", h.me)
	}

	registerGoogleOAuthRoutes(auth, cfg, services)
}

// register godoc
// @Summary Register a member account
// @Description Creates a member account and signs the caller in. Tokens travel in HttpOnly cookies.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "Registration details"
// @Success 201 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Email already registered"})
			return
		}
		logger.Error("Failed to register user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to register user"})
		return
	}

	pair, err := h.tokenService.IssueTokenPair(c.Request.Context(), user)
	if err != nil {
		logger.Error("Failed to issue token pair after registration", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to sign in"})
		return
	}

	middleware.SetAuthCookies(c, h.cfg, pair)
	c.JSON(http.StatusCreated, dto.LoginResponse{
		User:                 dto.ToUserResponse(user),
		AccessTokenExpiresAt: pair.AccessTokenExpiresAt,
	})
}

// login godoc
// @Summary Sign in
// @Description Authenticates with email and password. Tokens travel in HttpOnly cookies, not the body.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	user, err := h.userService.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		// Same answer for unknown email and bad password.
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid email or password"})
		return
	}
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid email or password"})
		return
	}

	pair, err := h.tokenService.IssueTokenPair(c.Request.Context(), user)
	if err != nil {
		logger.Error("Failed to issue token pair", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to sign in"})
		return
	}

	middleware.SetAuthCookies(c, h.cfg, pair)
	c.JSON(http.StatusOK, dto.LoginResponse{
		User:                 dto.ToUserResponse(user),
		AccessTokenExpiresAt: pair.AccessTokenExpiresAt,
	})
}

// refresh godoc
// @Summary Refresh the session
// @Description Rotates the token pair using the refresh token cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/refresh [post]
func (h *authHandler) refresh(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	refreshToken, err := c.Cookie(h.cfg.RefreshTokenCookieName)
	if err != nil || refreshToken == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "No refresh token"})
		return
	}

	// The access token identifies whose refresh token this is; an expired
	// one is fine here.
	accessToken, cookieErr := c.Cookie(h.cfg.AccessTokenCookieName)
	if cookieErr != nil || accessToken == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "No session to refresh"})
		return
	}
	claims, parseErr := utils.ParseAndValidateJWT(accessToken, h.cfg.JWTSecret)
	if claims == nil || claims.Subject == "" {
		if parseErr != nil {
			logger.Debug("Refresh rejected: access token unusable", slog.String("error", parseErr.Error()))
		}
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid session"})
		return
	}

	user, pair, err := h.tokenService.Refresh(c.Request.Context(), claims.Subject, refreshToken)
	if err != nil {
		logger.Warn("Refresh failed", slog.String("error", err.Error()))
		middleware.ClearAuthCookies(c, h.cfg)
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Session expired, please sign in again"})
		return
	}

	middleware.SetAuthCookies(c, h.cfg, pair)
	c.JSON(http.StatusOK, dto.LoginResponse{
		User:                 dto.ToUserResponse(user),
		AccessTokenExpiresAt: pair.AccessTokenExpiresAt,
	})
}

// logout godoc
// @Summary Sign out
// @Description Invalidates the stored refresh token and clears both cookies.
// @Tags auth
// @Produce json
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if userID, ok := middleware.GetUserIDFromContext(c); ok {
		if err := h.tokenService.Invalidate(c.Request.Context(), userID); err != nil {
			logger.Warn("Failed to invalidate refresh token on logout", slog.String("error", err.Error()))
		}
	}

	middleware.ClearAuthCookies(c, h.cfg)
	c.Status(http.StatusNoContent)
}

// me godoc
// @Summary Get the signed-in user
// @Tags auth
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/me [get]
func (h *authHandler) me(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Not signed in"})
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Not signed in"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to load user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load user"})
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
