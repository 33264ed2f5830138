package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/bookloft/bookstore_backend/internal/core/ports/services"
	"github.com/bookloft/bookstore_backend/internal/middleware"
	"github.com/bookloft/bookstore_backend/internal/platform/config"
	"github.com/bookloft/bookstore_backend/internal/utils"
)

const oauthStateCookieName = "oauth_state"

// googleOAuthHandler drives the Google sign-in flow.
type googleOAuthHandler struct {
	cfg          *config.Config
	oauthService portssvc.GoogleOAuthSvcFacade
	tokenService portssvc.TokenSvcFacade
}

// registerGoogleOAuthRoutes mounts the Google sign-in flow under the auth group.
func registerGoogleOAuthRoutes(rg *gin.RouterGroup, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := &googleOAuthHandler{cfg: cfg, oauthService: services.GoogleOAuth, tokenService: services.Token}

	rg.GET("/google", h.beginGoogleLogin)
	rg.GET("/google/callback", h.googleCallback)
}

// beginGoogleLogin godoc
// @Summary Start Google sign-in
// @Description Redirects to the Google consent screen with an anti-forgery state cookie.
// @Tags auth
// @Success 302 "Redirect to Google"
// @Router /auth/google [get]
func (h *googleOAuthHandler) beginGoogleLogin(c *gin.Context) {
	state, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to generate OAuth state", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to start sign-in"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookieName, state, 600, "/", "", h.cfg.IsProduction, true)
	c.Redirect(http.StatusFound, h.oauthService.AuthCodeURL(state))
}

// googleCallback godoc
// @Summary Complete Google sign-in
// @Description Validates the state, exchanges the code, signs the user in and redirects back to the storefront.
// @Tags auth
// @Success 302 "Redirect to the storefront"
// @Failure 401 {object} ErrorResponse
// @Router /auth/google/callback [get]
func (h *googleOAuthHandler) googleCallback(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	expectedState, err := c.Cookie(oauthStateCookieName)
	if err != nil || expectedState == "" || c.Query("state") != expectedState {
		logger.Warn("Google callback state mismatch")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid sign-in state"})
		return
	}
	// One shot: the state cookie dies with this attempt.
	c.SetCookie(oauthStateCookieName, "", -1, "/", "", h.cfg.IsProduction, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Missing authorization code"})
		return
	}

	user, err := h.oauthService.HandleCallback(c.Request.Context(), code)
	if err != nil {
		logger.Warn("Google callback failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Google sign-in failed"})
		return
	}

	pair, err := h.tokenService.IssueTokenPair(c.Request.Context(), user)
	if err != nil {
		logger.Error("Failed to issue token pair after Google sign-in", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to sign in"})
		return
	}

	middleware.SetAuthCookies(c, h.cfg, pair)
	logger.Info("User signed in via Google", slog.String("user_id", user.UserID))
	c.Redirect(http.StatusFound, h.cfg.FrontendBaseURL)
}
