package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/akabanda/savings_group_app/internal/core/domain"
	portssvc "github.com/akabanda/savings_group_app/internal/core/ports/services"
	"github.com/akabanda/savings_group_app/internal/dto"
	"github.com/akabanda/savings_group_app/internal/middleware"
	"github.com/akabanda/savings_group_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	authService  portssvc.AuthSvcFacade
	tokenService portssvc.TokenSvcFacade
	cfg          *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(cfg *config.Config, services *portssvc.ServiceContainer) *AuthHandler {
	return &AuthHandler{
		authService:  services.Auth,
		tokenService: services.Token,
		cfg:          cfg,
	}
}

// registerAuthRoutes sets up the routes for authentication.
func registerAuthRoutes(rg *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(cfg, services)

	// Rate limit: 5 requests per minute per client IP on credential endpoints
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := middleware.RateLimit(ipLimiter)

	auth := rg.Group("/api/v1/auth")
	{
		auth.POST("/login", limitMiddleware, h.Login)
		auth.POST("/google", limitMiddleware, h.LoginWithGoogle)
		auth.POST("/refresh", h.Refresh)
		auth.POST("/logout", h.Logout)
		auth.GET("/me", middleware.AuthMiddleware(cfg.JWTSecret), h.Me)
	}
}

// issueSession generates the access token, sets the refresh cookie for member
// principals, and writes the login response. The configured administrator
// carries no server-side session state, so no refresh cookie is issued.
func (h *AuthHandler) issueSession(c *gin.Context, principal *domain.Principal) {
	accessToken, expiresAt, err := h.tokenService.GenerateAccessToken(c.Request.Context(), principal)
	if err != nil {
		respondServiceError(c, err, "Failed to generate token")
		return
	}

	if principal.Role != domain.RoleAdmin || principal.ID != h.cfg.AdminUserID {
		rawRefreshToken, refreshExpiry, err := h.tokenService.GenerateRefreshToken(c.Request.Context(), principal)
		if err != nil {
			respondServiceError(c, err, "Failed to generate refresh token")
			return
		}
		// The cookie carries "principalID:token" so the refresh endpoint can
		// look up the stored hash without an access token.
		cookieValue := principal.ID + ":" + rawRefreshToken
		maxAge := int(time.Until(refreshExpiry).Seconds())
		c.SetCookie(h.cfg.RefreshTokenCookieName, cookieValue, maxAge, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     accessToken,
		ExpiresAt: expiresAt,
		User:      dto.ToPrincipalResponse(principal),
	})
}

// Login godoc
// @Summary Member login
// @Description Authenticates with email and password and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Deactivated account or missing profile"
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	principal, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err, "Login failed")
		return
	}

	h.issueSession(c, principal)
}

// LoginWithGoogle godoc
// @Summary Google sign-in
// @Description Authenticates with a verified Google ID token belonging to an existing member.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.GoogleLoginRequest true "Google ID Token"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "No member profile for this Google account"
// @Router /auth/google [post]
func (h *AuthHandler) LoginWithGoogle(c *gin.Context) {
	var req dto.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	principal, err := h.authService.LoginWithGoogle(c.Request.Context(), req.IDToken)
	if err != nil {
		respondServiceError(c, err, "Google login failed")
		return
	}

	h.issueSession(c, principal)
}

// refreshCookieParts splits the "principalID:token" cookie value.
func refreshCookieParts(value string) (principalID, token string, ok bool) {
	idx := strings.IndexByte(value, ':')
	if idx <= 0 || idx == len(value)-1 {
		return "", "", false
	}
	return value[:idx], value[idx+1:], true
}

// Refresh godoc
// @Summary Refresh session
// @Description Exchanges the refresh-token cookie for a new access token.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	cookieValue, err := c.Cookie(h.cfg.RefreshTokenCookieName)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "No session to refresh"})
		return
	}
	principalID, rawToken, ok := refreshCookieParts(cookieValue)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid session cookie"})
		return
	}

	principal, err := h.authService.Refresh(c.Request.Context(), principalID, rawToken)
	if err != nil {
		// A failed refresh invalidates the cookie.
		c.SetCookie(h.cfg.RefreshTokenCookieName, "", -1, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)
		respondServiceError(c, err, "Failed to refresh session")
		return
	}

	h.issueSession(c, principal)
}

// Logout godoc
// @Summary Log out
// @Description Clears the stored refresh token and the session cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if cookieValue, err := c.Cookie(h.cfg.RefreshTokenCookieName); err == nil {
		if principalID, _, ok := refreshCookieParts(cookieValue); ok {
			if err := h.authService.Logout(c.Request.Context(), principalID); err != nil {
				logger := middleware.GetLoggerFromCtx(c.Request.Context())
				logger.Error("Failed to clear refresh token on logout", slog.String("error", err.Error()))
			}
		}
	}
	c.SetCookie(h.cfg.RefreshTokenCookieName, "", -1, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Me godoc
// @Summary Current principal
// @Description Re-resolves the authenticated principal. Deactivation takes effect here immediately.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.PrincipalResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	principalID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	principal, err := h.authService.ResolvePrincipal(c.Request.Context(), principalID)
	if err != nil {
		respondServiceError(c, err, "Failed to resolve session")
		return
	}

	c.JSON(http.StatusOK, dto.ToPrincipalResponse(principal))
}
