package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ClearStock/clearstock/internal/apierror"
	"github.com/ClearStock/clearstock/internal/config"
	"github.com/ClearStock/clearstock/internal/dto"
	"github.com/ClearStock/clearstock/internal/middleware"
	"github.com/ClearStock/clearstock/internal/service"
)

type AuthHandler struct {
	auth    service.AuthService
	tenants service.TenantService
	cfg     *config.Config
}

func NewAuthHandler(auth service.AuthService, tenants service.TenantService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{auth: auth, tenants: tenants, cfg: cfg}
}

// Login exchanges a PIN for a session cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, token, err := h.auth.Login(c.Request.Context(), req.PIN)
	if errors.Is(err, service.ErrInvalidPIN) {
		c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro interno do servidor"))
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusOK, resp)
}

// Logout destroys the server-side session and clears the cookie.
// Always succeeds, even without a valid session.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookieName); err == nil && token != "" {
		_ = h.auth.Logout(c.Request.Context(), token)
	}
	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, dto.Success("Sessão terminada."))
}

// Session reports the authenticated tenant; runs behind SessionAuth.
func (h *AuthHandler) Session(c *gin.Context) {
	restaurant, err := h.tenants.GetRestaurant(c.Request.Context(), middleware.GetRestaurantID(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Não autenticado"))
		return
	}

	c.JSON(http.StatusOK, dto.SessionInfo{
		Authenticated: true,
		Restaurant: dto.RestaurantInfo{
			ID:   restaurant.ID.String(),
			Name: restaurant.Name,
			PIN:  restaurant.PIN,
		},
		NeedsOnboarding: restaurant.Name == nil || *restaurant.Name == "",
	})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		middleware.SessionCookieName,
		token,
		int(h.auth.SessionTTL().Seconds()),
		"/",
		h.cfg.CookieDomain,
		h.cfg.Env == "production",
		true,
	)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", h.cfg.CookieDomain, h.cfg.Env == "production", true)
}
