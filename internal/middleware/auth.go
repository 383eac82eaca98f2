package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/ClearStock/clearstock/internal/config"
	"github.com/ClearStock/clearstock/internal/service"
)

const (
	// SessionCookieName carries the opaque session token.
	SessionCookieName = "clearstock_session"
	// LegacyCookieName is the pre-session plaintext tenant-code cookie.
	// It is honored once and replaced with a real session.
	LegacyCookieName = "clearskok_restaurantId"

	// RestaurantIDKey is the gin context key holding the authenticated
	// tenant's UUID.
	RestaurantIDKey = "restaurant_id"
)

// SessionAuth validates the session cookie and stores the restaurant ID in
// the request context. Requests carrying only the legacy cookie get a fresh
// session minted transparently.
func SessionAuth(auth service.AuthService, cfg *config.Config) gin.HandlerFunc {
	secure := cfg.Env == "production"
	maxAge := int(auth.SessionTTL().Seconds())

	return func(c *gin.Context) {
		if token, err := c.Cookie(SessionCookieName); err == nil && token != "" {
			restaurantID, err := auth.ValidateSession(c.Request.Context(), token)
			if err == nil {
				c.Set(RestaurantIDKey, restaurantID)
				c.Next()
				return
			}
			if !errors.Is(err, service.ErrUnauthenticated) {
				log.Error().Err(err).Msg("session validation failed")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "Erro interno do servidor"})
				return
			}
			// Stale cookie — clear it and fall through to the legacy path.
			clearCookie(c, SessionCookieName, cfg.CookieDomain, secure)
		}

		if code, err := c.Cookie(LegacyCookieName); err == nil && code != "" {
			token, restaurantID, migErr := auth.MigrateLegacyCookie(c.Request.Context(), code)
			if migErr == nil {
				c.SetSameSite(http.SameSiteLaxMode)
				c.SetCookie(SessionCookieName, token, maxAge, "/", cfg.CookieDomain, secure, true)
				clearCookie(c, LegacyCookieName, cfg.CookieDomain, secure)
				c.Set(RestaurantIDKey, restaurantID)
				c.Next()
				return
			}
			if !errors.Is(migErr, service.ErrUnauthenticated) {
				log.Error().Err(migErr).Msg("legacy cookie migration failed")
			}
			clearCookie(c, LegacyCookieName, cfg.CookieDomain, secure)
		}

		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Não autenticado"})
	}
}

// GetRestaurantID returns the authenticated tenant from the context.
// Only valid behind SessionAuth.
func GetRestaurantID(c *gin.Context) uuid.UUID {
	id, _ := c.Get(RestaurantIDKey)
	restaurantID, _ := id.(uuid.UUID)
	return restaurantID
}

func clearCookie(c *gin.Context, name, domain string, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, "", -1, "/", domain, secure, true)
}
