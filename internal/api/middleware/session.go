package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookie = "sid"
	sessionCtxKey = "session_id"

	// cookie lifetime in seconds, one year
	sessionMaxAge = 365 * 24 * 60 * 60
)

// SessionMiddleware identifies the anonymous browser session. A missing
// cookie gets a fresh id minted; the cart and catalog state key off it.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(sessionCookie)
		if err != nil || id == "" {
			id = uuid.New().String()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(sessionCookie, id, sessionMaxAge, "/", "", false, true)
		}
		c.Set(sessionCtxKey, id)
		c.Next()
	}
}

// GetSessionID returns the session id set by SessionMiddleware
func GetSessionID(c *gin.Context) (string, bool) {
	id, ok := c.Get(sessionCtxKey)
	if !ok {
		return "", false
	}
	s, ok := id.(string)
	return s, ok && s != ""
}
