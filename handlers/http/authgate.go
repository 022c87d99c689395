package httpHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	trustCookieName = "admin_trust"
	trustCookieAge  = 60 * 60 * 24 * 30 // 30 days
)

// AuthGate guards the administrative routes. A device becomes trusted
// for 30 days once it presents Basic credentials exactly matching the
// configured pair; trust is carried by an http-only cookie. Guest routes
// are never wired through this middleware.
type AuthGate struct {
	username string
	password string
	secure   bool
}

func NewAuthGate(username, password string, secure bool) *AuthGate {
	return &AuthGate{
		username: username,
		password: password,
		secure:   secure,
	}
}

// Middleware returns the gin handler implementing the gate.
func (g *AuthGate) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Trusted device: skip the credential check entirely
		if cookie, err := c.Cookie(trustCookieName); err == nil && cookie == "true" {
			c.Next()
			return
		}

		user, pass, ok := c.Request.BasicAuth()
		if ok && user == g.username && pass == g.password {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(trustCookieName, "true", trustCookieAge, "/", "", g.secure, true)
			c.Next()
			return
		}

		c.Header("WWW-Authenticate", `Basic realm="Secure Area"`)
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Auth Required.",
		})
	}
}
