package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/KN-gho/timebudget/pkg/response"
)

const (
	// SessionCookie is the cookie name set by the auth callback.
	SessionCookie = "tb_session"
	// SessionKey is the gin context key holding the resolved session.
	SessionKey = "session"
)

// Auth requires a valid session token, taken from the Authorization
// bearer header or the session cookie. The resolved session is stored
// in the gin context under SessionKey.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			if cookie, err := c.Cookie(SessionCookie); err == nil {
				token = cookie
			}
		}
		if token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		sess, ok := m.sessions.Validate(token)
		if !ok {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(SessionKey, sess)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
