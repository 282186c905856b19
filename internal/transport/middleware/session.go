package middleware

import (
	"strings"

	"github.com/Zekken26/quick-serve/internal/entity"
	"github.com/Zekken26/quick-serve/pkg/session"
	"github.com/gin-gonic/gin"
)

const (
	sessionUserKey  = "sessionUser"
	sessionTokenKey = "sessionToken"
)

// Session resolves the bearer token against the session store and
// attaches the signed-in user to the request context. A missing,
// malformed or unknown token means "no session" and is never an error
// by itself; handlers decide whether a session is required.
func Session(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token != "" {
			if user, err := store.Get(c.Request.Context(), token); err == nil {
				c.Set(sessionUserKey, user)
				c.Set(sessionTokenKey, token)
			}
		}
		c.Next()
	}
}

// SessionUser returns the signed-in user attached by the Session
// middleware, if any.
func SessionUser(c *gin.Context) (*entity.SessionUser, bool) {
	v, ok := c.Get(sessionUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*entity.SessionUser)
	return user, ok
}

// SessionToken returns the raw token of the current session, if any.
func SessionToken(c *gin.Context) (string, bool) {
	v, ok := c.Get(sessionTokenKey)
	if !ok {
		return "", false
	}
	token, ok := v.(string)
	return token, ok
}

func bearerToken(header string) string {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
