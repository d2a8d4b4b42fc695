// Package auth guards portal routes behind the stored session and provides
// optional CSRF protection for form posts.
package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/culibrary/portal/internal/entities"
)

// ContextKeyUser is the gin context key holding the session user.
const ContextKeyUser = "session_user"

// SessionLoader loads the single session user; nil means logged out.
type SessionLoader interface {
	Load() (*entities.User, error)
}

// Middleware rejects requests to protected routes when no session exists
// and injects the session user into the request context otherwise.
type Middleware struct {
	sessions    SessionLoader
	publicPaths map[string]bool
}

func NewMiddleware(sessions SessionLoader) *Middleware {
	publicPaths := map[string]bool{
		"/health":          true,
		"/ping":            true,
		"/api/auth/login":  true,
		"/api/auth/logout": true,
	}

	return &Middleware{
		sessions:    sessions,
		publicPaths: publicPaths,
	}
}

// Handler returns the gin middleware. A missing session yields 401, the
// service analogue of the login page redirect.
func (m *Middleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.publicPaths[c.Request.URL.Path] {
			c.Next()
			return
		}

		user, err := m.sessions.Load()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to load session"})
			return
		}
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}

		c.Set(ContextKeyUser, user)
		c.Next()
	}
}

// CurrentUser retrieves the session user injected by the middleware.
func CurrentUser(c *gin.Context) *entities.User {
	if value, exists := c.Get(ContextKeyUser); exists {
		if user, ok := value.(*entities.User); ok {
			return user
		}
	}
	return nil
}
