package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"lpg-backoffice/internal/database/models"
	"lpg-backoffice/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IdentityStore loads the current state of a session's user
type IdentityStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// Middleware resolves session tokens into identities
type Middleware struct {
	sessions   *SessionManager
	users      IdentityStore
	cookieName string
}

// NewMiddleware creates a new authentication middleware
func NewMiddleware(sessions *SessionManager, users IdentityStore, cookieName string) *Middleware {
	return &Middleware{
		sessions:   sessions,
		users:      users,
		cookieName: cookieName,
	}
}

// tokenFromRequest reads the session cookie, then the Authorization header
func (m *Middleware) tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(m.cookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return ""
	}
	return tokenString
}

// Resolve turns a request into an identity. It returns status 0 on success, otherwise the
// HTTP status and message to answer with.
func (m *Middleware) Resolve(c *gin.Context) (*Identity, int, string) {
	tokenString := m.tokenFromRequest(c)
	if tokenString == "" {
		return nil, http.StatusUnauthorized, "authentication required"
	}

	claims, err := m.sessions.Parse(tokenString)
	if err != nil {
		return nil, http.StatusUnauthorized, "invalid or expired session"
	}

	user, err := m.users.GetByID(c.Request.Context(), claims.UserUUID())
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound), err == nil && user == nil:
		return nil, http.StatusUnauthorized, "invalid or expired session"
	case err != nil:
		logger.WithContext(c.Request.Context()).WithError(err).Error("failed to load session user")
		return nil, http.StatusInternalServerError, "internal server error"
	}
	if !user.IsActive() {
		return nil, http.StatusForbidden, "account is suspended"
	}

	return NewIdentity(user), 0, ""
}

func (m *Middleware) attach(c *gin.Context, identity *Identity) {
	SetIdentity(c, identity)
	c.Request = c.Request.WithContext(logger.ContextWithUser(c.Request.Context(), identity.Email, identity.TenantID()))
}

// RequireAuth validates the session and sets the identity on the context
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, status, message := m.Resolve(c)
		if status != 0 {
			c.AbortWithStatusJSON(status, gin.H{"success": false, "error": message})
			return
		}

		m.attach(c, identity)
		c.Next()
	}
}

// OptionalAuth resolves the session if present but doesn't require it
func (m *Middleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if identity, status, _ := m.Resolve(c); status == 0 {
			m.attach(c, identity)
		}
		c.Next()
	}
}

// RequireRole allows the request only for the listed roles. It must run after RequireAuth.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "authentication required"})
			return
		}

		for _, role := range roles {
			if identity.Role == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": "insufficient role for this operation"})
	}
}
