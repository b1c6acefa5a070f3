package auth

import (
	"context"

	"lpg-backoffice/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const identityKey = "auth_identity"

type ctxKey struct{}

// Identity is the resolved caller of a request
type Identity struct {
	UserID     uuid.UUID   `json:"user_id"`
	Email      string      `json:"email"`
	Name       string      `json:"name"`
	Role       models.Role `json:"role"`
	AdminID    *uuid.UUID  `json:"admin_id,omitempty"`
	IsVerified bool        `json:"is_verified"`
}

// NewIdentity builds an Identity from a stored user
func NewIdentity(u *models.User) *Identity {
	return &Identity{
		UserID:     u.ID,
		Email:      u.Email,
		Name:       u.Name,
		Role:       u.Role,
		AdminID:    u.AdminID,
		IsVerified: u.IsVerified,
	}
}

// IsSuperAdmin reports whether the identity has platform-wide rights
func (i *Identity) IsSuperAdmin() bool {
	return i != nil && i.Role == models.RoleSuperAdmin
}

// IsAdmin reports whether the identity owns a tenant
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == models.RoleAdmin
}

// TenantID returns the admin id the identity's data is scoped to, if any
func (i *Identity) TenantID() string {
	if i == nil || i.AdminID == nil {
		return ""
	}
	return i.AdminID.String()
}

// WithIdentity returns a context carrying the identity
func WithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, identity)
}

// FromContext extracts the identity stored by WithIdentity
func FromContext(ctx context.Context) (*Identity, bool) {
	identity, ok := ctx.Value(ctxKey{}).(*Identity)
	return identity, ok && identity != nil
}

// GetIdentity is a helper function to extract the identity from the gin context
func GetIdentity(c *gin.Context) (*Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return nil, false
	}

	identity, ok := value.(*Identity)
	return identity, ok && identity != nil
}

// SetIdentity stores the identity on both the gin context and the request context
func SetIdentity(c *gin.Context, identity *Identity) {
	c.Set(identityKey, identity)
	c.Request = c.Request.WithContext(WithIdentity(c.Request.Context(), identity))
}
