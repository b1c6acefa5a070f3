package handlers

import (
	"lpg-backoffice/internal/auth"
	"lpg-backoffice/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func adminIdentity() *auth.Identity {
	id := uuid.New()
	return &auth.Identity{
		UserID:     id,
		Email:      "owner@gasagency.in",
		Name:       "Ravi Agencies",
		Role:       models.RoleAdmin,
		AdminID:    &id,
		IsVerified: true,
	}
}

func staffIdentity(adminID uuid.UUID) *auth.Identity {
	return &auth.Identity{
		UserID:     uuid.New(),
		Email:      "counter@gasagency.in",
		Role:       models.RoleStaff,
		AdminID:    &adminID,
		IsVerified: true,
	}
}

// authenticateAs stands in for auth.RequireAuth in handler tests
func authenticateAs(identity *auth.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		if identity != nil {
			auth.SetIdentity(c, identity)
		}
		c.Next()
	}
}
