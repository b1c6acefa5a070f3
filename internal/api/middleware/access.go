package middleware

import (
	"context"
	"net/http"

	"lpg-backoffice/internal/auth"
	"lpg-backoffice/internal/database/models"
	"lpg-backoffice/internal/logger"

	"github.com/gin-gonic/gin"
)

const accessLevelKey = "module_access"

// AccessEvaluator resolves an identity's level on a module
type AccessEvaluator interface {
	CheckModuleAccess(ctx context.Context, identity *auth.Identity, module models.Module) (models.AccessLevel, error)
}

// RequireModule aborts with 403 unless the caller holds at least min on module.
// It must run after auth.RequireAuth.
func RequireModule(evaluator AccessEvaluator, module models.Module, min models.AccessLevel) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := auth.GetIdentity(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "authentication required"})
			return
		}

		level, err := evaluator.CheckModuleAccess(c.Request.Context(), identity, module)
		if err != nil {
			logger.WithContext(c.Request.Context()).WithError(err).WithField("module", module).Error("module access check failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"})
			return
		}
		if !level.Allows(min) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success":  false,
				"error":    "insufficient module access",
				"module":   module,
				"access":   level,
				"required": min,
			})
			return
		}

		c.Set(accessLevelKey, level)
		c.Next()
	}
}

// ModuleAccess returns the level RequireModule resolved for this request
func ModuleAccess(c *gin.Context) (models.AccessLevel, bool) {
	v, ok := c.Get(accessLevelKey)
	if !ok {
		return "", false
	}
	level, ok := v.(models.AccessLevel)
	return level, ok
}
