package handlers

import (
	"net/http"
	"strings"

	"lpg-backoffice/internal/auth"
	"lpg-backoffice/internal/database/models"
	apperrors "lpg-backoffice/internal/errors"
	"lpg-backoffice/internal/service"

	"github.com/gin-gonic/gin"
)

// PermissionHandler exposes module access checks and permission edits
type PermissionHandler struct {
	service service.AccessServiceInterface
}

// NewPermissionHandler creates a new permission handler
func NewPermissionHandler(service service.AccessServiceInterface) *PermissionHandler {
	return &PermissionHandler{service: service}
}

// AccessCheckResponse is the caller's level on one module
type AccessCheckResponse struct {
	Module models.Module      `json:"module"`
	Access models.AccessLevel `json:"access"`
}

// Check handles GET /api/permissions/check
// @Summary Check module access
// @Description Access level of the caller on one module
// @Tags permissions
// @Produce json
// @Param module query string true "Module name" Enums(dashboard,customers,inventory,billing,payments,reports,staff,settings,backup)
// @Success 200 {object} AccessCheckResponse "Access level"
// @Failure 400 {object} ErrorResponse "Unknown module"
// @Security BearerAuth
// @Router /permissions/check [get]
func (h *PermissionHandler) Check(c *gin.Context) {
	module := models.Module(strings.ToLower(c.Query("module")))
	if module == "" {
		respondBadRequest(c, "module query parameter is required")
		return
	}
	identity, _ := auth.GetIdentity(c)
	level, err := h.service.CheckModuleAccess(c.Request.Context(), identity, module)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, AccessCheckResponse{Module: module, Access: level})
}

// Map handles GET /api/permissions
// @Summary Module access map
// @Description Access level of the caller on every module, used to build navigation
// @Tags permissions
// @Produce json
// @Success 200 {object} map[string]string "Module to access level"
// @Security BearerAuth
// @Router /permissions [get]
func (h *PermissionHandler) Map(c *gin.Context) {
	identity, _ := auth.GetIdentity(c)
	access, err := h.service.AccessMap(c.Request.Context(), identity)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, access)
}

// GuardPage handles GET /api/pages/:module
// @Summary Page guard decision
// @Description Whether a module page renders, renders read-only, redirects or shows the restricted overlay
// @Tags permissions
// @Produce json
// @Param module path string true "Module name"
// @Success 200 {object} service.PageDecision "Decision"
// @Failure 400 {object} ErrorResponse "Unknown module"
// @Router /pages/{module} [get]
func (h *PermissionHandler) GuardPage(c *gin.Context) {
	module := models.Module(strings.ToLower(c.Param("module")))
	var identity *auth.Identity
	if id, ok := auth.GetIdentity(c); ok {
		identity = id
	}
	decision, err := h.service.GuardModulePage(c.Request.Context(), identity, module)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, decision)
}

// SetUserPermissions handles PUT /api/permissions/users/:id
// @Summary Set a staff member's permissions
// @Tags permissions
// @Accept json
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Param request body service.SetPermissionsRequest true "Module levels"
// @Success 200 {object} map[string]string "Stored levels"
// @Failure 400 {object} ErrorResponse "Unknown module or level"
// @Failure 403 {object} ErrorResponse "Not an admin or target outside the tenant"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /permissions/users/{id} [put]
func (h *PermissionHandler) SetUserPermissions(c *gin.Context) {
	_, scope, ok := requestScope(c)
	if !ok {
		return
	}
	userID, ok := parseIDParam(c, "id", "user")
	if !ok {
		return
	}
	var req service.SetPermissionsRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.service.SetUserPermissions(c.Request.Context(), scope, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, result)
}

func parseRoleParam(c *gin.Context) (models.Role, bool) {
	role := models.Role(strings.ToUpper(c.Param("role")))
	if !role.IsStaff() {
		respondError(c, apperrors.ErrInvalidRole)
		return "", false
	}
	return role, true
}

// SetRolePermissions handles PUT /api/permissions/roles/:role
// @Summary Set a role's default permissions
// @Tags permissions
// @Accept json
// @Produce json
// @Param role path string true "Staff role" Enums(MANAGER,ACCOUNTANT,STAFF)
// @Param request body service.SetPermissionsRequest true "Module levels"
// @Success 200 {object} map[string]string "Stored levels"
// @Failure 400 {object} ErrorResponse "Unknown role, module or level"
// @Security BearerAuth
// @Router /permissions/roles/{role} [put]
func (h *PermissionHandler) SetRolePermissions(c *gin.Context) {
	_, scope, ok := requestScope(c)
	if !ok {
		return
	}
	role, ok := parseRoleParam(c)
	if !ok {
		return
	}
	var req service.SetPermissionsRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.service.SetRolePermissions(c.Request.Context(), scope, role, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, result)
}

// RolePermissions handles GET /api/permissions/roles/:role
func (h *PermissionHandler) RolePermissions(c *gin.Context) {
	_, scope, ok := requestScope(c)
	if !ok {
		return
	}
	role, ok := parseRoleParam(c)
	if !ok {
		return
	}
	result, err := h.service.RolePermissions(c.Request.Context(), scope, role)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, result)
}
