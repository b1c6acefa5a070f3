package handlers

import (
	"net/http"
	"strings"

	"lpg-backoffice/internal/database/models"
	"lpg-backoffice/internal/service"

	"github.com/gin-gonic/gin"
)

// ConsoleHandler handles the super admin console
type ConsoleHandler struct {
	service service.ConsoleServiceInterface
}

// NewConsoleHandler creates a new console handler
func NewConsoleHandler(service service.ConsoleServiceInterface) *ConsoleHandler {
	return &ConsoleHandler{service: service}
}

// ListAdmins handles GET /api/admin/admins
// @Summary List distributors
// @Description Admins with per-tenant customer and staff counts
// @Tags admin
// @Produce json
// @Param q query string false "Search by email, name or business"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.PageResult[repository.TenantSummary] "Admin page"
// @Failure 403 {object} ErrorResponse "Super admin only"
// @Security BearerAuth
// @Router /admin/admins [get]
func (h *ConsoleHandler) ListAdmins(c *gin.Context) {
	page, pageSize := pageParams(c)
	result, err := h.service.ListAdmins(c.Request.Context(), c.Query("q"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, result)
}

// SetAdminStatus handles PATCH /api/admin/admins/:id/status
// @Summary Suspend or reactivate a distributor
// @Description The status cascades to the tenant's staff
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Admin ID (UUID)"
// @Param request body service.SetAdminStatusRequest true "New status"
// @Success 200 {object} service.AdminStatusResult "Status changed"
// @Failure 404 {object} ErrorResponse "Admin not found"
// @Security BearerAuth
// @Router /admin/admins/{id}/status [patch]
func (h *ConsoleHandler) SetAdminStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "admin")
	if !ok {
		return
	}
	var req service.SetAdminStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	status := models.UserStatus(strings.ToUpper(string(req.Status)))
	result, err := h.service.SetAdminStatus(c.Request.Context(), id, status)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, result)
}

// PlatformStats handles GET /api/admin/stats
// @Summary Platform totals
// @Tags admin
// @Produce json
// @Success 200 {object} repository.PlatformStats "Totals"
// @Security BearerAuth
// @Router /admin/stats [get]
func (h *ConsoleHandler) PlatformStats(c *gin.Context) {
	stats, err := h.service.PlatformStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, stats)
}

// BackupTenant handles POST /api/admin/admins/:id/backup
// @Summary Back up a distributor's data
// @Tags admin
// @Produce json
// @Param id path string true "Admin ID (UUID)"
// @Success 201 {object} models.Backup "Backup stored"
// @Failure 404 {object} ErrorResponse "Admin not found"
// @Security BearerAuth
// @Router /admin/admins/{id}/backup [post]
func (h *ConsoleHandler) BackupTenant(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "admin")
	if !ok {
		return
	}
	backup, err := h.service.BackupTenant(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, backup)
}
