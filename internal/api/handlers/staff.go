package handlers

import (
	"net/http"

	"lpg-backoffice/internal/service"

	"github.com/gin-gonic/gin"
)

// StaffHandler handles HTTP requests for an admin's staff
type StaffHandler struct {
	service service.StaffServiceInterface
}

// NewStaffHandler creates a new staff handler
func NewStaffHandler(service service.StaffServiceInterface) *StaffHandler {
	return &StaffHandler{service: service}
}

// ListStaff handles GET /api/staff
// @Summary List staff
// @Tags staff
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.PageResult[service.UserResponse] "Staff page"
// @Security BearerAuth
// @Router /staff [get]
func (h *StaffHandler) ListStaff(c *gin.Context) {
	_, scope, ok := requestScope(c)
	if !ok {
		return
	}
	page, pageSize := pageParams(c)
	result, err := h.service.List(c.Request.Context(), scope, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, result)
}

// GetStaff handles GET /api/staff/:id
// @Summary Get a staff member with effective access
// @Tags staff
// @Produce json
// @Param id path string true "Staff ID (UUID)"
// @Success 200 {object} service.StaffResponse "Staff member"
// @Failure 404 {object} ErrorResponse "Staff member not found"
// @Security BearerAuth
// @Router /staff/{id} [get]
func (h *StaffHandler) GetStaff(c *gin.Context) {
	_, scope, ok := requestScope(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id", "staff")
	if !ok {
		return
	}
	staff, err := h.service.Get(c.Request.Context(), scope, id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, staff)
}

// CreateStaff handles POST /api/staff
// @Summary Add a staff member
// @Tags staff
// @Accept json
// @Produce json
// @Param request body service.CreateStaffRequest true "Staff data"
// @Success 201 {object} service.UserResponse "Staff member created"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Security BearerAuth
// @Router /staff [post]
func (h *StaffHandler) CreateStaff(c *gin.Context) {
	_, scope, ok := requestScope(c)
	if !ok {
		return
	}
	var req service.CreateStaffRequest
	if !bindJSON(c, &req) {
		return
	}
	staff, err := h.service.Create(c.Request.Context(), scope, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, staff)
}

// UpdateStaff handles PUT /api/staff/:id
// @Summary Update a staff member
// @Tags staff
// @Accept json
// @Produce json
// @Param id path string true "Staff ID (UUID)"
// @Param request body service.UpdateStaffRequest true "Fields to change"
// @Success 200 {object} service.UserResponse "Staff member updated"
// @Failure 404 {object} ErrorResponse "Staff member not found"
// @Security BearerAuth
// @Router /staff/{id} [put]
func (h *StaffHandler) UpdateStaff(c *gin.Context) {
	_, scope, ok := requestScope(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id", "staff")
	if !ok {
		return
	}
	var req service.UpdateStaffRequest
	if !bindJSON(c, &req) {
		return
	}
	staff, err := h.service.Update(c.Request.Context(), scope, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, staff)
}

// DeleteStaff handles DELETE /api/staff/:id
// @Summary Remove a staff member
// @Tags staff
// @Param id path string true "Staff ID (UUID)"
// @Success 204 "Staff member removed"
// @Failure 404 {object} ErrorResponse "Staff member not found"
// @Security BearerAuth
// @Router /staff/{id} [delete]
func (h *StaffHandler) DeleteStaff(c *gin.Context) {
	_, scope, ok := requestScope(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id", "staff")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), scope, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
