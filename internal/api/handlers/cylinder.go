package handlers

import (
	"net/http"
	"strings"

	"lpg-backoffice/internal/database/models"
	"lpg-backoffice/internal/service"

	"github.com/gin-gonic/gin"
)

// CylinderHandler handles HTTP requests for cylinder stock
type CylinderHandler struct {
	service service.CylinderServiceInterface
}

// NewCylinderHandler creates a new cylinder handler
func NewCylinderHandler(service service.CylinderServiceInterface) *CylinderHandler {
	return &CylinderHandler{service: service}
}

// AddCylinders handles POST /api/add-cylinder
// @Summary Record received cylinders
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body service.AddCylinderRequest true "Stock entry"
// @Success 201 {object} models.CylinderEntry "Entry recorded"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Security BearerAuth
// @Router /add-cylinder [post]
func (h *CylinderHandler) AddCylinders(c *gin.Context) {
	_, scope, ok := requestScope(c)
	if !ok {
		return
	}
	var req service.AddCylinderRequest
	if !bindJSON(c, &req) {
		return
	}
	entry, err := h.service.Add(c.Request.Context(), scope, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, entry)
}

// ListCylinders handles GET /api/add-cylinder
// @Summary List stock entries
// @Tags inventory
// @Produce json
// @Param type query string false "Cylinder type"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.PageResult[models.CylinderEntry] "Entry page"
// @Security BearerAuth
// @Router /add-cylinder [get]
func (h *CylinderHandler) ListCylinders(c *gin.Context) {
	_, scope, ok := requestScope(c)
	if !ok {
		return
	}
	page, pageSize := pageParams(c)
	cylinderType := models.CylinderType(strings.ToUpper(c.Query("type")))
	result, err := h.service.List(c.Request.Context(), scope, cylinderType, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, result)
}

// GetCylinderEntry handles GET /api/add-cylinder/:id
func (h *CylinderHandler) GetCylinderEntry(c *gin.Context) {
	_, scope, ok := requestScope(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id", "cylinder entry")
	if !ok {
		return
	}
	entry, err := h.service.Get(c.Request.Context(), scope, id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, entry)
}

// StockSummary handles GET /api/add-cylinder/summary
// @Summary Stock per cylinder type
// @Description Filled and empty counts per type, flagged against the low stock threshold
// @Tags inventory
// @Produce json
// @Success 200 {object} service.StockSummary "Stock summary"
// @Security BearerAuth
// @Router /add-cylinder/summary [get]
func (h *CylinderHandler) StockSummary(c *gin.Context) {
	_, scope, ok := requestScope(c)
	if !ok {
		return
	}
	summary, err := h.service.Summary(c.Request.Context(), scope)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, summary)
}

// DeleteCylinderEntry handles DELETE /api/add-cylinder/:id
// @Summary Delete a stock entry
// @Tags inventory
// @Param id path string true "Entry ID (UUID)"
// @Success 204 "Entry deleted"
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Security BearerAuth
// @Router /add-cylinder/{id} [delete]
func (h *CylinderHandler) DeleteCylinderEntry(c *gin.Context) {
	_, scope, ok := requestScope(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id", "cylinder entry")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), scope, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteAllCylinders handles DELETE /api/add-cylinder/delete-all
// @Summary Delete every stock entry of the tenant
// @Tags inventory
// @Produce json
// @Success 200 {object} map[string]interface{} "Deleted count"
// @Failure 403 {object} ErrorResponse "Full access required"
// @Security BearerAuth
// @Router /add-cylinder/delete-all [delete]
func (h *CylinderHandler) DeleteAllCylinders(c *gin.Context) {
	_, scope, ok := requestScope(c)
	if !ok {
		return
	}
	deleted, err := h.service.DeleteAll(c.Request.Context(), scope)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"deleted": deleted})
}
