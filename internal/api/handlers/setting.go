package handlers

import (
	"net/http"

	"lpg-backoffice/internal/service"

	"github.com/gin-gonic/gin"
)

// SettingHandler handles HTTP requests for tenant settings
type SettingHandler struct {
	service service.SettingServiceInterface
}

// NewSettingHandler creates a new setting handler
func NewSettingHandler(service service.SettingServiceInterface) *SettingHandler {
	return &SettingHandler{service: service}
}

// GetSettings handles GET /api/settings
// @Summary Get settings
// @Description Stored values merged over defaults
// @Tags settings
// @Produce json
// @Success 200 {object} map[string]string "Settings"
// @Security BearerAuth
// @Router /settings [get]
func (h *SettingHandler) GetSettings(c *gin.Context) {
	_, scope, ok := requestScope(c)
	if !ok {
		return
	}
	respondOK(c, http.StatusOK, h.service.GetSettings(c.Request.Context(), scope))
}

// UpdateSettings handles PUT /api/settings
// @Summary Update settings
// @Description Only known keys are accepted
// @Tags settings
// @Accept json
// @Produce json
// @Param request body map[string]string true "Key/value pairs"
// @Success 200 {object} map[string]string "Settings after the update"
// @Failure 400 {object} ErrorResponse "Unknown key or invalid value"
// @Security BearerAuth
// @Router /settings [put]
func (h *SettingHandler) UpdateSettings(c *gin.Context) {
	_, scope, ok := requestScope(c)
	if !ok {
		return
	}
	var values map[string]string
	if !bindJSON(c, &values) {
		return
	}
	result, err := h.service.UpdateSettings(c.Request.Context(), scope, values)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, result)
}
