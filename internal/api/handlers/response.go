package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"lpg-backoffice/internal/auth"
	apperrors "lpg-backoffice/internal/errors"
	"lpg-backoffice/internal/logger"
	"lpg-backoffice/internal/tenant"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"error message"`
}

// DataResponse represents a standard API success response
type DataResponse struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data"`
}

func respondOK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, DataResponse{Success: true, Data: data})
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": true, "message": message})
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondError maps a service error onto a status code and the error envelope
func respondError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			details[strings.ToLower(fe.Field())] = fe.Tag()
		}
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "validation failed", "details": details})
		return
	}

	if otpErr, ok := apperrors.AsOTP(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": otpErr.Error(), "reason": otpErr.Reason})
		return
	}

	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	default:
		logger.WithContext(c.Request.Context()).WithError(err).
			WithField("path", c.Request.URL.Path).Error("request failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

// requestScope builds the tenant scope of the authenticated caller
func requestScope(c *gin.Context) (*auth.Identity, tenant.Scope, bool) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		respondError(c, apperrors.ErrNotAuthenticated)
		return nil, tenant.Scope{}, false
	}
	scope, err := tenant.FromIdentity(identity)
	if err != nil {
		respondError(c, err)
		return nil, tenant.Scope{}, false
	}
	return identity, scope, true
}

func parseIDParam(c *gin.Context, name, entity string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		respondBadRequest(c, "Invalid "+entity+" ID: invalid UUID format")
		return uuid.Nil, false
	}
	return id, true
}

func parseOptionalUUIDQuery(c *gin.Context, name string) (*uuid.UUID, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		respondBadRequest(c, "Invalid "+name+": invalid UUID format")
		return nil, false
	}
	return &id, true
}

// pageParams reads page and page_size; out-of-range values are normalized by the service
func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	return page, pageSize
}

func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body", "details": err.Error()})
		return false
	}
	return true
}
