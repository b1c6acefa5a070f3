package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"lpg-backoffice/internal/service"

	"github.com/gin-gonic/gin"
)

// maxBackupUpload caps the size of a restore document
const maxBackupUpload = 32 << 20

// BackupHandler handles HTTP requests for tenant backups
type BackupHandler struct {
	service   service.BackupServiceInterface
	maxUpload int64
}

// NewBackupHandler creates a new backup handler
func NewBackupHandler(service service.BackupServiceInterface) *BackupHandler {
	return &BackupHandler{service: service, maxUpload: maxBackupUpload}
}

// CreateAutomaticBackup handles POST /api/backup/automatic
// @Summary Run the automatic backup
// @Description Stores a backup and prunes old automatic ones; skipped when auto_backup is off
// @Tags backup
// @Produce json
// @Success 200 {object} service.AutomaticBackupResult "Backup stored or skipped"
// @Security BearerAuth
// @Router /backup/automatic [post]
func (h *BackupHandler) CreateAutomaticBackup(c *gin.Context) {
	_, scope, ok := requestScope(c)
	if !ok {
		return
	}
	result, err := h.service.CreateAutomatic(c.Request.Context(), scope)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, result)
}

// CreateBackup handles POST /api/backup
// @Summary Create a manual backup
// @Tags backup
// @Produce json
// @Success 201 {object} models.Backup "Backup stored"
// @Security BearerAuth
// @Router /backup [post]
func (h *BackupHandler) CreateBackup(c *gin.Context) {
	_, scope, ok := requestScope(c)
	if !ok {
		return
	}
	backup, err := h.service.Create(c.Request.Context(), scope)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, backup)
}

// ListBackups handles GET /api/backup
// @Summary List backups
// @Tags backup
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.PageResult[models.Backup] "Backup page"
// @Security BearerAuth
// @Router /backup [get]
func (h *BackupHandler) ListBackups(c *gin.Context) {
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

// GetBackup handles GET /api/backup/:id
// @Summary Get backup metadata
// @Tags backup
// @Produce json
// @Param id path string true "Backup ID (UUID)"
// @Success 200 {object} models.Backup "Backup"
// @Failure 404 {object} ErrorResponse "Backup not found"
// @Security BearerAuth
// @Router /backup/{id} [get]
func (h *BackupHandler) GetBackup(c *gin.Context) {
	_, scope, ok := requestScope(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id", "backup")
	if !ok {
		return
	}
	backup, err := h.service.Get(c.Request.Context(), scope, id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, backup)
}

// DownloadBackup handles GET /api/backup/:id/download
// @Summary Download a backup document
// @Tags backup
// @Produce octet-stream
// @Param id path string true "Backup ID (UUID)"
// @Success 200 {file} file "Backup document"
// @Failure 404 {object} ErrorResponse "Backup not found"
// @Security BearerAuth
// @Router /backup/{id}/download [get]
func (h *BackupHandler) DownloadBackup(c *gin.Context) {
	_, scope, ok := requestScope(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id", "backup")
	if !ok {
		return
	}
	payload, filename, err := h.service.Download(c.Request.Context(), scope, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/json", payload)
}

// DeleteBackup handles DELETE /api/backup/:id
// @Summary Delete a backup
// @Tags backup
// @Param id path string true "Backup ID (UUID)"
// @Success 204 "Backup deleted"
// @Failure 404 {object} ErrorResponse "Backup not found"
// @Security BearerAuth
// @Router /backup/{id} [delete]
func (h *BackupHandler) DeleteBackup(c *gin.Context) {
	_, scope, ok := requestScope(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id", "backup")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), scope, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RestoreBackup handles POST /api/backup/restore
// @Summary Restore a backup document
// @Description Replaces the tenant's customers, stock, bills, payments and settings. Accepts the document as the JSON body or as a multipart "file" field.
// @Tags backup
// @Accept json
// @Accept mpfd
// @Produce json
// @Param document body service.BackupDocument false "Backup document"
// @Param file formData file false "Backup document file"
// @Success 200 {object} service.RestoreResult "Rows restored"
// @Failure 400 {object} ErrorResponse "Invalid document"
// @Failure 409 {object} ErrorResponse "Rows already stored under another tenant"
// @Failure 413 {object} ErrorResponse "Document over the upload limit"
// @Security BearerAuth
// @Router /backup/restore [post]
func (h *BackupHandler) RestoreBackup(c *gin.Context) {
	_, scope, ok := requestScope(c)
	if !ok {
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload)

	var doc service.BackupDocument
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		header, err := c.FormFile("file")
		if err != nil {
			if !respondTooLarge(c, err) {
				respondBadRequest(c, "file field is required")
			}
			return
		}
		f, err := header.Open()
		if err != nil {
			respondBadRequest(c, "cannot read uploaded file")
			return
		}
		defer f.Close()
		if err := json.NewDecoder(f).Decode(&doc); err != nil {
			respondBadRequest(c, "backup file is not a valid document")
			return
		}
	} else if err := c.ShouldBindJSON(&doc); err != nil {
		if !respondTooLarge(c, err) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body", "details": err.Error()})
		}
		return
	}

	result, err := h.service.Restore(c.Request.Context(), scope, &doc)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, result)
}

// respondTooLarge answers 413 when err comes from a body that hit the upload limit
func respondTooLarge(c *gin.Context, err error) bool {
	var tooLarge *http.MaxBytesError
	if !errors.As(err, &tooLarge) {
		return false
	}
	c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: fmt.Sprintf("backup document exceeds the %d byte upload limit", tooLarge.Limit)})
	return true
}
