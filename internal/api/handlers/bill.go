package handlers

import (
	"net/http"
	"strings"

	"lpg-backoffice/internal/database/models"
	"lpg-backoffice/internal/service"

	"github.com/gin-gonic/gin"
)

// BillHandler handles HTTP requests for bills
type BillHandler struct {
	service service.BillingServiceInterface
}

// NewBillHandler creates a new bill handler
func NewBillHandler(service service.BillingServiceInterface) *BillHandler {
	return &BillHandler{service: service}
}

// CreateBill handles POST /api/bills
// @Summary Create a bill
// @Description Totals are computed from the line items; the bill number is assigned per tenant
// @Tags bills
// @Accept json
// @Produce json
// @Param request body service.CreateBillRequest true "Bill data"
// @Success 201 {object} models.Bill "Bill created"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Customer not found"
// @Security BearerAuth
// @Router /bills [post]
func (h *BillHandler) CreateBill(c *gin.Context) {
	_, scope, ok := requestScope(c)
	if !ok {
		return
	}
	var req service.CreateBillRequest
	if !bindJSON(c, &req) {
		return
	}
	bill, err := h.service.Create(c.Request.Context(), scope, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, bill)
}

// ListBills handles GET /api/bills
// @Summary List bills
// @Tags bills
// @Produce json
// @Param customer_id query string false "Customer ID (UUID)"
// @Param status query string false "Bill status" Enums(UNPAID,PARTIAL,PAID)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.PageResult[models.Bill] "Bill page"
// @Security BearerAuth
// @Router /bills [get]
func (h *BillHandler) ListBills(c *gin.Context) {
	_, scope, ok := requestScope(c)
	if !ok {
		return
	}
	customerID, ok := parseOptionalUUIDQuery(c, "customer_id")
	if !ok {
		return
	}
	page, pageSize := pageParams(c)
	result, err := h.service.List(c.Request.Context(), scope, service.BillListParams{
		CustomerID: customerID,
		Status:     models.BillStatus(strings.ToUpper(c.Query("status"))),
		Page:       page,
		PageSize:   pageSize,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, result)
}

// GetBill handles GET /api/bills/:id
// @Summary Get bill by ID
// @Tags bills
// @Produce json
// @Param id path string true "Bill ID (UUID)"
// @Success 200 {object} models.Bill "Bill"
// @Failure 404 {object} ErrorResponse "Bill not found"
// @Security BearerAuth
// @Router /bills/{id} [get]
func (h *BillHandler) GetBill(c *gin.Context) {
	_, scope, ok := requestScope(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id", "bill")
	if !ok {
		return
	}
	bill, err := h.service.Get(c.Request.Context(), scope, id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, bill)
}

// DeleteBill handles DELETE /api/bills/:id
// @Summary Delete a bill
// @Tags bills
// @Param id path string true "Bill ID (UUID)"
// @Success 204 "Bill deleted"
// @Failure 404 {object} ErrorResponse "Bill not found"
// @Security BearerAuth
// @Router /bills/{id} [delete]
func (h *BillHandler) DeleteBill(c *gin.Context) {
	_, scope, ok := requestScope(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id", "bill")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), scope, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
