package handlers

import (
	"net/http"

	"lpg-backoffice/internal/service"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles HTTP requests for payments
type PaymentHandler struct {
	service service.PaymentServiceInterface
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(service service.PaymentServiceInterface) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// CreatePayment handles POST /api/payments
// @Summary Record a payment
// @Description Updates the bill's paid amount and status and the customer's balance atomically
// @Tags payments
// @Accept json
// @Produce json
// @Param request body service.CreatePaymentRequest true "Payment data"
// @Success 201 {object} models.Payment "Payment recorded"
// @Failure 400 {object} ErrorResponse "Invalid amount or bill of another customer"
// @Failure 404 {object} ErrorResponse "Customer or bill not found"
// @Security BearerAuth
// @Router /payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	_, scope, ok := requestScope(c)
	if !ok {
		return
	}
	var req service.CreatePaymentRequest
	if !bindJSON(c, &req) {
		return
	}
	payment, err := h.service.Create(c.Request.Context(), scope, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, payment)
}

// ListPayments handles GET /api/payments
// @Summary List payments
// @Tags payments
// @Produce json
// @Param customer_id query string false "Customer ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.PageResult[models.Payment] "Payment page"
// @Security BearerAuth
// @Router /payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	_, scope, ok := requestScope(c)
	if !ok {
		return
	}
	customerID, ok := parseOptionalUUIDQuery(c, "customer_id")
	if !ok {
		return
	}
	page, pageSize := pageParams(c)
	result, err := h.service.List(c.Request.Context(), scope, customerID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, result)
}

// GetPayment handles GET /api/payments/:id
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	_, scope, ok := requestScope(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id", "payment")
	if !ok {
		return
	}
	payment, err := h.service.Get(c.Request.Context(), scope, id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, payment)
}

// DeletePayment handles DELETE /api/payments/:id
// @Summary Delete a payment
// @Description Reverses the payment's effect on its bill and customer balance
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID (UUID)"
// @Success 200 {object} models.Payment "Reverted payment"
// @Failure 404 {object} ErrorResponse "Payment not found"
// @Security BearerAuth
// @Router /payments/{id} [delete]
func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	_, scope, ok := requestScope(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id", "payment")
	if !ok {
		return
	}
	payment, err := h.service.Delete(c.Request.Context(), scope, id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, payment)
}
