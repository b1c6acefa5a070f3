package handlers

import (
	"net/http"

	"lpg-backoffice/internal/service"

	"github.com/gin-gonic/gin"
)

// CustomerHandler handles HTTP requests for customers
type CustomerHandler struct {
	service service.CustomerServiceInterface
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(service service.CustomerServiceInterface) *CustomerHandler {
	return &CustomerHandler{service: service}
}

// ListCustomers handles GET /api/customers
// @Summary List customers
// @Description Search by name, phone or connection number with pagination
// @Tags customers
// @Produce json
// @Param q query string false "Search text"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.PageResult[models.Customer] "Customer page"
// @Security BearerAuth
// @Router /customers [get]
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	_, scope, ok := requestScope(c)
	if !ok {
		return
	}
	page, pageSize := pageParams(c)
	result, err := h.service.List(c.Request.Context(), scope, c.Query("q"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, result)
}

// GetCustomer handles GET /api/customers/:id
// @Summary Get customer by ID
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID (UUID)"
// @Success 200 {object} models.Customer "Customer"
// @Failure 400 {object} ErrorResponse "Invalid customer ID"
// @Failure 404 {object} ErrorResponse "Customer not found"
// @Security BearerAuth
// @Router /customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	_, scope, ok := requestScope(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id", "customer")
	if !ok {
		return
	}
	customer, err := h.service.Get(c.Request.Context(), scope, id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, customer)
}

// CreateCustomer handles POST /api/customers
// @Summary Create a customer
// @Tags customers
// @Accept json
// @Produce json
// @Param request body service.CreateCustomerRequest true "Customer data"
// @Success 201 {object} models.Customer "Customer created"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Connection number already used"
// @Security BearerAuth
// @Router /customers [post]
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	_, scope, ok := requestScope(c)
	if !ok {
		return
	}
	var req service.CreateCustomerRequest
	if !bindJSON(c, &req) {
		return
	}
	customer, err := h.service.Create(c.Request.Context(), scope, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, customer)
}

// UpdateCustomer handles PUT /api/customers/:id
// @Summary Update a customer
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "Customer ID (UUID)"
// @Param request body service.UpdateCustomerRequest true "Fields to change"
// @Success 200 {object} models.Customer "Customer updated"
// @Failure 404 {object} ErrorResponse "Customer not found"
// @Security BearerAuth
// @Router /customers/{id} [put]
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	_, scope, ok := requestScope(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id", "customer")
	if !ok {
		return
	}
	var req service.UpdateCustomerRequest
	if !bindJSON(c, &req) {
		return
	}
	customer, err := h.service.Update(c.Request.Context(), scope, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, customer)
}

// DeleteCustomer handles DELETE /api/customers/:id
// @Summary Delete a customer
// @Tags customers
// @Param id path string true "Customer ID (UUID)"
// @Success 204 "Customer deleted"
// @Failure 404 {object} ErrorResponse "Customer not found"
// @Security BearerAuth
// @Router /customers/{id} [delete]
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	_, scope, ok := requestScope(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id", "customer")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), scope, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
