package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergioLiiD/yaavs-v5-sub002/internal/api/middleware"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/governance/audit"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/service"
)

// CustomerHandler serves the customer and device endpoints.
type CustomerHandler struct {
	customers *service.CustomerService
	audit     *audit.Logger
}

// NewCustomerHandler creates a CustomerHandler.
func NewCustomerHandler(customers *service.CustomerService, auditLog *audit.Logger) *CustomerHandler {
	return &CustomerHandler{customers: customers, audit: auditLog}
}

type createCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone"`
}

// Create handles POST /api/v1/customers.
func (h *CustomerHandler) Create(c *gin.Context) {
	var req createCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "VALIDATION_FAILED"})
		return
	}

	cust, err := h.customers.Create(c.Request.Context(), service.CreateCustomerInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.audit.Record("customer.create", "customer", cust.ID, middleware.Actor(c), nil)
	c.JSON(http.StatusCreated, cust)
}

// Get handles GET /api/v1/customers/:id.
func (h *CustomerHandler) Get(c *gin.Context) {
	cust, err := h.customers.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, cust)
}

// List handles GET /api/v1/customers.
func (h *CustomerHandler) List(c *gin.Context) {
	var q struct {
		Limit  int `form:"limit"`
		Offset int `form:"offset"`
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "VALIDATION_FAILED"})
		return
	}

	customers, err := h.customers.List(c.Request.Context(), q.Limit, q.Offset)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers, "count": len(customers)})
}

type createDeviceRequest struct {
	Kind         string `json:"kind"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	SerialNumber string `json:"serial_number"`
}

// CreateDevice handles POST /api/v1/customers/:id/devices.
func (h *CustomerHandler) CreateDevice(c *gin.Context) {
	var req createDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "VALIDATION_FAILED"})
		return
	}

	d, err := h.customers.CreateDevice(c.Request.Context(), service.CreateDeviceInput{
		CustomerID:   c.Param("id"),
		Kind:         req.Kind,
		Brand:        req.Brand,
		Model:        req.Model,
		SerialNumber: req.SerialNumber,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.audit.Record("customer.create_device", "device", d.ID, middleware.Actor(c),
		map[string]interface{}{"customer_id": c.Param("id")})
	c.JSON(http.StatusCreated, d)
}

// ListDevices handles GET /api/v1/customers/:id/devices.
func (h *CustomerHandler) ListDevices(c *gin.Context) {
	devices, err := h.customers.ListDevices(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"devices": devices, "count": len(devices)})
}
