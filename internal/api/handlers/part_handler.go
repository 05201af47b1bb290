package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergioLiiD/yaavs-v5-sub002/internal/api/middleware"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/governance/audit"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/service"
)

// PartHandler serves the part catalog and stock operation endpoints.
type PartHandler struct {
	parts *service.PartService
	audit *audit.Logger
}

// NewPartHandler creates a PartHandler.
func NewPartHandler(parts *service.PartService, auditLog *audit.Logger) *PartHandler {
	return &PartHandler{parts: parts, audit: auditLog}
}

type createPartRequest struct {
	Name           string `json:"name" binding:"required"`
	SKU            string `json:"sku" binding:"required"`
	InitialStock   int    `json:"initial_stock" binding:"gte=0"`
	MinimumStock   int    `json:"minimum_stock" binding:"gte=0"`
	MaximumStock   int    `json:"maximum_stock" binding:"gte=0"`
	UnitPriceCents int64  `json:"unit_price_cents" binding:"gte=0"`
}

// Create handles POST /api/v1/parts.
func (h *PartHandler) Create(c *gin.Context) {
	var req createPartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "VALIDATION_FAILED"})
		return
	}

	actor := middleware.Actor(c)
	p, err := h.parts.Create(c.Request.Context(), service.CreatePartInput{
		Name:           req.Name,
		SKU:            req.SKU,
		InitialStock:   req.InitialStock,
		MinimumStock:   req.MinimumStock,
		MaximumStock:   req.MaximumStock,
		UnitPriceCents: req.UnitPriceCents,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.audit.Record("inventory.create_part", "part", p.ID, actor,
		map[string]interface{}{"sku": req.SKU, "initial_stock": req.InitialStock})
	c.JSON(http.StatusCreated, p)
}

// Get handles GET /api/v1/parts/:id.
func (h *PartHandler) Get(c *gin.Context) {
	p, err := h.parts.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// List handles GET /api/v1/parts.
func (h *PartHandler) List(c *gin.Context) {
	activeOnly := c.Query("active") != "false"
	parts, err := h.parts.List(c.Request.Context(), activeOnly)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"parts": parts, "count": len(parts)})
}

// ListLowStock handles GET /api/v1/parts/low-stock.
func (h *PartHandler) ListLowStock(c *gin.Context) {
	parts, err := h.parts.ListLowStock(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"parts": parts, "count": len(parts)})
}

type updatePartRequest struct {
	Name           *string `json:"name"`
	MinimumStock   *int    `json:"minimum_stock"`
	MaximumStock   *int    `json:"maximum_stock"`
	UnitPriceCents *int64  `json:"unit_price_cents"`
	Active         *bool   `json:"active"`
}

// Update handles PATCH /api/v1/parts/:id.
func (h *PartHandler) Update(c *gin.Context) {
	var req updatePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "VALIDATION_FAILED"})
		return
	}

	p, err := h.parts.Update(c.Request.Context(), c.Param("id"), service.UpdatePartInput{
		Name:           req.Name,
		MinimumStock:   req.MinimumStock,
		MaximumStock:   req.MaximumStock,
		UnitPriceCents: req.UnitPriceCents,
		Active:         req.Active,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.audit.Record("inventory.update_part", "part", p.ID, middleware.Actor(c), nil)
	c.JSON(http.StatusOK, p)
}

// Ledger handles GET /api/v1/parts/:id/ledger.
func (h *PartHandler) Ledger(c *gin.Context) {
	var q struct {
		Limit int `form:"limit"`
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "VALIDATION_FAILED"})
		return
	}

	entries, err := h.parts.Ledger(c.Request.Context(), c.Param("id"), q.Limit)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries, "count": len(entries)})
}

type stockMovementRequest struct {
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
	Reference string `json:"reference"`
}

// Restock handles POST /api/v1/parts/:id/restock.
func (h *PartHandler) Restock(c *gin.Context) {
	var req stockMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "VALIDATION_FAILED"})
		return
	}

	actor := middleware.Actor(c)
	if err := h.parts.Restock(c.Request.Context(), c.Param("id"), req.Quantity, req.Reference, actor); err != nil {
		_ = c.Error(err)
		return
	}
	h.audit.Record("inventory.restock", "part", c.Param("id"), actor,
		map[string]interface{}{"quantity": req.Quantity, "reference": req.Reference})
	h.Get(c)
}

// Sell handles POST /api/v1/parts/:id/sell.
func (h *PartHandler) Sell(c *gin.Context) {
	var req stockMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "VALIDATION_FAILED"})
		return
	}

	actor := middleware.Actor(c)
	if err := h.parts.Sell(c.Request.Context(), c.Param("id"), req.Quantity, req.Reference, actor); err != nil {
		_ = c.Error(err)
		return
	}
	h.audit.Record("inventory.sell", "part", c.Param("id"), actor,
		map[string]interface{}{"quantity": req.Quantity, "reference": req.Reference})
	h.Get(c)
}

type adjustStockRequest struct {
	Delta     int    `json:"delta" binding:"required"`
	Reference string `json:"reference" binding:"required"`
}

// Adjust handles POST /api/v1/parts/:id/adjust.
func (h *PartHandler) Adjust(c *gin.Context) {
	var req adjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "VALIDATION_FAILED"})
		return
	}

	actor := middleware.Actor(c)
	if err := h.parts.Adjust(c.Request.Context(), c.Param("id"), req.Delta, req.Reference, actor); err != nil {
		_ = c.Error(err)
		return
	}
	h.audit.Record("inventory.adjust", "part", c.Param("id"), actor,
		map[string]interface{}{"delta": req.Delta, "reference": req.Reference})
	h.Get(c)
}
