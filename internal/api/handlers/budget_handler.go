package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergioLiiD/yaavs-v5-sub002/internal/api/middleware"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/governance/audit"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/service"
)

// BudgetHandler serves the budget endpoints nested under a ticket.
type BudgetHandler struct {
	budgets *service.BudgetService
	audit   *audit.Logger
}

// NewBudgetHandler creates a BudgetHandler.
func NewBudgetHandler(budgets *service.BudgetService, auditLog *audit.Logger) *BudgetHandler {
	return &BudgetHandler{budgets: budgets, audit: auditLog}
}

// Get handles GET /api/v1/tickets/:id/budget.
func (h *BudgetHandler) Get(c *gin.Context) {
	view, err := h.budgets.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, view)
}

type budgetItemRequest struct {
	Description     string `json:"description" binding:"required"`
	Quantity        int    `json:"quantity" binding:"required,gt=0"`
	UnitPriceCents  int64  `json:"unit_price_cents" binding:"gte=0"`
	ExtraConcept    string `json:"extra_concept"`
	ExtraPriceCents int64  `json:"extra_price_cents" binding:"gte=0"`
}

type replaceItemsRequest struct {
	Items []budgetItemRequest `json:"items" binding:"required,min=1,dive"`
}

// ReplaceItems handles PUT /api/v1/tickets/:id/budget/items.
func (h *BudgetHandler) ReplaceItems(c *gin.Context) {
	var req replaceItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "VALIDATION_FAILED"})
		return
	}

	items := make([]service.BudgetItemInput, len(req.Items))
	for i, it := range req.Items {
		items[i] = service.BudgetItemInput{
			Description:     it.Description,
			Quantity:        it.Quantity,
			UnitPriceCents:  it.UnitPriceCents,
			ExtraConcept:    it.ExtraConcept,
			ExtraPriceCents: it.ExtraPriceCents,
		}
	}

	view, err := h.budgets.ReplaceItems(c.Request.Context(), c.Param("id"), items)
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.audit.Record("budget.replace_items", "ticket", c.Param("id"), middleware.Actor(c),
		map[string]interface{}{"items": len(items), "total_cents": view.TotalCents})
	c.JSON(http.StatusOK, view)
}

// Submit handles POST /api/v1/tickets/:id/budget/submit.
func (h *BudgetHandler) Submit(c *gin.Context) {
	actor := middleware.Actor(c)
	t, err := h.budgets.Submit(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.audit.Record("budget.submit", "ticket", t.ID, actor, nil)
	c.JSON(http.StatusOK, t)
}

// Approve handles POST /api/v1/tickets/:id/budget/approve.
func (h *BudgetHandler) Approve(c *gin.Context) {
	actor := middleware.Actor(c)
	t, err := h.budgets.Approve(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.audit.Record("budget.approve", "ticket", t.ID, actor, nil)
	c.JSON(http.StatusOK, t)
}
