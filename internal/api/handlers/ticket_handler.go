// Package handlers contains the gin HTTP handlers. Handlers parse and
// validate the wire shape, call a service or usecase, and attach any
// error for the error middleware to render.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergioLiiD/yaavs-v5-sub002/internal/api/middleware"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/governance/audit"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/service"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/usecase"
)

// TicketHandler serves the ticket lifecycle endpoints.
type TicketHandler struct {
	tickets        *service.TicketService
	balance        *service.BalanceService
	completeRepair *usecase.CompleteRepairUsecase
	deliver        *usecase.DeliverUsecase
	cancel         *usecase.CancelTicketUsecase
	audit          *audit.Logger
}

// NewTicketHandler creates a TicketHandler.
func NewTicketHandler(
	tickets *service.TicketService,
	balance *service.BalanceService,
	completeRepair *usecase.CompleteRepairUsecase,
	deliver *usecase.DeliverUsecase,
	cancel *usecase.CancelTicketUsecase,
	auditLog *audit.Logger,
) *TicketHandler {
	return &TicketHandler{
		tickets:        tickets,
		balance:        balance,
		completeRepair: completeRepair,
		deliver:        deliver,
		cancel:         cancel,
		audit:          auditLog,
	}
}

type createTicketRequest struct {
	CustomerID         string `json:"customer_id" binding:"required"`
	DeviceID           string `json:"device_id" binding:"required"`
	TechnicianID       string `json:"technician_id"`
	ProblemDescription string `json:"problem_description"`
}

// Create handles POST /api/v1/tickets.
func (h *TicketHandler) Create(c *gin.Context) {
	var req createTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "VALIDATION_FAILED"})
		return
	}

	actor := middleware.Actor(c)
	t, err := h.tickets.Create(c.Request.Context(), service.CreateTicketInput{
		CustomerID:         req.CustomerID,
		DeviceID:           req.DeviceID,
		TechnicianID:       req.TechnicianID,
		ProblemDescription: req.ProblemDescription,
		Actor:              actor,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.audit.Record("ticket.create", "ticket", t.ID, actor, nil)
	c.JSON(http.StatusCreated, t)
}

// Get handles GET /api/v1/tickets/:id.
func (h *TicketHandler) Get(c *gin.Context) {
	t, err := h.tickets.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// List handles GET /api/v1/tickets.
func (h *TicketHandler) List(c *gin.Context) {
	var q struct {
		Status       string `form:"status"`
		CustomerID   string `form:"customer_id"`
		TechnicianID string `form:"technician_id"`
		Limit        int    `form:"limit"`
		Offset       int    `form:"offset"`
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "VALIDATION_FAILED"})
		return
	}

	tickets, err := h.tickets.List(c.Request.Context(), service.ListFilter{
		Status:       q.Status,
		CustomerID:   q.CustomerID,
		TechnicianID: q.TechnicianID,
		Limit:        q.Limit,
		Offset:       q.Offset,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tickets": tickets, "count": len(tickets)})
}

// Balance handles GET /api/v1/tickets/:id/balance.
func (h *TicketHandler) Balance(c *gin.Context) {
	if _, err := h.tickets.Get(c.Request.Context(), c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	breakdown, err := h.balance.Breakdown(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, breakdown)
}

type assignTechnicianRequest struct {
	TechnicianID string `json:"technician_id" binding:"required"`
}

// AssignTechnician handles PUT /api/v1/tickets/:id/technician.
func (h *TicketHandler) AssignTechnician(c *gin.Context) {
	var req assignTechnicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "VALIDATION_FAILED"})
		return
	}

	t, err := h.tickets.AssignTechnician(c.Request.Context(), c.Param("id"), req.TechnicianID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.audit.Record("ticket.assign_technician", "ticket", t.ID, middleware.Actor(c),
		map[string]interface{}{"technician_id": req.TechnicianID})
	c.JSON(http.StatusOK, t)
}

// StartDiagnosis handles POST /api/v1/tickets/:id/start-diagnosis.
func (h *TicketHandler) StartDiagnosis(c *gin.Context) {
	actor := middleware.Actor(c)
	t, err := h.tickets.StartDiagnosis(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.audit.Record("ticket.start_diagnosis", "ticket", t.ID, actor, nil)
	c.JSON(http.StatusOK, t)
}

type completeDiagnosisRequest struct {
	Diagnosis string `json:"diagnosis" binding:"required"`
}

// CompleteDiagnosis handles POST /api/v1/tickets/:id/complete-diagnosis.
func (h *TicketHandler) CompleteDiagnosis(c *gin.Context) {
	var req completeDiagnosisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "VALIDATION_FAILED"})
		return
	}

	actor := middleware.Actor(c)
	t, err := h.tickets.CompleteDiagnosis(c.Request.Context(), c.Param("id"), actor, req.Diagnosis)
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.audit.Record("ticket.complete_diagnosis", "ticket", t.ID, actor, nil)
	c.JSON(http.StatusOK, t)
}

// StartRepair handles POST /api/v1/tickets/:id/start-repair.
func (h *TicketHandler) StartRepair(c *gin.Context) {
	actor := middleware.Actor(c)
	t, err := h.tickets.StartRepair(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.audit.Record("ticket.start_repair", "ticket", t.ID, actor, nil)
	c.JSON(http.StatusOK, t)
}

// CompleteRepair handles POST /api/v1/tickets/:id/complete-repair.
func (h *TicketHandler) CompleteRepair(c *gin.Context) {
	actor := middleware.Actor(c)
	t, err := h.completeRepair.Execute(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.audit.Record("ticket.complete_repair", "ticket", t.ID, actor, nil)
	c.JSON(http.StatusOK, t)
}

// MarkReady handles POST /api/v1/tickets/:id/ready.
func (h *TicketHandler) MarkReady(c *gin.Context) {
	actor := middleware.Actor(c)
	t, err := h.tickets.MarkReadyForDelivery(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.audit.Record("ticket.mark_ready", "ticket", t.ID, actor, nil)
	c.JSON(http.StatusOK, t)
}

// Deliver handles POST /api/v1/tickets/:id/deliver.
func (h *TicketHandler) Deliver(c *gin.Context) {
	actor := middleware.Actor(c)
	t, err := h.deliver.Execute(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.audit.Record("ticket.deliver", "ticket", t.ID, actor, nil)
	c.JSON(http.StatusOK, t)
}

type cancelTicketRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// Cancel handles POST /api/v1/tickets/:id/cancel.
func (h *TicketHandler) Cancel(c *gin.Context) {
	var req cancelTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "VALIDATION_FAILED"})
		return
	}

	actor := middleware.Actor(c)
	t, err := h.cancel.Execute(c.Request.Context(), c.Param("id"), actor, req.Reason)
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.audit.Record("ticket.cancel", "ticket", t.ID, actor,
		map[string]interface{}{"reason": req.Reason})
	c.JSON(http.StatusOK, t)
}
