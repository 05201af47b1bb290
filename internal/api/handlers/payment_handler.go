package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergioLiiD/yaavs-v5-sub002/internal/api/middleware"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/governance/audit"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/service"
)

// PaymentHandler serves the payment endpoints.
type PaymentHandler struct {
	payments *service.PaymentService
	audit    *audit.Logger
}

// NewPaymentHandler creates a PaymentHandler.
func NewPaymentHandler(payments *service.PaymentService, auditLog *audit.Logger) *PaymentHandler {
	return &PaymentHandler{payments: payments, audit: auditLog}
}

type registerPaymentRequest struct {
	AmountCents int64  `json:"amount_cents" binding:"required,gt=0"`
	Method      string `json:"method" binding:"required,oneof=CASH CARD TRANSFER MERCADOPAGO"`
	PayerEmail  string `json:"payer_email"`
	CardToken   string `json:"card_token"`
}

// Register handles POST /api/v1/tickets/:id/payments.
func (h *PaymentHandler) Register(c *gin.Context) {
	var req registerPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "VALIDATION_FAILED"})
		return
	}

	actor := middleware.Actor(c)
	p, err := h.payments.Register(c.Request.Context(), service.RegisterPaymentInput{
		TicketID:    c.Param("id"),
		AmountCents: req.AmountCents,
		Method:      req.Method,
		Actor:       actor,
		PayerEmail:  req.PayerEmail,
		CardToken:   req.CardToken,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.audit.Record("payment.register", "payment", p.ID, actor,
		map[string]interface{}{"ticket_id": p.TicketID, "amount_cents": p.AmountCents, "method": req.Method})
	c.JSON(http.StatusCreated, p)
}

// List handles GET /api/v1/tickets/:id/payments.
func (h *PaymentHandler) List(c *gin.Context) {
	payments, err := h.payments.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": payments, "count": len(payments)})
}

// Void handles POST /api/v1/payments/:id/void.
func (h *PaymentHandler) Void(c *gin.Context) {
	actor := middleware.Actor(c)
	p, err := h.payments.Void(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.audit.Record("payment.void", "payment", p.ID, actor,
		map[string]interface{}{"ticket_id": p.TicketID})
	c.JSON(http.StatusOK, p)
}
