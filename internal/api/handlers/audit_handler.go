package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergioLiiD/yaavs-v5-sub002/internal/governance/audit"
)

// AuditHandler serves read access to the audit log.
type AuditHandler struct {
	audit *audit.Logger
}

// NewAuditHandler creates an AuditHandler.
func NewAuditHandler(auditLog *audit.Logger) *AuditHandler {
	return &AuditHandler{audit: auditLog}
}

// Query handles GET /api/v1/audit.
func (h *AuditHandler) Query(c *gin.Context) {
	var q struct {
		ResourceType string `form:"resource_type"`
		ResourceID   string `form:"resource_id"`
		Actor        string `form:"actor"`
		Limit        int    `form:"limit"`
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "VALIDATION_FAILED"})
		return
	}

	entries, err := h.audit.Query(c.Request.Context(), audit.QueryFilter{
		ResourceType: q.ResourceType,
		ResourceID:   q.ResourceID,
		Actor:        q.Actor,
		Limit:        q.Limit,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries, "count": len(entries)})
}
