package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergioLiiD/yaavs-v5-sub002/internal/api/middleware"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/notification"
)

// NotificationHandler serves the inbox endpoints. The recipient is
// always the acting user; there is no cross-inbox read.
type NotificationHandler struct {
	sender *notification.InboxSender
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(sender *notification.InboxSender) *NotificationHandler {
	return &NotificationHandler{sender: sender}
}

// ListUnread handles GET /api/v1/notifications.
func (h *NotificationHandler) ListUnread(c *gin.Context) {
	var q struct {
		Limit int `form:"limit"`
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "VALIDATION_FAILED"})
		return
	}

	items, err := h.sender.ListUnread(c.Request.Context(), middleware.Actor(c), q.Limit)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": items, "count": len(items)})
}

type markReadRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}

// MarkRead handles POST /api/v1/notifications/read.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	var req markReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "VALIDATION_FAILED"})
		return
	}

	n, err := h.sender.MarkRead(c.Request.Context(), middleware.Actor(c), req.IDs)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"marked": n})
}
