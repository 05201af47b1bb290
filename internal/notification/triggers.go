package notification

import (
	"context"
	"fmt"

	"github.com/sergioLiiD/yaavs-v5-sub002/internal/domain"
)

// statusTitles maps the statuses worth telling the customer about to
// inbox titles. Internal shuffles (DIAGNOSING, BUDGET_APPROVED) stay
// quiet.
var statusTitles = map[domain.Status]string{
	domain.StatusBudgetPending:    "Your repair estimate is ready",
	domain.StatusRepaired:         "Your device has been repaired",
	domain.StatusReadyForDelivery: "Your device is ready for pickup",
	domain.StatusDelivered:        "Your device has been delivered",
	domain.StatusCancelled:        "Your repair ticket was cancelled",
}

// Triggers turns committed domain events into inbox notifications.
// It subscribes to the dispatcher and runs on the worker pool.
type Triggers struct {
	sender *InboxSender
}

// NewTriggers creates the notification triggers.
func NewTriggers(sender *InboxSender) *Triggers {
	return &Triggers{sender: sender}
}

// HandleStatusChange implements domain.StatusChangeHandler.
func (t *Triggers) HandleStatusChange(ctx context.Context, ev domain.StatusChange) {
	title, ok := statusTitles[ev.To]
	if !ok {
		return
	}
	t.sender.Send(ctx, Message{
		RecipientID:  ev.CustomerID,
		Kind:         "TICKET_STATUS_CHANGE",
		Title:        title,
		Body:         fmt.Sprintf("Ticket %s moved to %s.", ev.TicketID, ev.To),
		ResourceType: "ticket",
		ResourceID:   ev.TicketID,
	})
}
