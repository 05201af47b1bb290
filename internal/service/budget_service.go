package service

import (
	"context"
	"time"

	"github.com/sergioLiiD/yaavs-v5-sub002/ent"
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/budget"
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/budgetitem"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/pkg/errors"
)

// BudgetService manages the priced estimate for a ticket. A budget is
// editable until approval; approval locks it because the approved
// lines are what consumption derivation later reads.
type BudgetService struct {
	client  *ent.Client
	tickets *TicketService
}

// NewBudgetService creates a BudgetService.
func NewBudgetService(client *ent.Client, tickets *TicketService) *BudgetService {
	return &BudgetService{client: client, tickets: tickets}
}

// BudgetItemInput is one line of a budget.
type BudgetItemInput struct {
	Description     string
	Quantity        int
	UnitPriceCents  int64
	ExtraConcept    string
	ExtraPriceCents int64
}

// BudgetView is a budget plus its items and the derived total.
type BudgetView struct {
	Budget     *ent.Budget       `json:"budget"`
	Items      []*ent.BudgetItem `json:"items"`
	TotalCents int64             `json:"total_cents"`
}

// Get returns the budget view for a ticket.
func (s *BudgetService) Get(ctx context.Context, ticketID string) (*BudgetView, error) {
	b, err := s.client.Budget.Query().
		Where(budget.TicketID(ticketID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, errors.NotFound(errors.CodeBudgetNotFound, "ticket has no budget")
		}
		return nil, err
	}
	items, err := s.client.BudgetItem.Query().
		Where(budgetitem.BudgetID(b.ID)).
		Order(ent.Asc(budgetitem.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return &BudgetView{Budget: b, Items: items, TotalCents: itemsTotal(items)}, nil
}

// ReplaceItems swaps the full line set of the ticket's budget,
// creating the budget on first use. Fails once the budget is approved.
func (s *BudgetService) ReplaceItems(ctx context.Context, ticketID string, items []BudgetItemInput) (*BudgetView, error) {
	t, err := s.tickets.Get(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if t.Cancelled {
		return nil, errors.Conflict(errors.CodeTicketCancelled, "ticket is cancelled")
	}
	if len(items) == 0 {
		return nil, errors.BadRequest(errors.CodeBudgetEmpty, "budget needs at least one item")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	b, err := tx.Budget.Query().
		Where(budget.TicketID(ticketID)).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		b, err = tx.Budget.Create().
			SetID(generateID()).
			SetTicketID(ticketID).
			Save(ctx)
		if err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	case b.Approved:
		err = errors.Conflict(errors.CodeBudgetLocked, "budget is approved and locked")
		return nil, err
	}

	if _, err = tx.BudgetItem.Delete().
		Where(budgetitem.BudgetID(b.ID)).
		Exec(ctx); err != nil {
		return nil, err
	}

	bulk := make([]*ent.BudgetItemCreate, len(items))
	for i, in := range items {
		bulk[i] = tx.BudgetItem.Create().
			SetID(generateID()).
			SetBudgetID(b.ID).
			SetDescription(in.Description).
			SetQuantity(in.Quantity).
			SetUnitPriceCents(in.UnitPriceCents).
			SetExtraConcept(in.ExtraConcept).
			SetExtraPriceCents(in.ExtraPriceCents)
	}
	if _, err = tx.BudgetItem.CreateBulk(bulk...).Save(ctx); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return s.Get(ctx, ticketID)
}

// Submit moves the ticket from DIAGNOSIS_COMPLETE to BUDGET_PENDING.
// Requires a non-empty budget; an estimate with no lines cannot be
// sent to the customer.
func (s *BudgetService) Submit(ctx context.Context, ticketID, actor string) (*ent.Ticket, error) {
	view, err := s.Get(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if len(view.Items) == 0 {
		return nil, errors.BadRequest(errors.CodeBudgetEmpty, "budget has no items")
	}
	return s.tickets.transition(ctx, ticketID, actor, OpSubmitBudget, nil, nil)
}

// Approve locks the budget and moves the ticket from BUDGET_PENDING
// to BUDGET_APPROVED.
func (s *BudgetService) Approve(ctx context.Context, ticketID, actor string) (*ent.Ticket, error) {
	view, err := s.Get(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if view.Budget.Approved {
		return nil, errors.Conflict(errors.CodeBudgetLocked, "budget is already approved")
	}

	return s.tickets.transition(ctx, ticketID, actor, OpApproveBudget, nil,
		func(ctx context.Context, tx *ent.Tx) error {
			n, err := tx.Budget.Update().
				Where(budget.TicketID(ticketID), budget.Approved(false)).
				SetApproved(true).
				SetApprovedBy(actor).
				SetApprovedAt(time.Now()).
				Save(ctx)
			if err != nil {
				return err
			}
			if n == 0 {
				return errors.Conflict(errors.CodeBudgetLocked, "budget approval raced")
			}
			return nil
		})
}

// TotalCents returns the derived budget total for a ticket. A ticket
// without a budget owes nothing.
func (s *BudgetService) TotalCents(ctx context.Context, ticketID string) (int64, error) {
	view, err := s.Get(ctx, ticketID)
	if err != nil {
		if appErr, ok := errors.IsAppError(err); ok && appErr.Code == errors.CodeBudgetNotFound {
			return 0, nil
		}
		return 0, err
	}
	return view.TotalCents, nil
}

func itemsTotal(items []*ent.BudgetItem) int64 {
	var total int64
	for _, it := range items {
		total += int64(it.Quantity)*it.UnitPriceCents + it.ExtraPriceCents
	}
	return total
}
