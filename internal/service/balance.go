package service

import (
	"context"

	"github.com/sergioLiiD/yaavs-v5-sub002/ent"
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/payment"
)

// BalanceService computes what a ticket still owes. Balance is always
// derived on read from the budget total minus ACTIVE payments; it is
// never stored, so a voided payment reopens the balance with no
// recalculation step.
type BalanceService struct {
	client  *ent.Client
	budgets *BudgetService
}

// NewBalanceService creates a BalanceService.
func NewBalanceService(client *ent.Client, budgets *BudgetService) *BalanceService {
	return &BalanceService{client: client, budgets: budgets}
}

// BalanceBreakdown is the derived financial position of a ticket.
// BalanceCents may go negative on overpayment; delivery only requires
// it to be non-positive.
type BalanceBreakdown struct {
	TotalCents   int64 `json:"total_cents"`
	PaidCents    int64 `json:"paid_cents"`
	BalanceCents int64 `json:"balance_cents"`
}

// Breakdown computes the ticket's balance.
func (s *BalanceService) Breakdown(ctx context.Context, ticketID string) (*BalanceBreakdown, error) {
	total, err := s.budgets.TotalCents(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	payments, err := s.client.Payment.Query().
		Where(
			payment.TicketID(ticketID),
			payment.StateEQ(payment.StateACTIVE),
		).
		All(ctx)
	if err != nil {
		return nil, err
	}

	var paid int64
	for _, p := range payments {
		paid += p.AmountCents
	}

	return &BalanceBreakdown{
		TotalCents:   total,
		PaidCents:    paid,
		BalanceCents: total - paid,
	}, nil
}
