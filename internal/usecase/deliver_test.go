package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergioLiiD/yaavs-v5-sub002/internal/pkg/errors"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/service"
)

func TestDeliverBlockedByOutstandingBalance(t *testing.T) {
	e := newEnv(t, "deliver_balance_gate")
	ctx := context.Background()

	e.seedPart(t, "iPhone 13 Screen", "SCR-IP13", 5, 12000)
	ticketID := e.seedTicketInRepair(t, []service.BudgetItemInput{
		{Description: "Replace screen SCR-IP13", Quantity: 2, UnitPriceCents: 12000},
		{Description: "Diagnostic labor", Quantity: 1, UnitPriceCents: 6000},
	})

	_, err := e.completeRepair.Execute(ctx, ticketID, "tech-1")
	require.NoError(t, err)

	// Total is 2*12000 + 6000 = 30000. Nothing paid yet.
	_, err = e.deliver.Execute(ctx, ticketID, "clerk-1")
	require.Error(t, err)

	appErr, ok := errors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, errors.CodeOutstandingBalance, appErr.Code)
	assert.Equal(t, int64(30000), appErr.Params["balance_cents"])

	// Partial payment is still not enough.
	_, err = e.payments.Register(ctx, service.RegisterPaymentInput{
		TicketID: ticketID, AmountCents: 20000, Method: "CASH", Actor: "clerk-1",
	})
	require.NoError(t, err)

	_, err = e.deliver.Execute(ctx, ticketID, "clerk-1")
	require.Error(t, err)
	appErr, ok = errors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, int64(10000), appErr.Params["balance_cents"])

	// Settle and deliver.
	_, err = e.payments.Register(ctx, service.RegisterPaymentInput{
		TicketID: ticketID, AmountCents: 10000, Method: "CARD", Actor: "clerk-1",
	})
	require.NoError(t, err)

	tk, err := e.deliver.Execute(ctx, ticketID, "clerk-1")
	require.NoError(t, err)
	assert.Equal(t, "DELIVERED", string(tk.Status))
	assert.True(t, tk.Delivered)
	assert.NotNil(t, tk.DeliveredAt)
}

func TestDeliverTwiceFails(t *testing.T) {
	e := newEnv(t, "deliver_twice")
	ctx := context.Background()

	e.seedPart(t, "iPhone 13 Screen", "SCR-IP13", 5, 12000)
	ticketID := e.seedTicketInRepair(t, []service.BudgetItemInput{
		{Description: "Replace screen SCR-IP13", Quantity: 1, UnitPriceCents: 12000},
	})

	_, err := e.completeRepair.Execute(ctx, ticketID, "tech-1")
	require.NoError(t, err)

	_, err = e.payments.Register(ctx, service.RegisterPaymentInput{
		TicketID: ticketID, AmountCents: 12000, Method: "CASH", Actor: "clerk-1",
	})
	require.NoError(t, err)

	_, err = e.deliver.Execute(ctx, ticketID, "clerk-1")
	require.NoError(t, err)

	_, err = e.deliver.Execute(ctx, ticketID, "clerk-1")
	require.Error(t, err)
	appErr, ok := errors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, errors.CodeTicketDelivered, appErr.Code)
}

func TestDeliverToleratesOverpayment(t *testing.T) {
	e := newEnv(t, "deliver_overpaid")
	ctx := context.Background()

	e.seedPart(t, "iPhone 13 Screen", "SCR-IP13", 5, 12000)
	ticketID := e.seedTicketInRepair(t, []service.BudgetItemInput{
		{Description: "Replace screen SCR-IP13", Quantity: 1, UnitPriceCents: 12000},
	})

	_, err := e.completeRepair.Execute(ctx, ticketID, "tech-1")
	require.NoError(t, err)

	_, err = e.payments.Register(ctx, service.RegisterPaymentInput{
		TicketID: ticketID, AmountCents: 15000, Method: "CASH", Actor: "clerk-1",
	})
	require.NoError(t, err)

	tk, err := e.deliver.Execute(ctx, ticketID, "clerk-1")
	require.NoError(t, err)
	assert.Equal(t, "DELIVERED", string(tk.Status))
}

func TestVoidedPaymentReopensBalance(t *testing.T) {
	e := newEnv(t, "deliver_void_reopens")
	ctx := context.Background()

	e.seedPart(t, "iPhone 13 Screen", "SCR-IP13", 5, 12000)
	ticketID := e.seedTicketInRepair(t, []service.BudgetItemInput{
		{Description: "Replace screen SCR-IP13", Quantity: 1, UnitPriceCents: 12000},
	})

	_, err := e.completeRepair.Execute(ctx, ticketID, "tech-1")
	require.NoError(t, err)

	p, err := e.payments.Register(ctx, service.RegisterPaymentInput{
		TicketID: ticketID, AmountCents: 12000, Method: "CASH", Actor: "clerk-1",
	})
	require.NoError(t, err)

	_, err = e.payments.Void(ctx, p.ID, "manager-1")
	require.NoError(t, err)

	_, err = e.deliver.Execute(ctx, ticketID, "clerk-1")
	require.Error(t, err)
	appErr, ok := errors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, errors.CodeOutstandingBalance, appErr.Code)
	assert.Equal(t, int64(12000), appErr.Params["balance_cents"])
}
