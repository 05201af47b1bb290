package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergioLiiD/yaavs-v5-sub002/ent"
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/ledgerentry"
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/ticket"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/domain"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/matcher"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/pkg/errors"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/service"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/testutil"
)

type env struct {
	client *ent.Client
	pool   *pgxpool.Pool

	tickets        *service.TicketService
	budgets        *service.BudgetService
	payments       *service.PaymentService
	inventory      *InventoryAtomicWriter
	completeRepair *CompleteRepairUsecase
	deliver        *DeliverUsecase
	cancel         *CancelTicketUsecase
}

func newEnv(t *testing.T, prefix string) *env {
	t.Helper()
	client, pool := testutil.OpenPostgres(t, prefix)

	tickets := service.NewTicketService(client, nil)
	budgets := service.NewBudgetService(client, tickets)
	consumption := service.NewConsumptionService(client, budgets, matcher.NewNameMatcher())
	validator := service.NewStockValidator(client)
	balance := service.NewBalanceService(client, budgets)
	inventory := NewInventoryAtomicWriter(pool)

	return &env{
		client:         client,
		pool:           pool,
		tickets:        tickets,
		budgets:        budgets,
		payments:       service.NewPaymentService(client, tickets, nil),
		inventory:      inventory,
		completeRepair: NewCompleteRepairUsecase(client, pool, consumption, validator, inventory, tickets, nil),
		deliver:        NewDeliverUsecase(client, pool, balance, tickets, nil),
		cancel:         NewCancelTicketUsecase(client, pool, inventory, tickets, nil),
	}
}

// seedPart creates a catalog part and returns its id.
func (e *env) seedPart(t *testing.T, name, sku string, stock int, priceCents int64) string {
	t.Helper()
	p, err := e.client.Part.Create().
		SetID("part-" + sku).
		SetName(name).
		SetSku(sku).
		SetStockQuantity(stock).
		SetUnitPriceCents(priceCents).
		Save(context.Background())
	require.NoError(t, err)
	return p.ID
}

// seedTicketInRepair builds a ticket in IN_REPAIR with its repair
// record and an approved budget made of the given lines.
func (e *env) seedTicketInRepair(t *testing.T, items []service.BudgetItemInput) string {
	t.Helper()
	ctx := context.Background()

	cust, err := e.client.Customer.Create().
		SetID("cust-" + t.Name()).
		SetName("Test Customer").
		Save(ctx)
	require.NoError(t, err)

	tk, err := e.client.Ticket.Create().
		SetID("tk-" + t.Name()).
		SetCustomerID(cust.ID).
		SetDeviceID("dev-1").
		SetStatus(ticket.Status("IN_REPAIR")).
		SetCreatedBy("tester").
		Save(ctx)
	require.NoError(t, err)

	_, err = e.client.RepairRecord.Create().
		SetID("rec-" + t.Name()).
		SetTicketID(tk.ID).
		Save(ctx)
	require.NoError(t, err)

	b, err := e.client.Budget.Create().
		SetID("bud-" + t.Name()).
		SetTicketID(tk.ID).
		SetApproved(true).
		SetApprovedBy("tester").
		Save(ctx)
	require.NoError(t, err)

	for i, in := range items {
		_, err = e.client.BudgetItem.Create().
			SetID(generateID()).
			SetBudgetID(b.ID).
			SetDescription(in.Description).
			SetQuantity(in.Quantity).
			SetUnitPriceCents(in.UnitPriceCents).
			Save(ctx)
		require.NoError(t, err, "budget item %d", i)
	}
	return tk.ID
}

func (e *env) partStock(t *testing.T, partID string) int {
	t.Helper()
	p, err := e.client.Part.Get(context.Background(), partID)
	require.NoError(t, err)
	return p.StockQuantity
}

func (e *env) ledgerEntries(t *testing.T, ticketID, kind string) []*ent.LedgerEntry {
	t.Helper()
	entries, err := e.client.LedgerEntry.Query().
		Where(
			ledgerentry.Reference(domain.TicketRef(ticketID)),
			ledgerentry.KindEQ(ledgerentry.Kind(kind)),
		).
		All(context.Background())
	require.NoError(t, err)
	return entries
}

func TestCompleteRepairDeductsExactlyOnce(t *testing.T) {
	e := newEnv(t, "complete_repair_once")
	ctx := context.Background()

	screenID := e.seedPart(t, "iPhone 13 Screen", "SCR-IP13", 5, 12000)
	ticketID := e.seedTicketInRepair(t, []service.BudgetItemInput{
		{Description: "Replace screen SCR-IP13", Quantity: 2, UnitPriceCents: 12000},
		{Description: "Diagnostic labor", Quantity: 1, UnitPriceCents: 3000},
	})

	tk, err := e.completeRepair.Execute(ctx, ticketID, "tech-1")
	require.NoError(t, err)
	assert.Equal(t, "REPAIRED", string(tk.Status))
	assert.Equal(t, 3, e.partStock(t, screenID))
	assert.Len(t, e.ledgerEntries(t, ticketID, "REPAIR_CONSUMPTION"), 1)

	// Retry is a silent no-op.
	tk, err = e.completeRepair.Execute(ctx, ticketID, "tech-1")
	require.NoError(t, err)
	assert.Equal(t, "REPAIRED", string(tk.Status))
	assert.Equal(t, 3, e.partStock(t, screenID))
	assert.Len(t, e.ledgerEntries(t, ticketID, "REPAIR_CONSUMPTION"), 1)
}

func TestCompleteRepairInsufficientStock(t *testing.T) {
	e := newEnv(t, "complete_repair_shortage")
	ctx := context.Background()

	screenID := e.seedPart(t, "iPhone 13 Screen", "SCR-IP13", 1, 12000)
	batteryID := e.seedPart(t, "iPhone 13 Battery", "BAT-IP13", 0, 6000)
	ticketID := e.seedTicketInRepair(t, []service.BudgetItemInput{
		{Description: "Replace screen SCR-IP13", Quantity: 2, UnitPriceCents: 12000},
		{Description: "Swap battery BAT-IP13", Quantity: 1, UnitPriceCents: 6000},
	})

	_, err := e.completeRepair.Execute(ctx, ticketID, "tech-1")
	require.Error(t, err)

	appErr, ok := errors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, errors.CodeInsufficientStock, appErr.Code)

	missing, ok := appErr.Params["missing_parts"].([]errors.MissingPart)
	require.True(t, ok)
	assert.Len(t, missing, 2, "shortage report must cover every missing part")

	// Nothing moved.
	assert.Equal(t, 1, e.partStock(t, screenID))
	assert.Equal(t, 0, e.partStock(t, batteryID))
	assert.Empty(t, e.ledgerEntries(t, ticketID, "REPAIR_CONSUMPTION"))

	tk, err := e.tickets.Get(ctx, ticketID)
	require.NoError(t, err)
	assert.Equal(t, "IN_REPAIR", string(tk.Status))

	// Restock and retry succeeds.
	require.NoError(t, e.inventory.AdjustStock(ctx, screenID, 5, domain.LedgerKindRestock, "PO-1", "tester"))
	require.NoError(t, e.inventory.AdjustStock(ctx, batteryID, 5, domain.LedgerKindRestock, "PO-1", "tester"))

	tk, err = e.completeRepair.Execute(ctx, ticketID, "tech-1")
	require.NoError(t, err)
	assert.Equal(t, "REPAIRED", string(tk.Status))
	assert.Equal(t, 4, e.partStock(t, screenID))
	assert.Equal(t, 4, e.partStock(t, batteryID))
}

func TestCompleteRepairAmbiguousLineFails(t *testing.T) {
	e := newEnv(t, "complete_repair_ambiguous")
	ctx := context.Background()

	e.seedPart(t, "Back Glass", "GLS-13", 5, 4000)
	e.seedPart(t, "Back Glass", "GLS-14", 5, 4500)
	ticketID := e.seedTicketInRepair(t, []service.BudgetItemInput{
		{Description: "Back Glass", Quantity: 1, UnitPriceCents: 4000},
	})

	_, err := e.completeRepair.Execute(ctx, ticketID, "tech-1")
	require.Error(t, err)

	appErr, ok := errors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, errors.CodeAmbiguousPartMatch, appErr.Code)
}

func TestCompleteRepairConcurrentCallsDeductOnce(t *testing.T) {
	e := newEnv(t, "complete_repair_concurrent")
	ctx := context.Background()

	screenID := e.seedPart(t, "iPhone 13 Screen", "SCR-IP13", 10, 12000)
	ticketID := e.seedTicketInRepair(t, []service.BudgetItemInput{
		{Description: "Replace screen SCR-IP13", Quantity: 2, UnitPriceCents: 12000},
	})

	const callers = 4
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = e.completeRepair.Execute(ctx, ticketID, "tech-1")
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		assert.NoError(t, err, "caller %d", i)
	}
	assert.Equal(t, 8, e.partStock(t, screenID), "stock deducted exactly once")
	assert.Len(t, e.ledgerEntries(t, ticketID, "REPAIR_CONSUMPTION"), 1)
}

func TestCancelAfterDeductionRestoresStock(t *testing.T) {
	e := newEnv(t, "cancel_restores")
	ctx := context.Background()

	screenID := e.seedPart(t, "iPhone 13 Screen", "SCR-IP13", 5, 12000)
	ticketID := e.seedTicketInRepair(t, []service.BudgetItemInput{
		{Description: "Replace screen SCR-IP13", Quantity: 2, UnitPriceCents: 12000},
	})

	_, err := e.completeRepair.Execute(ctx, ticketID, "tech-1")
	require.NoError(t, err)
	require.Equal(t, 3, e.partStock(t, screenID))

	// An active payment that must be voided by the cancellation.
	p, err := e.payments.Register(ctx, service.RegisterPaymentInput{
		TicketID:    ticketID,
		AmountCents: 10000,
		Method:      "CASH",
		Actor:       "clerk-1",
	})
	require.NoError(t, err)

	tk, err := e.cancel.Execute(ctx, ticketID, "clerk-1", "customer declined")
	require.NoError(t, err)
	assert.Equal(t, "CANCELLED", string(tk.Status))
	assert.True(t, tk.Cancelled)
	assert.Equal(t, "REPAIRED", tk.StatusBeforeCancellation)
	assert.Equal(t, "customer declined", tk.CancelReason)

	// Stock restored through a compensating entry, not a delete.
	assert.Equal(t, 5, e.partStock(t, screenID))
	assert.Len(t, e.ledgerEntries(t, ticketID, "REPAIR_CONSUMPTION"), 1)
	assert.Len(t, e.ledgerEntries(t, ticketID, "REPAIR_REVERSAL"), 1)

	voided, err := e.client.Payment.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "VOIDED", string(voided.State))

	// A second cancel fails; so does reversing again.
	_, err = e.cancel.Execute(ctx, ticketID, "clerk-1", "again")
	require.Error(t, err)
	assert.Equal(t, 5, e.partStock(t, screenID))
	assert.Len(t, e.ledgerEntries(t, ticketID, "REPAIR_REVERSAL"), 1)
}

func TestCancelBeforeDeductionTouchesNoStock(t *testing.T) {
	e := newEnv(t, "cancel_no_deduction")
	ctx := context.Background()

	screenID := e.seedPart(t, "iPhone 13 Screen", "SCR-IP13", 5, 12000)
	ticketID := e.seedTicketInRepair(t, []service.BudgetItemInput{
		{Description: "Replace screen SCR-IP13", Quantity: 2, UnitPriceCents: 12000},
	})

	tk, err := e.cancel.Execute(ctx, ticketID, "clerk-1", "customer changed mind")
	require.NoError(t, err)
	assert.Equal(t, "CANCELLED", string(tk.Status))

	assert.Equal(t, 5, e.partStock(t, screenID))
	assert.Empty(t, e.ledgerEntries(t, ticketID, "REPAIR_CONSUMPTION"))
	assert.Empty(t, e.ledgerEntries(t, ticketID, "REPAIR_REVERSAL"))
}
