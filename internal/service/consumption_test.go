package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergioLiiD/yaavs-v5-sub002/ent"
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/ticket"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/matcher"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/pkg/errors"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/testutil"
)

func seedTicketWithBudget(t *testing.T, client *ent.Client, lines []BudgetItemInput) string {
	t.Helper()
	ctx := context.Background()

	tk, err := client.Ticket.Create().
		SetID("tk-" + t.Name()).
		SetCustomerID("cust-1").
		SetDeviceID("dev-1").
		SetStatus(ticket.Status("IN_REPAIR")).
		SetCreatedBy("tester").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.RepairRecord.Create().
		SetID("rec-" + t.Name()).
		SetTicketID(tk.ID).
		Save(ctx)
	require.NoError(t, err)

	b, err := client.Budget.Create().
		SetID("bud-" + t.Name()).
		SetTicketID(tk.ID).
		SetApproved(true).
		Save(ctx)
	require.NoError(t, err)

	for _, in := range lines {
		_, err = client.BudgetItem.Create().
			SetID(generateID()).
			SetBudgetID(b.ID).
			SetDescription(in.Description).
			SetQuantity(in.Quantity).
			SetUnitPriceCents(in.UnitPriceCents).
			Save(ctx)
		require.NoError(t, err)
	}
	return tk.ID
}

func newConsumption(client *ent.Client) *ConsumptionService {
	tickets := NewTicketService(client, nil)
	budgets := NewBudgetService(client, tickets)
	return NewConsumptionService(client, budgets, matcher.NewNameMatcher())
}

func TestEnsureUsagesDerivesAndAggregates(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "consumption_derive")
	ctx := context.Background()

	screen, err := client.Part.Create().
		SetID("p-screen").SetName("iPhone 13 Screen").SetSku("SCR-IP13").
		SetStockQuantity(10).Save(ctx)
	require.NoError(t, err)

	ticketID := seedTicketWithBudget(t, client, []BudgetItemInput{
		{Description: "Replace screen SCR-IP13", Quantity: 1, UnitPriceCents: 12000},
		{Description: "Second screen SCR-IP13 (spare)", Quantity: 2, UnitPriceCents: 12000},
		{Description: "Diagnostic labor", Quantity: 1, UnitPriceCents: 3000},
	})

	svc := newConsumption(client)
	usages, err := svc.EnsureUsages(ctx, ticketID)
	require.NoError(t, err)

	// Two part lines collapse into one usage; the labor line is skipped.
	require.Len(t, usages, 1)
	assert.Equal(t, screen.ID, usages[0].PartID)
	assert.Equal(t, 3, usages[0].Quantity)
}

func TestEnsureUsagesIsIdempotent(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "consumption_idempotent")
	ctx := context.Background()

	_, err := client.Part.Create().
		SetID("p-screen").SetName("iPhone 13 Screen").SetSku("SCR-IP13").
		SetStockQuantity(10).Save(ctx)
	require.NoError(t, err)

	ticketID := seedTicketWithBudget(t, client, []BudgetItemInput{
		{Description: "Replace screen SCR-IP13", Quantity: 2, UnitPriceCents: 12000},
	})

	svc := newConsumption(client)
	first, err := svc.EnsureUsages(ctx, ticketID)
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := svc.EnsureUsages(ctx, ticketID)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].ID, second[0].ID, "derivation must not run twice")
	assert.Equal(t, 2, second[0].Quantity)
}

func TestEnsureUsagesRejectsUnresolvedSKU(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "consumption_unresolved")
	ctx := context.Background()

	ticketID := seedTicketWithBudget(t, client, []BudgetItemInput{
		{Description: "Fit part XYZ-999 from supplier", Quantity: 1, UnitPriceCents: 5000},
	})

	svc := newConsumption(client)
	_, err := svc.EnsureUsages(ctx, ticketID)
	require.Error(t, err)

	appErr, ok := errors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, errors.CodeConversionFailed, appErr.Code)

	// Nothing half-derived sticks around.
	count, err := client.PartUsage.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestEnsureUsagesAllServiceConcepts(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "consumption_services_only")
	ctx := context.Background()

	ticketID := seedTicketWithBudget(t, client, []BudgetItemInput{
		{Description: "Diagnostic labor", Quantity: 1, UnitPriceCents: 3000},
		{Description: "Cleaning", Quantity: 1, UnitPriceCents: 1500},
	})

	svc := newConsumption(client)
	usages, err := svc.EnsureUsages(ctx, ticketID)
	require.NoError(t, err)
	assert.Empty(t, usages, "labor-only budgets need no stock")
}
