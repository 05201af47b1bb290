package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergioLiiD/yaavs-v5-sub002/ent/repairrecord"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/pkg/errors"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/testutil"
)

func TestTicketLifecycleThroughBudgetApproval(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "ticket_lifecycle")
	ctx := context.Background()

	tickets := NewTicketService(client, nil)
	budgets := NewBudgetService(client, tickets)

	tk, err := tickets.Create(ctx, CreateTicketInput{
		CustomerID:         "cust-1",
		DeviceID:           "dev-1",
		ProblemDescription: "does not boot",
		Actor:              "clerk-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "RECEIVED", string(tk.Status))

	tk, err = tickets.StartDiagnosis(ctx, tk.ID, "tech-1")
	require.NoError(t, err)
	assert.Equal(t, "DIAGNOSING", string(tk.Status))
	assert.NotNil(t, tk.DiagnosisStartedAt)

	// The repair record is created lazily with the first diagnosis.
	exists, err := client.RepairRecord.Query().
		Where(repairrecord.TicketID(tk.ID)).
		Exist(ctx)
	require.NoError(t, err)
	assert.True(t, exists)

	tk, err = tickets.CompleteDiagnosis(ctx, tk.ID, "tech-1", "dead battery")
	require.NoError(t, err)
	assert.Equal(t, "DIAGNOSIS_COMPLETE", string(tk.Status))

	rec, err := client.RepairRecord.Query().
		Where(repairrecord.TicketID(tk.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "dead battery", rec.Diagnosis)

	// Submitting with no budget fails.
	_, err = budgets.Submit(ctx, tk.ID, "clerk-1")
	require.Error(t, err)

	_, err = budgets.ReplaceItems(ctx, tk.ID, []BudgetItemInput{
		{Description: "Battery swap", Quantity: 1, UnitPriceCents: 9000},
	})
	require.NoError(t, err)

	tk, err = budgets.Submit(ctx, tk.ID, "clerk-1")
	require.NoError(t, err)
	assert.Equal(t, "BUDGET_PENDING", string(tk.Status))

	tk, err = budgets.Approve(ctx, tk.ID, "customer-via-clerk")
	require.NoError(t, err)
	assert.Equal(t, "BUDGET_APPROVED", string(tk.Status))

	// Approved budgets are locked.
	_, err = budgets.ReplaceItems(ctx, tk.ID, []BudgetItemInput{
		{Description: "Battery swap deluxe", Quantity: 1, UnitPriceCents: 19000},
	})
	require.Error(t, err)
	appErr, ok := errors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, errors.CodeBudgetLocked, appErr.Code)

	tk, err = tickets.StartRepair(ctx, tk.ID, "tech-1")
	require.NoError(t, err)
	assert.Equal(t, "IN_REPAIR", string(tk.Status))
	assert.NotNil(t, tk.RepairStartedAt)
}

func TestTicketTransitionRejectsSkippingStatuses(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "ticket_skip")
	ctx := context.Background()

	tickets := NewTicketService(client, nil)
	tk, err := tickets.Create(ctx, CreateTicketInput{
		CustomerID: "cust-1",
		DeviceID:   "dev-1",
		Actor:      "clerk-1",
	})
	require.NoError(t, err)

	_, err = tickets.StartRepair(ctx, tk.ID, "tech-1")
	require.Error(t, err)
	appErr, ok := errors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, errors.CodeInvalidTransition, appErr.Code)
	assert.Equal(t, "RECEIVED", appErr.Params["current_status"])
}

func TestTicketGetUnknownID(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "ticket_missing")
	tickets := NewTicketService(client, nil)

	_, err := tickets.Get(context.Background(), "nope")
	require.Error(t, err)
	appErr, ok := errors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, errors.CodeTicketNotFound, appErr.Code)
}
