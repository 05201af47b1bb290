package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergioLiiD/yaavs-v5-sub002/internal/domain"
	apperrors "github.com/sergioLiiD/yaavs-v5-sub002/internal/pkg/errors"
)

func TestNextStatusHappyPath(t *testing.T) {
	steps := []struct {
		op   Operation
		from domain.Status
		to   domain.Status
	}{
		{OpStartDiagnosis, domain.StatusReceived, domain.StatusDiagnosing},
		{OpCompleteDiagnosis, domain.StatusDiagnosing, domain.StatusDiagnosisComplete},
		{OpSubmitBudget, domain.StatusDiagnosisComplete, domain.StatusBudgetPending},
		{OpApproveBudget, domain.StatusBudgetPending, domain.StatusBudgetApproved},
		{OpStartRepair, domain.StatusBudgetApproved, domain.StatusInRepair},
		{OpCompleteRepair, domain.StatusInRepair, domain.StatusRepaired},
		{OpMarkReady, domain.StatusRepaired, domain.StatusReadyForDelivery},
		{OpDeliver, domain.StatusReadyForDelivery, domain.StatusDelivered},
	}

	for _, s := range steps {
		got, err := NextStatus(s.op, s.from)
		require.NoError(t, err, "op %s from %s", s.op, s.from)
		assert.Equal(t, s.to, got)
	}
}

func TestNextStatusDeliverFromRepaired(t *testing.T) {
	got, err := NextStatus(OpDeliver, domain.StatusRepaired)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDelivered, got)
}

func TestNextStatusRejectsSkips(t *testing.T) {
	cases := []struct {
		op   Operation
		from domain.Status
	}{
		{OpStartRepair, domain.StatusReceived},
		{OpCompleteRepair, domain.StatusBudgetApproved},
		{OpDeliver, domain.StatusInRepair},
		{OpApproveBudget, domain.StatusDiagnosing},
		{OpStartDiagnosis, domain.StatusDiagnosing},
	}

	for _, c := range cases {
		_, err := NextStatus(c.op, c.from)
		require.Error(t, err, "op %s from %s", c.op, c.from)

		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.CodeInvalidTransition, appErr.Code)
	}
}

func TestNextStatusCancelFromAnyActive(t *testing.T) {
	for _, from := range AllowedFrom(OpCancel) {
		got, err := NextStatus(OpCancel, from)
		require.NoError(t, err, "cancel from %s", from)
		assert.Equal(t, domain.StatusCancelled, got)
	}
}

func TestNextStatusCancelFromTerminalFails(t *testing.T) {
	for _, from := range []domain.Status{domain.StatusDelivered, domain.StatusCancelled} {
		_, err := NextStatus(OpCancel, from)
		require.Error(t, err, "cancel from %s", from)
	}
}

func TestNextStatusNothingLeavesTerminal(t *testing.T) {
	ops := []Operation{
		OpStartDiagnosis, OpCompleteDiagnosis, OpSubmitBudget,
		OpApproveBudget, OpStartRepair, OpCompleteRepair,
		OpMarkReady, OpDeliver, OpCancel,
	}
	for _, op := range ops {
		for _, from := range []domain.Status{domain.StatusDelivered, domain.StatusCancelled} {
			_, err := NextStatus(op, from)
			require.Error(t, err, "op %s from %s", op, from)
		}
	}
}
