// Package service implements the workshop business logic over the Ent
// client: ticket lifecycle, budget management, part consumption
// derivation, stock validation, and payment balance.
package service

import (
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/domain"
	apperrors "github.com/sergioLiiD/yaavs-v5-sub002/internal/pkg/errors"
)

// Operation is a ticket lifecycle operation.
type Operation string

const (
	OpStartDiagnosis    Operation = "startDiagnosis"
	OpCompleteDiagnosis Operation = "completeDiagnosis"
	OpSubmitBudget      Operation = "submitBudget"
	OpApproveBudget     Operation = "approveBudget"
	OpStartRepair       Operation = "startRepair"
	OpCompleteRepair    Operation = "completeRepair"
	OpMarkReady         Operation = "markReadyForDelivery"
	OpDeliver           Operation = "deliver"
	OpCancel            Operation = "cancel"
)

// transition describes one lifecycle operation: the statuses it may
// start from and the status it lands on. This table is the single
// source of truth for legal transitions; every mutation path consults
// it before touching a ticket.
type transition struct {
	from []domain.Status
	to   domain.Status
}

var transitions = map[Operation]transition{
	OpStartDiagnosis: {
		from: []domain.Status{domain.StatusReceived},
		to:   domain.StatusDiagnosing,
	},
	OpCompleteDiagnosis: {
		from: []domain.Status{domain.StatusDiagnosing},
		to:   domain.StatusDiagnosisComplete,
	},
	OpSubmitBudget: {
		from: []domain.Status{domain.StatusDiagnosisComplete},
		to:   domain.StatusBudgetPending,
	},
	OpApproveBudget: {
		from: []domain.Status{domain.StatusBudgetPending},
		to:   domain.StatusBudgetApproved,
	},
	OpStartRepair: {
		from: []domain.Status{domain.StatusBudgetApproved},
		to:   domain.StatusInRepair,
	},
	OpCompleteRepair: {
		from: []domain.Status{domain.StatusInRepair},
		to:   domain.StatusRepaired,
	},
	OpMarkReady: {
		from: []domain.Status{domain.StatusRepaired},
		to:   domain.StatusReadyForDelivery,
	},
	OpDeliver: {
		from: []domain.Status{domain.StatusRepaired, domain.StatusReadyForDelivery},
		to:   domain.StatusDelivered,
	},
}

// NextStatus validates that op is legal from current and returns the
// resulting status. Cancellation is handled separately because it is
// legal from every non-terminal status.
func NextStatus(op Operation, current domain.Status) (domain.Status, error) {
	if op == OpCancel {
		if current.Terminal() {
			return "", apperrors.InvalidTransition(string(op), string(current))
		}
		return domain.StatusCancelled, nil
	}

	t, ok := transitions[op]
	if !ok {
		return "", apperrors.InvalidTransition(string(op), string(current))
	}
	for _, from := range t.from {
		if current == from {
			return t.to, nil
		}
	}
	return "", apperrors.InvalidTransition(string(op), string(current))
}

// AllowedFrom returns the statuses from which op may start. Used by
// the raw SQL paths to build status guards into UPDATE statements.
func AllowedFrom(op Operation) []domain.Status {
	if op == OpCancel {
		return []domain.Status{
			domain.StatusReceived,
			domain.StatusDiagnosing,
			domain.StatusDiagnosisComplete,
			domain.StatusBudgetPending,
			domain.StatusBudgetApproved,
			domain.StatusInRepair,
			domain.StatusRepaired,
			domain.StatusReadyForDelivery,
		}
	}
	t, ok := transitions[op]
	if !ok {
		return nil
	}
	out := make([]domain.Status, len(t.from))
	copy(out, t.from)
	return out
}
