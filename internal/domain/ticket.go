// Package domain holds the workshop domain vocabulary shared between
// the Ent layer and the raw SQL inventory paths: ticket statuses,
// ledger entry kinds, payment states, and status-change events.
package domain

import "fmt"

// Status is a ticket lifecycle status. The values mirror the Ent enum
// on the Ticket schema; the raw pgx paths write them as strings.
type Status string

const (
	StatusReceived          Status = "RECEIVED"
	StatusDiagnosing        Status = "DIAGNOSING"
	StatusDiagnosisComplete Status = "DIAGNOSIS_COMPLETE"
	StatusBudgetPending     Status = "BUDGET_PENDING"
	StatusBudgetApproved    Status = "BUDGET_APPROVED"
	StatusInRepair          Status = "IN_REPAIR"
	StatusRepaired          Status = "REPAIRED"
	StatusReadyForDelivery  Status = "READY_FOR_DELIVERY"
	StatusDelivered         Status = "DELIVERED"
	StatusCancelled         Status = "CANCELLED"
)

// Terminal reports whether no further lifecycle operation is legal.
func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// LedgerKind is the kind of an inventory ledger entry.
type LedgerKind string

const (
	LedgerKindRepairConsumption LedgerKind = "REPAIR_CONSUMPTION"
	LedgerKindRepairReversal    LedgerKind = "REPAIR_REVERSAL"
	LedgerKindSale              LedgerKind = "SALE"
	LedgerKindRestock           LedgerKind = "RESTOCK"
	LedgerKindManualAdjustment  LedgerKind = "MANUAL_ADJUSTMENT"
)

// PaymentState is the settlement state of a payment.
type PaymentState string

const (
	PaymentStateActive PaymentState = "ACTIVE"
	PaymentStateVoided PaymentState = "VOIDED"
)

// TicketRef builds the ledger reference string for a ticket. The
// existence of any (TicketRef, REPAIR_CONSUMPTION) ledger entry means
// deduction has already occurred for that ticket.
func TicketRef(ticketID string) string {
	return fmt.Sprintf("Ticket-%s", ticketID)
}
