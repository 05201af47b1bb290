package errors

import (
	"fmt"
	"net/http"
)

// Error code constants. Errors carry code + params; the frontend decides
// presentation. Backend logs are always English.

// Ticket lifecycle error codes.
const (
	CodeTicketNotFound    = "TICKET_NOT_FOUND"
	CodeInvalidTransition = "INVALID_TRANSITION"
	CodeTicketCancelled   = "TICKET_CANCELLED"
	CodeTicketDelivered   = "TICKET_ALREADY_DELIVERED"
)

// Budget/estimate error codes.
const (
	CodeBudgetNotFound = "BUDGET_NOT_FOUND"
	CodeBudgetEmpty    = "BUDGET_EMPTY"
	CodeBudgetLocked   = "BUDGET_LOCKED"
)

// Inventory error codes.
const (
	CodePartNotFound       = "PART_NOT_FOUND"
	CodePartExists         = "PART_ALREADY_EXISTS"
	CodeInsufficientStock  = "INSUFFICIENT_STOCK"
	CodeConversionFailed   = "PART_CONVERSION_FAILED"
	CodeAmbiguousPartMatch = "AMBIGUOUS_PART_MATCH"
	CodeInvalidAdjustment  = "INVALID_STOCK_ADJUSTMENT"
)

// Payment error codes.
const (
	CodePaymentNotFound    = "PAYMENT_NOT_FOUND"
	CodePaymentVoided      = "PAYMENT_ALREADY_VOIDED"
	CodeOutstandingBalance = "OUTSTANDING_BALANCE"
	CodePaymentGateway     = "PAYMENT_GATEWAY_FAILED"
)

// Validation error codes.
const (
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeActorRequired    = "ACTOR_REQUIRED"
)

// Customer error codes.
const (
	CodeCustomerNotFound = "CUSTOMER_NOT_FOUND"
)

// MissingPart describes one part whose on-hand stock does not cover the
// quantity a ticket requires.
type MissingPart struct {
	PartID    string `json:"part_id"`
	Name      string `json:"name"`
	SKU       string `json:"sku"`
	Required  int    `json:"required"`
	Available int    `json:"available"`
	Missing   int    `json:"missing"`
}

// InsufficientStock creates the stock-shortage error carrying the full
// missing-part detail so the caller can restock without inspecting logs.
func InsufficientStock(missing []MissingPart) *AppError {
	return New(CodeInsufficientStock, "insufficient stock for required parts", http.StatusConflict).
		WithParams(map[string]interface{}{
			"missing_parts": missing,
		})
}

// OutstandingBalance creates the delivery-gate error carrying the open
// balance in cents. Raised only when balance > 0.
func OutstandingBalance(balanceCents int64) *AppError {
	return New(CodeOutstandingBalance, "ticket has an outstanding balance", http.StatusPaymentRequired).
		WithParams(map[string]interface{}{
			"balance_cents": balanceCents,
		})
}

// InvalidTransition creates the illegal-lifecycle-operation error.
func InvalidTransition(operation, currentStatus string) *AppError {
	return New(CodeInvalidTransition,
		fmt.Sprintf("operation %s is not allowed from status %s", operation, currentStatus),
		http.StatusConflict).
		WithParams(map[string]interface{}{
			"operation":      operation,
			"current_status": currentStatus,
		})
}

// ConversionFailed creates the error for a budget line that looks like a
// part reference but matched no catalog part.
func ConversionFailed(description string) *AppError {
	return UnprocessableEntity(CodeConversionFailed,
		fmt.Sprintf("budget line %q looks like a part reference but matches no catalog part", description)).
		WithParams(map[string]interface{}{
			"description": description,
		})
}

// AmbiguousPartMatch creates the error for a budget line matching more
// than one catalog part; the line must be fixed by hand, never guessed.
func AmbiguousPartMatch(description string, candidates []string) *AppError {
	return UnprocessableEntity(CodeAmbiguousPartMatch,
		fmt.Sprintf("budget line %q matches multiple catalog parts", description)).
		WithParams(map[string]interface{}{
			"description": description,
			"candidates":  candidates,
		})
}
