// Package payments integrates external payment providers. Direct
// methods (cash, card, transfer) never touch a provider; only
// MERCADOPAGO payments go through the gateway.
package payments

import "context"

// ChargeRequest describes a charge to collect through a provider.
type ChargeRequest struct {
	TicketID    string
	AmountCents int64
	Description string
	PayerEmail  string
	// Token is the provider-side card token produced by the
	// checkout frontend.
	Token string
}

// ChargeResult is the provider's answer to a charge.
type ChargeResult struct {
	// ProviderPaymentID is the provider-side id, stored on the
	// payment row for later reconciliation.
	ProviderPaymentID string
	// Approved is false when the provider processed the request but
	// declined the charge.
	Approved bool
	// Status is the raw provider status string, for logs.
	Status string
}

// Gateway collects money through an external provider.
type Gateway interface {
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
}
