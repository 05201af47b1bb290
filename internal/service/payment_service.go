package service

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/sergioLiiD/yaavs-v5-sub002/ent"
	entpayment "github.com/sergioLiiD/yaavs-v5-sub002/ent/payment"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/payments"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/pkg/errors"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/pkg/logger"
)

// PaymentService registers and voids payments against tickets. Direct
// methods record immediately; MERCADOPAGO goes through the gateway
// first and only an approved charge is recorded.
type PaymentService struct {
	client  *ent.Client
	tickets *TicketService
	gateway payments.Gateway
}

// NewPaymentService creates a PaymentService. gateway may be nil when
// no provider is configured; MERCADOPAGO payments then fail cleanly.
func NewPaymentService(client *ent.Client, tickets *TicketService, gateway payments.Gateway) *PaymentService {
	return &PaymentService{client: client, tickets: tickets, gateway: gateway}
}

// RegisterPaymentInput carries the fields for a new payment.
type RegisterPaymentInput struct {
	TicketID    string
	AmountCents int64
	Method      string
	Actor       string

	// Mercado Pago fields, ignored for direct methods.
	PayerEmail string
	CardToken  string
}

// Register records a payment on a ticket. Overpayment is tolerated;
// the balance simply goes negative and delivery stays open.
func (s *PaymentService) Register(ctx context.Context, in RegisterPaymentInput) (*ent.Payment, error) {
	t, err := s.tickets.Get(ctx, in.TicketID)
	if err != nil {
		return nil, err
	}
	if t.Cancelled {
		return nil, errors.Conflict(errors.CodeTicketCancelled, "ticket is cancelled")
	}
	if in.AmountCents <= 0 {
		return nil, errors.BadRequest(errors.CodeValidationFailed, "payment amount must be positive")
	}

	providerPaymentID := ""
	if in.Method == string(entpayment.MethodMERCADOPAGO) {
		if s.gateway == nil {
			return nil, errors.Internal(errors.CodePaymentGateway, "no payment gateway configured")
		}
		result, err := s.gateway.Charge(ctx, payments.ChargeRequest{
			TicketID:    in.TicketID,
			AmountCents: in.AmountCents,
			Description: "Repair ticket " + in.TicketID,
			PayerEmail:  in.PayerEmail,
			Token:       in.CardToken,
		})
		if err != nil {
			return nil, err
		}
		if !result.Approved {
			return nil, errors.UnprocessableEntity(errors.CodePaymentGateway,
				"charge was declined by the provider").
				WithParams(map[string]interface{}{"provider_status": result.Status})
		}
		providerPaymentID = result.ProviderPaymentID
	}

	create := s.client.Payment.Create().
		SetID(generateID()).
		SetTicketID(in.TicketID).
		SetAmountCents(in.AmountCents).
		SetMethod(entpayment.Method(in.Method)).
		SetCreatedBy(in.Actor)
	if providerPaymentID != "" {
		create.SetProviderPaymentID(providerPaymentID)
	}

	p, err := create.Save(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeValidationFailed, "register payment", http.StatusBadRequest)
	}

	logger.Info("Payment registered",
		zap.String("payment_id", p.ID),
		zap.String("ticket_id", in.TicketID),
		zap.Int64("amount_cents", in.AmountCents),
		zap.String("method", in.Method),
	)
	return p, nil
}

// Void flips an ACTIVE payment to VOIDED. The balance reopens by
// derivation; nothing else to recompute.
func (s *PaymentService) Void(ctx context.Context, paymentID, actor string) (*ent.Payment, error) {
	p, err := s.client.Payment.Query().
		Where(entpayment.ID(paymentID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, errors.NotFound(errors.CodePaymentNotFound, "payment not found")
		}
		return nil, err
	}
	if p.State == entpayment.StateVOIDED {
		return nil, errors.Conflict(errors.CodePaymentVoided, "payment is already voided")
	}

	n, err := s.client.Payment.Update().
		Where(entpayment.ID(paymentID), entpayment.StateEQ(entpayment.StateACTIVE)).
		SetState(entpayment.StateVOIDED).
		SetVoidedBy(actor).
		SetVoidedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, errors.Conflict(errors.CodePaymentVoided, "payment is already voided")
	}

	logger.Info("Payment voided",
		zap.String("payment_id", paymentID),
		zap.String("actor", actor),
	)
	return s.client.Payment.Query().Where(entpayment.ID(paymentID)).Only(ctx)
}

// List returns the payments of a ticket, newest first.
func (s *PaymentService) List(ctx context.Context, ticketID string) ([]*ent.Payment, error) {
	return s.client.Payment.Query().
		Where(entpayment.TicketID(ticketID)).
		Order(ent.Desc(entpayment.FieldCreatedAt)).
		All(ctx)
}
