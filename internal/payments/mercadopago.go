package payments

import (
	"context"
	"net/http"
	"strconv"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"

	"github.com/sergioLiiD/yaavs-v5-sub002/internal/pkg/errors"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/pkg/logger"
)

// MercadoPagoGateway charges through the Mercado Pago API.
type MercadoPagoGateway struct {
	client payment.Client
}

// NewMercadoPagoGateway creates the gateway from an access token.
func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodePaymentGateway, "configure mercado pago client", http.StatusInternalServerError)
	}
	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

// Charge implements Gateway.
func (g *MercadoPagoGateway) Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	mpReq := payment.Request{
		TransactionAmount: float64(req.AmountCents) / 100,
		Description:       req.Description,
		ExternalReference: req.TicketID,
		Token:             req.Token,
		Installments:      1,
		Payer: &payment.PayerRequest{
			Email: req.PayerEmail,
		},
	}

	res, err := g.client.Create(ctx, mpReq)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodePaymentGateway, "mercado pago charge failed", http.StatusBadGateway)
	}

	logger.Info("Mercado Pago charge",
		zap.String("ticket_id", req.TicketID),
		zap.Int("provider_payment_id", res.ID),
		zap.String("status", res.Status),
	)

	return &ChargeResult{
		ProviderPaymentID: strconv.Itoa(res.ID),
		Approved:          res.Status == "approved",
		Status:            res.Status,
	}, nil
}
