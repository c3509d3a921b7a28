package services

import (
	"context"
	"fmt"

	"github.com/rahul202k24/RestaurantPro/entity"

	"github.com/google/uuid"
)

// PayPalGateway is not wired to the PayPal REST API yet. It validates its
// configuration and issues locally generated references so the rest of the
// payment flow can be exercised end to end.
type PayPalGateway struct {
	merchantID string
	sandbox    bool
}

func (g *PayPalGateway) Initialize(cfg entity.GatewayConfig) error {
	if cfg.MerchantID == "" {
		return fmt.Errorf("paypal: %w", ErrMissingCredentials)
	}
	g.merchantID = cfg.MerchantID
	g.sandbox = cfg.Sandbox
	return nil
}

func (g *PayPalGateway) ProcessPayment(_ context.Context, req PaymentRequest) PaymentResult {
	return PaymentResult{
		Success:       true,
		TransactionID: "pp_" + uuid.NewString(),
		Metadata: map[string]any{
			"orderId":  req.OrderID,
			"amount":   req.Amount,
			"currency": req.Currency,
			"sandbox":  g.sandbox,
		},
	}
}
