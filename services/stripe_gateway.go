package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rahul202k24/RestaurantPro/entity"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

// StripeGateway charges through the Stripe API, one PaymentIntent per
// attempt.
type StripeGateway struct {
	api           *client.API
	webhookSecret string
}

func (g *StripeGateway) Initialize(cfg entity.GatewayConfig) error {
	if cfg.APIKey == "" {
		return fmt.Errorf("stripe: %w", ErrMissingCredentials)
	}
	g.api = &client.API{}
	g.api.Init(cfg.APIKey, nil)
	g.webhookSecret = cfg.WebhookSecret
	return nil
}

func (g *StripeGateway) ProcessPayment(ctx context.Context, req PaymentRequest) PaymentResult {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.Amount),
		Currency: stripe.String(strings.ToLower(req.Currency)),
	}
	params.Context = ctx
	params.AddMetadata("orderId", strconv.FormatUint(uint64(req.OrderID), 10))
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return PaymentResult{Success: false, Error: err.Error()}
	}

	return PaymentResult{
		Success:       true,
		TransactionID: intent.ID,
		Metadata: map[string]any{
			"id":           intent.ID,
			"status":       string(intent.Status),
			"amount":       intent.Amount,
			"currency":     string(intent.Currency),
			"clientSecret": intent.ClientSecret,
		},
	}
}

func (g *StripeGateway) ValidateWebhook(payload []byte, signature string) bool {
	if g.webhookSecret == "" {
		return false
	}
	_, err := webhook.ConstructEvent(payload, signature, g.webhookSecret)
	return err == nil
}
