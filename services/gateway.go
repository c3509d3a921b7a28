package services

import (
	"context"
	"fmt"

	"github.com/rahul202k24/RestaurantPro/entity"
)

const (
	GatewayTypeStripe = "stripe"
	GatewayTypePayPal = "paypal"
)

type PaymentRequest struct {
	Amount   int64 // minor currency units, > 0
	Currency string
	OrderID  uint
	Metadata map[string]string
}

// PaymentResult is the generic outcome of one provider call. Adapters never
// leak provider errors as Go errors from ProcessPayment; everything collapses
// into a failure-tagged result so the caller can still write an audit record.
type PaymentResult struct {
	Success       bool
	TransactionID string
	Error         string
	Metadata      map[string]any
}

// Gateway is the capability set every provider adapter implements.
// Initialize must be called before ProcessPayment.
type Gateway interface {
	Initialize(cfg entity.GatewayConfig) error
	ProcessPayment(ctx context.Context, req PaymentRequest) PaymentResult
}

// WebhookValidator is an optional capability for providers that push
// asynchronous callbacks. It is a separate inbound entry point and is not
// invoked from the synchronous payment flow.
type WebhookValidator interface {
	ValidateWebhook(payload []byte, signature string) bool
}

// NewGateway constructs the adapter for a configured gateway type. New
// variants register here without changing callers.
func NewGateway(gatewayType string) (Gateway, error) {
	switch gatewayType {
	case GatewayTypeStripe:
		return &StripeGateway{}, nil
	case GatewayTypePayPal:
		return &PayPalGateway{}, nil
	}
	return nil, fmt.Errorf("unknown gateway type %q", gatewayType)
}
