package services

import (
	"context"
	"strings"
	"testing"

	"github.com/rahul202k24/RestaurantPro/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGateway(t *testing.T) {
	gw, err := NewGateway(GatewayTypeStripe)
	require.NoError(t, err)
	assert.IsType(t, &StripeGateway{}, gw)

	gw, err = NewGateway(GatewayTypePayPal)
	require.NoError(t, err)
	assert.IsType(t, &PayPalGateway{}, gw)

	_, err = NewGateway("square")
	assert.Error(t, err)
}

func TestStripeGateway_InitializeRequiresKey(t *testing.T) {
	g := &StripeGateway{}
	err := g.Initialize(entity.GatewayConfig{})
	assert.ErrorIs(t, err, ErrMissingCredentials)

	assert.NoError(t, g.Initialize(entity.GatewayConfig{APIKey: "sk_test_abc"}))
}

func TestStripeGateway_ValidateWebhookWithoutSecret(t *testing.T) {
	g := &StripeGateway{}
	require.NoError(t, g.Initialize(entity.GatewayConfig{APIKey: "sk_test_abc"}))
	assert.False(t, g.ValidateWebhook([]byte(`{}`), "t=1,v1=deadbeef"))
}

func TestPayPalGateway(t *testing.T) {
	g := &PayPalGateway{}
	err := g.Initialize(entity.GatewayConfig{})
	assert.ErrorIs(t, err, ErrMissingCredentials)

	require.NoError(t, g.Initialize(entity.GatewayConfig{MerchantID: "merchant-1", Sandbox: true}))

	res := g.ProcessPayment(context.Background(), PaymentRequest{Amount: 500, Currency: "usd", OrderID: 7})
	assert.True(t, res.Success)
	assert.True(t, strings.HasPrefix(res.TransactionID, "pp_"))
	assert.Equal(t, true, res.Metadata["sandbox"])
}
