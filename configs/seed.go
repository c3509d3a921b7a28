package configs

import (
	"github.com/rahul202k24/RestaurantPro/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the initial admin account when no users exist.
func SeedAdmin(cfg *Config) error {
	var count int64
	if err := db.Model(&entity.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Username: "admin",
		Password: string(hashed),
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

// SeedGateways creates the default gateway rows once. Stripe is enabled only
// when an API key is present; the PayPal row starts disabled in sandbox mode.
func SeedGateways(cfg *Config) error {
	var count int64
	if err := db.Model(&entity.PaymentGateway{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	stripe := entity.PaymentGateway{
		Type:    "stripe",
		Enabled: cfg.StripeAPIKey != "",
		Config: entity.GatewayConfig{
			APIKey:        cfg.StripeAPIKey,
			WebhookSecret: cfg.StripeWebhookSecret,
		},
	}
	if err := db.Create(&stripe).Error; err != nil {
		return err
	}

	paypal := entity.PaymentGateway{
		Type:    "paypal",
		Enabled: false,
		Config:  entity.GatewayConfig{Sandbox: true},
	}
	return db.Create(&paypal).Error
}
