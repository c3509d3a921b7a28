package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
)

// GatewayConfig is the provider-specific configuration blob. Which fields
// matter depends on the gateway type.
type GatewayConfig struct {
	APIKey        string `json:"apiKey,omitempty"`
	MerchantID    string `json:"merchantId,omitempty"`
	Sandbox       bool   `json:"sandbox,omitempty"`
	WebhookSecret string `json:"webhookSecret,omitempty"`
}

func (c GatewayConfig) Value() (driver.Value, error) {
	return json.Marshal(c)
}

func (c *GatewayConfig) Scan(value any) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	}
	return errors.New("unsupported column type for gateway config")
}

// PaymentGateway is a configured integration with one external payment
// provider. Credentials live in Config and are never serialized to clients.
type PaymentGateway struct {
	gorm.Model
	Type    string        `gorm:"index;not null" json:"type"`
	Enabled bool          `gorm:"not null" json:"enabled"`
	Config  GatewayConfig `gorm:"type:json" json:"-"`

	Transactions []Transaction `gorm:"foreignKey:GatewayID" json:"-"`
}
