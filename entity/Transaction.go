package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
)

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionFailed    TransactionStatus = "failed"
)

// JSONMap holds the diagnostic payload of a payment attempt (gateway error,
// raw provider response).
type JSONMap map[string]any

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *JSONMap) Scan(value any) error {
	if value == nil {
		*m = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	}
	return errors.New("unsupported column type for metadata")
}

// Transaction is the append-only audit record of one payment attempt. A
// retried payment creates a new row, never mutates an old one.
type Transaction struct {
	gorm.Model
	OrderID uint  `gorm:"index;not null" json:"orderId"`
	Order   Order `json:"-"`

	Amount        int64  `gorm:"not null" json:"amount"` // equals the request amount
	PaymentMethod string `json:"paymentMethod"`

	GatewayID uint           `json:"gatewayId"`
	Gateway   PaymentGateway `json:"-"`

	// Set only when the provider accepted the charge.
	GatewayTransactionID *string `json:"gatewayTransactionId"`

	Status   TransactionStatus `gorm:"not null" json:"status"`
	Metadata JSONMap           `gorm:"type:json" json:"metadata"`
}
