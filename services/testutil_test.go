package services

import (
	"testing"

	"github.com/rahul202k24/RestaurantPro/entity"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database. The pool is capped at one
// connection so every goroutine sees the same memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.MenuCategory{}, &entity.MenuItem{},
		&entity.QrCode{},
		&entity.Order{},
		&entity.PaymentGateway{}, &entity.Transaction{},
	))
	return db
}

func seedOrder(t *testing.T, db *gorm.DB, total int64) *entity.Order {
	t.Helper()
	order := entity.Order{
		TableNumber:   1,
		Status:        entity.OrderStatusPending,
		PaymentStatus: entity.PaymentStatusUnpaid,
		Items:         entity.OrderItems{{MenuItemID: 1, Quantity: 1}},
		Total:         total,
	}
	require.NoError(t, db.Create(&order).Error)
	return &order
}

func seedGateway(t *testing.T, db *gorm.DB, gatewayType string, enabled bool) *entity.PaymentGateway {
	t.Helper()
	g := entity.PaymentGateway{
		Type:    gatewayType,
		Enabled: enabled,
		Config:  entity.GatewayConfig{APIKey: "sk_test_123", MerchantID: "acct_123"},
	}
	require.NoError(t, db.Create(&g).Error)
	return &g
}
