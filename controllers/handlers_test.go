package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rahul202k24/RestaurantPro/entity"
	"github.com/rahul202k24/RestaurantPro/repository"
	"github.com/rahul202k24/RestaurantPro/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

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

// setupRouter wires the API without auth middleware; these tests exercise
// handler behavior, not token checks.
func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)

	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	txnRepo := repository.NewTransactionRepository(db)
	gatewayRepo := repository.NewGatewayRepository(db)
	qrRepo := repository.NewQrCodeRepository(db)

	log := zap.NewNop()
	menuCtrl := NewMenuController(services.NewMenuService(menuRepo))
	orderCtrl := NewOrderController(services.NewOrderService(db, orderRepo, menuRepo), txnRepo)
	qrCtrl := NewQrCodeController(services.NewQrCodeService(qrRepo, "http://localhost:8000"))
	paymentCtrl := NewPaymentController(services.NewPaymentService(
		db, orderRepo, txnRepo, gatewayRepo, &services.LogMailer{Log: log}, log,
	))
	gatewayCtrl := NewGatewayController(gatewayRepo)

	r := gin.New()
	api := r.Group("/api")
	api.GET("/menu/categories", menuCtrl.ListCategories)
	api.POST("/menu/categories", menuCtrl.CreateCategory)
	api.GET("/menu/items", menuCtrl.ListItems)
	api.POST("/menu/items", menuCtrl.CreateItem)
	api.GET("/qr-codes", qrCtrl.List)
	api.POST("/qr-codes", qrCtrl.Create)
	api.GET("/qr-codes/:id/image", qrCtrl.Image)
	api.GET("/orders", orderCtrl.List)
	api.POST("/orders", orderCtrl.Create)
	api.PATCH("/orders/:id/status", orderCtrl.UpdateStatus)
	api.POST("/orders/:id/payment", paymentCtrl.Pay)
	api.GET("/orders/:id/transactions", orderCtrl.ListTransactions)
	api.GET("/payment-gateways", gatewayCtrl.List)
	api.POST("/payment-gateways", gatewayCtrl.Create)
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMenuCategoryEndpoints(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/menu/categories", gin.H{"name": "Starters", "sortOrder": 1})
	require.Equal(t, http.StatusCreated, w.Code)

	var created entity.MenuCategory
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Starters", created.Name)
	assert.NotZero(t, created.ID)

	w = doJSON(t, r, http.MethodPost, "/api/menu/categories", gin.H{"description": "no name"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// repeated reads with no writes in between return the identical set
	first := doJSON(t, r, http.MethodGet, "/api/menu/categories", nil)
	second := doJSON(t, r, http.MethodGet, "/api/menu/categories", nil)
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestMenuItemEndpoints(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/menu/categories", gin.H{"name": "Mains"})
	require.Equal(t, http.StatusCreated, w.Code)
	var cat entity.MenuCategory
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cat))

	w = doJSON(t, r, http.MethodPost, "/api/menu/items", gin.H{
		"categoryId": cat.ID,
		"name":       "Pad Thai",
		"price":      1234,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var item entity.MenuItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.Equal(t, int64(1234), item.Price, "minor units stored exactly")

	w = doJSON(t, r, http.MethodPost, "/api/menu/items", gin.H{
		"categoryId": 999, "name": "Ghost Dish", "price": 100,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/menu/items?categoryId=%d", cat.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var items []entity.MenuItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Len(t, items, 1)
}

func TestQrCodeEndpoints(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/qr-codes", gin.H{
		"tableNumber":   7,
		"customization": gin.H{"color": "#000000"},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var code entity.QrCode
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &code))

	w = doJSON(t, r, http.MethodPost, "/api/qr-codes", gin.H{"tableNumber": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	img := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/qr-codes/%d/image", code.ID), nil)
	require.Equal(t, http.StatusOK, img.Code)
	assert.Equal(t, "image/png", img.Header().Get("Content-Type"))

	missing := doJSON(t, r, http.MethodGet, "/api/qr-codes/999/image", nil)
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestOrderStatusEndpoint(t *testing.T) {
	r, db := setupRouter(t)

	order := entity.Order{
		TableNumber:   3,
		Status:        entity.OrderStatusPending,
		PaymentStatus: entity.PaymentStatusUnpaid,
		Items:         entity.OrderItems{{MenuItemID: 1, Quantity: 1}},
		Total:         500,
	}
	require.NoError(t, db.Create(&order).Error)

	w := doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/orders/%d/status", order.ID), gin.H{"status": "completed"})
	require.Equal(t, http.StatusOK, w.Code)
	var updated entity.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, entity.OrderStatusCompleted, updated.Status)

	w = doJSON(t, r, http.MethodPatch, "/api/orders/999/status", gin.H{"status": "completed"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/orders/%d/status", order.ID), gin.H{"status": "banana"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPaymentEndpoint_PreChargeFailures(t *testing.T) {
	r, db := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/orders/999/payment", gin.H{"amount": 500, "currency": "usd"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	order := entity.Order{
		TableNumber:   1,
		Status:        entity.OrderStatusPending,
		PaymentStatus: entity.PaymentStatusUnpaid,
		Total:         500,
	}
	require.NoError(t, db.Create(&order).Error)

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/orders/%d/payment", order.ID), gin.H{"amount": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// configured gateways exist but none is enabled
	require.NoError(t, db.Create(&entity.PaymentGateway{Type: "stripe", Enabled: false}).Error)
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/orders/%d/payment", order.ID), gin.H{"amount": 500, "currency": "usd"})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var count int64
	require.NoError(t, db.Model(&entity.Transaction{}).Count(&count).Error)
	assert.Zero(t, count, "pre-charge failures record no transactions")
}

func TestTransactionListingAndGateways(t *testing.T) {
	r, db := setupRouter(t)

	order := entity.Order{TableNumber: 1, Status: entity.OrderStatusPending, PaymentStatus: entity.PaymentStatusPaid, Total: 500}
	require.NoError(t, db.Create(&order).Error)

	ref := "pi_abc"
	txn := entity.Transaction{
		OrderID: order.ID, Amount: 500, PaymentMethod: "stripe",
		GatewayTransactionID: &ref, Status: entity.TransactionCompleted,
	}
	require.NoError(t, db.Create(&txn).Error)

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/orders/%d/transactions", order.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var txns []entity.Transaction
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &txns))
	require.Len(t, txns, 1)
	assert.Equal(t, entity.TransactionCompleted, txns[0].Status)

	w = doJSON(t, r, http.MethodGet, "/api/orders/999/transactions", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// gateway listing never leaks credentials
	w = doJSON(t, r, http.MethodPost, "/api/payment-gateways", gin.H{
		"type": "stripe", "enabled": true,
		"config": gin.H{"apiKey": "sk_live_secret", "sandbox": true},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/payment-gateways", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "sk_live_secret")
	assert.Contains(t, w.Body.String(), `"sandbox":true`)
}
