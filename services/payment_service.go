package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rahul202k24/RestaurantPro/entity"
	"github.com/rahul202k24/RestaurantPro/repository"
	"github.com/rahul202k24/RestaurantPro/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PaymentService drives one payment attempt end to end: resolve the active
// gateway, charge, record the outcome, update the order.
type PaymentService struct {
	DB       *gorm.DB
	Orders   *repository.OrderRepository
	Txns     *repository.TransactionRepository
	Gateways *repository.GatewayRepository
	Mailer   Mailer
	Log      *zap.Logger

	// ProviderType fixes which gateway configuration the service resolves.
	ProviderType string
	NotifyTo     string
	NotifyFrom   string

	newGateway func(string) (Gateway, error)
}

func NewPaymentService(
	db *gorm.DB,
	orders *repository.OrderRepository,
	txns *repository.TransactionRepository,
	gateways *repository.GatewayRepository,
	mailer Mailer,
	log *zap.Logger,
) *PaymentService {
	return &PaymentService{
		DB:           db,
		Orders:       orders,
		Txns:         txns,
		Gateways:     gateways,
		Mailer:       mailer,
		Log:          log,
		ProviderType: GatewayTypeStripe,
		NotifyTo:     "customer@example.com", // no customer accounts yet
		NotifyFrom:   "noreply@restaurant.com",
		newGateway:   NewGateway,
	}
}

// ProcessPayment returns the persisted Transaction for every attempt that
// reached the gateway; callers inspect its Status, not the error, for the
// charge outcome. An error return means no charge was attempted and no
// Transaction exists.
func (s *PaymentService) ProcessPayment(ctx context.Context, req PaymentRequest) (*entity.Transaction, error) {
	if req.Amount <= 0 {
		return nil, &ValidationError{Field: "amount", Message: "must be a positive amount in minor currency units"}
	}
	if req.Currency == "" {
		req.Currency = "usd"
	}

	order, err := s.Orders.Get(req.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if order.PaymentStatus == entity.PaymentStatusPaid {
		return nil, ErrOrderAlreadyPaid
	}

	cfg, err := s.Gateways.FindEnabledByType(s.ProviderType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoActiveGateway
		}
		return nil, err
	}

	gw, err := s.newGateway(cfg.Type)
	if err != nil {
		return nil, err
	}
	if err := gw.Initialize(cfg.Config); err != nil {
		return nil, err
	}

	result := gw.ProcessPayment(ctx, req)

	txn := entity.Transaction{
		OrderID:       order.ID,
		Amount:        req.Amount,
		PaymentMethod: cfg.Type,
		GatewayID:     cfg.ID,
		Status:        entity.TransactionFailed,
		Metadata:      entity.JSONMap{},
	}
	if result.Success {
		txn.Status = entity.TransactionCompleted
		id := result.TransactionID
		txn.GatewayTransactionID = &id
	}
	if result.Error != "" {
		txn.Metadata["error"] = result.Error
	}
	if result.Metadata != nil {
		txn.Metadata["gatewayResponse"] = result.Metadata
	}

	// Audit record and payment-status flip commit together.
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Txns.Create(tx, &txn); err != nil {
			return err
		}
		if result.Success {
			if _, err := s.Orders.MarkPaidGuard(tx, order.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Success {
		go s.sendConfirmation(order.ID, &txn)
	}

	return &txn, nil
}

func (s *PaymentService) sendConfirmation(orderID uint, txn *entity.Transaction) {
	order, err := s.Orders.Get(orderID)
	if err != nil {
		s.Log.Warn("payment confirmation skipped, order lookup failed",
			zap.Uint("orderId", orderID), zap.Error(err))
		return
	}

	ref := ""
	if txn.GatewayTransactionID != nil {
		ref = *txn.GatewayTransactionID
	}
	html := fmt.Sprintf(
		"<h2>Payment Confirmation</h2>"+
			"<p>Thank you for your payment!</p>"+
			"<p>Order #%d</p>"+
			"<p>Amount: $%s</p>"+
			"<p>Transaction ID: %s</p>",
		order.ID, utils.FormatMinorUnits(txn.Amount), ref,
	)

	mail := Mail{
		To:      s.NotifyTo,
		From:    s.NotifyFrom,
		Subject: fmt.Sprintf("Payment Confirmation - Order #%d", order.ID),
		HTML:    html,
	}
	if err := s.Mailer.Send(mail); err != nil {
		s.Log.Warn("payment confirmation mail failed",
			zap.Uint("orderId", order.ID), zap.Error(err))
	}
}
