package repository

import (
	"github.com/rahul202k24/RestaurantPro/entity"

	"gorm.io/gorm"
)

type TransactionRepository struct {
	DB *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{DB: db}
}

// Create inserts inside the caller's transaction so the audit record and the
// order payment-status update commit together.
func (r *TransactionRepository) Create(tx *gorm.DB, t *entity.Transaction) error {
	return tx.Create(t).Error
}

func (r *TransactionRepository) ListByOrder(orderID uint) ([]entity.Transaction, error) {
	var txns []entity.Transaction
	err := r.DB.Where("order_id = ?", orderID).Order("id").Find(&txns).Error
	return txns, err
}
