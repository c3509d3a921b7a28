package repository

import (
	"github.com/rahul202k24/RestaurantPro/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) Create(o *entity.Order) error {
	return r.DB.Create(o).Error
}

func (r *OrderRepository) List() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Order("id").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) Get(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateStatusGuard moves an order from one of the given source states to the
// target state. Zero affected rows means the order is absent or not in a
// legal source state.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, id uint, from []entity.OrderStatus, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status IN ?", id, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// MarkPaidGuard flips payment_status unpaid -> paid. The guard makes the
// transition apply at most once under concurrent successful payments.
func (r *OrderRepository) MarkPaidGuard(tx *gorm.DB, id uint) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND payment_status = ?", id, entity.PaymentStatusUnpaid).
		Update("payment_status", entity.PaymentStatusPaid)
	return res.RowsAffected, res.Error
}
