package repository

import (
	"github.com/rahul202k24/RestaurantPro/entity"

	"gorm.io/gorm"
)

type QrCodeRepository struct {
	DB *gorm.DB
}

func NewQrCodeRepository(db *gorm.DB) *QrCodeRepository {
	return &QrCodeRepository{DB: db}
}

func (r *QrCodeRepository) List() ([]entity.QrCode, error) {
	var codes []entity.QrCode
	err := r.DB.Order("table_number, id").Find(&codes).Error
	return codes, err
}

func (r *QrCodeRepository) Create(q *entity.QrCode) error {
	return r.DB.Create(q).Error
}

func (r *QrCodeRepository) Get(id uint) (*entity.QrCode, error) {
	var q entity.QrCode
	if err := r.DB.First(&q, id).Error; err != nil {
		return nil, err
	}
	return &q, nil
}
