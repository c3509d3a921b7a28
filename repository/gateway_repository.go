package repository

import (
	"github.com/rahul202k24/RestaurantPro/entity"

	"gorm.io/gorm"
)

type GatewayRepository struct {
	DB *gorm.DB
}

func NewGatewayRepository(db *gorm.DB) *GatewayRepository {
	return &GatewayRepository{DB: db}
}

func (r *GatewayRepository) List() ([]entity.PaymentGateway, error) {
	var gws []entity.PaymentGateway
	err := r.DB.Order("id").Find(&gws).Error
	return gws, err
}

func (r *GatewayRepository) Create(g *entity.PaymentGateway) error {
	return r.DB.Create(g).Error
}

// FindEnabledByType resolves the active configuration for a provider type.
// When several are enabled the most recently updated one wins.
func (r *GatewayRepository) FindEnabledByType(gatewayType string) (*entity.PaymentGateway, error) {
	var g entity.PaymentGateway
	err := r.DB.Where("type = ? AND enabled = ?", gatewayType, true).
		Order("updated_at DESC").
		First(&g).Error
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GatewayRepository) CountByType(gatewayType string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.PaymentGateway{}).Where("type = ?", gatewayType).Count(&count).Error
	return count, err
}
