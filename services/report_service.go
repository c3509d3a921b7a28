package services

import (
	"github.com/rahul202k24/RestaurantPro/entity"

	"gorm.io/gorm"
)

type ReportService struct {
	DB *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{DB: db}
}

type DailySales struct {
	Date    string `json:"date"`
	Orders  int64  `json:"orders"`
	Revenue int64  `json:"revenue"` // minor units, paid orders only
}

type SalesSummary struct {
	TotalOrders     int64        `json:"totalOrders"`
	CompletedOrders int64        `json:"completedOrders"`
	PaidOrders      int64        `json:"paidOrders"`
	GrossRevenue    int64        `json:"grossRevenue"` // minor units
	Daily           []DailySales `json:"daily"`
}

// Sales aggregates order counts and paid revenue, overall and per day.
func (s *ReportService) Sales() (*SalesSummary, error) {
	var out SalesSummary

	if err := s.DB.Model(&entity.Order{}).Count(&out.TotalOrders).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&entity.Order{}).
		Where("status = ?", entity.OrderStatusCompleted).
		Count(&out.CompletedOrders).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&entity.Order{}).
		Where("payment_status = ?", entity.PaymentStatusPaid).
		Count(&out.PaidOrders).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&entity.Order{}).
		Select("COALESCE(SUM(total), 0)").
		Where("payment_status = ?", entity.PaymentStatusPaid).
		Scan(&out.GrossRevenue).Error; err != nil {
		return nil, err
	}

	// DATE() is accepted by both sqlite and postgres.
	err := s.DB.Model(&entity.Order{}).
		Select("DATE(created_at) AS date, COUNT(*) AS orders, " +
			"COALESCE(SUM(CASE WHEN payment_status = 'paid' THEN total ELSE 0 END), 0) AS revenue").
		Group("DATE(created_at)").
		Order("date").
		Scan(&out.Daily).Error
	if err != nil {
		return nil, err
	}
	return &out, nil
}
