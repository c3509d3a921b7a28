package services

import (
	"errors"
	"fmt"

	"github.com/rahul202k24/RestaurantPro/entity"
	"github.com/rahul202k24/RestaurantPro/repository"

	"github.com/skip2/go-qrcode"
	"gorm.io/gorm"
)

type QrCodeService struct {
	Repo *repository.QrCodeRepository
	// BaseURL is the public menu URL encoded into each table's code.
	BaseURL string
}

func NewQrCodeService(repo *repository.QrCodeRepository, baseURL string) *QrCodeService {
	return &QrCodeService{Repo: repo, BaseURL: baseURL}
}

type CreateQrCodeReq struct {
	TableNumber   int                     `json:"tableNumber" binding:"required,min=1"`
	Customization *entity.QrCustomization `json:"customization"`
}

func (s *QrCodeService) List() ([]entity.QrCode, error) {
	return s.Repo.List()
}

func (s *QrCodeService) Create(req *CreateQrCodeReq) (*entity.QrCode, error) {
	code := entity.QrCode{
		TableNumber:   req.TableNumber,
		Customization: req.Customization,
	}
	if err := s.Repo.Create(&code); err != nil {
		return nil, err
	}
	return &code, nil
}

// RenderPNG draws the table's menu URL as a QR image.
func (s *QrCodeService) RenderPNG(id uint, size int) ([]byte, error) {
	code, err := s.Repo.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQrCodeNotFound
		}
		return nil, err
	}

	if size <= 0 {
		size = 256
	}
	target := fmt.Sprintf("%s/table/%d", s.BaseURL, code.TableNumber)
	return qrcode.Encode(target, qrcode.Medium, size)
}
