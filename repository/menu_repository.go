package repository

import (
	"github.com/rahul202k24/RestaurantPro/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) ListCategories() ([]entity.MenuCategory, error) {
	var cats []entity.MenuCategory
	err := r.DB.Order("sort_order, id").Find(&cats).Error
	return cats, err
}

func (r *MenuRepository) CreateCategory(c *entity.MenuCategory) error {
	return r.DB.Create(c).Error
}

func (r *MenuRepository) CategoryExists(id uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.MenuCategory{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// ListItems returns all items, or only those in one category when categoryID
// is non-nil.
func (r *MenuRepository) ListItems(categoryID *uint) ([]entity.MenuItem, error) {
	q := r.DB.Order("id")
	if categoryID != nil {
		q = q.Where("category_id = ?", *categoryID)
	}
	var items []entity.MenuItem
	err := q.Find(&items).Error
	return items, err
}

func (r *MenuRepository) CreateItem(i *entity.MenuItem) error {
	return r.DB.Create(i).Error
}

func (r *MenuRepository) GetItem(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// GetItems loads the given ids; missing ids are simply absent from the result.
func (r *MenuRepository) GetItems(ids []uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Where("id IN ?", ids).Find(&items).Error
	return items, err
}
