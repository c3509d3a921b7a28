package services

import (
	"testing"

	"github.com/rahul202k24/RestaurantPro/entity"
	"github.com/rahul202k24/RestaurantPro/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64p(v int64) *int64 { return &v }
func boolp(v bool) *bool    { return &v }

func TestMenuService_CreateItem_ExactMinorUnits(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(repository.NewMenuRepository(db))

	cat, err := svc.CreateCategory(&CreateCategoryReq{Name: "Drinks", SortOrder: 2})
	require.NoError(t, err)

	item, err := svc.CreateItem(&CreateMenuItemReq{
		CategoryID: cat.ID,
		Name:       "Iced Tea",
		Price:      int64p(1234), // $12.34, stored as-is
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1234), item.Price)
	assert.True(t, item.Available, "availability defaults to true")

	var reloaded entity.MenuItem
	require.NoError(t, db.First(&reloaded, item.ID).Error)
	assert.Equal(t, int64(1234), reloaded.Price)
}

func TestMenuService_CreateItem_Validation(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(repository.NewMenuRepository(db))

	cat, err := svc.CreateCategory(&CreateCategoryReq{Name: "Mains"})
	require.NoError(t, err)

	_, err = svc.CreateItem(&CreateMenuItemReq{CategoryID: cat.ID, Name: "Soup", Price: int64p(-1)})
	assert.True(t, IsValidation(err), "negative price")

	_, err = svc.CreateItem(&CreateMenuItemReq{CategoryID: 999, Name: "Soup", Price: int64p(100)})
	assert.True(t, IsValidation(err), "unknown category")

	item, err := svc.CreateItem(&CreateMenuItemReq{
		CategoryID: cat.ID,
		Name:       "86'd Special",
		Price:      int64p(900),
		Available:  boolp(false),
	})
	require.NoError(t, err)
	assert.False(t, item.Available)
}

func TestMenuService_ListItems_CategoryFilter(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(repository.NewMenuRepository(db))

	mains, err := svc.CreateCategory(&CreateCategoryReq{Name: "Mains", SortOrder: 1})
	require.NoError(t, err)
	drinks, err := svc.CreateCategory(&CreateCategoryReq{Name: "Drinks", SortOrder: 2})
	require.NoError(t, err)

	_, err = svc.CreateItem(&CreateMenuItemReq{CategoryID: mains.ID, Name: "Burger", Price: int64p(1050)})
	require.NoError(t, err)
	_, err = svc.CreateItem(&CreateMenuItemReq{CategoryID: drinks.ID, Name: "Cola", Price: int64p(300)})
	require.NoError(t, err)

	all, err := svc.ListItems(nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := svc.ListItems(&drinks.ID)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Cola", filtered[0].Name)
}
