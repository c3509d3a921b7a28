package controllers

import (
	"net/http"
	"strconv"

	"github.com/rahul202k24/RestaurantPro/pkg/resp"
	"github.com/rahul202k24/RestaurantPro/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Service *services.MenuService
}

func NewMenuController(svc *services.MenuService) *MenuController {
	return &MenuController{Service: svc}
}

// GET /api/menu/categories
func (ctl *MenuController) ListCategories(c *gin.Context) {
	cats, err := ctl.Service.ListCategories()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, cats)
}

// POST /api/menu/categories
func (ctl *MenuController) CreateCategory(c *gin.Context) {
	var req services.CreateCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cat, err := ctl.Service.CreateCategory(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}

// GET /api/menu/items?categoryId=
func (ctl *MenuController) ListItems(c *gin.Context) {
	var categoryID *uint
	if raw := c.Query("categoryId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			resp.BadRequest(c, "categoryId must be a number")
			return
		}
		v := uint(id)
		categoryID = &v
	}

	items, err := ctl.Service.ListItems(categoryID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// POST /api/menu/items
func (ctl *MenuController) CreateItem(c *gin.Context) {
	var req services.CreateMenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := ctl.Service.CreateItem(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}
