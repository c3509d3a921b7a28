package controllers

import (
	"net/http"
	"strconv"

	"github.com/rahul202k24/RestaurantPro/entity"
	"github.com/rahul202k24/RestaurantPro/pkg/resp"
	"github.com/rahul202k24/RestaurantPro/repository"
	"github.com/rahul202k24/RestaurantPro/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Service *services.OrderService
	Txns    *repository.TransactionRepository
}

func NewOrderController(svc *services.OrderService, txns *repository.TransactionRepository) *OrderController {
	return &OrderController{Service: svc, Txns: txns}
}

// GET /api/orders
func (ctl *OrderController) List(c *gin.Context) {
	orders, err := ctl.Service.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// POST /api/orders
func (ctl *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := ctl.Service.Create(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

type updateStatusReq struct {
	Status entity.OrderStatus `json:"status" binding:"required"`
}

// PATCH /api/orders/:id/status
func (ctl *OrderController) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "id must be a number")
		return
	}

	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := ctl.Service.UpdateStatus(uint(id), req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// GET /api/orders/:id/transactions
func (ctl *OrderController) ListTransactions(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "id must be a number")
		return
	}

	if _, err := ctl.Service.Get(uint(id)); err != nil {
		respondServiceError(c, err)
		return
	}

	txns, err := ctl.Txns.ListByOrder(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, txns)
}
