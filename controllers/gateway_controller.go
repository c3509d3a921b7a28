package controllers

import (
	"net/http"
	"time"

	"github.com/rahul202k24/RestaurantPro/entity"
	"github.com/rahul202k24/RestaurantPro/pkg/resp"
	"github.com/rahul202k24/RestaurantPro/repository"

	"github.com/gin-gonic/gin"
)

type GatewayController struct {
	Repo *repository.GatewayRepository
}

func NewGatewayController(repo *repository.GatewayRepository) *GatewayController {
	return &GatewayController{Repo: repo}
}

// gatewayOut never exposes credential material.
type gatewayOut struct {
	ID        uint      `json:"id"`
	Type      string    `json:"type"`
	Enabled   bool      `json:"enabled"`
	Sandbox   bool      `json:"sandbox"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GET /api/payment-gateways
func (ctl *GatewayController) List(c *gin.Context) {
	gws, err := ctl.Repo.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	out := make([]gatewayOut, 0, len(gws))
	for _, g := range gws {
		out = append(out, gatewayOut{
			ID:        g.ID,
			Type:      g.Type,
			Enabled:   g.Enabled,
			Sandbox:   g.Config.Sandbox,
			CreatedAt: g.CreatedAt,
			UpdatedAt: g.UpdatedAt,
		})
	}
	c.JSON(http.StatusOK, out)
}

type createGatewayReq struct {
	Type    string               `json:"type" binding:"required,oneof=stripe paypal"`
	Enabled bool                 `json:"enabled"`
	Config  entity.GatewayConfig `json:"config"`
}

// POST /api/payment-gateways
func (ctl *GatewayController) Create(c *gin.Context) {
	var req createGatewayReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	g := entity.PaymentGateway{
		Type:    req.Type,
		Enabled: req.Enabled,
		Config:  req.Config,
	}
	if err := ctl.Repo.Create(&g); err != nil {
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gatewayOut{
		ID:        g.ID,
		Type:      g.Type,
		Enabled:   g.Enabled,
		Sandbox:   g.Config.Sandbox,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	})
}
