package controllers

import (
	"net/http"
	"strconv"

	"github.com/rahul202k24/RestaurantPro/pkg/resp"
	"github.com/rahul202k24/RestaurantPro/services"

	"github.com/gin-gonic/gin"
)

type QrCodeController struct {
	Service *services.QrCodeService
}

func NewQrCodeController(svc *services.QrCodeService) *QrCodeController {
	return &QrCodeController{Service: svc}
}

// GET /api/qr-codes
func (ctl *QrCodeController) List(c *gin.Context) {
	codes, err := ctl.Service.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, codes)
}

// POST /api/qr-codes
func (ctl *QrCodeController) Create(c *gin.Context) {
	var req services.CreateQrCodeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	code, err := ctl.Service.Create(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, code)
}

// GET /api/qr-codes/:id/image?size=
func (ctl *QrCodeController) Image(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "id must be a number")
		return
	}
	size, _ := strconv.Atoi(c.Query("size"))

	png, err := ctl.Service.RenderPNG(uint(id), size)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
