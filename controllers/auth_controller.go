package controllers

import (
	"net/http"

	"github.com/rahul202k24/RestaurantPro/pkg/resp"
	"github.com/rahul202k24/RestaurantPro/services"
	"github.com/rahul202k24/RestaurantPro/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Service *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{Service: svc}
}

type credentialsReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/register
func (ctl *AuthController) Register(c *gin.Context) {
	var req credentialsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := ctl.Service.Register(req.Username, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// POST /api/auth/login
func (ctl *AuthController) Login(c *gin.Context) {
	var req credentialsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := ctl.Service.Login(req.Username, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// GET /api/auth/me
func (ctl *AuthController) Me(c *gin.Context) {
	user, err := ctl.Service.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		resp.Unauthorized(c, "unknown user")
		return
	}
	c.JSON(http.StatusOK, user)
}
