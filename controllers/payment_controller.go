package controllers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/rahul202k24/RestaurantPro/pkg/resp"
	"github.com/rahul202k24/RestaurantPro/services"

	"github.com/gin-gonic/gin"
)

// gatewayTimeout bounds the provider round-trip; nothing else in the request
// path blocks on the network.
const gatewayTimeout = 30 * time.Second

type PaymentController struct {
	Service *services.PaymentService
}

func NewPaymentController(svc *services.PaymentService) *PaymentController {
	return &PaymentController{Service: svc}
}

type paymentReq struct {
	Amount   int64             `json:"amount" binding:"required,gt=0"` // minor currency units
	Currency string            `json:"currency"`
	Metadata map[string]string `json:"metadata"`
}

// POST /api/orders/:id/payment
//
// Returns the Transaction for both accepted and rejected charges; the caller
// reads its status field. Only pre-charge failures (validation, missing
// order, no gateway) map to HTTP errors.
func (ctl *PaymentController) Pay(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "id must be a number")
		return
	}

	var req paymentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), gatewayTimeout)
	defer cancel()

	txn, err := ctl.Service.ProcessPayment(ctx, services.PaymentRequest{
		Amount:   req.Amount,
		Currency: req.Currency,
		OrderID:  uint(id),
		Metadata: req.Metadata,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, txn)
}
