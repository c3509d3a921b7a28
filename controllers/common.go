package controllers

import (
	"errors"

	"github.com/rahul202k24/RestaurantPro/pkg/resp"
	"github.com/rahul202k24/RestaurantPro/services"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps the service error taxonomy onto HTTP statuses.
// Gateway failures never reach here; they come back as failed Transactions.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case services.IsValidation(err):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrInvalidTransition):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrCategoryNotFound),
		errors.Is(err, services.ErrQrCodeNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrOrderAlreadyPaid):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrNoActiveGateway),
		errors.Is(err, services.ErrMissingCredentials):
		resp.ServiceUnavailable(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		resp.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrUsernameTaken):
		resp.Conflict(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
