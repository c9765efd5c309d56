package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dontkeep/order-menu-backend/pkg/resp"
	"github.com/dontkeep/order-menu-backend/services"
)

// serviceError maps service sentinels onto HTTP responses; anything
// unrecognized is a 500.
func serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "not found")
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrAccountInactive):
		resp.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrInvalidTransition):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrGateway):
		resp.BadGateway(c, err.Error())
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrInvalidQty),
		errors.Is(err, services.ErrInsufficientStock),
		errors.Is(err, services.ErrCartEmpty),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidPayload):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
