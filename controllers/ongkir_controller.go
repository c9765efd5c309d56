package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/dontkeep/order-menu-backend/pkg/resp"
	"github.com/dontkeep/order-menu-backend/services"
)

type OngkirController struct {
	Svc *services.ShippingService
}

func NewOngkirController(s *services.ShippingService) *OngkirController {
	return &OngkirController{Svc: s}
}

// GET /ongkir — public list of districts and delivery charges, used by the
// checkout form.
func (ctl *OngkirController) List(c *gin.Context) {
	rates, err := ctl.Svc.List()
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, rates)
}
