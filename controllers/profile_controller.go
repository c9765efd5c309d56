package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/dontkeep/order-menu-backend/pkg/resp"
	"github.com/dontkeep/order-menu-backend/services"
	"github.com/dontkeep/order-menu-backend/utils"
)

type ProfileController struct {
	Svc *services.AuthService
}

func NewProfileController(s *services.AuthService) *ProfileController {
	return &ProfileController{Svc: s}
}

// GET /profile
func (p *ProfileController) Get(c *gin.Context) {
	user, err := p.Svc.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, user)
}

type updateProfileRequest struct {
	FirstName     *string `json:"firstName"`
	LastName      *string `json:"lastName"`
	PhoneNumber   *string `json:"phoneNumber"`
	AddressDetail *string `json:"addressDetail"`
	Province      *string `json:"province"`
	City          *string `json:"city"`
	Regency       *string `json:"regency"`
	District      *string `json:"district"`
}

// PUT /profile
func (p *ProfileController) Update(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	set := func(col string, v *string) {
		if v != nil {
			updates[col] = *v
		}
	}
	set("first_name", req.FirstName)
	set("last_name", req.LastName)
	set("phone_number", req.PhoneNumber)
	set("address_detail", req.AddressDetail)
	set("province", req.Province)
	set("city", req.City)
	set("regency", req.Regency)
	set("district", req.District)

	user, err := p.Svc.UpdateProfile(utils.CurrentUserID(c), updates)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, user)
}
