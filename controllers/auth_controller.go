package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/dontkeep/order-menu-backend/pkg/resp"
	"github.com/dontkeep/order-menu-backend/services"
	"github.com/dontkeep/order-menu-backend/utils"
)

type AuthController struct {
	Svc *services.AuthService
}

func NewAuthController(s *services.AuthService) *AuthController {
	return &AuthController{Svc: s}
}

type RegisterRequest struct {
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=6"`
	FirstName     string `json:"firstName" binding:"required"`
	LastName      string `json:"lastName" binding:"required"`
	PhoneNumber   string `json:"phoneNumber" binding:"required"`
	AddressDetail string `json:"addressDetail"`
	Province      string `json:"province"`
	City          string `json:"city"`
	Regency       string `json:"regency"`
	District      string `json:"district"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Svc.Register(&services.RegisterIn{
		Email:         req.Email,
		Password:      req.Password,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		PhoneNumber:   req.PhoneNumber,
		AddressDetail: req.AddressDetail,
		Province:      req.Province,
		City:          req.City,
		Regency:       req.Regency,
		District:      req.District,
	})
	if err != nil {
		serviceError(c, err)
		return
	}

	resp.Created(c, gin.H{
		"id": user.ID, "email": user.Email,
		"firstName": user.FirstName, "lastName": user.LastName,
	})
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Svc.Login(req.Email, req.Password)
	if err != nil {
		serviceError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"token": token,
		"user": gin.H{
			"id": user.ID, "email": user.Email,
			"firstName": user.FirstName, "lastName": user.LastName,
			"role": user.Role.Name,
		},
	})
}

// POST /auth/logout
func (a *AuthController) Logout(c *gin.Context) {
	if err := a.Svc.Logout(utils.CurrentSessionID(c)); err != nil {
		resp.Unauthorized(c, "invalid token")
		return
	}
	resp.OK(c, gin.H{"message": "logout successful"})
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.Svc.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, user)
}
