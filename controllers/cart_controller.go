package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dontkeep/order-menu-backend/pkg/resp"
	"github.com/dontkeep/order-menu-backend/services"
	"github.com/dontkeep/order-menu-backend/utils"
)

type CartController struct {
	Svc    *services.CartService
	TrxSvc *services.TransactionService
}

func NewCartController(s *services.CartService, trx *services.TransactionService) *CartController {
	return &CartController{Svc: s, TrxSvc: trx}
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	items, subtotal, err := h.Svc.Get(utils.CurrentUserID(c))
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "subtotal": subtotal})
}

type addCartRequest struct {
	MenuID uint `json:"menuId" binding:"required"`
	Qty    int  `json:"qty" binding:"required"`
}

// POST /cart
func (h *CartController) Add(c *gin.Context) {
	var req addCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := h.Svc.Add(utils.CurrentUserID(c), req.MenuID, req.Qty)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.Created(c, item)
}

type qtyRequest struct {
	Qty int `json:"qty" binding:"required"`
}

// PUT /cart/:menu_id
func (h *CartController) UpdateQty(c *gin.Context) {
	menuID, _ := strconv.Atoi(c.Param("menu_id"))
	var req qtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.UpdateQty(utils.CurrentUserID(c), uint(menuID), req.Qty); err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "cart updated"})
}

// DELETE /cart/:menu_id
func (h *CartController) Remove(c *gin.Context) {
	menuID, _ := strconv.Atoi(c.Param("menu_id"))
	if err := h.Svc.Remove(utils.CurrentUserID(c), uint(menuID)); err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "item removed"})
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	if err := h.Svc.Clear(utils.CurrentUserID(c)); err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "cart cleared"})
}

// GET /cart/total
func (h *CartController) Total(c *gin.Context) {
	total, err := h.Svc.Total(utils.CurrentUserID(c))
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, gin.H{"total": total})
}

// POST /cart/checkout
func (h *CartController) Checkout(c *gin.Context) {
	var req services.CheckoutIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.TrxSvc.Checkout(utils.CurrentUserID(c), &req)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.Created(c, out)
}
