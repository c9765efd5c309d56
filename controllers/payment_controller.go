package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dontkeep/order-menu-backend/entity"
	"github.com/dontkeep/order-menu-backend/pkg/resp"
	"github.com/dontkeep/order-menu-backend/services"
	"github.com/dontkeep/order-menu-backend/utils"
)

type PaymentController struct {
	TrxSvc *services.TransactionService
}

func NewPaymentController(trx *services.TransactionService) *PaymentController {
	return &PaymentController{TrxSvc: trx}
}

// POST /payment/token/:id — re-request a Snap token for an owned pending
// transaction, e.g. after the checkout-time gateway call failed.
func (ctl *PaymentController) RequestToken(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	userID := utils.CurrentUserID(c)

	trx, err := ctl.TrxSvc.Repo.FindForUser(userID, uint(id))
	if err != nil {
		serviceError(c, err)
		return
	}
	if trx.Status != entity.StatusPending {
		serviceError(c, services.ErrInvalidTransition)
		return
	}

	user, err := ctl.TrxSvc.UserRepo.FindByID(userID)
	if err != nil {
		serviceError(c, err)
		return
	}

	items := make([]services.SnapItem, 0, len(trx.Details)+1)
	for _, d := range trx.Details {
		menu, err := ctl.TrxSvc.MenuRepo.FindByID(d.MenuID)
		if err != nil {
			serviceError(c, err)
			return
		}
		items = append(items, services.SnapItem{
			ID:       services.OrderID(trx.ID) + "-" + menu.Name,
			Price:    d.Price,
			Quantity: d.Qty,
			Name:     menu.Name,
		})
	}
	if trx.DeliveryCharge > 0 {
		items = append(items, services.SnapItem{
			ID: "DELIVERY", Price: trx.DeliveryCharge, Quantity: 1, Name: "Delivery charge",
		})
	}

	token, err := ctl.TrxSvc.Payment.RequestToken(trx, user, items)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, gin.H{"transactionId": trx.ID, "paymentToken": token})
}
