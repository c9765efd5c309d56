package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dontkeep/order-menu-backend/entity"
	"github.com/dontkeep/order-menu-backend/pkg/resp"
	"github.com/dontkeep/order-menu-backend/services"
	"github.com/dontkeep/order-menu-backend/utils"
)

type TransactionController struct {
	Svc       *services.TransactionService
	UploadDir string
}

func NewTransactionController(s *services.TransactionService, uploadDir string) *TransactionController {
	return &TransactionController{Svc: s, UploadDir: uploadDir}
}

// GET /transactions
func (ctl *TransactionController) ListMine(c *gin.Context) {
	out, err := ctl.Svc.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /transactions/all (admin/employee)
func (ctl *TransactionController) ListAll(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	status := entity.TransactionStatus(c.Query("status"))

	items, total, err := ctl.Svc.ListAll(status, page, limit)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "total": total, "page": page, "limit": limit})
}

// GET /transactions/:id (owner or staff)
func (ctl *TransactionController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	trx, err := ctl.Svc.DetailFor(utils.CurrentUserID(c), utils.CurrentRole(c), uint(id))
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, trx)
}

// POST /transactions/:id/payment-proof (multipart "proof")
func (ctl *TransactionController) UploadProof(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	file, err := c.FormFile("proof")
	if err != nil {
		resp.BadRequest(c, "proof file is required")
		return
	}
	name, err := utils.SaveImage(c, file, ctl.UploadDir)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Svc.UploadPaymentProof(utils.CurrentUserID(c), uint(id), name); err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, gin.H{"paymentProof": name})
}

// PUT /transactions/:id/accept (admin/employee)
func (ctl *TransactionController) Accept(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Svc.AdminAccept(uint(id)); err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "transaction accepted"})
}

// PUT /transactions/:id/reject (admin/employee)
func (ctl *TransactionController) Reject(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Svc.AdminReject(uint(id)); err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "transaction rejected"})
}

// PUT /transactions/:id/confirm (owner)
func (ctl *TransactionController) Confirm(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Svc.Confirm(utils.CurrentUserID(c), uint(id)); err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "transaction completed"})
}

// PUT /transactions/:id/dispute (owner)
func (ctl *TransactionController) Dispute(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Svc.Dispute(utils.CurrentUserID(c), uint(id)); err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "transaction disputed"})
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PUT /transactions/:id/status (admin)
func (ctl *TransactionController) SetStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Svc.AdminSetStatus(uint(id), entity.TransactionStatus(req.Status)); err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "status updated"})
}

// POST /transactions/payment-confirmation — unauthenticated gateway webhook
func (ctl *TransactionController) PaymentConfirmation(c *gin.Context) {
	var req services.WebhookIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid payload")
		return
	}
	trx, err := ctl.Svc.HandleWebhook(&req)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "transaction status updated", "transaction": trx})
}

// POST /transactions/auto-complete (admin; also exposed as the
// cmd/autocomplete binary for cron)
func (ctl *TransactionController) AutoComplete(c *gin.Context) {
	n, err := ctl.Svc.AutoComplete()
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, gin.H{"completed": n})
}
