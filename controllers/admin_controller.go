package controllers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dontkeep/order-menu-backend/pkg/resp"
	"github.com/dontkeep/order-menu-backend/repository"
	"github.com/dontkeep/order-menu-backend/services"
)

type AdminController struct {
	UserRepo   *repository.UserRepository
	ReportSvc  *services.ReportService
	CatalogSvc *services.CatalogService
}

func NewAdminController(ur *repository.UserRepository, rs *services.ReportService, cs *services.CatalogService) *AdminController {
	return &AdminController{UserRepo: ur, ReportSvc: rs, CatalogSvc: cs}
}

// GET /admin/users
func (ctl *AdminController) Users(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	users, total, err := ctl.UserRepo.List(limit, (page-1)*limit)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": users, "total": total, "page": page, "limit": limit})
}

type userStateRequest struct {
	State string `json:"state" binding:"required,oneof=active inactive"`
}

// PATCH /admin/users/:id/state — deactivation is the soft delete for
// accounts; an inactive user can no longer log in.
func (ctl *AdminController) SetUserState(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req userStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if _, err := ctl.UserRepo.FindByID(uint(id)); err != nil {
		serviceError(c, err)
		return
	}
	if err := ctl.UserRepo.Update(uint(id), map[string]any{"state": req.State}); err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "user state updated"})
}

type userRoleRequest struct {
	RoleID uint `json:"roleId" binding:"required"`
}

// PATCH /admin/users/:id/role — the role id must exist in the Role table.
func (ctl *AdminController) SetUserRole(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req userRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ok, err := ctl.UserRepo.RoleExists(req.RoleID)
	if err != nil {
		serviceError(c, err)
		return
	}
	if !ok {
		resp.BadRequest(c, "unknown role id")
		return
	}
	if _, err := ctl.UserRepo.FindByID(uint(id)); err != nil {
		serviceError(c, err)
		return
	}
	if err := ctl.UserRepo.Update(uint(id), map[string]any{"role_id": req.RoleID}); err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "user role updated"})
}

// GET /admin/reports/summary
func (ctl *AdminController) ReportSummary(c *gin.Context) {
	out, err := ctl.ReportSvc.Summary()
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /admin/reports/daily — trailing 30 days, zero-filled
func (ctl *AdminController) ReportDaily(c *gin.Context) {
	out, err := ctl.ReportSvc.DailySales(time.Now())
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /admin/reports/top-items
func (ctl *AdminController) ReportTopItems(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	out, err := ctl.ReportSvc.TopItems(limit)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /admin/reports/stock
func (ctl *AdminController) ReportStock(c *gin.Context) {
	threshold, _ := strconv.Atoi(c.DefaultQuery("threshold", "5"))
	out, err := ctl.CatalogSvc.StockStats(threshold)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /admin/reports/sales/export — xlsx download of the daily series
func (ctl *AdminController) ExportSales(c *gin.Context) {
	f, err := ctl.ReportSvc.ExportDailySalesXLSX(time.Now())
	if err != nil {
		serviceError(c, err)
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("sales-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		serviceError(c, err)
		return
	}
}
