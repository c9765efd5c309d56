package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dontkeep/order-menu-backend/pkg/resp"
	"github.com/dontkeep/order-menu-backend/services"
)

type CategoryController struct {
	Svc *services.CatalogService
}

func NewCategoryController(s *services.CatalogService) *CategoryController {
	return &CategoryController{Svc: s}
}

// GET /categories
func (ctl *CategoryController) List(c *gin.Context) {
	includeInactive := c.Query("all") == "true"
	cats, err := ctl.Svc.ListCategories(includeInactive)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, cats)
}

type categoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// POST /admin/categories
func (ctl *CategoryController) Create(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := ctl.Svc.CreateCategory(req.Name)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.Created(c, cat)
}

// PUT /admin/categories/:id
func (ctl *CategoryController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := ctl.Svc.UpdateCategory(uint(id), req.Name)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, cat)
}

// DELETE /admin/categories/:id (soft delete)
func (ctl *CategoryController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Svc.DeleteCategory(uint(id)); err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "category deleted"})
}

// PATCH /admin/categories/:id/restore
func (ctl *CategoryController) Restore(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Svc.RestoreCategory(uint(id)); err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "category restored"})
}
