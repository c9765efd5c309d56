package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dontkeep/order-menu-backend/pkg/resp"
	"github.com/dontkeep/order-menu-backend/services"
	"github.com/dontkeep/order-menu-backend/utils"
)

type MenuController struct {
	Svc       *services.CatalogService
	UploadDir string
}

func NewMenuController(s *services.CatalogService, uploadDir string) *MenuController {
	return &MenuController{Svc: s, UploadDir: uploadDir}
}

// GET /menus?category=
func (ctl *MenuController) List(c *gin.Context) {
	menus, err := ctl.Svc.ListMenus(c.Query("category"))
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, menus)
}

// GET /menus/:id
func (ctl *MenuController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	menu, err := ctl.Svc.GetMenu(uint(id))
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, menu)
}

// POST /admin/menus
func (ctl *MenuController) Create(c *gin.Context) {
	var req services.MenuIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	menu, err := ctl.Svc.CreateMenu(&req)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.Created(c, menu)
}

// PUT /admin/menus/:id
func (ctl *MenuController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req services.MenuIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	menu, err := ctl.Svc.UpdateMenu(uint(id), &req)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, menu)
}

// POST /admin/menus/:id/image (multipart "image")
func (ctl *MenuController) UploadImage(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if _, err := ctl.Svc.GetMenu(uint(id)); err != nil {
		serviceError(c, err)
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		resp.BadRequest(c, "image file is required")
		return
	}
	name, err := utils.SaveImage(c, file, ctl.UploadDir)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Svc.SetMenuImage(uint(id), name); err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, gin.H{"image": name})
}

type stockRequest struct {
	Stock int `json:"stock" binding:"min=0"`
}

// PATCH /admin/menus/:id/stock
func (ctl *MenuController) UpdateStock(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req stockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Svc.SetMenuStock(uint(id), req.Stock); err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "stock updated"})
}

// DELETE /admin/menus/:id (soft delete)
func (ctl *MenuController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Svc.DeleteMenu(uint(id)); err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "menu deleted"})
}

// PATCH /admin/menus/:id/restore
func (ctl *MenuController) Restore(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Svc.RestoreMenu(uint(id)); err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "menu restored"})
}
