package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/godz1llla/DAMDI-QR-ORG/pkg/resp"
	"github.com/godz1llla/DAMDI-QR-ORG/services"
	"github.com/godz1llla/DAMDI-QR-ORG/utils"
)

type MenuController struct {
	Menu *services.MenuService
}

func NewMenuController(menu *services.MenuService) *MenuController {
	return &MenuController{Menu: menu}
}

// GET /menu — public for customers (?restaurant_id=), token-scoped for staff.
func (mc *MenuController) Get(c *gin.Context) {
	restaurantID := utils.CurrentRestaurantID(c)
	if restaurantID == 0 {
		id, _ := strconv.Atoi(c.Query("restaurant_id"))
		restaurantID = uint(id)
	}
	if restaurantID == 0 {
		resp.BadRequest(c, "restaurant_id is required")
		return
	}

	out, err := mc.Menu.Menu(restaurantID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"menu": out.Menu, "limits": out.Limits, "plan": out.Plan})
}

type CreateCategoryReq struct {
	Name string `json:"name" binding:"required"`
}

// POST /menu/categories
func (mc *MenuController) CreateCategory(c *gin.Context) {
	var req CreateCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "name is required")
		return
	}

	id, err := mc.Menu.CreateCategory(utils.CurrentRestaurantID(c), req.Name)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "category created", "category_id": id})
}

// DELETE /menu/categories/:id
func (mc *MenuController) DeleteCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid category id")
		return
	}

	if err := mc.Menu.DeleteCategory(utils.CurrentRestaurantID(c), uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Message(c, "category deleted")
}

// POST /menu/items
func (mc *MenuController) CreateItem(c *gin.Context) {
	var req services.CreateItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "category_id, name and price are required")
		return
	}

	id, err := mc.Menu.CreateItem(utils.CurrentRestaurantID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "item created", "item_id": id})
}

// PUT /menu/items/:id
func (mc *MenuController) UpdateItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid item id")
		return
	}

	var req services.UpdateItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "category_id, name and price are required")
		return
	}

	if err := mc.Menu.UpdateItem(utils.CurrentRestaurantID(c), uint(id), &req); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Message(c, "item updated")
}

// DELETE /menu/items/:id
func (mc *MenuController) DeleteItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid item id")
		return
	}

	if err := mc.Menu.DeleteItem(utils.CurrentRestaurantID(c), uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Message(c, "item deleted")
}
