package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/godz1llla/DAMDI-QR-ORG/pkg/resp"
	"github.com/godz1llla/DAMDI-QR-ORG/services"
	"github.com/godz1llla/DAMDI-QR-ORG/utils"
)

type RestaurantController struct {
	Restaurants *services.RestaurantService
}

func NewRestaurantController(restaurants *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Restaurants: restaurants}
}

// POST /restaurants — provision a tenant plus its owner (super admin only).
func (rc *RestaurantController) Create(c *gin.Context) {
	var req services.ProvisionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "all owner and restaurant fields are required")
		return
	}

	id, err := rc.Restaurants.Provision(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "restaurant created", "restaurant_id": id})
}

// GET /restaurants (super admin)
func (rc *RestaurantController) List(c *gin.Context) {
	rows, err := rc.Restaurants.List()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"restaurants": rows})
}

// GET /restaurants/my
func (rc *RestaurantController) My(c *gin.Context) {
	rest, limits, err := rc.Restaurants.My(utils.CurrentRestaurantID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"restaurant": rest, "limits": limits})
}

type UpdateMyReq struct {
	Name           string `json:"name" binding:"required"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	WhatsappNumber string `json:"whatsapp_number"`
}

// PUT /restaurants/my
func (rc *RestaurantController) UpdateMy(c *gin.Context) {
	var req UpdateMyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "name is required")
		return
	}

	err := rc.Restaurants.UpdateMy(utils.CurrentRestaurantID(c), req.Name, req.Address, req.Phone, req.WhatsappNumber)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Message(c, "restaurant updated")
}

// GET /restaurants/limits
func (rc *RestaurantController) Limits(c *gin.Context) {
	limits, err := rc.Restaurants.Limits(utils.CurrentRestaurantID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"limits": limits})
}

type AdminUpdateReq struct {
	IsActive *bool   `json:"is_active"`
	Plan     *string `json:"plan"`
}

// PUT /restaurants/:id (super admin) — activation / plan changes
func (rc *RestaurantController) AdminUpdate(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}

	var req AdminUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "nothing to update")
		return
	}

	if err := rc.Restaurants.AdminUpdate(uint(id), req.IsActive, req.Plan); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Message(c, "restaurant updated")
}

// DELETE /restaurants/:id (super admin)
func (rc *RestaurantController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}

	if err := rc.Restaurants.Delete(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Message(c, "restaurant deleted")
}

// GET /restaurants/stats (super admin)
func (rc *RestaurantController) PlatformStats(c *gin.Context) {
	stats, err := rc.Restaurants.PlatformStats()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"stats": stats})
}
