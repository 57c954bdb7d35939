package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/godz1llla/DAMDI-QR-ORG/pkg/resp"
	"github.com/godz1llla/DAMDI-QR-ORG/services"
	"github.com/godz1llla/DAMDI-QR-ORG/utils"
)

type StaffController struct {
	Staff *services.StaffService
}

func NewStaffController(staff *services.StaffService) *StaffController {
	return &StaffController{Staff: staff}
}

// GET /staff
func (sc *StaffController) List(c *gin.Context) {
	rows, err := sc.Staff.List(utils.CurrentRestaurantID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"staff": rows})
}

type CreateStaffReq struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
}

// POST /staff
func (sc *StaffController) Create(c *gin.Context) {
	var req CreateStaffReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "email, password, first_name and last_name are required")
		return
	}

	id, err := sc.Staff.Create(utils.CurrentRestaurantID(c), req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "staff member added", "staff_id": id})
}

// DELETE /staff/:id
func (sc *StaffController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid staff id")
		return
	}

	if err := sc.Staff.Delete(utils.CurrentRestaurantID(c), uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Message(c, "staff member removed")
}
