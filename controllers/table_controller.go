package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/godz1llla/DAMDI-QR-ORG/pkg/resp"
	"github.com/godz1llla/DAMDI-QR-ORG/services"
	"github.com/godz1llla/DAMDI-QR-ORG/utils"
)

type TableController struct {
	Tables *services.TableService
}

func NewTableController(tables *services.TableService) *TableController {
	return &TableController{Tables: tables}
}

// GET /tables
func (tc *TableController) List(c *gin.Context) {
	out, err := tc.Tables.List(utils.CurrentRestaurantID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"tables": out.Tables, "limits": out.Limits, "plan": out.Plan})
}

type CreateTableReq struct {
	TableNumber string `json:"table_number" binding:"required"`
}

// POST /tables
func (tc *TableController) Create(c *gin.Context) {
	var req CreateTableReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "table_number is required")
		return
	}

	id, err := tc.Tables.Create(utils.CurrentRestaurantID(c), req.TableNumber)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "table created", "table_id": id})
}

// DELETE /tables/:id
func (tc *TableController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid table id")
		return
	}

	if err := tc.Tables.Delete(utils.CurrentRestaurantID(c), uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Message(c, "table deleted")
}
