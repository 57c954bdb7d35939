package controllers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/godz1llla/DAMDI-QR-ORG/pkg/resp"
	"github.com/godz1llla/DAMDI-QR-ORG/repository"
	"github.com/godz1llla/DAMDI-QR-ORG/utils"
	"gorm.io/gorm"
)

const qrSize = 300

type QRController struct {
	Tables      *repository.TableRepository
	Restaurants *repository.RestaurantRepository
	BaseURL     string
}

func NewQRController(tables *repository.TableRepository, restaurants *repository.RestaurantRepository, baseURL string) *QRController {
	return &QRController{Tables: tables, Restaurants: restaurants, BaseURL: baseURL}
}

// GET /qr/generate?table_id= — PNG download for printing.
func (qc *QRController) Generate(c *gin.Context) {
	restaurantID := utils.CurrentRestaurantID(c)
	tableID, _ := strconv.Atoi(c.Query("table_id"))
	if tableID <= 0 {
		resp.BadRequest(c, "table_id is required")
		return
	}

	table, err := qc.Tables.FindForRestaurant(uint(tableID), restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "table not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	menuURL := utils.MenuURL(qc.BaseURL, restaurantID, table.ID)
	png, err := utils.GenerateQRPNG(menuURL, qrSize)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"qr-table-%s.png\"", table.TableNumber))
	c.Data(200, "image/png", png)
}

// GET /qr/preview?table_id= — data URI for the dashboard preview.
func (qc *QRController) Preview(c *gin.Context) {
	restaurantID := utils.CurrentRestaurantID(c)
	tableID, _ := strconv.Atoi(c.Query("table_id"))
	if tableID <= 0 {
		resp.BadRequest(c, "table_id is required")
		return
	}

	table, err := qc.Tables.FindForRestaurant(uint(tableID), restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "table not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	restaurantName := ""
	if rest, err := qc.Restaurants.FindByID(restaurantID); err == nil {
		restaurantName = rest.Name
	}

	menuURL := utils.MenuURL(qc.BaseURL, restaurantID, table.ID)
	dataURI, err := utils.GenerateQRDataURI(menuURL, qrSize)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"qr_code":         dataURI,
		"menu_url":        menuURL,
		"table_number":    table.TableNumber,
		"restaurant_name": restaurantName,
	})
}
