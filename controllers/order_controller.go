package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/godz1llla/DAMDI-QR-ORG/pkg/resp"
	"github.com/godz1llla/DAMDI-QR-ORG/services"
	"github.com/godz1llla/DAMDI-QR-ORG/utils"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

// POST /orders — public: customers order from the scanned menu, no login.
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "restaurant_id and items are required")
		return
	}

	out, err := oc.Orders.Create(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}

	resp.OK(c, gin.H{
		"message":          "order created",
		"order_id":         out.OrderID,
		"total_amount":     out.TotalAmount,
		"order_type":       out.OrderType,
		"table_number":     out.TableNumber,
		"customer_phone":   out.CustomerPhone,
		"delivery_address": out.DeliveryAddress,
		"whatsapp_number":  out.WhatsappNumber,
		"items":            out.Items,
	})
}

// GET /orders?status=&limit=
func (oc *OrderController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	orders, err := oc.Orders.List(
		utils.CurrentRestaurantID(c),
		utils.CurrentRole(c),
		c.Query("status"),
		limit,
	)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders})
}

// GET /orders/poll?last_id=N — the staff board calls this every few seconds.
func (oc *OrderController) Poll(c *gin.Context) {
	lastID, _ := strconv.Atoi(c.DefaultQuery("last_id", "0"))

	orders, err := oc.Orders.Poll(utils.CurrentRestaurantID(c), uint(lastID))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders})
}

type UpdateStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// PUT /orders/:id/status
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid order id")
		return
	}

	var req UpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "status is required")
		return
	}

	if err := oc.Orders.UpdateStatus(utils.CurrentRestaurantID(c), uint(id), req.Status); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Message(c, "order status updated")
}

// GET /orders/stats?period=today|week|month
func (oc *OrderController) Stats(c *gin.Context) {
	stats, err := oc.Orders.Stats(utils.CurrentRestaurantID(c), c.DefaultQuery("period", "today"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"stats": stats})
}
