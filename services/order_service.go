package services

import (
	"errors"
	"log"
	"time"

	"github.com/godz1llla/DAMDI-QR-ORG/entity"
	"github.com/godz1llla/DAMDI-QR-ORG/repository"
	"github.com/godz1llla/DAMDI-QR-ORG/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// NotificationSink receives a formatted order summary after commit. Send is
// best-effort; the order is already durable when it runs.
type NotificationSink interface {
	Send(contact, message string) bool
}

type OrderService struct {
	DB   *gorm.DB
	Repo *repository.OrderRepository
	Sink NotificationSink
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, sink NotificationSink) *OrderService {
	return &OrderService{DB: db, Repo: repo, Sink: sink}
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	MenuItemID uint   `json:"menu_item_id" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required,min=1"`
	Notes      string `json:"notes"`
}

type CreateOrderReq struct {
	RestaurantID    uint          `json:"restaurant_id" binding:"required"`
	TableID         *uint         `json:"table_id"`
	OrderType       string        `json:"order_type"`
	CustomerPhone   string        `json:"customer_phone"`
	DeliveryAddress string        `json:"delivery_address"`
	Items           []OrderItemIn `json:"items" binding:"required,min=1"`
}

type CreateOrderRes struct {
	OrderID         uint
	TotalAmount     int64
	OrderType       string
	TableNumber     string
	CustomerPhone   string
	DeliveryAddress string
	WhatsappNumber  string
	Items           []utils.OrderSummaryItem
}

// ----- Create -----

// Create validates the request, then persists the order and its line items in
// one transaction. Prices are read inside the same transaction and frozen
// into the order items; one bad line item rolls everything back.
func (s *OrderService) Create(req *CreateOrderReq) (*CreateOrderRes, error) {
	orderType := req.OrderType
	if orderType == "" {
		orderType = entity.OrderTypeDineIn
	}

	switch orderType {
	case entity.OrderTypeDineIn:
		if req.TableID == nil || *req.TableID == 0 {
			return nil, Validation("table_id is required for dine-in orders")
		}
	case entity.OrderTypeDelivery:
		if req.CustomerPhone == "" || req.DeliveryAddress == "" {
			return nil, Validation("customer_phone and delivery_address are required for delivery orders")
		}
	default:
		return nil, Validation("unknown order_type: %s", orderType)
	}

	if len(req.Items) == 0 {
		return nil, Validation("items is required")
	}
	for _, it := range req.Items {
		if it.Quantity <= 0 {
			return nil, Validation("quantity must be positive")
		}
	}

	var out CreateOrderRes
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var total int64
		snapshot := make([]utils.OrderSummaryItem, 0, len(req.Items))

		for _, it := range req.Items {
			m, err := s.Repo.MenuItemForOrder(tx, it.MenuItemID, req.RestaurantID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrInvalidMenuItem
				}
				return err
			}
			total += m.Price * int64(it.Quantity)
			snapshot = append(snapshot, utils.OrderSummaryItem{
				Name:     m.Name,
				Quantity: it.Quantity,
				Price:    m.Price,
			})
		}

		order := entity.Order{
			RestaurantID: req.RestaurantID,
			Status:       entity.OrderStatusNew,
			OrderType:    orderType,
			TotalAmount:  total,
		}
		if orderType == entity.OrderTypeDineIn {
			order.TableID = req.TableID
		} else {
			order.CustomerPhone = req.CustomerPhone
			order.DeliveryAddress = req.DeliveryAddress
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for i, it := range req.Items {
			oi := entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: it.MenuItemID,
				Quantity:   it.Quantity,
				Price:      snapshot[i].Price,
				Notes:      it.Notes,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}

		out = CreateOrderRes{
			OrderID:         order.ID,
			TotalAmount:     total,
			OrderType:       orderType,
			CustomerPhone:   order.CustomerPhone,
			DeliveryAddress: order.DeliveryAddress,
			Items:           snapshot,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// resolved outside the transaction; both lookups are read-only context
	// for the confirmation screen and the notification
	if req.TableID != nil && orderType == entity.OrderTypeDineIn {
		if num, err := s.Repo.TableNumber(*req.TableID); err == nil {
			out.TableNumber = num
		}
	}
	if contact, err := s.Repo.WhatsappContact(req.RestaurantID); err == nil {
		out.WhatsappNumber = contact
	}

	s.notifyAfterCommit(&out)
	return &out, nil
}

// notifyAfterCommit fires the WhatsApp summary without blocking the caller.
// The order is committed already, so failures are only logged.
func (s *OrderService) notifyAfterCommit(res *CreateOrderRes) {
	if s.Sink == nil || res.WhatsappNumber == "" {
		return
	}

	summary := utils.OrderSummary{
		ID:              res.OrderID,
		OrderType:       res.OrderType,
		TotalAmount:     res.TotalAmount,
		TableNumber:     res.TableNumber,
		CustomerPhone:   res.CustomerPhone,
		DeliveryAddress: res.DeliveryAddress,
		Items:           res.Items,
	}
	contact := res.WhatsappNumber
	go func() {
		if !s.Sink.Send(contact, utils.FormatOrderMessage(summary)) {
			log.Printf("order %d: whatsapp notification failed", summary.ID)
		}
	}()
}

// ----- List & Poll -----

// List returns tenant orders newest-first. STAFF only sees dine-in orders;
// delivery orders go to the kitchen through WhatsApp, not the floor board.
func (s *OrderService) List(restaurantID uint, role, status string, limit int) ([]repository.OrderRow, error) {
	if status != "" && !entity.IsValidOrderStatus(status) {
		return nil, Validation("unknown status: %s", status)
	}
	dineInOnly := role == entity.RoleStaff
	return s.Repo.ListForRestaurant(restaurantID, status, dineInOnly, limit)
}

// Poll returns active-status orders with id greater than the cursor, in
// creation order. Repeat calls with the last returned id never miss or
// duplicate an order.
func (s *OrderService) Poll(restaurantID, lastID uint) ([]repository.OrderRow, error) {
	return s.Repo.PollSince(restaurantID, lastID)
}

// ----- Stats -----

type OrderStatsOut struct {
	Period          string                   `json:"period"`
	TotalOrders     int64                    `json:"total_orders"`
	TotalRevenue    int64                    `json:"total_revenue"`
	AvgCheck        string                   `json:"avg_check"`
	StatusBreakdown []repository.StatusCount `json:"status_breakdown"`
	TopDishes       []repository.TopDish     `json:"top_dishes"`
	HourlyOrders    []int64                  `json:"hourly_orders"`
}

func periodStart(period string, now time.Time) *time.Time {
	var since time.Time
	switch period {
	case "today":
		since = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case "week":
		since = now.AddDate(0, 0, -7)
	case "month":
		since = now.AddDate(0, 0, -30)
	default:
		return nil
	}
	return &since
}

func (s *OrderService) Stats(restaurantID uint, period string) (*OrderStatsOut, error) {
	now := time.Now()
	since := periodStart(period, now)

	count, revenue, err := s.Repo.StatsTotals(restaurantID, since)
	if err != nil {
		return nil, err
	}

	avg := "0.00"
	if count > 0 {
		avg = decimal.NewFromInt(revenue).Div(decimal.NewFromInt(count)).StringFixed(2)
	}

	breakdown, err := s.Repo.StatusBreakdown(restaurantID, since)
	if err != nil {
		return nil, err
	}
	top, err := s.Repo.TopDishes(restaurantID, since, 10)
	if err != nil {
		return nil, err
	}

	hourly := make([]int64, 24)
	if period == "today" {
		times, err := s.Repo.OrderTimes(restaurantID, *since)
		if err != nil {
			return nil, err
		}
		for _, t := range times {
			hourly[t.Hour()]++
		}
	}

	return &OrderStatsOut{
		Period:          period,
		TotalOrders:     count,
		TotalRevenue:    revenue,
		AvgCheck:        avg,
		StatusBreakdown: breakdown,
		TopDishes:       top,
		HourlyOrders:    hourly,
	}, nil
}
