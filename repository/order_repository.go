package repository

import (
	"time"

	"github.com/godz1llla/DAMDI-QR-ORG/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Create (inside the caller's transaction) ----------------

// MenuItemForOrder reads the price snapshot source. Scoped by tenant and
// availability so a stale or foreign item id fails the whole order.
func (r *OrderRepository) MenuItemForOrder(tx *gorm.DB, itemID, restaurantID uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	err := tx.Select("id, name, price").
		Where("id = ? AND restaurant_id = ? AND is_available = ?", itemID, restaurantID, true).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

// ---------------- Read ----------------

type OrderItemRow struct {
	ID         uint   `json:"id"`
	MenuItemID uint   `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
	Price      int64  `json:"price"`
	Notes      string `json:"notes"`
	Name       string `json:"name"`
}

type OrderRow struct {
	ID              uint           `json:"id"`
	TableID         *uint          `json:"table_id"`
	TableNumber     string         `json:"table_number"`
	Status          string         `json:"status"`
	OrderType       string         `json:"order_type"`
	TotalAmount     int64          `json:"total_amount"`
	CustomerPhone   string         `json:"customer_phone"`
	DeliveryAddress string         `json:"delivery_address"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	Items           []OrderItemRow `json:"items" gorm:"-"`
}

func (r *OrderRepository) baseRows(restaurantID uint) *gorm.DB {
	return r.DB.Table("orders AS o").
		Select("o.id, o.table_id, t.table_number, o.status, o.order_type, o.total_amount, "+
			"o.customer_phone, o.delivery_address, o.created_at, o.updated_at").
		Joins("LEFT JOIN tables t ON t.id = o.table_id").
		Where("o.restaurant_id = ? AND o.deleted_at IS NULL", restaurantID)
}

// ListForRestaurant returns newest-first order rows with their items.
func (r *OrderRepository) ListForRestaurant(restaurantID uint, status string, dineInOnly bool, limit int) ([]OrderRow, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	q := r.baseRows(restaurantID)
	if status != "" {
		q = q.Where("o.status = ?", status)
	}
	if dineInOnly {
		q = q.Where("o.order_type = ?", entity.OrderTypeDineIn)
	}

	var rows []OrderRow
	if err := q.Order("o.id DESC").Limit(limit).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return r.attachItems(rows)
}

// PollSince returns board orders with id > lastID, oldest first, so the
// client can advance its cursor to the last id it received.
func (r *OrderRepository) PollSince(restaurantID, lastID uint) ([]OrderRow, error) {
	var rows []OrderRow
	err := r.baseRows(restaurantID).
		Where("o.id > ? AND o.status IN ?", lastID, entity.ActiveOrderStatuses).
		Order("o.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return r.attachItems(rows)
}

func (r *OrderRepository) attachItems(rows []OrderRow) ([]OrderRow, error) {
	if len(rows) == 0 {
		return rows, nil
	}

	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	type itemRow struct {
		ID         uint
		OrderID    uint
		MenuItemID uint
		Quantity   int
		Price      int64
		Notes      string
		Name       string
	}
	var items []itemRow
	err := r.DB.Table("order_items AS oi").
		Select("oi.id, oi.order_id, oi.menu_item_id, oi.quantity, oi.price, oi.notes, mi.name").
		Joins("LEFT JOIN menu_items mi ON mi.id = oi.menu_item_id").
		Where("oi.order_id IN ? AND oi.deleted_at IS NULL", ids).
		Order("oi.id ASC").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}

	byOrder := make(map[uint][]OrderItemRow, len(rows))
	for _, it := range items {
		byOrder[it.OrderID] = append(byOrder[it.OrderID], OrderItemRow{
			ID:         it.ID,
			MenuItemID: it.MenuItemID,
			Quantity:   it.Quantity,
			Price:      it.Price,
			Notes:      it.Notes,
			Name:       it.Name,
		})
	}
	for i := range rows {
		rows[i].Items = byOrder[rows[i].ID]
		if rows[i].Items == nil {
			rows[i].Items = []OrderItemRow{}
		}
	}
	return rows, nil
}

func (r *OrderRepository) GetForRestaurant(id, restaurantID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND restaurant_id = ?", id, restaurantID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// ---------------- Status ----------------

// UpdateStatusFromTo writes the new status only if the row still holds the
// expected one; rows affected == 0 means a lost race or an illegal write.
func (r *OrderRepository) UpdateStatusFromTo(id, restaurantID uint, from, to string) (int64, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("id = ? AND restaurant_id = ? AND status = ?", id, restaurantID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// ---------------- Notification context ----------------

func (r *OrderRepository) TableNumber(tableID uint) (string, error) {
	var row struct{ TableNumber string }
	err := r.DB.Model(&entity.Table{}).Select("table_number").Where("id = ?", tableID).First(&row).Error
	return row.TableNumber, err
}

func (r *OrderRepository) WhatsappContact(restaurantID uint) (string, error) {
	var row struct{ WhatsappNumber string }
	err := r.DB.Model(&entity.Restaurant{}).
		Select("whatsapp_number").Where("id = ?", restaurantID).
		First(&row).Error
	return row.WhatsappNumber, err
}

// ---------------- Stats ----------------

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type TopDish struct {
	Name          string `json:"name"`
	TotalQuantity int64  `json:"total_quantity"`
	TotalRevenue  int64  `json:"total_revenue"`
}

func (r *OrderRepository) statsScope(restaurantID uint, since *time.Time) *gorm.DB {
	q := r.DB.Model(&entity.Order{}).Where("restaurant_id = ?", restaurantID)
	if since != nil {
		q = q.Where("created_at >= ?", *since)
	}
	return q
}

func (r *OrderRepository) StatsTotals(restaurantID uint, since *time.Time) (count int64, revenue int64, err error) {
	var row struct {
		Count   int64
		Revenue int64
	}
	err = r.statsScope(restaurantID, since).
		Select("COUNT(*) AS count, COALESCE(SUM(total_amount), 0) AS revenue").
		Scan(&row).Error
	return row.Count, row.Revenue, err
}

func (r *OrderRepository) StatusBreakdown(restaurantID uint, since *time.Time) ([]StatusCount, error) {
	var out []StatusCount
	err := r.statsScope(restaurantID, since).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&out).Error
	return out, err
}

func (r *OrderRepository) TopDishes(restaurantID uint, since *time.Time, limit int) ([]TopDish, error) {
	q := r.DB.Table("order_items AS oi").
		Select("mi.name, SUM(oi.quantity) AS total_quantity, SUM(oi.quantity * oi.price) AS total_revenue").
		Joins("JOIN menu_items mi ON mi.id = oi.menu_item_id").
		Joins("JOIN orders o ON o.id = oi.order_id").
		Where("o.restaurant_id = ? AND o.deleted_at IS NULL", restaurantID)
	if since != nil {
		q = q.Where("o.created_at >= ?", *since)
	}

	var out []TopDish
	err := q.Group("mi.id, mi.name").
		Order("total_quantity DESC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}

// OrderTimes feeds the hourly histogram; bucketing happens in Go so the
// query stays portable between sqlite and postgres.
func (r *OrderRepository) OrderTimes(restaurantID uint, since time.Time) ([]time.Time, error) {
	var times []time.Time
	err := r.DB.Model(&entity.Order{}).
		Where("restaurant_id = ? AND created_at >= ?", restaurantID, since).
		Order("created_at ASC").
		Pluck("created_at", &times).Error
	return times, err
}
