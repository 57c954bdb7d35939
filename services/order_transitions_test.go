package services

import (
	"testing"

	"github.com/godz1llla/DAMDI-QR-ORG/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from string
		to   string
		want bool
	}{
		{entity.OrderStatusNew, entity.OrderStatusPreparing, true},
		{entity.OrderStatusPreparing, entity.OrderStatusServed, true},
		{entity.OrderStatusServed, entity.OrderStatusCompleted, true},
		{entity.OrderStatusNew, entity.OrderStatusCancelled, true},
		{entity.OrderStatusPreparing, entity.OrderStatusCancelled, true},
		{entity.OrderStatusServed, entity.OrderStatusCancelled, true},
		{entity.OrderStatusNew, entity.OrderStatusServed, false},
		{entity.OrderStatusNew, entity.OrderStatusCompleted, false},
		{entity.OrderStatusPreparing, entity.OrderStatusNew, false},
		{entity.OrderStatusCompleted, entity.OrderStatusCancelled, false},
		{entity.OrderStatusCancelled, entity.OrderStatusNew, false},
		{"BOGUS", entity.OrderStatusNew, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func seedOrder(t *testing.T, svc *OrderService, restaurantID, tableID, itemID uint) uint {
	t.Helper()
	res, err := svc.Create(&CreateOrderReq{
		RestaurantID: restaurantID,
		TableID:      &tableID,
		Items:        []OrderItemIn{{MenuItemID: itemID, Quantity: 1}},
	})
	require.NoError(t, err)
	return res.OrderID
}

func TestUpdateStatus_FullLifecycle(t *testing.T) {
	db := newTestDB(t)
	rest := seedRestaurant(t, db, entity.PlanFree)
	table := seedTable(t, db, rest.ID, "1")
	cat := seedCategory(t, db, rest.ID, "Mains")
	item := seedItem(t, db, rest.ID, cat.ID, "Plov", 1000, true)

	svc := newOrderService(db)
	id := seedOrder(t, svc, rest.ID, table.ID, item.ID)

	for _, next := range []string{
		entity.OrderStatusPreparing,
		entity.OrderStatusServed,
		entity.OrderStatusCompleted,
	} {
		require.NoError(t, svc.UpdateStatus(rest.ID, id, next))
		var o entity.Order
		require.NoError(t, db.First(&o, id).Error)
		assert.Equal(t, next, o.Status)
	}

	// terminal: nothing moves out of COMPLETED
	err := svc.UpdateStatus(rest.ID, id, entity.OrderStatusCancelled)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateStatus_Illegal(t *testing.T) {
	db := newTestDB(t)
	rest := seedRestaurant(t, db, entity.PlanFree)
	table := seedTable(t, db, rest.ID, "1")
	cat := seedCategory(t, db, rest.ID, "Mains")
	item := seedItem(t, db, rest.ID, cat.ID, "Plov", 1000, true)

	svc := newOrderService(db)
	id := seedOrder(t, svc, rest.ID, table.ID, item.ID)

	// skipping PREPARING is not allowed
	err := svc.UpdateStatus(rest.ID, id, entity.OrderStatusServed)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// unknown status is a validation problem, not a transition one
	var vErr *ValidationError
	err = svc.UpdateStatus(rest.ID, id, "DONE")
	assert.ErrorAs(t, err, &vErr)

	var o entity.Order
	require.NoError(t, db.First(&o, id).Error)
	assert.Equal(t, entity.OrderStatusNew, o.Status)
}

func TestUpdateStatus_CrossTenant(t *testing.T) {
	db := newTestDB(t)
	rest := seedRestaurant(t, db, entity.PlanFree)
	other := seedRestaurant(t, db, entity.PlanFree)
	table := seedTable(t, db, rest.ID, "1")
	cat := seedCategory(t, db, rest.ID, "Mains")
	item := seedItem(t, db, rest.ID, cat.ID, "Plov", 1000, true)

	svc := newOrderService(db)
	id := seedOrder(t, svc, rest.ID, table.ID, item.ID)

	err := svc.UpdateStatus(other.ID, id, entity.OrderStatusPreparing)
	assert.ErrorIs(t, err, ErrNotFound)

	var o entity.Order
	require.NoError(t, db.First(&o, id).Error)
	assert.Equal(t, entity.OrderStatusNew, o.Status)
}
