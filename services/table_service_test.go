package services

import (
	"fmt"
	"testing"

	"github.com/godz1llla/DAMDI-QR-ORG/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTable_FreeLimit(t *testing.T) {
	db := newTestDB(t)
	rest := seedRestaurant(t, db, entity.PlanFree)
	svc := newTableService(db)

	for i := 1; i <= 5; i++ {
		_, err := svc.Create(rest.ID, fmt.Sprintf("%d", i))
		require.NoError(t, err)
	}

	_, err := svc.Create(rest.ID, "6")
	var limitErr *LimitReachedError
	require.ErrorAs(t, err, &limitErr)
	assert.Equal(t, LimitKindTables, limitErr.LimitType)
	assert.Equal(t, 5, limitErr.CurrentCount)
	assert.Equal(t, 5, limitErr.Limit)
	assert.Equal(t, entity.PlanFree, limitErr.Plan)

	out, err := svc.List(rest.ID)
	require.NoError(t, err)
	assert.Len(t, out.Tables, 5)
	assert.Equal(t, int64(5), out.Limits.Current)
	assert.Equal(t, 5, out.Limits.Max)
}

func TestCreateTable_PremiumNotLimited(t *testing.T) {
	db := newTestDB(t)
	rest := seedRestaurant(t, db, entity.PlanPremium)
	svc := newTableService(db)

	for i := 1; i <= 10; i++ {
		_, err := svc.Create(rest.ID, fmt.Sprintf("%d", i))
		require.NoError(t, err)
	}
}

func TestCreateTable_DuplicateNumber(t *testing.T) {
	db := newTestDB(t)
	rest := seedRestaurant(t, db, entity.PlanFree)
	other := seedRestaurant(t, db, entity.PlanFree)
	svc := newTableService(db)

	_, err := svc.Create(rest.ID, "7")
	require.NoError(t, err)

	_, err = svc.Create(rest.ID, "7")
	assert.ErrorIs(t, err, ErrConflict)

	// same number is fine in another restaurant
	_, err = svc.Create(other.ID, "7")
	require.NoError(t, err)
}

func TestCreateTable_Validation(t *testing.T) {
	db := newTestDB(t)
	rest := seedRestaurant(t, db, entity.PlanFree)
	svc := newTableService(db)

	var vErr *ValidationError
	_, err := svc.Create(rest.ID, "   ")
	assert.ErrorAs(t, err, &vErr)
}

func TestDeleteTable_ActiveOrdersBlock(t *testing.T) {
	db := newTestDB(t)
	rest := seedRestaurant(t, db, entity.PlanFree)
	table := seedTable(t, db, rest.ID, "1")
	cat := seedCategory(t, db, rest.ID, "Mains")
	item := seedItem(t, db, rest.ID, cat.ID, "Plov", 1000, true)

	orders := newOrderService(db)
	res, err := orders.Create(&CreateOrderReq{
		RestaurantID: rest.ID,
		TableID:      &table.ID,
		Items:        []OrderItemIn{{MenuItemID: item.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	svc := newTableService(db)
	err = svc.Delete(rest.ID, table.ID)
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)

	// finished history does not block deletion
	for _, next := range []string{entity.OrderStatusPreparing, entity.OrderStatusServed, entity.OrderStatusCompleted} {
		require.NoError(t, orders.UpdateStatus(rest.ID, res.OrderID, next))
	}
	require.NoError(t, svc.Delete(rest.ID, table.ID))
}

func TestDeleteTable_CrossTenant(t *testing.T) {
	db := newTestDB(t)
	rest := seedRestaurant(t, db, entity.PlanFree)
	other := seedRestaurant(t, db, entity.PlanFree)
	table := seedTable(t, db, rest.ID, "1")

	svc := newTableService(db)
	err := svc.Delete(other.ID, table.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&entity.Table{}).Where("id = ?", table.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
