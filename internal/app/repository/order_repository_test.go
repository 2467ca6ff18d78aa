package repository

import (
	"testing"

	"github.com/designxpo/poonam-cosmetics-backend/internal/app/model"
	"github.com/designxpo/poonam-cosmetics-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupOrderRepoTest(t *testing.T) (*gorm.DB, OrderRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })
	return testDB, NewOrderRepository(testDB)
}

func makeOrder(number string, status model.OrderStatus) *model.Order {
	return &model.Order{
		OrderNumber:   number,
		CustomerName:  "Priya Sharma",
		CustomerPhone: "9876543210",
		Subtotal:      499,
		DeliveryFee:   50,
		TotalAmount:   549,
		Status:        status,
		Address: model.Address{
			Street: "12 MG Road", City: "Pune", State: "Maharashtra", Pincode: "411001",
		},
		Items: []model.OrderItem{
			{ProductID: 1, Name: "Matte Lipstick", Quantity: 1, Price: 499},
		},
		TrackingUpdates: []model.TrackingUpdate{
			{Status: model.OrderStatusPending, Message: "Order placed"},
		},
	}
}

func TestOrderRepository_CreateAndFind(t *testing.T) {
	_, repo := setupOrderRepoTest(t)

	order := makeOrder("PC-20260115-AAAAA", model.OrderStatusPending)
	require.NoError(t, repo.Create(order))
	require.NotZero(t, order.ID)

	found, err := repo.FindByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, "PC-20260115-AAAAA", found.OrderNumber)
	require.Len(t, found.Items, 1)
	require.Len(t, found.TrackingUpdates, 1)
	assert.Equal(t, "Order placed", found.TrackingUpdates[0].Message)

	byNumber, err := repo.FindByOrderNumber("PC-20260115-AAAAA")
	require.NoError(t, err)
	assert.Equal(t, order.ID, byNumber.ID)

	_, err = repo.FindByOrderNumber("PC-00000000-XXXXX")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestOrderRepository_FindAll_StatusFilter(t *testing.T) {
	_, repo := setupOrderRepoTest(t)

	require.NoError(t, repo.Create(makeOrder("PC-1", model.OrderStatusPending)))
	require.NoError(t, repo.Create(makeOrder("PC-2", model.OrderStatusShipped)))
	require.NoError(t, repo.Create(makeOrder("PC-3", model.OrderStatusPending)))

	orders, total, err := repo.FindAll(OrderFilter{Status: "pending"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, orders, 2)

	orders, total, err = repo.FindAll(OrderFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, orders, 3)

	// Search matches order number, name or phone.
	orders, total, err = repo.FindAll(OrderFilter{Search: "PC-2"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, orders, 1)
	assert.Equal(t, model.OrderStatusShipped, orders[0].Status)
}

func TestOrderRepository_FindAll_Pagination(t *testing.T) {
	_, repo := setupOrderRepoTest(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(makeOrder(
			"PC-"+string(rune('A'+i)), model.OrderStatusPending)))
	}

	orders, total, err := repo.FindAll(OrderFilter{Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Len(t, orders, 2)

	orders, _, err = repo.FindAll(OrderFilter{Limit: 2, Offset: 4})
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestOrderRepository_BulkUpdateStatus(t *testing.T) {
	_, repo := setupOrderRepoTest(t)

	o1 := makeOrder("PC-1", model.OrderStatusPending)
	o2 := makeOrder("PC-2", model.OrderStatusPending)
	require.NoError(t, repo.Create(o1))
	require.NoError(t, repo.Create(o2))

	count, err := repo.BulkUpdateStatus([]uint{o1.ID, o2.ID, 9999}, model.OrderStatusConfirmed)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	found, err := repo.FindByID(o1.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusConfirmed, found.Status)

	// Each matched order gains one tracking update alongside its creation
	// entry; the bogus ID gains none.
	require.Len(t, found.TrackingUpdates, 2)
	last := found.TrackingUpdates[len(found.TrackingUpdates)-1]
	assert.Equal(t, model.OrderStatusConfirmed, last.Status)
	assert.Equal(t, "Order status updated to confirmed", last.Message)
}

func TestOrderRepository_FindByUserID(t *testing.T) {
	_, repo := setupOrderRepoTest(t)

	userID := uint(7)
	mine := makeOrder("PC-MINE", model.OrderStatusPending)
	mine.UserID = &userID
	require.NoError(t, repo.Create(mine))
	require.NoError(t, repo.Create(makeOrder("PC-GUEST", model.OrderStatusPending)))

	orders, total, err := repo.FindByUserID(userID, 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, orders, 1)
	assert.Equal(t, "PC-MINE", orders[0].OrderNumber)
}

func TestOrderRepository_CountByStatus(t *testing.T) {
	_, repo := setupOrderRepoTest(t)

	require.NoError(t, repo.Create(makeOrder("PC-1", model.OrderStatusPending)))
	require.NoError(t, repo.Create(makeOrder("PC-2", model.OrderStatusPending)))
	require.NoError(t, repo.Create(makeOrder("PC-3", model.OrderStatusDelivered)))

	counts, err := repo.CountByStatus()
	require.NoError(t, err)
	assert.EqualValues(t, 2, counts[model.OrderStatusPending])
	assert.EqualValues(t, 1, counts[model.OrderStatusDelivered])
}
