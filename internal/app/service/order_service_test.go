package service

import (
	"strings"
	"testing"

	"github.com/designxpo/poonam-cosmetics-backend/internal/app/model"
	"github.com/designxpo/poonam-cosmetics-backend/internal/app/repository"
	"github.com/designxpo/poonam-cosmetics-backend/internal/db"
	"github.com/designxpo/poonam-cosmetics-backend/pkg/whatsapp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type orderServiceFixture struct {
	db          *gorm.DB
	service     OrderService
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	category    model.Category
}

func setupOrderServiceTest(t *testing.T) *orderServiceFixture {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	category := model.Category{Name: "Lipstick", Slug: "lipstick", Active: true}
	require.NoError(t, testDB.Create(&category).Error)

	orderRepo := repository.NewOrderRepository(testDB)
	productRepo := repository.NewProductRepository(testDB)
	cartRepo := repository.NewCartRepository(testDB)
	links := whatsapp.NewLinkBuilder("919876543210", "Poonam Cosmetics")

	return &orderServiceFixture{
		db:          testDB,
		service:     NewOrderService(orderRepo, productRepo, cartRepo, testDB, links, 50, 999),
		productRepo: productRepo,
		orderRepo:   orderRepo,
		category:    category,
	}
}

func (f *orderServiceFixture) createProduct(t *testing.T, name string, price float64, stock int) *model.Product {
	product := &model.Product{
		Name:       name,
		Slug:       strings.ToLower(strings.ReplaceAll(name, " ", "-")),
		Price:      price,
		CategoryID: f.category.ID,
		Stock:      stock,
		Active:     true,
	}
	require.NoError(t, f.productRepo.Create(product))
	return product
}

func validAddress() model.Address {
	return model.Address{Street: "12 MG Road", City: "Pune", State: "Maharashtra", Pincode: "411001"}
}

func checkoutInput(items ...CheckoutItem) CheckoutInput {
	return CheckoutInput{
		CustomerName:  "Priya Sharma",
		CustomerPhone: "9876543210",
		Address:       validAddress(),
		PaymentMethod: "cod",
		Items:         items,
	}
}

func TestOrderService_Checkout_Totals(t *testing.T) {
	f := setupOrderServiceTest(t)
	lipstick := f.createProduct(t, "Matte Lipstick", 499, 10)
	serum := f.createProduct(t, "Vitamin C Serum", 601, 10)

	tests := []struct {
		name         string
		items        []CheckoutItem
		wantSubtotal float64
		wantFee      float64
		wantTotal    float64
	}{
		{
			name:         "Below free delivery threshold pays the flat fee",
			items:        []CheckoutItem{{ProductID: lipstick.ID, Quantity: 1}},
			wantSubtotal: 499,
			wantFee:      50,
			wantTotal:    549,
		},
		{
			name: "At or above the threshold ships free",
			items: []CheckoutItem{
				{ProductID: lipstick.ID, Quantity: 1},
				{ProductID: serum.ID, Quantity: 1},
			},
			wantSubtotal: 1100,
			wantFee:      0,
			wantTotal:    1100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := f.service.Checkout(checkoutInput(tt.items...))

			require.NoError(t, err)
			assert.Equal(t, tt.wantSubtotal, result.Order.Subtotal)
			assert.Equal(t, tt.wantFee, result.Order.DeliveryFee)
			assert.Equal(t, tt.wantTotal, result.Order.TotalAmount)
			assert.Equal(t, model.OrderStatusPending, result.Order.Status)
			assert.True(t, strings.HasPrefix(result.Order.OrderNumber, "PC-"))
			assert.Contains(t, result.WhatsAppLink, "https://wa.me/919876543210?text=")
		})
	}
}

func TestOrderService_Checkout_SnapshotsAndStock(t *testing.T) {
	f := setupOrderServiceTest(t)
	product := f.createProduct(t, "Matte Lipstick", 499, 10)

	result, err := f.service.Checkout(checkoutInput(CheckoutItem{ProductID: product.ID, Quantity: 3}))
	require.NoError(t, err)

	// Line items snapshot name and unit price at order time.
	require.Len(t, result.Order.Items, 1)
	assert.Equal(t, "Matte Lipstick", result.Order.Items[0].Name)
	assert.Equal(t, 499.0, result.Order.Items[0].Price)
	assert.Equal(t, 3, result.Order.Items[0].Quantity)

	// Stock is decremented inside the checkout transaction.
	updated, err := f.productRepo.FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, updated.Stock)

	// The first tracking update is written with the order.
	found, err := f.service.GetOrderByID(result.Order.ID)
	require.NoError(t, err)
	require.Len(t, found.TrackingUpdates, 1)
	assert.Equal(t, "Order placed", found.TrackingUpdates[0].Message)
}

func TestOrderService_Checkout_Validation(t *testing.T) {
	f := setupOrderServiceTest(t)
	product := f.createProduct(t, "Matte Lipstick", 499, 2)

	inactive := f.createProduct(t, "Old Gloss", 199, 5)
	inactive.Active = false
	require.NoError(t, f.productRepo.Update(inactive))

	tests := []struct {
		name    string
		mutate  func(*CheckoutInput)
		wantErr error
	}{
		{
			name:    "Empty items",
			mutate:  func(in *CheckoutInput) { in.Items = nil },
			wantErr: ErrOrderEmptyItems,
		},
		{
			name:    "Missing name",
			mutate:  func(in *CheckoutInput) { in.CustomerName = "  " },
			wantErr: ErrIncompleteCheckout,
		},
		{
			name:    "Partial address",
			mutate:  func(in *CheckoutInput) { in.Address.Pincode = "" },
			wantErr: ErrIncompleteCheckout,
		},
		{
			name: "Unknown product",
			mutate: func(in *CheckoutInput) {
				in.Items = []CheckoutItem{{ProductID: 9999, Quantity: 1}}
			},
			wantErr: ErrProductNotFound,
		},
		{
			name: "Inactive product",
			mutate: func(in *CheckoutInput) {
				in.Items = []CheckoutItem{{ProductID: inactive.ID, Quantity: 1}}
			},
			wantErr: ErrProductInactive,
		},
		{
			name: "Insufficient stock",
			mutate: func(in *CheckoutInput) {
				in.Items = []CheckoutItem{{ProductID: product.ID, Quantity: 5}}
			},
			wantErr: ErrOutOfStock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := checkoutInput(CheckoutItem{ProductID: product.ID, Quantity: 1})
			tt.mutate(&input)

			result, err := f.service.Checkout(input)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, result)
		})
	}

	// A failed checkout must not leak a stock decrement.
	unchanged, err := f.productRepo.FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, unchanged.Stock)
}

func TestOrderService_Checkout_ConsumesCart(t *testing.T) {
	f := setupOrderServiceTest(t)
	product := f.createProduct(t, "Matte Lipstick", 499, 10)

	userID := uint(1)
	require.NoError(t, f.db.Create(&model.CartItem{
		UserID: userID, ProductID: product.ID, Quantity: 2,
	}).Error)

	input := checkoutInput(CheckoutItem{ProductID: product.ID, Quantity: 2})
	input.UserID = &userID

	_, err := f.service.Checkout(input)
	require.NoError(t, err)

	var remaining int64
	require.NoError(t, f.db.Model(&model.CartItem{}).Where("user_id = ?", userID).Count(&remaining).Error)
	assert.EqualValues(t, 0, remaining)
}

func TestOrderService_TrackOrder(t *testing.T) {
	f := setupOrderServiceTest(t)
	product := f.createProduct(t, "Matte Lipstick", 499, 10)

	result, err := f.service.Checkout(checkoutInput(CheckoutItem{ProductID: product.ID, Quantity: 1}))
	require.NoError(t, err)

	order, err := f.service.TrackOrder(result.Order.OrderNumber, "9876543210")
	require.NoError(t, err)
	assert.Equal(t, result.Order.ID, order.ID)

	_, err = f.service.TrackOrder(result.Order.OrderNumber, "1112223334")
	assert.ErrorIs(t, err, ErrOrderPhoneMismatch)

	_, err = f.service.TrackOrder("PC-00000000-XXXXX", "9876543210")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderService_CancelGuestOrder(t *testing.T) {
	f := setupOrderServiceTest(t)
	product := f.createProduct(t, "Matte Lipstick", 499, 10)

	result, err := f.service.Checkout(checkoutInput(CheckoutItem{ProductID: product.ID, Quantity: 4}))
	require.NoError(t, err)

	cancelled, err := f.service.CancelGuestOrder(result.Order.OrderNumber, "9876543210")
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusCancelled, cancelled.Status)

	// Cancelling restores the reserved stock.
	restored, err := f.productRepo.FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, restored.Stock)

	// A cancelled order cannot be cancelled again.
	_, err = f.service.CancelGuestOrder(result.Order.OrderNumber, "9876543210")
	assert.ErrorIs(t, err, ErrOrderNotPending)
}

func TestOrderService_Cancel_OnlyPending(t *testing.T) {
	f := setupOrderServiceTest(t)
	product := f.createProduct(t, "Matte Lipstick", 499, 10)

	result, err := f.service.Checkout(checkoutInput(CheckoutItem{ProductID: product.ID, Quantity: 1}))
	require.NoError(t, err)

	_, err = f.service.UpdateOrderStatus(result.Order.ID, StatusUpdate{Status: model.OrderStatusShipped})
	require.NoError(t, err)

	_, err = f.service.CancelGuestOrder(result.Order.OrderNumber, "9876543210")
	assert.ErrorIs(t, err, ErrOrderNotPending)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	f := setupOrderServiceTest(t)
	product := f.createProduct(t, "Matte Lipstick", 499, 10)

	result, err := f.service.Checkout(checkoutInput(CheckoutItem{ProductID: product.ID, Quantity: 1}))
	require.NoError(t, err)

	order, err := f.service.UpdateOrderStatus(result.Order.ID, StatusUpdate{
		Status:         model.OrderStatusShipped,
		TrackingNumber: "TRK123",
	})
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusShipped, order.Status)
	assert.Equal(t, "TRK123", order.TrackingNumber)

	// Every update appends to the tracking history; nothing is rewritten.
	require.Len(t, order.TrackingUpdates, 2)
	assert.Equal(t, "Order placed", order.TrackingUpdates[0].Message)
	assert.Equal(t, "Order status updated to shipped", order.TrackingUpdates[1].Message)

	_, err = f.service.UpdateOrderStatus(result.Order.ID, StatusUpdate{Status: "teleported"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestOrderService_BulkUpdateStatus(t *testing.T) {
	f := setupOrderServiceTest(t)
	product := f.createProduct(t, "Matte Lipstick", 499, 10)

	r1, err := f.service.Checkout(checkoutInput(CheckoutItem{ProductID: product.ID, Quantity: 1}))
	require.NoError(t, err)
	r2, err := f.service.Checkout(checkoutInput(CheckoutItem{ProductID: product.ID, Quantity: 1}))
	require.NoError(t, err)

	// Unknown IDs are skipped, so the modified count can be below the
	// requested count.
	count, err := f.service.BulkUpdateStatus([]uint{r1.Order.ID, r2.Order.ID, 9999}, model.OrderStatusConfirmed)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	_, err = f.service.BulkUpdateStatus(nil, model.OrderStatusConfirmed)
	assert.ErrorIs(t, err, ErrEmptyIDList)

	_, err = f.service.BulkUpdateStatus([]uint{r1.Order.ID}, "teleported")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
