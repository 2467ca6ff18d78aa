package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/designxpo/poonam-cosmetics-backend/internal/app/model"
	"github.com/designxpo/poonam-cosmetics-backend/internal/app/repository"
	"github.com/designxpo/poonam-cosmetics-backend/internal/app/service"
	"github.com/designxpo/poonam-cosmetics-backend/internal/db"
	"github.com/designxpo/poonam-cosmetics-backend/pkg/whatsapp"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type orderControllerFixture struct {
	router  *gin.Engine
	db      *gorm.DB
	product model.Product
}

func setupOrderControllerTest(t *testing.T) *orderControllerFixture {
	gin.SetMode(gin.TestMode)

	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	category := model.Category{Name: "Lipstick", Slug: "lipstick", Active: true}
	require.NoError(t, testDB.Create(&category).Error)
	product := model.Product{
		Name: "Matte Lipstick", Slug: "matte-lipstick", Price: 499,
		CategoryID: category.ID, Stock: 10, Active: true,
	}
	require.NoError(t, testDB.Create(&product).Error)

	orderRepo := repository.NewOrderRepository(testDB)
	orderService := service.NewOrderService(
		orderRepo,
		repository.NewProductRepository(testDB),
		repository.NewCartRepository(testDB),
		testDB,
		whatsapp.NewLinkBuilder("919876543210", "Poonam Cosmetics"),
		50, 999,
	)
	ctrl := NewOrderController(orderService, service.NewOrderExporter(orderRepo))

	router := gin.New()
	router.POST("/orders/checkout", ctrl.Checkout)
	router.POST("/orders/track", ctrl.TrackOrder)
	router.POST("/orders/cancel", ctrl.CancelGuestOrder)
	router.PATCH("/admin/orders/bulk-update", ctrl.AdminBulkUpdateStatus)
	router.GET("/admin/orders/export", ctrl.AdminExportOrders)

	return &orderControllerFixture{router: router, db: testDB, product: product}
}

func (f *orderControllerFixture) checkoutRequest(quantity int) CheckoutRequest {
	return CheckoutRequest{
		CustomerName:  "Priya Sharma",
		CustomerPhone: "9876543210",
		Address:       model.Address{Street: "12 MG Road", City: "Pune", State: "Maharashtra", Pincode: "411001"},
		PaymentMethod: "cod",
		Items:         []service.CheckoutItem{{ProductID: f.product.ID, Quantity: quantity}},
	}
}

func TestOrderController_Checkout_Success(t *testing.T) {
	f := setupOrderControllerTest(t)

	w := postJSON(f.router, "/orders/checkout", f.checkoutRequest(2))
	assert.Equal(t, http.StatusCreated, w.Code)

	var response struct {
		Order        model.Order `json:"order"`
		WhatsAppLink string      `json:"whatsapp_link"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.NotEmpty(t, response.Order.OrderNumber)
	assert.Equal(t, 998.0, response.Order.Subtotal)
	assert.Equal(t, 50.0, response.Order.DeliveryFee)
	assert.Contains(t, response.WhatsAppLink, "https://wa.me/")
}

func TestOrderController_Checkout_Errors(t *testing.T) {
	f := setupOrderControllerTest(t)

	// Body that fails binding.
	w := postJSON(f.router, "/orders/checkout", gin.H{"customer_name": "Priya"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Stock shortage maps to a conflict.
	w = postJSON(f.router, "/orders/checkout", f.checkoutRequest(99))
	assert.Equal(t, http.StatusConflict, w.Code)

	// Unknown product.
	req := f.checkoutRequest(1)
	req.Items = []service.CheckoutItem{{ProductID: 9999, Quantity: 1}}
	w = postJSON(f.router, "/orders/checkout", req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrderController_TrackOrder(t *testing.T) {
	f := setupOrderControllerTest(t)

	w := postJSON(f.router, "/orders/checkout", f.checkoutRequest(1))
	require.Equal(t, http.StatusCreated, w.Code)

	var placed struct {
		Order model.Order `json:"order"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &placed))

	w = postJSON(f.router, "/orders/track", TrackOrderRequest{
		OrderNumber: placed.Order.OrderNumber, Phone: "9876543210",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// Wrong phone is a forbidden lookup, not a 404, so order numbers alone
	// are not enough to read someone's order.
	w = postJSON(f.router, "/orders/track", TrackOrderRequest{
		OrderNumber: placed.Order.OrderNumber, Phone: "1112223334",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = postJSON(f.router, "/orders/track", TrackOrderRequest{
		OrderNumber: "PC-00000000-XXXXX", Phone: "9876543210",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrderController_CancelGuestOrder(t *testing.T) {
	f := setupOrderControllerTest(t)

	w := postJSON(f.router, "/orders/checkout", f.checkoutRequest(1))
	require.Equal(t, http.StatusCreated, w.Code)

	var placed struct {
		Order model.Order `json:"order"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &placed))

	cancelReq := TrackOrderRequest{OrderNumber: placed.Order.OrderNumber, Phone: "9876543210"}
	w = postJSON(f.router, "/orders/cancel", cancelReq)
	assert.Equal(t, http.StatusOK, w.Code)

	// Second cancel hits an already-cancelled order.
	w = postJSON(f.router, "/orders/cancel", cancelReq)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestOrderController_AdminBulkUpdateStatus(t *testing.T) {
	f := setupOrderControllerTest(t)

	var ids []uint
	for i := 0; i < 2; i++ {
		w := postJSON(f.router, "/orders/checkout", f.checkoutRequest(1))
		require.Equal(t, http.StatusCreated, w.Code)

		var placed struct {
			Order model.Order `json:"order"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &placed))
		ids = append(ids, placed.Order.ID)
	}

	w := patchJSON(f.router, "/admin/orders/bulk-update", BulkOrderStatusRequest{
		IDs: append(ids, 9999), Status: model.OrderStatusConfirmed,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.EqualValues(t, 2, response["modified_count"])

	w = patchJSON(f.router, "/admin/orders/bulk-update", BulkOrderStatusRequest{
		IDs: ids, Status: "teleported",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderController_AdminExportOrders(t *testing.T) {
	f := setupOrderControllerTest(t)

	w := postJSON(f.router, "/orders/checkout", f.checkoutRequest(1))
	require.Equal(t, http.StatusCreated, w.Code)

	req := httptest.NewRequest("GET", "/admin/orders/export", nil)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "orders-")
	assert.NotZero(t, rec.Body.Len())
}
