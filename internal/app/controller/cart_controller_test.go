package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/designxpo/poonam-cosmetics-backend/internal/app/model"
	"github.com/designxpo/poonam-cosmetics-backend/internal/app/repository"
	"github.com/designxpo/poonam-cosmetics-backend/internal/app/service"
	"github.com/designxpo/poonam-cosmetics-backend/internal/db"
	"github.com/designxpo/poonam-cosmetics-backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// asUser stands in for the auth middleware in tests.
func asUser(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Next()
	}
}

type cartControllerFixture struct {
	router  *gin.Engine
	db      *gorm.DB
	product model.Product
}

func setupCartControllerTest(t *testing.T) *cartControllerFixture {
	gin.SetMode(gin.TestMode)

	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	category := model.Category{Name: "Lipstick", Slug: "lipstick", Active: true}
	require.NoError(t, testDB.Create(&category).Error)
	product := model.Product{
		Name: "Matte Lipstick", Slug: "matte-lipstick", Price: 499,
		CategoryID: category.ID, Stock: 5, Active: true,
	}
	require.NoError(t, testDB.Create(&product).Error)

	cartService := service.NewCartService(
		repository.NewCartRepository(testDB),
		repository.NewProductRepository(testDB),
	)
	ctrl := NewCartController(cartService)

	router := gin.New()
	authed := router.Group("", asUser(1))
	authed.GET("/cart", ctrl.GetCart)
	authed.POST("/cart/items", ctrl.AddItem)
	authed.PUT("/cart/items/:id", ctrl.UpdateItem)
	authed.DELETE("/cart/items/:id", ctrl.RemoveItem)
	authed.DELETE("/cart", ctrl.ClearCart)

	return &cartControllerFixture{router: router, db: testDB, product: product}
}

func TestCartController_AddItem(t *testing.T) {
	f := setupCartControllerTest(t)

	w := postJSON(f.router, "/cart/items", AddToCartRequest{ProductID: f.product.ID, Quantity: 2})
	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.EqualValues(t, 2, response["item"]["quantity"])

	// Repeats merge into the same line.
	w = postJSON(f.router, "/cart/items", AddToCartRequest{ProductID: f.product.ID, Quantity: 3})
	assert.Equal(t, http.StatusCreated, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.EqualValues(t, 5, response["item"]["quantity"])

	w = postJSON(f.router, "/cart/items", AddToCartRequest{ProductID: f.product.ID, Quantity: 1})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = postJSON(f.router, "/cart/items", AddToCartRequest{ProductID: 9999, Quantity: 1})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = postJSON(f.router, "/cart/items", gin.H{"product_id": f.product.ID, "quantity": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartController_GetCart(t *testing.T) {
	f := setupCartControllerTest(t)

	w := postJSON(f.router, "/cart/items", AddToCartRequest{ProductID: f.product.ID, Quantity: 2})
	require.Equal(t, http.StatusCreated, w.Code)

	req := httptest.NewRequest("GET", "/cart", nil)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Cart struct {
			Items    []model.CartItem `json:"items"`
			Subtotal float64          `json:"subtotal"`
		} `json:"cart"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Len(t, response.Cart.Items, 1)
	assert.Equal(t, 998.0, response.Cart.Subtotal)
}

func TestCartController_UpdateAndRemove(t *testing.T) {
	f := setupCartControllerTest(t)

	w := postJSON(f.router, "/cart/items", AddToCartRequest{ProductID: f.product.ID, Quantity: 1})
	require.Equal(t, http.StatusCreated, w.Code)

	var created map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	itemID := uint(created["item"]["id"].(float64))

	body := UpdateCartItemRequest{Quantity: 3}
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest("PUT", fmt.Sprintf("/cart/items/%d", itemID), bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest("DELETE", fmt.Sprintf("/cart/items/%d", itemID), nil)
	rec = httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest("DELETE", fmt.Sprintf("/cart/items/%d", itemID), nil)
	rec = httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartController_ClearCart(t *testing.T) {
	f := setupCartControllerTest(t)

	w := postJSON(f.router, "/cart/items", AddToCartRequest{ProductID: f.product.ID, Quantity: 2})
	require.Equal(t, http.StatusCreated, w.Code)

	req := httptest.NewRequest("DELETE", "/cart", nil)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest("GET", "/cart", nil)
	rec = httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	var response struct {
		Cart struct {
			Items []model.CartItem `json:"items"`
		} `json:"cart"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Empty(t, response.Cart.Items)
}
