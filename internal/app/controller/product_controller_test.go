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
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type productControllerFixture struct {
	router   *gin.Engine
	db       *gorm.DB
	category model.Category
}

func setupProductControllerTest(t *testing.T) *productControllerFixture {
	gin.SetMode(gin.TestMode)

	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	category := model.Category{Name: "Lipstick", Slug: "lipstick", Active: true}
	require.NoError(t, testDB.Create(&category).Error)

	productService := service.NewProductService(
		repository.NewProductRepository(testDB),
		repository.NewCategoryRepository(testDB),
		repository.NewBrandRepository(testDB),
	)
	ctrl := NewProductController(productService)

	router := gin.New()
	router.GET("/products", ctrl.GetProducts)
	router.GET("/products/:slug", ctrl.GetProductBySlug)
	router.GET("/admin/products", ctrl.AdminGetProducts)
	router.POST("/admin/products", ctrl.CreateProduct)
	router.PATCH("/admin/products/bulk", ctrl.BulkAction)

	return &productControllerFixture{router: router, db: testDB, category: category}
}

func (f *productControllerFixture) seedProduct(t *testing.T, name, slug string, active bool) model.Product {
	product := model.Product{
		Name: name, Slug: slug, Price: 499,
		CategoryID: f.category.ID, Stock: 10, Active: active,
	}
	require.NoError(t, f.db.Create(&product).Error)
	return product
}

func getJSON(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestProductController_GetProducts_ActiveOnly(t *testing.T) {
	f := setupProductControllerTest(t)
	f.seedProduct(t, "Matte Lipstick", "matte-lipstick", true)
	f.seedProduct(t, "Old Gloss", "old-gloss", false)

	w := getJSON(f.router, "/products")
	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Products []model.Product `json:"products"`
		Total    int64           `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Products, 1)
	assert.Equal(t, "matte-lipstick", response.Products[0].Slug)

	// The admin listing includes inactive products.
	w = getJSON(f.router, "/admin/products")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.Products, 2)
}

func TestProductController_GetProductBySlug(t *testing.T) {
	f := setupProductControllerTest(t)
	f.seedProduct(t, "Matte Lipstick", "matte-lipstick", true)

	w := getJSON(f.router, "/products/matte-lipstick")
	assert.Equal(t, http.StatusOK, w.Code)

	w = getJSON(f.router, "/products/no-such-product")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProductController_GetProducts_Filters(t *testing.T) {
	f := setupProductControllerTest(t)
	f.seedProduct(t, "Matte Lipstick", "matte-lipstick", true)
	serum := model.Product{
		Name: "Vitamin C Serum", Slug: "vitamin-c-serum", Price: 1200,
		CategoryID: f.category.ID, Stock: 5, Active: true, Featured: true,
	}
	require.NoError(t, f.db.Create(&serum).Error)

	w := getJSON(f.router, "/products?min_price=1000")
	var response struct {
		Products []model.Product `json:"products"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Products, 1)
	assert.Equal(t, "vitamin-c-serum", response.Products[0].Slug)

	w = getJSON(f.router, "/products?featured=true")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Products, 1)
	assert.Equal(t, "vitamin-c-serum", response.Products[0].Slug)

	w = getJSON(f.router, "/products?search=serum")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.Products, 1)
}

func TestProductController_CreateProduct(t *testing.T) {
	f := setupProductControllerTest(t)

	w := postJSON(f.router, "/admin/products", ProductRequest{
		Name: "Rose Toner", Price: 350, CategoryID: f.category.ID, Stock: 20, Active: true,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "rose-toner", response["product"]["slug"])

	// Unknown category is rejected before anything is written.
	w = postJSON(f.router, "/admin/products", ProductRequest{
		Name: "Ghost", Price: 100, CategoryID: 9999, Active: true,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Price must be positive.
	w = postJSON(f.router, "/admin/products", ProductRequest{
		Name: "Freebie", Price: 0, CategoryID: f.category.ID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductController_BulkAction(t *testing.T) {
	f := setupProductControllerTest(t)
	p1 := f.seedProduct(t, "Serum One", "serum-one", true)
	p2 := f.seedProduct(t, "Serum Two", "serum-two", true)

	w := patchJSON(f.router, "/admin/products/bulk", BulkActionRequest{
		IDs: []uint{p1.ID, p2.ID, 9999}, Action: "deactivate",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.EqualValues(t, 2, response["modified_count"])

	w = patchJSON(f.router, "/admin/products/bulk", BulkActionRequest{
		IDs: []uint{p1.ID}, Action: "vaporize",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = patchJSON(f.router, "/admin/products/bulk", BulkActionRequest{
		IDs: []uint{}, Action: "delete",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
