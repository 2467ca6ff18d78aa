package controller

import (
	stderrors "errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/designxpo/poonam-cosmetics-backend/internal/app/model"
	"github.com/designxpo/poonam-cosmetics-backend/internal/app/repository"
	"github.com/designxpo/poonam-cosmetics-backend/internal/app/service"
	"github.com/designxpo/poonam-cosmetics-backend/internal/errors"
	"github.com/designxpo/poonam-cosmetics-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

const defaultPageSize = 20

type ProductController struct {
	productService service.ProductService
}

func NewProductController(productService service.ProductService) *ProductController {
	return &ProductController{productService: productService}
}

type ProductRequest struct {
	Name        string                `json:"name" binding:"required"`
	Description string                `json:"description"`
	Price       float64               `json:"price" binding:"required,gt=0"`
	CategoryID  uint                  `json:"category_id" binding:"required"`
	BrandID     *uint                 `json:"brand_id"`
	Images      []string              `json:"images"`
	Stock       int                   `json:"stock" binding:"min=0"`
	Featured    bool                  `json:"featured"`
	Active      bool                  `json:"active"`
	Features    model.ProductFeatures `json:"features"`
}

type BulkActionRequest struct {
	IDs    []uint `json:"ids" binding:"required"`
	Action string `json:"action" binding:"required"`
}

// parseFilter turns query parameters into a repository filter. Unknown sort
// values fall back to newest-first.
func parseFilter(c *gin.Context, activeOnly bool) repository.ProductFilter {
	filter := repository.ProductFilter{
		BrandSlug:  c.Query("brand"),
		Search:     c.Query("search"),
		SortBy:     repository.ProductSort(c.DefaultQuery("sort", string(repository.ProductSortNewest))),
		ActiveOnly: activeOnly,
		Limit:      defaultPageSize,
	}

	if categories := c.Query("category"); categories != "" {
		filter.CategorySlugs = strings.Split(categories, ",")
	}
	if v := c.Query("min_price"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinPrice = &f
		}
	}
	if v := c.Query("max_price"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxPrice = &f
		}
	}
	if v := c.Query("featured"); v != "" {
		featured := v == "true" || v == "1"
		filter.Featured = &featured
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			filter.Limit = n
		}
	}
	if v := c.Query("page"); v != "" {
		if page, err := strconv.Atoi(v); err == nil && page > 1 {
			filter.Offset = (page - 1) * filter.Limit
		}
	}
	return filter
}

// GetProducts lists active products for the storefront
// GET /api/v1/products
func (ctrl *ProductController) GetProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	filter := parseFilter(c, true)
	products, total, err := ctrl.productService.ListProducts(filter)
	if err != nil {
		log.Error("Failed to fetch products", err, map[string]interface{}{
			"search": filter.Search,
		})
		errors.InternalError(c, "Failed to fetch products")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"total":    total,
		"count":    len(products),
	})
}

// GetProductBySlug returns a single product for the detail page
// GET /api/v1/products/:slug
func (ctrl *ProductController) GetProductBySlug(c *gin.Context) {
	product, err := ctrl.productService.GetProductBySlug(c.Param("slug"))
	if err != nil {
		if stderrors.Is(err, service.ErrProductNotFound) {
			errors.NotFound(c, errors.ProductNotFound, "Product not found")
			return
		}
		errors.InternalError(c, "Failed to fetch product")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product": product,
	})
}

// AdminGetProducts lists all products including inactive ones
// GET /api/v1/admin/products
func (ctrl *ProductController) AdminGetProducts(c *gin.Context) {
	filter := parseFilter(c, false)
	products, total, err := ctrl.productService.ListProducts(filter)
	if err != nil {
		errors.InternalError(c, "Failed to fetch products")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"total":    total,
		"count":    len(products),
	})
}

// CreateProduct creates a product
// POST /api/v1/admin/products
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid product payload", map[string]interface{}{
			"error": err.Error(),
		})
		errors.BadRequest(c, errors.ValidationInvalidInput, "Invalid product data")
		return
	}

	product, err := ctrl.productService.CreateProduct(toProductInput(req))
	if err != nil {
		ctrl.respondProductError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"product": product,
	})
}

// UpdateProduct updates a product
// PUT /api/v1/admin/products/:id
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, "Invalid product data")
		return
	}

	product, err := ctrl.productService.UpdateProduct(id, toProductInput(req))
	if err != nil {
		ctrl.respondProductError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product": product,
	})
}

// DeleteProduct removes a product
// DELETE /api/v1/admin/products/:id
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.productService.DeleteProduct(id); err != nil {
		ctrl.respondProductError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product deleted",
	})
}

// BulkAction applies activate/deactivate/feature/unfeature/delete to a set of
// product IDs and reports how many rows actually changed
// PATCH /api/v1/admin/products/bulk
func (ctrl *ProductController) BulkAction(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req BulkActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, "Invalid bulk action data")
		return
	}

	var (
		count int64
		err   error
	)
	switch req.Action {
	case "activate":
		count, err = ctrl.productService.BulkSetActive(req.IDs, true)
	case "deactivate":
		count, err = ctrl.productService.BulkSetActive(req.IDs, false)
	case "feature":
		count, err = ctrl.productService.BulkSetFeatured(req.IDs, true)
	case "unfeature":
		count, err = ctrl.productService.BulkSetFeatured(req.IDs, false)
	case "delete":
		count, err = ctrl.productService.BulkDelete(req.IDs)
	default:
		errors.BadRequest(c, errors.ProductInvalidBulk, "Unknown bulk action")
		return
	}

	if err != nil {
		if stderrors.Is(err, service.ErrEmptyIDList) {
			errors.BadRequest(c, errors.ValidationEmptyIDList, "At least one product ID is required")
			return
		}
		log.Error("Bulk product action failed", err, map[string]interface{}{
			"action": req.Action,
			"ids":    req.IDs,
		})
		errors.InternalError(c, "Bulk action failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"modified_count": count,
	})
}

func (ctrl *ProductController) respondProductError(c *gin.Context, err error) {
	switch {
	case stderrors.Is(err, service.ErrProductNotFound):
		errors.NotFound(c, errors.ProductNotFound, "Product not found")
	case stderrors.Is(err, service.ErrCategoryNotFound):
		errors.BadRequest(c, errors.CategoryNotFound, "Category does not exist")
	case stderrors.Is(err, service.ErrBrandNotFound):
		errors.BadRequest(c, errors.BrandNotFound, "Brand does not exist")
	default:
		errors.InternalError(c, "Failed to save product")
	}
}

func toProductInput(req ProductRequest) service.ProductInput {
	return service.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		BrandID:     req.BrandID,
		Images:      req.Images,
		Stock:       req.Stock,
		Featured:    req.Featured,
		Active:      req.Active,
		Features:    req.Features,
	}
}

// parseIDParam parses the :id path parameter, responding with a 400 on
// failure.
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		errors.BadRequest(c, errors.ValidationInvalidID, "Invalid ID")
		return 0, false
	}
	return uint(id), true
}
