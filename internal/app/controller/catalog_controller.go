package controller

import (
	stderrors "errors"
	"net/http"

	"github.com/designxpo/poonam-cosmetics-backend/internal/app/service"
	"github.com/designxpo/poonam-cosmetics-backend/internal/errors"
	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	catalogService service.CatalogService
}

func NewCatalogController(catalogService service.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

type CatalogRequest struct {
	Name      string `json:"name" binding:"required"`
	ImageURL  string `json:"image_url"`
	SortOrder int    `json:"sort_order"`
	Active    bool   `json:"active"`
}

func (r CatalogRequest) toInput() service.CatalogInput {
	return service.CatalogInput{
		Name:      r.Name,
		ImageURL:  r.ImageURL,
		SortOrder: r.SortOrder,
		Active:    r.Active,
	}
}

// GetCategories lists active categories ordered for the nav
// GET /api/v1/categories
func (ctrl *CatalogController) GetCategories(c *gin.Context) {
	categories, err := ctrl.catalogService.ListCategories(true)
	if err != nil {
		errors.InternalError(c, "Failed to fetch categories")
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// AdminGetCategories lists all categories including inactive
// GET /api/v1/admin/categories
func (ctrl *CatalogController) AdminGetCategories(c *gin.Context) {
	categories, err := ctrl.catalogService.ListCategories(false)
	if err != nil {
		errors.InternalError(c, "Failed to fetch categories")
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// CreateCategory creates a category
// POST /api/v1/admin/categories
func (ctrl *CatalogController) CreateCategory(c *gin.Context) {
	var req CatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, "Category name is required")
		return
	}

	category, err := ctrl.catalogService.CreateCategory(req.toInput())
	if err != nil {
		errors.InternalError(c, "Failed to create category")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"category": category})
}

// UpdateCategory updates a category
// PUT /api/v1/admin/categories/:id
func (ctrl *CatalogController) UpdateCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req CatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, "Category name is required")
		return
	}

	category, err := ctrl.catalogService.UpdateCategory(id, req.toInput())
	if err != nil {
		if stderrors.Is(err, service.ErrCategoryNotFound) {
			errors.NotFound(c, errors.CategoryNotFound, "Category not found")
			return
		}
		errors.InternalError(c, "Failed to update category")
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": category})
}

// DeleteCategory removes a category
// DELETE /api/v1/admin/categories/:id
func (ctrl *CatalogController) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.catalogService.DeleteCategory(id); err != nil {
		if stderrors.Is(err, service.ErrCategoryNotFound) {
			errors.NotFound(c, errors.CategoryNotFound, "Category not found")
			return
		}
		errors.InternalError(c, "Failed to delete category")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}

// GetBrands lists active brands
// GET /api/v1/brands
func (ctrl *CatalogController) GetBrands(c *gin.Context) {
	brands, err := ctrl.catalogService.ListBrands(true)
	if err != nil {
		errors.InternalError(c, "Failed to fetch brands")
		return
	}
	c.JSON(http.StatusOK, gin.H{"brands": brands})
}

// AdminGetBrands lists all brands including inactive
// GET /api/v1/admin/brands
func (ctrl *CatalogController) AdminGetBrands(c *gin.Context) {
	brands, err := ctrl.catalogService.ListBrands(false)
	if err != nil {
		errors.InternalError(c, "Failed to fetch brands")
		return
	}
	c.JSON(http.StatusOK, gin.H{"brands": brands})
}

// CreateBrand creates a brand
// POST /api/v1/admin/brands
func (ctrl *CatalogController) CreateBrand(c *gin.Context) {
	var req CatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, "Brand name is required")
		return
	}

	brand, err := ctrl.catalogService.CreateBrand(req.toInput())
	if err != nil {
		errors.InternalError(c, "Failed to create brand")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"brand": brand})
}

// UpdateBrand updates a brand
// PUT /api/v1/admin/brands/:id
func (ctrl *CatalogController) UpdateBrand(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req CatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, "Brand name is required")
		return
	}

	brand, err := ctrl.catalogService.UpdateBrand(id, req.toInput())
	if err != nil {
		if stderrors.Is(err, service.ErrBrandNotFound) {
			errors.NotFound(c, errors.BrandNotFound, "Brand not found")
			return
		}
		errors.InternalError(c, "Failed to update brand")
		return
	}
	c.JSON(http.StatusOK, gin.H{"brand": brand})
}

// DeleteBrand removes a brand
// DELETE /api/v1/admin/brands/:id
func (ctrl *CatalogController) DeleteBrand(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.catalogService.DeleteBrand(id); err != nil {
		if stderrors.Is(err, service.ErrBrandNotFound) {
			errors.NotFound(c, errors.BrandNotFound, "Brand not found")
			return
		}
		errors.InternalError(c, "Failed to delete brand")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Brand deleted"})
}
