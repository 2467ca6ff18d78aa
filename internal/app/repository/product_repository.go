package repository

import (
	"fmt"

	"github.com/designxpo/poonam-cosmetics-backend/internal/app/model"
	"github.com/designxpo/poonam-cosmetics-backend/pkg/logger"
	"gorm.io/gorm"
)

type ProductSort string

const (
	ProductSortNewest    ProductSort = "createdAt"
	ProductSortPriceAsc  ProductSort = "price-asc"
	ProductSortPriceDesc ProductSort = "price-desc"
	ProductSortNameAsc   ProductSort = "name-asc"
	ProductSortNameDesc  ProductSort = "name-desc"
)

// ProductFilter is the parsed catalog query. CategorySlugs use OR semantics;
// a min price above the max is passed through as given and simply matches
// nothing.
type ProductFilter struct {
	CategorySlugs []string
	BrandSlug     string
	Search        string
	MinPrice      *float64
	MaxPrice      *float64
	Featured      *bool
	ActiveOnly    bool
	SortBy        ProductSort
	Limit         int
	Offset        int
}

type ProductRepository interface {
	Create(product *model.Product) error
	FindWithFilter(filter ProductFilter) ([]model.Product, int64, error)
	FindByID(id uint) (*model.Product, error)
	FindBySlug(slug string) (*model.Product, error)
	FindByIDs(ids []uint) ([]model.Product, error)
	SlugExists(slug string) (bool, error)
	Update(product *model.Product) error
	Delete(id uint) error
	BulkSetActive(ids []uint, active bool) (int64, error)
	BulkSetFeatured(ids []uint, featured bool) (int64, error)
	BulkDelete(ids []uint) (int64, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(product *model.Product) error {
	logger.Debug("Creating product in database", map[string]interface{}{
		"name":        product.Name,
		"slug":        product.Slug,
		"category_id": product.CategoryID,
	})

	if err := r.db.Create(product).Error; err != nil {
		logger.Error("Failed to create product in database", err, map[string]interface{}{
			"name": product.Name,
			"slug": product.Slug,
		})
		return err
	}

	logger.Debug("Product created in database", map[string]interface{}{
		"product_id": product.ID,
		"slug":       product.Slug,
	})
	return nil
}

func (r *productRepository) baseQuery() *gorm.DB {
	return r.db.Model(&model.Product{}).
		Preload("Category").
		Preload("Brand")
}

func (r *productRepository) FindWithFilter(filter ProductFilter) ([]model.Product, int64, error) {
	logger.Debug("Finding products with filter", map[string]interface{}{
		"categories": filter.CategorySlugs,
		"brand":      filter.BrandSlug,
		"search":     filter.Search,
		"sort_by":    filter.SortBy,
		"limit":      filter.Limit,
		"offset":     filter.Offset,
	})

	query := r.baseQuery()

	if filter.ActiveOnly {
		query = query.Where("products.active = ?", true)
	}

	if len(filter.CategorySlugs) > 0 {
		query = query.Joins("JOIN categories ON categories.id = products.category_id").
			Where("categories.slug IN ?", filter.CategorySlugs)
	}

	if filter.BrandSlug != "" {
		query = query.Joins("JOIN brands ON brands.id = products.brand_id").
			Where("brands.slug = ?", filter.BrandSlug)
	}

	if filter.Search != "" {
		like := fmt.Sprintf("%%%s%%", filter.Search)
		query = query.Where("products.name LIKE ? OR products.description LIKE ?", like, like)
	}

	if filter.MinPrice != nil {
		query = query.Where("products.price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("products.price <= ?", *filter.MaxPrice)
	}

	if filter.Featured != nil {
		query = query.Where("products.featured = ?", *filter.Featured)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		logger.Error("Failed to count products with filter", err, map[string]interface{}{
			"search": filter.Search,
		})
		return nil, 0, err
	}

	switch filter.SortBy {
	case ProductSortPriceAsc:
		query = query.Order("products.price ASC")
	case ProductSortPriceDesc:
		query = query.Order("products.price DESC")
	case ProductSortNameAsc:
		query = query.Order("products.name ASC")
	case ProductSortNameDesc:
		query = query.Order("products.name DESC")
	case ProductSortNewest:
		fallthrough
	default:
		query = query.Order("products.created_at DESC")
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var products []model.Product
	if err := query.Find(&products).Error; err != nil {
		logger.Error("Failed to find products with filter", err, map[string]interface{}{
			"categories": filter.CategorySlugs,
			"search":     filter.Search,
		})
		return nil, 0, err
	}

	logger.Debug("Products found with filter", map[string]interface{}{
		"count": len(products),
		"total": total,
	})
	return products, total, nil
}

func (r *productRepository) FindByID(id uint) (*model.Product, error) {
	var product model.Product
	if err := r.baseQuery().First(&product, id).Error; err != nil {
		logger.Debug("Failed to find product by ID in database", map[string]interface{}{
			"product_id": id,
			"error":      err.Error(),
		})
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) FindBySlug(slug string) (*model.Product, error) {
	var product model.Product
	if err := r.baseQuery().Where("products.slug = ?", slug).First(&product).Error; err != nil {
		logger.Debug("Failed to find product by slug in database", map[string]interface{}{
			"slug":  slug,
			"error": err.Error(),
		})
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) FindByIDs(ids []uint) ([]model.Product, error) {
	if len(ids) == 0 {
		return []model.Product{}, nil
	}

	var products []model.Product
	if err := r.baseQuery().Where("products.id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) SlugExists(slug string) (bool, error) {
	var count int64
	if err := r.db.Model(&model.Product{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *productRepository) Update(product *model.Product) error {
	logger.Debug("Updating product in database", map[string]interface{}{
		"product_id": product.ID,
		"slug":       product.Slug,
	})

	if err := r.db.Save(product).Error; err != nil {
		logger.Error("Failed to update product in database", err, map[string]interface{}{
			"product_id": product.ID,
		})
		return err
	}
	return nil
}

func (r *productRepository) Delete(id uint) error {
	logger.Debug("Deleting product from database", map[string]interface{}{
		"product_id": id,
	})

	if err := r.db.Delete(&model.Product{}, id).Error; err != nil {
		logger.Error("Failed to delete product from database", err, map[string]interface{}{
			"product_id": id,
		})
		return err
	}
	return nil
}

func (r *productRepository) bulkUpdate(ids []uint, column string, value interface{}) (int64, error) {
	result := r.db.Model(&model.Product{}).Where("id IN ?", ids).Update(column, value)
	if result.Error != nil {
		logger.Error("Failed to bulk update products in database", result.Error, map[string]interface{}{
			"column":   column,
			"id_count": len(ids),
		})
		return 0, result.Error
	}

	logger.Debug("Products bulk updated in database", map[string]interface{}{
		"column":         column,
		"id_count":       len(ids),
		"modified_count": result.RowsAffected,
	})
	return result.RowsAffected, nil
}

func (r *productRepository) BulkSetActive(ids []uint, active bool) (int64, error) {
	return r.bulkUpdate(ids, "active", active)
}

func (r *productRepository) BulkSetFeatured(ids []uint, featured bool) (int64, error) {
	return r.bulkUpdate(ids, "featured", featured)
}

func (r *productRepository) BulkDelete(ids []uint) (int64, error) {
	result := r.db.Where("id IN ?", ids).Delete(&model.Product{})
	if result.Error != nil {
		logger.Error("Failed to bulk delete products in database", result.Error, map[string]interface{}{
			"id_count": len(ids),
		})
		return 0, result.Error
	}

	logger.Debug("Products bulk deleted in database", map[string]interface{}{
		"id_count":       len(ids),
		"modified_count": result.RowsAffected,
	})
	return result.RowsAffected, nil
}
