package service

import (
	"errors"
	"fmt"

	"github.com/designxpo/poonam-cosmetics-backend/internal/app/model"
	"github.com/designxpo/poonam-cosmetics-backend/internal/app/repository"
	"github.com/designxpo/poonam-cosmetics-backend/pkg/logger"
	"github.com/designxpo/poonam-cosmetics-backend/pkg/util"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrBrandNotFound    = errors.New("brand not found")
	ErrEmptyIDList      = errors.New("id list is empty")
)

// ProductInput carries the admin create/update payload after binding.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	CategoryID  uint
	BrandID     *uint
	Images      []string
	Stock       int
	Featured    bool
	Active      bool
	Features    model.ProductFeatures
}

type ProductService interface {
	ListProducts(filter repository.ProductFilter) ([]model.Product, int64, error)
	GetProductByID(id uint) (*model.Product, error)
	GetProductBySlug(slug string) (*model.Product, error)
	CreateProduct(input ProductInput) (*model.Product, error)
	UpdateProduct(id uint, input ProductInput) (*model.Product, error)
	DeleteProduct(id uint) error
	BulkSetActive(ids []uint, active bool) (int64, error)
	BulkSetFeatured(ids []uint, featured bool) (int64, error)
	BulkDelete(ids []uint) (int64, error)
}

type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	brandRepo    repository.BrandRepository
}

func NewProductService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	brandRepo repository.BrandRepository,
) ProductService {
	return &productService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		brandRepo:    brandRepo,
	}
}

func (s *productService) ListProducts(filter repository.ProductFilter) ([]model.Product, int64, error) {
	return s.productRepo.FindWithFilter(filter)
}

func (s *productService) GetProductByID(id uint) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) GetProductBySlug(slug string) (*model.Product, error) {
	product, err := s.productRepo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) CreateProduct(input ProductInput) (*model.Product, error) {
	logger.Info("Creating product", map[string]interface{}{
		"name":        input.Name,
		"category_id": input.CategoryID,
	})

	if err := s.validateRefs(input); err != nil {
		return nil, err
	}

	slug, err := s.uniqueSlug(input.Name)
	if err != nil {
		return nil, err
	}

	product := &model.Product{
		Name:        input.Name,
		Slug:        slug,
		Description: input.Description,
		Price:       input.Price,
		CategoryID:  input.CategoryID,
		BrandID:     input.BrandID,
		Images:      input.Images,
		Stock:       input.Stock,
		Featured:    input.Featured,
		Active:      input.Active,
		Features:    input.Features,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}

	logger.Info("Product created", map[string]interface{}{
		"product_id": product.ID,
		"slug":       product.Slug,
	})
	return product, nil
}

func (s *productService) UpdateProduct(id uint, input ProductInput) (*model.Product, error) {
	product, err := s.GetProductByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.validateRefs(input); err != nil {
		return nil, err
	}

	// Re-slug only when the name changed so links keep working otherwise.
	if input.Name != product.Name {
		slug, err := s.uniqueSlug(input.Name)
		if err != nil {
			return nil, err
		}
		product.Slug = slug
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.CategoryID = input.CategoryID
	product.BrandID = input.BrandID
	product.Images = input.Images
	product.Stock = input.Stock
	product.Featured = input.Featured
	product.Active = input.Active
	product.Features = input.Features

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) DeleteProduct(id uint) error {
	if _, err := s.GetProductByID(id); err != nil {
		return err
	}
	return s.productRepo.Delete(id)
}

func (s *productService) BulkSetActive(ids []uint, active bool) (int64, error) {
	if len(ids) == 0 {
		return 0, ErrEmptyIDList
	}
	count, err := s.productRepo.BulkSetActive(ids, active)
	if err != nil {
		return 0, err
	}
	logger.Info("Bulk product active update", map[string]interface{}{
		"requested": len(ids),
		"modified":  count,
		"active":    active,
	})
	return count, nil
}

func (s *productService) BulkSetFeatured(ids []uint, featured bool) (int64, error) {
	if len(ids) == 0 {
		return 0, ErrEmptyIDList
	}
	count, err := s.productRepo.BulkSetFeatured(ids, featured)
	if err != nil {
		return 0, err
	}
	logger.Info("Bulk product featured update", map[string]interface{}{
		"requested": len(ids),
		"modified":  count,
		"featured":  featured,
	})
	return count, nil
}

func (s *productService) BulkDelete(ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, ErrEmptyIDList
	}
	count, err := s.productRepo.BulkDelete(ids)
	if err != nil {
		return 0, err
	}
	logger.Info("Bulk product delete", map[string]interface{}{
		"requested": len(ids),
		"modified":  count,
	})
	return count, nil
}

func (s *productService) validateRefs(input ProductInput) error {
	if _, err := s.categoryRepo.FindByID(input.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	if input.BrandID != nil {
		if _, err := s.brandRepo.FindByID(*input.BrandID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBrandNotFound
			}
			return err
		}
	}
	return nil
}

// uniqueSlug slugifies the name and appends -2, -3, ... until the slug is
// free.
func (s *productService) uniqueSlug(name string) (string, error) {
	base := util.Slugify(name)
	slug := base
	for i := 2; ; i++ {
		exists, err := s.productRepo.SlugExists(slug)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
