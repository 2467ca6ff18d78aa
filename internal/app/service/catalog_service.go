package service

import (
	"errors"

	"github.com/designxpo/poonam-cosmetics-backend/internal/app/model"
	"github.com/designxpo/poonam-cosmetics-backend/internal/app/repository"
	"github.com/designxpo/poonam-cosmetics-backend/pkg/util"
	"gorm.io/gorm"
)

// CatalogInput is shared by categories and brands: name plus presentation
// fields.
type CatalogInput struct {
	Name      string
	ImageURL  string
	SortOrder int
	Active    bool
}

type CatalogService interface {
	ListCategories(activeOnly bool) ([]model.Category, error)
	GetCategoryBySlug(slug string) (*model.Category, error)
	CreateCategory(input CatalogInput) (*model.Category, error)
	UpdateCategory(id uint, input CatalogInput) (*model.Category, error)
	DeleteCategory(id uint) error

	ListBrands(activeOnly bool) ([]model.Brand, error)
	GetBrandBySlug(slug string) (*model.Brand, error)
	CreateBrand(input CatalogInput) (*model.Brand, error)
	UpdateBrand(id uint, input CatalogInput) (*model.Brand, error)
	DeleteBrand(id uint) error
}

type catalogService struct {
	categoryRepo repository.CategoryRepository
	brandRepo    repository.BrandRepository
}

func NewCatalogService(categoryRepo repository.CategoryRepository, brandRepo repository.BrandRepository) CatalogService {
	return &catalogService{categoryRepo: categoryRepo, brandRepo: brandRepo}
}

func (s *catalogService) ListCategories(activeOnly bool) ([]model.Category, error) {
	return s.categoryRepo.FindAll(activeOnly)
}

func (s *catalogService) GetCategoryBySlug(slug string) (*model.Category, error) {
	category, err := s.categoryRepo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *catalogService) CreateCategory(input CatalogInput) (*model.Category, error) {
	category := &model.Category{
		Name:      input.Name,
		Slug:      util.Slugify(input.Name),
		ImageURL:  input.ImageURL,
		SortOrder: input.SortOrder,
		Active:    input.Active,
	}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *catalogService) UpdateCategory(id uint, input CatalogInput) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	if input.Name != category.Name {
		category.Slug = util.Slugify(input.Name)
	}
	category.Name = input.Name
	category.ImageURL = input.ImageURL
	category.SortOrder = input.SortOrder
	category.Active = input.Active

	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *catalogService) DeleteCategory(id uint) error {
	if _, err := s.categoryRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	return s.categoryRepo.Delete(id)
}

func (s *catalogService) ListBrands(activeOnly bool) ([]model.Brand, error) {
	return s.brandRepo.FindAll(activeOnly)
}

func (s *catalogService) GetBrandBySlug(slug string) (*model.Brand, error) {
	brand, err := s.brandRepo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBrandNotFound
		}
		return nil, err
	}
	return brand, nil
}

func (s *catalogService) CreateBrand(input CatalogInput) (*model.Brand, error) {
	brand := &model.Brand{
		Name:      input.Name,
		Slug:      util.Slugify(input.Name),
		ImageURL:  input.ImageURL,
		SortOrder: input.SortOrder,
		Active:    input.Active,
	}
	if err := s.brandRepo.Create(brand); err != nil {
		return nil, err
	}
	return brand, nil
}

func (s *catalogService) UpdateBrand(id uint, input CatalogInput) (*model.Brand, error) {
	brand, err := s.brandRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBrandNotFound
		}
		return nil, err
	}

	if input.Name != brand.Name {
		brand.Slug = util.Slugify(input.Name)
	}
	brand.Name = input.Name
	brand.ImageURL = input.ImageURL
	brand.SortOrder = input.SortOrder
	brand.Active = input.Active

	if err := s.brandRepo.Update(brand); err != nil {
		return nil, err
	}
	return brand, nil
}

func (s *catalogService) DeleteBrand(id uint) error {
	if _, err := s.brandRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBrandNotFound
		}
		return err
	}
	return s.brandRepo.Delete(id)
}
