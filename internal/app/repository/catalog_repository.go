package repository

import (
	"github.com/designxpo/poonam-cosmetics-backend/internal/app/model"
	"gorm.io/gorm"
)

// CategoryRepository and BrandRepository are plain attribute-bag CRUD; the
// interesting querying happens through ProductFilter.

type CategoryRepository interface {
	Create(category *model.Category) error
	FindAll(activeOnly bool) ([]model.Category, error)
	FindByID(id uint) (*model.Category, error)
	FindBySlug(slug string) (*model.Category, error)
	Update(category *model.Category) error
	Delete(id uint) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *model.Category) error {
	return r.db.Create(category).Error
}

func (r *categoryRepository) FindAll(activeOnly bool) ([]model.Category, error) {
	query := r.db.Model(&model.Category{}).Order("sort_order ASC, name ASC")
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var categories []model.Category
	if err := query.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) FindByID(id uint) (*model.Category, error) {
	var category model.Category
	if err := r.db.First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindBySlug(slug string) (*model.Category, error) {
	var category model.Category
	if err := r.db.Where("slug = ?", slug).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) Update(category *model.Category) error {
	return r.db.Save(category).Error
}

func (r *categoryRepository) Delete(id uint) error {
	return r.db.Delete(&model.Category{}, id).Error
}

type BrandRepository interface {
	Create(brand *model.Brand) error
	FindAll(activeOnly bool) ([]model.Brand, error)
	FindByID(id uint) (*model.Brand, error)
	FindBySlug(slug string) (*model.Brand, error)
	Update(brand *model.Brand) error
	Delete(id uint) error
}

type brandRepository struct {
	db *gorm.DB
}

func NewBrandRepository(db *gorm.DB) BrandRepository {
	return &brandRepository{db: db}
}

func (r *brandRepository) Create(brand *model.Brand) error {
	return r.db.Create(brand).Error
}

func (r *brandRepository) FindAll(activeOnly bool) ([]model.Brand, error) {
	query := r.db.Model(&model.Brand{}).Order("sort_order ASC, name ASC")
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var brands []model.Brand
	if err := query.Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

func (r *brandRepository) FindByID(id uint) (*model.Brand, error) {
	var brand model.Brand
	if err := r.db.First(&brand, id).Error; err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *brandRepository) FindBySlug(slug string) (*model.Brand, error) {
	var brand model.Brand
	if err := r.db.Where("slug = ?", slug).First(&brand).Error; err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *brandRepository) Update(brand *model.Brand) error {
	return r.db.Save(brand).Error
}

func (r *brandRepository) Delete(id uint) error {
	return r.db.Delete(&model.Brand{}, id).Error
}
