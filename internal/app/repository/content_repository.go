package repository

import (
	"github.com/designxpo/poonam-cosmetics-backend/internal/app/model"
	"gorm.io/gorm"
)

// Content repositories back the static storefront chrome: hero banners,
// per-page banners and featured collections.

type BannerRepository interface {
	Create(banner *model.Banner) error
	FindAll(activeOnly bool) ([]model.Banner, error)
	FindByID(id uint) (*model.Banner, error)
	Update(banner *model.Banner) error
	Delete(id uint) error
}

type bannerRepository struct {
	db *gorm.DB
}

func NewBannerRepository(db *gorm.DB) BannerRepository {
	return &bannerRepository{db: db}
}

func (r *bannerRepository) Create(banner *model.Banner) error {
	return r.db.Create(banner).Error
}

func (r *bannerRepository) FindAll(activeOnly bool) ([]model.Banner, error) {
	query := r.db.Model(&model.Banner{}).Order("sort_order ASC, created_at DESC")
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var banners []model.Banner
	if err := query.Find(&banners).Error; err != nil {
		return nil, err
	}
	return banners, nil
}

func (r *bannerRepository) FindByID(id uint) (*model.Banner, error) {
	var banner model.Banner
	if err := r.db.First(&banner, id).Error; err != nil {
		return nil, err
	}
	return &banner, nil
}

func (r *bannerRepository) Update(banner *model.Banner) error {
	return r.db.Save(banner).Error
}

func (r *bannerRepository) Delete(id uint) error {
	return r.db.Delete(&model.Banner{}, id).Error
}

type PageBannerRepository interface {
	Create(banner *model.PageBanner) error
	FindAll() ([]model.PageBanner, error)
	FindByID(id uint) (*model.PageBanner, error)
	FindByPage(page string) (*model.PageBanner, error)
	Update(banner *model.PageBanner) error
	Delete(id uint) error
}

type pageBannerRepository struct {
	db *gorm.DB
}

func NewPageBannerRepository(db *gorm.DB) PageBannerRepository {
	return &pageBannerRepository{db: db}
}

func (r *pageBannerRepository) Create(banner *model.PageBanner) error {
	return r.db.Create(banner).Error
}

func (r *pageBannerRepository) FindAll() ([]model.PageBanner, error) {
	var banners []model.PageBanner
	if err := r.db.Order("page ASC").Find(&banners).Error; err != nil {
		return nil, err
	}
	return banners, nil
}

func (r *pageBannerRepository) FindByID(id uint) (*model.PageBanner, error) {
	var banner model.PageBanner
	if err := r.db.First(&banner, id).Error; err != nil {
		return nil, err
	}
	return &banner, nil
}

func (r *pageBannerRepository) FindByPage(page string) (*model.PageBanner, error) {
	var banner model.PageBanner
	if err := r.db.Where("page = ? AND active = ?", page, true).First(&banner).Error; err != nil {
		return nil, err
	}
	return &banner, nil
}

func (r *pageBannerRepository) Update(banner *model.PageBanner) error {
	return r.db.Save(banner).Error
}

func (r *pageBannerRepository) Delete(id uint) error {
	return r.db.Delete(&model.PageBanner{}, id).Error
}

type CollectionRepository interface {
	Create(collection *model.FeaturedCollection) error
	FindAll(activeOnly bool) ([]model.FeaturedCollection, error)
	FindByID(id uint) (*model.FeaturedCollection, error)
	FindBySlug(slug string) (*model.FeaturedCollection, error)
	Update(collection *model.FeaturedCollection) error
	Delete(id uint) error
}

type collectionRepository struct {
	db *gorm.DB
}

func NewCollectionRepository(db *gorm.DB) CollectionRepository {
	return &collectionRepository{db: db}
}

func (r *collectionRepository) Create(collection *model.FeaturedCollection) error {
	return r.db.Create(collection).Error
}

func (r *collectionRepository) FindAll(activeOnly bool) ([]model.FeaturedCollection, error) {
	query := r.db.Model(&model.FeaturedCollection{}).Order("sort_order ASC, name ASC")
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var collections []model.FeaturedCollection
	if err := query.Find(&collections).Error; err != nil {
		return nil, err
	}
	return collections, nil
}

func (r *collectionRepository) FindByID(id uint) (*model.FeaturedCollection, error) {
	var collection model.FeaturedCollection
	if err := r.db.First(&collection, id).Error; err != nil {
		return nil, err
	}
	return &collection, nil
}

func (r *collectionRepository) FindBySlug(slug string) (*model.FeaturedCollection, error) {
	var collection model.FeaturedCollection
	if err := r.db.Where("slug = ?", slug).First(&collection).Error; err != nil {
		return nil, err
	}
	return &collection, nil
}

func (r *collectionRepository) Update(collection *model.FeaturedCollection) error {
	return r.db.Save(collection).Error
}

func (r *collectionRepository) Delete(id uint) error {
	return r.db.Delete(&model.FeaturedCollection{}, id).Error
}
