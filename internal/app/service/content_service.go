package service

import (
	"errors"

	"github.com/designxpo/poonam-cosmetics-backend/internal/app/model"
	"github.com/designxpo/poonam-cosmetics-backend/internal/app/repository"
	"github.com/designxpo/poonam-cosmetics-backend/pkg/util"
	"gorm.io/gorm"
)

var (
	ErrBannerNotFound     = errors.New("banner not found")
	ErrPageBannerNotFound = errors.New("page banner not found")
	ErrCollectionNotFound = errors.New("collection not found")
)

// CollectionView is a collection with its member products resolved, kept in
// the curated order.
type CollectionView struct {
	model.FeaturedCollection
	Products []model.Product `json:"products"`
}

type ContentService interface {
	ListBanners(activeOnly bool) ([]model.Banner, error)
	CreateBanner(banner *model.Banner) error
	UpdateBanner(id uint, banner *model.Banner) (*model.Banner, error)
	DeleteBanner(id uint) error

	ListPageBanners() ([]model.PageBanner, error)
	GetPageBanner(page string) (*model.PageBanner, error)
	CreatePageBanner(banner *model.PageBanner) error
	UpdatePageBanner(id uint, banner *model.PageBanner) (*model.PageBanner, error)
	DeletePageBanner(id uint) error

	ListCollections(activeOnly bool) ([]model.FeaturedCollection, error)
	GetCollection(slug string) (*CollectionView, error)
	CreateCollection(collection *model.FeaturedCollection) error
	UpdateCollection(id uint, collection *model.FeaturedCollection) (*model.FeaturedCollection, error)
	DeleteCollection(id uint) error
}

type contentService struct {
	bannerRepo     repository.BannerRepository
	pageBannerRepo repository.PageBannerRepository
	collectionRepo repository.CollectionRepository
	productRepo    repository.ProductRepository
}

func NewContentService(
	bannerRepo repository.BannerRepository,
	pageBannerRepo repository.PageBannerRepository,
	collectionRepo repository.CollectionRepository,
	productRepo repository.ProductRepository,
) ContentService {
	return &contentService{
		bannerRepo:     bannerRepo,
		pageBannerRepo: pageBannerRepo,
		collectionRepo: collectionRepo,
		productRepo:    productRepo,
	}
}

func (s *contentService) ListBanners(activeOnly bool) ([]model.Banner, error) {
	return s.bannerRepo.FindAll(activeOnly)
}

func (s *contentService) CreateBanner(banner *model.Banner) error {
	return s.bannerRepo.Create(banner)
}

func (s *contentService) UpdateBanner(id uint, banner *model.Banner) (*model.Banner, error) {
	existing, err := s.bannerRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBannerNotFound
		}
		return nil, err
	}

	existing.Title = banner.Title
	existing.Subtitle = banner.Subtitle
	existing.ImageURL = banner.ImageURL
	existing.LinkURL = banner.LinkURL
	existing.SortOrder = banner.SortOrder
	existing.Active = banner.Active

	if err := s.bannerRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *contentService) DeleteBanner(id uint) error {
	if _, err := s.bannerRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBannerNotFound
		}
		return err
	}
	return s.bannerRepo.Delete(id)
}

func (s *contentService) ListPageBanners() ([]model.PageBanner, error) {
	return s.pageBannerRepo.FindAll()
}

func (s *contentService) GetPageBanner(page string) (*model.PageBanner, error) {
	banner, err := s.pageBannerRepo.FindByPage(page)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageBannerNotFound
		}
		return nil, err
	}
	return banner, nil
}

func (s *contentService) CreatePageBanner(banner *model.PageBanner) error {
	return s.pageBannerRepo.Create(banner)
}

func (s *contentService) UpdatePageBanner(id uint, banner *model.PageBanner) (*model.PageBanner, error) {
	existing, err := s.pageBannerRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageBannerNotFound
		}
		return nil, err
	}

	existing.Page = banner.Page
	existing.Title = banner.Title
	existing.ImageURL = banner.ImageURL
	existing.Active = banner.Active

	if err := s.pageBannerRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *contentService) DeletePageBanner(id uint) error {
	if _, err := s.pageBannerRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPageBannerNotFound
		}
		return err
	}
	return s.pageBannerRepo.Delete(id)
}

func (s *contentService) ListCollections(activeOnly bool) ([]model.FeaturedCollection, error) {
	return s.collectionRepo.FindAll(activeOnly)
}

// GetCollection resolves member products and returns them in the curated
// order, skipping products that were deleted or deactivated since curation.
func (s *contentService) GetCollection(slug string) (*CollectionView, error) {
	collection, err := s.collectionRepo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCollectionNotFound
		}
		return nil, err
	}

	products, err := s.productRepo.FindByIDs(collection.ProductIDs)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	view := &CollectionView{FeaturedCollection: *collection}
	for _, id := range collection.ProductIDs {
		if p, ok := byID[id]; ok && p.Active {
			view.Products = append(view.Products, p)
		}
	}
	return view, nil
}

func (s *contentService) CreateCollection(collection *model.FeaturedCollection) error {
	if collection.Slug == "" {
		collection.Slug = util.Slugify(collection.Name)
	}
	return s.collectionRepo.Create(collection)
}

func (s *contentService) UpdateCollection(id uint, collection *model.FeaturedCollection) (*model.FeaturedCollection, error) {
	existing, err := s.collectionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCollectionNotFound
		}
		return nil, err
	}

	if collection.Name != existing.Name {
		existing.Slug = util.Slugify(collection.Name)
	}
	existing.Name = collection.Name
	existing.ImageURL = collection.ImageURL
	existing.ProductIDs = collection.ProductIDs
	existing.SortOrder = collection.SortOrder
	existing.Active = collection.Active

	if err := s.collectionRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *contentService) DeleteCollection(id uint) error {
	if _, err := s.collectionRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCollectionNotFound
		}
		return err
	}
	return s.collectionRepo.Delete(id)
}
