package controller

import (
	stderrors "errors"
	"net/http"

	"github.com/designxpo/poonam-cosmetics-backend/internal/app/model"
	"github.com/designxpo/poonam-cosmetics-backend/internal/app/service"
	"github.com/designxpo/poonam-cosmetics-backend/internal/errors"
	"github.com/gin-gonic/gin"
)

type ContentController struct {
	contentService service.ContentService
}

func NewContentController(contentService service.ContentService) *ContentController {
	return &ContentController{contentService: contentService}
}

type BannerRequest struct {
	Title     string `json:"title" binding:"required"`
	Subtitle  string `json:"subtitle"`
	ImageURL  string `json:"image_url" binding:"required"`
	LinkURL   string `json:"link_url"`
	SortOrder int    `json:"sort_order"`
	Active    bool   `json:"active"`
}

type PageBannerRequest struct {
	Page     string `json:"page" binding:"required"`
	Title    string `json:"title"`
	ImageURL string `json:"image_url" binding:"required"`
	Active   bool   `json:"active"`
}

type CollectionRequest struct {
	Name       string `json:"name" binding:"required"`
	ImageURL   string `json:"image_url"`
	ProductIDs []uint `json:"product_ids"`
	SortOrder  int    `json:"sort_order"`
	Active     bool   `json:"active"`
}

// GetBanners lists active hero banners for the homepage
// GET /api/v1/banners
func (ctrl *ContentController) GetBanners(c *gin.Context) {
	banners, err := ctrl.contentService.ListBanners(true)
	if err != nil {
		errors.InternalError(c, "Failed to fetch banners")
		return
	}
	c.JSON(http.StatusOK, gin.H{"banners": banners})
}

// AdminGetBanners lists all banners
// GET /api/v1/admin/banners
func (ctrl *ContentController) AdminGetBanners(c *gin.Context) {
	banners, err := ctrl.contentService.ListBanners(false)
	if err != nil {
		errors.InternalError(c, "Failed to fetch banners")
		return
	}
	c.JSON(http.StatusOK, gin.H{"banners": banners})
}

// CreateBanner creates a hero banner
// POST /api/v1/admin/banners
func (ctrl *ContentController) CreateBanner(c *gin.Context) {
	var req BannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, "Title and image are required")
		return
	}

	banner := &model.Banner{
		Title:     req.Title,
		Subtitle:  req.Subtitle,
		ImageURL:  req.ImageURL,
		LinkURL:   req.LinkURL,
		SortOrder: req.SortOrder,
		Active:    req.Active,
	}
	if err := ctrl.contentService.CreateBanner(banner); err != nil {
		errors.InternalError(c, "Failed to create banner")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"banner": banner})
}

// UpdateBanner updates a hero banner
// PUT /api/v1/admin/banners/:id
func (ctrl *ContentController) UpdateBanner(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req BannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, "Title and image are required")
		return
	}

	banner, err := ctrl.contentService.UpdateBanner(id, &model.Banner{
		Title:     req.Title,
		Subtitle:  req.Subtitle,
		ImageURL:  req.ImageURL,
		LinkURL:   req.LinkURL,
		SortOrder: req.SortOrder,
		Active:    req.Active,
	})
	if err != nil {
		if stderrors.Is(err, service.ErrBannerNotFound) {
			errors.NotFound(c, errors.BannerNotFound, "Banner not found")
			return
		}
		errors.InternalError(c, "Failed to update banner")
		return
	}
	c.JSON(http.StatusOK, gin.H{"banner": banner})
}

// DeleteBanner removes a hero banner
// DELETE /api/v1/admin/banners/:id
func (ctrl *ContentController) DeleteBanner(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.contentService.DeleteBanner(id); err != nil {
		if stderrors.Is(err, service.ErrBannerNotFound) {
			errors.NotFound(c, errors.BannerNotFound, "Banner not found")
			return
		}
		errors.InternalError(c, "Failed to delete banner")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Banner deleted"})
}

// GetPageBanner returns the banner strip for a named page
// GET /api/v1/page-banners/:page
func (ctrl *ContentController) GetPageBanner(c *gin.Context) {
	banner, err := ctrl.contentService.GetPageBanner(c.Param("page"))
	if err != nil {
		if stderrors.Is(err, service.ErrPageBannerNotFound) {
			errors.NotFound(c, errors.PageBannerNotFound, "Page banner not found")
			return
		}
		errors.InternalError(c, "Failed to fetch page banner")
		return
	}
	c.JSON(http.StatusOK, gin.H{"page_banner": banner})
}

// AdminGetPageBanners lists all page banners
// GET /api/v1/admin/page-banners
func (ctrl *ContentController) AdminGetPageBanners(c *gin.Context) {
	banners, err := ctrl.contentService.ListPageBanners()
	if err != nil {
		errors.InternalError(c, "Failed to fetch page banners")
		return
	}
	c.JSON(http.StatusOK, gin.H{"page_banners": banners})
}

// CreatePageBanner creates a page banner; one per page
// POST /api/v1/admin/page-banners
func (ctrl *ContentController) CreatePageBanner(c *gin.Context) {
	var req PageBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, "Page and image are required")
		return
	}

	banner := &model.PageBanner{
		Page:     req.Page,
		Title:    req.Title,
		ImageURL: req.ImageURL,
		Active:   req.Active,
	}
	if err := ctrl.contentService.CreatePageBanner(banner); err != nil {
		info := errors.ParseError(err, "page banner")
		if info.Code == errors.PageBannerPageTaken {
			errors.Conflict(c, info.Code, info.Message)
			return
		}
		errors.InternalError(c, "Failed to create page banner")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"page_banner": banner})
}

// UpdatePageBanner updates a page banner
// PUT /api/v1/admin/page-banners/:id
func (ctrl *ContentController) UpdatePageBanner(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req PageBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, "Page and image are required")
		return
	}

	banner, err := ctrl.contentService.UpdatePageBanner(id, &model.PageBanner{
		Page:     req.Page,
		Title:    req.Title,
		ImageURL: req.ImageURL,
		Active:   req.Active,
	})
	if err != nil {
		if stderrors.Is(err, service.ErrPageBannerNotFound) {
			errors.NotFound(c, errors.PageBannerNotFound, "Page banner not found")
			return
		}
		errors.InternalError(c, "Failed to update page banner")
		return
	}
	c.JSON(http.StatusOK, gin.H{"page_banner": banner})
}

// DeletePageBanner removes a page banner
// DELETE /api/v1/admin/page-banners/:id
func (ctrl *ContentController) DeletePageBanner(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.contentService.DeletePageBanner(id); err != nil {
		if stderrors.Is(err, service.ErrPageBannerNotFound) {
			errors.NotFound(c, errors.PageBannerNotFound, "Page banner not found")
			return
		}
		errors.InternalError(c, "Failed to delete page banner")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Page banner deleted"})
}

// GetCollections lists active featured collections
// GET /api/v1/collections
func (ctrl *ContentController) GetCollections(c *gin.Context) {
	collections, err := ctrl.contentService.ListCollections(true)
	if err != nil {
		errors.InternalError(c, "Failed to fetch collections")
		return
	}
	c.JSON(http.StatusOK, gin.H{"collections": collections})
}

// GetCollection returns a collection with its products in curated order
// GET /api/v1/collections/:slug
func (ctrl *ContentController) GetCollection(c *gin.Context) {
	collection, err := ctrl.contentService.GetCollection(c.Param("slug"))
	if err != nil {
		if stderrors.Is(err, service.ErrCollectionNotFound) {
			errors.NotFound(c, errors.CollectionNotFound, "Collection not found")
			return
		}
		errors.InternalError(c, "Failed to fetch collection")
		return
	}
	c.JSON(http.StatusOK, gin.H{"collection": collection})
}

// AdminGetCollections lists all collections
// GET /api/v1/admin/collections
func (ctrl *ContentController) AdminGetCollections(c *gin.Context) {
	collections, err := ctrl.contentService.ListCollections(false)
	if err != nil {
		errors.InternalError(c, "Failed to fetch collections")
		return
	}
	c.JSON(http.StatusOK, gin.H{"collections": collections})
}

// CreateCollection creates a featured collection
// POST /api/v1/admin/collections
func (ctrl *ContentController) CreateCollection(c *gin.Context) {
	var req CollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, "Collection name is required")
		return
	}

	collection := &model.FeaturedCollection{
		Name:       req.Name,
		ImageURL:   req.ImageURL,
		ProductIDs: req.ProductIDs,
		SortOrder:  req.SortOrder,
		Active:     req.Active,
	}
	if err := ctrl.contentService.CreateCollection(collection); err != nil {
		errors.InternalError(c, "Failed to create collection")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"collection": collection})
}

// UpdateCollection updates a featured collection
// PUT /api/v1/admin/collections/:id
func (ctrl *ContentController) UpdateCollection(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req CollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, "Collection name is required")
		return
	}

	collection, err := ctrl.contentService.UpdateCollection(id, &model.FeaturedCollection{
		Name:       req.Name,
		ImageURL:   req.ImageURL,
		ProductIDs: req.ProductIDs,
		SortOrder:  req.SortOrder,
		Active:     req.Active,
	})
	if err != nil {
		if stderrors.Is(err, service.ErrCollectionNotFound) {
			errors.NotFound(c, errors.CollectionNotFound, "Collection not found")
			return
		}
		errors.InternalError(c, "Failed to update collection")
		return
	}
	c.JSON(http.StatusOK, gin.H{"collection": collection})
}

// DeleteCollection removes a featured collection
// DELETE /api/v1/admin/collections/:id
func (ctrl *ContentController) DeleteCollection(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.contentService.DeleteCollection(id); err != nil {
		if stderrors.Is(err, service.ErrCollectionNotFound) {
			errors.NotFound(c, errors.CollectionNotFound, "Collection not found")
			return
		}
		errors.InternalError(c, "Failed to delete collection")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Collection deleted"})
}
