package controller

import (
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/designxpo/poonam-cosmetics-backend/internal/app/model"
	"github.com/designxpo/poonam-cosmetics-backend/internal/app/repository"
	"github.com/designxpo/poonam-cosmetics-backend/internal/app/service"
	"github.com/designxpo/poonam-cosmetics-backend/internal/errors"
	"github.com/designxpo/poonam-cosmetics-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	reviewService service.ReviewService
}

func NewReviewController(reviewService service.ReviewService) *ReviewController {
	return &ReviewController{reviewService: reviewService}
}

type CreateReviewRequest struct {
	Rating  int      `json:"rating" binding:"required,min=1,max=5"`
	Title   string   `json:"title"`
	Comment string   `json:"comment"`
	Images  []string `json:"images"`
}

type AdminResponseRequest struct {
	Response string `json:"response" binding:"required"`
}

// GetProductReviews lists approved reviews for a product
// GET /api/v1/reviews/product/:id
func (ctrl *ReviewController) GetProductReviews(c *gin.Context) {
	productID, ok := parseIDParam(c)
	if !ok {
		return
	}

	limit, offset := parsePagination(c)
	reviews, total, err := ctrl.reviewService.GetProductReviews(productID, limit, offset)
	if err != nil {
		errors.InternalError(c, "Failed to fetch reviews")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews": reviews,
		"total":   total,
		"count":   len(reviews),
	})
}

// GetProductReviewStats returns count, average and rating histogram
// GET /api/v1/reviews/product/:id/stats
func (ctrl *ReviewController) GetProductReviewStats(c *gin.Context) {
	productID, ok := parseIDParam(c)
	if !ok {
		return
	}

	stats, err := ctrl.reviewService.GetProductStats(c.Request.Context(), productID)
	if err != nil {
		errors.InternalError(c, "Failed to fetch review stats")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats": stats,
	})
}

// CreateReview submits a review for moderation
// POST /api/v1/reviews/product/:id
func (ctrl *ReviewController) CreateReview(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		errors.Unauthorized(c, "Authentication required")
		return
	}

	productID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, errors.ReviewInvalidRating, "Rating must be between 1 and 5")
		return
	}

	review, err := ctrl.reviewService.CreateReview(userID, productID, service.ReviewInput{
		Rating:  req.Rating,
		Title:   req.Title,
		Comment: req.Comment,
		Images:  req.Images,
	})
	if err != nil {
		switch {
		case stderrors.Is(err, service.ErrInvalidRating):
			errors.BadRequest(c, errors.ReviewInvalidRating, "Rating must be between 1 and 5")
		case stderrors.Is(err, service.ErrProductNotFound):
			errors.NotFound(c, errors.ProductNotFound, "Product not found")
		case stderrors.Is(err, service.ErrReviewExists):
			errors.Conflict(c, errors.ReviewAlreadyExists, "You have already reviewed this product")
		default:
			log.Error("Failed to create review", err, map[string]interface{}{
				"user_id":    userID,
				"product_id": productID,
			})
			errors.InternalError(c, "Failed to submit review")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"review": review,
	})
}

// ToggleHelpful toggles the caller's helpful vote on a review
// POST /api/v1/reviews/:id/helpful
func (ctrl *ReviewController) ToggleHelpful(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		errors.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	review, err := ctrl.reviewService.ToggleHelpful(id, userID)
	if err != nil {
		if stderrors.Is(err, service.ErrReviewNotFound) {
			errors.NotFound(c, errors.ReviewNotFound, "Review not found")
			return
		}
		errors.InternalError(c, "Failed to record vote")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"review": review,
	})
}

// AdminGetReviews lists reviews with status/product filters
// GET /api/v1/admin/reviews
func (ctrl *ReviewController) AdminGetReviews(c *gin.Context) {
	limit, offset := parsePagination(c)
	filter := repository.ReviewFilter{
		Status: c.Query("status"),
		Limit:  limit,
		Offset: offset,
	}
	if v := c.Query("product_id"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			filter.ProductID = uint(id)
		}
	}

	reviews, total, err := ctrl.reviewService.ListReviews(filter)
	if err != nil {
		errors.InternalError(c, "Failed to fetch reviews")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews": reviews,
		"total":   total,
		"count":   len(reviews),
	})
}

// AdminApproveReview publishes a review
// POST /api/v1/admin/reviews/:id/approve
func (ctrl *ReviewController) AdminApproveReview(c *gin.Context) {
	ctrl.moderate(c, ctrl.reviewService.ApproveReview)
}

// AdminRejectReview hides a review
// POST /api/v1/admin/reviews/:id/reject
func (ctrl *ReviewController) AdminRejectReview(c *gin.Context) {
	ctrl.moderate(c, ctrl.reviewService.RejectReview)
}

func (ctrl *ReviewController) moderate(c *gin.Context, action func(uint) (*model.Review, error)) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	review, err := action(id)
	if err != nil {
		if stderrors.Is(err, service.ErrReviewNotFound) {
			errors.NotFound(c, errors.ReviewNotFound, "Review not found")
			return
		}
		errors.InternalError(c, "Failed to moderate review")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"review": review,
	})
}

// AdminRespondToReview attaches a store response to a review
// POST /api/v1/admin/reviews/:id/respond
func (ctrl *ReviewController) AdminRespondToReview(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req AdminResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, "Response text is required")
		return
	}

	review, err := ctrl.reviewService.RespondToReview(id, req.Response)
	if err != nil {
		if stderrors.Is(err, service.ErrReviewNotFound) {
			errors.NotFound(c, errors.ReviewNotFound, "Review not found")
			return
		}
		errors.InternalError(c, "Failed to respond to review")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"review": review,
	})
}

// AdminDeleteReview removes a review entirely
// DELETE /api/v1/admin/reviews/:id
func (ctrl *ReviewController) AdminDeleteReview(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.reviewService.DeleteReview(id); err != nil {
		if stderrors.Is(err, service.ErrReviewNotFound) {
			errors.NotFound(c, errors.ReviewNotFound, "Review not found")
			return
		}
		errors.InternalError(c, "Failed to delete review")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Review deleted",
	})
}
