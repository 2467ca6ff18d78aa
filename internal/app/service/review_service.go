package service

import (
	"context"
	"errors"
	"time"

	"github.com/designxpo/poonam-cosmetics-backend/internal/app/model"
	"github.com/designxpo/poonam-cosmetics-backend/internal/app/repository"
	"github.com/designxpo/poonam-cosmetics-backend/pkg/logger"
	"github.com/designxpo/poonam-cosmetics-backend/pkg/redis"
	"gorm.io/gorm"
)

var (
	ErrReviewNotFound      = errors.New("review not found")
	ErrReviewExists        = errors.New("review already exists for this product")
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
	ErrReviewNotModeratble = errors.New("review is not pending moderation")
)

type ReviewInput struct {
	Rating  int
	Title   string
	Comment string
	Images  []string
}

type ReviewService interface {
	CreateReview(userID, productID uint, input ReviewInput) (*model.Review, error)
	GetProductReviews(productID uint, limit, offset int) ([]model.Review, int64, error)
	GetProductStats(ctx context.Context, productID uint) (*model.ReviewStats, error)
	ToggleHelpful(reviewID, userID uint) (*model.Review, error)
	ListReviews(filter repository.ReviewFilter) ([]model.Review, int64, error)
	ApproveReview(id uint) (*model.Review, error)
	RejectReview(id uint) (*model.Review, error)
	RespondToReview(id uint, response string) (*model.Review, error)
	DeleteReview(id uint) error
	WarmStatsCache(ctx context.Context) error
}

type reviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository, productRepo repository.ProductRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo, productRepo: productRepo}
}

// CreateReview stores the review as pending; it only becomes visible after
// admin approval. Verified is set when the user has a delivered order
// containing the product.
func (s *reviewService) CreateReview(userID, productID uint, input ReviewInput) (*model.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, ErrInvalidRating
	}

	if _, err := s.productRepo.FindByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if _, err := s.reviewRepo.FindByProductAndUser(productID, userID); err == nil {
		return nil, ErrReviewExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	verified, err := s.reviewRepo.HasDeliveredOrder(userID, productID)
	if err != nil {
		logger.Error("Failed to check delivered orders for review", err, map[string]interface{}{
			"user_id":    userID,
			"product_id": productID,
		})
		verified = false
	}

	review := &model.Review{
		ProductID: productID,
		UserID:    userID,
		Rating:    input.Rating,
		Title:     input.Title,
		Comment:   input.Comment,
		Images:    input.Images,
		Verified:  verified,
		Status:    model.ReviewStatusPending,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}

	logger.Info("Review submitted", map[string]interface{}{
		"review_id":  review.ID,
		"product_id": productID,
		"user_id":    userID,
		"rating":     input.Rating,
		"verified":   verified,
	})
	return review, nil
}

func (s *reviewService) GetProductReviews(productID uint, limit, offset int) ([]model.Review, int64, error) {
	return s.reviewRepo.FindApprovedByProduct(productID, limit, offset)
}

// GetProductStats serves the aggregate from the cache when fresh, otherwise
// recomputes from the approved set and repopulates it.
func (s *reviewService) GetProductStats(ctx context.Context, productID uint) (*model.ReviewStats, error) {
	if cached, err := redis.GetReviewStats(ctx, productID); err == nil && cached != nil {
		return cached, nil
	}

	stats, err := s.reviewRepo.AggregateStats(productID)
	if err != nil {
		return nil, err
	}

	if err := redis.SetReviewStats(ctx, stats); err != nil {
		logger.Warn("Failed to cache review stats", map[string]interface{}{
			"product_id": productID,
			"error":      err.Error(),
		})
	}
	return stats, nil
}

// ToggleHelpful adds or removes the user's helpful vote. Voters are tracked
// on the review row so a user counts at most once.
func (s *reviewService) ToggleHelpful(reviewID, userID uint) (*model.Review, error) {
	review, err := s.reviewRepo.FindByID(reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	voted := false
	voters := review.HelpfulVoters[:0:0]
	for _, v := range review.HelpfulVoters {
		if v == userID {
			voted = true
			continue
		}
		voters = append(voters, v)
	}
	if !voted {
		voters = append(voters, userID)
	}

	review.HelpfulVoters = voters
	review.HelpfulCount = len(voters)

	if err := s.reviewRepo.Update(review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) ListReviews(filter repository.ReviewFilter) ([]model.Review, int64, error) {
	return s.reviewRepo.FindAll(filter)
}

func (s *reviewService) ApproveReview(id uint) (*model.Review, error) {
	return s.moderate(id, model.ReviewStatusApproved)
}

func (s *reviewService) RejectReview(id uint) (*model.Review, error) {
	return s.moderate(id, model.ReviewStatusRejected)
}

func (s *reviewService) moderate(id uint, status model.ReviewStatus) (*model.Review, error) {
	review, err := s.reviewRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	review.Status = status
	if err := s.reviewRepo.Update(review); err != nil {
		return nil, err
	}

	s.invalidateStats(review.ProductID)

	logger.Info("Review moderated", map[string]interface{}{
		"review_id":  review.ID,
		"product_id": review.ProductID,
		"status":     status,
	})
	return review, nil
}

func (s *reviewService) RespondToReview(id uint, response string) (*model.Review, error) {
	review, err := s.reviewRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	now := time.Now()
	review.AdminResponse = response
	review.AdminRespondedAt = &now

	if err := s.reviewRepo.Update(review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) DeleteReview(id uint) error {
	review, err := s.reviewRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		return err
	}

	if err := s.reviewRepo.Delete(id); err != nil {
		return err
	}

	s.invalidateStats(review.ProductID)
	return nil
}

// WarmStatsCache recomputes and caches stats for every active product. Run
// periodically so product pages rarely pay the aggregation cost.
func (s *reviewService) WarmStatsCache(ctx context.Context) error {
	products, _, err := s.productRepo.FindWithFilter(repository.ProductFilter{
		ActiveOnly: true,
		Limit:      -1,
	})
	if err != nil {
		return err
	}

	for _, product := range products {
		stats, err := s.reviewRepo.AggregateStats(product.ID)
		if err != nil {
			logger.Warn("Failed to aggregate review stats", map[string]interface{}{
				"product_id": product.ID,
				"error":      err.Error(),
			})
			continue
		}
		if err := redis.SetReviewStats(ctx, stats); err != nil {
			logger.Warn("Failed to cache review stats", map[string]interface{}{
				"product_id": product.ID,
				"error":      err.Error(),
			})
		}
	}

	logger.Info("Review stats cache warmed", map[string]interface{}{
		"products": len(products),
	})
	return nil
}

func (s *reviewService) invalidateStats(productID uint) {
	if err := redis.InvalidateReviewStats(context.Background(), productID); err != nil {
		logger.Warn("Failed to invalidate review stats cache", map[string]interface{}{
			"product_id": productID,
			"error":      err.Error(),
		})
	}
}
