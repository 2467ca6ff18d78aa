package repository

import (
	"github.com/designxpo/poonam-cosmetics-backend/internal/app/model"
	"gorm.io/gorm"
)

// ReviewFilter narrows admin review listings.
type ReviewFilter struct {
	Status    string
	ProductID uint
	Limit     int
	Offset    int
}

type ReviewRepository interface {
	Create(review *model.Review) error
	FindByID(id uint) (*model.Review, error)
	FindByProductAndUser(productID, userID uint) (*model.Review, error)
	FindApprovedByProduct(productID uint, limit, offset int) ([]model.Review, int64, error)
	FindAll(filter ReviewFilter) ([]model.Review, int64, error)
	Update(review *model.Review) error
	Delete(id uint) error
	AggregateStats(productID uint) (*model.ReviewStats, error)
	HasDeliveredOrder(userID, productID uint) (bool, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(review *model.Review) error {
	return r.db.Create(review).Error
}

func (r *reviewRepository) FindByID(id uint) (*model.Review, error) {
	var review model.Review
	if err := r.db.Preload("User").Preload("Product").First(&review, id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) FindByProductAndUser(productID, userID uint) (*model.Review, error) {
	var review model.Review
	if err := r.db.Where("product_id = ? AND user_id = ?", productID, userID).
		First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) FindApprovedByProduct(productID uint, limit, offset int) ([]model.Review, int64, error) {
	query := r.db.Model(&model.Review{}).
		Where("product_id = ? AND status = ?", productID, model.ReviewStatusApproved)

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Preload("User").Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var reviews []model.Review
	if err := query.Find(&reviews).Error; err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

func (r *reviewRepository) FindAll(filter ReviewFilter) ([]model.Review, int64, error) {
	query := r.db.Model(&model.Review{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.ProductID != 0 {
		query = query.Where("product_id = ?", filter.ProductID)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []model.Review
	if err := query.Preload("User").Preload("Product").
		Order("created_at DESC").
		Limit(filter.Limit).Offset(filter.Offset).
		Find(&reviews).Error; err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

func (r *reviewRepository) Update(review *model.Review) error {
	return r.db.Save(review).Error
}

func (r *reviewRepository) Delete(id uint) error {
	return r.db.Delete(&model.Review{}, id).Error
}

// AggregateStats computes the approved-review summary for a product in a
// single grouped query plus an aggregate row.
func (r *reviewRepository) AggregateStats(productID uint) (*model.ReviewStats, error) {
	stats := &model.ReviewStats{
		ProductID:    productID,
		Distribution: map[int]int64{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}

	type ratingCount struct {
		Rating int
		Count  int64
	}
	var rows []ratingCount
	if err := r.db.Model(&model.Review{}).
		Select("rating, COUNT(*) as count").
		Where("product_id = ? AND status = ?", productID, model.ReviewStatusApproved).
		Group("rating").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	var sum int64
	for _, row := range rows {
		if row.Rating < 1 || row.Rating > 5 {
			continue
		}
		stats.Distribution[row.Rating] = row.Count
		stats.TotalReviews += row.Count
		sum += int64(row.Rating) * row.Count
	}

	if stats.TotalReviews > 0 {
		// Rounded to one decimal place.
		avg := float64(sum) / float64(stats.TotalReviews)
		stats.AverageRating = float64(int(avg*10+0.5)) / 10
	}
	return stats, nil
}

// HasDeliveredOrder reports whether the user has a delivered order
// containing the product. Used to mark reviews as verified purchases.
func (r *reviewRepository) HasDeliveredOrder(userID, productID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&model.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.user_id = ? AND orders.status = ? AND order_items.product_id = ? AND orders.deleted_at IS NULL",
			userID, model.OrderStatusDelivered, productID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
