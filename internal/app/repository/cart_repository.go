package repository

import (
	"github.com/designxpo/poonam-cosmetics-backend/internal/app/model"
	"github.com/designxpo/poonam-cosmetics-backend/pkg/logger"
	"gorm.io/gorm"
)

type CartRepository interface {
	FindByUserID(userID uint) ([]model.CartItem, error)
	FindByID(id uint) (*model.CartItem, error)
	FindByUserAndProduct(userID, productID uint) (*model.CartItem, error)
	Create(item *model.CartItem) error
	Update(item *model.CartItem) error
	Delete(id uint) error
	ClearByUserID(userID uint) error
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) FindByUserID(userID uint) ([]model.CartItem, error) {
	logger.Debug("Finding cart items by user ID in database", map[string]interface{}{
		"user_id": userID,
	})

	var items []model.CartItem
	if err := r.db.Preload("Product").Preload("Product.Category").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		logger.Error("Failed to find cart items in database", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	return items, nil
}

func (r *cartRepository) FindByID(id uint) (*model.CartItem, error) {
	var item model.CartItem
	if err := r.db.Preload("Product").First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartRepository) FindByUserAndProduct(userID, productID uint) (*model.CartItem, error) {
	var item model.CartItem
	if err := r.db.Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartRepository) Create(item *model.CartItem) error {
	logger.Debug("Creating cart item in database", map[string]interface{}{
		"user_id":    item.UserID,
		"product_id": item.ProductID,
		"quantity":   item.Quantity,
	})

	if err := r.db.Create(item).Error; err != nil {
		logger.Error("Failed to create cart item in database", err, map[string]interface{}{
			"user_id":    item.UserID,
			"product_id": item.ProductID,
		})
		return err
	}
	return nil
}

func (r *cartRepository) Update(item *model.CartItem) error {
	return r.db.Save(item).Error
}

func (r *cartRepository) Delete(id uint) error {
	return r.db.Delete(&model.CartItem{}, id).Error
}

func (r *cartRepository) ClearByUserID(userID uint) error {
	logger.Debug("Clearing cart in database", map[string]interface{}{
		"user_id": userID,
	})
	return r.db.Where("user_id = ?", userID).Delete(&model.CartItem{}).Error
}
