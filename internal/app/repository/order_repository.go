package repository

import (
	"github.com/designxpo/poonam-cosmetics-backend/internal/app/model"
	"github.com/designxpo/poonam-cosmetics-backend/pkg/logger"
	"gorm.io/gorm"
)

// OrderFilter narrows admin order listings.
type OrderFilter struct {
	Status string
	Search string
	Limit  int
	Offset int
}

type OrderRepository interface {
	Create(order *model.Order) error
	CreateWithTx(tx *gorm.DB, order *model.Order) error
	FindByID(id uint) (*model.Order, error)
	FindByOrderNumber(orderNumber string) (*model.Order, error)
	FindByUserID(userID uint, limit, offset int) ([]model.Order, int64, error)
	FindAll(filter OrderFilter) ([]model.Order, int64, error)
	Update(order *model.Order) error
	BulkUpdateStatus(ids []uint, status model.OrderStatus) (int64, error)
	AppendTrackingUpdate(update *model.TrackingUpdate) error
	CountByStatus() (map[model.OrderStatus]int64, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(order *model.Order) error {
	return r.CreateWithTx(r.db, order)
}

func (r *orderRepository) CreateWithTx(tx *gorm.DB, order *model.Order) error {
	logger.Debug("Creating order in database", map[string]interface{}{
		"order_number": order.OrderNumber,
		"total_amount": order.TotalAmount,
		"items":        len(order.Items),
	})

	if err := tx.Create(order).Error; err != nil {
		logger.Error("Failed to create order in database", err, map[string]interface{}{
			"order_number": order.OrderNumber,
		})
		return err
	}
	return nil
}

func (r *orderRepository) FindByID(id uint) (*model.Order, error) {
	var order model.Order
	if err := r.db.Preload("Items").Preload("TrackingUpdates", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	}).First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) FindByOrderNumber(orderNumber string) (*model.Order, error) {
	var order model.Order
	if err := r.db.Preload("Items").Preload("TrackingUpdates", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	}).Where("order_number = ?", orderNumber).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) FindByUserID(userID uint, limit, offset int) ([]model.Order, int64, error) {
	var orders []model.Order
	var total int64

	query := r.db.Model(&model.Order{}).Where("user_id = ?", userID)
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Preload("Items").Order("created_at DESC")
	if limit > 0 {
		listQuery = listQuery.Limit(limit)
	}
	if offset > 0 {
		listQuery = listQuery.Offset(offset)
	}
	if err := listQuery.Find(&orders).Error; err != nil {
		logger.Error("Failed to find orders by user ID in database", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *orderRepository) FindAll(filter OrderFilter) ([]model.Order, int64, error) {
	logger.Debug("Finding orders in database", map[string]interface{}{
		"status": filter.Status,
		"search": filter.Search,
		"limit":  filter.Limit,
		"offset": filter.Offset,
	})

	query := r.db.Model(&model.Order{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"order_number LIKE ? OR customer_name LIKE ? OR customer_phone LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Preload("Items").Order("created_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var orders []model.Order
	if err := query.Find(&orders).Error; err != nil {
		logger.Error("Failed to find orders in database", err, map[string]interface{}{
			"status": filter.Status,
		})
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *orderRepository) Update(order *model.Order) error {
	logger.Debug("Updating order in database", map[string]interface{}{
		"order_id": order.ID,
		"status":   order.Status,
	})

	if err := r.db.Save(order).Error; err != nil {
		logger.Error("Failed to update order in database", err, map[string]interface{}{
			"order_id": order.ID,
		})
		return err
	}
	return nil
}

// BulkUpdateStatus sets the status on every matching order and appends a
// tracking update per matched order. Unknown IDs match nothing, so the
// returned count can be below len(ids).
func (r *orderRepository) BulkUpdateStatus(ids []uint, status model.OrderStatus) (int64, error) {
	logger.Debug("Bulk updating order status in database", map[string]interface{}{
		"order_ids": ids,
		"status":    status,
	})

	var affected int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var matched []uint
		if err := tx.Model(&model.Order{}).
			Where("id IN ?", ids).
			Pluck("id", &matched).Error; err != nil {
			return err
		}
		if len(matched) == 0 {
			return nil
		}

		result := tx.Model(&model.Order{}).
			Where("id IN ?", matched).
			Update("status", status)
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected

		updates := make([]model.TrackingUpdate, 0, len(matched))
		for _, id := range matched {
			updates = append(updates, model.TrackingUpdate{
				OrderID: id,
				Status:  status,
				Message: "Order status updated to " + string(status),
			})
		}
		return tx.Create(&updates).Error
	})
	if err != nil {
		logger.Error("Failed to bulk update order status in database", err, map[string]interface{}{
			"order_ids": ids,
		})
		return 0, err
	}
	return affected, nil
}

func (r *orderRepository) AppendTrackingUpdate(update *model.TrackingUpdate) error {
	return r.db.Create(update).Error
}

func (r *orderRepository) CountByStatus() (map[model.OrderStatus]int64, error) {
	type statusCount struct {
		Status model.OrderStatus
		Count  int64
	}

	var rows []statusCount
	if err := r.db.Model(&model.Order{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[model.OrderStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
