package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/designxpo/poonam-cosmetics-backend/internal/app/model"
	"github.com/designxpo/poonam-cosmetics-backend/internal/app/repository"
	"github.com/designxpo/poonam-cosmetics-backend/pkg/logger"
	"github.com/designxpo/poonam-cosmetics-backend/pkg/util"
	"github.com/designxpo/poonam-cosmetics-backend/pkg/whatsapp"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderEmptyItems    = errors.New("order has no items")
	ErrOrderNotPending    = errors.New("only pending orders can be cancelled")
	ErrOrderPhoneMismatch = errors.New("phone does not match order")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrIncompleteCheckout = errors.New("checkout requires name, phone and a complete address")
)

// CheckoutItem is one requested line; price and name are snapshotted from the
// product inside the checkout transaction, never trusted from the client.
type CheckoutItem struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type CheckoutInput struct {
	UserID        *uint
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Address       model.Address
	PaymentMethod string
	Items         []CheckoutItem
}

// CheckoutResult pairs the created order with the wa.me link the storefront
// opens for confirmation.
type CheckoutResult struct {
	Order        *model.Order `json:"order"`
	WhatsAppLink string       `json:"whatsapp_link"`
}

type StatusUpdate struct {
	Status         model.OrderStatus
	TrackingNumber string
	AdminNotes     string
	Message        string
}

type OrderService interface {
	Checkout(input CheckoutInput) (*CheckoutResult, error)
	GetOrderByID(id uint) (*model.Order, error)
	GetUserOrders(userID uint, limit, offset int) ([]model.Order, int64, error)
	GetUserOrder(userID, orderID uint) (*model.Order, error)
	TrackOrder(orderNumber, phone string) (*model.Order, error)
	CancelUserOrder(userID, orderID uint) (*model.Order, error)
	CancelGuestOrder(orderNumber, phone string) (*model.Order, error)
	ListOrders(filter repository.OrderFilter) ([]model.Order, int64, error)
	UpdateOrderStatus(orderID uint, update StatusUpdate) (*model.Order, error)
	BulkUpdateStatus(ids []uint, status model.OrderStatus) (int64, error)
	OrderStats() (map[model.OrderStatus]int64, error)
}

type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	cartRepo    repository.CartRepository
	db          *gorm.DB
	links       *whatsapp.LinkBuilder
	deliveryFee float64
	freeAbove   float64
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	cartRepo repository.CartRepository,
	db *gorm.DB,
	links *whatsapp.LinkBuilder,
	deliveryFee, freeAbove float64,
) OrderService {
	if deliveryFee <= 0 {
		deliveryFee = model.DeliveryFee
	}
	if freeAbove <= 0 {
		freeAbove = model.FreeDeliveryThreshold
	}
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		cartRepo:    cartRepo,
		db:          db,
		links:       links,
		deliveryFee: deliveryFee,
		freeAbove:   freeAbove,
	}
}

func (s *orderService) Checkout(input CheckoutInput) (*CheckoutResult, error) {
	logger.Info("Starting checkout", map[string]interface{}{
		"user_id":    input.UserID,
		"phone":      input.CustomerPhone,
		"item_count": len(input.Items),
	})

	if strings.TrimSpace(input.CustomerName) == "" ||
		strings.TrimSpace(input.CustomerPhone) == "" ||
		!input.Address.IsComplete() {
		return nil, ErrIncompleteCheckout
	}
	if len(input.Items) == 0 {
		return nil, ErrOrderEmptyItems
	}
	for _, item := range input.Items {
		if item.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			logger.Error("Panic during checkout, rolling back", fmt.Errorf("panic: %v", r), map[string]interface{}{
				"phone": input.CustomerPhone,
			})
		}
	}()

	var (
		subtotal   float64
		orderItems []model.OrderItem
	)

	for _, line := range input.Items {
		var product model.Product
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&product, line.ProductID).Error; err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrRecordNotFound) {
				logger.Warn("Product not found during checkout", map[string]interface{}{
					"product_id": line.ProductID,
				})
				return nil, ErrProductNotFound
			}
			return nil, err
		}

		if !product.Active {
			tx.Rollback()
			return nil, ErrProductInactive
		}
		if product.Stock < line.Quantity {
			tx.Rollback()
			logger.Warn("Checkout rejected: insufficient stock", map[string]interface{}{
				"product_id": product.ID,
				"requested":  line.Quantity,
				"stock":      product.Stock,
			})
			return nil, ErrOutOfStock
		}

		if err := tx.Model(&product).
			Update("stock", gorm.Expr("stock - ?", line.Quantity)).Error; err != nil {
			tx.Rollback()
			return nil, err
		}

		imageURL := ""
		if len(product.Images) > 0 {
			imageURL = product.Images[0]
		}
		orderItems = append(orderItems, model.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			ImageURL:  imageURL,
			Quantity:  line.Quantity,
			Price:     product.Price,
		})
		subtotal += product.Price * float64(line.Quantity)
	}

	fee := 0.0
	if subtotal < s.freeAbove {
		fee = s.deliveryFee
	}

	order := &model.Order{
		OrderNumber:   util.GenerateOrderNumber(),
		UserID:        input.UserID,
		CustomerName:  strings.TrimSpace(input.CustomerName),
		CustomerPhone: strings.TrimSpace(input.CustomerPhone),
		CustomerEmail: strings.TrimSpace(input.CustomerEmail),
		Subtotal:      subtotal,
		DeliveryFee:   fee,
		TotalAmount:   subtotal + fee,
		Status:        model.OrderStatusPending,
		PaymentMethod: input.PaymentMethod,
		Address:       input.Address,
		Items:         orderItems,
		TrackingUpdates: []model.TrackingUpdate{
			{Status: model.OrderStatusPending, Message: "Order placed"},
		},
	}

	if err := s.orderRepo.CreateWithTx(tx, order); err != nil {
		tx.Rollback()
		return nil, err
	}

	// A logged-in checkout consumes the cart.
	if input.UserID != nil {
		if err := tx.Where("user_id = ?", *input.UserID).
			Delete(&model.CartItem{}).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	logger.Info("Order placed", map[string]interface{}{
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
		"subtotal":     order.Subtotal,
		"delivery_fee": order.DeliveryFee,
		"total":        order.TotalAmount,
	})

	return &CheckoutResult{
		Order:        order,
		WhatsAppLink: s.links.OrderLink(order),
	}, nil
}

func (s *orderService) GetOrderByID(id uint) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *orderService) GetUserOrders(userID uint, limit, offset int) ([]model.Order, int64, error) {
	return s.orderRepo.FindByUserID(userID, limit, offset)
}

func (s *orderService) GetUserOrder(userID, orderID uint) (*model.Order, error) {
	order, err := s.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID == nil || *order.UserID != userID {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// TrackOrder is the guest lookup: order number plus the phone it was placed
// with. The mismatch error is distinct from not-found so the storefront can
// prompt for the right phone.
func (s *orderService) TrackOrder(orderNumber, phone string) (*model.Order, error) {
	order, err := s.orderRepo.FindByOrderNumber(orderNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if order.CustomerPhone != strings.TrimSpace(phone) {
		logger.Warn("Order tracking phone mismatch", map[string]interface{}{
			"order_number": orderNumber,
		})
		return nil, ErrOrderPhoneMismatch
	}
	return order, nil
}

func (s *orderService) CancelUserOrder(userID, orderID uint) (*model.Order, error) {
	order, err := s.GetUserOrder(userID, orderID)
	if err != nil {
		return nil, err
	}
	return s.cancel(order)
}

func (s *orderService) CancelGuestOrder(orderNumber, phone string) (*model.Order, error) {
	order, err := s.TrackOrder(orderNumber, phone)
	if err != nil {
		return nil, err
	}
	return s.cancel(order)
}

// cancel moves a pending order to cancelled and restores the reserved stock.
func (s *orderService) cancel(order *model.Order) (*model.Order, error) {
	if order.Status != model.OrderStatusPending {
		return nil, ErrOrderNotPending
	}

	tx := s.db.Begin()
	for _, item := range order.Items {
		if err := tx.Model(&model.Product{}).
			Where("id = ?", item.ProductID).
			Update("stock", gorm.Expr("stock + ?", item.Quantity)).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Model(order).Update("status", model.OrderStatusCancelled).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Create(&model.TrackingUpdate{
		OrderID: order.ID,
		Status:  model.OrderStatusCancelled,
		Message: "Order cancelled",
	}).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	logger.Info("Order cancelled", map[string]interface{}{
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
	})
	return s.GetOrderByID(order.ID)
}

func (s *orderService) ListOrders(filter repository.OrderFilter) ([]model.Order, int64, error) {
	return s.orderRepo.FindAll(filter)
}

func (s *orderService) UpdateOrderStatus(orderID uint, update StatusUpdate) (*model.Order, error) {
	if !model.ValidOrderStatus(update.Status) {
		return nil, ErrInvalidStatus
	}

	order, err := s.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}

	order.Status = update.Status
	if update.TrackingNumber != "" {
		order.TrackingNumber = update.TrackingNumber
	}
	if update.AdminNotes != "" {
		order.AdminNotes = update.AdminNotes
	}

	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}

	message := update.Message
	if message == "" {
		message = fmt.Sprintf("Order status updated to %s", update.Status)
	}
	if err := s.orderRepo.AppendTrackingUpdate(&model.TrackingUpdate{
		OrderID: order.ID,
		Status:  update.Status,
		Message: message,
	}); err != nil {
		return nil, err
	}

	logger.Info("Order status updated", map[string]interface{}{
		"order_id": order.ID,
		"status":   update.Status,
	})
	return s.GetOrderByID(order.ID)
}

func (s *orderService) BulkUpdateStatus(ids []uint, status model.OrderStatus) (int64, error) {
	if len(ids) == 0 {
		return 0, ErrEmptyIDList
	}
	if !model.ValidOrderStatus(status) {
		return 0, ErrInvalidStatus
	}

	count, err := s.orderRepo.BulkUpdateStatus(ids, status)
	if err != nil {
		return 0, err
	}

	logger.Info("Bulk order status update", map[string]interface{}{
		"requested": len(ids),
		"modified":  count,
		"status":    status,
	})
	return count, nil
}

func (s *orderService) OrderStats() (map[model.OrderStatus]int64, error) {
	return s.orderRepo.CountByStatus()
}
