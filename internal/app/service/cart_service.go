package service

import (
	"errors"

	"github.com/designxpo/poonam-cosmetics-backend/internal/app/model"
	"github.com/designxpo/poonam-cosmetics-backend/internal/app/repository"
	"github.com/designxpo/poonam-cosmetics-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrProductInactive  = errors.New("product is not available")
	ErrOutOfStock       = errors.New("insufficient stock")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
)

// Cart is the priced cart view returned to the storefront.
type Cart struct {
	Items    []model.CartItem `json:"items"`
	Subtotal float64          `json:"subtotal"`
}

type CartService interface {
	GetCart(userID uint) (*Cart, error)
	AddItem(userID, productID uint, quantity int) (*model.CartItem, error)
	UpdateQuantity(userID, itemID uint, quantity int) (*model.CartItem, error)
	RemoveItem(userID, itemID uint) error
	ClearCart(userID uint) error
}

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) CartService {
	return &cartService{cartRepo: cartRepo, productRepo: productRepo}
}

func (s *cartService) GetCart(userID uint) (*Cart, error) {
	items, err := s.cartRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	cart := &Cart{Items: items}
	for _, item := range items {
		cart.Subtotal += item.Product.Price * float64(item.Quantity)
	}
	return cart, nil
}

// AddItem merges quantities when the product is already in the cart.
func (s *cartService) AddItem(userID, productID uint, quantity int) (*model.CartItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	if !product.Active {
		return nil, ErrProductInactive
	}

	existing, err := s.cartRepo.FindByUserAndProduct(userID, productID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	requested := quantity
	if existing != nil {
		requested += existing.Quantity
	}
	if product.Stock < requested {
		logger.Warn("Add to cart rejected: insufficient stock", map[string]interface{}{
			"user_id":    userID,
			"product_id": productID,
			"requested":  requested,
			"stock":      product.Stock,
		})
		return nil, ErrOutOfStock
	}

	if existing != nil {
		existing.Quantity = requested
		if err := s.cartRepo.Update(existing); err != nil {
			return nil, err
		}
		existing.Product = *product
		return existing, nil
	}

	item := &model.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	if err := s.cartRepo.Create(item); err != nil {
		return nil, err
	}
	item.Product = *product

	logger.Info("Item added to cart", map[string]interface{}{
		"user_id":    userID,
		"product_id": productID,
		"quantity":   quantity,
	})
	return item, nil
}

func (s *cartService) UpdateQuantity(userID, itemID uint, quantity int) (*model.CartItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	item, err := s.ownedItem(userID, itemID)
	if err != nil {
		return nil, err
	}

	if item.Product.Stock < quantity {
		return nil, ErrOutOfStock
	}

	item.Quantity = quantity
	if err := s.cartRepo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *cartService) RemoveItem(userID, itemID uint) error {
	item, err := s.ownedItem(userID, itemID)
	if err != nil {
		return err
	}
	return s.cartRepo.Delete(item.ID)
}

func (s *cartService) ClearCart(userID uint) error {
	return s.cartRepo.ClearByUserID(userID)
}

// ownedItem loads the cart item and rejects access across users.
func (s *cartService) ownedItem(userID, itemID uint) (*model.CartItem, error) {
	item, err := s.cartRepo.FindByID(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartItemNotFound
		}
		return nil, err
	}
	if item.UserID != userID {
		return nil, ErrCartItemNotFound
	}
	return item, nil
}
