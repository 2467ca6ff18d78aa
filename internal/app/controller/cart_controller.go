package controller

import (
	stderrors "errors"
	"net/http"

	"github.com/designxpo/poonam-cosmetics-backend/internal/app/service"
	"github.com/designxpo/poonam-cosmetics-backend/internal/errors"
	"github.com/designxpo/poonam-cosmetics-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type CartController struct {
	cartService service.CartService
}

func NewCartController(cartService service.CartService) *CartController {
	return &CartController{cartService: cartService}
}

type AddToCartRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// GetCart returns the user's cart with a computed subtotal
// GET /api/v1/cart
func (ctrl *CartController) GetCart(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		errors.Unauthorized(c, "Authentication required")
		return
	}

	cart, err := ctrl.cartService.GetCart(userID)
	if err != nil {
		errors.InternalError(c, "Failed to fetch cart")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cart": cart,
	})
}

// AddItem adds a product to the cart, merging quantities for repeats
// POST /api/v1/cart/items
func (ctrl *CartController) AddItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		errors.Unauthorized(c, "Authentication required")
		return
	}

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, "Invalid cart data")
		return
	}

	item, err := ctrl.cartService.AddItem(userID, req.ProductID, req.Quantity)
	if err != nil {
		switch {
		case stderrors.Is(err, service.ErrProductNotFound):
			errors.NotFound(c, errors.ProductNotFound, "Product not found")
		case stderrors.Is(err, service.ErrProductInactive):
			errors.BadRequest(c, errors.ProductInactive, "Product is not available")
		case stderrors.Is(err, service.ErrOutOfStock):
			errors.Conflict(c, errors.ProductOutOfStock, "Not enough stock available")
		default:
			log.Error("Failed to add item to cart", err, map[string]interface{}{
				"user_id":    userID,
				"product_id": req.ProductID,
			})
			errors.InternalError(c, "Failed to add item to cart")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"item": item,
	})
}

// UpdateItem changes the quantity of a cart line
// PUT /api/v1/cart/items/:id
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		errors.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, "Quantity must be at least 1")
		return
	}

	item, err := ctrl.cartService.UpdateQuantity(userID, id, req.Quantity)
	if err != nil {
		switch {
		case stderrors.Is(err, service.ErrCartItemNotFound):
			errors.NotFound(c, errors.CartItemNotFound, "Cart item not found")
		case stderrors.Is(err, service.ErrOutOfStock):
			errors.Conflict(c, errors.ProductOutOfStock, "Not enough stock available")
		default:
			errors.InternalError(c, "Failed to update cart item")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"item": item,
	})
}

// RemoveItem deletes a cart line
// DELETE /api/v1/cart/items/:id
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		errors.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.cartService.RemoveItem(userID, id); err != nil {
		if stderrors.Is(err, service.ErrCartItemNotFound) {
			errors.NotFound(c, errors.CartItemNotFound, "Cart item not found")
			return
		}
		errors.InternalError(c, "Failed to remove cart item")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed",
	})
}

// ClearCart empties the cart
// DELETE /api/v1/cart
func (ctrl *CartController) ClearCart(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		errors.Unauthorized(c, "Authentication required")
		return
	}

	if err := ctrl.cartService.ClearCart(userID); err != nil {
		errors.InternalError(c, "Failed to clear cart")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared",
	})
}
