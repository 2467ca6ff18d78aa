package controller

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/designxpo/poonam-cosmetics-backend/internal/app/model"
	"github.com/designxpo/poonam-cosmetics-backend/internal/app/repository"
	"github.com/designxpo/poonam-cosmetics-backend/internal/app/service"
	"github.com/designxpo/poonam-cosmetics-backend/internal/errors"
	"github.com/designxpo/poonam-cosmetics-backend/internal/middleware"
	"github.com/designxpo/poonam-cosmetics-backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orderService service.OrderService
	exporter     *service.OrderExporter
}

func NewOrderController(orderService service.OrderService, exporter *service.OrderExporter) *OrderController {
	return &OrderController{
		orderService: orderService,
		exporter:     exporter,
	}
}

type CheckoutRequest struct {
	CustomerName  string                 `json:"customer_name" binding:"required"`
	CustomerPhone string                 `json:"customer_phone" binding:"required"`
	CustomerEmail string                 `json:"customer_email"`
	Address       model.Address          `json:"address" binding:"required"`
	PaymentMethod string                 `json:"payment_method"`
	Items         []service.CheckoutItem `json:"items" binding:"required"`
}

type TrackOrderRequest struct {
	OrderNumber string `json:"order_number" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
}

type UpdateOrderStatusRequest struct {
	Status         model.OrderStatus `json:"status" binding:"required"`
	TrackingNumber string            `json:"tracking_number"`
	AdminNotes     string            `json:"admin_notes"`
	Message        string            `json:"message"`
}

type BulkOrderStatusRequest struct {
	IDs    []uint            `json:"ids" binding:"required"`
	Status model.OrderStatus `json:"status" binding:"required"`
}

// Checkout places an order for a guest or a logged-in customer and returns
// the WhatsApp confirmation link
// POST /api/v1/orders/checkout
func (ctrl *OrderController) Checkout(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid checkout payload", map[string]interface{}{
			"error": err.Error(),
		})
		errors.BadRequest(c, errors.ValidationInvalidInput, "Invalid checkout data")
		return
	}

	input := service.CheckoutInput{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		Address:       req.Address,
		PaymentMethod: req.PaymentMethod,
		Items:         req.Items,
	}
	if userID, exists := middleware.GetUserID(c); exists {
		input.UserID = &userID
	}

	result, err := ctrl.orderService.Checkout(input)
	if err != nil {
		ctrl.respondCheckoutError(c, log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"order":         result.Order,
		"whatsapp_link": result.WhatsAppLink,
	})
}

func (ctrl *OrderController) respondCheckoutError(c *gin.Context, log *logger.Logger, err error) {
	switch {
	case stderrors.Is(err, service.ErrIncompleteCheckout):
		errors.BadRequest(c, errors.ValidationAddressFields, "Checkout requires name, phone and a complete address")
	case stderrors.Is(err, service.ErrOrderEmptyItems):
		errors.BadRequest(c, errors.OrderEmptyItems, "Order must contain at least one item")
	case stderrors.Is(err, service.ErrInvalidQuantity):
		errors.BadRequest(c, errors.ValidationInvalidInput, "Quantity must be at least 1")
	case stderrors.Is(err, service.ErrProductNotFound):
		errors.NotFound(c, errors.ProductNotFound, "A product in the order no longer exists")
	case stderrors.Is(err, service.ErrProductInactive):
		errors.BadRequest(c, errors.ProductInactive, "A product in the order is not available")
	case stderrors.Is(err, service.ErrOutOfStock):
		errors.Conflict(c, errors.OrderStockShortage, "Not enough stock to fulfil the order")
	default:
		log.Error("Checkout failed", err, nil)
		errors.InternalError(c, "Failed to place order")
	}
}

// TrackOrder is the guest order lookup by number and phone
// POST /api/v1/orders/track
func (ctrl *OrderController) TrackOrder(c *gin.Context) {
	var req TrackOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, "Order number and phone are required")
		return
	}

	order, err := ctrl.orderService.TrackOrder(req.OrderNumber, req.Phone)
	if err != nil {
		ctrl.respondTrackError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order": order,
	})
}

// CancelGuestOrder cancels a pending guest order
// POST /api/v1/orders/cancel
func (ctrl *OrderController) CancelGuestOrder(c *gin.Context) {
	var req TrackOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, "Order number and phone are required")
		return
	}

	order, err := ctrl.orderService.CancelGuestOrder(req.OrderNumber, req.Phone)
	if err != nil {
		if stderrors.Is(err, service.ErrOrderNotPending) {
			errors.Conflict(c, errors.OrderNotCancellable, "Only pending orders can be cancelled")
			return
		}
		ctrl.respondTrackError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order": order,
	})
}

func (ctrl *OrderController) respondTrackError(c *gin.Context, err error) {
	switch {
	case stderrors.Is(err, service.ErrOrderNotFound):
		errors.NotFound(c, errors.OrderNotFound, "Order not found")
	case stderrors.Is(err, service.ErrOrderPhoneMismatch):
		errors.RespondWithError(c, http.StatusForbidden, errors.OrderPhoneMismatch, "Phone number does not match this order")
	default:
		errors.InternalError(c, "Failed to look up order")
	}
}

// GetMyOrders lists the authenticated user's orders
// GET /api/v1/orders
func (ctrl *OrderController) GetMyOrders(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		errors.Unauthorized(c, "Authentication required")
		return
	}

	limit, offset := parsePagination(c)
	orders, total, err := ctrl.orderService.GetUserOrders(userID, limit, offset)
	if err != nil {
		errors.InternalError(c, "Failed to fetch orders")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"total":  total,
		"count":  len(orders),
	})
}

// GetMyOrder returns one of the authenticated user's orders
// GET /api/v1/orders/:id
func (ctrl *OrderController) GetMyOrder(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		errors.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	order, err := ctrl.orderService.GetUserOrder(userID, id)
	if err != nil {
		if stderrors.Is(err, service.ErrOrderNotFound) {
			errors.NotFound(c, errors.OrderNotFound, "Order not found")
			return
		}
		errors.InternalError(c, "Failed to fetch order")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order": order,
	})
}

// CancelMyOrder cancels one of the user's pending orders
// POST /api/v1/orders/:id/cancel
func (ctrl *OrderController) CancelMyOrder(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		errors.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	order, err := ctrl.orderService.CancelUserOrder(userID, id)
	if err != nil {
		switch {
		case stderrors.Is(err, service.ErrOrderNotFound):
			errors.NotFound(c, errors.OrderNotFound, "Order not found")
		case stderrors.Is(err, service.ErrOrderNotPending):
			errors.Conflict(c, errors.OrderNotCancellable, "Only pending orders can be cancelled")
		default:
			errors.InternalError(c, "Failed to cancel order")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order": order,
	})
}

// AdminGetOrders lists all orders with optional status filter and search
// GET /api/v1/admin/orders
func (ctrl *OrderController) AdminGetOrders(c *gin.Context) {
	limit, offset := parsePagination(c)
	filter := repository.OrderFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
		Limit:  limit,
		Offset: offset,
	}

	orders, total, err := ctrl.orderService.ListOrders(filter)
	if err != nil {
		errors.InternalError(c, "Failed to fetch orders")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"total":  total,
		"count":  len(orders),
	})
}

// AdminGetOrder returns any order by ID
// GET /api/v1/admin/orders/:id
func (ctrl *OrderController) AdminGetOrder(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	order, err := ctrl.orderService.GetOrderByID(id)
	if err != nil {
		if stderrors.Is(err, service.ErrOrderNotFound) {
			errors.NotFound(c, errors.OrderNotFound, "Order not found")
			return
		}
		errors.InternalError(c, "Failed to fetch order")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order": order,
	})
}

// AdminUpdateOrderStatus sets a new status and appends a tracking update
// PUT /api/v1/admin/orders/:id/status
func (ctrl *OrderController) AdminUpdateOrderStatus(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, "Status is required")
		return
	}

	order, err := ctrl.orderService.UpdateOrderStatus(id, service.StatusUpdate{
		Status:         req.Status,
		TrackingNumber: req.TrackingNumber,
		AdminNotes:     req.AdminNotes,
		Message:        req.Message,
	})
	if err != nil {
		switch {
		case stderrors.Is(err, service.ErrOrderNotFound):
			errors.NotFound(c, errors.OrderNotFound, "Order not found")
		case stderrors.Is(err, service.ErrInvalidStatus):
			errors.BadRequest(c, errors.ValidationInvalidStatus, "Unknown order status")
		default:
			log.Error("Failed to update order status", err, map[string]interface{}{
				"order_id": id,
			})
			errors.InternalError(c, "Failed to update order")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order": order,
	})
}

// AdminBulkUpdateStatus sets the status on a set of orders
// PATCH /api/v1/admin/orders/bulk-update
func (ctrl *OrderController) AdminBulkUpdateStatus(c *gin.Context) {
	var req BulkOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, "Order IDs and status are required")
		return
	}

	count, err := ctrl.orderService.BulkUpdateStatus(req.IDs, req.Status)
	if err != nil {
		switch {
		case stderrors.Is(err, service.ErrEmptyIDList):
			errors.BadRequest(c, errors.ValidationEmptyIDList, "At least one order ID is required")
		case stderrors.Is(err, service.ErrInvalidStatus):
			errors.BadRequest(c, errors.ValidationInvalidStatus, "Unknown order status")
		default:
			errors.InternalError(c, "Bulk update failed")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"modified_count": count,
	})
}

// AdminExportOrders streams the order book as an XLSX download
// GET /api/v1/admin/orders/export
func (ctrl *OrderController) AdminExportOrders(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	buf, err := ctrl.exporter.Export(repository.OrderFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
	})
	if err != nil {
		log.Error("Order export failed", err, nil)
		errors.InternalError(c, "Failed to export orders")
		return
	}

	filename := fmt.Sprintf("orders-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}

// AdminOrderStats returns order counts grouped by status
// GET /api/v1/admin/orders/stats
func (ctrl *OrderController) AdminOrderStats(c *gin.Context) {
	stats, err := ctrl.orderService.OrderStats()
	if err != nil {
		errors.InternalError(c, "Failed to fetch order stats")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats": stats,
	})
}

func parsePagination(c *gin.Context) (limit, offset int) {
	limit = defaultPageSize
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if v := c.Query("page"); v != "" {
		if page, err := strconv.Atoi(v); err == nil && page > 1 {
			offset = (page - 1) * limit
		}
	}
	return limit, offset
}
