package model

import (
	"time"

	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s is one of the known status values.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Delivery fee rule: orders under the free-delivery threshold pay a flat fee.
const (
	DeliveryFee           = 50.0
	FreeDeliveryThreshold = 999.0
)

type Order struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	OrderNumber    string         `gorm:"uniqueIndex;not null" json:"order_number"`
	UserID         *uint          `gorm:"index" json:"user_id,omitempty"`
	CustomerName   string         `gorm:"not null" json:"customer_name"`
	CustomerPhone  string         `gorm:"not null;index" json:"customer_phone"`
	CustomerEmail  string         `json:"customer_email"`
	Subtotal       float64        `gorm:"not null" json:"subtotal"`
	DeliveryFee    float64        `gorm:"not null" json:"delivery_fee"`
	TotalAmount    float64        `gorm:"not null" json:"total_amount"`
	Status         OrderStatus    `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	PaymentMethod  string         `gorm:"type:varchar(50)" json:"payment_method"`
	Address        Address        `gorm:"embedded;embeddedPrefix:address_" json:"address"`
	TrackingNumber string         `json:"tracking_number,omitempty"`
	AdminNotes     string         `gorm:"type:text" json:"admin_notes,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	User            *User            `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items           []OrderItem      `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	TrackingUpdates []TrackingUpdate `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"tracking_updates,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem snapshots the product name, image and unit price at order time so
// later catalog edits do not rewrite order history.
type OrderItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	OrderID   uint      `gorm:"not null;index" json:"order_id"`
	ProductID uint      `gorm:"not null;index" json:"product_id"`
	Name      string    `gorm:"not null" json:"name"`
	ImageURL  string    `json:"image_url"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Price     float64   `gorm:"not null" json:"price"`
	CreatedAt time.Time `json:"created_at"`

	Order   Order   `gorm:"foreignKey:OrderID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"-"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

// TrackingUpdate is an append-only record of an order status change. Rows are
// never edited or pruned.
type TrackingUpdate struct {
	ID        uint        `gorm:"primarykey" json:"id"`
	OrderID   uint        `gorm:"not null;index" json:"order_id"`
	Status    OrderStatus `gorm:"type:varchar(20);not null" json:"status"`
	Message   string      `gorm:"not null" json:"message"`
	CreatedAt time.Time   `json:"created_at"`
}

func (TrackingUpdate) TableName() string {
	return "tracking_updates"
}
