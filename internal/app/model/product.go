package model

import (
	"time"

	"gorm.io/gorm"
)

// FeaturePair is a free-form label/value row shown in the PDP features block.
type FeaturePair struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ProductFeatures configures which sections the product detail page renders.
type ProductFeatures struct {
	ColorSelector      bool          `json:"color_selector"`
	Colors             []string      `json:"colors,omitempty"`
	SizeSelector       bool          `json:"size_selector"`
	Sizes              []string      `json:"sizes,omitempty"`
	ShowReviews        bool          `json:"show_reviews"`
	ShowSocialShare    bool          `json:"show_social_share"`
	ShowAdditionalInfo bool          `json:"show_additional_info"`
	CustomFeatures     []FeaturePair `json:"custom_features,omitempty"`
}

type Product struct {
	ID          uint            `gorm:"primarykey" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Slug        string          `gorm:"uniqueIndex;not null" json:"slug"`
	Description string          `gorm:"type:text" json:"description"`
	Price       float64         `gorm:"not null" json:"price"`
	CategoryID  uint            `gorm:"not null;index" json:"category_id"`
	BrandID     *uint           `gorm:"index" json:"brand_id,omitempty"`
	Images      []string        `gorm:"type:text;serializer:json" json:"images"`
	Stock       int             `gorm:"default:0" json:"stock"`
	Featured    bool            `gorm:"default:false;index" json:"featured"`
	Active      bool            `gorm:"default:true;index" json:"active"`
	Features    ProductFeatures `gorm:"type:text;serializer:json" json:"features"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`

	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Brand    *Brand   `gorm:"foreignKey:BrandID" json:"brand,omitempty"`

	OrderItems []OrderItem `gorm:"foreignKey:ProductID" json:"-"`
	CartItems  []CartItem  `gorm:"foreignKey:ProductID" json:"-"`
	Reviews    []Review    `gorm:"foreignKey:ProductID" json:"-"`
}

func (Product) TableName() string {
	return "products"
}

// InStock reports whether the product can be added to a cart.
func (p *Product) InStock() bool {
	return p.Stock > 0
}
