package model

import (
	"time"

	"gorm.io/gorm"
)

// FeaturedCollection is a curated, ordered set of products surfaced on the
// home page (e.g. "Bestsellers", "New Arrivals").
type FeaturedCollection struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	Name       string         `gorm:"not null" json:"name"`
	Slug       string         `gorm:"uniqueIndex;not null" json:"slug"`
	ImageURL   string         `json:"image_url"`
	ProductIDs []uint         `gorm:"type:text;serializer:json" json:"product_ids"`
	SortOrder  int            `gorm:"default:0" json:"sort_order"`
	Active     bool           `gorm:"default:true" json:"active"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (FeaturedCollection) TableName() string {
	return "featured_collections"
}
