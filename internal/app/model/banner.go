package model

import (
	"time"

	"gorm.io/gorm"
)

// Banner is a homepage hero slide.
type Banner struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Title     string         `gorm:"not null" json:"title"`
	Subtitle  string         `json:"subtitle"`
	ImageURL  string         `gorm:"not null" json:"image_url"`
	LinkURL   string         `json:"link_url"`
	SortOrder int            `gorm:"default:0" json:"sort_order"`
	Active    bool           `gorm:"default:true" json:"active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Banner) TableName() string {
	return "banners"
}

// PageBanner is the static banner strip shown on a named storefront page.
type PageBanner struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Page      string         `gorm:"uniqueIndex;not null" json:"page"`
	Title     string         `json:"title"`
	ImageURL  string         `gorm:"not null" json:"image_url"`
	Active    bool           `gorm:"default:true" json:"active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (PageBanner) TableName() string {
	return "page_banners"
}
