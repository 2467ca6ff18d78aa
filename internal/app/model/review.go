package model

import (
	"time"
)

type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusApproved ReviewStatus = "approved"
	ReviewStatusRejected ReviewStatus = "rejected"
)

type Review struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	ProductID        uint           `gorm:"not null;uniqueIndex:idx_reviews_product_user" json:"product_id"`
	UserID           uint           `gorm:"not null;uniqueIndex:idx_reviews_product_user" json:"user_id"`
	Rating           int            `gorm:"not null" json:"rating"`
	Title            string         `json:"title"`
	Comment          string         `gorm:"type:text" json:"comment"`
	Verified         bool           `gorm:"default:false" json:"verified"`
	HelpfulCount     int            `gorm:"default:0" json:"helpful_count"`
	HelpfulVoters    []uint         `gorm:"type:text;serializer:json" json:"-"`
	Images           []string       `gorm:"type:text;serializer:json" json:"images,omitempty"`
	Status           ReviewStatus   `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	AdminResponse    string         `gorm:"type:text" json:"admin_response,omitempty"`
	AdminRespondedAt *time.Time     `json:"admin_responded_at,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`

	Product Product `gorm:"foreignKey:ProductID" json:"-"`
	User    User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Review) TableName() string {
	return "reviews"
}

// ReviewStats is the aggregate shown on the product page, recomputed from the
// approved review set.
type ReviewStats struct {
	ProductID     uint          `json:"product_id"`
	TotalReviews  int64         `json:"total_reviews"`
	AverageRating float64       `json:"average_rating"`
	Distribution  map[int]int64 `json:"distribution"`
}
