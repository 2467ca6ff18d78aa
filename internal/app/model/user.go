package model

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// Address is the delivery address block shared by users and orders.
// All four fields are required whenever an address is supplied.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

// IsEmpty reports whether no address field is set.
func (a Address) IsEmpty() bool {
	return a.Street == "" && a.City == "" && a.State == "" && a.Pincode == ""
}

// IsComplete reports whether all four address fields are set.
func (a Address) IsComplete() bool {
	return a.Street != "" && a.City != "" && a.State != "" && a.Pincode != ""
}

type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	Name         string         `gorm:"not null" json:"name"`
	Phone        string         `json:"phone"`
	Address      Address        `gorm:"embedded;embeddedPrefix:address_" json:"address"`
	Role         UserRole       `gorm:"type:varchar(20);default:'user'" json:"role"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	Orders  []Order  `gorm:"foreignKey:UserID" json:"-"`
	Reviews []Review `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string {
	return "users"
}
