package models

import "github.com/google/uuid"

// Restaurant belongs to one owner account; an account owns at most one.
type Restaurant struct {
	Base
	Name             string     `gorm:"size:200;not null"`
	Address          string     `gorm:"size:500;not null"`
	OwnerID          uuid.UUID  `gorm:"type:char(36);not null;uniqueIndex:idx_restaurants_owner_unique"`
	RestaurantTypeID *uuid.UUID `gorm:"type:char(36);index"`
	Phone            *string    `gorm:"size:50"`
	OpeningHours     *string    `gorm:"size:100"`
	ImageURL         *string    `gorm:"column:image_url;size:1000"`
	Description      *string    `gorm:"type:text"`
	IsActive         bool       `gorm:"not null"`
	Rating           *float64
	RatingCount      int `gorm:"not null;default:0"`
}

// Menu is one dish on a restaurant's menu.
type Menu struct {
	Base
	Name         string    `gorm:"size:200;not null"`
	Description  *string   `gorm:"type:text"`
	Price        float64   `gorm:"not null;default:0"`
	RestaurantID uuid.UUID `gorm:"type:char(36);not null;index"`
	CategoryID   uuid.UUID `gorm:"type:char(36);not null;index"`
	ImageURL     *string   `gorm:"column:image_url;size:1000"`
	IsActive     bool      `gorm:"not null"`
	Rating       *float64
	RatingCount  int `gorm:"not null;default:0"`
}
