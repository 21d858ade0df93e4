package migrations

import (
	"time"

	"github.com/google/uuid"
)

// Table shapes as of each migration; a model change needs a new migration
// rather than an edit here.

type usersTable struct {
	ID           uuid.UUID `gorm:"type:char(36);primaryKey"`
	Username     string    `gorm:"size:100;uniqueIndex:idx_users_username;not null"`
	PasswordHash string    `gorm:"size:255;not null"`
	Name         *string   `gorm:"size:200"`
	Address      *string   `gorm:"size:500"`
	PhoneNumber  *string   `gorm:"size:50"`
	Roles        string    `gorm:"type:text;not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

type restaurantTypesTable struct {
	ID          uuid.UUID `gorm:"type:char(36);primaryKey"`
	Code        string    `gorm:"size:20;uniqueIndex:idx_restaurant_types_code;not null"`
	Name        string    `gorm:"size:100;not null"`
	Description *string   `gorm:"size:500"`
	CreatedAt   time.Time `gorm:"not null"`
}

type menuCategoriesTable struct {
	ID          uuid.UUID `gorm:"type:char(36);primaryKey"`
	Name        string    `gorm:"size:100;not null;index:idx_menu_categories_name"`
	Description *string   `gorm:"size:500"`
	CreatedAt   time.Time `gorm:"not null"`
}

type restaurantsTable struct {
	ID               uuid.UUID  `gorm:"type:char(36);primaryKey"`
	Name             string     `gorm:"size:200;not null"`
	Address          string     `gorm:"size:500;not null"`
	OwnerID          uuid.UUID  `gorm:"type:char(36);not null;index:idx_restaurants_owner_id"`
	RestaurantTypeID *uuid.UUID `gorm:"type:char(36);index:idx_restaurants_restaurant_type_id"`
	Phone            *string    `gorm:"size:50"`
	OpeningHours     *string    `gorm:"size:100"`
	ImageURL         *string    `gorm:"column:image_url;size:1000"`
	Description      *string    `gorm:"type:text"`
	IsActive         bool       `gorm:"not null"`
	Rating           *float64
	RatingCount      int       `gorm:"not null;default:0"`
	CreatedAt        time.Time `gorm:"not null"`
}

type menusTable struct {
	ID           uuid.UUID `gorm:"type:char(36);primaryKey"`
	Name         string    `gorm:"size:200;not null"`
	Description  *string   `gorm:"type:text"`
	Price        float64   `gorm:"not null;default:0"`
	RestaurantID uuid.UUID `gorm:"type:char(36);not null;index:idx_menus_restaurant_id"`
	CategoryID   uuid.UUID `gorm:"type:char(36);not null;index:idx_menus_category_id"`
	ImageURL     *string   `gorm:"column:image_url;size:1000"`
	IsActive     bool      `gorm:"not null"`
	Rating       *float64
	RatingCount  int       `gorm:"not null;default:0"`
	CreatedAt    time.Time `gorm:"not null"`
}
