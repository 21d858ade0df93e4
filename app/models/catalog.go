package models

// RestaurantType classifies restaurants ("IT1" Italian, "JP1" Japanese...).
type RestaurantType struct {
	Base
	Code        string  `gorm:"size:20;uniqueIndex;not null"`
	Name        string  `gorm:"size:100;not null"`
	Description *string `gorm:"size:500"`
}

type MenuCategory struct {
	Base
	Name        string  `gorm:"size:100;not null;index"`
	Description *string `gorm:"size:500"`
}
