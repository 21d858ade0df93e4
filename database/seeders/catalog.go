package seeders

import (
	"github.com/shashiranjanraj/dinehub/app/models"
	"github.com/shashiranjanraj/dinehub/app/repositories"
	"github.com/shashiranjanraj/dinehub/config"
	"github.com/shashiranjanraj/dinehub/pkg/auth"
	"github.com/shashiranjanraj/dinehub/pkg/orm"
	"gorm.io/gorm"
)

func init() {
	Register("restaurant_types", SeedRestaurantTypes)
	Register("menu_categories", SeedMenuCategories)
	Register("admin_user", SeedAdmin)
	Register("sample_restaurant", SeedSampleRestaurant)
}

func str(s string) *string { return &s }

var restaurantTypes = []models.RestaurantType{
	{Code: "CF1", Name: "Cafe", Description: str("Coffee & light bites")},
	{Code: "CN1", Name: "Chinese", Description: str("Regional Chinese cuisines from Sichuan to Cantonese")},
	{Code: "IN1", Name: "Indonesian", Description: str("Authentic Indonesian")},
	{Code: "IT1", Name: "Italian", Description: str("Pasta, pizza, and classic Italian dishes")},
	{Code: "JP1", Name: "Japanese", Description: str("Authentic Japanese cuisine including sushi, ramen, and more")},
	{Code: "MX1", Name: "Mexican", Description: str("Tacos, burritos, salsas, and more")},
	{Code: "SF1", Name: "Seafood", Description: str("Seafood places")},
	{Code: "TH1", Name: "Thai", Description: str("Spicy curries, noodles, and street food")},
	{Code: "VG1", Name: "Vegan", Description: str("Plant-based eateries")},
}

var menuCategories = []models.MenuCategory{
	{Name: "Appetizer", Description: str("Starters and small dishes served before the main course")},
	{Name: "Dessert", Description: str("Sweet treats and after-meal dishes")},
	{Name: "Drink", Description: str("Beverages, juices, sodas, teas, and coffee")},
	{Name: "Main Course", Description: str("Hearty dishes that are the centerpiece of the meal")},
	{Name: "Side Dish", Description: str("Complementary dishes served alongside the main course")},
	{Name: "Special", Description: str("Limited-time or chef's special menu items")},
}

// SeedRestaurantTypes inserts the standard types missing by code.
func SeedRestaurantTypes(db *gorm.DB) error {
	for _, t := range restaurantTypes {
		exists, err := orm.New(db).Model(&models.RestaurantType{}).Where("code = ?", t.Code).Exists()
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		t := t
		if err := orm.New(db).Create(&t); err != nil {
			return err
		}
	}
	orm.Forget(repositories.RestaurantTypesCacheKey)
	return nil
}

// SeedMenuCategories inserts the standard categories missing by name.
func SeedMenuCategories(db *gorm.DB) error {
	for _, c := range menuCategories {
		exists, err := orm.New(db).Model(&models.MenuCategory{}).Where("name = ?", c.Name).Exists()
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		c := c
		if err := orm.New(db).Create(&c); err != nil {
			return err
		}
	}
	orm.Forget(repositories.MenuCategoriesCacheKey)
	return nil
}

// SeedAdmin creates the ADMIN_USERNAME account with the admin role.
func SeedAdmin(db *gorm.DB) error {
	username := config.AdminUsername()
	exists, err := orm.New(db).Model(&models.User{}).Where("username = ?", username).Exists()
	if err != nil || exists {
		return err
	}

	hash, err := auth.HashPassword(config.AdminPassword())
	if err != nil {
		return err
	}
	return orm.New(db).Create(&models.User{
		Username:     username,
		PasswordHash: hash,
		Name:         str("Administrator"),
		Roles:        []string{auth.RoleAdmin},
	})
}

// SeedSampleRestaurant gives the admin a demo restaurant and dish when the
// database has no restaurants at all.
func SeedSampleRestaurant(db *gorm.DB) error {
	seeded, err := orm.New(db).Model(&models.Restaurant{}).Exists()
	if err != nil || seeded {
		return err
	}

	var owner models.User
	if err := orm.New(db).Where("username = ?", config.AdminUsername()).First(&owner); err != nil {
		return err
	}
	var kind models.RestaurantType
	if err := orm.New(db).Order("code").First(&kind); err != nil {
		return err
	}
	var category models.MenuCategory
	if err := orm.New(db).Order("name").First(&category); err != nil {
		return err
	}

	return orm.New(db).Transaction(func(tx *orm.Query) error {
		restaurant := models.Restaurant{
			Name:             "Sample Restaurant",
			Address:          "123 Main St",
			OwnerID:          owner.ID,
			RestaurantTypeID: &kind.ID,
			Phone:            str("+1-555-1234"),
			OpeningHours:     str("09:00-21:00"),
			ImageURL:         str("https://virtuzone.com/wp-content/uploads/2024/04/restaurant-business-plan-template.jpg"),
			Description:      str("Welcome to Sample Restaurant"),
			IsActive:         true,
		}
		if err := tx.Create(&restaurant); err != nil {
			return err
		}
		return tx.Create(&models.Menu{
			Name:         "Sample Dish",
			Description:  str("Tasty meal"),
			Price:        9.99,
			RestaurantID: restaurant.ID,
			CategoryID:   category.ID,
			ImageURL:     str("https://radarmukomuko.bacakoran.co/upload/850af79a37c129e270718a4d3283b922.jpg"),
			IsActive:     true,
		})
	})
}
