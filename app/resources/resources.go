// Package resources shapes models into the JSON the API returns.
package resources

import (
	"time"

	"github.com/google/uuid"
	"github.com/shashiranjanraj/dinehub/app/models"
	"github.com/shashiranjanraj/dinehub/pkg/collection"
)

type User struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	Name        *string   `json:"name"`
	Address     *string   `json:"address"`
	PhoneNumber *string   `json:"phoneNumber"`
	CreatedAt   time.Time `json:"createdAt"`
}

func UserFrom(u models.User) User {
	return User{
		ID:          u.ID,
		Username:    u.Username,
		Name:        u.Name,
		Address:     u.Address,
		PhoneNumber: u.PhoneNumber,
		CreatedAt:   u.CreatedAt,
	}
}

func Users(us []models.User) []User { return collection.Map(us, UserFrom) }

type RestaurantType struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

func RestaurantTypeFrom(t models.RestaurantType) RestaurantType {
	return RestaurantType{ID: t.ID, Code: t.Code, Name: t.Name, Description: t.Description, CreatedAt: t.CreatedAt}
}

func RestaurantTypes(ts []models.RestaurantType) []RestaurantType {
	return collection.Map(ts, RestaurantTypeFrom)
}

type MenuCategory struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

func MenuCategoryFrom(c models.MenuCategory) MenuCategory {
	return MenuCategory{ID: c.ID, Name: c.Name, Description: c.Description, CreatedAt: c.CreatedAt}
}

func MenuCategories(cs []models.MenuCategory) []MenuCategory {
	return collection.Map(cs, MenuCategoryFrom)
}

type Restaurant struct {
	ID               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	Address          string     `json:"address"`
	OwnerID          uuid.UUID  `json:"ownerId"`
	RestaurantTypeID *uuid.UUID `json:"restaurantTypeId"`
	Phone            *string    `json:"phone"`
	OpeningHours     *string    `json:"openingHours"`
	ImageURL         *string    `json:"imageUrl"`
	Description      *string    `json:"description"`
	IsActive         bool       `json:"isActive"`
	Rating           *float64   `json:"rating"`
	RatingCount      int        `json:"ratingCount"`
	CreatedAt        time.Time  `json:"createdAt"`
}

func RestaurantFrom(r models.Restaurant) Restaurant {
	return Restaurant{
		ID:               r.ID,
		Name:             r.Name,
		Address:          r.Address,
		OwnerID:          r.OwnerID,
		RestaurantTypeID: r.RestaurantTypeID,
		Phone:            r.Phone,
		OpeningHours:     r.OpeningHours,
		ImageURL:         r.ImageURL,
		Description:      r.Description,
		IsActive:         r.IsActive,
		Rating:           r.Rating,
		RatingCount:      r.RatingCount,
		CreatedAt:        r.CreatedAt,
	}
}

func Restaurants(rs []models.Restaurant) []Restaurant { return collection.Map(rs, RestaurantFrom) }

type Menu struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description"`
	Price        float64   `json:"price"`
	RestaurantID uuid.UUID `json:"restaurantId"`
	CategoryID   uuid.UUID `json:"categoryId"`
	Rating       *float64  `json:"rating"`
	ImageURL     *string   `json:"imageUrl"`
	CreatedAt    time.Time `json:"createdAt"`
	IsActive     bool      `json:"isActive"`
	RatingCount  int       `json:"ratingCount"`
}

func MenuFrom(m models.Menu) Menu {
	return Menu{
		ID:           m.ID,
		Name:         m.Name,
		Description:  m.Description,
		Price:        m.Price,
		RestaurantID: m.RestaurantID,
		CategoryID:   m.CategoryID,
		Rating:       m.Rating,
		ImageURL:     m.ImageURL,
		CreatedAt:    m.CreatedAt,
		IsActive:     m.IsActive,
		RatingCount:  m.RatingCount,
	}
}

func Menus(ms []models.Menu) []Menu { return collection.Map(ms, MenuFrom) }
