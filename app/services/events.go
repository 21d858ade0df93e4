package services

import (
	"github.com/google/uuid"
	"github.com/shashiranjanraj/dinehub/pkg/event"
)

// Catalog events fired after a successful write.
const (
	EventRestaurantCreated     = "restaurant.created"
	EventRestaurantUpdated     = "restaurant.updated"
	EventRestaurantDeleted     = "restaurant.deleted"
	EventMenuCreated           = "menu.created"
	EventMenuUpdated           = "menu.updated"
	EventMenuDeleted           = "menu.deleted"
	EventMenuCategoryCreated   = "menucategory.created"
	EventMenuCategoryUpdated   = "menucategory.updated"
	EventMenuCategoryDeleted   = "menucategory.deleted"
	EventRestaurantTypeCreated = "restauranttype.created"
	EventRestaurantTypeUpdated = "restauranttype.updated"
	EventRestaurantTypeDeleted = "restauranttype.deleted"
)

// CatalogEvent is the payload of every catalog event.
type CatalogEvent struct {
	Event string    `json:"event"`
	ID    uuid.UUID `json:"id"`
}

func publish(name string, id uuid.UUID) {
	event.Fire(name, CatalogEvent{Event: name, ID: id})
}
