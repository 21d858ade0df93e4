package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shashiranjanraj/dinehub/app/models"
	"github.com/shashiranjanraj/dinehub/app/policies"
	"github.com/shashiranjanraj/dinehub/app/repositories"
	"github.com/shashiranjanraj/dinehub/pkg/auth"
	"github.com/shashiranjanraj/dinehub/pkg/orm"
)

// RestaurantInput is used for both create and full-replace update.
type RestaurantInput struct {
	Name             string     `json:"name" validate:"required,max=200"`
	Address          string     `json:"address" validate:"required,max=500"`
	RestaurantTypeID *uuid.UUID `json:"restaurantTypeId"`
	Phone            *string    `json:"phone" validate:"nullable,max=50"`
	OpeningHours     *string    `json:"openingHours" validate:"nullable,max=100"`
	ImageURL         *string    `json:"imageUrl" validate:"nullable,max=1000"`
	Description      *string    `json:"description"`
	IsActive         *bool      `json:"isActive"`
}

type RestaurantService struct {
	restaurants *repositories.RestaurantRepository
	types       *repositories.RestaurantTypeRepository
}

func NewRestaurantService(restaurants *repositories.RestaurantRepository, types *repositories.RestaurantTypeRepository) *RestaurantService {
	return &RestaurantService{restaurants: restaurants, types: types}
}

func (s *RestaurantService) List(ctx context.Context, page, pageSize int) ([]models.Restaurant, orm.Pagination, error) {
	return s.restaurants.All(ctx, page, pageSize)
}

func (s *RestaurantService) ByType(ctx context.Context, typeID uuid.UUID, page, pageSize int) ([]models.Restaurant, orm.Pagination, error) {
	return s.restaurants.ByType(ctx, typeID, page, pageSize)
}

func (s *RestaurantService) Get(ctx context.Context, id uuid.UUID) (models.Restaurant, error) {
	r, err := s.restaurants.FindByID(ctx, id)
	return r, lookup(err, "Restaurant")
}

// ByOwner returns the restaurant of ownerID; the actor must be that owner
// or an admin.
func (s *RestaurantService) ByOwner(ctx context.Context, actor *auth.Claims, ownerID uuid.UUID) (models.Restaurant, error) {
	if !policies.CanManage(actor, ownerID) {
		return models.Restaurant{}, forbidden()
	}
	r, err := s.restaurants.FindByOwner(ctx, ownerID)
	return r, lookup(err, "Restaurant")
}

// Create registers the actor's restaurant. An account owns at most one.
func (s *RestaurantService) Create(ctx context.Context, actor *auth.Claims, in RestaurantInput) (models.Restaurant, error) {
	if actor == nil {
		return models.Restaurant{}, forbidden()
	}
	ownerID, err := uuid.Parse(actor.Subject)
	if err != nil {
		return models.Restaurant{}, forbidden()
	}
	if err := s.check(ctx, &in); err != nil {
		return models.Restaurant{}, err
	}

	owns, err := s.restaurants.OwnerHasRestaurant(ctx, ownerID)
	if err != nil {
		return models.Restaurant{}, err
	}
	if owns {
		return models.Restaurant{}, conflict("You already own a restaurant")
	}

	r := models.Restaurant{OwnerID: ownerID, IsActive: true}
	apply(&r, in)
	if err := s.restaurants.Create(ctx, &r); err != nil {
		return models.Restaurant{}, unique(err, "You already own a restaurant")
	}
	publish(EventRestaurantCreated, r.ID)
	return r, nil
}

// Update replaces every mutable field of restaurant id.
func (s *RestaurantService) Update(ctx context.Context, actor *auth.Claims, id uuid.UUID, in RestaurantInput) error {
	r, err := s.restaurants.FindByID(ctx, id)
	if err != nil {
		return lookup(err, "Restaurant")
	}
	if !policies.CanManage(actor, r.OwnerID) {
		return forbidden()
	}
	if err := s.check(ctx, &in); err != nil {
		return err
	}

	apply(&r, in)
	if err := s.restaurants.Update(ctx, &r); err != nil {
		return err
	}
	publish(EventRestaurantUpdated, r.ID)
	return nil
}

// Delete removes the restaurant together with its menus.
func (s *RestaurantService) Delete(ctx context.Context, actor *auth.Claims, id uuid.UUID) error {
	r, err := s.restaurants.FindByID(ctx, id)
	if err != nil {
		return lookup(err, "Restaurant")
	}
	if !policies.CanManage(actor, r.OwnerID) {
		return forbidden()
	}
	if err := s.restaurants.Delete(ctx, id); err != nil {
		return err
	}
	publish(EventRestaurantDeleted, id)
	return nil
}

// check trims in and verifies the referenced type.
func (s *RestaurantService) check(ctx context.Context, in *RestaurantInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Address = strings.TrimSpace(in.Address)
	if in.Name == "" || in.Address == "" {
		return badRequest("Name and Address are required")
	}
	if in.RestaurantTypeID != nil && *in.RestaurantTypeID == uuid.Nil {
		in.RestaurantTypeID = nil
	}
	if in.RestaurantTypeID != nil {
		ok, err := s.types.Exists(ctx, *in.RestaurantTypeID)
		if err != nil {
			return err
		}
		if !ok {
			return badRequest("Invalid RestaurantTypeId")
		}
	}
	return nil
}

func apply(r *models.Restaurant, in RestaurantInput) {
	r.Name = in.Name
	r.Address = in.Address
	r.RestaurantTypeID = in.RestaurantTypeID
	r.Phone = trimmed(in.Phone)
	r.OpeningHours = trimmed(in.OpeningHours)
	r.ImageURL = trimmed(in.ImageURL)
	r.Description = trimmed(in.Description)
	r.IsActive = in.IsActive == nil || *in.IsActive
}
