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

// MenuInput is used for both create and full-replace update.
type MenuInput struct {
	Name         string    `json:"name" validate:"required,max=200"`
	Description  *string   `json:"description"`
	Price        *float64  `json:"price" validate:"required,gte=0"`
	RestaurantID uuid.UUID `json:"restaurantId" validate:"required"`
	CategoryID   uuid.UUID `json:"categoryId" validate:"required"`
	ImageURL     *string   `json:"imageUrl" validate:"nullable,max=1000"`
	IsActive     *bool     `json:"isActive"`
}

type MenuService struct {
	menus       *repositories.MenuRepository
	restaurants *repositories.RestaurantRepository
	categories  *repositories.MenuCategoryRepository
}

func NewMenuService(
	menus *repositories.MenuRepository,
	restaurants *repositories.RestaurantRepository,
	categories *repositories.MenuCategoryRepository,
) *MenuService {
	return &MenuService{menus: menus, restaurants: restaurants, categories: categories}
}

func (s *MenuService) List(ctx context.Context, page, pageSize int) ([]models.Menu, orm.Pagination, error) {
	return s.menus.All(ctx, page, pageSize)
}

func (s *MenuService) ByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]models.Menu, error) {
	return s.menus.ByRestaurant(ctx, restaurantID)
}

func (s *MenuService) Get(ctx context.Context, id uuid.UUID) (models.Menu, error) {
	m, err := s.menus.FindByID(ctx, id)
	return m, lookup(err, "Menu")
}

// Create adds a dish to a restaurant the actor manages.
func (s *MenuService) Create(ctx context.Context, actor *auth.Claims, in MenuInput) (models.Menu, error) {
	restaurant, err := s.check(ctx, &in)
	if err != nil {
		return models.Menu{}, err
	}
	if !policies.CanManage(actor, restaurant.OwnerID) {
		return models.Menu{}, forbidden()
	}

	m := models.Menu{}
	fill(&m, in)
	if err := s.menus.Create(ctx, &m); err != nil {
		return models.Menu{}, err
	}
	publish(EventMenuCreated, m.ID)
	return m, nil
}

// Update replaces every mutable field of menu id. Moving a dish requires
// rights over both the current and the target restaurant.
func (s *MenuService) Update(ctx context.Context, actor *auth.Claims, id uuid.UUID, in MenuInput) error {
	m, err := s.menus.FindByID(ctx, id)
	if err != nil {
		return lookup(err, "Menu")
	}
	if err := s.authorize(ctx, actor, m.RestaurantID); err != nil {
		return err
	}

	target, err := s.check(ctx, &in)
	if err != nil {
		return err
	}
	if target.ID != m.RestaurantID && !policies.CanManage(actor, target.OwnerID) {
		return forbidden()
	}

	fill(&m, in)
	if err := s.menus.Update(ctx, &m); err != nil {
		return err
	}
	publish(EventMenuUpdated, m.ID)
	return nil
}

func (s *MenuService) Delete(ctx context.Context, actor *auth.Claims, id uuid.UUID) error {
	m, err := s.menus.FindByID(ctx, id)
	if err != nil {
		return lookup(err, "Menu")
	}
	if err := s.authorize(ctx, actor, m.RestaurantID); err != nil {
		return err
	}
	if err := s.menus.Delete(ctx, id); err != nil {
		return err
	}
	publish(EventMenuDeleted, id)
	return nil
}

// authorize checks the actor against the owner of restaurantID. A dish
// whose restaurant is gone can only be managed by an admin.
func (s *MenuService) authorize(ctx context.Context, actor *auth.Claims, restaurantID uuid.UUID) error {
	r, err := s.restaurants.FindByID(ctx, restaurantID)
	if err != nil && !orm.IsNotFound(err) {
		return err
	}
	if err != nil {
		if actor != nil && actor.HasRole(auth.RoleAdmin) {
			return nil
		}
		return forbidden()
	}
	if !policies.CanManage(actor, r.OwnerID) {
		return forbidden()
	}
	return nil
}

// check trims in and loads the referenced restaurant and category.
func (s *MenuService) check(ctx context.Context, in *MenuInput) (models.Restaurant, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" || in.Price == nil || *in.Price < 0 || in.RestaurantID == uuid.Nil || in.CategoryID == uuid.Nil {
		return models.Restaurant{}, badRequest("Name, Price, RestaurantId and CategoryId are required")
	}

	restaurant, err := s.restaurants.FindByID(ctx, in.RestaurantID)
	if orm.IsNotFound(err) {
		return models.Restaurant{}, badRequest("Invalid RestaurantId")
	}
	if err != nil {
		return models.Restaurant{}, err
	}

	ok, err := s.categories.Exists(ctx, in.CategoryID)
	if err != nil {
		return models.Restaurant{}, err
	}
	if !ok {
		return models.Restaurant{}, badRequest("Invalid CategoryId")
	}
	return restaurant, nil
}

func fill(m *models.Menu, in MenuInput) {
	m.Name = in.Name
	m.Description = trimmed(in.Description)
	m.Price = *in.Price
	m.RestaurantID = in.RestaurantID
	m.CategoryID = in.CategoryID
	m.ImageURL = trimmed(in.ImageURL)
	m.IsActive = in.IsActive == nil || *in.IsActive
}
