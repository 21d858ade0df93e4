package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shashiranjanraj/dinehub/app/models"
	"github.com/shashiranjanraj/dinehub/app/repositories"
)

type RestaurantTypeInput struct {
	Code        string  `json:"code" validate:"required,max=20"`
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description" validate:"nullable,max=500"`
}

// RestaurantTypeService manages the restaurant type catalog. Callers are
// expected to have checked the admin role for writes.
type RestaurantTypeService struct {
	types *repositories.RestaurantTypeRepository
}

func NewRestaurantTypeService(types *repositories.RestaurantTypeRepository) *RestaurantTypeService {
	return &RestaurantTypeService{types: types}
}

func (s *RestaurantTypeService) List(ctx context.Context) ([]models.RestaurantType, error) {
	return s.types.All(ctx)
}

func (s *RestaurantTypeService) Get(ctx context.Context, id uuid.UUID) (models.RestaurantType, error) {
	t, err := s.types.FindByID(ctx, id)
	return t, lookup(err, "Restaurant type")
}

func (s *RestaurantTypeService) Create(ctx context.Context, in RestaurantTypeInput) (models.RestaurantType, error) {
	code, name := strings.TrimSpace(in.Code), strings.TrimSpace(in.Name)
	if code == "" || name == "" {
		return models.RestaurantType{}, badRequest("Code and Name are required")
	}
	if err := s.ensureCodeFree(ctx, code, uuid.Nil); err != nil {
		return models.RestaurantType{}, err
	}

	t := models.RestaurantType{Code: code, Name: name, Description: trimmed(in.Description)}
	if err := s.types.Create(ctx, &t); err != nil {
		return models.RestaurantType{}, unique(err, "Restaurant type code already exists")
	}
	publish(EventRestaurantTypeCreated, t.ID)
	return t, nil
}

func (s *RestaurantTypeService) Update(ctx context.Context, id uuid.UUID, in RestaurantTypeInput) error {
	code, name := strings.TrimSpace(in.Code), strings.TrimSpace(in.Name)
	if code == "" || name == "" {
		return badRequest("Code and Name are required")
	}

	t, err := s.types.FindByID(ctx, id)
	if err != nil {
		return lookup(err, "Restaurant type")
	}
	if err := s.ensureCodeFree(ctx, code, id); err != nil {
		return err
	}

	t.Code, t.Name, t.Description = code, name, trimmed(in.Description)
	if err := s.types.Update(ctx, &t); err != nil {
		return unique(err, "Restaurant type code already exists")
	}
	publish(EventRestaurantTypeUpdated, t.ID)
	return nil
}

// Delete removes the type; its restaurants keep existing without one.
func (s *RestaurantTypeService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.types.FindByID(ctx, id); err != nil {
		return lookup(err, "Restaurant type")
	}
	if err := s.types.Delete(ctx, id); err != nil {
		return err
	}
	publish(EventRestaurantTypeDeleted, id)
	return nil
}

func (s *RestaurantTypeService) ensureCodeFree(ctx context.Context, code string, except uuid.UUID) error {
	taken, err := s.types.CodeTaken(ctx, code, except)
	if err != nil {
		return err
	}
	if taken {
		return conflict("Restaurant type code already exists")
	}
	return nil
}

type CreateMenuCategoryInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"required,max=500"`
}

type UpdateMenuCategoryInput struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description" validate:"nullable,max=500"`
}

type MenuCategoryService struct {
	categories *repositories.MenuCategoryRepository
}

func NewMenuCategoryService(categories *repositories.MenuCategoryRepository) *MenuCategoryService {
	return &MenuCategoryService{categories: categories}
}

func (s *MenuCategoryService) List(ctx context.Context) ([]models.MenuCategory, error) {
	return s.categories.All(ctx)
}

func (s *MenuCategoryService) Get(ctx context.Context, id uuid.UUID) (models.MenuCategory, error) {
	c, err := s.categories.FindByID(ctx, id)
	return c, lookup(err, "Menu category")
}

func (s *MenuCategoryService) Create(ctx context.Context, in CreateMenuCategoryInput) (models.MenuCategory, error) {
	name := strings.TrimSpace(in.Name)
	description := trimmed(&in.Description)
	if name == "" || description == nil {
		return models.MenuCategory{}, badRequest("Name and Description are required")
	}

	c := models.MenuCategory{Name: name, Description: description}
	if err := s.categories.Create(ctx, &c); err != nil {
		return models.MenuCategory{}, err
	}
	publish(EventMenuCategoryCreated, c.ID)
	return c, nil
}

func (s *MenuCategoryService) Update(ctx context.Context, id uuid.UUID, in UpdateMenuCategoryInput) error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return badRequest("Name is required")
	}

	c, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return lookup(err, "Menu category")
	}

	c.Name, c.Description = name, trimmed(in.Description)
	if err := s.categories.Update(ctx, &c); err != nil {
		return err
	}
	publish(EventMenuCategoryUpdated, c.ID)
	return nil
}

// Delete refuses while any menu still uses the category.
func (s *MenuCategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.categories.FindByID(ctx, id); err != nil {
		return lookup(err, "Menu category")
	}
	inUse, err := s.categories.InUse(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return conflict("Menu category is used by existing menus")
	}
	if err := s.categories.Delete(ctx, id); err != nil {
		return err
	}
	publish(EventMenuCategoryDeleted, id)
	return nil
}
