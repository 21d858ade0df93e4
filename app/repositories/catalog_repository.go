package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shashiranjanraj/dinehub/app/models"
	"github.com/shashiranjanraj/dinehub/pkg/orm"
	"gorm.io/gorm"
)

// Cache keys for the catalog lists served through orm.Query.Cache.
const (
	RestaurantTypesCacheKey = "catalog:restaurant_types"
	MenuCategoriesCacheKey  = "catalog:menu_categories"
)

// RestaurantTypeRepository handles database operations for RestaurantType.
type RestaurantTypeRepository struct {
	db  *gorm.DB
	ttl time.Duration
}

func NewRestaurantTypeRepository(db *gorm.DB, ttl time.Duration) *RestaurantTypeRepository {
	return &RestaurantTypeRepository{db: db, ttl: ttl}
}

func (r *RestaurantTypeRepository) query(ctx context.Context) *orm.Query {
	return orm.New(r.db).WithContext(ctx)
}

// All returns every type ordered by name, read through the cache.
func (r *RestaurantTypeRepository) All(ctx context.Context) ([]models.RestaurantType, error) {
	types := []models.RestaurantType{}
	err := r.query(ctx).Model(&models.RestaurantType{}).Order("name").Cache(RestaurantTypesCacheKey, r.ttl, &types)
	return types, err
}

func (r *RestaurantTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (models.RestaurantType, error) {
	var t models.RestaurantType
	err := r.query(ctx).Model(&models.RestaurantType{}).Where("id = ?", id).First(&t)
	return t, err
}

func (r *RestaurantTypeRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.query(ctx).Model(&models.RestaurantType{}).Where("id = ?", id).Exists()
}

// CodeTaken reports whether another type (not except) uses code.
func (r *RestaurantTypeRepository) CodeTaken(ctx context.Context, code string, except uuid.UUID) (bool, error) {
	q := r.query(ctx).Model(&models.RestaurantType{}).Where("code = ?", code)
	if except != uuid.Nil {
		q = q.Where("id <> ?", except)
	}
	return q.Exists()
}

func (r *RestaurantTypeRepository) Create(ctx context.Context, t *models.RestaurantType) error {
	if err := r.query(ctx).Create(t); err != nil {
		return err
	}
	orm.Forget(RestaurantTypesCacheKey)
	return nil
}

func (r *RestaurantTypeRepository) Update(ctx context.Context, t *models.RestaurantType) error {
	if err := r.query(ctx).Save(t); err != nil {
		return err
	}
	orm.Forget(RestaurantTypesCacheKey)
	return nil
}

// Delete detaches the type's restaurants and removes the type in one
// transaction.
func (r *RestaurantTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.query(ctx).Transaction(func(tx *orm.Query) error {
		if err := tx.Model(&models.Restaurant{}).Where("restaurant_type_id = ?", id).
			Updates(map[string]interface{}{"restaurant_type_id": nil}); err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.RestaurantType{})
	})
	if err != nil {
		return err
	}
	orm.Forget(RestaurantTypesCacheKey)
	return nil
}

// MenuCategoryRepository handles database operations for MenuCategory.
type MenuCategoryRepository struct {
	db  *gorm.DB
	ttl time.Duration
}

func NewMenuCategoryRepository(db *gorm.DB, ttl time.Duration) *MenuCategoryRepository {
	return &MenuCategoryRepository{db: db, ttl: ttl}
}

func (r *MenuCategoryRepository) query(ctx context.Context) *orm.Query {
	return orm.New(r.db).WithContext(ctx)
}

// All returns every category ordered by name, read through the cache.
func (r *MenuCategoryRepository) All(ctx context.Context) ([]models.MenuCategory, error) {
	categories := []models.MenuCategory{}
	err := r.query(ctx).Model(&models.MenuCategory{}).Order("name").Cache(MenuCategoriesCacheKey, r.ttl, &categories)
	return categories, err
}

func (r *MenuCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (models.MenuCategory, error) {
	var c models.MenuCategory
	err := r.query(ctx).Model(&models.MenuCategory{}).Where("id = ?", id).First(&c)
	return c, err
}

func (r *MenuCategoryRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.query(ctx).Model(&models.MenuCategory{}).Where("id = ?", id).Exists()
}

// InUse reports whether any menu references the category.
func (r *MenuCategoryRepository) InUse(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.query(ctx).Model(&models.Menu{}).Where("category_id = ?", id).Exists()
}

func (r *MenuCategoryRepository) Create(ctx context.Context, c *models.MenuCategory) error {
	if err := r.query(ctx).Create(c); err != nil {
		return err
	}
	orm.Forget(MenuCategoriesCacheKey)
	return nil
}

func (r *MenuCategoryRepository) Update(ctx context.Context, c *models.MenuCategory) error {
	if err := r.query(ctx).Save(c); err != nil {
		return err
	}
	orm.Forget(MenuCategoriesCacheKey)
	return nil
}

func (r *MenuCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.query(ctx).Where("id = ?", id).Delete(&models.MenuCategory{}); err != nil {
		return err
	}
	orm.Forget(MenuCategoriesCacheKey)
	return nil
}
