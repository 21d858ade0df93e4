package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/shashiranjanraj/dinehub/app/models"
	"github.com/shashiranjanraj/dinehub/pkg/orm"
	"gorm.io/gorm"
)

// RestaurantRepository handles database operations for Restaurant and the
// menus that hang off it.
type RestaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{db: db}
}

func (r *RestaurantRepository) query(ctx context.Context) *orm.Query {
	return orm.New(r.db).WithContext(ctx)
}

// All returns one page of restaurants, newest first.
func (r *RestaurantRepository) All(ctx context.Context, page, pageSize int) ([]models.Restaurant, orm.Pagination, error) {
	restaurants := []models.Restaurant{}
	p, err := r.query(ctx).Model(&models.Restaurant{}).Order("created_at desc").GetWithPagination(&restaurants, page, pageSize)
	return restaurants, p, err
}

// ByType returns one page of restaurants of the given type.
func (r *RestaurantRepository) ByType(ctx context.Context, typeID uuid.UUID, page, pageSize int) ([]models.Restaurant, orm.Pagination, error) {
	restaurants := []models.Restaurant{}
	p, err := r.query(ctx).Model(&models.Restaurant{}).
		Where("restaurant_type_id = ?", typeID).
		Order("created_at desc").
		GetWithPagination(&restaurants, page, pageSize)
	return restaurants, p, err
}

func (r *RestaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (models.Restaurant, error) {
	var restaurant models.Restaurant
	err := r.query(ctx).Model(&models.Restaurant{}).Where("id = ?", id).First(&restaurant)
	return restaurant, err
}

// FindByOwner returns the restaurant owned by ownerID.
func (r *RestaurantRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (models.Restaurant, error) {
	var restaurant models.Restaurant
	err := r.query(ctx).Model(&models.Restaurant{}).Where("owner_id = ?", ownerID).First(&restaurant)
	return restaurant, err
}

func (r *RestaurantRepository) OwnerHasRestaurant(ctx context.Context, ownerID uuid.UUID) (bool, error) {
	return r.query(ctx).Model(&models.Restaurant{}).Where("owner_id = ?", ownerID).Exists()
}

func (r *RestaurantRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.query(ctx).Model(&models.Restaurant{}).Where("id = ?", id).Exists()
}

func (r *RestaurantRepository) Create(ctx context.Context, restaurant *models.Restaurant) error {
	return r.query(ctx).Create(restaurant)
}

func (r *RestaurantRepository) Update(ctx context.Context, restaurant *models.Restaurant) error {
	return r.query(ctx).Save(restaurant)
}

// Delete removes the restaurant's menus, then the restaurant, in one
// transaction.
func (r *RestaurantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.query(ctx).Transaction(func(tx *orm.Query) error {
		if err := tx.Where("restaurant_id = ?", id).Delete(&models.Menu{}); err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Restaurant{})
	})
}

// MenuRepository handles database operations for Menu.
type MenuRepository struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{db: db}
}

func (r *MenuRepository) query(ctx context.Context) *orm.Query {
	return orm.New(r.db).WithContext(ctx)
}

// All returns one page of menus, newest first.
func (r *MenuRepository) All(ctx context.Context, page, pageSize int) ([]models.Menu, orm.Pagination, error) {
	menus := []models.Menu{}
	p, err := r.query(ctx).Model(&models.Menu{}).Order("created_at desc").GetWithPagination(&menus, page, pageSize)
	return menus, p, err
}

// ByRestaurant returns every menu of one restaurant ordered by name.
func (r *MenuRepository) ByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]models.Menu, error) {
	menus := []models.Menu{}
	err := r.query(ctx).Model(&models.Menu{}).Where("restaurant_id = ?", restaurantID).Order("name").Get(&menus)
	return menus, err
}

func (r *MenuRepository) FindByID(ctx context.Context, id uuid.UUID) (models.Menu, error) {
	var menu models.Menu
	err := r.query(ctx).Model(&models.Menu{}).Where("id = ?", id).First(&menu)
	return menu, err
}

func (r *MenuRepository) Create(ctx context.Context, menu *models.Menu) error {
	return r.query(ctx).Create(menu)
}

func (r *MenuRepository) Update(ctx context.Context, menu *models.Menu) error {
	return r.query(ctx).Save(menu)
}

func (r *MenuRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.query(ctx).Where("id = ?", id).Delete(&models.Menu{})
}
