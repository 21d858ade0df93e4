package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/shashiranjanraj/dinehub/app/models"
	"github.com/shashiranjanraj/dinehub/pkg/orm"
	"gorm.io/gorm"
)

// UserRepository handles database operations for User.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) query(ctx context.Context) *orm.Query {
	return orm.New(r.db).WithContext(ctx)
}

// FindByUsername looks up an account by its exact username.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User
	err := r.query(ctx).Model(&models.User{}).Where("username = ?", username).First(&user)
	return user, err
}

// FindByID looks up an account by primary key.
func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	var user models.User
	err := r.query(ctx).Model(&models.User{}).Where("id = ?", id).First(&user)
	return user, err
}

// UsernameTaken reports whether another account (not except) uses username.
func (r *UserRepository) UsernameTaken(ctx context.Context, username string, except uuid.UUID) (bool, error) {
	q := r.query(ctx).Model(&models.User{}).Where("username = ?", username)
	if except != uuid.Nil {
		q = q.Where("id <> ?", except)
	}
	return q.Exists()
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return r.query(ctx).Create(user)
}

func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	return r.query(ctx).Save(user)
}

// All returns one page of accounts ordered by username.
func (r *UserRepository) All(ctx context.Context, page, pageSize int) ([]models.User, orm.Pagination, error) {
	var users []models.User
	p, err := r.query(ctx).Model(&models.User{}).Order("username").GetWithPagination(&users, page, pageSize)
	return users, p, err
}
