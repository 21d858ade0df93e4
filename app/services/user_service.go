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

// UpdateUserInput changes only the fields that are present.
type UpdateUserInput struct {
	Username    *string `json:"username" validate:"nullable,max=100"`
	Name        *string `json:"name" validate:"nullable,max=200"`
	Address     *string `json:"address" validate:"nullable,max=500"`
	PhoneNumber *string `json:"phoneNumber" validate:"nullable,max=50"`
}

type UserService struct {
	users *repositories.UserRepository
}

func NewUserService(users *repositories.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List(ctx context.Context, page, pageSize int) ([]models.User, orm.Pagination, error) {
	return s.users.All(ctx, page, pageSize)
}

// Me returns the actor's own account.
func (s *UserService) Me(ctx context.Context, actor *auth.Claims) (models.User, error) {
	if actor == nil {
		return models.User{}, fail(ErrUnauthorized, "Unauthorized")
	}
	id, err := uuid.Parse(actor.Subject)
	if err != nil {
		return models.User{}, fail(ErrUnauthorized, "Unauthorized")
	}
	user, err := s.users.FindByID(ctx, id)
	return user, lookup(err, "User")
}

// Update applies in to account id. Only that account or an admin may do so.
func (s *UserService) Update(ctx context.Context, actor *auth.Claims, id uuid.UUID, in UpdateUserInput) error {
	if !policies.CanManage(actor, id) {
		return forbidden()
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return lookup(err, "User")
	}

	if in.Username != nil {
		username := strings.TrimSpace(*in.Username)
		if username == "" {
			return badRequest("Username cannot be empty")
		}
		if username != user.Username {
			taken, err := s.users.UsernameTaken(ctx, username, user.ID)
			if err != nil {
				return err
			}
			if taken {
				return conflict("Username already exists")
			}
			user.Username = username
		}
	}
	if in.Name != nil {
		user.Name = trimmed(in.Name)
	}
	if in.Address != nil {
		user.Address = trimmed(in.Address)
	}
	if in.PhoneNumber != nil {
		user.PhoneNumber = trimmed(in.PhoneNumber)
	}

	return unique(s.users.Update(ctx, &user), "Username already exists")
}
