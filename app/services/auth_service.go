package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shashiranjanraj/dinehub/app/models"
	"github.com/shashiranjanraj/dinehub/app/repositories"
	"github.com/shashiranjanraj/dinehub/pkg/auth"
	"github.com/shashiranjanraj/dinehub/pkg/metrics"
	"github.com/shashiranjanraj/dinehub/pkg/orm"
)

// RegisterInput is the self-registration payload. Roles cannot be chosen
// by the caller.
type RegisterInput struct {
	Username    string  `json:"username" validate:"required,max=100"`
	Password    string  `json:"password" validate:"required,max=128"`
	Name        *string `json:"name" validate:"nullable,max=200"`
	Address     *string `json:"address" validate:"nullable,max=500"`
	PhoneNumber *string `json:"phoneNumber" validate:"nullable,max=50"`
}

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService(users *repositories.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register creates an account with the user role and returns its id.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (uuid.UUID, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		metrics.AuthAttempts.WithLabelValues("register", "rejected").Inc()
		return uuid.Nil, badRequest("Username and password are required")
	}

	taken, err := s.users.UsernameTaken(ctx, username, uuid.Nil)
	if err != nil {
		return uuid.Nil, err
	}
	if taken {
		metrics.AuthAttempts.WithLabelValues("register", "rejected").Inc()
		return uuid.Nil, conflict("Username already exists")
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return uuid.Nil, err
	}

	user := models.User{
		Username:     username,
		PasswordHash: hash,
		Name:         trimmed(in.Name),
		Address:      trimmed(in.Address),
		PhoneNumber:  trimmed(in.PhoneNumber),
		Roles:        []string{auth.RoleUser},
	}
	if err := s.users.Create(ctx, &user); err != nil {
		if orm.IsDuplicate(err) {
			metrics.AuthAttempts.WithLabelValues("register", "rejected").Inc()
		}
		return uuid.Nil, unique(err, "Username already exists")
	}

	metrics.AuthAttempts.WithLabelValues("register", "ok").Inc()
	return user.ID, nil
}

// Login checks the credentials and issues an access token.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (string, error) {
	user, err := s.users.FindByUsername(ctx, strings.TrimSpace(in.Username))
	if err != nil && !orm.IsNotFound(err) {
		return "", err
	}
	if err != nil || !auth.CheckPassword(user.PasswordHash, in.Password) {
		metrics.AuthAttempts.WithLabelValues("login", "rejected").Inc()
		return "", fail(ErrUnauthorized, "Invalid username or password")
	}

	token, err := auth.GenerateToken(auth.Identity{
		ID:       user.ID.String(),
		Username: user.Username,
		Name:     user.DisplayName(),
		Roles:    user.Roles,
	})
	if err != nil {
		return "", err
	}

	metrics.AuthAttempts.WithLabelValues("login", "ok").Inc()
	return token, nil
}

// trimmed trims s, mapping blank strings to nil.
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
