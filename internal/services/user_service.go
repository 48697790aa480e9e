package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/harentsoaR/dental-clinic/internal/models"
	"github.com/harentsoaR/dental-clinic/internal/store"
	"github.com/harentsoaR/dental-clinic/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type UserService struct {
	users      store.UserStore
	bcryptCost int
	logger     *zap.Logger
}

func NewUserService(users store.UserStore, bcryptCost int, logger *zap.Logger) *UserService {
	return &UserService{users: users, bcryptCost: bcryptCost, logger: logger}
}

// List returns the accounts ordered by username. Password hashes are never
// serialized.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	return users, nil
}

func (s *UserService) Create(ctx context.Context, f models.UserFields) (*models.User, error) {
	username := strings.TrimSpace(f.Username)
	if username == "" || f.Password == "" || f.Role == "" {
		return nil, models.ErrInvalidUser
	}
	if !f.Role.Valid() {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidRole, f.Role)
	}

	_, err := s.users.FindByUsername(ctx, username)
	if err == nil {
		return nil, models.ErrUsernameTaken
	}
	if !errors.Is(err, models.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hash, err := utils.HashPassword(f.Password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:       primitive.NewObjectID(),
		Username: username,
		Password: hash,
		Role:     f.Role,
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user created", zap.String("username", user.Username), zap.String("role", string(user.Role)))
	return user, nil
}

// Delete removes a user account. The caller cannot delete itself.
func (s *UserService) Delete(ctx context.Context, id primitive.ObjectID, caller models.Identity) error {
	if id.Hex() == caller.UserID {
		return models.ErrCannotDeleteSelf
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("user deleted", zap.String("id", id.Hex()), zap.String("by", caller.Username))
	return nil
}
