package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/harentsoaR/dental-clinic/internal/models"
	"github.com/harentsoaR/dental-clinic/internal/observability"
	"github.com/harentsoaR/dental-clinic/internal/sessions"
	"github.com/harentsoaR/dental-clinic/internal/store"
	"github.com/harentsoaR/dental-clinic/internal/utils"
	"go.uber.org/zap"
)

// LoginResult is returned on a successful login.
type LoginResult struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expiresAt"`
	User      models.Identity `json:"user"`
}

// AuthService issues, validates and revokes session tokens.
type AuthService struct {
	users   store.UserStore
	tokens  *utils.TokenManager
	revoked sessions.RevocationStore
	logger  *zap.Logger
}

func NewAuthService(users store.UserStore, tokens *utils.TokenManager, revoked sessions.RevocationStore, logger *zap.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, revoked: revoked, logger: logger}
}

// Login checks the credentials. Unknown users and wrong passwords both yield
// ErrInvalidCredentials; store faults yield ErrAuthUnavailable.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.users.FindByUsername(ctx, username)
	switch {
	case errors.Is(err, models.ErrUserNotFound):
		observability.LoginAttempts.WithLabelValues("invalid_credentials").Inc()
		return nil, models.ErrInvalidCredentials
	case err != nil:
		observability.LoginAttempts.WithLabelValues("error").Inc()
		s.logger.Error("login lookup failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", models.ErrAuthUnavailable, err)
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		observability.LoginAttempts.WithLabelValues("invalid_credentials").Inc()
		return nil, models.ErrInvalidCredentials
	}

	token, claims, err := s.tokens.GenerateJWT(user.Identity())
	if err != nil {
		observability.LoginAttempts.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%w: %v", models.ErrAuthUnavailable, err)
	}

	observability.LoginAttempts.WithLabelValues("success").Inc()
	s.logger.Info("user logged in", zap.String("username", user.Username), zap.String("role", string(user.Role)))
	return &LoginResult{Token: token, ExpiresAt: claims.ExpiresAt.Time, User: claims.Identity()}, nil
}

// Authenticate validates a token and checks that it has not been revoked.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*utils.Claims, error) {
	claims, err := s.tokens.ValidateJWT(token)
	if err != nil {
		return nil, err
	}
	revoked, err := s.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		s.logger.Error("revocation check failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", models.ErrAuthUnavailable, err)
	}
	if revoked {
		return nil, models.ErrTokenRevoked
	}
	return claims, nil
}

// Logout revokes the token until it would have expired.
func (s *AuthService) Logout(ctx context.Context, claims *utils.Claims) error {
	if claims.ExpiresAt == nil {
		return nil
	}
	if err := s.revoked.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		return fmt.Errorf("%w: %v", models.ErrAuthUnavailable, err)
	}
	s.logger.Info("user logged out", zap.String("username", claims.Username))
	return nil
}
