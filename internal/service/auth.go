package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/outfitly/outfitly-server/internal/auth"
	"github.com/outfitly/outfitly-server/internal/domain"
	apperrors "github.com/outfitly/outfitly-server/internal/errors"
	"github.com/outfitly/outfitly-server/internal/id"
	"github.com/outfitly/outfitly-server/internal/store"
)

// AuthService handles user registration, login, and token verification.
type AuthService struct {
	store  *store.Store
	tokens *auth.TokenService
	logger *slog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(store *store.Store, tokens *auth.TokenService, logger *slog.Logger) *AuthService {
	return &AuthService{
		store:  store,
		tokens: tokens,
		logger: logger,
	}
}

// AuthResponse is returned on successful login.
type AuthResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"token_type"`
	ExpiresIn int64        `json:"expires_in"`
	User      *domain.User `json:"user"`
}

// Register creates a new user account with a bcrypt password hash.
// The email must not already be registered.
func (s *AuthService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	userID, err := id.Generate("user")
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           userID,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		if apperrors.Is(err, store.ErrEmailExists) {
			return nil, apperrors.Conflict("email already registered")
		}
		return nil, err
	}

	if s.logger != nil {
		s.logger.Info("User registered", "user_id", user.ID)
	}

	// Never hand the hash back to callers.
	user.PasswordHash = ""
	return user, nil
}

// Login verifies the credentials and issues a session token.
// An unknown email and a wrong password fail differently: the first is a
// lookup miss, the second a credential rejection.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		if apperrors.Is(err, store.ErrUserNotFound) {
			return nil, apperrors.NotFound("no account with that email")
		}
		return nil, err
	}

	if !auth.VerifyPassword(user.PasswordHash, password) {
		return nil, apperrors.InvalidCredentials("incorrect password")
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, apperrors.Internal("failed to issue token").WithCause(err)
	}

	user.LastLoginAt = time.Now()
	if err := s.store.UpdateUser(ctx, user); err != nil && s.logger != nil {
		// Login still succeeds; the timestamp is advisory.
		s.logger.Warn("Failed to record last login", "user_id", user.ID, "error", err)
	}

	if s.logger != nil {
		s.logger.Info("User logged in", "user_id", user.ID)
	}

	user.PasswordHash = ""
	return &AuthResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int64(s.tokens.TokenDuration().Seconds()),
		User:      user,
	}, nil
}

// VerifyToken checks a session token and returns its claims.
// Any failure, expiry included, surfaces as Forbidden.
func (s *AuthService) VerifyToken(tokenString string) (*auth.Claims, error) {
	claims, err := s.tokens.Verify(tokenString)
	if err != nil {
		return nil, apperrors.Forbidden("invalid or expired token").WithCause(err)
	}
	return claims, nil
}

// GetUser retrieves the account behind a verified token's user_id claim.
func (s *AuthService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		if apperrors.Is(err, store.ErrUserNotFound) {
			return nil, apperrors.NotFound("user not found")
		}
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}
