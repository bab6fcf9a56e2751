package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"realestate_crud/internal/common"
	"realestate_crud/internal/common/security"
	"realestate_crud/internal/domain/model"
	"realestate_crud/internal/domain/repository"
)

// LoginLimiter caps login attempts per username. Implementations decide
// the window; a nil limiter on the service disables the check.
type LoginLimiter interface {
	Allow(ctx context.Context, username string) (bool, error)
}

type AuthService struct {
	userRepo repository.UserRepository
	limiter  LoginLimiter
}

func NewAuthService(userRepo repository.UserRepository, limiter LoginLimiter) *AuthService {
	return &AuthService{userRepo: userRepo, limiter: limiter}
}

// Register creates a user with the bcrypt hash stored in place of the
// plaintext password. The existence check keeps the reference behavior;
// the users table additionally carries a UNIQUE constraint, so a
// concurrent duplicate surfaces as ErrDuplicateUsername from the store.
func (s *AuthService) Register(ctx context.Context, username, password string) (*model.User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required: %w", common.ErrBadRequest)
	}

	_, err := s.userRepo.FindByUsername(ctx, username)
	if err == nil {
		return nil, common.ErrDuplicateUsername
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up username: %w", err)
	}

	hashedPassword, err := security.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:       username,
		HashedPassword: hashedPassword,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	user.HashedPassword = "" // Clear hash before returning
	return user, nil
}

// Authenticate reports whether the password matches the stored hash.
// A wrong password is (false, nil), never an error; an unknown username
// is ErrUserNotFound.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (bool, error) {
	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, username)
		if err != nil {
			// Limiter outage must not lock out logins.
			log.Printf("login limiter unavailable, allowing attempt: %v", err)
		} else if !allowed {
			return false, common.ErrTooManyRequests
		}
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return false, common.ErrUserNotFound
		}
		return false, fmt.Errorf("failed to find user: %w", err)
	}

	return security.CheckPasswordHash(password, user.HashedPassword), nil
}

// GetUserByUsername returns the stored user with the hash cleared.
func (s *AuthService) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, err
	}
	user.HashedPassword = ""
	return user, nil
}

// GetUser returns the user for the given id with the hash cleared.
func (s *AuthService) GetUser(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.HashedPassword = ""
	return user, nil
}
