package core

import (
	"context"
	"errors"
	"fmt"

	"pagelift.com/seo-assistant/internal/auth"
	"pagelift.com/seo-assistant/internal/store"
)

type AuthService struct {
	dbStore *store.SQLiteStore
}

func NewAuthService(db *store.SQLiteStore) *AuthService {
	return &AuthService{dbStore: db}
}

// Register creates a new user and returns its id. The plaintext password is
// hashed before it reaches the store and is never persisted.
func (s *AuthService) Register(ctx context.Context, firstName, lastName, email, password string) (int64, error) {
	if firstName == "" || lastName == "" || email == "" || password == "" {
		return 0, ErrValidation
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	userID, err := s.dbStore.CreateUser(ctx, firstName, lastName, email, passwordHash)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return 0, ErrConflict
		}
		return 0, fmt.Errorf("failed to create user: %w", err)
	}
	return userID, nil
}

// Login verifies credentials and returns the matching user. An unknown email
// and a wrong password both return ErrUnauthorized so callers cannot probe
// which emails are registered.
func (s *AuthService) Login(ctx context.Context, email, password string) (*store.User, error) {
	if email == "" || password == "" {
		return nil, ErrValidation
	}

	user, err := s.dbStore.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil || !auth.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrUnauthorized
	}
	return user, nil
}
