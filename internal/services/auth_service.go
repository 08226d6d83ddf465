package services

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sachinbijalwan2892/Social-media-app/internal/auth"
	"github.com/sachinbijalwan2892/Social-media-app/internal/models"
	"github.com/sachinbijalwan2892/Social-media-app/internal/storage"
	"golang.org/x/crypto/bcrypt"
)

// AuthServiceProvider defines the interface for signup and login.
type AuthServiceProvider interface {
	Signup(email, password string, role models.Role) error
	Login(email, password string) (string, error)
}

// AuthService provides account creation and session token issuance on top
// of the user store.
type AuthService struct {
	store     storage.UserStore
	jwtSecret string

	// Serializes the read-modify-write cycle on the user snapshot so two
	// concurrent signups cannot lose each other's records.
	mu sync.Mutex
}

// NewAuthService creates a new AuthService.
func NewAuthService(store storage.UserStore, jwtSecret string) *AuthService {
	return &AuthService{store: store, jwtSecret: jwtSecret}
}

// Signup registers a new user with a bcrypt-hashed password. The email
// must not match an existing record (exact, case-sensitive).
func (s *AuthService) Signup(email, password string, role models.Role) error {
	if email == "" || password == "" || !role.IsValid() {
		return ErrValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.store.ReadAll()
	if err != nil {
		return fmt.Errorf("failed to read users: %w", err)
	}

	for _, u := range users {
		if u.Email == email {
			return ErrDuplicateEmail
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	users = append(users, models.User{
		ID:       uuid.New().String(),
		Email:    email,
		Password: string(hashed),
		Role:     role,
	})
	if err := s.store.WriteAll(users); err != nil {
		return fmt.Errorf("failed to write users: %w", err)
	}
	return nil
}

// Login verifies the credentials and returns a signed session token
// embedding the user's id and role. The same error is returned whether the
// email is unknown or the password is wrong.
func (s *AuthService) Login(email, password string) (string, error) {
	users, err := s.store.ReadAll()
	if err != nil {
		return "", fmt.Errorf("failed to read users: %w", err)
	}

	for _, u := range users {
		if u.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
			return "", ErrInvalidCredentials
		}
		return auth.GenerateJWT(s.jwtSecret, u)
	}
	return "", ErrInvalidCredentials
}
