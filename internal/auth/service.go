package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/sp1r1tt/dashboard2025/internal/user"
)

// ErrInvalidCredentials is returned for both unknown email and wrong
// password; callers must not be able to tell which check failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Service provides credential verification and session issuance.
type Service struct {
	users      user.Repository
	codec      *Codec
	bcryptCost int
}

// NewService creates a new auth Service.
func NewService(users user.Repository, codec *Codec, bcryptCost int) *Service {
	return &Service{
		users:      users,
		codec:      codec,
		bcryptCost: bcryptCost,
	}
}

// Login checks the credentials against the stored hash and, on success,
// issues a session token for the user.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("fetching user by email: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.codec.Issue(u.ID, u.Email)
	if err != nil {
		return "", fmt.Errorf("issuing session token: %w", err)
	}

	return token, nil
}

// HashPassword hashes a plaintext password with the service's bcrypt cost.
func (s *Service) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

// BootstrapAdmin creates the initial admin user if the users table is empty.
// Returns the generated password (only displayed once). If users already
// exist, returns empty string.
func (s *Service) BootstrapAdmin(ctx context.Context) (string, error) {
	count, err := s.users.Count(ctx)
	if err != nil {
		return "", fmt.Errorf("counting users: %w", err)
	}

	if count > 0 {
		return "", nil
	}

	b := make([]byte, 18)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating admin password: %w", err)
	}
	password := base64.RawURLEncoding.EncodeToString(b)

	hash, err := s.HashPassword(password)
	if err != nil {
		return "", err
	}

	admin := &user.User{
		Name:         "admin",
		Email:        "admin@localhost",
		PasswordHash: hash,
	}

	if err := s.users.Create(ctx, admin); err != nil {
		return "", fmt.Errorf("creating admin user: %w", err)
	}

	slog.Info("Admin user created", "email", admin.Email, "password", password)

	return password, nil
}
