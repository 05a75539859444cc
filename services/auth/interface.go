// File: services/auth/interface.go
package auth

import (
	"context"
	"errors"

	userRepo "medibook/database/repository/user"
	"medibook/models"
)

// ErrInvalidCredentials is returned for any email/password mismatch; it
// deliberately does not distinguish unknown email from wrong password.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrEmailTaken mirrors the repository constraint for callers.
var ErrEmailTaken = userRepo.ErrEmailTaken

// AuthService issues sessions and handles patient self-registration.
// Doctor accounts are created through the admin service only.
type AuthService interface {
	RegisterPatient(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Revoke(ctx context.Context, userID string) error
}

// DefaultAuthService is the production implementation backed by the user
// repository and the Redis auth cache.
type DefaultAuthService struct {
	Repo userRepo.UserRepository
}
