// File: services/auth/signup.go
package auth

import (
	"context"
	"fmt"

	"medibook/models"
	"medibook/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// VerifyPasswordComplexity checks that the password meets the minimum bar.
func VerifyPasswordComplexity(pw string) error {
	if len(pw) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	return nil
}

// RegisterPatient creates a patient account. Registration is open for
// patients only; any other role must go through the admin service.
func (s *DefaultAuthService) RegisterPatient(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	if err := VerifyPasswordComplexity(req.Password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("RegisterPatient: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         models.RolePatient,
		Patient: &models.PatientProfile{
			Age:    req.Age,
			Gender: req.Gender,
		},
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
