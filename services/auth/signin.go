// File: services/auth/signin.go
package auth

import (
	"context"
	"errors"
	"fmt"

	userRepo "medibook/database/repository/user"
	"medibook/models"
	"medibook/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Authenticate verifies credentials and issues a fresh access token. The
// token hash is stored on the user record and mirrored in the Redis auth
// cache so middleware can verify without a DB round trip.
func (s *DefaultAuthService) Authenticate(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	userRec, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(userRec.ID, userRec.Role, userRec.Name, utils.TokenTTL)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to sign token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	tokenHash := utils.HashToken(token)

	if err := s.Repo.UpdateTokenHash(ctx, userRec.ID, tokenHash); err != nil {
		utils.GetLogger().Error("Authenticate: failed to persist token hash", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	// Warm the auth cache; a miss just means middleware falls back to the DB.
	cacheKey := utils.AuthCachePrefix + userRec.ID
	if err := utils.GetAuthCacheClient().Set(ctx, cacheKey, tokenHash, utils.AuthCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("Authenticate: failed to warm auth cache", zap.Error(err))
	}

	return &models.AuthResponse{
		AccessToken: token,
		User:        *userRec,
	}, nil
}

// Revoke invalidates the user's current token.
func (s *DefaultAuthService) Revoke(ctx context.Context, userID string) error {
	if err := s.Repo.UpdateTokenHash(ctx, userID, ""); err != nil {
		return err
	}
	cacheKey := utils.AuthCachePrefix + userID
	if err := utils.GetAuthCacheClient().Del(ctx, cacheKey).Err(); err != nil {
		utils.GetLogger().Warn("Revoke: failed to clear auth cache", zap.Error(err))
	}
	return nil
}
