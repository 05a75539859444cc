// File: database/repository/user/interface.go
package userRepo

import (
	"context"
	"errors"

	"medibook/database"
	"medibook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrNotFound means no user matches the given id or email.
	ErrNotFound = errors.New("user not found")
	// ErrEmailTaken means the unique email constraint rejected a write.
	ErrEmailTaken = errors.New("email already registered")
)

// UserRepository persists account records for patients, doctors and admins.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	UpdateTokenHash(ctx context.Context, id, tokenHash string) error
	Delete(ctx context.Context, id string) error
	ListByRole(ctx context.Context, role string) ([]models.User, error)
	CountByRole(ctx context.Context, role string) (int64, error)
}

type mongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo constructs a new MongoDB UserRepository and ensures its
// indexes.
func NewMongoUserRepo() UserRepository {
	repo := &mongoUserRepo{
		coll: database.DB().Collection("users"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		panic(err)
	}
	return repo
}
