package auth

import (
	"context"
	"testing"

	userRepo "medibook/database/repository/user"
	"medibook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memUserRepo struct {
	users map[string]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*models.User{}}
}

func (r *memUserRepo) Create(_ context.Context, u *models.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return userRepo.ErrEmailTaken
		}
	}
	if u.ID == "" {
		u.ID = "user-1"
	}
	r.users[u.ID] = u
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, userRepo.ErrNotFound
	}
	return u, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, userRepo.ErrNotFound
}

func (r *memUserRepo) Update(_ context.Context, u *models.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *memUserRepo) UpdateTokenHash(_ context.Context, id, hash string) error {
	u, ok := r.users[id]
	if !ok {
		return userRepo.ErrNotFound
	}
	u.TokenHash = hash
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}

func (r *memUserRepo) ListByRole(_ context.Context, role string) ([]models.User, error) {
	var out []models.User
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *memUserRepo) CountByRole(ctx context.Context, role string) (int64, error) {
	users, _ := r.ListByRole(ctx, role)
	return int64(len(users)), nil
}

func TestVerifyPasswordComplexity(t *testing.T) {
	assert.Error(t, VerifyPasswordComplexity(""))
	assert.Error(t, VerifyPasswordComplexity("short"))
	assert.NoError(t, VerifyPasswordComplexity("longenough"))
}

func TestRegisterPatient(t *testing.T) {
	svc := &DefaultAuthService{Repo: newMemUserRepo()}

	user, err := svc.RegisterPatient(context.Background(), models.RegisterRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.test",
		Password: "supersecret",
		Age:      34,
		Gender:   "female",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, models.RolePatient, user.Role)
	require.NotNil(t, user.Patient)
	assert.Equal(t, 34, user.Patient.Age)

	// The stored hash must verify against the original password and never
	// equal the plaintext.
	assert.NotEqual(t, "supersecret", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("supersecret")))
}

func TestRegisterPatientWeakPassword(t *testing.T) {
	repo := newMemUserRepo()
	svc := &DefaultAuthService{Repo: repo}

	_, err := svc.RegisterPatient(context.Background(), models.RegisterRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.test",
		Password: "short",
	})
	require.Error(t, err)
	assert.Empty(t, repo.users)
}

func TestRegisterPatientDuplicateEmail(t *testing.T) {
	svc := &DefaultAuthService{Repo: newMemUserRepo()}
	ctx := context.Background()

	req := models.RegisterRequest{Name: "Jane", Email: "jane@example.test", Password: "supersecret"}
	_, err := svc.RegisterPatient(ctx, req)
	require.NoError(t, err)

	_, err = svc.RegisterPatient(ctx, req)
	assert.ErrorIs(t, err, ErrEmailTaken)
}
