// File: services/directory/directory.go
package directory

import (
	"context"
	"errors"

	userRepo "medibook/database/repository/user"
	"medibook/models"
)

// ErrDoctorNotFound is returned for unknown doctor ids.
var ErrDoctorNotFound = errors.New("doctor not found")

// DirectoryService is the read-only doctor/patient lookup consumed by the
// booking flow and the public doctor listing.
type DirectoryService interface {
	ListDoctors(ctx context.Context) ([]models.DoctorSummary, error)
	GetDoctor(ctx context.Context, id string) (*models.DoctorSummary, error)
}

// DefaultDirectoryService reads from the user repository.
type DefaultDirectoryService struct {
	Repo userRepo.UserRepository
}

func summary(u models.User) models.DoctorSummary {
	s := models.DoctorSummary{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
	if u.Doctor != nil {
		s.Specialty = u.Doctor.Specialty
		s.ExperienceYears = u.Doctor.ExperienceYears
		s.Rating = u.Doctor.Rating
	}
	return s
}

func (s *DefaultDirectoryService) ListDoctors(ctx context.Context) ([]models.DoctorSummary, error) {
	doctors, err := s.Repo.ListByRole(ctx, models.RoleDoctor)
	if err != nil {
		return nil, err
	}
	out := make([]models.DoctorSummary, 0, len(doctors))
	for _, d := range doctors {
		out = append(out, summary(d))
	}
	return out, nil
}

func (s *DefaultDirectoryService) GetDoctor(ctx context.Context, id string) (*models.DoctorSummary, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}
	if u.Role != models.RoleDoctor {
		return nil, ErrDoctorNotFound
	}
	out := summary(*u)
	return &out, nil
}
