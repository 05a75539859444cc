// File: services/admin/admin.go
package admin

import (
	"context"
	"errors"
	"fmt"
	"time"

	appointmentRepo "medibook/database/repository/appointment"
	userRepo "medibook/database/repository/user"
	"medibook/models"
	"medibook/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrDoctorNotFound is returned for unknown doctor ids.
var ErrDoctorNotFound = errors.New("doctor not found")

// ErrEmailTaken mirrors the repository constraint for callers.
var ErrEmailTaken = userRepo.ErrEmailTaken

// AdminService manages doctor records and the aggregate analytics view.
type AdminService interface {
	CreateDoctor(ctx context.Context, req models.DoctorCreateRequest) (*models.DoctorSummary, error)
	UpdateDoctor(ctx context.Context, id string, req models.DoctorUpdateRequest) (*models.DoctorSummary, error)
	DeleteDoctor(ctx context.Context, id string) error
	Analytics(ctx context.Context) (*models.AnalyticsSummary, error)
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	Users        userRepo.UserRepository
	Appointments appointmentRepo.AppointmentRepository
}

func (s *DefaultAdminService) CreateDoctor(ctx context.Context, req models.DoctorCreateRequest) (*models.DoctorSummary, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("CreateDoctor: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("doctor creation failed, please try again")
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         models.RoleDoctor,
		Doctor: &models.DoctorProfile{
			Specialty:       req.Specialty,
			ExperienceYears: req.ExperienceYears,
			Rating:          req.Rating,
		},
	}
	if err := s.Users.Create(ctx, user); err != nil {
		return nil, err
	}
	out := doctorSummary(user)
	return &out, nil
}

// UpdateDoctor applies a partial update. Nil request fields leave the record
// untouched; the password only changes when supplied.
func (s *DefaultAdminService) UpdateDoctor(ctx context.Context, id string, req models.DoctorUpdateRequest) (*models.DoctorSummary, error) {
	user, err := s.getDoctor(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			utils.GetLogger().Error("UpdateDoctor: failed to hash password", zap.Error(err))
			return nil, fmt.Errorf("doctor update failed, please try again")
		}
		user.PasswordHash = string(hash)
	}
	if user.Doctor == nil {
		user.Doctor = &models.DoctorProfile{}
	}
	if req.Specialty != nil {
		user.Doctor.Specialty = *req.Specialty
	}
	if req.ExperienceYears != nil {
		user.Doctor.ExperienceYears = *req.ExperienceYears
	}
	if req.Rating != nil {
		user.Doctor.Rating = *req.Rating
	}

	if err := s.Users.Update(ctx, user); err != nil {
		return nil, err
	}
	out := doctorSummary(user)
	return &out, nil
}

func (s *DefaultAdminService) DeleteDoctor(ctx context.Context, id string) error {
	if _, err := s.getDoctor(ctx, id); err != nil {
		return err
	}
	return s.Users.Delete(ctx, id)
}

func (s *DefaultAdminService) getDoctor(ctx context.Context, id string) (*models.User, error) {
	user, err := s.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}
	if user.Role != models.RoleDoctor {
		return nil, ErrDoctorNotFound
	}
	return user, nil
}

// Analytics returns the aggregate counts for the admin dashboard. Upcoming
// is measured against the current naive local wall clock.
func (s *DefaultAdminService) Analytics(ctx context.Context) (*models.AnalyticsSummary, error) {
	totalDoctors, err := s.Users.CountByRole(ctx, models.RoleDoctor)
	if err != nil {
		return nil, err
	}
	totalPatients, err := s.Users.CountByRole(ctx, models.RolePatient)
	if err != nil {
		return nil, err
	}
	totalAppointments, err := s.Appointments.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	upcoming, err := s.Appointments.CountScheduledFrom(ctx, models.LocalTimeOf(time.Now()))
	if err != nil {
		return nil, err
	}

	return &models.AnalyticsSummary{
		TotalDoctors:         totalDoctors,
		TotalPatients:        totalPatients,
		TotalAppointments:    totalAppointments,
		UpcomingAppointments: upcoming,
	}, nil
}

func doctorSummary(u *models.User) models.DoctorSummary {
	s := models.DoctorSummary{ID: u.ID, Name: u.Name, Email: u.Email}
	if u.Doctor != nil {
		s.Specialty = u.Doctor.Specialty
		s.ExperienceYears = u.Doctor.ExperienceYears
		s.Rating = u.Doctor.Rating
	}
	return s
}
