// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"
	"errors"

	"medibook/database"
	"medibook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// Sentinel errors surfaced by the repository. The scheduling service maps
// them onto its caller-facing error taxonomy.
var (
	// ErrDuplicateSlot means the unique (doctor_id, start_time) constraint
	// rejected the insert: another scheduled appointment already owns the slot.
	ErrDuplicateSlot = errors.New("appointment slot already taken")
	// ErrNotFound means no appointment matches the given id.
	ErrNotFound = errors.New("appointment not found")
	// ErrStaleStatus means the appointment exists but is no longer in the
	// expected source status for a conditional status swap.
	ErrStaleStatus = errors.New("appointment not in expected status")
)

// AppointmentRepository persists appointment records. Insert is atomic with
// respect to concurrent inserts for the same doctor/start via a unique
// partial index on scheduled rows.
type AppointmentRepository interface {
	Insert(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	ListScheduledByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.Appointment, error)
	ListScheduledByPatientAndDate(ctx context.Context, patientID, date string) ([]models.Appointment, error)
	ListByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error)
	ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
	ListAll(ctx context.Context) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, id, from, to string) (*models.Appointment, error)
	CountAll(ctx context.Context) (int64, error)
	CountScheduledFrom(ctx context.Context, from models.LocalTime) (int64, error)
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository and
// ensures its indexes.
func NewMongoAppointmentRepo() AppointmentRepository {
	repo := &mongoAppointmentRepo{
		coll: database.DB().Collection("appointments"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		panic(err)
	}
	return repo
}
