// File: services/scheduling/interface.go
package scheduling

import (
	"context"
	"sync"

	appointmentRepo "medibook/database/repository/appointment"
	userRepo "medibook/database/repository/user"
	"medibook/models"
	"medibook/services/notification"
)

// SchedulingEngine owns a doctor's bookable calendar: it generates the
// candidate slot grid, answers availability queries, commits bookings and
// guards status transitions.
type SchedulingEngine interface {
	CandidateSlots(doctorID, date string) ([]models.SlotCandidate, error)
	Availability(ctx context.Context, doctorID, date string) (*models.AvailabilityResponse, error)
	Book(ctx context.Context, patientID string, req models.BookingRequest) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, appointmentID, newStatus, actorID, actorRole string) (*models.Appointment, error)
	Cancel(ctx context.Context, appointmentID, actorID, actorRole string) (*models.Appointment, error)
	MyAppointments(ctx context.Context, actorID, actorRole string) ([]models.AppointmentDetail, error)
	AllAppointments(ctx context.Context) ([]models.AppointmentDetail, error)
}

// DefaultSchedulingEngine is the production engine backed by the appointment
// and user repositories.
type DefaultSchedulingEngine struct {
	Repo     appointmentRepo.AppointmentRepository
	Users    userRepo.UserRepository
	Notifier notification.NotificationService

	mu          sync.Mutex
	doctorLocks map[string]*sync.Mutex
}

// doctorLock returns the per-doctor mutex, creating it on first use. The
// booking read-check-write sequence is serialized per doctor; the unique
// index on (doctor_id, start_time) backs this up across processes.
func (se *DefaultSchedulingEngine) doctorLock(doctorID string) *sync.Mutex {
	se.mu.Lock()
	defer se.mu.Unlock()
	if se.doctorLocks == nil {
		se.doctorLocks = make(map[string]*sync.Mutex)
	}
	lock, ok := se.doctorLocks[doctorID]
	if !ok {
		lock = &sync.Mutex{}
		se.doctorLocks[doctorID] = lock
	}
	return lock
}
