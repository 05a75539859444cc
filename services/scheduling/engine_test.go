package scheduling

import (
	"context"
	"fmt"
	"sync"

	appointmentRepo "medibook/database/repository/appointment"
	userRepo "medibook/database/repository/user"
	"medibook/models"
)

// fakeAppointmentRepo is an in-memory AppointmentRepository. Insert enforces
// the same (doctor_id, start_time) uniqueness over scheduled rows that the
// Mongo partial index does, under a single mutex, so race behavior can be
// exercised without a database.
type fakeAppointmentRepo struct {
	mu      sync.Mutex
	byID    map[string]*models.Appointment
	seq     int
	inserts int
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{byID: map[string]*models.Appointment{}}
}

func (r *fakeAppointmentRepo) slotKey(doctorID string, start models.LocalTime) string {
	return doctorID + "|" + start.Truncate().String()
}

func (r *fakeAppointmentRepo) Insert(_ context.Context, appt *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := r.slotKey(appt.DoctorID, appt.StartTime)
	for _, existing := range r.byID {
		if existing.Status == models.StatusScheduled && r.slotKey(existing.DoctorID, existing.StartTime) == key {
			return appointmentRepo.ErrDuplicateSlot
		}
	}

	r.seq++
	if appt.ID == "" {
		appt.ID = fmt.Sprintf("appt-%d", r.seq)
	}
	cp := *appt
	r.byID[appt.ID] = &cp
	r.inserts++
	return nil
}

func (r *fakeAppointmentRepo) GetByID(_ context.Context, id string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	appt, ok := r.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrNotFound
	}
	cp := *appt
	return &cp, nil
}

func (r *fakeAppointmentRepo) list(match func(*models.Appointment) bool) []models.Appointment {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, appt := range r.byID {
		if match(appt) {
			out = append(out, *appt)
		}
	}
	return out
}

func (r *fakeAppointmentRepo) ListScheduledByDoctorAndDate(_ context.Context, doctorID, date string) ([]models.Appointment, error) {
	return r.list(func(a *models.Appointment) bool {
		return a.DoctorID == doctorID && a.Status == models.StatusScheduled && a.StartTime.DateString() == date
	}), nil
}

func (r *fakeAppointmentRepo) ListScheduledByPatientAndDate(_ context.Context, patientID, date string) ([]models.Appointment, error) {
	return r.list(func(a *models.Appointment) bool {
		return a.PatientID == patientID && a.Status == models.StatusScheduled && a.StartTime.DateString() == date
	}), nil
}

func (r *fakeAppointmentRepo) ListByDoctor(_ context.Context, doctorID string) ([]models.Appointment, error) {
	return r.list(func(a *models.Appointment) bool { return a.DoctorID == doctorID }), nil
}

func (r *fakeAppointmentRepo) ListByPatient(_ context.Context, patientID string) ([]models.Appointment, error) {
	return r.list(func(a *models.Appointment) bool { return a.PatientID == patientID }), nil
}

func (r *fakeAppointmentRepo) ListAll(_ context.Context) ([]models.Appointment, error) {
	return r.list(func(*models.Appointment) bool { return true }), nil
}

func (r *fakeAppointmentRepo) UpdateStatus(_ context.Context, id, from, to string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	appt, ok := r.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrNotFound
	}
	if appt.Status != from {
		return nil, appointmentRepo.ErrStaleStatus
	}
	appt.Status = to
	cp := *appt
	return &cp, nil
}

func (r *fakeAppointmentRepo) CountAll(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.byID)), nil
}

func (r *fakeAppointmentRepo) CountScheduledFrom(_ context.Context, from models.LocalTime) (int64, error) {
	appts := r.list(func(a *models.Appointment) bool {
		return a.Status == models.StatusScheduled && !a.StartTime.Before(from)
	})
	return int64(len(appts)), nil
}

func (r *fakeAppointmentRepo) insertCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.inserts
}

// fakeUserRepo serves fixed user records by id.
type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*models.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, u *models.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return userRepo.ErrEmailTaken
		}
	}
	if u.ID == "" {
		u.ID = fmt.Sprintf("user-%d", len(r.users)+1)
	}
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, userRepo.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, userRepo.ErrNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, u *models.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return userRepo.ErrNotFound
	}
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) UpdateTokenHash(_ context.Context, id, hash string) error {
	u, ok := r.users[id]
	if !ok {
		return userRepo.ErrNotFound
	}
	u.TokenHash = hash
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return userRepo.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) ListByRole(_ context.Context, role string) ([]models.User, error) {
	var out []models.User
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) CountByRole(_ context.Context, role string) (int64, error) {
	users, _ := r.ListByRole(context.Background(), role)
	return int64(len(users)), nil
}

// fakeNotifier records enqueued payloads.
type fakeNotifier struct {
	mu       sync.Mutex
	payloads []models.NotificationPayload
}

func (n *fakeNotifier) EnqueueBookingNotice(_ context.Context, p models.NotificationPayload) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.payloads = append(n.payloads, p)
	return nil
}

func (n *fakeNotifier) sent() []models.NotificationPayload {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]models.NotificationPayload(nil), n.payloads...)
}

func testDoctor(id string) *models.User {
	return &models.User{
		ID:    id,
		Name:  "Dr. " + id,
		Email: id + "@clinic.test",
		Role:  models.RoleDoctor,
		Doctor: &models.DoctorProfile{
			Specialty: "General Medicine",
		},
	}
}

func testPatient(id string) *models.User {
	return &models.User{
		ID:    id,
		Name:  "Patient " + id,
		Email: id + "@example.test",
		Role:  models.RolePatient,
		Patient: &models.PatientProfile{
			Age:    30,
			Gender: "female",
		},
	}
}

func newTestEngine(users ...*models.User) (*DefaultSchedulingEngine, *fakeAppointmentRepo, *fakeNotifier) {
	repo := newFakeAppointmentRepo()
	notifier := &fakeNotifier{}
	engine := &DefaultSchedulingEngine{
		Repo:     repo,
		Users:    newFakeUserRepo(users...),
		Notifier: notifier,
	}
	return engine, repo, notifier
}
