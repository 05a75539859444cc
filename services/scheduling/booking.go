// File: services/scheduling/booking.go
package scheduling

import (
	"context"
	"errors"
	"strings"
	"time"

	appointmentRepo "medibook/database/repository/appointment"
	userRepo "medibook/database/repository/user"
	"medibook/models"
	"medibook/utils"

	"go.uber.org/zap"
)

// wrapRepoErr maps persistence failures onto the caller-facing taxonomy.
// Deadline expiry is recoverable and must be surfaced as such, never fatal.
func wrapRepoErr(err error, msg string) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return NewUpstreamTimeoutError(msg + ": persistence timed out, retry later")
	}
	return err
}

// validateBookingRequest checks the wire payload and returns the canonical
// minute-truncated start time. The end time is derived server-side; a
// caller-supplied end_time is only validated, never trusted.
func validateBookingRequest(req models.BookingRequest) (models.LocalTime, error) {
	if req.DoctorID == "" {
		return models.LocalTime{}, NewValidationError("doctor_id is required")
	}
	if strings.TrimSpace(req.Reason) == "" {
		return models.LocalTime{}, NewValidationError("reason is required")
	}

	start, err := models.ParseLocalTime(req.StartTime)
	if err != nil {
		return models.LocalTime{}, NewValidationError("invalid start_time: " + err.Error())
	}
	start = start.Truncate()

	if !onCandidateGrid(start) {
		return models.LocalTime{}, NewValidationError("start_time must be on the hour within working hours (09:00-16:00)")
	}

	if req.EndTime != "" {
		end, err := models.ParseLocalTime(req.EndTime)
		if err != nil {
			return models.LocalTime{}, NewValidationError("invalid end_time: " + err.Error())
		}
		if !end.Equal(start.Add(models.SlotDuration)) {
			return models.LocalTime{}, NewValidationError("end_time must be exactly 30 minutes after start_time")
		}
	}

	return start, nil
}

// Book validates, conflict-checks and commits a booking request as one
// atomic operation per doctor. Of two racing requests for the same
// doctor/slot exactly one succeeds; the loser gets a slotConflict and may
// retry against refreshed availability.
func (se *DefaultSchedulingEngine) Book(ctx context.Context, patientID string, req models.BookingRequest) (*models.Appointment, error) {
	start, err := validateBookingRequest(req)
	if err != nil {
		return nil, err
	}

	doctor, err := se.Users.GetByID(ctx, req.DoctorID)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, NewNotFoundError("unknown doctor")
		}
		return nil, wrapRepoErr(err, "failed to look up doctor")
	}
	if doctor.Role != models.RoleDoctor {
		return nil, NewNotFoundError("unknown doctor")
	}

	date := start.DateString()

	// Same patient, same time, any doctor.
	patientAppts, err := se.Repo.ListScheduledByPatientAndDate(ctx, patientID, date)
	if err != nil {
		return nil, wrapRepoErr(err, "failed to check patient schedule")
	}
	for _, appt := range patientAppts {
		if appt.StartTime.Equal(start) {
			return nil, NewSlotConflictError("you already have an appointment at this time")
		}
	}

	lock := se.doctorLock(req.DoctorID)
	lock.Lock()
	defer lock.Unlock()

	booked, err := se.Repo.ListScheduledByDoctorAndDate(ctx, req.DoctorID, date)
	if err != nil {
		return nil, wrapRepoErr(err, "failed to load booked slots")
	}
	for _, appt := range booked {
		if appt.StartTime.Equal(start) {
			return nil, NewSlotConflictError("doctor time slot already booked")
		}
	}

	appt := &models.Appointment{
		DoctorID:  req.DoctorID,
		PatientID: patientID,
		StartTime: start,
		EndTime:   start.Add(models.SlotDuration),
		Reason:    strings.TrimSpace(req.Reason),
		Status:    models.StatusScheduled,
		CreatedAt: time.Now(),
	}

	if err := se.Repo.Insert(ctx, appt); err != nil {
		if errors.Is(err, appointmentRepo.ErrDuplicateSlot) {
			// Lost the race to a concurrent writer; the unique index is the
			// final arbiter.
			return nil, NewSlotConflictError("doctor time slot already booked")
		}
		return nil, wrapRepoErr(err, "failed to save appointment")
	}

	se.notify(ctx, "confirmed", appt, doctor)
	return appt, nil
}

// notify enqueues an out-of-band booking notice. Notification failures are
// logged, never propagated: the booking already committed.
func (se *DefaultSchedulingEngine) notify(ctx context.Context, kind string, appt *models.Appointment, doctor *models.User) {
	if se.Notifier == nil {
		return
	}
	if doctor == nil {
		d, err := se.Users.GetByID(ctx, appt.DoctorID)
		if err != nil {
			utils.GetLogger().Warn("notify: doctor lookup failed", zap.Error(err))
			return
		}
		doctor = d
	}
	patient, err := se.Users.GetByID(ctx, appt.PatientID)
	if err != nil {
		utils.GetLogger().Warn("notify: patient lookup failed", zap.Error(err))
		return
	}

	payload := models.NotificationPayload{
		Kind:          kind,
		AppointmentID: appt.ID,
		PatientName:   patient.Name,
		PatientEmail:  patient.Email,
		DoctorName:    doctor.Name,
		StartTime:     appt.StartTime.String(),
		EndTime:       appt.EndTime.String(),
	}
	if err := se.Notifier.EnqueueBookingNotice(ctx, payload); err != nil {
		utils.GetLogger().Warn("notify: failed to enqueue booking notice", zap.Error(err))
	}
}
