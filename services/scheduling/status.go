// File: services/scheduling/status.go
package scheduling

import (
	"context"
	"errors"

	appointmentRepo "medibook/database/repository/appointment"
	"medibook/models"
)

// legalTransitions is the full transition set. Everything else, including
// re-cancelling a cancelled appointment, is rejected.
var legalTransitions = map[string]map[string]bool{
	models.StatusScheduled: {
		models.StatusCompleted: true,
		models.StatusCancelled: true,
	},
}

// CanTransition reports whether from -> to is a legal status change.
func CanTransition(from, to string) bool {
	return legalTransitions[from][to]
}

func isKnownStatus(s string) bool {
	return s == models.StatusScheduled || s == models.StatusCompleted || s == models.StatusCancelled
}

// UpdateStatus applies a guarded status transition. The actor must own the
// appointment: doctors may transition their own appointments, patients may
// only cancel theirs. The swap itself is conditional on the source status so
// a concurrent transition loses cleanly with invalidTransition.
func (se *DefaultSchedulingEngine) UpdateStatus(ctx context.Context, appointmentID, newStatus, actorID, actorRole string) (*models.Appointment, error) {
	if !isKnownStatus(newStatus) {
		return nil, NewValidationError("invalid status, want completed or cancelled")
	}

	appt, err := se.Repo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return nil, NewNotFoundError("appointment not found")
		}
		return nil, wrapRepoErr(err, "failed to load appointment")
	}

	switch actorRole {
	case models.RoleDoctor:
		if appt.DoctorID != actorID {
			return nil, NewForbiddenError("appointment belongs to another doctor")
		}
	case models.RolePatient:
		if appt.PatientID != actorID {
			return nil, NewForbiddenError("appointment belongs to another patient")
		}
		if newStatus != models.StatusCancelled {
			return nil, NewForbiddenError("patients may only cancel appointments")
		}
	case models.RoleAdmin:
		// admins may transition any appointment
	default:
		return nil, NewForbiddenError("invalid role")
	}

	if !CanTransition(appt.Status, newStatus) {
		return nil, NewInvalidTransitionError("cannot transition from " + appt.Status + " to " + newStatus)
	}

	updated, err := se.Repo.UpdateStatus(ctx, appointmentID, appt.Status, newStatus)
	if err != nil {
		switch {
		case errors.Is(err, appointmentRepo.ErrNotFound):
			return nil, NewNotFoundError("appointment not found")
		case errors.Is(err, appointmentRepo.ErrStaleStatus):
			return nil, NewInvalidTransitionError("appointment status changed concurrently")
		default:
			return nil, wrapRepoErr(err, "failed to update appointment status")
		}
	}

	if newStatus == models.StatusCancelled {
		se.notify(ctx, "cancelled", updated, nil)
	}
	return updated, nil
}

// Cancel is the patient/doctor-facing cancellation entry point.
func (se *DefaultSchedulingEngine) Cancel(ctx context.Context, appointmentID, actorID, actorRole string) (*models.Appointment, error) {
	return se.UpdateStatus(ctx, appointmentID, models.StatusCancelled, actorID, actorRole)
}
