// File: services/scheduling/listing.go
package scheduling

import (
	"context"

	"medibook/models"
)

// decorate joins appointments with directory display fields. Missing users
// degrade to an id-only reference rather than failing the listing.
func (se *DefaultSchedulingEngine) decorate(ctx context.Context, appts []models.Appointment) []models.AppointmentDetail {
	// Most listings repeat the same few users; cache lookups per call.
	users := make(map[string]*models.User)
	lookup := func(id string) *models.User {
		if u, ok := users[id]; ok {
			return u
		}
		u, err := se.Users.GetByID(ctx, id)
		if err != nil {
			u = nil
		}
		users[id] = u
		return u
	}

	details := make([]models.AppointmentDetail, 0, len(appts))
	for _, appt := range appts {
		detail := models.AppointmentDetail{
			ID:        appt.ID,
			Patient:   models.PatientRef{ID: appt.PatientID, Name: "Unknown"},
			Doctor:    models.DoctorRef{ID: appt.DoctorID, Name: "Unknown"},
			StartTime: appt.StartTime,
			EndTime:   appt.EndTime,
			Status:    appt.Status,
			Reason:    appt.Reason,
			CreatedAt: appt.CreatedAt,
		}
		if patient := lookup(appt.PatientID); patient != nil {
			detail.Patient = models.PatientRef{ID: patient.ID, Name: patient.Name, Email: patient.Email}
		}
		if doctor := lookup(appt.DoctorID); doctor != nil {
			detail.Doctor = models.DoctorRef{ID: doctor.ID, Name: doctor.Name}
			if doctor.Doctor != nil {
				detail.Doctor.Specialty = doctor.Doctor.Specialty
			}
		}
		details = append(details, detail)
	}
	return details
}

// MyAppointments lists the actor's appointments, newest first, with
// denormalized patient and doctor display fields.
func (se *DefaultSchedulingEngine) MyAppointments(ctx context.Context, actorID, actorRole string) ([]models.AppointmentDetail, error) {
	var (
		appts []models.Appointment
		err   error
	)
	switch actorRole {
	case models.RolePatient:
		appts, err = se.Repo.ListByPatient(ctx, actorID)
	case models.RoleDoctor:
		appts, err = se.Repo.ListByDoctor(ctx, actorID)
	default:
		return nil, NewForbiddenError("invalid role")
	}
	if err != nil {
		return nil, wrapRepoErr(err, "failed to list appointments")
	}
	return se.decorate(ctx, appts), nil
}

// AllAppointments lists every appointment in the system for the admin view.
func (se *DefaultSchedulingEngine) AllAppointments(ctx context.Context) ([]models.AppointmentDetail, error) {
	appts, err := se.Repo.ListAll(ctx)
	if err != nil {
		return nil, wrapRepoErr(err, "failed to list appointments")
	}
	return se.decorate(ctx, appts), nil
}
