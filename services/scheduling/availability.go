// File: services/scheduling/availability.go
package scheduling

import (
	"context"

	"medibook/models"
)

// matchFreeCandidates returns the candidate starts with no booked start
// equal to the minute. The key is the full timestamp truncated to minute
// granularity: a booking at the same hour on another day, or another hour on
// the same day, never shadows a candidate. Both sides are naive local
// wall-clock values; no zone interpretation is involved.
func matchFreeCandidates(candidates []models.SlotCandidate, booked []models.LocalTime) []models.LocalTime {
	taken := make(map[string]bool, len(booked))
	for _, b := range booked {
		taken[b.Truncate().String()] = true
	}

	free := make([]models.LocalTime, 0, len(candidates))
	for _, cand := range candidates {
		if !taken[cand.StartTime.Truncate().String()] {
			free = append(free, cand.StartTime)
		}
	}
	return free
}

// Availability recomputes the availability set for one doctor/date. It is a
// view over current scheduled appointments, never stored state.
func (se *DefaultSchedulingEngine) Availability(ctx context.Context, doctorID, date string) (*models.AvailabilityResponse, error) {
	if doctorID == "" {
		return nil, NewValidationError("doctor_id is required")
	}
	candidates, err := se.CandidateSlots(doctorID, date)
	if err != nil {
		return nil, err
	}

	appts, err := se.Repo.ListScheduledByDoctorAndDate(ctx, doctorID, date)
	if err != nil {
		return nil, wrapRepoErr(err, "failed to load booked slots")
	}

	booked := make([]models.LocalTime, 0, len(appts))
	for _, appt := range appts {
		booked = append(booked, appt.StartTime)
	}

	return &models.AvailabilityResponse{
		DoctorID:       doctorID,
		Date:           date,
		Booked:         booked,
		AvailableSlots: matchFreeCandidates(candidates, booked),
	}, nil
}
