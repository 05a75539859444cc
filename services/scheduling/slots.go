// File: services/scheduling/slots.go
package scheduling

import (
	"time"

	"medibook/models"
)

// CandidateSlots produces the fixed working-hours grid for one doctor/date:
// eight 30-minute slots starting on each whole hour from 09:00 through
// 16:00. The grid is deterministic and ignores existing bookings; past-date
// filtering is caller policy.
func (se *DefaultSchedulingEngine) CandidateSlots(doctorID, date string) ([]models.SlotCandidate, error) {
	day, err := time.Parse(models.LocalDateLayout, date)
	if err != nil {
		return nil, NewValidationError("invalid date format, use YYYY-MM-DD")
	}

	candidates := make([]models.SlotCandidate, 0, models.WorkingDayLastHour-models.WorkingDayFirstHour+1)
	for hour := models.WorkingDayFirstHour; hour <= models.WorkingDayLastHour; hour++ {
		start := models.NewLocalTime(day.Year(), day.Month(), day.Day(), hour, 0)
		candidates = append(candidates, models.SlotCandidate{
			DoctorID:  doctorID,
			StartTime: start,
			EndTime:   start.Add(models.SlotDuration),
		})
	}
	return candidates, nil
}

// onCandidateGrid reports whether start is a valid slot start: on the hour,
// inside the working window. Comparison happens on the minute-truncated
// value so sub-minute noise cannot sneak a booking off the grid.
func onCandidateGrid(start models.LocalTime) bool {
	t := start.Truncate()
	return t.Minute() == 0 && t.Hour() >= models.WorkingDayFirstHour && t.Hour() <= models.WorkingDayLastHour
}
