package models

// Clinic working window: one candidate slot per whole hour, first start at
// 09:00, last start at 16:00.
const (
	WorkingDayFirstHour = 9
	WorkingDayLastHour  = 16
)

// SlotCandidate is a potential bookable window on the working-hours grid.
// It is derived, never persisted, and independent of existing bookings.
type SlotCandidate struct {
	DoctorID  string    `json:"doctor_id"`
	StartTime LocalTime `json:"start_time"`
	EndTime   LocalTime `json:"end_time"`
}

// AvailabilityResponse answers an availability query for one doctor/date.
// Booked carries the already-taken start timestamps; AvailableSlots the
// candidate starts with no conflicting scheduled appointment.
type AvailabilityResponse struct {
	DoctorID       string      `json:"doctor_id"`
	Date           string      `json:"date"`
	Booked         []LocalTime `json:"booked"`
	AvailableSlots []LocalTime `json:"available_slots"`
}

// BookingRequest is the wire payload for booking an appointment. Times are
// naive local ISO-8601 strings with no offset. EndTime is optional; when
// present it must agree with the server-derived value.
type BookingRequest struct {
	DoctorID  string `json:"doctor_id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Reason    string `json:"reason"`
}

// StatusUpdateRequest asks for an appointment status transition.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}
