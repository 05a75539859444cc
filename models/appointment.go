package models

import "time"

// Appointment statuses. An appointment is created as "scheduled" and may move
// to exactly one of the terminal states.
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// SlotDuration is the fixed appointment length. End times are always derived
// server-side as start + SlotDuration.
const SlotDuration = 30 * time.Minute

// Appointment represents a persisted appointment record. Time fields are
// immutable after creation; only Status may change.
type Appointment struct {
	ID        string    `bson:"id" json:"id"`
	DoctorID  string    `bson:"doctor_id" json:"doctor_id"`
	PatientID string    `bson:"patient_id" json:"patient_id"`
	StartTime LocalTime `bson:"start_time" json:"start_time"`
	EndTime   LocalTime `bson:"end_time" json:"end_time"`
	Reason    string    `bson:"reason" json:"reason"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// PatientRef is the denormalized patient display block on appointment views.
type PatientRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// DoctorRef is the denormalized doctor display block on appointment views.
type DoctorRef struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty,omitempty"`
}

// AppointmentDetail is an appointment joined with display fields from the
// directory, as returned by listing endpoints.
type AppointmentDetail struct {
	ID        string     `json:"id"`
	Patient   PatientRef `json:"patient"`
	Doctor    DoctorRef  `json:"doctor"`
	StartTime LocalTime  `json:"start_time"`
	EndTime   LocalTime  `json:"end_time"`
	Status    string     `json:"status"`
	Reason    string     `json:"reason"`
	CreatedAt time.Time  `json:"created_at"`
}
