package models

// AnalyticsSummary is the admin dashboard aggregate view.
type AnalyticsSummary struct {
	TotalDoctors         int64 `json:"total_doctors"`
	TotalPatients        int64 `json:"total_patients"`
	TotalAppointments    int64 `json:"total_appointments"`
	UpcomingAppointments int64 `json:"upcoming_appointments"`
}

// NotificationPayload is the queued message for out-of-band booking notices.
type NotificationPayload struct {
	Kind          string `json:"kind"` // "confirmed" or "cancelled"
	AppointmentID string `json:"appointment_id"`
	PatientName   string `json:"patient_name"`
	PatientEmail  string `json:"patient_email"`
	DoctorName    string `json:"doctor_name"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
}
