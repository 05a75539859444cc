package models

import "time"

// User roles.
const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
	RoleAdmin   = "admin"
)

// User is an account record. Doctors and patients carry their respective
// profile blocks; admins carry neither.
type User struct {
	ID           string          `bson:"id" json:"id"`
	Name         string          `bson:"name" json:"name"`
	Email        string          `bson:"email" json:"email"`
	PasswordHash string          `bson:"password_hash" json:"-"`
	Role         string          `bson:"role" json:"role"`
	TokenHash    string          `bson:"token_hash,omitempty" json:"-"`
	Patient      *PatientProfile `bson:"patient_profile,omitempty" json:"patient_profile,omitempty"`
	Doctor       *DoctorProfile  `bson:"doctor_profile,omitempty" json:"doctor_profile,omitempty"`
	CreatedAt    time.Time       `bson:"created_at" json:"created_at"`
}

// PatientProfile holds patient-only fields.
type PatientProfile struct {
	Age    int    `bson:"age,omitempty" json:"age,omitempty"`
	Gender string `bson:"gender,omitempty" json:"gender,omitempty"`
}

// DoctorProfile holds doctor-only fields.
type DoctorProfile struct {
	Specialty       string  `bson:"specialty" json:"specialty"`
	ExperienceYears int     `bson:"experience_years" json:"experience_years"`
	Rating          float64 `bson:"rating" json:"rating"`
}

// RegisterRequest is the patient self-registration payload. Doctors are
// created by admins only.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
}

// LoginRequest is the credential payload for token issuance.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the issued token plus the public user record.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

// DoctorCreateRequest is the admin payload for creating a doctor account.
type DoctorCreateRequest struct {
	Name            string  `json:"name" binding:"required"`
	Email           string  `json:"email" binding:"required,email"`
	Password        string  `json:"password" binding:"required"`
	Specialty       string  `json:"specialty" binding:"required"`
	ExperienceYears int     `json:"experience_years"`
	Rating          float64 `json:"rating"`
}

// DoctorUpdateRequest is the admin payload for partial doctor updates.
// Nil fields are left untouched; in particular the password is only changed
// when supplied.
type DoctorUpdateRequest struct {
	Name            *string  `json:"name"`
	Email           *string  `json:"email"`
	Password        *string  `json:"password"`
	Specialty       *string  `json:"specialty"`
	ExperienceYears *int     `json:"experience_years"`
	Rating          *float64 `json:"rating"`
}

// DoctorSummary is the public directory view of a doctor.
type DoctorSummary struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Specialty       string  `json:"specialty"`
	ExperienceYears int     `json:"experience_years"`
	Rating          float64 `json:"rating"`
}
