// File: handlers/handler.go
package handlers

import (
	"errors"
	"net/http"

	userRepo "medibook/database/repository/user"
	"medibook/services/scheduling"
	"medibook/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates the wired endpoint handlers for route
// registration.
type HandlerBundle struct {
	// Needed by the auth middleware for token-hash fallback lookups.
	UserRepo userRepo.UserRepository

	// Auth endpoints.
	RegisterHandler gin.HandlerFunc
	LoginHandler    gin.HandlerFunc

	// Public doctor directory.
	ListDoctorsHandler gin.HandlerFunc

	// Appointment endpoints.
	BookAppointmentHandler   gin.HandlerFunc
	MyAppointmentsHandler    gin.HandlerFunc
	CancelAppointmentHandler gin.HandlerFunc
	UpdateStatusHandler      gin.HandlerFunc
	AvailableSlotsHandler    gin.HandlerFunc

	// AI endpoints.
	RecommendDoctorHandler gin.HandlerFunc

	// Admin endpoints.
	AdminCreateDoctorHandler     gin.HandlerFunc
	AdminListDoctorsHandler      gin.HandlerFunc
	AdminUpdateDoctorHandler     gin.HandlerFunc
	AdminDeleteDoctorHandler     gin.HandlerFunc
	AdminListAppointmentsHandler gin.HandlerFunc
	AdminAnalyticsHandler        gin.HandlerFunc
}

// respondSchedulingError translates the scheduling error taxonomy onto HTTP
// statuses. Every failure keeps its machine-readable kind so the caller can
// decide between correcting input and retrying.
func respondSchedulingError(c *gin.Context, err error) {
	var se *scheduling.SchedulingError
	if !errors.As(err, &se) {
		utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
		return
	}

	status := http.StatusInternalServerError
	switch se.Code {
	case scheduling.CodeValidation:
		status = http.StatusBadRequest
	case scheduling.CodeSlotConflict:
		status = http.StatusConflict
	case scheduling.CodeInvalidTransition:
		status = http.StatusConflict
	case scheduling.CodeNotFound:
		status = http.StatusNotFound
	case scheduling.CodeForbidden:
		status = http.StatusForbidden
	case scheduling.CodeUpstreamTimeout:
		status = http.StatusGatewayTimeout
	}
	utils.JSONErrorKind(c, status, se.Code, se.Message)
}

// actor pulls the authenticated identity placed in context by the auth
// middleware.
func actor(c *gin.Context) (userID, role string) {
	return c.GetString("userID"), c.GetString("role")
}
