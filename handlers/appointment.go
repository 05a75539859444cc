// File: handlers/appointment.go
package handlers

import (
	"net/http"

	"medibook/models"
	"medibook/services/scheduling"
	"medibook/utils"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler serves the booking, availability and status endpoints
// backed by the scheduling engine.
type AppointmentHandler struct {
	Engine scheduling.SchedulingEngine
}

func NewAppointmentHandler(engine scheduling.SchedulingEngine) *AppointmentHandler {
	return &AppointmentHandler{Engine: engine}
}

// BookHandler commits a booking request for the authenticated patient.
func (h *AppointmentHandler) BookHandler(c *gin.Context) {
	userID, role := actor(c)
	if role != models.RolePatient {
		utils.JSONError(c, http.StatusForbidden, "only patients can book appointments", "")
		return
	}

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONErrorKind(c, http.StatusBadRequest, scheduling.CodeValidation, "invalid input: "+err.Error())
		return
	}

	appt, err := h.Engine.Book(c.Request.Context(), userID, req)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Appointment booked successfully",
		"appointment": appt,
	})
}

// MyAppointmentsHandler lists the caller's appointments.
func (h *AppointmentHandler) MyAppointmentsHandler(c *gin.Context) {
	userID, role := actor(c)

	appts, err := h.Engine.MyAppointments(c.Request.Context(), userID, role)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, appts)
}

// CancelHandler cancels an appointment on behalf of its patient or doctor.
func (h *AppointmentHandler) CancelHandler(c *gin.Context) {
	userID, role := actor(c)
	appointmentID := c.Param("id")

	appt, err := h.Engine.Cancel(c.Request.Context(), appointmentID, userID, role)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Appointment cancelled successfully",
		"appointment": appt,
	})
}

// UpdateStatusHandler applies a doctor-requested status transition.
func (h *AppointmentHandler) UpdateStatusHandler(c *gin.Context) {
	userID, role := actor(c)
	if role != models.RoleDoctor {
		utils.JSONError(c, http.StatusForbidden, "only doctors can update appointment status", "")
		return
	}

	var req models.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONErrorKind(c, http.StatusBadRequest, scheduling.CodeValidation, "invalid input: "+err.Error())
		return
	}

	appt, err := h.Engine.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status, userID, role)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Appointment status updated",
		"appointment": appt,
	})
}

// AvailableSlotsHandler answers an availability query for a doctor/date.
func (h *AppointmentHandler) AvailableSlotsHandler(c *gin.Context) {
	doctorID := c.Query("doctor_id")
	date := c.Query("date")
	if doctorID == "" || date == "" {
		utils.JSONErrorKind(c, http.StatusBadRequest, scheduling.CodeValidation, "doctor_id and date are required")
		return
	}

	resp, err := h.Engine.Availability(c.Request.Context(), doctorID, date)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
