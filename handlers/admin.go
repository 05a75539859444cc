// File: handlers/admin.go
package handlers

import (
	"errors"
	"net/http"

	"medibook/models"
	"medibook/services/admin"
	"medibook/services/directory"
	"medibook/services/scheduling"
	"medibook/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves doctor management and the analytics dashboard.
type AdminHandler struct {
	Svc       admin.AdminService
	Directory directory.DirectoryService
	Engine    scheduling.SchedulingEngine
}

func NewAdminHandler(svc admin.AdminService, dir directory.DirectoryService, engine scheduling.SchedulingEngine) *AdminHandler {
	return &AdminHandler{Svc: svc, Directory: dir, Engine: engine}
}

// CreateDoctorHandler creates a doctor account with its profile.
func (h *AdminHandler) CreateDoctorHandler(c *gin.Context) {
	var req models.DoctorCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	doctor, err := h.Svc.CreateDoctor(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, admin.ErrEmailTaken) {
			utils.JSONError(c, http.StatusBadRequest, "email already registered", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to create doctor", err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Doctor created successfully",
		"doctor":  doctor,
	})
}

// ListDoctorsHandler lists every doctor for the admin view.
func (h *AdminHandler) ListDoctorsHandler(c *gin.Context) {
	doctors, err := h.Directory.ListDoctors(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list doctors", err.Error())
		return
	}
	c.JSON(http.StatusOK, doctors)
}

// UpdateDoctorHandler applies a partial doctor update.
func (h *AdminHandler) UpdateDoctorHandler(c *gin.Context) {
	var req models.DoctorUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	doctor, err := h.Svc.UpdateDoctor(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, admin.ErrDoctorNotFound):
			utils.JSONError(c, http.StatusNotFound, "doctor not found", "")
		case errors.Is(err, admin.ErrEmailTaken):
			utils.JSONError(c, http.StatusBadRequest, "email already in use", "")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to update doctor", err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Doctor updated successfully",
		"doctor":  doctor,
	})
}

// DeleteDoctorHandler removes a doctor account.
func (h *AdminHandler) DeleteDoctorHandler(c *gin.Context) {
	if err := h.Svc.DeleteDoctor(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, admin.ErrDoctorNotFound) {
			utils.JSONError(c, http.StatusNotFound, "doctor not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete doctor", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Doctor deleted successfully"})
}

// ListAppointmentsHandler returns every appointment in the system.
func (h *AdminHandler) ListAppointmentsHandler(c *gin.Context) {
	appts, err := h.Engine.AllAppointments(c.Request.Context())
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, appts)
}

// AnalyticsHandler returns the aggregate dashboard counts.
func (h *AdminHandler) AnalyticsHandler(c *gin.Context) {
	summary, err := h.Svc.Analytics(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute analytics", err.Error())
		return
	}
	c.JSON(http.StatusOK, summary)
}
