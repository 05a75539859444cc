// File: handlers/doctor.go
package handlers

import (
	"net/http"

	"medibook/services/directory"
	"medibook/utils"

	"github.com/gin-gonic/gin"
)

// DoctorHandler serves the public doctor directory.
type DoctorHandler struct {
	Directory directory.DirectoryService
}

func NewDoctorHandler(dir directory.DirectoryService) *DoctorHandler {
	return &DoctorHandler{Directory: dir}
}

// ListDoctorsHandler returns the public doctor listing.
func (h *DoctorHandler) ListDoctorsHandler(c *gin.Context) {
	doctors, err := h.Directory.ListDoctors(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list doctors", err.Error())
		return
	}
	c.JSON(http.StatusOK, doctors)
}
