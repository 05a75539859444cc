// File: handlers/ai.go
package handlers

import (
	"errors"
	"net/http"

	"medibook/models"
	"medibook/services/intelligence"
	"medibook/utils"

	"github.com/gin-gonic/gin"
)

// AIHandler serves the symptom-to-specialty recommendation endpoint.
type AIHandler struct {
	Svc intelligence.AIService
}

func NewAIHandler(svc intelligence.AIService) *AIHandler {
	return &AIHandler{Svc: svc}
}

// RecommendDoctorHandler suggests a specialty for free-text symptoms.
func (h *AIHandler) RecommendDoctorHandler(c *gin.Context) {
	var req models.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Svc.RecommendSpecialty(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, intelligence.ErrEmptySymptoms) {
			utils.JSONError(c, http.StatusBadRequest, "symptoms are required", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "recommendation failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}
