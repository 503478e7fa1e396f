package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DRITI2906/HealthMate/internal/app"
	"github.com/DRITI2906/HealthMate/internal/transport/http/response"
)

type SymptomHandler struct {
	symptomService *app.SymptomService
}

type SymptomAssessmentRequest struct {
	Symptoms []app.Symptom `json:"symptoms" binding:"required,min=1,dive"`
}

func NewSymptomHandler(symptomService *app.SymptomService) *SymptomHandler {
	return &SymptomHandler{symptomService: symptomService}
}

func (h *SymptomHandler) Assess(c *gin.Context) {
	var req SymptomAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	assessment, err := h.symptomService.Assess(c.Request.Context(), req.Symptoms)
	if err != nil {
		if errors.Is(err, app.ErrInvalidInput) {
			response.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "Error analyzing symptoms")
		return
	}

	response.OK(c, assessment)
}
