package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DRITI2906/HealthMate/internal/app"
	"github.com/DRITI2906/HealthMate/internal/model"
	"github.com/DRITI2906/HealthMate/internal/transport/http/middleware"
	"github.com/DRITI2906/HealthMate/internal/transport/http/response"
)

type MedicationHandler struct {
	medicationService *app.MedicationService
}

// The camelCase field names are a frozen API contract.
type MedicationCreateRequest struct {
	Name         string     `json:"name" binding:"required"`
	Dosage       string     `json:"dosage" binding:"required"`
	Frequency    string     `json:"frequency" binding:"required"`
	PrescribedBy string     `json:"prescribedBy" binding:"required"`
	StartDate    time.Time  `json:"startDate" binding:"required"`
	EndDate      *time.Time `json:"endDate"`
	TotalDoses   *int       `json:"totalDoses"`
	Instructions string     `json:"instructions"`
}

func NewMedicationHandler(medicationService *app.MedicationService) *MedicationHandler {
	return &MedicationHandler{medicationService: medicationService}
}

func (h *MedicationHandler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "invalid token payload")
		return
	}

	medications, err := h.medicationService.List(userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "fetch medications failed")
		return
	}

	views := make([]gin.H, 0, len(medications))
	for i := range medications {
		views = append(views, medicationView(&medications[i]))
	}
	response.OK(c, gin.H{"medications": views})
}

func (h *MedicationHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "invalid token payload")
		return
	}

	var req MedicationCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	medication, err := h.medicationService.Create(c.Request.Context(), userID, app.CreateMedicationInput{
		Name:         req.Name,
		Dosage:       req.Dosage,
		Frequency:    req.Frequency,
		PrescribedBy: req.PrescribedBy,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		TotalDoses:   req.TotalDoses,
		Instructions: req.Instructions,
	})
	if err != nil {
		if errors.Is(err, app.ErrInvalidInput) {
			response.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "create medication failed")
		return
	}

	response.OK(c, gin.H{
		"success":    true,
		"medication": medicationView(medication),
	})
}

func (h *MedicationHandler) Delete(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "invalid token payload")
		return
	}

	err := h.medicationService.Delete(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, app.ErrMedicationNotFound):
			response.Error(c, http.StatusNotFound, "Medication not found")
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "delete medication failed")
		}
		return
	}

	response.OK(c, gin.H{
		"success": true,
		"message": "Medication deleted successfully",
	})
}

func medicationView(m *model.Medication) gin.H {
	return gin.H{
		"id":           m.ID,
		"name":         m.Name,
		"dosage":       m.Dosage,
		"frequency":    m.Frequency,
		"prescribedBy": m.PrescribedBy,
		"startDate":    m.StartDate,
		"endDate":      m.EndDate,
		"totalDoses":   m.TotalDoses,
		"instructions": m.Instructions,
	}
}
