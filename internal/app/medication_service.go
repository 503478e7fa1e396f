package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/DRITI2906/HealthMate/internal/model"
)

var ErrMedicationNotFound = errors.New("medication not found")

type MedicationStore interface {
	Create(medication *model.Medication) error
	ListByUserID(userID uint) ([]model.Medication, error)
	DeleteByIDAndUserID(id string, userID uint) (int64, error)
}

type MedicationService struct {
	medications MedicationStore
	publisher   AuditPublisher
}

type CreateMedicationInput struct {
	Name         string
	Dosage       string
	Frequency    string
	PrescribedBy string
	StartDate    time.Time
	EndDate      *time.Time
	TotalDoses   *int
	Instructions string
}

func NewMedicationService(medications MedicationStore, publisher AuditPublisher) *MedicationService {
	return &MedicationService{
		medications: medications,
		publisher:   publisher,
	}
}

func (s *MedicationService) List(userID uint) ([]model.Medication, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	return s.medications.ListByUserID(userID)
}

// Create assigns a system-generated opaque id; callers never supply one.
func (s *MedicationService) Create(ctx context.Context, userID uint, input CreateMedicationInput) (*model.Medication, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	name := strings.TrimSpace(input.Name)
	if name == "" || strings.TrimSpace(input.Dosage) == "" || strings.TrimSpace(input.Frequency) == "" {
		return nil, ErrInvalidInput
	}

	medication := &model.Medication{
		ID:           uuid.NewString(),
		UserID:       userID,
		Name:         name,
		Dosage:       input.Dosage,
		Frequency:    input.Frequency,
		PrescribedBy: input.PrescribedBy,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		TotalDoses:   input.TotalDoses,
		Instructions: input.Instructions,
	}
	if err := s.medications.Create(medication); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, model.AuditLog{
			EventID:   uuid.NewString(),
			UserID:    userID,
			Action:    "medication.create",
			Detail:    medication.ID,
			CreatedAt: time.Now().UTC(),
		})
	}
	return medication, nil
}

// Delete is owner-scoped: a row that exists but belongs to someone else is
// indistinguishable from a missing one.
func (s *MedicationService) Delete(ctx context.Context, userID uint, medicationID string) error {
	if userID == 0 || strings.TrimSpace(medicationID) == "" {
		return ErrInvalidInput
	}

	affected, err := s.medications.DeleteByIDAndUserID(medicationID, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrMedicationNotFound
	}

	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, model.AuditLog{
			EventID:   uuid.NewString(),
			UserID:    userID,
			Action:    "medication.delete",
			Detail:    medicationID,
			CreatedAt: time.Now().UTC(),
		})
	}
	return nil
}
