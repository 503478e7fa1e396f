package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/DRITI2906/HealthMate/internal/model"
)

type MedicationRepository struct {
	db *gorm.DB
}

func NewMedicationRepository(db *gorm.DB) *MedicationRepository {
	return &MedicationRepository{db: db}
}

func (r *MedicationRepository) Create(medication *model.Medication) error {
	if err := r.db.Create(medication).Error; err != nil {
		return fmt.Errorf("create medication failed: %w", err)
	}
	return nil
}

func (r *MedicationRepository) ListByUserID(userID uint) ([]model.Medication, error) {
	var medications []model.Medication
	if err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&medications).Error; err != nil {
		return nil, fmt.Errorf("list medications failed: %w", err)
	}
	return medications, nil
}

// DeleteByIDAndUserID removes the row only when it belongs to the given
// user; the affected-row count distinguishes not-found from deleted.
func (r *MedicationRepository) DeleteByIDAndUserID(id string, userID uint) (int64, error) {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&model.Medication{})
	if result.Error != nil {
		return 0, fmt.Errorf("delete medication failed: %w", result.Error)
	}
	return result.RowsAffected, nil
}
