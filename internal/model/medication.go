package model

import "time"

// Medication rows are keyed by a system-generated opaque string so external
// consumers get a stable identifier independent of insert order. The
// camelCase column and JSON names are a frozen API contract.
type Medication struct {
	ID           string     `gorm:"primaryKey;size:50" json:"id"`
	UserID       uint       `gorm:"not null;index" json:"-"`
	Name         string     `gorm:"size:100;not null" json:"name"`
	Dosage       string     `gorm:"size:50;not null" json:"dosage"`
	Frequency    string     `gorm:"size:50;not null" json:"frequency"`
	PrescribedBy string     `gorm:"column:prescribedBy;size:100;not null" json:"prescribedBy"`
	StartDate    time.Time  `gorm:"column:startDate;not null" json:"startDate"`
	EndDate      *time.Time `gorm:"column:endDate" json:"endDate,omitempty"`
	TotalDoses   *int       `gorm:"column:totalDoses" json:"totalDoses,omitempty"`
	Instructions string     `gorm:"type:text" json:"instructions,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
