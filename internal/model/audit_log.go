package model

import "time"

// AuditLog records a domain event (signup, chat turn, medication change).
// Rows are written asynchronously by the audit worker.
type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	EventID   string    `gorm:"size:50;not null;uniqueIndex" json:"event_id"`
	UserID    uint      `gorm:"index" json:"user_id"`
	Action    string    `gorm:"size:50;not null;index" json:"action"`
	Detail    string    `gorm:"type:text" json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}
