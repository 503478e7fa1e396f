package model

import "time"

type ChatSession struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	SessionID string    `gorm:"size:100;not null;uniqueIndex" json:"session_id"`
	AgentType string    `gorm:"size:50;not null" json:"agent_type"`
	CreatedAt time.Time `json:"created_at"`
}
