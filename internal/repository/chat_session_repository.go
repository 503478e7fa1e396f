package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/DRITI2906/HealthMate/internal/model"
)

type ChatSessionRepository struct {
	db *gorm.DB
}

func NewChatSessionRepository(db *gorm.DB) *ChatSessionRepository {
	return &ChatSessionRepository{db: db}
}

// RecordTurn inserts the session together with the user and assistant
// messages of the first turn in one transaction. Either the whole turn
// becomes visible or nothing does.
func (r *ChatSessionRepository) RecordTurn(session *model.ChatSession, userMsg, assistantMsg *model.ChatMessage) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(session).Error; err != nil {
			return fmt.Errorf("create chat session failed: %w", err)
		}
		userMsg.SessionID = session.ID
		assistantMsg.SessionID = session.ID
		if err := tx.Create(userMsg).Error; err != nil {
			return fmt.Errorf("create user message failed: %w", err)
		}
		if err := tx.Create(assistantMsg).Error; err != nil {
			return fmt.Errorf("create assistant message failed: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("record chat turn failed: %w", err)
	}
	return nil
}

func (r *ChatSessionRepository) ListByUserID(userID uint) ([]model.ChatSession, error) {
	var sessions []model.ChatSession
	if err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("list chat sessions failed: %w", err)
	}
	return sessions, nil
}
