package model

import (
	"encoding/json"
	"time"
)

// ChatMessage is one side of a conversation turn. Metadata is stored as a
// JSON object serialized to text for portability across MySQL versions.
type ChatMessage struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	SessionID   uint      `gorm:"not null;index" json:"session_id"`
	MessageType string    `gorm:"size:20;not null" json:"message_type"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	Timestamp   time.Time `json:"timestamp"`
	Metadata    string    `gorm:"type:text" json:"-"`
}

// MetadataMap returns the parsed metadata object; nil on parse error.
func (m *ChatMessage) MetadataMap() map[string]string {
	if m.Metadata == "" {
		return nil
	}
	var v map[string]string
	_ = json.Unmarshal([]byte(m.Metadata), &v)
	return v
}

// SetMetadata stores the metadata object as JSON.
func (m *ChatMessage) SetMetadata(v map[string]string) {
	if len(v) == 0 {
		m.Metadata = "{}"
		return
	}
	b, _ := json.Marshal(v)
	m.Metadata = string(b)
}
