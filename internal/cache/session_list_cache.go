package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"github.com/DRITI2906/HealthMate/internal/model"
)

// SessionListCache keeps a per-user copy of the chat-history session list.
// A short-lived dirty marker suppresses repopulation while a new turn is
// being committed.
type SessionListCache struct {
	client         *redisv9.Client
	listTTL        time.Duration
	dirtyMarkerTTL time.Duration
}

func NewSessionListCache(client *redisv9.Client, listTTL, dirtyMarkerTTL time.Duration) *SessionListCache {
	if listTTL <= 0 {
		listTTL = 60 * time.Second
	}
	if dirtyMarkerTTL <= 0 {
		dirtyMarkerTTL = 5 * time.Second
	}
	return &SessionListCache{
		client:         client,
		listTTL:        listTTL,
		dirtyMarkerTTL: dirtyMarkerTTL,
	}
}

func (c *SessionListCache) GetSessions(ctx context.Context, userID uint) ([]model.ChatSession, bool, error) {
	raw, err := c.client.Get(ctx, c.listKey(userID)).Result()
	if err == redisv9.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get session list failed: %w", err)
	}

	var sessions []model.ChatSession
	if err := json.Unmarshal([]byte(raw), &sessions); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached session list failed: %w", err)
	}
	return sessions, true, nil
}

func (c *SessionListCache) SetSessions(ctx context.Context, userID uint, sessions []model.ChatSession) error {
	payload, err := json.Marshal(sessions)
	if err != nil {
		return fmt.Errorf("marshal session list failed: %w", err)
	}
	if err := c.client.Set(ctx, c.listKey(userID), payload, c.listTTL).Err(); err != nil {
		return fmt.Errorf("redis set session list failed: %w", err)
	}
	return nil
}

func (c *SessionListCache) DeleteSessions(ctx context.Context, userID uint) error {
	if err := c.client.Del(ctx, c.listKey(userID)).Err(); err != nil {
		return fmt.Errorf("redis delete session list failed: %w", err)
	}
	return nil
}

func (c *SessionListCache) MarkDirty(ctx context.Context, userID uint) error {
	if err := c.client.Set(ctx, c.dirtyKey(userID), "1", c.dirtyMarkerTTL).Err(); err != nil {
		return fmt.Errorf("redis set dirty marker failed: %w", err)
	}
	return nil
}

func (c *SessionListCache) IsDirty(ctx context.Context, userID uint) (bool, error) {
	exists, err := c.client.Exists(ctx, c.dirtyKey(userID)).Result()
	if err != nil {
		return false, fmt.Errorf("redis check dirty marker failed: %w", err)
	}
	return exists > 0, nil
}

func (c *SessionListCache) listKey(userID uint) string {
	return fmt.Sprintf("chat:sessions:%d", userID)
}

func (c *SessionListCache) dirtyKey(userID uint) string {
	return fmt.Sprintf("chat:sessions:dirty:%d", userID)
}
