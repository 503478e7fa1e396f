package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/DRITI2906/HealthMate/internal/model"
	"github.com/DRITI2906/HealthMate/internal/pkg/mdfmt"
)

var (
	ErrMessageEmpty    = errors.New("message content is empty")
	ErrModelInvocation = errors.New("model invocation failed")
	ErrSessionNotFound = errors.New("session not found")
)

// Agent types select a prompt persona; anything else maps to "general".
const (
	AgentGeneral      = "general"
	AgentSymptom      = "symptom"
	AgentNutrition    = "nutrition"
	AgentMentalHealth = "mental-health"
)

var promptTemplates = map[string]string{
	AgentGeneral: "You are a helpful general health assistant. " +
		"Response Style: {response_style}\n\n" +
		"If response_style is 'concise': Keep your answer brief and to the point (2-3 sentences max). " +
		"If response_style is 'detailed': Provide comprehensive information with examples and explanations.\n\n" +
		"Always format your response in *Markdown* with:\n" +
		"- Clear headings (## Heading)\n" +
		"- Bullet points (- item)\n" +
		"- Bold keywords (*word*)\n\n" +
		"Answer the following user question:\nUser: {message}",
	AgentSymptom: "You are a symptom checker AI. " +
		"Response Style: {response_style}\n\n" +
		"If response_style is 'concise': Give brief, direct answers (2-3 sentences max). " +
		"If response_style is 'detailed': Provide comprehensive analysis with multiple sections.\n\n" +
		"Always format your response in *Markdown* with:\n" +
		"- Clear sections (## Symptoms, ## Possible Causes, ## Next Steps)\n" +
		"- Bullet points (- item)\n" +
		"- Bold important terms (*term*)\n\n" +
		"User: {message}",
	AgentNutrition: "You are a nutrition expert AI. " +
		"Response Style: {response_style}\n\n" +
		"If response_style is 'concise': Keep advice brief and actionable (2-3 sentences max). " +
		"If response_style is 'detailed': Provide comprehensive guidance with examples and explanations.\n\n" +
		"Always format your response in *Markdown* with:\n" +
		"- Headings for structure (## Diet Tips, ## Foods to Include, ## Foods to Avoid)\n" +
		"- Bullet points for lists\n" +
		"- Bold important nutrients and food names\n\n" +
		"User: {message}",
	AgentMentalHealth: "You are a mental health coach AI. " +
		"Response Style: {response_style}\n\n" +
		"If response_style is 'concise': Give brief, supportive advice (2-3 sentences max). " +
		"If response_style is 'detailed': Provide comprehensive strategies with examples and resources.\n\n" +
		"Always format your response in *Markdown* with:\n" +
		"- Headings for clarity (## Coping Strategies, ## Resources, ## Self-Care)\n" +
		"- Bullet points for advice\n" +
		"- Bold key ideas for emphasis\n\n" +
		"User:{message}",
}

var fallbackResponses = map[string]string{
	AgentGeneral:      "I'm currently in maintenance mode. Please try again later or contact support.",
	AgentSymptom:      "Symptom checking is temporarily unavailable. Please consult a healthcare professional for medical advice.",
	AgentNutrition:    "Nutrition advice is temporarily unavailable. Please consult a registered dietitian for personalized guidance.",
	AgentMentalHealth: "Mental health support is temporarily unavailable. Please contact a mental health professional or crisis hotline if you need immediate help.",
}

// ChatCompleter is the model client surface; nil means fallback mode.
type ChatCompleter interface {
	CompletePrompt(ctx context.Context, prompt string) (string, error)
}

// TurnStore persists whole conversation turns atomically.
type TurnStore interface {
	RecordTurn(session *model.ChatSession, userMsg, assistantMsg *model.ChatMessage) error
	ListByUserID(userID uint) ([]model.ChatSession, error)
}

type MessageStore interface {
	ListBySessionID(sessionID uint) ([]model.ChatMessage, error)
}

// AuditPublisher enqueues audit entries; failures never fail the request.
type AuditPublisher interface {
	Publish(ctx context.Context, entry model.AuditLog) error
}

// SessionListCache caches the per-user session list for the history reads.
type SessionListCache interface {
	GetSessions(ctx context.Context, userID uint) ([]model.ChatSession, bool, error)
	SetSessions(ctx context.Context, userID uint, sessions []model.ChatSession) error
	DeleteSessions(ctx context.Context, userID uint) error
	MarkDirty(ctx context.Context, userID uint) error
	IsDirty(ctx context.Context, userID uint) (bool, error)
}

type ChatService struct {
	turns     TurnStore
	messages  MessageStore
	llm       ChatCompleter
	publisher AuditPublisher
	cache     SessionListCache
}

type SendTurnInput struct {
	UserID    uint
	AgentType string
	Style     string
	Message   string
}

type TurnResult struct {
	Response     string
	SessionToken string
}

func NewChatService(
	turns TurnStore,
	messages MessageStore,
	llm ChatCompleter,
	publisher AuditPublisher,
	cache SessionListCache,
) *ChatService {
	return &ChatService{
		turns:     turns,
		messages:  messages,
		llm:       llm,
		publisher: publisher,
		cache:     cache,
	}
}

// Respond produces the assistant text for one message. Without a configured
// model it returns the static per-agent fallback and never fails; with one,
// a model failure surfaces as ErrModelInvocation instead of being folded
// into the reply.
func (s *ChatService) Respond(ctx context.Context, agentType, message, style string) (string, error) {
	agent := normalizeAgentType(agentType)

	if s.llm == nil {
		return fallbackResponses[agent], nil
	}

	prompt := buildPrompt(agent, message, style)
	text, err := s.llm.CompletePrompt(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrModelInvocation, err)
	}
	return text, nil
}

// SendTurn generates the assistant reply and then commits the session plus
// both messages in one unit of work. A failure anywhere leaves no trace of
// the turn.
func (s *ChatService) SendTurn(ctx context.Context, input SendTurnInput) (*TurnResult, error) {
	if input.UserID == 0 {
		return nil, ErrInvalidInput
	}
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return nil, ErrMessageEmpty
	}

	agent := normalizeAgentType(input.AgentType)
	style := input.Style
	if style == "" {
		style = "concise"
	}

	raw, err := s.Respond(ctx, agent, message, style)
	if err != nil {
		return nil, err
	}
	formatted := mdfmt.Format(raw)
	if formatted == "" {
		formatted = "Sorry, I couldn't generate a response."
	}

	now := time.Now().UTC()
	session := &model.ChatSession{
		UserID:    input.UserID,
		SessionID: newSessionToken(now),
		AgentType: agent,
		CreatedAt: now,
	}

	userMsg := &model.ChatMessage{
		MessageType: "user",
		Content:     message,
		Timestamp:   now,
	}
	userMsg.SetMetadata(map[string]string{"agent_type": agent})

	assistantMsg := &model.ChatMessage{
		MessageType: "assistant",
		Content:     formatted,
		Timestamp:   now,
	}
	assistantMsg.SetMetadata(map[string]string{"agent_type": agent})

	if err := s.turns.RecordTurn(session, userMsg, assistantMsg); err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.MarkDirty(ctx, input.UserID)
		_ = s.cache.DeleteSessions(ctx, input.UserID)
	}
	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, model.AuditLog{
			EventID:   uuid.NewString(),
			UserID:    input.UserID,
			Action:    "chat.turn",
			Detail:    session.SessionID,
			CreatedAt: now,
		})
	}

	return &TurnResult{
		Response:     formatted,
		SessionToken: session.SessionID,
	}, nil
}

// ListSessions backs the unauthenticated history read; it serves from the
// cache when the entry is present and not marked dirty.
func (s *ChatService) ListSessions(ctx context.Context, userID uint) ([]model.ChatSession, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}

	if s.cache != nil {
		dirty, err := s.cache.IsDirty(ctx, userID)
		if err == nil && !dirty {
			if cached, hit, cacheErr := s.cache.GetSessions(ctx, userID); cacheErr == nil && hit {
				return cached, nil
			}
		}
	}

	sessions, err := s.turns.ListByUserID(userID)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if dirty, dirtyErr := s.cache.IsDirty(ctx, userID); dirtyErr == nil && !dirty {
			_ = s.cache.SetSessions(ctx, userID, sessions)
		}
	}
	return sessions, nil
}

func (s *ChatService) ListMessages(sessionID uint) ([]model.ChatMessage, error) {
	if sessionID == 0 {
		return nil, ErrInvalidInput
	}
	return s.messages.ListBySessionID(sessionID)
}

func normalizeAgentType(agentType string) string {
	if _, ok := promptTemplates[agentType]; ok {
		return agentType
	}
	return AgentGeneral
}

// buildPrompt substitutes textually; style values other than "concise" and
// "detailed" pass through uninterpreted.
func buildPrompt(agent, message, style string) string {
	template := promptTemplates[agent]
	replacer := strings.NewReplacer(
		"{response_style}", style,
		"{message}", message,
	)
	return replacer.Replace(template)
}

func newSessionToken(now time.Time) string {
	return "session_" + now.Format("20060102_150405")
}
