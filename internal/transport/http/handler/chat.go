package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DRITI2906/HealthMate/internal/app"
	"github.com/DRITI2906/HealthMate/internal/transport/http/middleware"
	"github.com/DRITI2906/HealthMate/internal/transport/http/response"
)

type ChatHandler struct {
	chatService *app.ChatService
}

type ChatRequest struct {
	Message       string `json:"message" binding:"required"`
	AgentType     string `json:"agent_type"`
	ResponseStyle string `json:"response_style"`
}

func NewChatHandler(chatService *app.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Chat runs one conversation turn. The turn is all-or-nothing: a model or
// storage failure returns 500 with no rows persisted.
func (h *ChatHandler) Chat(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "invalid token payload")
		return
	}

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	result, err := h.chatService.SendTurn(c.Request.Context(), app.SendTurnInput{
		UserID:    userID,
		AgentType: req.AgentType,
		Style:     req.ResponseStyle,
		Message:   req.Message,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrMessageEmpty), errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, app.ErrModelInvocation):
			response.Error(c, http.StatusInternalServerError, "AI response error: "+err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	response.OK(c, gin.H{
		"response":   result.Response,
		"session_id": result.SessionToken,
	})
}

// History and Messages are deliberately unauthenticated; see the router.
func (h *ChatHandler) History(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid user id")
		return
	}

	sessions, err := h.chatService.ListSessions(c.Request.Context(), uint(userID))
	if err != nil {
		if errors.Is(err, app.ErrInvalidInput) {
			response.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "fetch chat history failed")
		return
	}

	views := make([]gin.H, 0, len(sessions))
	for _, s := range sessions {
		views = append(views, gin.H{
			"id":         s.ID,
			"session_id": s.SessionID,
			"agent_type": s.AgentType,
			"created_at": s.CreatedAt,
		})
	}
	response.OK(c, gin.H{"sessions": views})
}

func (h *ChatHandler) Messages(c *gin.Context) {
	sessionID, err := strconv.ParseUint(c.Param("session_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid session id")
		return
	}

	messages, err := h.chatService.ListMessages(uint(sessionID))
	if err != nil {
		if errors.Is(err, app.ErrInvalidInput) {
			response.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "fetch chat messages failed")
		return
	}

	views := make([]gin.H, 0, len(messages))
	for _, m := range messages {
		views = append(views, gin.H{
			"id":               m.ID,
			"message_type":     m.MessageType,
			"content":          m.Content,
			"message_metadata": m.MetadataMap(),
			"created_at":       m.Timestamp,
		})
	}
	response.OK(c, gin.H{"messages": views})
}
