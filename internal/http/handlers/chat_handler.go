// README: Conversational trip-planning endpoint.
package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"trippilot/internal/modules/chat"
	"trippilot/internal/modules/itinerary"
)

// Conversations is the slice of the chat service this handler needs.
type Conversations interface {
	StartSession(ctx context.Context) (*chat.Session, error)
	SendMessage(ctx context.Context, sessionID, content string) (*chat.Session, error)
}

type ChatHandler struct {
	chats  Conversations
	logger *zap.Logger
}

func NewChatHandler(chats Conversations, logger *zap.Logger) *ChatHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatHandler{chats: chats, logger: logger}
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type chatResponse struct {
	SessionID   string                      `json:"session_id"`
	Reply       string                      `json:"reply"`
	Step        chat.Step                   `json:"step"`
	Preferences itinerary.TravelPreferences `json:"preferences"`
}

// Send handles POST /api/chat. A request without session_id starts a new
// conversation and returns the greeting; subsequent requests continue it.
func (h *ChatHandler) Send(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.SessionID == "" {
		sess, err := h.chats.StartSession(c.Request.Context())
		if err != nil {
			writePipelineError(c, err)
			return
		}
		writeJSON(c, http.StatusOK, sessionReply(sess))
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		writeError(c, http.StatusBadRequest, "message must not be empty")
		return
	}

	sess, err := h.chats.SendMessage(c.Request.Context(), req.SessionID, req.Message)
	if err != nil {
		writePipelineError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, sessionReply(sess))
}

func sessionReply(sess *chat.Session) chatResponse {
	resp := chatResponse{
		SessionID:   sess.ID,
		Step:        sess.Step,
		Preferences: sess.Preferences,
	}
	if n := len(sess.Messages); n > 0 {
		last := sess.Messages[n-1]
		if last.Role == chat.RoleAssistant {
			resp.Reply = last.Content
		}
	}
	return resp
}
