// README: Itinerary generation endpoint.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"trippilot/internal/modules/itinerary"
)

// Generator is the slice of the itinerary service this handler needs.
type Generator interface {
	Generate(ctx context.Context, prefs itinerary.TravelPreferences) (*itinerary.Itinerary, error)
}

// PreferenceSource resolves session-collected preferences for generation.
type PreferenceSource interface {
	Preferences(ctx context.Context, sessionID string) (itinerary.TravelPreferences, error)
	MarkFinalized(ctx context.Context, sessionID string) error
}

// QuotaConsumer deducts one generation from a user's monthly allowance.
type QuotaConsumer interface {
	Consume(ctx context.Context, uid string) error
}

type ItineraryHandler struct {
	generator Generator
	sessions  PreferenceSource
	quota     QuotaConsumer
	logger    *zap.Logger
}

// NewItineraryHandler wires the generation endpoint. sessions and quota may be
// nil; session lookup and quota enforcement are then disabled.
func NewItineraryHandler(generator Generator, sessions PreferenceSource, quota QuotaConsumer, logger *zap.Logger) *ItineraryHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ItineraryHandler{generator: generator, sessions: sessions, quota: quota, logger: logger}
}

type generateRequest struct {
	UID         string                       `json:"uid"`
	SessionID   string                       `json:"session_id"`
	Preferences *itinerary.TravelPreferences `json:"preferences"`
}

// Generate handles POST /api/itineraries. Preferences come either inline or
// from a chat session's collected state.
func (h *ItineraryHandler) Generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	var prefs itinerary.TravelPreferences
	switch {
	case req.Preferences != nil:
		prefs = *req.Preferences
	case req.SessionID != "":
		if h.sessions == nil {
			writeError(c, http.StatusBadRequest, "session lookup is not available")
			return
		}
		p, err := h.sessions.Preferences(c.Request.Context(), req.SessionID)
		if err != nil {
			writePipelineError(c, err)
			return
		}
		prefs = p
	default:
		writeError(c, http.StatusBadRequest, "preferences or session_id is required")
		return
	}

	if err := prefs.Validate(); err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	if h.quota != nil {
		if req.UID == "" || !isValidID(req.UID) {
			writeError(c, http.StatusBadRequest, "a valid uid is required")
			return
		}
		if err := h.quota.Consume(c.Request.Context(), req.UID); err != nil {
			writePipelineError(c, err)
			return
		}
	}

	it, err := h.generator.Generate(c.Request.Context(), prefs)
	if err != nil {
		writePipelineError(c, err)
		return
	}

	if req.SessionID != "" && h.sessions != nil {
		// Best effort; the itinerary is already built.
		if err := h.sessions.MarkFinalized(c.Request.Context(), req.SessionID); err != nil {
			h.logger.Warn("mark session finalized", zap.String("session_id", req.SessionID), zap.Error(err))
		}
	}

	writeJSON(c, http.StatusOK, it)
}
