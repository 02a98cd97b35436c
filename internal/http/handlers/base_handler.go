// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"trippilot/internal/modules/chat"
	"trippilot/internal/modules/itinerary"
	"trippilot/internal/modules/usage"
)

type errorResponse struct {
	Error string `json:"error"`
}

// isValidID ensures user ids are alphanumeric and at most 32 chars.
func isValidID(v string) bool {
	if v == "" || len(v) > 32 {
		return false
	}
	for _, c := range v {
		if (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			continue
		}
		return false
	}
	return true
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writePipelineError maps pipeline failures onto distinct, user-safe replies.
// Raw payload text never leaves the server; the service layer logs it.
func writePipelineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, itinerary.ErrNotConfigured):
		writeError(c, http.StatusServiceUnavailable, "the travel planner is not configured yet")
	case errors.Is(err, itinerary.ErrEmptyResponse):
		writeError(c, http.StatusBadGateway, "the travel planner returned an empty reply, please try again")
	case errors.Is(err, itinerary.ErrMalformedResponse):
		writeError(c, http.StatusBadGateway, "the travel planner returned an unusable reply, please try again")
	case errors.Is(err, itinerary.ErrTransport):
		writeError(c, http.StatusBadGateway, "the travel planner is unreachable, please try again later")
	case errors.Is(err, usage.ErrQuotaExhausted):
		writeError(c, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, chat.ErrSessionNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
