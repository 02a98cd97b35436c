// README: Credential validation endpoint.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"trippilot/internal/ai"
)

// CredentialProber checks whether a completion credential is accepted by the
// upstream service.
type CredentialProber interface {
	ValidateCredential(ctx context.Context) (bool, error)
}

// ProberFactory builds a prober around a caller-supplied key. The key lives
// only for the duration of the probe; it is never stored or logged.
type ProberFactory func(key string) CredentialProber

type KeyHandler struct {
	newProber ProberFactory
	logger    *zap.Logger
}

// NewKeyHandler wires the validation endpoint. A nil factory defaults to
// probing OpenAI keys; callers on a different backend must supply a factory
// matching the provider they generate with.
func NewKeyHandler(factory ProberFactory, logger *zap.Logger) *KeyHandler {
	if factory == nil {
		factory = func(key string) CredentialProber {
			return ai.NewOpenAIClient(key)
		}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &KeyHandler{newProber: factory, logger: logger}
}

type validateKeyRequest struct {
	Key string `json:"key"`
}

type validateKeyResponse struct {
	Valid bool `json:"valid"`
}

// Validate handles POST /api/keys/validate. A rejected key is a normal 200
// with valid=false; only transport failures are errors.
func (h *KeyHandler) Validate(c *gin.Context) {
	var req validateKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Key == "" {
		writeError(c, http.StatusBadRequest, "key is required")
		return
	}

	valid, err := h.newProber(req.Key).ValidateCredential(c.Request.Context())
	if err != nil {
		h.logger.Warn("credential probe failed", zap.Error(err))
		writeError(c, http.StatusBadGateway, "could not reach the completion service")
		return
	}
	writeJSON(c, http.StatusOK, validateKeyResponse{Valid: valid})
}
