// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"trippilot/internal/http/handlers"
	"trippilot/internal/http/middleware"
)

// RouterDeps carries the handler dependencies. Sessions and Quota may be nil;
// the matching features are then disabled rather than failing at startup.
type RouterDeps struct {
	Generator handlers.Generator
	Sessions  handlers.PreferenceSource
	Chats     handlers.Conversations
	Prober    handlers.ProberFactory
	Quota     handlers.QuotaConsumer
	Logger    *zap.Logger
}

func NewRouter(deps RouterDeps) http.Handler {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.Logging(deps.Logger))

	itineraryHandler := handlers.NewItineraryHandler(deps.Generator, deps.Sessions, deps.Quota, deps.Logger)
	r.POST("/api/itineraries", itineraryHandler.Generate)

	if deps.Chats != nil {
		chatHandler := handlers.NewChatHandler(deps.Chats, deps.Logger)
		r.POST("/api/chat", chatHandler.Send)
	}

	keyHandler := handlers.NewKeyHandler(deps.Prober, deps.Logger)
	r.POST("/api/keys/validate", keyHandler.Validate)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
