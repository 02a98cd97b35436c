// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"trippilot/internal/ai"
	"trippilot/internal/config"
	httptransport "trippilot/internal/http"
	"trippilot/internal/http/handlers"
	"trippilot/internal/infra"
	"trippilot/internal/modules/chat"
	"trippilot/internal/modules/itinerary"
	"trippilot/internal/modules/usage"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, cleanup, err := buildProvider(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("init completion provider", zap.Error(err))
	}
	if cleanup != nil {
		defer cleanup()
	}

	redisClient := infra.NewRedis(cfg.Redis.Addr)
	defer redisClient.Close()

	itinerarySvc := itinerary.NewService(provider, logger)
	chatSvc := chat.NewService(chat.NewStore(redisClient), provider, logger)

	var quota *usage.Service
	if cfg.DB.DSN != "" {
		dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			logger.Fatal("init db pool", zap.Error(err))
		}
		defer dbPool.Close()
		quota = usage.NewService(usage.NewStore(dbPool))
	} else {
		logger.Info("TRIP_DB_DSN not set; generation quota disabled")
	}

	deps := httptransport.RouterDeps{
		Generator: itinerarySvc,
		Sessions:  chatSvc,
		Chats:     chatSvc,
		Prober:    proberFactory(cfg.AI.Provider),
		Logger:    logger,
	}
	if quota != nil {
		deps.Quota = quota
	}

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: httptransport.NewRouter(deps)}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Warn("server shutdown", zap.Error(err))
		}
	}()

	logger.Info("listening", zap.String("addr", cfg.HTTP.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("serve", zap.Error(err))
	}
}

// proberFactory selects the credential-probe backend to match the provider
// used for generation, so key validation answers about the service the
// submitted key would actually be used with.
func proberFactory(provider string) handlers.ProberFactory {
	if provider == "gemini" {
		return func(key string) handlers.CredentialProber {
			return ai.NewGeminiKeyProber(key)
		}
	}
	return func(key string) handlers.CredentialProber {
		return ai.NewOpenAIClient(key)
	}
}

// buildProvider selects the completion backend. Missing credentials are not
// fatal at startup: the pipeline fails closed per request instead, so a
// misconfigured deploy still serves health checks and key validation.
func buildProvider(ctx context.Context, cfg config.Config, logger *zap.Logger) (ai.CompletionProvider, func(), error) {
	switch cfg.AI.Provider {
	case "gemini":
		if cfg.AI.GeminiKey == "" {
			logger.Warn("GEMINI_API_KEY not set; generation will report not configured")
			return nil, nil, nil
		}
		p, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
		if err != nil {
			return nil, nil, err
		}
		return p, p.Close, nil
	default:
		if cfg.AI.OpenAIKey == "" {
			logger.Warn("OPENAI_API_KEY not set; generation will report not configured")
			return nil, nil, nil
		}
		return ai.NewOpenAIClient(cfg.AI.OpenAIKey), nil, nil
	}
}
