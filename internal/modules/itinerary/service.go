// README: Itinerary generation pipeline (prompt -> completion call -> typed parse).
package itinerary

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"trippilot/internal/ai"
)

// Service turns travel preferences into a typed itinerary via a completion
// provider. It is stateless between calls and holds no shared mutable
// resource, so concurrent independent calls do not interfere.
type Service struct {
	provider ai.CompletionProvider
	logger   *zap.Logger
}

// NewService creates the pipeline around the given provider. provider may be
// nil when no credential is configured; generation then fails closed.
func NewService(provider ai.CompletionProvider, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{provider: provider, logger: logger}
}

// Generate renders prefs into a prompt, performs a single completion call and
// parses the reply into an Itinerary. Every failure resolves to one of the
// sentinel errors in model.go. No retries happen here; retry policy belongs
// to the caller.
func (s *Service) Generate(ctx context.Context, prefs TravelPreferences) (*Itinerary, error) {
	if s.provider == nil || !s.provider.Configured() {
		return nil, ErrNotConfigured
	}

	reply, err := s.provider.Complete(ctx, systemPrompt, buildUserPrompt(prefs))
	if err != nil {
		if errors.Is(err, ai.ErrEmptyCompletion) {
			return nil, ErrEmptyResponse
		}
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	if strings.TrimSpace(reply) == "" {
		return nil, ErrEmptyResponse
	}

	it, err := parseItinerary(reply)
	if err != nil {
		// Raw payload goes to the log only; callers see the sanitized error.
		s.logger.Warn("itinerary reply rejected", zap.Error(err), zap.String("raw", reply))
		return nil, err
	}
	return it, nil
}

// ValidateCredential probes the configured provider with a minimal call. A
// rejected key reports false without an error; only transport failures
// propagate.
func (s *Service) ValidateCredential(ctx context.Context) (bool, error) {
	if s.provider == nil || !s.provider.Configured() {
		return false, nil
	}
	return s.provider.ValidateCredential(ctx)
}
