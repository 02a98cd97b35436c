package ai

import (
	"context"
	"errors"
	"fmt"
)

// CompletionProvider defines the contract for interacting with completion services.
// This interface allows for swapping different AI providers (OpenAI, Gemini, etc.).
type CompletionProvider interface {
	// Configured reports whether a usable credential is present. Callers must
	// not attempt Complete when this returns false.
	Configured() bool

	// Complete sends a system persona and a user prompt to the completion
	// service and returns the raw text of the single reply.
	Complete(ctx context.Context, system, user string) (string, error)

	// ValidateCredential probes the service with a minimal call. An
	// authorization rejection yields (false, nil); only transport failures
	// are returned as errors.
	ValidateCredential(ctx context.Context) (bool, error)
}

// ErrEmptyCompletion is returned when the service replied but supplied no content.
var ErrEmptyCompletion = errors.New("completion service returned no content")

// StatusError reports a non-success status from the completion service.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("completion service returned status %d", e.StatusCode)
}
