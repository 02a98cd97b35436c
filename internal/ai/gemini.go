package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const (
	geminiModel = "gemini-2.0-flash"

	geminiTemperature     = 0.7
	geminiMaxOutputTokens = 1500
)

// GeminiProvider implements CompletionProvider using Google's Gemini models.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

var _ CompletionProvider = (*GeminiProvider)(nil)

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(geminiModel)

	// Force JSON responses; the itinerary pipeline parses structured output.
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(geminiTemperature)
	model.SetMaxOutputTokens(geminiMaxOutputTokens)

	return &GeminiProvider{
		client: client,
		model:  model,
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

func (p *GeminiProvider) Configured() bool {
	return p.client != nil
}

// Complete submits the system persona and user prompt as a single combined
// prompt. While Gemini supports SystemInstruction, appending the persona
// directly keeps behaviour aligned across providers.
func (p *GeminiProvider) Complete(ctx context.Context, system, user string) (string, error) {
	fullPrompt := fmt.Sprintf("%s\n\n%s", system, user)

	resp, err := p.model.GenerateContent(ctx, genai.Text(fullPrompt))
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyCompletion
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			responseText.WriteString(string(txt))
		}
	}
	if strings.TrimSpace(responseText.String()) == "" {
		return "", ErrEmptyCompletion
	}
	return responseText.String(), nil
}

// GeminiKeyProber validates a caller-supplied key against the Gemini API.
// The client exists only for the duration of the probe; the key is never
// stored beyond it.
type GeminiKeyProber struct {
	apiKey string
}

func NewGeminiKeyProber(apiKey string) *GeminiKeyProber {
	return &GeminiKeyProber{apiKey: apiKey}
}

func (p *GeminiKeyProber) ValidateCredential(ctx context.Context) (bool, error) {
	if strings.TrimSpace(p.apiKey) == "" {
		return false, nil
	}
	provider, err := NewGeminiProvider(ctx, p.apiKey)
	if err != nil {
		return false, fmt.Errorf("gemini: init client: %w", err)
	}
	defer provider.Close()
	return provider.ValidateCredential(ctx)
}

// ValidateCredential issues a minimal token-count call. Gemini reports a bad
// API key as 400 INVALID_ARGUMENT rather than 401.
func (p *GeminiProvider) ValidateCredential(ctx context.Context) (bool, error) {
	_, err := p.model.CountTokens(ctx, genai.Text("ping"))
	if err == nil {
		return true, nil
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden:
			return false, nil
		}
	}
	return false, fmt.Errorf("gemini: count tokens: %w", err)
}
