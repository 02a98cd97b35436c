package main

import (
	"testing"

	"trippilot/internal/ai"
)

// TestProberFactoryMatchesProvider verifies that key validation probes the
// same service the server generates with: a Gemini deploy must never answer
// for a Gemini key by asking OpenAI.
func TestProberFactoryMatchesProvider(t *testing.T) {
	if _, ok := proberFactory("gemini")("some-key").(*ai.GeminiKeyProber); !ok {
		t.Error("gemini provider must probe keys against Gemini")
	}
	if _, ok := proberFactory("openai")("some-key").(*ai.OpenAIClient); !ok {
		t.Error("openai provider must probe keys against OpenAI")
	}
	if _, ok := proberFactory("")("some-key").(*ai.OpenAIClient); !ok {
		t.Error("unset provider must probe keys against the OpenAI default")
	}
}
