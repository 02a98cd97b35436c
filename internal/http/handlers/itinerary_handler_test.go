// README: HTTP tests for the itinerary generation endpoint and its error mapping.
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	httptransport "trippilot/internal/http"
	"trippilot/internal/modules/itinerary"
	"trippilot/internal/modules/usage"
)

// stubGenerator is a test double for the itinerary pipeline.
type stubGenerator struct {
	result *itinerary.Itinerary
	err    error
	calls  int
}

func (s *stubGenerator) Generate(_ context.Context, _ itinerary.TravelPreferences) (*itinerary.Itinerary, error) {
	s.calls++
	return s.result, s.err
}

// stubSessions is a test double for session preference lookup.
type stubSessions struct {
	prefs     itinerary.TravelPreferences
	loadErr   error
	finalized []string
}

func (s *stubSessions) Preferences(_ context.Context, _ string) (itinerary.TravelPreferences, error) {
	return s.prefs, s.loadErr
}

func (s *stubSessions) MarkFinalized(_ context.Context, id string) error {
	s.finalized = append(s.finalized, id)
	return nil
}

// stubQuota is a test double for the generation allowance.
type stubQuota struct {
	err  error
	uids []string
}

func (s *stubQuota) Consume(_ context.Context, uid string) error {
	s.uids = append(s.uids, uid)
	return s.err
}

func buildGenerateRouter(deps httptransport.RouterDeps) http.Handler {
	gin.SetMode(gin.TestMode)
	return httptransport.NewRouter(deps)
}

func doRequest(h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func sampleItinerary() *itinerary.Itinerary {
	start := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)
	return &itinerary.Itinerary{
		ID:          "it_1",
		Destination: "Paris",
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 7),
		Flights:     []itinerary.FlightOption{},
		Activities:  []itinerary.DailyActivity{},
	}
}

func TestGenerate_InlinePreferences(t *testing.T) {
	gen := &stubGenerator{result: sampleItinerary()}
	r := buildGenerateRouter(httptransport.RouterDeps{Generator: gen})

	w := doRequest(r, http.MethodPost, "/api/itineraries", map[string]any{
		"preferences": map[string]any{"destination": "Paris"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var got itinerary.Itinerary
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.Destination != "Paris" {
		t.Errorf("expected destination Paris, got %q", got.Destination)
	}
	if gen.calls != 1 {
		t.Errorf("expected 1 generator call, got %d", gen.calls)
	}
}

func TestGenerate_MissingDestination(t *testing.T) {
	gen := &stubGenerator{result: sampleItinerary()}
	r := buildGenerateRouter(httptransport.RouterDeps{Generator: gen})

	w := doRequest(r, http.MethodPost, "/api/itineraries", map[string]any{
		"preferences": map[string]any{"budget": "3000"},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if gen.calls != 0 {
		t.Errorf("invalid preferences must not reach the generator, got %d calls", gen.calls)
	}
}

func TestGenerate_NoPreferencesNoSession(t *testing.T) {
	r := buildGenerateRouter(httptransport.RouterDeps{Generator: &stubGenerator{}})
	w := doRequest(r, http.MethodPost, "/api/itineraries", map[string]any{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

// TestGenerate_ErrorMapping verifies that each pipeline failure reaches the
// client as a distinct status with a message that never echoes raw payloads.
func TestGenerate_ErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not configured", itinerary.ErrNotConfigured, http.StatusServiceUnavailable},
		{"transport", fmt.Errorf("%w: dial tcp: timeout", itinerary.ErrTransport), http.StatusBadGateway},
		{"empty reply", itinerary.ErrEmptyResponse, http.StatusBadGateway},
		{"malformed reply", &itinerary.ParseError{Raw: "not json at all", Err: fmt.Errorf("bad")}, http.StatusBadGateway},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := buildGenerateRouter(httptransport.RouterDeps{Generator: &stubGenerator{err: tc.err}})
			w := doRequest(r, http.MethodPost, "/api/itineraries", map[string]any{
				"preferences": map[string]any{"destination": "Paris"},
			})
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
			if bytes.Contains(w.Body.Bytes(), []byte("not json at all")) {
				t.Error("raw completion payload leaked into the client response")
			}
		})
	}
}

func TestGenerate_FromSession(t *testing.T) {
	gen := &stubGenerator{result: sampleItinerary()}
	sessions := &stubSessions{prefs: itinerary.TravelPreferences{Destination: "Paris"}}
	r := buildGenerateRouter(httptransport.RouterDeps{Generator: gen, Sessions: sessions})

	w := doRequest(r, http.MethodPost, "/api/itineraries", map[string]any{
		"session_id": "sess_1",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(sessions.finalized) != 1 || sessions.finalized[0] != "sess_1" {
		t.Errorf("expected session sess_1 marked finalized, got %v", sessions.finalized)
	}
}

func TestGenerate_QuotaExhausted(t *testing.T) {
	gen := &stubGenerator{result: sampleItinerary()}
	quota := &stubQuota{err: usage.ErrQuotaExhausted}
	r := buildGenerateRouter(httptransport.RouterDeps{Generator: gen, Quota: quota})

	w := doRequest(r, http.MethodPost, "/api/itineraries", map[string]any{
		"uid":         "user1",
		"preferences": map[string]any{"destination": "Paris"},
	})
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
	if gen.calls != 0 {
		t.Errorf("exhausted quota must not reach the generator, got %d calls", gen.calls)
	}
}

func TestGenerate_QuotaRequiresUID(t *testing.T) {
	r := buildGenerateRouter(httptransport.RouterDeps{Generator: &stubGenerator{}, Quota: &stubQuota{}})
	w := doRequest(r, http.MethodPost, "/api/itineraries", map[string]any{
		"uid":         "not a valid id!",
		"preferences": map[string]any{"destination": "Paris"},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestHealth(t *testing.T) {
	r := buildGenerateRouter(httptransport.RouterDeps{Generator: &stubGenerator{}})
	w := doRequest(r, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
