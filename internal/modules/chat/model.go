// README: Conversation session model and collection steps.
package chat

import (
	"errors"
	"time"

	"trippilot/internal/modules/itinerary"
)

// ErrSessionNotFound is returned when a session id is unknown or expired.
var ErrSessionNotFound = errors.New("chat session not found")

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Step tracks how far preference collection has progressed.
type Step string

const (
	StepInitial    Step = "initial"
	StepCollecting Step = "collecting"
	StepSuggesting Step = "suggesting"
	StepFinalizing Step = "finalizing"
)

// Session holds one conversation: its transcript, the preferences accumulated
// from it, and the collection step. Sessions are ephemeral; itineraries built
// from them are never stored.
type Session struct {
	ID          string                      `json:"id"`
	Messages    []Message                   `json:"messages"`
	Preferences itinerary.TravelPreferences `json:"preferences"`
	Step        Step                        `json:"step"`
	UpdatedAt   time.Time                   `json:"updated_at"`
}

const greeting = "Hi there! I'm your AI travel assistant. I can help you plan your " +
	"perfect trip and find great flights and hotels based on your preferences. To get " +
	"started, could you tell me where you'd like to go and when you're planning to travel?"
