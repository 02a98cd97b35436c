// README: Conversation service; collects preferences across turns and replies via the completion provider.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"trippilot/internal/ai"
	"trippilot/internal/modules/extract"
	"trippilot/internal/modules/itinerary"
)

const assistantPersona = "You are a friendly travel assistant for TripPilot. Help the " +
	"user settle on a destination, travel dates, budget, traveler count and interests. " +
	"Keep replies short and conversational."

// SessionStore abstracts session persistence so tests can supply an in-memory double.
type SessionStore interface {
	Load(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, sess *Session) error
}

type Service struct {
	store     SessionStore
	provider  ai.CompletionProvider
	extractor *extract.Extractor
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(store SessionStore, provider ai.CompletionProvider, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:     store,
		provider:  provider,
		extractor: extract.New(),
		logger:    logger,
		now:       time.Now,
	}
}

// StartSession creates a session seeded with the assistant greeting.
func (s *Service) StartSession(ctx context.Context) (*Session, error) {
	sess := &Session{
		ID:   uuid.NewString(),
		Step: StepInitial,
		Messages: []Message{{
			ID:        uuid.NewString(),
			Role:      RoleAssistant,
			Content:   greeting,
			Timestamp: s.now(),
		}},
		UpdatedAt: s.now(),
	}
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// SendMessage appends the user turn, merges extracted preferences, asks the
// provider for the assistant reply, and persists the session. Failures use
// the pipeline taxonomy so the caller can render them like generation errors.
func (s *Service) SendMessage(ctx context.Context, sessionID, content string) (*Session, error) {
	sess, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	sess.Messages = append(sess.Messages, Message{
		ID:        uuid.NewString(),
		Role:      RoleUser,
		Content:   content,
		Timestamp: s.now(),
	})
	sess.Preferences = s.extractor.Apply(content, sess.Preferences)
	if sess.Step != StepFinalizing {
		sess.Step = nextStep(sess.Preferences)
	}

	if s.provider == nil || !s.provider.Configured() {
		return nil, itinerary.ErrNotConfigured
	}
	reply, err := s.provider.Complete(ctx, assistantPersona, transcript(sess.Messages))
	if err != nil {
		if errors.Is(err, ai.ErrEmptyCompletion) {
			return nil, itinerary.ErrEmptyResponse
		}
		return nil, fmt.Errorf("%w: %v", itinerary.ErrTransport, err)
	}

	sess.Messages = append(sess.Messages, Message{
		ID:        uuid.NewString(),
		Role:      RoleAssistant,
		Content:   reply,
		Timestamp: s.now(),
	})
	sess.UpdatedAt = s.now()
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Preferences returns the preferences accumulated for a session.
func (s *Service) Preferences(ctx context.Context, sessionID string) (itinerary.TravelPreferences, error) {
	sess, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return itinerary.TravelPreferences{}, err
	}
	return sess.Preferences, nil
}

// MarkFinalized records that an itinerary was produced for this session.
func (s *Service) MarkFinalized(ctx context.Context, sessionID string) error {
	sess, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return err
	}
	sess.Step = StepFinalizing
	sess.UpdatedAt = s.now()
	return s.store.Save(ctx, sess)
}

// nextStep mirrors the collection flow: enough known preferences move the
// conversation from collecting to suggesting.
func nextStep(p itinerary.TravelPreferences) Step {
	known := 0
	if p.Destination != "" {
		known++
	}
	if p.Budget != "" {
		known++
	}
	if p.Travelers > 0 {
		known++
	}
	if p.DepartureDate != nil {
		known++
	}
	if len(p.Interests) > 0 {
		known++
	}
	switch {
	case known >= 3:
		return StepSuggesting
	case known > 0:
		return StepCollecting
	default:
		return StepInitial
	}
}

func transcript(msgs []Message) string {
	var b strings.Builder
	for _, m := range msgs {
		fmt.Fprintf(&b, "%s: %s\n", m.Role, m.Content)
	}
	return b.String()
}
