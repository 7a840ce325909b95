package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"sawa/internal/cache"
	"sawa/internal/flow"
	"sawa/internal/model"
	"sawa/internal/repository"
)

// ErrSessionNotFound is returned when a session id is unknown to the cache,
// the repository, and the caller's fallback snapshot.
var ErrSessionNotFound = errors.New("session not found")

// SessionService orchestrates the coaching dialogue: it owns loading and
// persisting session state around the pure flow engine. Callers must not
// issue concurrent answers for the same session id.
type SessionService struct {
	engine       *flow.Engine
	sessionRepo  repository.SessionRepo
	sessionCache cache.SessionCache
	broadcaster  Broadcaster
}

// NewSessionService creates a new session service.
func NewSessionService(engine *flow.Engine, sessionRepo repository.SessionRepo, sessionCache cache.SessionCache) *SessionService {
	return &SessionService{
		engine:       engine,
		sessionRepo:  sessionRepo,
		sessionCache: sessionCache,
	}
}

// SetBroadcaster sets the broadcaster for WebSocket events.
func (s *SessionService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Initialize creates a new session and returns it with its first question.
func (s *SessionService) Initialize(ctx context.Context) (*model.SessionState, model.NextQuestionInfo, error) {
	id := uuid.New().String()
	state := s.engine.InitializeSession(id)

	if err := s.persist(ctx, state); err != nil {
		return nil, model.NextQuestionInfo{}, fmt.Errorf("save session: %w", err)
	}

	next, err := s.engine.NextQuestion(state)
	if err != nil {
		return nil, model.NextQuestionInfo{}, err
	}
	return state, next, nil
}

// Answer applies one submitted answer to a session. The optional fallback is
// a client-echoed state snapshot used when the stores have forgotten the id;
// it is trusted only when its id matches the requested one.
func (s *SessionService) Answer(ctx context.Context, id string, facet model.Facet, answer string, fallback *model.SessionState) (*model.SessionState, model.FacetEvaluation, model.NextQuestionInfo, error) {
	state, err := s.loadState(ctx, id)
	if err != nil {
		return nil, model.FacetEvaluation{}, model.NextQuestionInfo{}, err
	}
	if state == nil && fallback != nil && fallback.ID == id {
		state = fallback
	}
	if state == nil {
		return nil, model.FacetEvaluation{}, model.NextQuestionInfo{}, ErrSessionNotFound
	}

	evaluation, question, err := s.engine.ApplyAnswer(state, facet, answer)
	if err != nil {
		return nil, model.FacetEvaluation{}, model.NextQuestionInfo{}, err
	}

	if err := s.persist(ctx, state); err != nil {
		return nil, model.FacetEvaluation{}, model.NextQuestionInfo{}, fmt.Errorf("save session: %w", err)
	}

	next, err := s.engine.NextQuestion(state)
	if err != nil {
		return nil, model.FacetEvaluation{}, model.NextQuestionInfo{}, err
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToSession(id, "evaluation_result", map[string]interface{}{
			"facet":      facet,
			"question":   question,
			"evaluation": evaluation,
			"next":       next,
		})
		if next.Done {
			s.broadcaster.BroadcastToSession(id, "session_done", map[string]string{
				"sessionId": id,
			})
		}
	}

	return state, evaluation, next, nil
}

// Export renders the prep sheet for a session.
func (s *SessionService) Export(ctx context.Context, id string) (string, error) {
	state, err := s.loadState(ctx, id)
	if err != nil {
		return "", err
	}
	if state == nil {
		return "", ErrSessionNotFound
	}
	return flow.BuildPrepSheet(state), nil
}

// Get returns the raw state of one session.
func (s *SessionService) Get(ctx context.Context, id string) (*model.SessionState, error) {
	state, err := s.loadState(ctx, id)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, ErrSessionNotFound
	}
	return state, nil
}

// List returns recently updated sessions, newest first.
func (s *SessionService) List(ctx context.Context, limit int64) ([]*model.SessionState, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.sessionRepo.List(ctx, limit)
}

// loadState reads through the cache to the repository. Cache failures are
// logged and ignored; the repository is authoritative.
func (s *SessionService) loadState(ctx context.Context, id string) (*model.SessionState, error) {
	if s.sessionCache != nil {
		state, err := s.sessionCache.Get(ctx, id)
		if err != nil {
			log.Printf("session cache read failed for %s: %v", id, err)
		} else if state != nil {
			return state, nil
		}
	}
	return s.sessionRepo.GetByID(ctx, id)
}

// persist writes the repository first, then refreshes the cache best-effort.
func (s *SessionService) persist(ctx context.Context, state *model.SessionState) error {
	if err := s.sessionRepo.Save(ctx, state); err != nil {
		return err
	}
	if s.sessionCache != nil {
		if err := s.sessionCache.Set(ctx, state); err != nil {
			log.Printf("session cache write failed for %s: %v", state.ID, err)
		}
	}
	return nil
}
