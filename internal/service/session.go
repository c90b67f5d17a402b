package service

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Autonomanetwork/arcadify-test/internal/pool"
	"github.com/Autonomanetwork/arcadify-test/internal/quote"
	"github.com/Autonomanetwork/arcadify-test/internal/token"
)

// DefaultSessionTTL is how long an untouched swap session survives before
// eviction.
const DefaultSessionTTL = 30 * time.Minute

// SessionService hands out swap sessions, each owning one quote.Orchestrator.
// A session tracks a single client's swap form across requests.
type SessionService struct {
	BaseService
	registry     token.Registry
	provider     pool.Provider
	quoteTimeout time.Duration
	ttl          time.Duration
	now          func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

type session struct {
	orch     *quote.Orchestrator
	lastSeen time.Time
}

// NewSessionService constructs a SessionService. Non-positive ttl falls back
// to DefaultSessionTTL.
func NewSessionService(logger *slog.Logger, registry token.Registry, provider pool.Provider, quoteTimeout, ttl time.Duration) *SessionService {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionService{
		BaseService:  BaseService{logger: logger},
		registry:     registry,
		provider:     provider,
		quoteTimeout: quoteTimeout,
		ttl:          ttl,
		now:          time.Now,
		sessions:     make(map[string]*session),
	}
}

// Create starts a new idle session and returns its id.
func (s *SessionService) Create() string {
	id := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictLocked()
	s.sessions[id] = &session{
		orch:     quote.New(s.logger, s.registry, s.provider, s.quoteTimeout),
		lastSeen: s.now(),
	}
	s.logger.Debug("swap session created", "session", id)
	return id
}

// Snapshot returns the session's current published quote state.
func (s *SessionService) Snapshot(id string) (quote.Snapshot, error) {
	orch, err := s.touch(id)
	if err != nil {
		return quote.Snapshot{}, err
	}
	return orch.Snapshot(), nil
}

// Update applies pair and amount input to the session's form.
func (s *SessionService) Update(id, fromID, toID, amount string) (quote.Snapshot, error) {
	orch, err := s.touch(id)
	if err != nil {
		return quote.Snapshot{}, err
	}
	orch.Update(fromID, toID, amount)
	return orch.Snapshot(), nil
}

// Flip exchanges the session's from/to selections and clears its amounts.
func (s *SessionService) Flip(id string) (quote.Snapshot, error) {
	orch, err := s.touch(id)
	if err != nil {
		return quote.Snapshot{}, err
	}
	orch.Flip()
	return orch.Snapshot(), nil
}

func (s *SessionService) touch(id string) (*quote.Orchestrator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictLocked()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	sess.lastSeen = s.now()
	return sess.orch, nil
}

func (s *SessionService) evictLocked() {
	cutoff := s.now().Add(-s.ttl)
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			s.logger.Debug("swap session evicted", "session", id)
		}
	}
}
