package gamedata

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-engine/internal/answer"
	"github.com/gokatarajesh/trivia-engine/internal/metrics"
	"github.com/gokatarajesh/trivia-engine/internal/question"
)

// ErrSessionNotFound is returned for unknown or expired session ids.
var ErrSessionNotFound = errors.New("session not found")

// SessionOptions configures session lifetime.
type SessionOptions struct {
	TTL           time.Duration
	SweepInterval time.Duration
	Seed          *uint64
}

type session struct {
	svc      *Service
	lastSeen time.Time
}

// SessionManager gives every player an isolated Service over the shared
// catalog, so draw history of one game never leaks into another.
type SessionManager struct {
	catalog   *question.Catalog
	validator *answer.Validator
	logger    zerolog.Logger
	ttl       time.Duration
	interval  time.Duration
	seed      *uint64
	now       func() time.Time

	mu       sync.Mutex
	sessions map[uuid.UUID]*session
}

// NewSessionManager constructs a session manager. The catalog must be loaded.
func NewSessionManager(catalog *question.Catalog, validator *answer.Validator, logger zerolog.Logger, opts SessionOptions) (*SessionManager, error) {
	if catalog == nil || catalog.Empty() {
		return nil, ErrEmptyCatalog
	}
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	interval := opts.SweepInterval
	if interval <= 0 {
		interval = time.Minute
	}
	return &SessionManager{
		catalog:   catalog,
		validator: validator,
		logger:    logger.With().Str("component", "sessions").Logger(),
		ttl:       ttl,
		interval:  interval,
		seed:      opts.Seed,
		now:       time.Now,
		sessions:  make(map[uuid.UUID]*session),
	}, nil
}

// Create starts a new session with every pool fresh.
func (m *SessionManager) Create() (uuid.UUID, *Service, error) {
	var opts []Option
	if m.seed != nil {
		opts = append(opts, WithSeed(*m.seed))
	}
	svc := NewService(m.validator, m.logger, opts...)
	if err := svc.Load(m.catalog); err != nil {
		return uuid.Nil, nil, err
	}

	id := uuid.New()
	m.mu.Lock()
	m.sessions[id] = &session{svc: svc, lastSeen: m.now()}
	count := len(m.sessions)
	m.mu.Unlock()

	metrics.ActiveSessions.Set(float64(count))
	m.logger.Debug().Str("session_id", id.String()).Msg("session created")
	return id, svc, nil
}

// Get returns the session's service and refreshes its idle timer.
func (m *SessionManager) Get(id uuid.UUID) (*Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	sess.lastSeen = m.now()
	return sess.svc, nil
}

// Delete ends a session. It reports whether the session existed.
func (m *SessionManager) Delete(id uuid.UUID) bool {
	m.mu.Lock()
	_, ok := m.sessions[id]
	delete(m.sessions, id)
	count := len(m.sessions)
	m.mu.Unlock()

	metrics.ActiveSessions.Set(float64(count))
	return ok
}

// Len returns the number of live sessions.
func (m *SessionManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep removes sessions idle for longer than the TTL and returns how many
// were evicted.
func (m *SessionManager) Sweep() int {
	cutoff := m.now().Add(-m.ttl)

	m.mu.Lock()
	evicted := 0
	for id, sess := range m.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(m.sessions, id)
			evicted++
		}
	}
	count := len(m.sessions)
	m.mu.Unlock()

	metrics.ActiveSessions.Set(float64(count))
	return evicted
}

// Run sweeps idle sessions until ctx is canceled.
func (m *SessionManager) Run(ctx context.Context) error {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if n := m.Sweep(); n > 0 {
				m.logger.Info().Int("evicted", n).Msg("idle sessions evicted")
			}
		}
	}
}
