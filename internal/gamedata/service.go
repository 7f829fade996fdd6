package gamedata

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-engine/internal/answer"
	"github.com/gokatarajesh/trivia-engine/internal/metrics"
	"github.com/gokatarajesh/trivia-engine/internal/question"
)

// ErrNotReady is returned by pool operations before Load succeeded. It is
// distinct from exhaustion, which is reported through the ok result.
var ErrNotReady = errors.New("game data not loaded")

// ErrEmptyCatalog is returned when Load receives no items at all.
var ErrEmptyCatalog = errors.New("catalog has no items")

const (
	defaultChampionThemes    = 4
	defaultChampionQuestions = 5
)

// Service is the single entry point for presentation code: one pool per game
// mode plus the answer validator.
type Service struct {
	validator *answer.Validator
	logger    zerolog.Logger
	seed      *uint64

	mu     sync.RWMutex
	pools  map[question.Mode]*question.Pool
	themes []question.Theme
	rng    *rand.Rand
}

// Option configures a Service.
type Option func(*Service)

// WithSeed makes every random choice of the service reproducible.
func WithSeed(seed uint64) Option {
	return func(s *Service) {
		s.seed = &seed
	}
}

// NewService constructs an unloaded service. Call Load before drawing.
func NewService(validator *answer.Validator, logger zerolog.Logger, opts ...Option) *Service {
	if validator == nil {
		validator = answer.NewValidator()
	}
	s := &Service{
		validator: validator,
		logger:    logger.With().Str("component", "gamedata").Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load builds a fresh pool for every mode from catalog. Any previous draw
// history is discarded.
func (s *Service) Load(catalog *question.Catalog) error {
	if catalog == nil || catalog.Empty() {
		return ErrEmptyCatalog
	}

	pools := make(map[question.Mode]*question.Pool, len(question.Modes))
	for i, mode := range question.Modes {
		var opts []question.PoolOption
		if s.seed != nil {
			opts = append(opts, question.WithRand(rand.New(rand.NewPCG(*s.seed, uint64(i+1)))))
		}
		pool, err := question.NewPool(mode, catalog.Items(mode), opts...)
		if err != nil {
			return fmt.Errorf("build %s pool: %w", mode, err)
		}
		pools[mode] = pool
	}

	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	if s.seed != nil {
		rng = rand.New(rand.NewPCG(*s.seed, 0))
	}

	s.mu.Lock()
	s.pools = pools
	s.themes = catalog.Themes()
	s.rng = rng
	s.mu.Unlock()
	return nil
}

// Ready reports whether Load has populated the pools.
func (s *Service) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pools != nil
}

// DrawNext draws an unused item of mode matching filter. ok is false when the
// mode is exhausted for that filter.
func (s *Service) DrawNext(mode question.Mode, filter question.Filter) (item question.Item, ok bool, err error) {
	pool, err := s.pool(mode)
	if err != nil {
		return question.Item{}, false, err
	}
	label := string(pool.Mode())
	item, ok = pool.Draw(filter)
	if !ok {
		metrics.Draws.WithLabelValues(label, metrics.DrawExhausted).Inc()
		s.logger.Debug().Str("mode", label).Msg("pool exhausted")
		return question.Item{}, false, nil
	}
	metrics.Draws.WithLabelValues(label, metrics.DrawServed).Inc()
	return item, true, nil
}

// ResetMode clears the draw history of one mode.
func (s *Service) ResetMode(mode question.Mode) error {
	pool, err := s.pool(mode)
	if err != nil {
		return err
	}
	pool.Reset()
	return nil
}

// ResetAll clears the draw history of every mode. It is a no-op before Load.
func (s *Service) ResetAll() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, pool := range s.pools {
		pool.Reset()
	}
}

// RemainingCount returns the number of unused items of mode matching filter.
func (s *Service) RemainingCount(mode question.Mode, filter question.Filter) (int, error) {
	pool, err := s.pool(mode)
	if err != nil {
		return 0, err
	}
	return pool.RemainingCount(filter), nil
}

// PoolSize returns the number of items loaded for mode.
func (s *Service) PoolSize(mode question.Mode) (int, error) {
	pool, err := s.pool(mode)
	if err != nil {
		return 0, err
	}
	return pool.Size(), nil
}

// Validate checks a free-text answer at the validator's default difficulty.
func (s *Service) Validate(userAnswer, correctAnswer string) bool {
	return s.ValidateWithDifficulty(userAnswer, correctAnswer, s.validator.Difficulty())
}

// ValidateWithDifficulty checks a free-text answer with a tolerance scaled by
// difficulty.
func (s *Service) ValidateWithDifficulty(userAnswer, correctAnswer string, difficulty int) bool {
	ok := s.validator.ValidateWithDifficulty(userAnswer, correctAnswer, difficulty)
	metrics.Validations.WithLabelValues(metrics.ValidationSingle, metrics.Outcome(ok)).Inc()
	return ok
}

// ValidateAgainstList returns the index of the first candidate matched, or -1.
func (s *Service) ValidateAgainstList(userAnswer string, candidates []string) int {
	idx := s.validator.ValidateAgainstList(userAnswer, candidates)
	metrics.Validations.WithLabelValues(metrics.ValidationList, metrics.Outcome(idx >= 0)).Inc()
	return idx
}

// Closest returns the nearest candidate and its edit distance.
func (s *Service) Closest(userAnswer string, candidates []string) (int, int) {
	return s.validator.Closest(userAnswer, candidates)
}

func (s *Service) pool(mode question.Mode) (*question.Pool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.pools == nil {
		return nil, ErrNotReady
	}
	pool, ok := s.pools[mode]
	if !ok {
		return nil, fmt.Errorf("%w: %q", question.ErrUnknownMode, mode)
	}
	return pool, nil
}
