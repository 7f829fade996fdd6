// Package highscore keeps per-mode personal bests and lifetime game counters
// in Redis.
package highscore

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-engine/internal/question"
)

const statsKey = "game_stats"

// Hash fields of the stats key.
const (
	fieldGames     = "games_played"
	fieldScore     = "total_score"
	fieldQuestions = "questions_answered"
	fieldCorrect   = "correct_answers"
)

// submitScript stores ARGV[1] only when it beats the current value, so
// concurrent submits always leave the maximum behind.
var submitScript = redis.NewScript(`
local current = tonumber(redis.call('GET', KEYS[1]) or '0')
local score = tonumber(ARGV[1])
if score > current then
  redis.call('SET', KEYS[1], ARGV[1])
  return 1
end
return 0
`)

// Stats are the lifetime counters across every game played.
type Stats struct {
	GamesPlayed       int64 `json:"total_games_played"`
	TotalScore        int64 `json:"total_score"`
	QuestionsAnswered int64 `json:"total_questions_answered"`
	CorrectAnswers    int64 `json:"correct_answers"`
}

// Service reads and writes high scores.
type Service struct {
	redis  *redis.Client
	prefix string
	logger zerolog.Logger
}

// NewService constructs a high-score service. An empty prefix stores keys
// as "highscore:<mode>".
func NewService(client *redis.Client, prefix string, logger zerolog.Logger) *Service {
	if prefix == "" {
		prefix = "highscore"
	}
	return &Service{
		redis:  client,
		prefix: prefix,
		logger: logger.With().Str("component", "highscore").Logger(),
	}
}

// Get returns the best score of mode, zero when none was recorded.
func (s *Service) Get(ctx context.Context, mode question.Mode) (int64, error) {
	if !mode.Valid() {
		return 0, fmt.Errorf("%w: %q", question.ErrUnknownMode, mode)
	}
	score, err := s.redis.Get(ctx, s.key(mode)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get high score %s: %w", mode, err)
	}
	return score, nil
}

// Submit records score when it beats the stored best and reports whether it
// did.
func (s *Service) Submit(ctx context.Context, mode question.Mode, score int64) (bool, error) {
	if !mode.Valid() {
		return false, fmt.Errorf("%w: %q", question.ErrUnknownMode, mode)
	}
	stored, err := submitScript.Run(ctx, s.redis, []string{s.key(mode)}, score).Int()
	if err != nil {
		return false, fmt.Errorf("submit high score %s: %w", mode, err)
	}
	if stored == 1 {
		s.logger.Info().Str("mode", string(mode)).Int64("score", score).Msg("new high score")
	}
	return stored == 1, nil
}

// Reset forgets the best score of mode.
func (s *Service) Reset(ctx context.Context, mode question.Mode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %q", question.ErrUnknownMode, mode)
	}
	if err := s.redis.Del(ctx, s.key(mode)).Err(); err != nil {
		return fmt.Errorf("reset high score %s: %w", mode, err)
	}
	return nil
}

// Stats returns the lifetime counters.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	data, err := s.redis.HGetAll(ctx, s.statsKey()).Result()
	if err != nil {
		return Stats{}, fmt.Errorf("read stats: %w", err)
	}
	return Stats{
		GamesPlayed:       parseInt(data[fieldGames]),
		TotalScore:        parseInt(data[fieldScore]),
		QuestionsAnswered: parseInt(data[fieldQuestions]),
		CorrectAnswers:    parseInt(data[fieldCorrect]),
	}, nil
}

// RecordGame adds one finished game to the counters. correct marks a game
// whose final answer was right.
func (s *Service) RecordGame(ctx context.Context, correct bool, score, questions int) error {
	key := s.statsKey()
	pipe := s.redis.TxPipeline()
	pipe.HIncrBy(ctx, key, fieldGames, 1)
	pipe.HIncrBy(ctx, key, fieldScore, int64(score))
	pipe.HIncrBy(ctx, key, fieldQuestions, int64(questions))
	pipe.HIncrBy(ctx, key, fieldCorrect, boolToInt(correct))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("record game: %w", err)
	}
	return nil
}

// ResetStats zeroes the lifetime counters.
func (s *Service) ResetStats(ctx context.Context) error {
	if err := s.redis.Del(ctx, s.statsKey()).Err(); err != nil {
		return fmt.Errorf("reset stats: %w", err)
	}
	return nil
}

// Ping checks the Redis connection.
func (s *Service) Ping(ctx context.Context) error {
	return s.redis.Ping(ctx).Err()
}

func (s *Service) key(mode question.Mode) string {
	return fmt.Sprintf("%s:%s", s.prefix, mode)
}

func (s *Service) statsKey() string {
	return fmt.Sprintf("%s:%s", s.prefix, statsKey)
}

func boolToInt(v bool) int64 {
	if v {
		return 1
	}
	return 0
}

func parseInt(val string) int64 {
	if val == "" {
		return 0
	}
	i, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0
	}
	return i
}
