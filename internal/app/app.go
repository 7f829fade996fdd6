package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-engine/internal/answer"
	"github.com/gokatarajesh/trivia-engine/internal/config"
	"github.com/gokatarajesh/trivia-engine/internal/db/repository"
	"github.com/gokatarajesh/trivia-engine/internal/gamedata"
	"github.com/gokatarajesh/trivia-engine/internal/highscore"
	"github.com/gokatarajesh/trivia-engine/internal/logging"
	"github.com/gokatarajesh/trivia-engine/internal/question/source"
	"github.com/gokatarajesh/trivia-engine/internal/server"
)

// Application aggregates shared infrastructure (catalog, Redis, HTTP server).
type Application struct {
	cfg    *config.App
	logger zerolog.Logger

	pool     *pgxpool.Pool
	redis    *redis.Client
	http     *http.Server
	sessions *gamedata.SessionManager

	bgCancels []context.CancelFunc
}

// New loads the question catalog and wires the HTTP API around it.
func New(ctx context.Context, cfg *config.App) (*Application, error) {
	logger := logging.New(cfg.Name, cfg.Env, cfg.LogLevel)
	logger.Info().Str("source", cfg.Data.Source).Msg("starting application bootstrap")

	var pool *pgxpool.Pool
	var loader source.Loader
	switch cfg.Data.Source {
	case config.SourcePostgres:
		var err error
		pool, err = pgxpool.New(ctx, cfg.Postgres.DSN())
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		loader = source.NewPostgresLoader(repository.NewItemRepository(repository.NewPgStore(pool)), logger)
	case config.SourceHTTP:
		loader = source.NewHTTPLoader(cfg.Data.BaseURL, &http.Client{Timeout: cfg.Data.HTTPTimeout}, logger)
	default:
		loader = source.NewFileLoader(os.DirFS(cfg.Data.Dir), logger)
	}

	catalog, err := loader.Load(ctx)
	if err != nil {
		closePool(pool)
		return nil, fmt.Errorf("load questions: %w", err)
	}

	validator := answer.NewValidator(
		answer.WithDefaultDifficulty(cfg.Validator.DefaultDifficulty),
		answer.WithNamePartMatching(cfg.Validator.NameParts),
	)

	sessions, err := gamedata.NewSessionManager(catalog, validator, logger, gamedata.SessionOptions{
		TTL:           cfg.Sessions.TTL,
		SweepInterval: cfg.Sessions.SweepInterval,
	})
	if err != nil {
		closePool(pool)
		return nil, fmt.Errorf("build sessions: %w", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
	highScores := highscore.NewService(redisClient, cfg.Redis.KeyPrefix, logger)

	apiServer := server.NewHTTPServer(cfg, logger, server.Deps{
		Sessions:   sessions,
		Validator:  validator,
		HighScores: highScores,
	})

	return &Application{
		cfg:       cfg,
		logger:    logger,
		pool:      pool,
		redis:     redisClient,
		http:      apiServer,
		sessions:  sessions,
		bgCancels: make([]context.CancelFunc, 0, 1),
	}, nil
}

// Run starts the HTTP server and waits for termination signals.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	a.startBackgroundWorkers(ctx)

	go func() {
		a.logger.Info().Str("addr", a.cfg.HTTPAddr).Msg("http server listening")
		if err := a.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		a.logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
		a.logger.Warn().Msg("context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
	defer cancel()

	if err := a.http.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("http shutdown error")
	}

	for _, cancel := range a.bgCancels {
		cancel()
	}

	closePool(a.pool)
	if err := a.redis.Close(); err != nil {
		a.logger.Error().Err(err).Msg("redis shutdown error")
	}

	a.logger.Info().Msg("shutdown complete")
	return nil
}

func (a *Application) startBackgroundWorkers(ctx context.Context) {
	bgCtx, cancel := context.WithCancel(ctx)
	a.bgCancels = append(a.bgCancels, cancel)
	go func() {
		if err := a.sessions.Run(bgCtx); err != nil && err != context.Canceled {
			a.logger.Warn().Err(err).Msg("session sweeper stopped")
		}
	}()
}

func closePool(pool *pgxpool.Pool) {
	if pool != nil {
		pool.Close()
	}
}
