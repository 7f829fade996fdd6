package server

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-engine/internal/answer"
	"github.com/gokatarajesh/trivia-engine/internal/config"
	"github.com/gokatarajesh/trivia-engine/internal/gamedata"
	"github.com/gokatarajesh/trivia-engine/internal/highscore"
	"github.com/gokatarajesh/trivia-engine/internal/logging"
	httperrors "github.com/gokatarajesh/trivia-engine/pkg/http/errors"
)

// Deps are the services the API exposes.
type Deps struct {
	Sessions   *gamedata.SessionManager
	Validator  *answer.Validator
	HighScores *highscore.Service
}

// Handler serves the trivia API.
type Handler struct {
	sessions   *gamedata.SessionManager
	checker    *gamedata.Service
	highScores *highscore.Service
	logger     zerolog.Logger
}

// NewHTTPServer wires every route onto a server bound to cfg.HTTPAddr.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, deps Deps) *http.Server {
	return &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           NewHandler(logger, deps).Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// NewHandler builds the API handler. Answer checks that are not tied to a
// session go through an unloaded Service, which only validates.
func NewHandler(logger zerolog.Logger, deps Deps) *Handler {
	return &Handler{
		sessions:   deps.Sessions,
		checker:    gamedata.NewService(deps.Validator, logger),
		highScores: deps.HighScores,
		logger:     logger.With().Str("component", "http").Logger(),
	}
}

// Routes registers the API on a fresh mux.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /v1/ping", h.ping)

	mux.HandleFunc("POST /v1/sessions", h.createSession)
	mux.HandleFunc("DELETE /v1/sessions/{id}", h.deleteSession)
	mux.HandleFunc("POST /v1/sessions/{id}/reset", h.resetSession)
	mux.HandleFunc("POST /v1/sessions/{id}/modes/{mode}/draw", h.draw)
	mux.HandleFunc("POST /v1/sessions/{id}/modes/{mode}/reset", h.resetMode)
	mux.HandleFunc("GET /v1/sessions/{id}/modes/{mode}/remaining", h.remaining)
	mux.HandleFunc("GET /v1/sessions/{id}/champion/themes", h.championThemes)
	mux.HandleFunc("POST /v1/sessions/{id}/champion/themes/{theme}/questions", h.championQuestions)

	mux.HandleFunc("POST /v1/validate", h.validate)
	mux.HandleFunc("POST /v1/validate/list", h.validateList)

	mux.HandleFunc("GET /v1/highscores/{mode}", h.getHighScore)
	mux.HandleFunc("PUT /v1/highscores/{mode}", h.submitHighScore)
	mux.HandleFunc("DELETE /v1/highscores/{mode}", h.resetHighScore)
	mux.HandleFunc("GET /v1/stats", h.getStats)
	mux.HandleFunc("POST /v1/stats", h.recordGame)
	mux.HandleFunc("DELETE /v1/stats", h.resetStats)

	return h.withLogger(mux)
}

func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := h.highScores.Ping(ctx); err != nil {
		logger := logging.FromContext(r.Context())
		logger.Error().Err(err).Msg("dependency ping failed")
		httperrors.RespondError(w, http.StatusBadGateway, httperrors.ErrCodeUpstreamError, "upstream error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"pong": true})
}

// withLogger attaches a request-scoped logger to every request.
func (h *Handler) withLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := h.logger.With().Str("method", r.Method).Str("path", r.URL.Path).Logger()
		next.ServeHTTP(w, r.WithContext(logging.IntoContext(r.Context(), logger)))
	})
}
