package server

import (
	"net/http"

	"github.com/gokatarajesh/trivia-engine/internal/logging"
	httperrors "github.com/gokatarajesh/trivia-engine/pkg/http/errors"
)

type submitScoreRequest struct {
	Score *int64 `json:"score"`
}

type recordGameRequest struct {
	Correct           bool `json:"correct"`
	Score             int  `json:"score"`
	QuestionsAnswered int  `json:"questions_answered"`
}

func (h *Handler) getHighScore(w http.ResponseWriter, r *http.Request) {
	mode, ok := pathMode(w, r)
	if !ok {
		return
	}
	best, err := h.highScores.Get(r.Context(), mode)
	if err != nil {
		h.highScoreError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"mode": mode, "high_score": best})
}

func (h *Handler) submitHighScore(w http.ResponseWriter, r *http.Request) {
	mode, ok := pathMode(w, r)
	if !ok {
		return
	}
	var req submitScoreRequest
	if !decodeBody(w, r, &req, false) {
		return
	}
	if req.Score == nil {
		httperrors.RespondValidationError(w, httperrors.ErrCodeMissingField, "score is required", "score")
		return
	}

	stored, err := h.highScores.Submit(r.Context(), mode, *req.Score)
	if err != nil {
		h.highScoreError(w, r, err)
		return
	}
	best, err := h.highScores.Get(r.Context(), mode)
	if err != nil {
		h.highScoreError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"mode": mode, "high_score": best, "new_record": stored})
}

func (h *Handler) resetHighScore(w http.ResponseWriter, r *http.Request) {
	mode, ok := pathMode(w, r)
	if !ok {
		return
	}
	if err := h.highScores.Reset(r.Context(), mode); err != nil {
		h.highScoreError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.highScores.Stats(r.Context())
	if err != nil {
		h.statsError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

func (h *Handler) recordGame(w http.ResponseWriter, r *http.Request) {
	var req recordGameRequest
	if !decodeBody(w, r, &req, false) {
		return
	}
	if req.Score < 0 || req.QuestionsAnswered < 0 {
		httperrors.RespondValidationError(w, httperrors.ErrCodeValidationFailed, "score and questions_answered must not be negative", "score")
		return
	}
	if err := h.highScores.RecordGame(r.Context(), req.Correct, req.Score, req.QuestionsAnswered); err != nil {
		h.statsError(w, r, err)
		return
	}
	stats, err := h.highScores.Stats(r.Context())
	if err != nil {
		h.statsError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

func (h *Handler) resetStats(w http.ResponseWriter, r *http.Request) {
	if err := h.highScores.ResetStats(r.Context()); err != nil {
		h.statsError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) highScoreError(w http.ResponseWriter, r *http.Request, err error) {
	logger := logging.FromContext(r.Context())
	logger.Error().Err(err).Msg("high score store failed")
	httperrors.RespondError(w, http.StatusBadGateway, httperrors.ErrCodeHighScoreFailed, "high score store unavailable")
}

func (h *Handler) statsError(w http.ResponseWriter, r *http.Request, err error) {
	logger := logging.FromContext(r.Context())
	logger.Error().Err(err).Msg("stats store failed")
	httperrors.RespondError(w, http.StatusBadGateway, httperrors.ErrCodeStatsFailed, "stats store unavailable")
}
