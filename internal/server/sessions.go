package server

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/gokatarajesh/trivia-engine/internal/question"
	httperrors "github.com/gokatarajesh/trivia-engine/pkg/http/errors"
)

type drawRequest struct {
	Difficulty *int   `json:"difficulty,omitempty"`
	Theme      string `json:"theme,omitempty"`
	// Round picks the survival tier; Level the millions ladder step.
	Round *int `json:"round,omitempty"`
	Level *int `json:"level,omitempty"`
}

type drawResponse struct {
	Item      question.Item `json:"item"`
	Remaining int           `json:"remaining"`
}

func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	id, _, err := h.sessions.Create()
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"session_id": id.String()})
}

func (h *Handler) deleteSession(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httperrors.RespondValidationError(w, httperrors.ErrCodeInvalidSession, "session id must be a UUID", "id")
		return
	}
	if !h.sessions.Delete(id) {
		httperrors.RespondSessionNotFound(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) resetSession(w http.ResponseWriter, r *http.Request) {
	svc, ok := h.sessionService(w, r)
	if !ok {
		return
	}
	svc.ResetAll()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) draw(w http.ResponseWriter, r *http.Request) {
	svc, ok := h.sessionService(w, r)
	if !ok {
		return
	}
	mode, ok := pathMode(w, r)
	if !ok {
		return
	}
	var req drawRequest
	if !decodeBody(w, r, &req, true) {
		return
	}

	var (
		item  question.Item
		found bool
		err   error
	)
	switch {
	case mode == question.ModeSurvival && req.Round != nil:
		item, found, err = svc.DrawSurvival(*req.Round)
	case mode == question.ModeMillions && req.Level != nil:
		item, found, err = svc.DrawMillions(*req.Level)
	default:
		item, found, err = svc.DrawNext(mode, req.filter())
	}
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	if !found {
		httperrors.RespondPoolExhausted(w, string(mode), "")
		return
	}

	remaining, err := svc.RemainingCount(mode, nil)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, drawResponse{Item: item, Remaining: remaining})
}

func (req drawRequest) filter() question.Filter {
	var filters []question.Filter
	if req.Difficulty != nil {
		filters = append(filters, question.ByDifficulty(*req.Difficulty))
	}
	if req.Theme != "" {
		filters = append(filters, question.ByTheme(req.Theme))
	}
	return question.All(filters...)
}

func (h *Handler) resetMode(w http.ResponseWriter, r *http.Request) {
	svc, ok := h.sessionService(w, r)
	if !ok {
		return
	}
	mode, ok := pathMode(w, r)
	if !ok {
		return
	}
	if err := svc.ResetMode(mode); err != nil {
		respondServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) remaining(w http.ResponseWriter, r *http.Request) {
	svc, ok := h.sessionService(w, r)
	if !ok {
		return
	}
	mode, ok := pathMode(w, r)
	if !ok {
		return
	}

	var req drawRequest
	q := r.URL.Query()
	if raw := q.Get("difficulty"); raw != "" {
		d, err := strconv.Atoi(raw)
		if err != nil {
			httperrors.RespondValidationError(w, httperrors.ErrCodeValidationFailed, "difficulty must be an integer", "difficulty")
			return
		}
		req.Difficulty = &d
	}
	req.Theme = q.Get("theme")

	remaining, err := svc.RemainingCount(mode, req.filter())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	size, err := svc.PoolSize(mode)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"mode": mode, "remaining": remaining, "total": size})
}

func (h *Handler) championThemes(w http.ResponseWriter, r *http.Request) {
	svc, ok := h.sessionService(w, r)
	if !ok {
		return
	}
	count, ok := queryCount(w, r)
	if !ok {
		return
	}
	// ?q= searches every theme; without it a random selection is dealt.
	var themes []question.Theme
	var err error
	if q := r.URL.Query(); q.Has("q") {
		themes, err = svc.SearchThemes(q.Get("q"))
		if count > 0 && len(themes) > count {
			themes = themes[:count]
		}
	} else {
		themes, err = svc.ChampionThemes(count)
	}
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"themes": themes})
}

func (h *Handler) championQuestions(w http.ResponseWriter, r *http.Request) {
	svc, ok := h.sessionService(w, r)
	if !ok {
		return
	}
	count, ok := queryCount(w, r)
	if !ok {
		return
	}
	items, err := svc.ChampionQuestions(r.PathValue("theme"), count)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	if len(items) == 0 {
		httperrors.RespondPoolExhausted(w, string(question.ModeChampion), r.PathValue("theme"))
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"questions": items})
}

// queryCount reads ?count=, zero when absent.
func queryCount(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("count")
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		httperrors.RespondValidationError(w, httperrors.ErrCodeValidationFailed, "count must be a positive integer", "count")
		return 0, false
	}
	return n, true
}
