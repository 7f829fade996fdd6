package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/gokatarajesh/trivia-engine/internal/gamedata"
	"github.com/gokatarajesh/trivia-engine/internal/logging"
	"github.com/gokatarajesh/trivia-engine/internal/question"
	httperrors "github.com/gokatarajesh/trivia-engine/pkg/http/errors"
)

const maxBodyBytes = 1 << 20

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// decodeBody reads a JSON body into dst. An empty body leaves dst untouched
// when optional is set.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any, optional bool) bool {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if optional && errors.Is(err, io.EOF) {
			return true
		}
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidPayload, "invalid JSON body: "+err.Error())
		return false
	}
	return true
}

// respondServiceError maps engine errors onto HTTP responses.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, question.ErrUnknownMode):
		httperrors.RespondNotFound(w, httperrors.ErrCodeUnknownMode, err.Error())
	case errors.Is(err, gamedata.ErrSessionNotFound):
		httperrors.RespondSessionNotFound(w)
	case errors.Is(err, gamedata.ErrNotReady):
		httperrors.RespondServiceUnavailable(w, httperrors.ErrCodeNotReady, "game data not loaded")
	default:
		logger := logging.FromContext(r.Context())
		logger.Error().Err(err).Msg("request failed")
		httperrors.RespondInternalError(w, "internal error")
	}
}

// sessionService resolves the {id} path value to the session's Service.
func (h *Handler) sessionService(w http.ResponseWriter, r *http.Request) (*gamedata.Service, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httperrors.RespondValidationError(w, httperrors.ErrCodeInvalidSession, "session id must be a UUID", "id")
		return nil, false
	}
	svc, err := h.sessions.Get(id)
	if err != nil {
		respondServiceError(w, r, err)
		return nil, false
	}
	return svc, true
}

func pathMode(w http.ResponseWriter, r *http.Request) (question.Mode, bool) {
	mode, err := question.ParseMode(r.PathValue("mode"))
	if err != nil {
		respondServiceError(w, r, err)
		return "", false
	}
	return mode, true
}
