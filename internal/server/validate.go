package server

import (
	"fmt"
	"net/http"

	"github.com/gokatarajesh/trivia-engine/internal/answer"
	httperrors "github.com/gokatarajesh/trivia-engine/pkg/http/errors"
)

// maxDifficulty bounds client-supplied difficulty. Anything at or above 10
// already yields the minimum tolerance.
const maxDifficulty = 1000

// Pointer fields tell a JSON null or a missing field apart from "".
type validateRequest struct {
	Answer     *string `json:"answer"`
	Correct    *string `json:"correct"`
	Difficulty *int    `json:"difficulty,omitempty"`
}

type validateResponse struct {
	Correct           bool   `json:"correct"`
	NormalizedAnswer  string `json:"normalized_answer"`
	NormalizedCorrect string `json:"normalized_correct"`
}

type validateListRequest struct {
	Answer     *string   `json:"answer"`
	Candidates []*string `json:"candidates"`
}

type closestMatch struct {
	Index     int    `json:"index"`
	Candidate string `json:"candidate"`
	Distance  int    `json:"distance"`
}

type validateListResponse struct {
	Index   int           `json:"index"`
	Match   string        `json:"match,omitempty"`
	Closest *closestMatch `json:"closest,omitempty"`
}

func (h *Handler) validate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if !decodeBody(w, r, &req, false) {
		return
	}
	if req.Answer == nil {
		httperrors.RespondValidationError(w, httperrors.ErrCodeMissingField, "answer must be a string", "answer")
		return
	}
	if req.Correct == nil {
		httperrors.RespondValidationError(w, httperrors.ErrCodeMissingField, "correct must be a string", "correct")
		return
	}

	var ok bool
	if req.Difficulty != nil {
		d := *req.Difficulty
		if d < -maxDifficulty || d > maxDifficulty {
			httperrors.RespondValidationError(w, httperrors.ErrCodeValidationFailed,
				fmt.Sprintf("difficulty must be within -%d..%d", maxDifficulty, maxDifficulty), "difficulty")
			return
		}
		ok = h.checker.ValidateWithDifficulty(*req.Answer, *req.Correct, d)
	} else {
		ok = h.checker.Validate(*req.Answer, *req.Correct)
	}
	respondJSON(w, http.StatusOK, validateResponse{
		Correct:           ok,
		NormalizedAnswer:  answer.Normalize(*req.Answer),
		NormalizedCorrect: answer.Normalize(*req.Correct),
	})
}

func (h *Handler) validateList(w http.ResponseWriter, r *http.Request) {
	var req validateListRequest
	if !decodeBody(w, r, &req, false) {
		return
	}
	if req.Answer == nil {
		httperrors.RespondValidationError(w, httperrors.ErrCodeMissingField, "answer must be a string", "answer")
		return
	}
	candidates := make([]string, len(req.Candidates))
	for i, c := range req.Candidates {
		if c == nil {
			httperrors.RespondValidationError(w, httperrors.ErrCodeValidationFailed,
				fmt.Sprintf("candidates[%d] must be a string", i), "candidates")
			return
		}
		candidates[i] = *c
	}

	resp := validateListResponse{Index: h.checker.ValidateAgainstList(*req.Answer, candidates)}
	if resp.Index >= 0 {
		resp.Match = candidates[resp.Index]
	}
	if idx, d := h.checker.Closest(*req.Answer, candidates); idx >= 0 {
		resp.Closest = &closestMatch{Index: idx, Candidate: candidates[idx], Distance: d}
	}
	respondJSON(w, http.StatusOK, resp)
}
