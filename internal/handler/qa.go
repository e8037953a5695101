package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/nithub/faq-agent/internal/domain"
	"github.com/nithub/faq-agent/internal/validation"
)

type askRequest struct {
	Question  string `json:"question"`
	SessionID string `json:"session_id"`
}

type askResponse struct {
	Answer           string  `json:"answer"`
	FollowUpQuestion *string `json:"follow_up_question"`
	ConversationID   int64   `json:"conversation_id"`
	SessionID        string  `json:"session_id"`
}

func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	question, err := validation.Question(req.Question)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	sessionID, err := validation.SessionID(req.SessionID)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.qa.Ask(r.Context(), question, sessionID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRetrievalFailed), errors.Is(err, domain.ErrGenerationFailed):
			slog.Error("upstream failure", "error", err)
			writeError(w, http.StatusBadGateway, "the answering service is temporarily unavailable")
		default:
			slog.Error("ask failed", "error", err)
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, askResponse{
		Answer:           result.Answer,
		FollowUpQuestion: result.FollowUpQuestion,
		ConversationID:   result.ConversationID,
		SessionID:        result.SessionID,
	})
}
