package handler

import (
	"net/http"
	"time"

	"github.com/nithub/faq-agent/internal/domain"
)

type sessionResponse struct {
	SessionID               string    `json:"session_id"`
	LastActivity            time.Time `json:"last_activity"`
	TimeRemainingSeconds    int64     `json:"time_remaining_seconds"`
	HasPreviousConversation bool      `json:"has_previous_conversation"`
	FollowUpQuestion        *string   `json:"follow_up_question"`
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.sessions.Get(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, domain.ErrSessionNotFound.Error())
		return
	}

	var followUp *string
	if sess.FollowUpQuestion != "" {
		followUp = &sess.FollowUpQuestion
	}

	writeJSON(w, http.StatusOK, sessionResponse{
		SessionID:               sess.ID,
		LastActivity:            sess.LastActivity,
		TimeRemainingSeconds:    int64(h.sessions.TimeRemaining(sess).Seconds()),
		HasPreviousConversation: sess.HasPreviousTurn(),
		FollowUpQuestion:        followUp,
	})
}
