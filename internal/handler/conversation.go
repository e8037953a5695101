package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/nithub/faq-agent/internal/config"
	"github.com/nithub/faq-agent/internal/domain"
	"github.com/nithub/faq-agent/internal/validation"
)

type listConversationsResponse struct {
	Conversations []domain.Conversation `json:"conversations"`
	Total         int64                 `json:"total"`
	Limit         int                   `json:"limit"`
	Offset        int                   `json:"offset"`
}

func (h *Handler) ListConversations(w http.ResponseWriter, r *http.Request) {
	limit := config.DefaultPageLimit
	offset := 0

	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = n
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "offset must be an integer")
			return
		}
		offset = n
	}
	if err := validation.Pagination(limit, offset); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	conversations, total, err := h.conversations.List(r.Context(), limit, offset)
	if err != nil {
		slog.Error("list conversations", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if conversations == nil {
		conversations = []domain.Conversation{}
	}

	writeJSON(w, http.StatusOK, listConversationsResponse{
		Conversations: conversations,
		Total:         total,
		Limit:         limit,
		Offset:        offset,
	})
}

func (h *Handler) GetConversation(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		writeError(w, http.StatusBadRequest, "conversation id must be a positive integer")
		return
	}

	conv, err := h.conversations.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrConversationNotFound) {
			writeError(w, http.StatusNotFound, "conversation not found")
			return
		}
		slog.Error("get conversation", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, conv)
}
