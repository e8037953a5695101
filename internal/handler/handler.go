package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/nithub/faq-agent/internal/domain"
)

// Asker answers one question within an optional session.
type Asker interface {
	Ask(ctx context.Context, question, sessionID string) (*domain.AskResult, error)
}

// SessionReader exposes session state for the inspection endpoint.
type SessionReader interface {
	Get(id string) (domain.Session, bool)
	TimeRemaining(sess domain.Session) time.Duration
}

// ConversationReader reads persisted conversation history.
type ConversationReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Conversation, error)
	List(ctx context.Context, limit, offset int) ([]domain.Conversation, int64, error)
}

// Handler serves the HTTP API.
type Handler struct {
	qa            Asker
	sessions      SessionReader
	conversations ConversationReader
}

func New(qa Asker, sessions SessionReader, conversations ConversationReader) *Handler {
	return &Handler{
		qa:            qa,
		sessions:      sessions,
		conversations: conversations,
	}
}

// Register mounts all routes on the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /ask", h.Ask)
	mux.HandleFunc("GET /conversations", h.ListConversations)
	mux.HandleFunc("GET /conversations/{id}", h.GetConversation)
	mux.HandleFunc("GET /session/{id}", h.GetSession)
	mux.HandleFunc("GET /{$}", h.Health)
}
