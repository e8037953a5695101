package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nithub/faq-agent/internal/domain"
)

type stubAsker struct {
	result *domain.AskResult
	err    error
}

func (a *stubAsker) Ask(ctx context.Context, question, sessionID string) (*domain.AskResult, error) {
	return a.result, a.err
}

type stubSessions struct {
	session domain.Session
	found   bool
}

func (s *stubSessions) Get(id string) (domain.Session, bool) {
	return s.session, s.found
}

func (s *stubSessions) TimeRemaining(sess domain.Session) time.Duration {
	return 10 * time.Minute
}

type stubConversations struct {
	conv  *domain.Conversation
	list  []domain.Conversation
	total int64
	err   error
}

func (c *stubConversations) GetByID(ctx context.Context, id int64) (*domain.Conversation, error) {
	return c.conv, c.err
}

func (c *stubConversations) List(ctx context.Context, limit, offset int) ([]domain.Conversation, int64, error) {
	return c.list, c.total, c.err
}

func newTestMux(asker Asker, sessions SessionReader, conversations ConversationReader) *http.ServeMux {
	mux := http.NewServeMux()
	New(asker, sessions, conversations).Register(mux)
	return mux
}

func TestAskHandler(t *testing.T) {
	followUp := "Would you like to know more about Nithub?"
	asker := &stubAsker{result: &domain.AskResult{
		Answer:           "We are an innovation hub.",
		FollowUpQuestion: &followUp,
		ConversationID:   7,
		SessionID:        "abcd1234",
	}}
	mux := newTestMux(asker, &stubSessions{}, &stubConversations{})

	req := httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader(`{"question":"What is Nithub?"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp askResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "We are an innovation hub.", resp.Answer)
	assert.Equal(t, int64(7), resp.ConversationID)
	assert.Equal(t, "abcd1234", resp.SessionID)
	require.NotNil(t, resp.FollowUpQuestion)
	assert.Equal(t, followUp, *resp.FollowUpQuestion)
}

func TestAskHandlerValidation(t *testing.T) {
	mux := newTestMux(&stubAsker{}, &stubSessions{}, &stubConversations{})

	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{"question":`},
		{"empty question", `{"question":"   "}`},
		{"question too long", `{"question":"` + strings.Repeat("a", 1001) + `"}`},
		{"session id too long", `{"question":"hi there","session_id":"` + strings.Repeat("x", 51) + `"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestAskHandlerUpstreamFailure(t *testing.T) {
	asker := &stubAsker{err: domain.ErrRetrievalFailed}
	mux := newTestMux(asker, &stubSessions{}, &stubConversations{})

	req := httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader(`{"question":"What is Nithub?"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestListConversationsHandler(t *testing.T) {
	conversations := &stubConversations{
		list:  []domain.Conversation{{ID: 1, Question: "q", Answer: "a"}},
		total: 12,
	}
	mux := newTestMux(&stubAsker{}, &stubSessions{}, conversations)

	req := httptest.NewRequest(http.MethodGet, "/conversations?limit=5&offset=10", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp listConversationsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(12), resp.Total)
	assert.Equal(t, 5, resp.Limit)
	assert.Equal(t, 10, resp.Offset)
	require.Len(t, resp.Conversations, 1)
}

func TestListConversationsPagination(t *testing.T) {
	mux := newTestMux(&stubAsker{}, &stubSessions{}, &stubConversations{})

	for _, query := range []string{"?limit=0", "?limit=101", "?offset=-1", "?limit=abc"} {
		req := httptest.NewRequest(http.MethodGet, "/conversations"+query, nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, query)
	}
}

func TestGetConversationHandler(t *testing.T) {
	conversations := &stubConversations{conv: &domain.Conversation{ID: 3, Question: "q", Answer: "a"}}
	mux := newTestMux(&stubAsker{}, &stubSessions{}, conversations)

	req := httptest.NewRequest(http.MethodGet, "/conversations/3", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var conv domain.Conversation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &conv))
	assert.Equal(t, int64(3), conv.ID)
}

func TestGetConversationNotFound(t *testing.T) {
	conversations := &stubConversations{err: domain.ErrConversationNotFound}
	mux := newTestMux(&stubAsker{}, &stubSessions{}, conversations)

	req := httptest.NewRequest(http.MethodGet, "/conversations/99", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetConversationBadID(t *testing.T) {
	mux := newTestMux(&stubAsker{}, &stubSessions{}, &stubConversations{})

	req := httptest.NewRequest(http.MethodGet, "/conversations/zero", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetSessionHandler(t *testing.T) {
	sessions := &stubSessions{
		session: domain.Session{
			ID:               "abcd1234",
			LastActivity:     time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC),
			PreviousQuestion: "What is Nithub?",
			PreviousAnswer:   "A hub.",
			FollowUpQuestion: "Would you like to know more?",
		},
		found: true,
	}
	mux := newTestMux(&stubAsker{}, sessions, &stubConversations{})

	req := httptest.NewRequest(http.MethodGet, "/session/abcd1234", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp sessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "abcd1234", resp.SessionID)
	assert.Equal(t, int64(600), resp.TimeRemainingSeconds)
	assert.True(t, resp.HasPreviousConversation)
	require.NotNil(t, resp.FollowUpQuestion)
	assert.Equal(t, "Would you like to know more?", *resp.FollowUpQuestion)
}

func TestGetSessionNotFound(t *testing.T) {
	mux := newTestMux(&stubAsker{}, &stubSessions{found: false}, &stubConversations{})

	req := httptest.NewRequest(http.MethodGet, "/session/missing1", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthHandler(t *testing.T) {
	mux := newTestMux(&stubAsker{}, &stubSessions{}, &stubConversations{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Status)
	assert.Equal(t, "00", resp.Code)
}
