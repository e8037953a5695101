package service

import (
	"crypto/rand"
	"fmt"
	"sync"
	"time"

	"github.com/nithub/faq-agent/internal/domain"
)

const sessionIDAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// SessionStore holds the short-lived conversational state for every live
// session. It is the only shared mutable state in the request path: request
// handlers and the periodic sweeper all go through the single mutex.
//
// Reads never extend a session's lifetime; only Update refreshes
// last_activity, so a failed request cannot keep a session alive.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*domain.Session
	timeout  time.Duration
	idLen    int
	now      func() time.Time
}

func NewSessionStore(timeout time.Duration, idLen int) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*domain.Session),
		timeout:  timeout,
		idLen:    idLen,
		now:      time.Now,
	}
}

// expired reports whether a session is past its timeout. A session at
// exactly the boundary is still live; it expires strictly after.
func (s *SessionStore) expired(sess *domain.Session, now time.Time) bool {
	return now.Sub(sess.LastActivity) > s.timeout
}

// Create inserts a fresh session with no prior turn and returns its id.
// The id is collision-checked against currently live keys.
func (s *SessionStore) Create() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for attempt := 0; attempt < 10; attempt++ {
		id, err := randomSessionID(s.idLen)
		if err != nil {
			return "", fmt.Errorf("generate session id: %w", err)
		}
		if _, exists := s.sessions[id]; exists {
			continue
		}
		s.sessions[id] = &domain.Session{ID: id, LastActivity: s.now()}
		return id, nil
	}
	return "", fmt.Errorf("could not generate a unique session id")
}

// Get returns a snapshot of the session, or false if the id is unknown or
// the session has expired. Expired sessions are treated as absent even
// before the sweeper removes them.
func (s *SessionStore) Get(id string) (domain.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok || s.expired(sess, s.now()) {
		return domain.Session{}, false
	}
	return *sess, true
}

// Update overwrites the session's turn state and refreshes last_activity.
// If the sweeper removed the session while the request was in flight the
// entry is recreated, so a completed response is never lost to that race.
func (s *SessionStore) Update(id, question, answer string, conversationID int64, followUp string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		sess = &domain.Session{ID: id}
		s.sessions[id] = sess
	}
	sess.LastActivity = s.now()
	sess.PreviousQuestion = question
	sess.PreviousAnswer = answer
	sess.PreviousConversationID = &conversationID
	sess.FollowUpQuestion = followUp
}

// RemoveExpired deletes every session past its timeout and returns how many
// were removed. The timestamp is re-checked under the lock at deletion
// time, so a session updated mid-sweep survives.
func (s *SessionStore) RemoveExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, sess := range s.sessions {
		if s.expired(sess, now) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// TimeRemaining reports how long the session has until expiry.
func (s *SessionStore) TimeRemaining(sess domain.Session) time.Duration {
	remaining := s.timeout - s.now().Sub(sess.LastActivity)
	if remaining < 0 {
		return 0
	}
	return remaining
}

func randomSessionID(length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = sessionIDAlphabet[int(b)%len(sessionIDAlphabet)]
	}
	return string(buf), nil
}
