package domain

import "time"

// Session is the ephemeral record of the most recent turn for one client.
// It lives only in memory and is keyed by a short random identifier; a
// session with no prior turn has all optional fields empty.
type Session struct {
	ID                     string
	LastActivity           time.Time
	PreviousQuestion       string
	PreviousAnswer         string
	PreviousConversationID *int64
	FollowUpQuestion       string
}

// HasPreviousTurn reports whether the session has recorded a completed
// question-answer cycle.
func (s *Session) HasPreviousTurn() bool {
	return s.PreviousQuestion != "" && s.PreviousAnswer != ""
}
