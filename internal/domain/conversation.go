package domain

import "time"

// Conversation is one persisted question/answer exchange. Records form
// linear chains through PreviousConversationID, set only when a turn
// continued the topic of its predecessor.
type Conversation struct {
	ID                     int64      `json:"id"`
	Question               string     `json:"question"`
	Answer                 string     `json:"answer"`
	FollowUpQuestion       *string    `json:"follow_up_question"`
	PreviousConversationID *int64     `json:"previous_conversation_id"`
	CreatedAt              time.Time  `json:"created_at"`
}

// Snippet is one ranked knowledge-base entry returned by retrieval.
type Snippet struct {
	Question string
	Answer   string
	Score    float64
}

// AskResult is the outcome of one full question-answer cycle.
type AskResult struct {
	Answer           string
	FollowUpQuestion *string
	ConversationID   int64
	SessionID        string
}
