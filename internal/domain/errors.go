package domain

import "errors"

var (
	ErrSessionNotFound      = errors.New("session not found or expired")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrEmptyQuestion        = errors.New("question cannot be empty")
	ErrQuestionTooLong      = errors.New("question is too long (max 1000 characters)")
	ErrSessionIDTooLong     = errors.New("session ID is too long")
	ErrInvalidPagination    = errors.New("invalid pagination parameters")
	ErrRetrievalFailed      = errors.New("knowledge retrieval failed")
	ErrGenerationFailed     = errors.New("answer generation failed")
)
