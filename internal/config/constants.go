package config

import "time"

const (
	// Session lifecycle
	SessionTimeout       = 15 * time.Minute
	SessionSweepInterval = 60 * time.Second
	SessionIDLength      = 8

	// Input limits
	MaxQuestionLen  = 1000
	MaxSessionIDLen = 50

	// Pagination
	DefaultPageLimit = 50
	MaxPageLimit     = 100

	// Retrieval
	RetrieveTopK     = 5
	EmbedConcurrency = 4

	// Answer post-processing
	AnswerWordLimit = 300

	// LLM request timeout
	RequestTimeout = 90 * time.Second

	// Relatedness keyword-overlap threshold
	RelatedOverlapThreshold = 0.25

	// HTTP server shutdown grace period
	ShutdownTimeout = 10 * time.Second
)
