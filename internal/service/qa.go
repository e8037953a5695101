package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nithub/faq-agent/internal/domain"
	"github.com/nithub/faq-agent/internal/validation"
)

// Retriever returns knowledge-base snippets ranked by relevance to the
// query.
type Retriever interface {
	Retrieve(ctx context.Context, query string) ([]domain.Snippet, error)
}

// Generator produces the final answer text for a question.
type Generator interface {
	GenerateAnswer(ctx context.Context, question string, snippets []domain.Snippet, priorContext string, related bool) (string, error)
}

// ConversationStore persists completed exchanges.
type ConversationStore interface {
	Create(ctx context.Context, question, answer string, followUp *string, previousID *int64) (*domain.Conversation, error)
}

// QAService coordinates one full question-answer cycle: session resolution,
// affirmative-reply expansion, relatedness, retrieval, generation,
// follow-up synthesis, persistence and the session update.
type QAService struct {
	sessions      *SessionStore
	retriever     Retriever
	generator     Generator
	conversations ConversationStore
	context       *ContextService
	followups     *FollowupService
	extractor     *QuestionExtractor
}

func NewQAService(
	sessions *SessionStore,
	retriever Retriever,
	generator Generator,
	conversations ConversationStore,
	contextSvc *ContextService,
	followups *FollowupService,
	extractor *QuestionExtractor,
) *QAService {
	return &QAService{
		sessions:      sessions,
		retriever:     retriever,
		generator:     generator,
		conversations: conversations,
		context:       contextSvc,
		followups:     followups,
		extractor:     extractor,
	}
}

// Ask runs the whole cycle for one validated question. An unknown or
// expired session id is silently replaced by a fresh session. On any
// collaborator failure the session is left untouched so the client can
// retry with the same context.
func (s *QAService) Ask(ctx context.Context, question, sessionID string) (*domain.AskResult, error) {
	var sess domain.Session
	ok := false
	if sessionID != "" {
		sess, ok = s.sessions.Get(sessionID)
	}
	if !ok {
		id, err := s.sessions.Create()
		if err != nil {
			return nil, fmt.Errorf("create session: %w", err)
		}
		sess = domain.Session{ID: id}
	}

	// Resolve bare affirmations into the question they imply.
	effective := question
	related := false
	if validation.IsAffirmative(question) {
		switch {
		case sess.FollowUpQuestion != "":
			effective = s.extractor.Extract(sess.FollowUpQuestion)
			related = true
			slog.Info("affirmative reply resolved from follow-up",
				"session_id", sess.ID, "effective_question", effective)
		case sess.PreviousQuestion != "":
			effective = "Tell me more about " + sess.PreviousQuestion
			related = true
		}
	}

	if sess.HasPreviousTurn() && !related {
		related = s.context.IsRelated(sess.PreviousQuestion, sess.PreviousAnswer, effective)
	}

	// The previous turn always informs the prompt when one exists;
	// relatedness changes the instruction wording and the record link.
	priorContext := ""
	if sess.HasPreviousTurn() {
		priorContext = s.context.BuildContext(sess.PreviousQuestion, sess.PreviousAnswer, sess.FollowUpQuestion)
	}

	query := effective
	if related && sess.PreviousQuestion != "" {
		query = effective + " " + sess.PreviousQuestion
	}
	snippets, err := s.retriever.Retrieve(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRetrievalFailed, err)
	}

	answer, err := s.generator.GenerateAnswer(ctx, effective, snippets, priorContext, related)
	if err != nil {
		if errors.Is(err, domain.ErrGenerationFailed) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}

	followUp := s.followups.Generate(ctx, effective, answer)

	var previousID *int64
	if related {
		previousID = sess.PreviousConversationID
	}
	var followUpPtr *string
	if followUp != "" {
		followUpPtr = &followUp
	}
	conv, err := s.conversations.Create(ctx, question, answer, followUpPtr, previousID)
	if err != nil {
		return nil, fmt.Errorf("save conversation: %w", err)
	}

	s.sessions.Update(sess.ID, question, answer, conv.ID, followUp)

	return &domain.AskResult{
		Answer:           answer,
		FollowUpQuestion: followUpPtr,
		ConversationID:   conv.ID,
		SessionID:        sess.ID,
	}, nil
}
