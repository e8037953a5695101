package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nithub/faq-agent/internal/domain"
)

type ConversationRepository struct {
	db *pgxpool.Pool
}

func NewConversationRepository(db *pgxpool.Pool) *ConversationRepository {
	return &ConversationRepository{db: db}
}

func (r *ConversationRepository) Create(ctx context.Context, question, answer string, followUp *string, previousID *int64) (*domain.Conversation, error) {
	conv := &domain.Conversation{
		Question:               question,
		Answer:                 answer,
		FollowUpQuestion:       followUp,
		PreviousConversationID: previousID,
	}

	err := r.db.QueryRow(ctx, `
		INSERT INTO conversations (question, answer, follow_up_question, previous_conversation_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		question, answer, followUp, previousID,
	).Scan(&conv.ID, &conv.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert conversation: %w", err)
	}

	return conv, nil
}

func (r *ConversationRepository) GetByID(ctx context.Context, id int64) (*domain.Conversation, error) {
	conv := &domain.Conversation{}
	err := r.db.QueryRow(ctx, `
		SELECT id, question, answer, follow_up_question, previous_conversation_id, created_at
		FROM conversations
		WHERE id = $1`,
		id,
	).Scan(&conv.ID, &conv.Question, &conv.Answer, &conv.FollowUpQuestion, &conv.PreviousConversationID, &conv.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrConversationNotFound
		}
		return nil, fmt.Errorf("get conversation: %w", err)
	}
	return conv, nil
}

// List returns conversations ordered newest first, plus the total count.
func (r *ConversationRepository) List(ctx context.Context, limit, offset int) ([]domain.Conversation, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM conversations`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count conversations: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, question, answer, follow_up_question, previous_conversation_id, created_at
		FROM conversations
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list conversations: %w", err)
	}
	defer rows.Close()

	conversations := []domain.Conversation{}
	for rows.Next() {
		var conv domain.Conversation
		if err := rows.Scan(&conv.ID, &conv.Question, &conv.Answer, &conv.FollowUpQuestion, &conv.PreviousConversationID, &conv.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan conversation: %w", err)
		}
		conversations = append(conversations, conv)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate conversations: %w", err)
	}

	return conversations, total, nil
}
