package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Maxito7/marea_backend/internal/domain"
)

type interactionRepository struct {
	db *sql.DB
}

func NewInteractionRepository(db *sql.DB) domain.InteractionRepository {
	return &interactionRepository{db: db}
}

func (r *interactionRepository) Save(ctx context.Context, interaction *domain.Interaction) error {
	// Generamos ID si no existe
	if interaction.ID == "" {
		interaction.ID = uuid.New().String()
	}

	query := `
		INSERT INTO faq_interaction
		(id, conversation_id, message, kind, reason, matched_question, score)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		interaction.ID,
		interaction.ConversationID,
		interaction.Message,
		interaction.Kind,
		interaction.Reason,
		interaction.MatchedQuestion,
		interaction.Score,
	).Scan(&interaction.CreatedAt)
	if err != nil {
		return fmt.Errorf("error saving interaction: %w", err)
	}
	return nil
}

func (r *interactionRepository) ListByConversation(ctx context.Context, conversationID string) ([]domain.Interaction, error) {
	query := `
		SELECT id, conversation_id, message, kind, reason, matched_question, score, created_at
		FROM faq_interaction
		WHERE conversation_id = $1
		ORDER BY created_at ASC
	`
	return r.list(ctx, query, conversationID)
}

func (r *interactionRepository) ListFallbacksSince(ctx context.Context, since time.Time) ([]domain.Interaction, error) {
	query := `
		SELECT id, conversation_id, message, kind, reason, matched_question, score, created_at
		FROM faq_interaction
		WHERE kind = 'fallback' AND created_at >= $1
		ORDER BY created_at ASC
	`
	return r.list(ctx, query, since)
}

func (r *interactionRepository) list(ctx context.Context, query string, args ...any) ([]domain.Interaction, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying interactions: %w", err)
	}
	defer rows.Close()

	var interactions []domain.Interaction
	for rows.Next() {
		var (
			i       domain.Interaction
			matched sql.NullString
		)
		if err := rows.Scan(
			&i.ID,
			&i.ConversationID,
			&i.Message,
			&i.Kind,
			&i.Reason,
			&matched,
			&i.Score,
			&i.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning interaction: %w", err)
		}
		if matched.Valid {
			i.MatchedQuestion = &matched.String
		}
		interactions = append(interactions, i)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating interactions: %w", err)
	}
	return interactions, nil
}
