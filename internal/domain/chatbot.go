package domain

import (
	"context"
	"errors"
	"time"
)

// ErrConversationNotFound se devuelve cuando una conversación no tiene interacciones registradas
var ErrConversationNotFound = errors.New("conversation not found")

type ChatRequest struct {
	Message        string  `json:"message"`
	ConversationID *string `json:"conversationId,omitempty"`
}

type ChatResponse struct {
	Message          string         `json:"message"`
	Kind             MatchKind      `json:"kind"`
	Reason           FallbackReason `json:"reason,omitempty"`
	ConversationID   string         `json:"conversationId"`
	MatchedQuestion  *string        `json:"matchedQuestion,omitempty"`
	Score            float64        `json:"score"`
	SuggestedActions []string       `json:"suggestedActions,omitempty"`
}

// Interaction es un mensaje del usuario junto con el resultado que recibió
type Interaction struct {
	ID              string         `json:"id"`
	ConversationID  string         `json:"conversationId"`
	Message         string         `json:"message"`
	Kind            MatchKind      `json:"kind"`
	Reason          FallbackReason `json:"reason,omitempty"`
	MatchedQuestion *string        `json:"matchedQuestion,omitempty"`
	Score           float64        `json:"score"`
	CreatedAt       time.Time      `json:"createdAt"`
}

type InteractionRepository interface {
	Save(ctx context.Context, interaction *Interaction) error
	ListByConversation(ctx context.Context, conversationID string) ([]Interaction, error)
	ListFallbacksSince(ctx context.Context, since time.Time) ([]Interaction, error)
}
