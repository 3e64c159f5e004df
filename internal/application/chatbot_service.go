package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Maxito7/marea_backend/internal/domain"
	"github.com/Maxito7/marea_backend/internal/faq"
	"github.com/Maxito7/marea_backend/internal/logger"
)

var (
	ErrEmptyMessage          = errors.New("message is required")
	ErrInvalidConversationID = errors.New("invalid conversation id")
)

// FaqResponder es el buscador de preguntas frecuentes que usa el chat
type FaqResponder interface {
	ClassifyAndAnswer(text string) domain.MatchResult
	Entries() []domain.FaqEntry
}

// ResultObserver recibe cada resultado para métricas
type ResultObserver interface {
	ObserveResult(res domain.MatchResult)
}

type ChatbotService struct {
	responder FaqResponder
	repo      domain.InteractionRepository
	limiter   *RateLimiter
	observer  ResultObserver
	log       logger.Logger
}

func NewChatbotService(
	responder FaqResponder,
	repo domain.InteractionRepository,
	limiter *RateLimiter,
	observer ResultObserver,
	log logger.Logger,
) *ChatbotService {
	return &ChatbotService{
		responder: responder,
		repo:      repo,
		limiter:   limiter,
		observer:  observer,
		log:       log.With(logger.String("component", "chatbot")),
	}
}

// Reply responde un mensaje del chat. clientKey identifica al cliente para
// el rate limit (normalmente la IP).
func (s *ChatbotService) Reply(ctx context.Context, req domain.ChatRequest, clientKey string) (*domain.ChatResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, ErrEmptyMessage
	}

	conversationID, err := resolveConversationID(req.ConversationID)
	if err != nil {
		return nil, err
	}

	if s.limiter != nil {
		if err := s.limiter.Allow(clientKey); err != nil {
			return nil, err
		}
	}

	message = faq.Truncate(message, faq.MaxInputRunes)
	res := s.responder.ClassifyAndAnswer(message)
	if s.observer != nil {
		s.observer.ObserveResult(res)
	}

	interaction := &domain.Interaction{
		ConversationID: conversationID,
		Message:        message,
		Kind:           res.Kind,
		Reason:         res.Reason,
		Score:          res.Score,
	}
	if res.Entry != nil {
		q := res.Entry.Question
		interaction.MatchedQuestion = &q
	}
	// El registro es para diagnóstico; si falla, el usuario igual recibe su respuesta
	if err := s.repo.Save(ctx, interaction); err != nil {
		s.log.Warn("could not record interaction",
			logger.String("conversation_id", conversationID),
			logger.Err(err),
		)
	}

	s.log.Debug("message classified",
		logger.String("conversation_id", conversationID),
		logger.String("kind", string(res.Kind)),
		logger.String("reason", string(res.Reason)),
		logger.Float64("score", res.Score),
	)

	resp := &domain.ChatResponse{
		Message:         res.Text,
		Kind:            res.Kind,
		Reason:          res.Reason,
		ConversationID:  conversationID,
		MatchedQuestion: interaction.MatchedQuestion,
		Score:           res.Score,
	}
	if !res.IsAnswer() {
		resp.SuggestedActions = faq.QuickReplies()
	}
	return resp, nil
}

// ConversationHistory devuelve las interacciones registradas de una conversación
func (s *ChatbotService) ConversationHistory(ctx context.Context, conversationID string) ([]domain.Interaction, error) {
	if _, err := uuid.Parse(conversationID); err != nil {
		return nil, ErrInvalidConversationID
	}

	interactions, err := s.repo.ListByConversation(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("error getting conversation: %w", err)
	}
	if len(interactions) == 0 {
		return nil, domain.ErrConversationNotFound
	}
	return interactions, nil
}

func (s *ChatbotService) QuickReplies() []string {
	return faq.QuickReplies()
}

// ListFaqs devuelve el dataset, opcionalmente filtrado por dominio
func (s *ChatbotService) ListFaqs(filter *domain.FaqDomain) []domain.FaqEntry {
	entries := s.responder.Entries()
	if filter == nil {
		return entries
	}
	filtered := make([]domain.FaqEntry, 0, len(entries))
	for _, e := range entries {
		if e.Domain == *filter {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

func resolveConversationID(id *string) (string, error) {
	if id == nil || *id == "" {
		return uuid.New().String(), nil
	}
	parsed, err := uuid.Parse(*id)
	if err != nil {
		return "", ErrInvalidConversationID
	}
	return parsed.String(), nil
}
