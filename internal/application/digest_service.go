package application

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Maxito7/marea_backend/internal/domain"
	"github.com/Maxito7/marea_backend/internal/faq"
	"github.com/Maxito7/marea_backend/internal/logger"
)

// DigestSender envía el resumen de fallbacks al equipo
type DigestSender interface {
	SendFallbackDigest(ctx context.Context, to string, digest domain.FallbackDigest) error
}

type DigestService struct {
	repo      domain.InteractionRepository
	sender    DigestSender
	recipient string
	log       logger.Logger
}

// NewDigestService crea el servicio. Si sender es nil el resumen se arma pero no se envía.
func NewDigestService(repo domain.InteractionRepository, sender DigestSender, recipient string, log logger.Logger) *DigestService {
	return &DigestService{
		repo:      repo,
		sender:    sender,
		recipient: recipient,
		log:       log.With(logger.String("component", "digest")),
	}
}

// SendDigest agrupa los fallbacks de [since, until) y los envía por correo
func (s *DigestService) SendDigest(ctx context.Context, since, until time.Time) (*domain.FallbackDigest, error) {
	interactions, err := s.repo.ListFallbacksSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("error listing fallbacks: %w", err)
	}

	digest := BuildFallbackDigest(interactions, since, until)
	if digest.Total == 0 {
		s.log.Info("no fallbacks to report", logger.Time("since", since))
		return &digest, nil
	}
	if s.sender == nil || s.recipient == "" {
		s.log.Info("email disabled, digest not sent", logger.Int("total", digest.Total))
		return &digest, nil
	}

	if err := s.sender.SendFallbackDigest(ctx, s.recipient, digest); err != nil {
		return &digest, fmt.Errorf("error sending digest: %w", err)
	}
	s.log.Info("fallback digest sent",
		logger.Int("total", digest.Total),
		logger.Int("distinct", len(digest.Items)),
	)
	return &digest, nil
}

// BuildFallbackDigest agrupa por mensaje normalizado y motivo, de más a menos frecuente
func BuildFallbackDigest(interactions []domain.Interaction, since, until time.Time) domain.FallbackDigest {
	type key struct {
		message string
		reason  domain.FallbackReason
	}

	digest := domain.FallbackDigest{Since: since, Until: until}
	groups := make(map[key]*domain.FallbackDigestItem)
	var order []key

	for _, in := range interactions {
		if in.Kind != domain.MatchKindFallback || in.CreatedAt.Before(since) || !in.CreatedAt.Before(until) {
			continue
		}
		digest.Total++

		k := key{message: faq.Normalize(in.Message), reason: in.Reason}
		item, ok := groups[k]
		if !ok {
			item = &domain.FallbackDigestItem{Message: in.Message, Reason: in.Reason}
			groups[k] = item
			order = append(order, k)
		}
		item.Count++
		if in.CreatedAt.After(item.LastSeen) {
			item.LastSeen = in.CreatedAt
		}
	}

	digest.Items = make([]domain.FallbackDigestItem, 0, len(order))
	for _, k := range order {
		digest.Items = append(digest.Items, *groups[k])
	}
	sort.SliceStable(digest.Items, func(i, j int) bool {
		return digest.Items[i].Count > digest.Items[j].Count
	})
	return digest
}
