package application

import (
	"context"
	"sync"
	"time"

	"github.com/Maxito7/marea_backend/internal/domain"
)

type fakeInteractionRepo struct {
	mu      sync.Mutex
	saved   []domain.Interaction
	saveErr error
	listErr error
}

func (r *fakeInteractionRepo) Save(_ context.Context, in *domain.Interaction) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if in.ID == "" {
		in.ID = "generated"
	}
	if in.CreatedAt.IsZero() {
		in.CreatedAt = time.Now()
	}
	r.saved = append(r.saved, *in)
	return nil
}

func (r *fakeInteractionRepo) ListByConversation(_ context.Context, conversationID string) ([]domain.Interaction, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Interaction
	for _, in := range r.saved {
		if in.ConversationID == conversationID {
			out = append(out, in)
		}
	}
	return out, nil
}

func (r *fakeInteractionRepo) ListFallbacksSince(_ context.Context, since time.Time) ([]domain.Interaction, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Interaction
	for _, in := range r.saved {
		if in.Kind == domain.MatchKindFallback && !in.CreatedAt.Before(since) {
			out = append(out, in)
		}
	}
	return out, nil
}

type recordingObserver struct {
	results []domain.MatchResult
}

func (o *recordingObserver) ObserveResult(res domain.MatchResult) {
	o.results = append(o.results, res)
}

type fakeDigestSender struct {
	to      string
	digests []domain.FallbackDigest
	err     error
}

func (s *fakeDigestSender) SendFallbackDigest(_ context.Context, to string, digest domain.FallbackDigest) error {
	if s.err != nil {
		return s.err
	}
	s.to = to
	s.digests = append(s.digests, digest)
	return nil
}
