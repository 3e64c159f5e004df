package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maxito7/marea_backend/internal/domain"
	"github.com/Maxito7/marea_backend/internal/logger"
)

func fallbackAt(msg string, reason domain.FallbackReason, at time.Time) domain.Interaction {
	return domain.Interaction{
		ConversationID: "c",
		Message:        msg,
		Kind:           domain.MatchKindFallback,
		Reason:         reason,
		Score:          1,
		CreatedAt:      at,
	}
}

func TestBuildFallbackDigest(t *testing.T) {
	since := time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)
	until := since.Add(24 * time.Hour)

	interactions := []domain.Interaction{
		fallbackAt("¿Tienen wifi?", domain.ReasonOffDomain, since.Add(time.Hour)),
		fallbackAt("clima en Marte", domain.ReasonOffDomain, since.Add(2*time.Hour)),
		fallbackAt("tienen WIFI", domain.ReasonOffDomain, since.Add(3*time.Hour)),
		fallbackAt("mareas zzzzzz", domain.ReasonLowConfidence, since.Add(4*time.Hour)),
		fallbackAt("fuera de rango", domain.ReasonOffDomain, until.Add(time.Minute)),
		{Message: "menú", Kind: domain.MatchKindAnswer, CreatedAt: since.Add(time.Hour)},
	}

	digest := BuildFallbackDigest(interactions, since, until)

	assert.Equal(t, 4, digest.Total)
	require.Len(t, digest.Items, 3)
	assert.Equal(t, "¿Tienen wifi?", digest.Items[0].Message)
	assert.Equal(t, 2, digest.Items[0].Count)
	assert.Equal(t, since.Add(3*time.Hour), digest.Items[0].LastSeen)
	assert.Equal(t, "clima en Marte", digest.Items[1].Message)
	assert.Equal(t, domain.ReasonLowConfidence, digest.Items[2].Reason)
}

func TestDigestService_SendDigest(t *testing.T) {
	now := time.Now()
	repo := &fakeInteractionRepo{saved: []domain.Interaction{
		fallbackAt("¿Tienen wifi?", domain.ReasonOffDomain, now.Add(-time.Hour)),
	}}
	sender := &fakeDigestSender{}
	svc := NewDigestService(repo, sender, "equipo@lamarea.cl", logger.NewNop())

	digest, err := svc.SendDigest(context.Background(), now.Add(-24*time.Hour), now)
	require.NoError(t, err)
	assert.Equal(t, 1, digest.Total)
	require.Len(t, sender.digests, 1)
	assert.Equal(t, "equipo@lamarea.cl", sender.to)
}

func TestDigestService_NothingToSend(t *testing.T) {
	sender := &fakeDigestSender{}
	svc := NewDigestService(&fakeInteractionRepo{}, sender, "equipo@lamarea.cl", logger.NewNop())

	digest, err := svc.SendDigest(context.Background(), time.Now().Add(-time.Hour), time.Now())
	require.NoError(t, err)
	assert.Zero(t, digest.Total)
	assert.Empty(t, sender.digests)
}

func TestDigestService_WithoutSender(t *testing.T) {
	now := time.Now()
	repo := &fakeInteractionRepo{saved: []domain.Interaction{
		fallbackAt("¿wifi?", domain.ReasonOffDomain, now.Add(-time.Minute)),
	}}
	svc := NewDigestService(repo, nil, "", logger.NewNop())

	digest, err := svc.SendDigest(context.Background(), now.Add(-time.Hour), now)
	require.NoError(t, err)
	assert.Equal(t, 1, digest.Total)
}

func TestDigestService_Errors(t *testing.T) {
	svc := NewDigestService(&fakeInteractionRepo{listErr: errors.New("db down")}, nil, "", logger.NewNop())
	_, err := svc.SendDigest(context.Background(), time.Now().Add(-time.Hour), time.Now())
	assert.ErrorContains(t, err, "db down")

	now := time.Now()
	repo := &fakeInteractionRepo{saved: []domain.Interaction{
		fallbackAt("¿wifi?", domain.ReasonOffDomain, now.Add(-time.Minute)),
	}}
	sender := &fakeDigestSender{err: errors.New("smtp timeout")}
	svc = NewDigestService(repo, sender, "equipo@lamarea.cl", logger.NewNop())
	digest, err := svc.SendDigest(context.Background(), now.Add(-time.Hour), now)
	assert.ErrorContains(t, err, "smtp timeout")
	assert.NotNil(t, digest)
}
