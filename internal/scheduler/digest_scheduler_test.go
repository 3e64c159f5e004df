package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maxito7/marea_backend/internal/domain"
	"github.com/Maxito7/marea_backend/internal/logger"
)

type fakeRunner struct {
	mu    sync.Mutex
	calls [][2]time.Time
	err   error
}

func (r *fakeRunner) SendDigest(_ context.Context, since, until time.Time) (*domain.FallbackDigest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, [2]time.Time{since, until})
	if r.err != nil {
		return nil, r.err
	}
	return &domain.FallbackDigest{Since: since, Until: until}, nil
}

func TestNextRun(t *testing.T) {
	loc := time.UTC
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{"before run time", time.Date(2026, 10, 15, 0, 1, 0, 0, loc), time.Date(2026, 10, 15, 0, 5, 0, 0, loc)},
		{"exactly at run time", time.Date(2026, 10, 15, 0, 5, 0, 0, loc), time.Date(2026, 10, 16, 0, 5, 0, 0, loc)},
		{"afternoon", time.Date(2026, 10, 15, 15, 0, 0, 0, loc), time.Date(2026, 10, 16, 0, 5, 0, 0, loc)},
		{"end of month", time.Date(2026, 10, 31, 23, 0, 0, 0, loc), time.Date(2026, 11, 1, 0, 5, 0, 0, loc)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nextRun(tt.now, 0, 5))
		})
	}
}

func TestDigestScheduler_RunOnce(t *testing.T) {
	runner := &fakeRunner{}
	s := NewDigestScheduler(runner, logger.NewNop())

	now := time.Date(2026, 10, 15, 0, 5, 0, 0, time.UTC)
	s.RunOnce(context.Background(), now)

	require.Len(t, runner.calls, 1)
	assert.Equal(t, now.Add(-24*time.Hour), runner.calls[0][0])
	assert.Equal(t, now, runner.calls[0][1])

	runner.err = errors.New("smtp down")
	s.RunOnce(context.Background(), now)
	assert.Len(t, runner.calls, 2)
}

func TestDigestScheduler_StartStop(t *testing.T) {
	s := NewDigestScheduler(&fakeRunner{}, logger.NewNop())
	s.Start(context.Background())
	s.Stop()
	s.Stop()
}
