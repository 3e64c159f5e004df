package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/Maxito7/marea_backend/internal/domain"
	"github.com/Maxito7/marea_backend/internal/logger"
)

// DigestRunner arma y envía el resumen de fallbacks de un período
type DigestRunner interface {
	SendDigest(ctx context.Context, since, until time.Time) (*domain.FallbackDigest, error)
}

// DigestScheduler envía el resumen de consultas sin respuesta una vez al día
type DigestScheduler struct {
	runner DigestRunner
	hour   int
	minute int
	log    logger.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewDigestScheduler crea un scheduler que corre todos los días a las 00:05
func NewDigestScheduler(runner DigestRunner, log logger.Logger) *DigestScheduler {
	return &DigestScheduler{
		runner: runner,
		hour:   0,
		minute: 5,
		log:    log.With(logger.String("component", "digest_scheduler")),
	}
}

// Start programa la primera ejecución y luego una cada 24 horas
func (s *DigestScheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	next := nextRun(time.Now(), s.hour, s.minute)
	s.log.Info("digest scheduler started", logger.Time("next_run", next))

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for {
			timer := time.NewTimer(time.Until(next))
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case now := <-timer.C:
				s.RunOnce(ctx, now)
				next = nextRun(now, s.hour, s.minute)
			}
		}
	}()
}

// Stop detiene el scheduler y espera a que termine la ejecución en curso
func (s *DigestScheduler) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	s.wg.Wait()
	s.log.Info("digest scheduler stopped")
}

// RunOnce envía el resumen de las 24 horas anteriores a now
func (s *DigestScheduler) RunOnce(ctx context.Context, now time.Time) {
	digest, err := s.runner.SendDigest(ctx, now.Add(-24*time.Hour), now)
	if err != nil {
		s.log.Error("digest run failed", logger.Err(err))
		return
	}
	s.log.Info("digest run finished", logger.Int("fallbacks", digest.Total))
}

// nextRun devuelve la próxima hora:minuto estrictamente posterior a now
func nextRun(now time.Time, hour, minute int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
