package application

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrRateLimited se devuelve cuando un cliente supera el límite de mensajes
var ErrRateLimited = errors.New("rate limit exceeded")

type rateLimitEntry struct {
	count     int
	resetTime time.Time
}

// RateLimiter limita mensajes por identificador usando ventanas fijas de tiempo
type RateLimiter struct {
	limits map[string]*rateLimitEntry
	mu     sync.Mutex
	window time.Duration
	limit  int
	now    func() time.Time
	done   chan struct{}
	once   sync.Once
}

// NewRateLimiter crea un rate limiter.
// window: duración de la ventana (ej: 1 minuto)
// limit: máximo de mensajes permitidos en la ventana
func NewRateLimiter(window time.Duration, limit int) *RateLimiter {
	rl := &RateLimiter{
		limits: make(map[string]*rateLimitEntry),
		window: window,
		limit:  limit,
		now:    time.Now,
		done:   make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

// Allow registra un mensaje para identifier. Devuelve ErrRateLimited envuelto
// con el tiempo restante cuando se superó el límite.
func (rl *RateLimiter) Allow(identifier string) error {
	if identifier == "" {
		identifier = "anonymous"
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	entry, exists := rl.limits[identifier]

	// Si no existe o la ventana expiró, empieza una nueva
	if !exists || now.After(entry.resetTime) {
		rl.limits[identifier] = &rateLimitEntry{
			count:     1,
			resetTime: now.Add(rl.window),
		}
		return nil
	}

	if entry.count >= rl.limit {
		return fmt.Errorf("%w: intenta de nuevo en %v", ErrRateLimited, entry.resetTime.Sub(now).Round(time.Second))
	}

	entry.count++
	return nil
}

// Remaining devuelve cuántos mensajes le quedan a identifier en la ventana actual
func (rl *RateLimiter) Remaining(identifier string) int {
	if identifier == "" {
		identifier = "anonymous"
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	entry, exists := rl.limits[identifier]
	if !exists || rl.now().After(entry.resetTime) {
		return rl.limit
	}
	if remaining := rl.limit - entry.count; remaining > 0 {
		return remaining
	}
	return 0
}

// Stop detiene la limpieza periódica
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.done) })
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.done:
			return
		}
	}
}

func (rl *RateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, entry := range rl.limits {
		if now.After(entry.resetTime) {
			delete(rl.limits, key)
		}
	}
}

func (rl *RateLimiter) size() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.limits)
}
