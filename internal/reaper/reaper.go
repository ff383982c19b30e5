package reaper

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/MikeSquared-Agency/Prioritization/internal/hermes"
	"github.com/MikeSquared-Agency/Prioritization/internal/metrics"
	"github.com/MikeSquared-Agency/Prioritization/internal/store"
)

// Reaper evicts sessions that have not been touched for longer than the TTL.
type Reaper struct {
	store    store.Store
	hermes   hermes.Client
	metrics  *metrics.Metrics
	ttl      time.Duration
	interval time.Duration
	now      func() time.Time
	logger   *slog.Logger

	stopOnce sync.Once
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

func New(s store.Store, h hermes.Client, m *metrics.Metrics, ttl, interval time.Duration, logger *slog.Logger) *Reaper {
	return &Reaper{
		store:    s,
		hermes:   h,
		metrics:  m,
		ttl:      ttl,
		interval: interval,
		now:      time.Now,
		logger:   logger,
		stopCh:   make(chan struct{}),
	}
}

func (r *Reaper) Start(ctx context.Context) {
	r.wg.Add(1)
	go r.sweepLoop(ctx)
}

func (r *Reaper) Stop() {
	r.stopOnce.Do(func() { close(r.stopCh) })
	r.wg.Wait()
}

func (r *Reaper) sweepLoop(ctx context.Context) {
	defer r.wg.Done()
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep(ctx)
		}
	}
}

// Sweep deletes every idle session once and returns how many went.
func (r *Reaper) Sweep(ctx context.Context) int {
	now := r.now()
	ids, err := r.store.IdleSessions(ctx, now.Add(-r.ttl))
	if err != nil {
		r.logger.Error("failed to list idle sessions", "error", err)
		return 0
	}

	evicted := 0
	for _, id := range ids {
		if err := r.store.DeleteSession(ctx, id); err != nil {
			r.logger.Error("failed to evict session", "session_id", id, "error", err)
			continue
		}
		evicted++
		r.logger.Info("session expired", "session_id", id, "ttl", r.ttl)
		hermes.Emit(r.hermes, r.logger, hermes.SubjectSessionExpired(id.String()), hermes.SessionExpiredEvent{
			SessionID: id.String(),
			IdleFor:   r.ttl,
			Timestamp: now,
		})
	}
	r.metrics.Expired(evicted)

	if n, err := r.store.CountSessions(ctx); err == nil {
		r.metrics.SetSessions(n)
	}
	return evicted
}
