// Package netwatch reports connectivity flips, standing in for the
// browser's online/offline events. A probe runs on an interval; the
// watcher emits only on status changes.
package netwatch

import (
	"context"
	"log/slog"
	"net"
	"time"

	"news_reader/internal/config"
)

// ProbeFunc reports whether the network currently looks reachable.
type ProbeFunc func(ctx context.Context) bool

type Watcher struct {
	probe    ProbeFunc
	interval time.Duration
	logger   *slog.Logger
	updates  chan bool
}

// New builds a watcher with a dial probe against the configured address.
func New(cfg config.NetworkConfig, logger *slog.Logger) *Watcher {
	return NewWithProbe(DialProbe(cfg.ProbeAddr, cfg.Timeout), cfg.Interval, logger)
}

func NewWithProbe(probe ProbeFunc, interval time.Duration, logger *slog.Logger) *Watcher {
	return &Watcher{
		probe:    probe,
		interval: interval,
		logger:   logger,
		updates:  make(chan bool, 1),
	}
}

// Updates delivers connectivity flips: true for online, false for offline.
func (w *Watcher) Updates() <-chan bool {
	return w.updates
}

// Start probes on the configured interval until the context is canceled.
// The session starts out online, so only a change away from online is
// reported before the first flip back.
func (w *Watcher) Start(ctx context.Context) error {
	w.logger.Info("network watcher started", "interval", w.interval)

	online := true
	w.check(ctx, &online)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("network watcher stopped")
			return ctx.Err()
		case <-ticker.C:
			w.check(ctx, &online)
		}
	}
}

func (w *Watcher) check(ctx context.Context, online *bool) {
	now := w.probe(ctx)
	if now == *online {
		return
	}
	*online = now

	w.logger.Info("network status changed", "online", now)

	// Drop the stale value if the consumer hasn't caught up; only the
	// latest status matters.
	select {
	case <-w.updates:
	default:
	}
	w.updates <- now
}

// DialProbe reports reachability of addr within the given timeout.
func DialProbe(addr string, timeout time.Duration) ProbeFunc {
	return func(ctx context.Context) bool {
		dialCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		var d net.Dialer
		conn, err := d.DialContext(dialCtx, "tcp", addr)
		if err != nil {
			return false
		}
		_ = conn.Close()
		return true
	}
}
