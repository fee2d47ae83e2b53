package workers

import (
	"context"
	"time"

	"github.com/NeonGeckoCom/neon-hub-config/internal/logger"
)

// DefaultJanitorInterval is how often expired web sessions are swept.
const DefaultJanitorInterval = time.Minute

// SessionJanitor periodically evicts expired dashboard sessions.
type SessionJanitor struct {
	sessions Evicter
	interval time.Duration
	now      func() time.Time
	logger   *logger.Logger
}

func NewSessionJanitor(sessions Evicter, interval time.Duration, logger *logger.Logger) *SessionJanitor {
	if interval <= 0 {
		interval = DefaultJanitorInterval
	}
	return &SessionJanitor{sessions: sessions, interval: interval, now: time.Now, logger: logger}
}

func (j *SessionJanitor) Run(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := j.sessions.EvictExpired(j.now()); n > 0 {
				j.logger.Debug().Int("evicted", n).Msg("expired sessions removed")
			}
		}
	}
}
