package planning

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron"
)

// HistoryPruner deletes plan history older than a cutoff.
type HistoryPruner interface {
	PrunePlanHistory(ctx context.Context, cutoff time.Time) (int64, error)
}

// Retention removes plan history older than a fixed number of days.
type Retention struct {
	store HistoryPruner
	days  int
	log   *slog.Logger
	now   func() time.Time
}

// NewRetention creates a retention job keeping days of history.
func NewRetention(store HistoryPruner, days int, log *slog.Logger) *Retention {
	return &Retention{store: store, days: days, log: log, now: time.Now}
}

// Cutoff returns the oldest creation time that survives a prune.
func (r *Retention) Cutoff() time.Time {
	return r.now().UTC().AddDate(0, 0, -r.days)
}

// PruneOnce runs a single prune pass.
func (r *Retention) PruneOnce(ctx context.Context) (int64, error) {
	cutoff := r.Cutoff()
	n, err := r.store.PrunePlanHistory(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	r.log.Info("plan history pruned", "deleted", n, "cutoff", cutoff.Format(time.RFC3339))
	return n, nil
}

// Schedule registers the prune job on a cron schedule and starts it. The
// caller stops the returned scheduler on shutdown. Zero retention days
// disables pruning and returns nil.
func (r *Retention) Schedule(ctx context.Context, spec string) (*cron.Cron, error) {
	if r.days <= 0 {
		return nil, nil
	}
	c := cron.New()
	err := c.AddFunc(spec, func() {
		if _, err := r.PruneOnce(ctx); err != nil {
			r.log.Error("plan history prune failed", "error", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("scheduling history prune %q: %w", spec, err)
	}
	c.Start()
	r.log.Info("history retention scheduled", "schedule", spec, "retention_days", r.days)
	return c, nil
}
