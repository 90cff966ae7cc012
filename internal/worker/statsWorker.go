package worker

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vodninamlyn/wedding-rsvp/internal/service"
)

// StatsRefreshWorker periodically recomputes the dashboard aggregates so
// the cache stays warm between admin visits.
type StatsRefreshWorker struct {
	adminService service.AdminService
	interval     time.Duration
}

func NewStatsRefreshWorker(adminService service.AdminService, interval time.Duration) *StatsRefreshWorker {
	return &StatsRefreshWorker{
		adminService: adminService,
		interval:     interval,
	}
}

func (w *StatsRefreshWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	logrus.Info("Stats refresh worker started")

	for {
		select {
		case <-ctx.Done():
			logrus.Info("Stats refresh worker stopped")
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *StatsRefreshWorker) refresh(ctx context.Context) {
	stats, err := w.adminService.RefreshStats(ctx)
	if err != nil {
		logrus.Errorf("Failed to refresh rsvp stats: %v", err)
		return
	}

	logrus.Infof("Rsvp stats refreshed: %s", stats)
}
