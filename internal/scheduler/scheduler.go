// Package scheduler keeps the dashboard's derived views warm: the mobile
// app polls the dashboard every 30 seconds while it is visible, so the
// aggregate views are recomputed on the same cadence server-side.
package scheduler

import (
	"context"
	"log"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/steppulse/steppulse/internal/repository"
	"github.com/steppulse/steppulse/pkg/cleanup"
)

const refreshInterval = 30 * time.Second

type Scheduler struct {
	sched         gocron.Scheduler
	dashboardRepo repository.DashboardRepositoryI
}

func New(dashboardRepo repository.DashboardRepositoryI) *Scheduler {
	if dashboardRepo == nil {
		log.Fatal("on scheduler provided nil dashboard repo")
	}
	sched, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal("creating scheduler error: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "stopping scheduler",
		F:    sched.Shutdown,
	})
	return &Scheduler{
		sched:         sched,
		dashboardRepo: dashboardRepo,
	}
}

func (s *Scheduler) Start() {
	_, err := s.sched.NewJob(
		gocron.DurationJob(refreshInterval),
		gocron.NewTask(s.refreshViews),
	)
	if err != nil {
		log.Fatal("registering view refresh job error: " + err.Error())
	}
	s.sched.Start()
}

// refreshViews failures are logged and retried on the next tick; a stale
// view is served until then.
func (s *Scheduler) refreshViews() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshInterval)
	defer cancel()
	if err := s.dashboardRepo.RefreshViews(ctx); err != nil {
		slog.Warn("dashboard view refresh failed", slog.String("error", err.Error()))
	}
}
