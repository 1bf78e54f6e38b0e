package scheduler

import (
	"fmt"
	"time"

	"slashbot/internal/config"

	"github.com/robfig/cron/v3"
)

// Scheduler runs housekeeping jobs on cron specs
type Scheduler struct {
	config *config.Config
	cron   *cron.Cron
	jobs   map[string]cron.EntryID
}

// NewScheduler creates a new scheduler instance
func NewScheduler(cfg *config.Config) *Scheduler {
	return &Scheduler{
		config: cfg,
		cron:   cron.New(),
		jobs:   make(map[string]cron.EntryID),
	}
}

// RegisterFunc schedules fn on spec (standard cron syntax or descriptors such as @hourly).
// A failing run is logged and waits for its next tick.
func (s *Scheduler) RegisterFunc(spec, name string, fn func() error) error {
	if _, exists := s.jobs[name]; exists {
		return fmt.Errorf("job %s is already registered", name)
	}

	id, err := s.cron.AddFunc(spec, func() {
		start := time.Now()
		if err := fn(); err != nil {
			s.config.Logger.Errorf("Scheduled job %s failed: %v", name, err)
			return
		}
		s.config.Logger.Debugf("Scheduled job %s finished in %s", name, time.Since(start))
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q for job %s: %w", spec, name, err)
	}

	s.jobs[name] = id
	return nil
}

// Start begins running registered jobs in the background
func (s *Scheduler) Start() {
	s.cron.Start()
	s.config.Logger.Infof("Scheduler started with %d job(s)", len(s.jobs))
}

// Stop halts the scheduler and waits for running jobs to finish
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.config.Logger.Info("Scheduler stopped")
}
