package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Job is a named function the scheduler fires on a fixed interval.
type Job struct {
	Name     string
	Interval time.Duration
	Fn       func(ctx context.Context) error
}

// Scheduler drives background jobs on fixed intervals. Jobs are
// registered before Start; each gets its own goroutine and runs until
// Stop cancels the shared context.
type Scheduler struct {
	jobs   []Job
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
}

func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		ctx:    ctx,
		cancel: cancel,
	}
}

// AddJob registers a job. Registration after Start does not schedule it.
func (s *Scheduler) AddJob(name string, interval time.Duration, fn func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = append(s.jobs, Job{Name: name, Interval: interval, Fn: fn})
	slog.Info("background job registered", "job", name, "interval", interval)
}

// Start launches one goroutine per registered job.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.jobs {
		s.wg.Add(1)
		go s.loop(job)
	}

	slog.Info("background scheduler running", "jobs", len(s.jobs))
}

// Stop cancels every job loop and waits for in-flight runs to finish.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	slog.Info("background scheduler stopped")
}

func (s *Scheduler) loop(job Job) {
	defer s.wg.Done()

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	// First run happens at startup, not one full interval later.
	s.fire(job)

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.fire(job)
		}
	}
}

func (s *Scheduler) fire(job Job) {
	start := time.Now()

	if err := job.Fn(s.ctx); err != nil {
		slog.Error("background job failed", "job", job.Name, "error", err, "duration", time.Since(start))
		return
	}
	slog.Debug("background job finished", "job", job.Name, "duration", time.Since(start))
}

// RunOnce executes every registered job a single time on the caller's
// context, ignoring intervals. Failures are logged, not returned: one
// job's error must not stop the rest.
func (s *Scheduler) RunOnce(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.jobs {
		if err := job.Fn(ctx); err != nil {
			slog.Error("background job failed", "job", job.Name, "error", err)
		}
	}
}
