package scheduler

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"GoldSignal/internal/metrics"
)

// Scheduler runs the periodic jobs on a robfig/cron instance.
type Scheduler struct {
	cron    *cron.Cron
	logger  cron.Logger
	metrics *metrics.Recorder
	log     zerolog.Logger

	mu      sync.Mutex
	jobs    map[string]cron.Job
	running atomic.Bool
	manual  sync.WaitGroup
}

// NewScheduler creates a Scheduler. rec may be nil.
func NewScheduler(rec *metrics.Recorder, log zerolog.Logger) *Scheduler {
	log = log.With().Str("component", "scheduler").Logger()
	cl := cronLogger{log: log}
	return &Scheduler{
		cron:    cron.New(cron.WithLogger(cl), cron.WithChain(cron.Recover(cl))),
		logger:  cl,
		metrics: rec,
		log:     log,
		jobs:    make(map[string]cron.Job),
	}
}

// Register schedules job to run every interval. The first run happens one
// interval after Start.
func (s *Scheduler) Register(name string, interval time.Duration, job func()) error {
	if interval <= 0 {
		return fmt.Errorf("register %s: interval must be positive, got %v", name, interval)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.jobs[name]; ok {
		return fmt.Errorf("register %s: already registered", name)
	}
	j := cron.FuncJob(job)
	s.jobs[name] = j
	s.cron.Schedule(cron.Every(interval), j)
	s.log.Info().Str("job", name).Dur("interval", interval).Msg("job registered")
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.setRunning(true)
	s.log.Info().Msg("scheduler started")
}

// Stop stops the scheduler and waits for running jobs to return.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	s.setRunning(false)
	<-ctx.Done()
	s.manual.Wait()
	s.log.Info().Msg("scheduler stopped")
}

// Running reports whether the scheduler has been started and not stopped.
func (s *Scheduler) Running() bool {
	return s.running.Load()
}

// RunNow executes a registered job immediately in the background. Stop waits
// for it to finish.
func (s *Scheduler) RunNow(name string) error {
	s.mu.Lock()
	j, ok := s.jobs[name]
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("run %s: no such job", name)
	}

	wrapped := cron.Recover(s.logger)(j)
	s.manual.Add(1)
	go func() {
		defer s.manual.Done()
		s.log.Info().Str("job", name).Msg("running job now")
		wrapped.Run()
	}()
	return nil
}

func (s *Scheduler) setRunning(v bool) {
	s.running.Store(v)
	if s.metrics != nil {
		s.metrics.SetSchedulerRunning(v)
	}
}

// cronLogger routes robfig/cron logging to zerolog.
type cronLogger struct {
	log zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
