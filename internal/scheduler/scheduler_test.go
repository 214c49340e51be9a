package scheduler

import (
	"bytes"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"GoldSignal/internal/metrics"
)

func TestScheduler_RunningState(t *testing.T) {
	s := NewScheduler(metrics.New(), zerolog.Nop())
	if s.Running() {
		t.Fatal("scheduler should not run before Start")
	}
	if err := s.Register("noop", time.Hour, func() {}); err != nil {
		t.Fatalf("register: %v", err)
	}
	s.Start()
	if !s.Running() {
		t.Fatal("expected running after Start")
	}
	s.Stop()
	if s.Running() {
		t.Fatal("expected stopped after Stop")
	}
}

func TestScheduler_RegisterRejectsBadInput(t *testing.T) {
	s := NewScheduler(nil, zerolog.Nop())
	if err := s.Register("zero", 0, func() {}); err == nil {
		t.Error("expected error for zero interval")
	}
	if err := s.Register("neg", -time.Second, func() {}); err == nil {
		t.Error("expected error for negative interval")
	}
	if err := s.Register("dup", time.Hour, func() {}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := s.Register("dup", time.Hour, func() {}); err == nil {
		t.Error("expected error for duplicate job name")
	}
}

func TestScheduler_FiresOnInterval(t *testing.T) {
	s := NewScheduler(nil, zerolog.Nop())
	fired := make(chan struct{}, 4)
	if err := s.Register("tick", time.Second, func() { fired <- struct{}{} }); err != nil {
		t.Fatalf("register: %v", err)
	}
	s.Start()
	defer s.Stop()

	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("job did not fire within 3s")
	}
}

func TestScheduler_NoFireBeforeFirstInterval(t *testing.T) {
	s := NewScheduler(nil, zerolog.Nop())
	var count atomic.Int32
	if err := s.Register("hourly", time.Hour, func() { count.Add(1) }); err != nil {
		t.Fatalf("register: %v", err)
	}
	s.Start()
	time.Sleep(100 * time.Millisecond)
	s.Stop()
	if count.Load() != 0 {
		t.Errorf("hourly job should not fire immediately, fired %d times", count.Load())
	}
}

func TestScheduler_RunNow(t *testing.T) {
	s := NewScheduler(nil, zerolog.Nop())
	var done atomic.Bool
	if err := s.Register("job", time.Hour, func() {
		time.Sleep(50 * time.Millisecond)
		done.Store(true)
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
	s.Start()
	if err := s.RunNow("job"); err != nil {
		t.Fatalf("run now: %v", err)
	}
	s.Stop()
	if !done.Load() {
		t.Error("Stop should wait for the manual run to finish")
	}
	if err := s.RunNow("missing"); err == nil {
		t.Error("expected error for unknown job")
	}
}

func TestScheduler_RunNowRecoversPanic(t *testing.T) {
	var buf bytes.Buffer
	s := NewScheduler(nil, zerolog.New(&buf))
	if err := s.Register("boom", time.Hour, func() { panic("boom") }); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := s.RunNow("boom"); err != nil {
		t.Fatalf("run now: %v", err)
	}
	s.Stop()
	if !strings.Contains(buf.String(), "panic") {
		t.Errorf("expected panic to be logged, got %q", buf.String())
	}
}
