package di

import (
	"testing"
	"time"

	"GoldSignal/internal/config"
)

func TestInitializeApp(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 8080
	cfg.Server.ReadTimeout = time.Second
	cfg.Server.WriteTimeout = time.Second
	cfg.Server.ShutdownTimeout = time.Second
	cfg.Schedule.Interval = time.Hour
	cfg.Log.Level = "info"
	cfg.Log.Format = "json"

	a, err := InitializeApp(cfg)
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}
	if a == nil || a.Scheduler() == nil {
		t.Fatal("expected assembled app")
	}
	if a.Scheduler().Running() {
		t.Error("scheduler must not start before Run")
	}
}

func TestInitializeApp_BadLogLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Log.Level = "loud"
	if _, err := InitializeApp(cfg); err == nil {
		t.Fatal("expected error for invalid log level")
	}
}
