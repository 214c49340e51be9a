package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"GoldSignal/internal/config"
	"GoldSignal/internal/notifier"
	"GoldSignal/internal/scheduler"
	"GoldSignal/internal/server"
)

const signalJob = "send_signal"

// App owns every long-lived component of the service.
type App struct {
	cfg       *config.Config
	log       zerolog.Logger
	scheduler *scheduler.Scheduler
	notifier  *notifier.SignalNotifier
	server    *server.Server
}

// New creates an App.
func New(cfg *config.Config, log zerolog.Logger, sched *scheduler.Scheduler, n *notifier.SignalNotifier, srv *server.Server) *App {
	return &App{
		cfg:       cfg,
		log:       log,
		scheduler: sched,
		notifier:  n,
		server:    srv,
	}
}

// Run starts the scheduler and the HTTP server, blocks until ctx is done,
// then shuts both down.
func (a *App) Run(ctx context.Context) error {
	if !a.cfg.TelegramConfigured() {
		a.log.Warn().Msg("BOT_TOKEN or CHAT_ID not set, Telegram messages will not be sent")
	}

	if err := a.scheduler.Register(signalJob, a.cfg.Schedule.Interval, func() {
		a.notifier.Notify(ctx)
	}); err != nil {
		return fmt.Errorf("register signal job: %w", err)
	}
	a.scheduler.Start()
	a.log.Info().Dur("interval", a.cfg.Schedule.Interval).Msg("scheduler started, signals will be sent periodically")

	if a.cfg.Schedule.RunOnStart {
		a.log.Info().Msg("run_on_start enabled, sending signal now")
		if err := a.scheduler.RunNow(signalJob); err != nil {
			a.log.Error().Err(err).Msg("run on start")
		}
	}

	if err := a.server.Start(); err != nil {
		a.scheduler.Stop()
		return err
	}

	<-ctx.Done()
	a.log.Info().Msg("shutdown signal received, stopping...")
	return a.shutdown()
}

func (a *App) shutdown() error {
	a.scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(ctx); err != nil {
		a.log.Error().Err(err).Msg("http shutdown error")
		return err
	}
	a.log.Info().Msg("shutdown complete")
	return nil
}

// Scheduler exposes the scheduler for status checks.
func (a *App) Scheduler() *scheduler.Scheduler { return a.scheduler }
