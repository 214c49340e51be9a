package di

import (
	"github.com/rs/zerolog"

	"GoldSignal/internal/app"
	"GoldSignal/internal/config"
	"GoldSignal/internal/logger"
	"GoldSignal/internal/metrics"
	"GoldSignal/internal/notifier"
	"GoldSignal/internal/scheduler"
	"GoldSignal/internal/server"
	"GoldSignal/internal/strategy"
)

// ProvideLogger builds the application logger from config.
func ProvideLogger(cfg *config.Config) (zerolog.Logger, error) {
	return logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
}

// ProvideMetrics creates the Prometheus recorder.
func ProvideMetrics() *metrics.Recorder {
	return metrics.New()
}

// ProvideProvider returns the signal provider.
func ProvideProvider() strategy.Provider {
	return strategy.NewStaticProvider()
}

// ProvideTelegram creates the Telegram client.
func ProvideTelegram(cfg *config.Config) *notifier.TelegramNotifier {
	return notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
}

// ProvideSignalNotifier creates the scheduled notifier.
func ProvideSignalNotifier(tn *notifier.TelegramNotifier, p strategy.Provider, rec *metrics.Recorder, log zerolog.Logger) *notifier.SignalNotifier {
	return notifier.NewSignalNotifier(tn, p, rec, log)
}

// ProvideScheduler creates the cron scheduler.
func ProvideScheduler(rec *metrics.Recorder, log zerolog.Logger) *scheduler.Scheduler {
	return scheduler.NewScheduler(rec, log)
}

// ProvideServer creates the HTTP server with the signal routes.
func ProvideServer(cfg *config.Config, p strategy.Provider, sched *scheduler.Scheduler, rec *metrics.Recorder, log zerolog.Logger) *server.Server {
	h := server.NewSignalHandler(p, sched, cfg.TelegramConfigured(), cfg.Schedule.Interval)
	return server.NewServer(h, rec, log,
		server.WithHost(cfg.Server.Host),
		server.WithPort(cfg.Server.Port),
		server.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout),
	)
}

// ProvideApp assembles the application.
func ProvideApp(cfg *config.Config, log zerolog.Logger, sched *scheduler.Scheduler, n *notifier.SignalNotifier, srv *server.Server) *app.App {
	return app.New(cfg, log, sched, n, srv)
}
