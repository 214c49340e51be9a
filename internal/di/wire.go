//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"GoldSignal/internal/app"
	"GoldSignal/internal/config"
)

// InitializeApp wires up all dependencies and returns the application.
func InitializeApp(cfg *config.Config) (*app.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,
		ProvideProvider,
		ProvideTelegram,
		ProvideSignalNotifier,
		ProvideScheduler,
		ProvideServer,
		ProvideApp,
	)
	return &app.App{}, nil
}
