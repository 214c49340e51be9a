package notifier

import (
	"context"

	"github.com/rs/zerolog"

	"GoldSignal/internal/metrics"
	"GoldSignal/internal/strategy"
)

// Sender delivers a text message to the messaging service.
type Sender interface {
	Send(ctx context.Context, text string) error
	Configured() bool
}

// SignalNotifier pushes the current signal to a Sender.
type SignalNotifier struct {
	sender   Sender
	provider strategy.Provider
	metrics  *metrics.Recorder
	log      zerolog.Logger
}

// NewSignalNotifier creates a SignalNotifier. rec may be nil.
func NewSignalNotifier(sender Sender, provider strategy.Provider, rec *metrics.Recorder, log zerolog.Logger) *SignalNotifier {
	return &SignalNotifier{
		sender:   sender,
		provider: provider,
		metrics:  rec,
		log:      log.With().Str("component", "notifier").Logger(),
	}
}

// Notify formats and delivers the current signal. Delivery errors are logged
// and dropped; the next scheduled run is the only retry.
func (n *SignalNotifier) Notify(ctx context.Context) {
	if !n.sender.Configured() {
		n.log.Warn().Msg("telegram bot token or chat id not configured, skipping signal")
		n.record(metrics.ResultSkipped)
		return
	}

	sig := n.provider.Signal()
	if err := n.sender.Send(ctx, FormatSignal(sig)); err != nil {
		n.log.Error().Err(err).Msg("error sending signal")
		n.record(metrics.ResultFailed)
		return
	}
	n.log.Info().Str("bias", string(sig.Bias)).Msg("signal sent successfully")
	n.record(metrics.ResultSent)
}

func (n *SignalNotifier) record(result string) {
	if n.metrics != nil {
		n.metrics.RecordNotification(result)
	}
}
