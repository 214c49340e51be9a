package notifier

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"GoldSignal/internal/metrics"
	"GoldSignal/internal/strategy"
)

type fakeSender struct {
	configured bool
	err        error
	texts      []string
}

func (f *fakeSender) Configured() bool { return f.configured }

func (f *fakeSender) Send(_ context.Context, text string) error {
	f.texts = append(f.texts, text)
	return f.err
}

func newTestNotifier(s Sender) (*SignalNotifier, *bytes.Buffer) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	return NewSignalNotifier(s, strategy.NewStaticProvider(), metrics.New(), log), &buf
}

func TestNotify_UnconfiguredMakesNoCalls(t *testing.T) {
	s := &fakeSender{configured: false}
	n, buf := newTestNotifier(s)

	n.Notify(context.Background())

	if len(s.texts) != 0 {
		t.Fatalf("expected zero send calls, got %d", len(s.texts))
	}
	if !strings.Contains(buf.String(), `"level":"warn"`) {
		t.Errorf("expected a warning log, got %q", buf.String())
	}
}

func TestNotify_SendsFormattedSignal(t *testing.T) {
	s := &fakeSender{configured: true}
	n, buf := newTestNotifier(s)

	n.Notify(context.Background())

	if len(s.texts) != 1 {
		t.Fatalf("expected one send call, got %d", len(s.texts))
	}
	if s.texts[0] != FormatSignal(strategy.GoldSignal()) {
		t.Errorf("unexpected text: %q", s.texts[0])
	}
	if !strings.Contains(buf.String(), "signal sent successfully") {
		t.Errorf("expected success log, got %q", buf.String())
	}
}

func TestNotify_DeliveryFailureIsLoggedNotPropagated(t *testing.T) {
	s := &fakeSender{configured: true, err: errors.New("connection refused")}
	n, buf := newTestNotifier(s)

	n.Notify(context.Background())
	n.Notify(context.Background())

	if len(s.texts) != 2 {
		t.Fatalf("expected exactly one attempt per run, got %d", len(s.texts))
	}
	out := buf.String()
	if !strings.Contains(out, `"level":"error"`) || !strings.Contains(out, "connection refused") {
		t.Errorf("expected error log with cause, got %q", out)
	}
}

func TestNotify_NilMetrics(t *testing.T) {
	s := &fakeSender{configured: true}
	n := NewSignalNotifier(s, strategy.NewStaticProvider(), nil, zerolog.Nop())
	n.Notify(context.Background())
	if len(s.texts) != 1 {
		t.Fatalf("expected one send call, got %d", len(s.texts))
	}
}
