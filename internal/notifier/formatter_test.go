package notifier

import (
	"testing"

	"GoldSignal/internal/model"
	"GoldSignal/internal/strategy"
)

func TestFormatSignal_GoldSignal(t *testing.T) {
	got := FormatSignal(strategy.GoldSignal())
	want := "GOLD SIGNAL\n\n" +
		"Bias: BUY\n" +
		"Confidence: 70%\n\n" +
		"Reasons:\n" +
		"- Inflation high\n" +
		"- Central banks buying gold\n" +
		"- ETF inflows positive\n" +
		"- Geopolitical risk rising\n"
	if got != want {
		t.Errorf("unexpected message:\n%q\nwant:\n%q", got, want)
	}
}

func TestFormatSignal_NoReasons(t *testing.T) {
	got := FormatSignal(model.Signal{Bias: model.BiasHold, Confidence: 0})
	want := "GOLD SIGNAL\n\nBias: HOLD\nConfidence: 0%\n\nReasons:\n"
	if got != want {
		t.Errorf("unexpected message: %q", got)
	}
}
