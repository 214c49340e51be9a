package strategy

import "GoldSignal/internal/model"

// Provider supplies the current trading signal.
type Provider interface {
	Signal() model.Signal
}

// StaticProvider serves the hardcoded gold signal.
type StaticProvider struct{}

// NewStaticProvider creates a StaticProvider.
func NewStaticProvider() *StaticProvider { return &StaticProvider{} }

func (p *StaticProvider) Signal() model.Signal { return GoldSignal() }

// GoldSignal returns the gold trading signal. The value is fixed; a fresh
// Reasons slice is built on every call.
func GoldSignal() model.Signal {
	return model.Signal{
		Bias:       model.BiasBuy,
		Confidence: 70,
		Reasons: []string{
			"Inflation high",
			"Central banks buying gold",
			"ETF inflows positive",
			"Geopolitical risk rising",
		},
	}
}
