package model

// Bias is the directional recommendation carried by a signal.
type Bias string

const (
	BiasBuy  Bias = "BUY"
	BiasSell Bias = "SELL"
	BiasHold Bias = "HOLD"
)

// Signal is the record published on the dashboard, the JSON API and Telegram.
type Signal struct {
	Bias       Bias     `json:"bias"`
	Confidence int      `json:"confidence"` // percent, 0~100
	Reasons    []string `json:"reasons"`
}
