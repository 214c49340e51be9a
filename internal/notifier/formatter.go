package notifier

import (
	"fmt"
	"strings"

	"GoldSignal/internal/model"
)

// FormatSignal renders a signal as a plain-text Telegram message.
func FormatSignal(sig model.Signal) string {
	var b strings.Builder
	b.WriteString("GOLD SIGNAL\n\n")
	b.WriteString(fmt.Sprintf("Bias: %s\n", sig.Bias))
	b.WriteString(fmt.Sprintf("Confidence: %d%%\n\n", sig.Confidence))
	b.WriteString("Reasons:\n")
	for _, r := range sig.Reasons {
		b.WriteString(fmt.Sprintf("- %s\n", r))
	}
	return b.String()
}
