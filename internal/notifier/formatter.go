package notifier

import (
	"fmt"
	"strings"

	"StockSentinel/internal/model"
)

// FormatSignalAlert formats an analysis result into a Telegram alert for a
// watched symbol whose latest signal crossed the alert threshold.
func FormatSignalAlert(result *model.AnalysisResult) string {
	var b strings.Builder

	sig := result.LatestSignal
	icon := "⚪"
	switch sig.Type {
	case model.SignalBuy:
		icon = "🟢"
	case model.SignalSell:
		icon = "🔴"
	}

	b.WriteString(fmt.Sprintf("%s <b>%s %s</b> (%s) | %s\n\n",
		icon, result.Symbol, sig.Type, sig.Strength, result.Date))
	b.WriteString(fmt.Sprintf("Price: %.2f\n", result.CurrentPrice))
	b.WriteString(fmt.Sprintf("Score: %+.0f | Confidence: %.0f%% (%s)\n\n",
		sig.Score, sig.Confidence*100, sig.ConfidenceLabel()))

	b.WriteString("<b>Reasons:</b>\n")
	for _, r := range sig.Reasons {
		b.WriteString(fmt.Sprintf("  • %s\n", r))
	}

	t := result.TrendAnalysis
	b.WriteString(fmt.Sprintf("\nTrend: %s / %s / %s (short/medium/long)\n",
		t.ShortTerm, t.MediumTerm, t.LongTerm))

	rm := result.RiskManagement
	b.WriteString(fmt.Sprintf("\n<b>Risk:</b>\nStop: %.2f | Target: %.2f (R/R %.1f)\n",
		rm.StopLoss, rm.TakeProfit, rm.RiskRewardRatio))
	b.WriteString(fmt.Sprintf("Position: %.0f shares | Volatility: %.0f%%\n",
		rm.PositionSize, rm.Volatility*100))

	return b.String()
}

// FormatWatchSummary formats a one-line-per-symbol digest of a watch run.
func FormatWatchSummary(results []*model.AnalysisResult, failed []string) string {
	var b strings.Builder
	b.WriteString("📊 <b>Watchlist summary</b>\n\n")
	for _, r := range results {
		sig := r.LatestSignal
		b.WriteString(fmt.Sprintf("%s: %s %s @ %.2f\n", r.Symbol, sig.Type, sig.Strength, r.CurrentPrice))
	}
	if len(failed) > 0 {
		b.WriteString(fmt.Sprintf("\n⚠️ failed: %s\n", strings.Join(failed, ", ")))
	}
	return b.String()
}
