package analysis

import (
	"math"

	"StockSentinel/internal/config"
	"StockSentinel/internal/model"
)

// evaluateBar folds the rule set over one bar and returns the accumulated
// score with the reasons of every fired condition, in rule order.
func evaluateBar(c *barContext) (float64, []string) {
	score := 0.0
	var reasons []string
	for _, r := range ruleSet {
		contribution, reason, fired := r.eval(c)
		if !fired {
			continue
		}
		score += contribution
		reasons = append(reasons, reason)
	}
	return score, reasons
}

// classifyScore maps an accumulated score to a signal type, strength and
// confidence. Confidence is monotonic in the score magnitude, floored at
// 1/MaxScore so it stays in (0,1] even for a zero-score HOLD.
func classifyScore(score float64, cfg config.AnalysisConfig) (model.SignalType, model.SignalStrength, float64) {
	abs := math.Abs(score)

	sigType := model.SignalHold
	if abs >= cfg.NeutralBand {
		if score > 0 {
			sigType = model.SignalBuy
		} else {
			sigType = model.SignalSell
		}
	}

	strength := model.StrengthWeak
	switch {
	case abs >= cfg.StrongScore:
		strength = model.StrengthStrong
	case abs >= cfg.ModerateScore:
		strength = model.StrengthModerate
	}

	confidence := math.Max(abs, 1) / cfg.MaxScore
	if confidence > 1 {
		confidence = 1
	}

	return sigType, strength, confidence
}

// generateSignals evaluates the rule set on every bar whose core indicators
// are populated and returns the BUY/SELL history plus the latest signal.
// Bars missing any required indicator are skipped, never scored with
// partial data. When no bar crossed the neutral band the latest signal is a
// HOLD synthesized from the final evaluable bar, so a latest signal always
// exists.
func generateSignals(bars []model.OHLCV, closes []float64, ind *model.IndicatorSet, cfg config.AnalysisConfig) ([]model.Signal, *model.Signal) {
	start := cfg.Warmup()
	if cfg.SignalHistoryBars > 0 && len(bars)-cfg.SignalHistoryBars > start {
		start = len(bars) - cfg.SignalHistoryBars
	}

	var history []model.Signal
	var lastEval *model.Signal

	for i := start; i < len(bars); i++ {
		if !hasCore(ind, i) {
			continue
		}
		c := &barContext{
			i:      i,
			closes: closes,
			ind:    ind,
			trend:  classifyTrendAt(closes, ind, i, cfg),
			cfg:    cfg,
		}
		score, reasons := evaluateBar(c)
		sigType, strength, confidence := classifyScore(score, cfg)

		sig := model.Signal{
			Date:       bars[i].Time,
			Type:       sigType,
			Strength:   strength,
			Price:      bars[i].Close,
			Score:      score,
			Confidence: confidence,
			Reasons:    reasons,
		}
		lastEval = &sig
		if sigType != model.SignalHold {
			history = append(history, sig)
		}
	}

	if len(history) > 0 {
		return history, &history[len(history)-1]
	}
	return history, lastEval
}
