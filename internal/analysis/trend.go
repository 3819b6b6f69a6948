package analysis

import (
	"StockSentinel/internal/calculator"
	"StockSentinel/internal/config"
	"StockSentinel/internal/model"
)

// classifyHorizon labels one trend horizon at index i: the close must sit
// outside a margin band around the horizon's moving average AND the
// momentum over the horizon's lookback must agree, otherwise the horizon is
// Neutral. A horizon whose moving average is not yet populated (the long MA
// on a short series) is Neutral.
func classifyHorizon(closes []float64, ma *float64, momentumWindow int, i int, marginPct float64) model.TrendLabel {
	if ma == nil {
		return model.TrendNeutral
	}
	margin := *ma * marginPct / 100
	mom, ok := calculator.CalculateMomentum(closes[:i+1], momentumWindow)
	if !ok {
		return model.TrendNeutral
	}
	close := closes[i]
	switch {
	case close > *ma+margin && mom > 0:
		return model.TrendBullish
	case close < *ma-margin && mom < 0:
		return model.TrendBearish
	default:
		return model.TrendNeutral
	}
}

// classifyTrendAt derives the three-horizon trend state from the indicator
// values at index i only (no lookahead).
func classifyTrendAt(closes []float64, ind *model.IndicatorSet, i int, cfg config.AnalysisConfig) model.TrendState {
	return model.TrendState{
		ShortTerm:  classifyHorizon(closes, ind.SMA20[i], cfg.MomentumShort, i, cfg.TrendMarginPct),
		MediumTerm: classifyHorizon(closes, ind.SMA50[i], cfg.MomentumMedium, i, cfg.TrendMarginPct),
		LongTerm:   classifyHorizon(closes, ind.SMA200[i], cfg.MomentumLong, i, cfg.TrendMarginPct),
	}
}
