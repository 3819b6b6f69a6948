package analysis

import (
	"StockSentinel/internal/calculator"
	"StockSentinel/internal/config"
	"StockSentinel/internal/model"
)

// buildIndicators computes every indicator series, aligned with the bars.
func buildIndicators(bars []model.OHLCV, cfg config.AnalysisConfig) *model.IndicatorSet {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}

	ind := &model.IndicatorSet{
		SMA10:  calculator.SMASeries(closes, cfg.SMAFast),
		SMA20:  calculator.SMASeries(closes, cfg.SMAShort),
		SMA50:  calculator.SMASeries(closes, cfg.SMAMedium),
		SMA200: calculator.SMASeries(closes, cfg.SMALong),

		RSI: calculator.RSISeries(closes, cfg.RSIWindow),

		ATR: calculator.ATRSeries(bars, cfg.ATRWindow),
		CCI: calculator.CCISeries(bars, cfg.CCIWindow),

		WilliamsR: calculator.WilliamsRSeries(bars, cfg.WilliamsWindow),

		Volatility: calculator.VolatilitySeries(closes, cfg.VolatilityWindow),
	}

	ind.MACD, ind.MACDSignal, ind.MACDHist = calculator.MACDSeries(closes, cfg.MACDFast, cfg.MACDSlow, cfg.MACDSignal)
	ind.BBUpper, ind.BBMiddle, ind.BBLower = calculator.BollingerSeries(closes, cfg.BBWindow, cfg.BBStdDev)
	ind.BBPosition = calculator.BBPositionSeries(closes, ind.BBUpper, ind.BBLower)
	ind.StochK, ind.StochD = calculator.StochasticSeries(bars, cfg.StochKWindow, cfg.StochDWindow)

	return ind
}

// hasCore reports whether every indicator the rule set requires is
// populated at index i. Bars failing this check are skipped by the signal
// generator rather than scored with partial data.
func hasCore(ind *model.IndicatorSet, i int) bool {
	for _, s := range [][]*float64{
		ind.RSI, ind.MACD, ind.MACDSignal, ind.BBPosition,
		ind.StochK, ind.StochD, ind.WilliamsR, ind.CCI,
		ind.SMA20, ind.SMA50, ind.ATR, ind.Volatility,
	} {
		if s[i] == nil {
			return false
		}
	}
	return true
}

// snapshot captures the final-bar indicator values with derived labels.
func snapshot(bars []model.OHLCV, ind *model.IndicatorSet, cfg config.AnalysisConfig) model.IndicatorSnapshot {
	last := len(bars) - 1
	snap := model.IndicatorSnapshot{
		RSI:        deref(ind.RSI[last]),
		MACD:       deref(ind.MACD[last]),
		MACDSignal: deref(ind.MACDSignal[last]),
		BBUpper:    deref(ind.BBUpper[last]),
		BBLower:    deref(ind.BBLower[last]),
		BBPosition: deref(ind.BBPosition[last]),
		StochK:     deref(ind.StochK[last]),
		StochD:     deref(ind.StochD[last]),
		WilliamsR:  deref(ind.WilliamsR[last]),
		CCI:        deref(ind.CCI[last]),
		ATR:        deref(ind.ATR[last]),
		SMA20:      deref(ind.SMA20[last]),
		SMA50:      deref(ind.SMA50[last]),
		Volatility: deref(ind.Volatility[last]),
	}

	switch {
	case snap.RSI < cfg.RSIOversold:
		snap.RSISignal = "Oversold"
	case snap.RSI > cfg.RSIOverbought:
		snap.RSISignal = "Overbought"
	default:
		snap.RSISignal = "Neutral"
	}

	if snap.MACD > snap.MACDSignal {
		snap.MACDTrend = string(model.TrendBullish)
	} else {
		snap.MACDTrend = string(model.TrendBearish)
	}

	return snap
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
