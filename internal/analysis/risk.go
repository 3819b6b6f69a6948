package analysis

import (
	"math"

	"StockSentinel/internal/calculator"
	"StockSentinel/internal/config"
	"StockSentinel/internal/model"
)

// supportResistance derives the price levels at the final bar: rolling
// extrema over the trailing window plus the Bollinger Band boundaries.
func supportResistance(bars []model.OHLCV, ind *model.IndicatorSet, cfg config.AnalysisConfig) model.SupportResistance {
	last := len(bars) - 1
	support, resistance := calculator.RecentExtremes(bars, cfg.SupportResistanceWindow)
	return model.SupportResistance{
		Support:    support,
		Resistance: resistance,
		BBUpper:    deref(ind.BBUpper[last]),
		BBLower:    deref(ind.BBLower[last]),
	}
}

// riskMetrics derives the risk profile from the closing prices, the final
// ATR and the latest signal's direction. Stop and target never equal the
// current price: a percentage fallback replaces a degenerate (zero) ATR
// distance.
func riskMetrics(bars []model.OHLCV, closes []float64, ind *model.IndicatorSet, latest *model.Signal, cfg config.AnalysisConfig) model.RiskMetrics {
	last := len(bars) - 1
	price := closes[last]
	atr := deref(ind.ATR[last])

	stopDistance := atr * cfg.ATRStopMultiple
	targetDistance := atr * cfg.ATRTargetMultiple
	if stopDistance == 0 {
		stopDistance = price * cfg.StopFallbackPct
		targetDistance = price * cfg.TargetFallbackPct
	}

	// HOLD is treated as long-side protective placement.
	short := latest != nil && latest.Type == model.SignalSell

	var stopLoss, takeProfit float64
	if short {
		stopLoss = price + stopDistance
		takeProfit = price - targetDistance
	} else {
		stopLoss = price - stopDistance
		takeProfit = price + targetDistance
	}

	riskReward := 0.0
	if stopDistance > 0 {
		riskReward = targetDistance / stopDistance
	}

	positionSize := 0.0
	if stopDistance > 0 && price > 0 {
		riskAmount := cfg.AccountBalance * cfg.RiskPerTrade
		positionSize = riskAmount / stopDistance
		if maxShares := cfg.AccountBalance * cfg.MaxPositionPct / price; positionSize > maxShares {
			positionSize = maxShares
		}
	}
	if math.IsInf(positionSize, 0) || math.IsNaN(positionSize) {
		positionSize = 0
	}

	return model.RiskMetrics{
		StopLoss:        stopLoss,
		TakeProfit:      takeProfit,
		RiskRewardRatio: riskReward,
		PositionSize:    positionSize,
		MaxDrawdown:     calculator.MaxDrawdown(closes),
		Volatility:      deref(ind.Volatility[last]),
	}
}
