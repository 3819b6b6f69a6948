package calculator

import (
	"math"

	"StockSentinel/internal/model"
)

// tradingDaysPerYear is the conventional annualization factor for daily bars.
const tradingDaysPerYear = 252

// VolatilitySeries computes the rolling population standard deviation of
// simple daily returns over a trailing window, annualized by sqrt(252).
// Returns need a previous close, so the first value appears at index period.
func VolatilitySeries(closes []float64, period int) []*float64 {
	out := make([]*float64, len(closes))
	if period <= 0 || len(closes) < period+1 {
		return out
	}
	returns := make([]float64, len(closes))
	for i := 1; i < len(closes); i++ {
		if closes[i-1] != 0 {
			returns[i] = closes[i]/closes[i-1] - 1
		}
	}
	for i := period; i < len(closes); i++ {
		mean := 0.0
		for j := i - period + 1; j <= i; j++ {
			mean += returns[j]
		}
		mean /= float64(period)
		variance := 0.0
		for j := i - period + 1; j <= i; j++ {
			diff := returns[j] - mean
			variance += diff * diff
		}
		sd := math.Sqrt(variance / float64(period))
		out[i] = value(sd * math.Sqrt(tradingDaysPerYear))
	}
	return out
}

// MaxDrawdown returns the maximum peak-to-trough relative decline over the
// whole series as a fraction in [0,1].
func MaxDrawdown(closes []float64) float64 {
	peak := math.Inf(-1)
	maxDD := 0.0
	for _, c := range closes {
		if c > peak {
			peak = c
		}
		if peak > 0 {
			dd := (peak - c) / peak
			if dd > maxDD {
				maxDD = dd
			}
		}
	}
	return maxDD
}

// RecentExtremes scans the trailing period bars and returns the lowest low
// (support) and highest high (resistance).
func RecentExtremes(bars []model.OHLCV, period int) (support, resistance float64) {
	if len(bars) == 0 {
		return 0, 0
	}
	start := len(bars) - period
	if start < 0 {
		start = 0
	}
	support = math.Inf(1)
	resistance = math.Inf(-1)
	for i := start; i < len(bars); i++ {
		if bars[i].Low < support {
			support = bars[i].Low
		}
		if bars[i].High > resistance {
			resistance = bars[i].High
		}
	}
	return support, resistance
}
