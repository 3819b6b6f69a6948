package calculator

import (
	"math"

	"StockSentinel/internal/model"
)

// ATRSeries computes the average true range: an SMA of the true range over a
// trailing window. The true range needs a previous close, so the first value
// appears at index period.
func ATRSeries(bars []model.OHLCV, period int) []*float64 {
	out := make([]*float64, len(bars))
	if period <= 0 || len(bars) < period+1 {
		return out
	}
	tr := make([]float64, len(bars))
	for i := 1; i < len(bars); i++ {
		highLow := bars[i].High - bars[i].Low
		highClose := math.Abs(bars[i].High - bars[i-1].Close)
		lowClose := math.Abs(bars[i].Low - bars[i-1].Close)
		tr[i] = math.Max(highLow, math.Max(highClose, lowClose))
	}
	sum := 0.0
	for i := 1; i < len(bars); i++ {
		sum += tr[i]
		if i > period {
			sum -= tr[i-period]
		}
		if i >= period {
			out[i] = value(sum / float64(period))
		}
	}
	return out
}
