package calculator

import (
	"math"

	"StockSentinel/internal/model"
)

// StochasticSeries computes the stochastic oscillator. %K is the close's
// position within the trailing kPeriod high-low range scaled to [0,100];
// %D is an SMA of %K over dPeriod. A flat range yields the neutral 50.
func StochasticSeries(bars []model.OHLCV, kPeriod, dPeriod int) (k, d []*float64) {
	n := len(bars)
	k = make([]*float64, n)
	d = make([]*float64, n)
	if kPeriod <= 0 || dPeriod <= 0 || n < kPeriod {
		return k, d
	}
	for i := kPeriod - 1; i < n; i++ {
		hh, ll := windowRange(bars, i, kPeriod)
		if hh == ll {
			k[i] = value(50.0)
			continue
		}
		k[i] = value((bars[i].Close - ll) / (hh - ll) * 100)
	}
	// %D over the populated region of %K.
	start := kPeriod - 1
	if n-start < dPeriod {
		return k, d
	}
	kValues := make([]float64, n-start)
	for i := start; i < n; i++ {
		kValues[i-start] = *k[i]
	}
	for i, v := range SMASeries(kValues, dPeriod) {
		if v != nil {
			d[start+i] = v
		}
	}
	return k, d
}

// WilliamsRSeries computes Williams %R, the inverse-scaled stochastic in
// [-100,0]. A flat range yields the neutral -50.
func WilliamsRSeries(bars []model.OHLCV, period int) []*float64 {
	out := make([]*float64, len(bars))
	if period <= 0 || len(bars) < period {
		return out
	}
	for i := period - 1; i < len(bars); i++ {
		hh, ll := windowRange(bars, i, period)
		if hh == ll {
			out[i] = value(-50.0)
			continue
		}
		out[i] = value(-100 * (hh - bars[i].Close) / (hh - ll))
	}
	return out
}

// CCISeries computes the commodity channel index: the typical price's
// deviation from its SMA, normalized by 0.015 times the mean absolute
// deviation. A zero deviation yields the neutral 0.
func CCISeries(bars []model.OHLCV, period int) []*float64 {
	out := make([]*float64, len(bars))
	if period <= 0 || len(bars) < period {
		return out
	}
	tp := make([]float64, len(bars))
	for i, b := range bars {
		tp[i] = (b.High + b.Low + b.Close) / 3
	}
	sma := SMASeries(tp, period)
	for i := period - 1; i < len(bars); i++ {
		mean := *sma[i]
		mad := 0.0
		for j := i - period + 1; j <= i; j++ {
			mad += math.Abs(tp[j] - mean)
		}
		mad /= float64(period)
		if mad == 0 {
			out[i] = value(0.0)
			continue
		}
		out[i] = value((tp[i] - mean) / (0.015 * mad))
	}
	return out
}

// windowRange returns the highest high and lowest low over the trailing
// period bars ending at index i.
func windowRange(bars []model.OHLCV, i, period int) (high, low float64) {
	high = math.Inf(-1)
	low = math.Inf(1)
	for j := i - period + 1; j <= i; j++ {
		if bars[j].High > high {
			high = bars[j].High
		}
		if bars[j].Low < low {
			low = bars[j].Low
		}
	}
	return high, low
}
