package calculator

import "math"

// BollingerSeries computes the Bollinger Bands: an SMA middle band and
// upper/lower bands offset by stdDevMult population standard deviations
// over the same trailing window.
func BollingerSeries(closes []float64, period int, stdDevMult float64) (upper, middle, lower []*float64) {
	n := len(closes)
	upper = make([]*float64, n)
	lower = make([]*float64, n)
	middle = SMASeries(closes, period)
	if period <= 0 || n < period {
		return upper, middle, lower
	}
	for i := period - 1; i < n; i++ {
		mean := *middle[i]
		variance := 0.0
		for j := i - period + 1; j <= i; j++ {
			diff := closes[j] - mean
			variance += diff * diff
		}
		sd := math.Sqrt(variance / float64(period))
		upper[i] = value(mean + sd*stdDevMult)
		lower[i] = value(mean - sd*stdDevMult)
	}
	return upper, middle, lower
}

// BBPositionSeries computes the normalized position of the close within the
// band, clamped to [0,1]. A degenerate band (upper == lower) yields 0.5.
func BBPositionSeries(closes []float64, upper, lower []*float64) []*float64 {
	out := make([]*float64, len(closes))
	for i := range closes {
		if upper[i] == nil || lower[i] == nil {
			continue
		}
		width := *upper[i] - *lower[i]
		if width == 0 {
			out[i] = value(0.5)
			continue
		}
		pos := (closes[i] - *lower[i]) / width
		if pos < 0 {
			pos = 0
		}
		if pos > 1 {
			pos = 1
		}
		out[i] = value(pos)
	}
	return out
}
