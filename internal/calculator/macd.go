package calculator

// MACDSeries computes the MACD line (fast EMA minus slow EMA), its signal
// line (EMA of the MACD line, seeded by an SMA of the first signalPeriod
// MACD values), and the histogram. The MACD line starts at index
// slowPeriod-1 and the signal line signalPeriod-1 bars later.
func MACDSeries(closes []float64, fastPeriod, slowPeriod, signalPeriod int) (macd, signal, histogram []*float64) {
	n := len(closes)
	macd = make([]*float64, n)
	signal = make([]*float64, n)
	histogram = make([]*float64, n)
	if fastPeriod <= 0 || slowPeriod <= 0 || signalPeriod <= 0 || n < slowPeriod {
		return macd, signal, histogram
	}

	fast := EMASeries(closes, fastPeriod)
	slow := EMASeries(closes, slowPeriod)
	for i := 0; i < n; i++ {
		if fast[i] != nil && slow[i] != nil {
			macd[i] = value(*fast[i] - *slow[i])
		}
	}

	// Signal line: EMA over the populated region of the MACD line.
	start := slowPeriod - 1
	if n-start < signalPeriod {
		return macd, signal, histogram
	}
	macdValues := make([]float64, n-start)
	for i := start; i < n; i++ {
		macdValues[i-start] = *macd[i]
	}
	sig := EMASeries(macdValues, signalPeriod)
	for i, v := range sig {
		if v != nil {
			signal[start+i] = v
			histogram[start+i] = value(macdValues[i] - *v)
		}
	}
	return macd, signal, histogram
}
