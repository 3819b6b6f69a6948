package calculator

// Series indicators are positionally aligned with their input: the result
// always has the same length as the input, with nil entries at every index
// where the trailing lookback window is not yet populated.

// value returns a pointer to v for use in an aligned series.
func value(v float64) *float64 { return &v }

// SMASeries computes the simple moving average over a trailing window.
// Entries before index period-1 are nil.
func SMASeries(values []float64, period int) []*float64 {
	out := make([]*float64, len(values))
	if period <= 0 || len(values) < period {
		return out
	}
	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= period {
			sum -= values[i-period]
		}
		if i >= period-1 {
			out[i] = value(sum / float64(period))
		}
	}
	return out
}

// EMASeries computes the exponential moving average, seeded by the SMA of
// the first period values. Entries before index period-1 are nil.
func EMASeries(values []float64, period int) []*float64 {
	out := make([]*float64, len(values))
	if period <= 0 || len(values) < period {
		return out
	}
	sum := 0.0
	for i := 0; i < period; i++ {
		sum += values[i]
	}
	ema := sum / float64(period)
	out[period-1] = value(ema)

	multiplier := 2.0 / float64(period+1)
	for i := period; i < len(values); i++ {
		ema = values[i]*multiplier + ema*(1-multiplier)
		out[i] = value(ema)
	}
	return out
}

// CalculateSMA returns the simple moving average of the trailing period
// values, or false when there is not enough data.
func CalculateSMA(values []float64, period int) (float64, bool) {
	if period <= 0 || len(values) < period {
		return 0, false
	}
	sum := 0.0
	for i := len(values) - period; i < len(values); i++ {
		sum += values[i]
	}
	return sum / float64(period), true
}

// CalculateMomentum returns the rate of change over the trailing period as a
// percentage, or false when there is not enough data.
func CalculateMomentum(values []float64, period int) (float64, bool) {
	if period <= 0 || len(values) < period+1 {
		return 0, false
	}
	current := values[len(values)-1]
	past := values[len(values)-period-1]
	if past == 0 {
		return 0, false
	}
	return (current - past) / past * 100, true
}
