package analysis

import (
	"StockSentinel/internal/config"
	"StockSentinel/internal/model"
)

// barContext is the view of the series a rule evaluates against: the
// current index, the aligned indicator series, and the trend state derived
// at that index.
type barContext struct {
	i      int
	closes []float64
	ind    *model.IndicatorSet
	trend  model.TrendState
	cfg    config.AnalysisConfig
}

func (c *barContext) at(series []*float64) float64 { return *series[c.i] }

// prev returns the previous bar's value, or false when unpopulated.
func (c *barContext) prev(series []*float64) (float64, bool) {
	if c.i == 0 || series[c.i-1] == nil {
		return 0, false
	}
	return *series[c.i-1], true
}

// counterTrend reports whether a mean-reversion contribution argues against
// an aligned short- and medium-term trend. Overbought readings are normal in
// a confirmed uptrend (and oversold in a downtrend), so level-based reversal
// rules are suppressed there: a strictly rising series must never score as a
// SELL on oscillator levels alone.
func (c *barContext) counterTrend(contribution float64) bool {
	if contribution < 0 {
		return c.trend.ShortTerm == model.TrendBullish && c.trend.MediumTerm == model.TrendBullish
	}
	if contribution > 0 {
		return c.trend.ShortTerm == model.TrendBearish && c.trend.MediumTerm == model.TrendBearish
	}
	return false
}

// rule is one named condition evaluator. It returns a signed score
// contribution and a reason string when it fires.
type rule struct {
	name string
	eval func(c *barContext) (float64, string, bool)
}

// ruleSet is the fixed, ordered condition list the signal generator folds
// over. Order is part of the contract: reasons are reported in this order.
var ruleSet = []rule{
	{name: "rsi", eval: func(c *barContext) (float64, string, bool) {
		rsi := c.at(c.ind.RSI)
		if rsi < c.cfg.RSIOversold && !c.counterTrend(c.cfg.WeightRSI) {
			return c.cfg.WeightRSI, "RSI oversold", true
		}
		if rsi > c.cfg.RSIOverbought && !c.counterTrend(-c.cfg.WeightRSI) {
			return -c.cfg.WeightRSI, "RSI overbought", true
		}
		return 0, "", false
	}},

	{name: "macd_cross", eval: func(c *barContext) (float64, string, bool) {
		macd, sig := c.at(c.ind.MACD), c.at(c.ind.MACDSignal)
		prevMACD, ok1 := c.prev(c.ind.MACD)
		prevSig, ok2 := c.prev(c.ind.MACDSignal)
		if !ok1 || !ok2 {
			return 0, "", false
		}
		if macd > sig && prevMACD <= prevSig {
			return c.cfg.WeightMACDCross, "MACD bullish crossover", true
		}
		if macd < sig && prevMACD >= prevSig {
			return -c.cfg.WeightMACDCross, "MACD bearish crossover", true
		}
		return 0, "", false
	}},

	{name: "bollinger", eval: func(c *barContext) (float64, string, bool) {
		pos := c.at(c.ind.BBPosition)
		if pos < c.cfg.BBLowerZone && !c.counterTrend(c.cfg.WeightBB) {
			return c.cfg.WeightBB, "Price near lower Bollinger Band", true
		}
		if pos > c.cfg.BBUpperZone && !c.counterTrend(-c.cfg.WeightBB) {
			return -c.cfg.WeightBB, "Price near upper Bollinger Band", true
		}
		return 0, "", false
	}},

	{name: "stochastic_cross", eval: func(c *barContext) (float64, string, bool) {
		k, d := c.at(c.ind.StochK), c.at(c.ind.StochD)
		prevK, ok1 := c.prev(c.ind.StochK)
		prevD, ok2 := c.prev(c.ind.StochD)
		if !ok1 || !ok2 {
			return 0, "", false
		}
		if k < c.cfg.StochOversold && d < c.cfg.StochOversold && k > d && prevK <= prevD {
			return c.cfg.WeightStoch, "Stochastic bullish crossover", true
		}
		if k > c.cfg.StochOverbought && d > c.cfg.StochOverbought && k < d && prevK >= prevD {
			return -c.cfg.WeightStoch, "Stochastic bearish crossover", true
		}
		return 0, "", false
	}},

	{name: "williams_r", eval: func(c *barContext) (float64, string, bool) {
		wr := c.at(c.ind.WilliamsR)
		if wr < c.cfg.WilliamsOversold && !c.counterTrend(c.cfg.WeightWilliams) {
			return c.cfg.WeightWilliams, "Williams %R oversold", true
		}
		if wr > c.cfg.WilliamsOverbought && !c.counterTrend(-c.cfg.WeightWilliams) {
			return -c.cfg.WeightWilliams, "Williams %R overbought", true
		}
		return 0, "", false
	}},

	{name: "cci", eval: func(c *barContext) (float64, string, bool) {
		cci := c.at(c.ind.CCI)
		if cci < c.cfg.CCIOversold && !c.counterTrend(c.cfg.WeightCCI) {
			return c.cfg.WeightCCI, "CCI oversold", true
		}
		if cci > c.cfg.CCIOverbought && !c.counterTrend(-c.cfg.WeightCCI) {
			return -c.cfg.WeightCCI, "CCI overbought", true
		}
		return 0, "", false
	}},

	{name: "sma_cross", eval: func(c *barContext) (float64, string, bool) {
		sma, ok := c.prev(c.ind.SMA20)
		if !ok {
			return 0, "", false
		}
		close, prevClose := c.closes[c.i], c.closes[c.i-1]
		cur := c.at(c.ind.SMA20)
		if close > cur && prevClose <= sma {
			return c.cfg.WeightSMACross, "Price crossed above SMA20", true
		}
		if close < cur && prevClose >= sma {
			return -c.cfg.WeightSMACross, "Price crossed below SMA20", true
		}
		return 0, "", false
	}},

	{name: "golden_cross", eval: func(c *barContext) (float64, string, bool) {
		if c.ind.SMA200[c.i] == nil {
			return 0, "", false
		}
		sma50, sma200 := c.at(c.ind.SMA50), c.at(c.ind.SMA200)
		prev50, ok1 := c.prev(c.ind.SMA50)
		prev200, ok2 := c.prev(c.ind.SMA200)
		if !ok1 || !ok2 {
			return 0, "", false
		}
		if sma50 > sma200 && prev50 <= prev200 {
			return c.cfg.WeightGoldenCross, "Golden cross", true
		}
		if sma50 < sma200 && prev50 >= prev200 {
			return -c.cfg.WeightGoldenCross, "Death cross", true
		}
		return 0, "", false
	}},

	{name: "trend_alignment", eval: func(c *barContext) (float64, string, bool) {
		t := c.trend
		if t.ShortTerm == model.TrendBullish && t.MediumTerm == model.TrendBullish && t.LongTerm == model.TrendBullish {
			return c.cfg.WeightTrendAlign, "All trend horizons bullish", true
		}
		if t.ShortTerm == model.TrendBearish && t.MediumTerm == model.TrendBearish && t.LongTerm == model.TrendBearish {
			return -c.cfg.WeightTrendAlign, "All trend horizons bearish", true
		}
		return 0, "", false
	}},
}
