package analysis

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"StockSentinel/internal/config"
	"StockSentinel/internal/model"
)

// synthBars builds a deterministic wavy series with a mild upward drift.
func synthBars(count int) []model.OHLCV {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]model.OHLCV, count)
	for i := range bars {
		c := 100 + 10*math.Sin(float64(i)/5) + 0.1*float64(i)
		bars[i] = model.OHLCV{
			Time: start.AddDate(0, 0, i),
			Open: c - 0.5, High: c + 1.5, Low: c - 1.5, Close: c,
			Volume: 1_000_000,
		}
	}
	return bars
}

func synthSeries(count int) *model.PriceSeries {
	return &model.PriceSeries{Symbol: "TEST", Bars: synthBars(count)}
}

func TestAnalyze_Deterministic(t *testing.T) {
	cfg := config.DefaultAnalysis()
	series := synthSeries(252)

	a, err := Analyze(series, cfg)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	b, err := Analyze(series, cfg)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	ja, _ := json.Marshal(a)
	jb, _ := json.Marshal(b)
	if string(ja) != string(jb) {
		t.Error("identical input must produce byte-identical results")
	}
}

func TestAnalyze_TooShort(t *testing.T) {
	cfg := config.DefaultAnalysis()
	_, err := Analyze(synthSeries(30), cfg)
	if !errors.Is(err, ErrInvalidSeries) {
		t.Fatalf("expected ErrInvalidSeries, got %v", err)
	}
}

func TestAnalyze_MinLengthSeriesComplete(t *testing.T) {
	cfg := config.DefaultAnalysis()
	result, err := Analyze(synthSeries(cfg.MinBars), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snap := result.TechnicalIndicators
	if snap.RSI <= 0 || snap.RSI >= 100 {
		t.Errorf("expected populated RSI for a wavy series, got %.2f", snap.RSI)
	}
	if snap.SMA20 == 0 || snap.SMA50 == 0 || snap.ATR == 0 {
		t.Error("expected every core indicator populated at the final bar")
	}
	if result.LatestSignal == nil {
		t.Fatal("expected a latest signal even on a minimum-length series")
	}
	// The long MA cannot be populated yet, so the long horizon stays neutral.
	if result.TrendAnalysis.LongTerm != model.TrendNeutral {
		t.Errorf("expected neutral long-term trend on a short series, got %s", result.TrendAnalysis.LongTerm)
	}
}

func TestAnalyze_LatestSignalAlwaysPresent(t *testing.T) {
	cfg := config.DefaultAnalysis()
	// A flat series fires no rule, so every bar is a HOLD and the history is
	// empty. The latest signal must still exist.
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]model.OHLCV, 80)
	for i := range bars {
		bars[i] = model.OHLCV{
			Time: start.AddDate(0, 0, i),
			Open: 100, High: 100, Low: 100, Close: 100,
			Volume: 1000,
		}
	}
	result, err := Analyze(&model.PriceSeries{Symbol: "FLAT", Bars: bars}, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.SignalHistory) != 0 {
		t.Errorf("expected empty history for a flat series, got %d entries", len(result.SignalHistory))
	}
	sig := result.LatestSignal
	if sig == nil {
		t.Fatal("expected synthesized HOLD signal")
	}
	if sig.Type != model.SignalHold {
		t.Errorf("expected HOLD, got %s", sig.Type)
	}
	if sig.Confidence <= 0 || sig.Confidence > 1 {
		t.Errorf("confidence %.4f out of (0,1]", sig.Confidence)
	}
	if !sig.Date.Equal(bars[len(bars)-1].Time) {
		t.Errorf("synthesized signal should sit on the final bar, got %s", sig.Date)
	}
}

// monotoneBars builds count bars whose closes move by exactly step each day.
func monotoneBars(base, step float64, count int) []model.OHLCV {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]model.OHLCV, count)
	for i := range bars {
		c := base + step*float64(i)
		bars[i] = model.OHLCV{
			Time: start.AddDate(0, 0, i),
			Open: c - step/2, High: c + 1, Low: c - 1, Close: c,
			Volume: 1_000_000,
		}
	}
	return bars
}

func TestAnalyze_MonotoneRiseNeverSells(t *testing.T) {
	cfg := config.DefaultAnalysis()
	series := &model.PriceSeries{Symbol: "UP", Bars: monotoneBars(100, 1, 80)}

	result, err := Analyze(series, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := result.LatestSignal.Type; got == model.SignalSell {
		t.Fatalf("strictly rising series produced a SELL: score %+.1f reasons %v",
			result.LatestSignal.Score, result.LatestSignal.Reasons)
	}
	for i, s := range result.SignalHistory {
		if s.Type == model.SignalSell {
			t.Errorf("history entry %d is a SELL on a strictly rising series: %v", i, s.Reasons)
		}
	}
	if result.TechnicalIndicators.RSI < 70 {
		t.Errorf("expected overbought RSI on a steady rise, got %.2f", result.TechnicalIndicators.RSI)
	}
	if result.TechnicalIndicators.MACDTrend != string(model.TrendBullish) {
		t.Errorf("expected Bullish MACD trend, got %s", result.TechnicalIndicators.MACDTrend)
	}
	if result.TrendAnalysis.ShortTerm != model.TrendBullish {
		t.Errorf("expected Bullish short-term trend, got %s", result.TrendAnalysis.ShortTerm)
	}
}

func TestAnalyze_MonotoneFallNeverBuys(t *testing.T) {
	cfg := config.DefaultAnalysis()
	series := &model.PriceSeries{Symbol: "DOWN", Bars: monotoneBars(200, -1, 80)}

	result, err := Analyze(series, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := result.LatestSignal.Type; got == model.SignalBuy {
		t.Fatalf("strictly falling series produced a BUY: score %+.1f reasons %v",
			result.LatestSignal.Score, result.LatestSignal.Reasons)
	}
	for i, s := range result.SignalHistory {
		if s.Type == model.SignalBuy {
			t.Errorf("history entry %d is a BUY on a strictly falling series: %v", i, s.Reasons)
		}
	}
	if result.TrendAnalysis.ShortTerm != model.TrendBearish {
		t.Errorf("expected Bearish short-term trend, got %s", result.TrendAnalysis.ShortTerm)
	}
}

func TestAnalyze_RiskInvariants(t *testing.T) {
	cfg := config.DefaultAnalysis()
	result, err := Analyze(synthSeries(252), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	price := result.CurrentPrice
	rm := result.RiskManagement

	if result.LatestSignal.Type == model.SignalSell {
		if rm.StopLoss <= price || rm.TakeProfit >= price {
			t.Errorf("short placement: expected stop above and target below %.2f, got stop %.2f target %.2f",
				price, rm.StopLoss, rm.TakeProfit)
		}
	} else {
		if rm.StopLoss >= price || rm.TakeProfit <= price {
			t.Errorf("long placement: expected stop below and target above %.2f, got stop %.2f target %.2f",
				price, rm.StopLoss, rm.TakeProfit)
		}
	}
	if rm.RiskRewardRatio <= 0 {
		t.Errorf("expected positive risk/reward, got %.4f", rm.RiskRewardRatio)
	}
	if rm.MaxDrawdown < 0 || rm.MaxDrawdown > 1 {
		t.Errorf("max drawdown %.4f out of [0,1]", rm.MaxDrawdown)
	}
	maxShares := cfg.AccountBalance * cfg.MaxPositionPct / price
	if rm.PositionSize > maxShares+1e-9 {
		t.Errorf("position size %.2f exceeds cap %.2f", rm.PositionSize, maxShares)
	}
}

func TestAnalyze_FallbackStopsOnZeroATR(t *testing.T) {
	cfg := config.DefaultAnalysis()
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]model.OHLCV, 80)
	for i := range bars {
		bars[i] = model.OHLCV{
			Time: start.AddDate(0, 0, i),
			Open: 100, High: 100, Low: 100, Close: 100,
			Volume: 1000,
		}
	}
	result, err := Analyze(&model.PriceSeries{Symbol: "FLAT", Bars: bars}, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rm := result.RiskManagement
	if math.Abs(rm.StopLoss-98) > 1e-9 {
		t.Errorf("expected percentage fallback stop 98, got %.4f", rm.StopLoss)
	}
	if math.Abs(rm.TakeProfit-103) > 1e-9 {
		t.Errorf("expected percentage fallback target 103, got %.4f", rm.TakeProfit)
	}
	if rm.StopLoss == result.CurrentPrice || rm.TakeProfit == result.CurrentPrice {
		t.Error("stop and target must never equal the current price")
	}
}

func TestAnalyze_PrefixConsistency(t *testing.T) {
	cfg := config.DefaultAnalysis()
	full := synthSeries(160)
	prefix := &model.PriceSeries{Symbol: "TEST", Bars: full.Bars[:120]}

	a, err := Analyze(full, cfg)
	if err != nil {
		t.Fatalf("full: %v", err)
	}
	b, err := Analyze(prefix, cfg)
	if err != nil {
		t.Fatalf("prefix: %v", err)
	}

	// Every signal of the prefix must reappear identically in the full run:
	// later bars must not rewrite earlier evaluations.
	cutoff := full.Bars[119].Time
	var early []model.Signal
	for _, s := range a.SignalHistory {
		if !s.Date.After(cutoff) {
			early = append(early, s)
		}
	}
	if len(early) != len(b.SignalHistory) {
		t.Fatalf("expected %d shared signals, got %d", len(b.SignalHistory), len(early))
	}
	for i := range early {
		ja, _ := json.Marshal(early[i])
		jb, _ := json.Marshal(b.SignalHistory[i])
		if string(ja) != string(jb) {
			t.Errorf("signal %d diverges between prefix and full run", i)
		}
	}
}

func TestChartSeries_Alignment(t *testing.T) {
	cfg := config.DefaultAnalysis()
	series := synthSeries(100)
	points, err := ChartSeries(series, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 100 {
		t.Fatalf("expected one point per bar, got %d", len(points))
	}
	if points[0].SMA20 != nil {
		t.Error("expected nil SMA20 before the window fills")
	}
	if points[8].SMA10 != nil || points[9].SMA10 == nil {
		t.Error("expected SMA10 populated exactly from its window boundary")
	}
	if points[99].SMA20 == nil || points[99].RSI == nil {
		t.Error("expected populated indicators at the final bar")
	}
	if points[99].Close != series.Bars[99].Close {
		t.Error("point prices must mirror the input bars")
	}
}

func TestAnalyze_DataSummary(t *testing.T) {
	cfg := config.DefaultAnalysis()
	series := synthSeries(100)
	result, err := Analyze(series, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ds := result.DataSummary
	if ds.TotalRecords != 100 {
		t.Errorf("expected 100 records, got %d", ds.TotalRecords)
	}
	if ds.DateRange.Start != "2025-01-01" {
		t.Errorf("unexpected start date %s", ds.DateRange.Start)
	}
	if ds.PriceRange.Current != series.Bars[99].Close {
		t.Errorf("expected current price %.2f, got %.2f", series.Bars[99].Close, ds.PriceRange.Current)
	}
	if ds.PriceRange.High < ds.PriceRange.Low {
		t.Error("price range high below low")
	}
}
