package calculator

import (
	"testing"
	"time"

	"StockSentinel/internal/model"
)

// flatBars builds count identical bars at the given price.
func flatBars(price float64, count int) []model.OHLCV {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]model.OHLCV, count)
	for i := range bars {
		bars[i] = model.OHLCV{
			Time: start.AddDate(0, 0, i),
			Open: price, High: price, Low: price, Close: price,
			Volume: 1000,
		}
	}
	return bars
}

// trendBars builds count bars stepping up by step each day with a small
// intraday range.
func trendBars(base, step float64, count int) []model.OHLCV {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]model.OHLCV, count)
	for i := range bars {
		c := base + step*float64(i)
		bars[i] = model.OHLCV{
			Time: start.AddDate(0, 0, i),
			Open: c - step/2, High: c + 1, Low: c - 1, Close: c,
			Volume: 1000,
		}
	}
	return bars
}

func TestStochasticSeries_Alignment(t *testing.T) {
	bars := trendBars(100, 1, 30)
	k, d := StochasticSeries(bars, 14, 3)
	if len(k) != 30 || len(d) != 30 {
		t.Fatalf("expected aligned outputs, got %d/%d", len(k), len(d))
	}
	if k[12] != nil {
		t.Error("expected nil %K before window fills")
	}
	if k[13] == nil {
		t.Error("expected %K at index 13")
	}
	if d[14] != nil {
		t.Error("expected nil %D before smoothing window fills")
	}
	if d[15] == nil {
		t.Error("expected %D at index 15")
	}
}

func TestStochasticSeries_RisingCloseNearHigh(t *testing.T) {
	bars := trendBars(100, 1, 30)
	k, _ := StochasticSeries(bars, 14, 3)
	got := *k[len(k)-1]
	if got < 80 {
		t.Errorf("expected %%K near the top of the range for a rising series, got %.2f", got)
	}
}

func TestStochasticSeries_FlatRangeNeutral(t *testing.T) {
	bars := flatBars(100, 30)
	k, d := StochasticSeries(bars, 14, 3)
	if got := *k[len(k)-1]; got != 50 {
		t.Errorf("expected neutral 50 for flat range, got %.2f", got)
	}
	if got := *d[len(d)-1]; got != 50 {
		t.Errorf("expected neutral %%D 50 for flat range, got %.2f", got)
	}
}

func TestWilliamsRSeries_Bounds(t *testing.T) {
	up := trendBars(100, 1, 30)
	wr := WilliamsRSeries(up, 14)
	got := *wr[len(wr)-1]
	if got < -100 || got > 0 {
		t.Fatalf("Williams %%R %.2f out of [-100,0]", got)
	}
	if got < -30 {
		t.Errorf("expected Williams %%R near 0 for a rising series, got %.2f", got)
	}

	down := trendBars(200, -1, 30)
	wr = WilliamsRSeries(down, 14)
	if got := *wr[len(wr)-1]; got > -70 {
		t.Errorf("expected Williams %%R near -100 for a falling series, got %.2f", got)
	}
}

func TestWilliamsRSeries_FlatIsNeutral(t *testing.T) {
	wr := WilliamsRSeries(flatBars(100, 20), 14)
	if got := *wr[len(wr)-1]; got != -50 {
		t.Errorf("expected -50 for flat range, got %.2f", got)
	}
}

func TestCCISeries_FlatIsZero(t *testing.T) {
	cci := CCISeries(flatBars(100, 30), 20)
	if got := *cci[len(cci)-1]; got != 0 {
		t.Errorf("expected 0 for zero deviation, got %.2f", got)
	}
}

func TestCCISeries_SignFollowsTrend(t *testing.T) {
	up := CCISeries(trendBars(100, 1, 40), 20)
	if got := *up[len(up)-1]; got <= 0 {
		t.Errorf("expected positive CCI for rising series, got %.2f", got)
	}
	down := CCISeries(trendBars(200, -1, 40), 20)
	if got := *down[len(down)-1]; got >= 0 {
		t.Errorf("expected negative CCI for falling series, got %.2f", got)
	}
}
