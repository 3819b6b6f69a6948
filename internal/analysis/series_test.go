package analysis

import (
	"errors"
	"testing"

	"StockSentinel/internal/config"
	"StockSentinel/internal/model"
)

func TestValidateSeries(t *testing.T) {
	cfg := config.DefaultAnalysis()

	valid := func() []model.OHLCV { return synthBars(80) }

	tests := []struct {
		name   string
		mutate func(bars []model.OHLCV) []model.OHLCV
	}{
		{"too short", func(bars []model.OHLCV) []model.OHLCV {
			return bars[:cfg.MinBars-1]
		}},
		{"non-positive close", func(bars []model.OHLCV) []model.OHLCV {
			bars[40].Close = 0
			return bars
		}},
		{"negative open", func(bars []model.OHLCV) []model.OHLCV {
			bars[10].Open = -5
			return bars
		}},
		{"high below low", func(bars []model.OHLCV) []model.OHLCV {
			bars[20].High, bars[20].Low = bars[20].Low, bars[20].High
			return bars
		}},
		{"negative volume", func(bars []model.OHLCV) []model.OHLCV {
			bars[30].Volume = -1
			return bars
		}},
		{"duplicate date", func(bars []model.OHLCV) []model.OHLCV {
			bars[51].Time = bars[50].Time
			return bars
		}},
		{"descending date", func(bars []model.OHLCV) []model.OHLCV {
			bars[61].Time = bars[60].Time.AddDate(0, 0, -3)
			return bars
		}},
	}
	for _, tt := range tests {
		series := &model.PriceSeries{Symbol: "TEST", Bars: tt.mutate(valid())}
		err := validateSeries(series, cfg)
		if !errors.Is(err, ErrInvalidSeries) {
			t.Errorf("%s: expected ErrInvalidSeries, got %v", tt.name, err)
		}
	}

	if err := validateSeries(&model.PriceSeries{Symbol: "TEST", Bars: valid()}, cfg); err != nil {
		t.Errorf("valid series rejected: %v", err)
	}
}
