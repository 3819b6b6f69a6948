// Package analysis is the core engine: it turns an ordered daily bar
// series into indicators, trend labels, rule-based trading signals and a
// risk profile. Analyze is a pure function of its inputs — no clock, no
// randomness, no shared state — so identical series and configuration
// always produce identical results.
package analysis

import (
	"math"
	"time"

	"StockSentinel/internal/config"
	"StockSentinel/internal/model"
)

// Analyze runs the full pipeline over the series and assembles the
// aggregated result. Returns ErrInvalidSeries for malformed or insufficient
// input.
func Analyze(series *model.PriceSeries, cfg config.AnalysisConfig) (*model.AnalysisResult, error) {
	if err := validateSeries(series, cfg); err != nil {
		return nil, err
	}

	bars := series.Bars
	closes := series.Closes()
	last := len(bars) - 1

	ind := buildIndicators(bars, cfg)
	trend := classifyTrendAt(closes, ind, last, cfg)
	history, latest := generateSignals(bars, closes, ind, cfg)

	return &model.AnalysisResult{
		Symbol:              series.Symbol,
		Date:                bars[last].Time.UTC().Format("2006-01-02"),
		CurrentPrice:        closes[last],
		TechnicalIndicators: snapshot(bars, ind, cfg),
		TrendAnalysis:       trend,
		LatestSignal:        latest,
		SignalHistory:       history,
		SupportResistance:   supportResistance(bars, ind, cfg),
		RiskManagement:      riskMetrics(bars, closes, ind, latest, cfg),
		DataSummary:         dataSummary(bars),
	}, nil
}

// ChartSeries returns every bar merged with its aligned indicator values,
// nulls included, for front-end charting. This is the indicator engine's
// raw output, no additional computation.
func ChartSeries(series *model.PriceSeries, cfg config.AnalysisConfig) ([]model.ChartPoint, error) {
	if err := validateSeries(series, cfg); err != nil {
		return nil, err
	}

	bars := series.Bars
	ind := buildIndicators(bars, cfg)

	points := make([]model.ChartPoint, len(bars))
	for i, b := range bars {
		points[i] = model.ChartPoint{
			Date:       b.Time.UTC().Format(time.RFC3339),
			Open:       b.Open,
			High:       b.High,
			Low:        b.Low,
			Close:      b.Close,
			Volume:     b.Volume,
			SMA10:      ind.SMA10[i],
			SMA20:      ind.SMA20[i],
			SMA50:      ind.SMA50[i],
			BBUpper:    ind.BBUpper[i],
			BBLower:    ind.BBLower[i],
			RSI:        ind.RSI[i],
			MACD:       ind.MACD[i],
			MACDSignal: ind.MACDSignal[i],
			MACDHist:   ind.MACDHist[i],
		}
	}
	return points, nil
}

func dataSummary(bars []model.OHLCV) model.DataSummary {
	high := math.Inf(-1)
	low := math.Inf(1)
	for _, b := range bars {
		if b.High > high {
			high = b.High
		}
		if b.Low < low {
			low = b.Low
		}
	}
	return model.DataSummary{
		TotalRecords: len(bars),
		DateRange: model.DateRange{
			Start: bars[0].Time.UTC().Format("2006-01-02"),
			End:   bars[len(bars)-1].Time.UTC().Format("2006-01-02"),
		},
		PriceRange: model.PriceRange{
			High:    high,
			Low:     low,
			Current: bars[len(bars)-1].Close,
		},
	}
}
