package watcher

import (
	"context"
	"testing"
	"time"

	"StockSentinel/internal/collector"
	"StockSentinel/internal/config"
	"StockSentinel/internal/model"
	"StockSentinel/internal/store"
)

func TestStrengthRank_Ordering(t *testing.T) {
	if strengthRank(model.StrengthStrong) <= strengthRank(model.StrengthModerate) {
		t.Error("STRONG must outrank MODERATE")
	}
	if strengthRank(model.StrengthModerate) <= strengthRank(model.StrengthWeak) {
		t.Error("MODERATE must outrank WEAK")
	}
	if strengthRank("") != 0 {
		t.Error("unknown strength must rank lowest")
	}
}

func TestWatcher_ScanWithoutNotifier(t *testing.T) {
	col := collector.NewCollector(&collector.MockFetcher{Price: 150}, store.NewNoopStore(), time.Hour)
	w := NewWatcher(context.Background(), col, nil, config.WatchConfig{
		Symbols:     []string{"AAPL", "MSFT"},
		Cron:        "0 0 22 * * 1-5",
		Period:      "1y",
		MinStrength: "STRONG",
	}, config.DefaultAnalysis())

	// Must complete without a notifier configured.
	w.RunNow()
}

func TestWatcher_AnalyzeOne(t *testing.T) {
	col := collector.NewCollector(&collector.MockFetcher{Price: 150}, store.NewNoopStore(), time.Hour)
	w := NewWatcher(context.Background(), col, nil, config.WatchConfig{
		Symbols: []string{"AAPL"},
		Period:  "1y",
	}, config.DefaultAnalysis())

	result, err := w.analyzeOne("AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.LatestSignal == nil {
		t.Fatal("expected a latest signal")
	}
}

func TestWatcher_RegisterBadCron(t *testing.T) {
	col := collector.NewCollector(&collector.MockFetcher{Price: 150}, store.NewNoopStore(), time.Hour)
	w := NewWatcher(context.Background(), col, nil, config.WatchConfig{
		Symbols: []string{"AAPL"},
		Cron:    "not a cron expression",
	}, config.DefaultAnalysis())

	if err := w.Register(); err == nil {
		t.Error("expected error for malformed cron expression")
	}
}
