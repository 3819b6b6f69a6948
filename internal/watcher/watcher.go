// Package watcher periodically re-analyzes a configured watchlist and pushes
// Telegram alerts for signals that cross the alert threshold.
package watcher

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"StockSentinel/internal/analysis"
	"StockSentinel/internal/collector"
	"StockSentinel/internal/config"
	"StockSentinel/internal/model"
	"StockSentinel/internal/notifier"
)

// Watcher runs the watchlist scan on a cron schedule.
type Watcher struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Notifier  *notifier.TelegramNotifier
	Cfg       config.WatchConfig
	Analysis  config.AnalysisConfig
	Ctx       context.Context
}

// NewWatcher creates a new Watcher. The notifier may be nil, in which case
// scans still run but alerts are only logged.
func NewWatcher(ctx context.Context, col *collector.Collector, tn *notifier.TelegramNotifier, watchCfg config.WatchConfig, analysisCfg config.AnalysisConfig) *Watcher {
	return &Watcher{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Notifier:  tn,
		Cfg:       watchCfg,
		Analysis:  analysisCfg,
		Ctx:       ctx,
	}
}

// Register registers the scan task on the configured cron expression.
func (w *Watcher) Register() error {
	if _, err := w.Cron.AddFunc(w.Cfg.Cron, w.scanTask); err != nil {
		return fmt.Errorf("register watch task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (w *Watcher) Start() {
	w.Cron.Start()
	log.Printf("[INFO] watcher started, %d symbols on %q", len(w.Cfg.Symbols), w.Cfg.Cron)
}

// Stop stops the cron scheduler gracefully.
func (w *Watcher) Stop() {
	w.Cron.Stop()
	log.Println("[INFO] watcher stopped")
}

// RunNow executes one scan immediately (for manual trigger on startup).
func (w *Watcher) RunNow() {
	w.scanTask()
}

func (w *Watcher) scanTask() {
	log.Println("[INFO] running watchlist scan")
	var results []*model.AnalysisResult
	var failed []string

	for _, symbol := range w.Cfg.Symbols {
		result, err := w.analyzeOne(symbol)
		if err != nil {
			log.Printf("[ERROR] watch %s: %v", symbol, err)
			failed = append(failed, symbol)
			continue
		}
		results = append(results, result)

		sig := result.LatestSignal
		if sig.Type != model.SignalHold && strengthRank(sig.Strength) >= strengthRank(model.SignalStrength(w.Cfg.MinStrength)) {
			log.Printf("[INFO] alert for %s: %s %s (score %+.0f)", symbol, sig.Type, sig.Strength, sig.Score)
			w.trySend(notifier.FormatSignalAlert(result))
		}
	}

	if len(results) > 0 || len(failed) > 0 {
		w.trySend(notifier.FormatWatchSummary(results, failed))
	}
}

func (w *Watcher) analyzeOne(symbol string) (*model.AnalysisResult, error) {
	series, err := w.Collector.GetSeries(symbol, w.Cfg.Period)
	if err != nil {
		return nil, err
	}
	return analysis.Analyze(series, w.Analysis)
}

func (w *Watcher) trySend(text string) {
	if w.Notifier == nil {
		return
	}
	if err := w.Notifier.SendWithRetry(w.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}

// strengthRank orders signal strengths for threshold comparison.
func strengthRank(s model.SignalStrength) int {
	switch s {
	case model.StrengthStrong:
		return 3
	case model.StrengthModerate:
		return 2
	case model.StrengthWeak:
		return 1
	}
	return 0
}
