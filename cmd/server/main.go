package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"StockSentinel/internal/collector"
	"StockSentinel/internal/config"
	"StockSentinel/internal/notifier"
	"StockSentinel/internal/server"
	"StockSentinel/internal/store"
	"StockSentinel/internal/watcher"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] StockSentinel starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher
	var fetcher collector.Fetcher
	if cfg.DataSource.BaseURL != "" {
		fetcher = collector.NewVsTraderFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init bar cache
	var barStore store.BarStore
	if cfg.Cache.SQLitePath != "" {
		ss, err := store.NewSQLiteStore(cfg.Cache.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite cache failed, using noop: %v", err)
			barStore = store.NewNoopStore()
		} else {
			barStore = ss
			defer ss.Close()
		}
	} else {
		barStore = store.NewNoopStore()
	}

	col := collector.NewCollector(fetcher, barStore, time.Duration(cfg.Cache.TTLMinutes)*time.Minute)

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Optional watchlist scanner with Telegram alerts
	if len(cfg.Watch.Symbols) > 0 {
		tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
		w := watcher.NewWatcher(ctx, col, tn, cfg.Watch, cfg.Analysis)
		if err := w.Register(); err != nil {
			log.Fatalf("[FATAL] register watch task: %v", err)
		}
		w.Start()
		defer w.Stop()

		if os.Getenv("RUN_ON_START") == "true" {
			log.Println("[INFO] RUN_ON_START enabled, executing watchlist scan now")
			go w.RunNow()
		}
	}

	// HTTP API
	srv := server.NewServer(cfg.Server.Addr, col, cfg.Analysis)
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	log.Println("[INFO] StockSentinel is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal or server failure
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigCh:
		log.Println("[INFO] shutdown signal received, stopping...")
	case err := <-errCh:
		if err != nil {
			log.Printf("[ERROR] HTTP server: %v", err)
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[ERROR] server shutdown: %v", err)
	}
	cancel()
	log.Println("[INFO] StockSentinel stopped")
}
