package store

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"StockSentinel/internal/model"
)

// SQLiteStore caches daily bars in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteStore opens (or creates) the SQLite database and runs migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so API reads don't block watcher refreshes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite bar cache opened: %s", dbPath)
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS bars (
			symbol    TEXT NOT NULL,
			ts        INTEGER NOT NULL,
			open      REAL NOT NULL,
			high      REAL NOT NULL,
			low       REAL NOT NULL,
			close     REAL NOT NULL,
			volume    REAL NOT NULL,
			PRIMARY KEY (symbol, ts)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_bars_symbol_ts ON bars(symbol, ts)`,

		`CREATE TABLE IF NOT EXISTS sync_state (
			symbol        TEXT PRIMARY KEY,
			fetched_at    INTEGER NOT NULL,
			coverage_days INTEGER NOT NULL
		)`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:40], err)
		}
	}
	return nil
}

// Save replaces the cached bars for the series' symbol inside one
// transaction and records the fetch time and coverage.
func (s *SQLiteStore) Save(series *model.PriceSeries, coverageDays int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO bars
		(symbol, ts, open, high, low, close, volume) VALUES (?,?,?,?,?,?,?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, b := range series.Bars {
		if _, err := stmt.Exec(series.Symbol, b.Time.Unix(), b.Open, b.High, b.Low, b.Close, b.Volume); err != nil {
			return fmt.Errorf("insert bar: %w", err)
		}
	}

	fetchedAt := series.FetchedAt
	if fetchedAt.IsZero() {
		fetchedAt = time.Now()
	}
	if _, err := tx.Exec(`INSERT OR REPLACE INTO sync_state (symbol, fetched_at, coverage_days) VALUES (?,?,?)`,
		series.Symbol, fetchedAt.Unix(), coverageDays); err != nil {
		return fmt.Errorf("update sync state: %w", err)
	}

	return tx.Commit()
}

// Load returns the most recent limit bars for a symbol, oldest first, or
// nil when nothing fresh enough is cached.
func (s *SQLiteStore) Load(symbol string, limit int, maxAge time.Duration) (*model.PriceSeries, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var fetchedUnix int64
	var coverage int
	err := s.db.QueryRow(`SELECT fetched_at, coverage_days FROM sync_state WHERE symbol = ?`, symbol).Scan(&fetchedUnix, &coverage)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query sync state: %w", err)
	}
	fetchedAt := time.Unix(fetchedUnix, 0)
	if time.Since(fetchedAt) > maxAge || coverage < limit {
		return nil, nil
	}

	rows, err := s.db.Query(`SELECT ts, open, high, low, close, volume
		FROM bars WHERE symbol = ? ORDER BY ts DESC LIMIT ?`, symbol, limit)
	if err != nil {
		return nil, fmt.Errorf("query bars: %w", err)
	}
	defer rows.Close()

	var bars []model.OHLCV
	for rows.Next() {
		var ts int64
		var b model.OHLCV
		if err := rows.Scan(&ts, &b.Open, &b.High, &b.Low, &b.Close, &b.Volume); err != nil {
			return nil, fmt.Errorf("scan bar: %w", err)
		}
		b.Time = time.Unix(ts, 0)
		bars = append(bars, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bars: %w", err)
	}
	if len(bars) == 0 {
		return nil, nil
	}

	// Rows came newest first; restore chronological order.
	for i, j := 0, len(bars)-1; i < j; i, j = i+1, j-1 {
		bars[i], bars[j] = bars[j], bars[i]
	}

	return &model.PriceSeries{Symbol: symbol, Bars: bars, FetchedAt: fetchedAt}, nil
}

func (s *SQLiteStore) Close() error {
	log.Println("[INFO] closing sqlite bar cache")
	return s.db.Close()
}
