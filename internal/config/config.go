package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// AnalysisConfig holds every tunable of the analysis engine. It is passed
// into Analyze by value so concurrent requests with different settings
// cannot interfere.
type AnalysisConfig struct {
	MinBars int `yaml:"min_bars"`

	RSIWindow     int     `yaml:"rsi_window"`
	RSIOverbought float64 `yaml:"rsi_overbought"`
	RSIOversold   float64 `yaml:"rsi_oversold"`

	MACDFast   int `yaml:"macd_fast"`
	MACDSlow   int `yaml:"macd_slow"`
	MACDSignal int `yaml:"macd_signal"`

	BBWindow    int     `yaml:"bb_window"`
	BBStdDev    float64 `yaml:"bb_std"`
	BBLowerZone float64 `yaml:"bb_lower_zone"`
	BBUpperZone float64 `yaml:"bb_upper_zone"`

	StochKWindow    int     `yaml:"stoch_k"`
	StochDWindow    int     `yaml:"stoch_d"`
	StochOversold   float64 `yaml:"stoch_oversold"`
	StochOverbought float64 `yaml:"stoch_overbought"`

	WilliamsWindow     int     `yaml:"williams_window"`
	WilliamsOversold   float64 `yaml:"williams_oversold"`
	WilliamsOverbought float64 `yaml:"williams_overbought"`

	ATRWindow int `yaml:"atr_window"`

	CCIWindow     int     `yaml:"cci_window"`
	CCIOversold   float64 `yaml:"cci_oversold"`
	CCIOverbought float64 `yaml:"cci_overbought"`

	VolatilityWindow int `yaml:"volatility_window"`

	SMAFast   int `yaml:"sma_fast"`
	SMAShort  int `yaml:"sma_short"`
	SMAMedium int `yaml:"sma_medium"`
	SMALong   int `yaml:"sma_long"`

	// Trend classification: margin band around the horizon MA (percent) and
	// the momentum lookback per horizon.
	TrendMarginPct float64 `yaml:"trend_margin_pct"`
	MomentumShort  int     `yaml:"momentum_short"`
	MomentumMedium int     `yaml:"momentum_medium"`
	MomentumLong   int     `yaml:"momentum_long"`

	// Rule weights for the signal generator.
	WeightRSI         float64 `yaml:"weight_rsi"`
	WeightMACDCross   float64 `yaml:"weight_macd_cross"`
	WeightBB          float64 `yaml:"weight_bb"`
	WeightStoch       float64 `yaml:"weight_stoch"`
	WeightWilliams    float64 `yaml:"weight_williams"`
	WeightCCI         float64 `yaml:"weight_cci"`
	WeightSMACross    float64 `yaml:"weight_sma_cross"`
	WeightGoldenCross float64 `yaml:"weight_golden_cross"`
	WeightTrendAlign  float64 `yaml:"weight_trend_align"`

	// Score-to-signal mapping.
	NeutralBand   float64 `yaml:"neutral_band"`   // |score| below this is HOLD
	ModerateScore float64 `yaml:"moderate_score"` // |score| at or above is MODERATE
	StrongScore   float64 `yaml:"strong_score"`   // |score| at or above is STRONG
	MaxScore      float64 `yaml:"max_score"`      // confidence normalization cap

	// Risk model.
	ATRStopMultiple   float64 `yaml:"atr_stop_multiple"`
	ATRTargetMultiple float64 `yaml:"atr_target_multiple"`
	StopFallbackPct   float64 `yaml:"stop_fallback_pct"`
	TargetFallbackPct float64 `yaml:"target_fallback_pct"`
	AccountBalance    float64 `yaml:"account_balance"`
	RiskPerTrade      float64 `yaml:"risk_per_trade"`
	MaxPositionPct    float64 `yaml:"max_position_pct"`

	SupportResistanceWindow int `yaml:"support_resistance_window"`

	// SignalHistoryBars limits the history to the trailing N bars; 0 keeps
	// every evaluable bar.
	SignalHistoryBars int `yaml:"signal_history_bars"`
}

// WatchConfig configures the scheduled watchlist scan.
type WatchConfig struct {
	Symbols     []string `yaml:"symbols"`
	Cron        string   `yaml:"cron"`
	Period      string   `yaml:"period"`
	MinStrength string   `yaml:"min_strength"`
}

// Config holds all application configuration.
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	DataSource struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
	} `yaml:"data_source"`
	Cache struct {
		SQLitePath string `yaml:"sqlite_path"`
		TTLMinutes int    `yaml:"ttl_minutes"`
	} `yaml:"cache"`
	Watch WatchConfig `yaml:"watch"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Proxy    string         `yaml:"proxy"`
	Analysis AnalysisConfig `yaml:"analysis"`
}

// DefaultAnalysis returns the default engine tuning.
func DefaultAnalysis() AnalysisConfig {
	return AnalysisConfig{
		MinBars: 60,

		RSIWindow:     14,
		RSIOverbought: 70,
		RSIOversold:   30,

		MACDFast:   12,
		MACDSlow:   26,
		MACDSignal: 9,

		BBWindow:    20,
		BBStdDev:    2.0,
		BBLowerZone: 0.1,
		BBUpperZone: 0.9,

		StochKWindow:    14,
		StochDWindow:    3,
		StochOversold:   20,
		StochOverbought: 80,

		WilliamsWindow:     14,
		WilliamsOversold:   -80,
		WilliamsOverbought: -20,

		ATRWindow: 14,

		CCIWindow:     20,
		CCIOversold:   -100,
		CCIOverbought: 100,

		VolatilityWindow: 20,

		SMAFast:   10,
		SMAShort:  20,
		SMAMedium: 50,
		SMALong:   200,

		TrendMarginPct: 0.5,
		MomentumShort:  10,
		MomentumMedium: 30,
		MomentumLong:   100,

		WeightRSI:         2,
		WeightMACDCross:   3,
		WeightBB:          2,
		WeightStoch:       2,
		WeightWilliams:    1,
		WeightCCI:         1,
		WeightSMACross:    1,
		WeightGoldenCross: 4,
		WeightTrendAlign:  1,

		NeutralBand:   2,
		ModerateScore: 4,
		StrongScore:   6,
		MaxScore:      8,

		ATRStopMultiple:   2.0,
		ATRTargetMultiple: 3.0,
		StopFallbackPct:   0.02,
		TargetFallbackPct: 0.03,
		AccountBalance:    100000,
		RiskPerTrade:      0.02,
		MaxPositionPct:    0.10,

		SupportResistanceWindow: 20,
		SignalHistoryBars:       0,
	}
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{Analysis: DefaultAnalysis()}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("DATA_SOURCE_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("DATA_SOURCE_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Cache.SQLitePath = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("WATCH_CRON"); v != "" {
		cfg.Watch.Cron = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Cache.TTLMinutes == 0 {
		cfg.Cache.TTLMinutes = 60
	}
	if cfg.Watch.Cron == "" {
		cfg.Watch.Cron = "0 0 22 * * 1-5"
	}
	if cfg.Watch.Period == "" {
		cfg.Watch.Period = "1y"
	}
	if cfg.Watch.MinStrength == "" {
		cfg.Watch.MinStrength = "STRONG"
	}
	cfg.Watch.MinStrength = strings.ToUpper(strings.TrimSpace(cfg.Watch.MinStrength))

	return cfg, nil
}

// Validate checks that all required fields are set and consistent.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if len(c.Watch.Symbols) > 0 {
		if c.Telegram.BotToken == "" {
			return fmt.Errorf("telegram.bot_token is required when watch.symbols is set")
		}
		if c.Telegram.ChatID == "" {
			return fmt.Errorf("telegram.chat_id is required when watch.symbols is set")
		}
		switch c.Watch.MinStrength {
		case "STRONG", "MODERATE", "WEAK":
		default:
			return fmt.Errorf("watch.min_strength must be STRONG, MODERATE or WEAK, got %q", c.Watch.MinStrength)
		}
	}
	return c.Analysis.Validate()
}

// Validate checks the engine tuning for internal consistency.
func (a AnalysisConfig) Validate() error {
	positive := map[string]int{
		"rsi_window":        a.RSIWindow,
		"macd_fast":         a.MACDFast,
		"macd_slow":         a.MACDSlow,
		"macd_signal":       a.MACDSignal,
		"bb_window":         a.BBWindow,
		"stoch_k":           a.StochKWindow,
		"stoch_d":           a.StochDWindow,
		"williams_window":   a.WilliamsWindow,
		"atr_window":        a.ATRWindow,
		"cci_window":        a.CCIWindow,
		"volatility_window": a.VolatilityWindow,
		"sma_short":         a.SMAShort,
		"sma_medium":        a.SMAMedium,
	}
	for name, v := range positive {
		if v <= 0 {
			return fmt.Errorf("analysis.%s must be positive", name)
		}
	}
	if a.MACDFast >= a.MACDSlow {
		return fmt.Errorf("analysis.macd_fast must be less than macd_slow")
	}
	if a.MinBars < a.Warmup()+1 {
		return fmt.Errorf("analysis.min_bars must cover the longest core lookback (need >= %d)", a.Warmup()+1)
	}
	if a.NeutralBand <= 0 || a.ModerateScore < a.NeutralBand || a.StrongScore < a.ModerateScore {
		return fmt.Errorf("analysis score thresholds must satisfy 0 < neutral_band <= moderate_score <= strong_score")
	}
	if a.MaxScore < a.StrongScore {
		return fmt.Errorf("analysis.max_score must be at least strong_score")
	}
	if a.RiskPerTrade <= 0 || a.RiskPerTrade >= 1 {
		return fmt.Errorf("analysis.risk_per_trade must be in (0,1)")
	}
	return nil
}

// Warmup returns the largest index at which any core indicator can still be
// unpopulated. Every bar after this index carries the full core set; the
// long SMA is deliberately excluded since it only gates optional rules.
func (a AnalysisConfig) Warmup() int {
	warmup := a.MACDSlow + a.MACDSignal - 2 // MACD signal line
	for _, w := range []int{
		a.RSIWindow,
		a.BBWindow - 1,
		a.StochKWindow + a.StochDWindow - 2,
		a.WilliamsWindow - 1,
		a.ATRWindow,
		a.CCIWindow - 1,
		a.VolatilityWindow,
		a.SMAShort - 1,
		a.SMAMedium - 1,
	} {
		if w > warmup {
			warmup = w
		}
	}
	return warmup
}
