package server

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"StockSentinel/internal/analysis"
	"StockSentinel/internal/collector"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"source": s.collector.Fetcher.Name(),
	})
}

// handleAnalyze runs the full analysis for a symbol over the requested
// period (default 1y).
func (s *Server) handleAnalyze(c *gin.Context) {
	symbol := strings.ToUpper(strings.TrimSpace(c.Param("symbol")))
	period := c.DefaultQuery("period", "1y")

	series, err := s.collector.GetSeries(symbol, period)
	if err != nil {
		s.writeError(c, symbol, err)
		return
	}

	result, err := analysis.Analyze(series, s.analysis)
	if err != nil {
		s.writeError(c, symbol, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// handleChartData returns the per-bar price and indicator series used by
// charting frontends.
func (s *Server) handleChartData(c *gin.Context) {
	symbol := strings.ToUpper(strings.TrimSpace(c.Param("symbol")))
	period := c.DefaultQuery("period", "1y")

	series, err := s.collector.GetSeries(symbol, period)
	if err != nil {
		s.writeError(c, symbol, err)
		return
	}

	points, err := analysis.ChartSeries(series, s.analysis)
	if err != nil {
		s.writeError(c, symbol, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"symbol": symbol,
		"points": points,
	})
}

// writeError maps domain errors onto HTTP status codes.
func (s *Server) writeError(c *gin.Context, symbol string, err error) {
	switch {
	case errors.Is(err, collector.ErrBadPeriod):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, collector.ErrNoData), errors.Is(err, analysis.ErrInvalidSeries):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		log.Printf("[ERROR] request for %s failed: %v", symbol, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream data source unavailable"})
	}
}
