// Package server exposes the analysis engine over HTTP. The handlers do no
// computation of their own: they resolve the series through the collector,
// call the engine and serialize the result.
package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"StockSentinel/internal/collector"
	"StockSentinel/internal/config"
)

// Server is the HTTP API server.
type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	collector  *collector.Collector
	analysis   config.AnalysisConfig
}

// NewServer builds the router with CORS open to any origin, mirroring the
// dashboard's needs.
func NewServer(addr string, col *collector.Collector, analysisCfg config.AnalysisConfig) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(), cors.Default())

	s := &Server{
		router:    router,
		collector: col,
		analysis:  analysisCfg,
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
	}

	router.GET("/health", s.handleHealth)
	router.GET("/analyze/:symbol", s.handleAnalyze)
	router.GET("/data/:symbol", s.handleChartData)

	return s
}

// Router exposes the gin engine for tests.
func (s *Server) Router() http.Handler { return s.router }

// Start blocks serving HTTP until the listener fails or is shut down.
func (s *Server) Start() error {
	log.Printf("[INFO] HTTP server listening on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("[INFO] HTTP server shutting down")
	return s.httpServer.Shutdown(ctx)
}

// requestLogger logs one line per request in the application's log format.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Printf("[INFO] %s %s -> %d (%s)",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start).Round(time.Millisecond))
	}
}
