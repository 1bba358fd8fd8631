// Package api exposes the HTTP surface: batch ingestion, record retrieval,
// and analysis job management.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/subhashitt/LogPiolt/pkg/config"
	"github.com/subhashitt/LogPiolt/pkg/database"
	"github.com/subhashitt/LogPiolt/pkg/queue"
	"github.com/subhashitt/LogPiolt/pkg/services"
)

// Server is the HTTP API server.
type Server struct {
	engine          *gin.Engine
	httpServer      *http.Server
	dbClient        *database.Client
	batchService    *services.BatchService
	analysisService *services.AnalysisService
	workerPool      *queue.WorkerPool
	warnings        *services.SystemWarningsService
	maxIngestBytes  int64
}

// NewServer creates the API server and registers all routes.
// workerPool may be nil (health reports only the database then);
// warnings may be nil (health omits the advisory warnings list).
func NewServer(
	cfg *config.Config,
	dbClient *database.Client,
	batchService *services.BatchService,
	analysisService *services.AnalysisService,
	workerPool *queue.WorkerPool,
	warnings *services.SystemWarningsService,
) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestLogger())
	engine.Use(securityHeaders())

	s := &Server{
		engine:          engine,
		dbClient:        dbClient,
		batchService:    batchService,
		analysisService: analysisService,
		workerPool:      workerPool,
		warnings:        warnings,
		maxIngestBytes:  int64(cfg.MaxIngestBytes),
	}
	s.httpServer = &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.engine.GET("/health", s.healthHandler)

	v1 := s.engine.Group("/api/v1")
	{
		v1.POST("/batches", s.ingestBatchHandler)
		v1.GET("/batches", s.listBatchesHandler)
		v1.GET("/batches/:id", s.getBatchHandler)
		v1.GET("/batches/:id/records", s.getRecordsHandler)
		v1.POST("/batches/:id/analyze", s.submitAnalysisHandler)
		v1.GET("/batches/:id/analyses", s.listAnalysesHandler)
		v1.GET("/analyses/:id", s.getAnalysisHandler)
	}
}

// Handler returns the underlying handler, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start begins serving HTTP. Blocks until the listener fails or Shutdown
// is called.
func (s *Server) Start() error {
	slog.Info("HTTP server listening", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}
