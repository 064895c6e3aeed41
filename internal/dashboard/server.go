// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dashboard serves the interactive analytics view over HTTP: summary
// KPIs and the chart series (bar, trend, share, distribution), all filterable
// through shared query parameters. The loaded record set is read-only after
// startup; every request filters its own derived view.
package dashboard

import (
	_ "embed"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ahlawatsakshi6/ai-vs-human-content-analysis-dashboard/pkg/types"
)

//go:embed index.html
var indexPage []byte

// Server holds the immutable record set and the configured router.
type Server struct {
	records *types.RecordSet
	cfg     types.DashboardConfig
	log     *logrus.Logger
	engine  *gin.Engine
}

// New builds a server over an already-cleaned record set.
func New(rs *types.RecordSet, cfg types.DashboardConfig) *Server {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	s := &Server{records: rs, cfg: cfg, log: log}
	s.engine = s.buildRouter()
	return s
}

func (s *Server) buildRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/", s.handleIndex)
	r.GET("/healthz", s.handleHealth)

	api := r.Group("/api/v1")
	{
		api.GET("/summary", s.handleSummary)
		api.GET("/engagement/by-author", s.handleByAuthor)
		api.GET("/engagement/trend", s.handleTrend)
		api.GET("/engagement/share", s.handleShare)
		api.GET("/engagement/distribution", s.handleDistribution)
	}
	return r
}

// Router exposes the configured engine, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.engine
}

// Run serves until the listener fails.
func (s *Server) Run() error {
	addr := s.cfg.ListenAddr
	if addr == "" {
		addr = ":8080"
	}
	s.log.WithFields(logrus.Fields{
		"addr":  addr,
		"posts": s.records.Len(),
	}).Info("dashboard listening")
	return s.engine.Run(addr)
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		}).Info("request")
	}
}

func (s *Server) handleIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexPage)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "posts": s.records.Len()})
}
