// Package api exposes the entry queries as a read-only JSON API for the
// rendering layer.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"til_mirror/internal/domain"
)

const requestIDHeader = "X-Request-ID"

// Querier is the data-access surface the API serves.
type Querier interface {
	ListEntries(ctx context.Context, params domain.ListParams) (*domain.EntryPage, error)
	ListCategoryEntries(ctx context.Context, slug, cursor string, pageSize int) (*domain.EntryPage, error)
	GetEntryBySlug(ctx context.Context, slug string) (*domain.EntryDetail, error)
}

type Server struct {
	querier Querier
	logger  *slog.Logger
	engine  *gin.Engine
}

func NewServer(querier Querier, logger *slog.Logger) *Server {
	s := &Server{
		querier: querier,
		logger:  logger.With("component", "api"),
	}
	s.engine = s.routes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.requestLogger())

	r.GET("/healthz", s.healthz)

	api := r.Group("/api")
	{
		api.GET("/entries", s.listEntries)
		api.GET("/entries/:slug", s.getEntry)
		api.GET("/categories", s.listCategories)
		api.GET("/categories/:slug/entries", s.listCategoryEntries)
	}

	return r
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)

		c.Next()

		s.logger.Info("http",
			"request_id", id,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("api listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.logger.Info("api shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
