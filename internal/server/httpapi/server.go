// Package httpapi exposes the bookshelf operations as JSON POST endpoints
// over gin, plus an unauthenticated health check.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/bookshelf/internal/logging"
	"github.com/dmitrijs2005/bookshelf/internal/server/transport"
)

const shutdownTimeout = 5 * time.Second

// Pinger reports whether the record store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Server struct {
	address   string
	svc       transport.Services
	db        Pinger
	logger    logging.Logger
	jwtSecret []byte
}

func NewServer(a string, l logging.Logger, svc transport.Services, db Pinger, secretKey string) *Server {
	return &Server{
		address:   a,
		svc:       svc,
		db:        db,
		logger:    l.With("module", "http_server"),
		jwtSecret: []byte(secretKey),
	}
}

// Handler builds the gin engine with every route registered.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/manage/health", s.health)

	api := r.Group("/", s.authMiddleware())
	api.POST("/get-books", s.getBooks)
	api.POST("/get-books-count", s.getBooksCount)
	api.POST("/check-exists", s.checkExists)
	api.POST("/get-book", s.getBook)
	api.POST("/update-books", s.updateBooks)
	api.POST("/set-read-flag", s.setReadFlag)
	api.POST("/delete-book", s.deleteBook)
	api.POST("/lend-book", s.lendBook)
	api.POST("/return-book", s.returnBook)
	api.POST("/get-lend-book", s.getLendBook)
	api.POST("/get-rentals", s.getRentals)
	api.POST("/search-book", s.searchBook)
	api.POST("/export", s.export)

	return r
}

func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) health(c *gin.Context) {
	if s.db != nil {
		if err := s.db.PingContext(c.Request.Context()); err != nil {
			s.logger.Warn(c.Request.Context(), "health check failed", "error", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "database unreachable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
