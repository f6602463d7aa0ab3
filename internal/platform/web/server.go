// Package web serves the game to browsers: a canvas client, a websocket
// session per tab, and a small JSON API over the score history.
package web

import (
	"context"
	"embed"
	"errors"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/trash-toss/internal/games/trashtoss"
	"github.com/vovakirdan/trash-toss/internal/storage"
)

//go:embed static/index.html
var staticFS embed.FS

// Defaults for the web server.
const (
	DefaultAddress     = ":8080"
	DefaultTickRate    = 60
	defaultScoresLimit = 10
	maxScoresLimit     = 100
)

// ScoreStore records finished runs and lists the best ones.
// *storage.Store implements it.
type ScoreStore interface {
	SaveScore(gameID string, score, binned int) (int64, error)
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
}

var _ ScoreStore = (*storage.Store)(nil)

// Config holds web server configuration.
type Config struct {
	Address  string
	TickRate int
	Seed     int64 // 0 seeds each session from the clock
}

// DefaultConfig returns the default web server configuration.
func DefaultConfig() Config {
	return Config{
		Address:  DefaultAddress,
		TickRate: DefaultTickRate,
	}
}

// Server is the browser host.
type Server struct {
	cfg      Config
	store    ScoreStore
	logger   *log.Logger
	router   *gin.Engine
	upgrader websocket.Upgrader
	newGame  func() *trashtoss.Game
	httpSrv  *http.Server
}

// NewServer creates a web server. A nil store disables score history.
func NewServer(cfg Config, store ScoreStore, logger *log.Logger) *Server {
	if cfg.Address == "" {
		cfg.Address = DefaultAddress
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = DefaultTickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Server{
		cfg:    cfg,
		store:  store,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				return true // same client is served from here
			},
		},
		newGame: func() *trashtoss.Game {
			return trashtoss.New(trashtoss.WithLogger(logger))
		},
	}
	s.router = s.routes()
	return s
}

// Handler returns the HTTP handler serving all routes.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/", s.handleIndex)
	r.GET("/ws", s.handleWebSocket)
	r.GET("/healthz", s.handleHealth)

	api := r.Group("/api")
	{
		api.GET("/scores", s.handleScores)
	}
	return r
}

// requestLogger logs each request except websocket upgrades, which log
// their own session lifetime.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if c.FullPath() == "/ws" {
			return
		}
		s.logger.Debug("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

func (s *Server) handleIndex(c *gin.Context) {
	page, err := staticFS.ReadFile("static/index.html")
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleScores(c *gin.Context) {
	limit := defaultScoresLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid-limit"})
			return
		}
		limit = min(n, maxScoresLimit)
	}

	if s.store == nil {
		c.JSON(http.StatusOK, gin.H{"scores": []storage.ScoreEntry{}})
		return
	}

	scores, err := s.store.TopScores(trashtoss.GameID, limit)
	if err != nil {
		s.logger.Error("could not load scores", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "scores-unavailable"})
		return
	}
	if scores == nil {
		scores = []storage.ScoreEntry{}
	}
	c.JSON(http.StatusOK, gin.H{"scores": scores})
}

func (s *Server) handleWebSocket(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "remote", c.ClientIP(), "err", err)
		return
	}

	sess := newSession(conn, s.newGame(), s.cfg, s.store, s.logger.With("remote", c.ClientIP()))
	sess.run(c.Request.Context())
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.httpSrv = &http.Server{
		Addr:              s.cfg.Address,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		// Hijacked websocket connections are not closed by Shutdown; their
		// sessions stop when this context is cancelled.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting web server", "address", s.cfg.Address)
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("stopping web server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.httpSrv.Shutdown(shutdownCtx)
}
