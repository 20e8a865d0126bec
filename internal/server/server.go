// Package server exposes a word graph over a JSON HTTP API.
//
// Routes (all GET unless noted):
//
//	/v1/health                  liveness plus graph size
//	/v1/graph                   word/edge counts and the edge list
//	/v1/graph.dot               Graphviz DOT source
//	/v1/bridge?from=&to=        bridge words
//	/v1/generate       (POST)   bridge-word augmentation of {"text": ...}
//	/v1/path?from=[&to=]        one shortest path, or all from one word
//	/v1/rank[?word=]            one PageRank score, or the ranked list
//	/v1/walk                    one random walk
//	/v1/reach?word=[&depth=]    BFS layers from one word
//	/metrics                    Prometheus exposition
//
// The graph is an immutable snapshot held in an atomic pointer; Swap
// replaces it without blocking in-flight requests.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"golang.org/x/time/rate"

	"github.com/katalvlaran/textgraph/core"
	"github.com/katalvlaran/textgraph/dot"
	"github.com/katalvlaran/textgraph/pagerank"
)

// ErrNilGraph indicates New or Swap received a nil graph.
var ErrNilGraph = errors.New("server: graph is nil")

// ShutdownTimeout bounds graceful shutdown in Run.
const ShutdownTimeout = 5 * time.Second

// Options configures a Server.
type Options struct {
	// Seed is the parent seed for per-request random streams (rng.Derive).
	Seed int64

	// PageRank options applied to every rank computation.
	PageRank []pagerank.Option

	// DOT controls /v1/graph.dot output.
	DOT dot.Options

	// RateLimit caps /v1 requests per second across all clients; 0 disables.
	RateLimit float64

	// Burst is the limiter's bucket size; values below 1 are treated as 1.
	Burst int
}

// Server serves one graph snapshot at a time.
type Server struct {
	graph  atomic.Pointer[core.Graph]
	reqs   atomic.Uint64
	opts   Options
	engine *gin.Engine

	rankMu    sync.Mutex
	rankGraph *core.Graph
	rankRes   *pagerank.Result
}

// New builds a Server around g.
func New(g *core.Graph, opts Options) (*Server, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	s := &Server{opts: opts}
	s.store(g)

	engine := gin.New()
	engine.Use(gin.Recovery(), otelgin.Middleware("textgraph"), requestIDMiddleware(), metricsMiddleware())
	s.routes(engine)
	s.engine = engine

	return s, nil
}

func (s *Server) routes(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")
	if s.opts.RateLimit > 0 {
		v1.Use(rateLimitMiddleware(rate.NewLimiter(rate.Limit(s.opts.RateLimit), max(s.opts.Burst, 1))))
	}
	v1.GET("/health", s.handleHealth)
	v1.GET("/graph", s.handleGraph)
	v1.GET("/graph.dot", s.handleDOT)
	v1.GET("/bridge", s.handleBridge)
	v1.POST("/generate", s.handleGenerate)
	v1.GET("/path", s.handlePath)
	v1.GET("/rank", s.handleRank)
	v1.GET("/walk", s.handleWalk)
	v1.GET("/reach", s.handleReach)
}

// Handler returns the HTTP handler, for tests and custom servers.
func (s *Server) Handler() http.Handler { return s.engine }

// Graph returns the current snapshot.
func (s *Server) Graph() *core.Graph { return s.graph.Load() }

// Swap replaces the served graph. A nil graph is rejected.
func (s *Server) Swap(g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	s.store(g)
	graphSwaps.Inc()
	slog.Info("graph swapped", slog.Int("words", g.Len()), slog.Int("edges", g.EdgeCount()))

	return nil
}

func (s *Server) store(g *core.Graph) {
	s.graph.Store(g)
	graphWords.Set(float64(g.Len()))
	graphEdges.Set(float64(g.EdgeCount()))
}

// ranks returns the PageRank result for g, computing it at most once per snapshot.
func (s *Server) ranks(ctx context.Context, g *core.Graph) (*pagerank.Result, error) {
	s.rankMu.Lock()
	defer s.rankMu.Unlock()

	if s.rankGraph == g && s.rankRes != nil {
		return s.rankRes, nil
	}
	res, err := pagerank.Compute(ctx, g, s.opts.PageRank...)
	if err != nil {
		return nil, err
	}
	s.rankGraph, s.rankRes = g, res

	return res, nil
}

// Run listens on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server listening", slog.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	slog.Info("http server stopped")

	return nil
}
