// Package server serves the rendered homepage and its feature catalog over HTTP.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/windmill-labs/windmill-homepage/internal/site"
	"github.com/windmill-labs/windmill-homepage/pkg/health"
	"github.com/windmill-labs/windmill-homepage/pkg/logging"
	"github.com/windmill-labs/windmill-homepage/pkg/metrics"
	"github.com/windmill-labs/windmill-homepage/pkg/tracing"
)

// ErrNotReady is reported by the readiness check before the first snapshot.
var ErrNotReady = errors.New("homepage not rendered yet")

// Options configures a Server.
type Options struct {
	Addr      string
	StaticDir string
	Version   string
	Logger    logging.Logger
	Metrics   *metrics.Metrics
}

// Server serves the current homepage snapshot. Snapshots are swapped
// atomically; in-flight requests keep the one they started with.
type Server struct {
	opts     Options
	mux      *http.ServeMux
	snapshot atomic.Pointer[site.Snapshot]
	health   *health.Checker
	http     *http.Server
}

// New creates a server with the homepage routes registered.
func New(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = logging.NopLogger{}
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.NewMetrics("windmill_homepage")
	}

	s := &Server{
		opts:   opts,
		mux:    http.NewServeMux(),
		health: health.NewChecker(opts.Version),
	}

	s.http = &http.Server{
		Addr:              opts.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.health.AddCriticalCheck("homepage", s.checkSnapshot, time.Second)
	if opts.StaticDir != "" {
		s.health.AddCheck("static", health.DirCheck(opts.StaticDir), time.Second)
	}

	s.route("GET /{$}", "home", http.HandlerFunc(s.handleHome))
	s.route("GET /api/features", "features", http.HandlerFunc(s.handleFeatures))
	s.route("GET /healthz", "healthz", s.health.LivenessHandler())
	s.route("GET /readyz", "readyz", s.health.ReadinessHandler())
	s.route("GET /metrics", "metrics", opts.Metrics.Handler())
	if opts.StaticDir != "" {
		s.route("GET /static/", "static",
			http.StripPrefix("/static/", http.FileServer(http.Dir(opts.StaticDir))))
	}

	return s
}

// Handle registers an extra route, such as the dev reload socket.
func (s *Server) Handle(pattern, name string, h http.Handler) {
	s.route(pattern, name, h)
}

func (s *Server) route(pattern, name string, h http.Handler) {
	requests := s.opts.Metrics.Requests
	s.mux.Handle(pattern, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Inc(name)
		h.ServeHTTP(w, r)
	}))
}

// Handler returns the routes wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	return Chain(s.mux,
		logging.RequestLogger(s.opts.Logger),
		Recovery(s.opts.Metrics),
		tracing.Middleware,
		Compress(),
	)
}

// Swap installs snap as the page served from now on.
func (s *Server) Swap(snap *site.Snapshot) {
	s.snapshot.Store(snap)
}

// Snapshot returns the page currently served, or nil.
func (s *Server) Snapshot() *site.Snapshot {
	return s.snapshot.Load()
}

func (s *Server) checkSnapshot(context.Context) error {
	if s.snapshot.Load() == nil {
		return ErrNotReady
	}
	return nil
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	snap := s.snapshot.Load()
	if snap == nil {
		http.Error(w, ErrNotReady.Error(), http.StatusServiceUnavailable)
		return
	}

	h := w.Header()
	h.Set("ETag", snap.ETag)
	h.Set("Cache-Control", "no-cache")
	if etagMatch(r.Header.Get("If-None-Match"), snap.ETag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	h.Set("Content-Type", "text/html; charset=utf-8")
	h.Set("Last-Modified", snap.BuiltAt.UTC().Format(http.TimeFormat))
	h.Set("Content-Length", strconv.Itoa(len(snap.HTML)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(snap.HTML); err != nil {
		logging.L(r.Context()).Debug("write homepage", logging.Err(err))
	}
}

// etagMatch reports whether an If-None-Match header matches etag using weak
// comparison, so validators from compressed responses still hit.
func etagMatch(header, etag string) bool {
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == strings.TrimPrefix(etag, "W/") {
			return true
		}
	}
	return false
}

func (s *Server) handleFeatures(w http.ResponseWriter, r *http.Request) {
	snap := s.snapshot.Load()
	if snap == nil {
		http.Error(w, ErrNotReady.Error(), http.StatusServiceUnavailable)
		return
	}

	codec := Negotiate(r.Header.Get("Accept"))
	body, err := codec.Encode(snap.Catalog)
	if err != nil {
		logging.L(r.Context()).Error("encode features", logging.String("codec", codec.Name()), logging.Err(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", codec.ContentType())
	w.Header().Add("Vary", "Accept")
	w.Write(body)
}

// ListenAndServe serves until Shutdown is called. It returns nil after a
// clean shutdown.
func (s *Server) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln.
func (s *Server) Serve(ln net.Listener) error {
	s.opts.Logger.Info("listening", logging.String("addr", ln.Addr().String()))

	if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for active ones.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
