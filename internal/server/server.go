// Package server serves style previews over HTTP.
//
// The root page honours the preview link contract
// (?style=<id>&view=<mode>&preview=true); preview=true drops the navigation
// and info panels. The /api routes expose the registry and the generators.
// Unknown style ids are never an error: the response carries the configured
// default style and names it in the X-Style-Fallback header.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/thisguymartin/stylebook/internal/preview"
	"github.com/thisguymartin/stylebook/internal/style"
)

// FallbackHeader names the style substituted for an unknown id.
const FallbackHeader = "X-Style-Fallback"

// Options configures a Server.
type Options struct {
	// BaseURL is the public root used in generated preview links.
	BaseURL string
	// DefaultStyle is served when a request names no style or an unknown
	// one. Empty or unknown values select style.DefaultID.
	DefaultStyle string
	// DefaultView is used when a request does not name a view.
	DefaultView preview.ViewMode
	Logger      *log.Logger
}

// Server is the preview HTTP server.
type Server struct {
	opts     Options
	log      *log.Logger
	router   chi.Router
	fallback style.Record
}

// New builds a Server and its routes.
func New(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.DefaultView == "" {
		opts.DefaultView = preview.DefaultView
	}
	s := &Server{opts: opts, log: opts.Logger}
	s.fallback, _ = style.Resolve(opts.DefaultStyle)
	s.router = s.routes()
	return s
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.GetHead)

	r.Get("/", s.handlePage)
	r.Post("/intro/dismiss", s.handleDismissIntro)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/styles", s.handleList)
		r.Get("/categories", s.handleCategories)
		r.Route("/styles/{id}", func(r chi.Router) {
			r.Get("/", s.handleStyle)
			r.Get("/prompt", s.handlePrompt)
			r.Get("/markdown", s.handleMarkdown)
			r.Get("/swift", s.handleSwift)
			r.Get("/css", s.handleCSS)
		})
		r.Get("/skills.zip", s.handleSkills)
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully, waiting up to five seconds for in-flight requests.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info("serving previews", "addr", addr, "base", s.opts.BaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
