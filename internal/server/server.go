// Package server serves the rendered page over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/alexisbeaulieu97/pageshell/internal/app"
	"github.com/alexisbeaulieu97/pageshell/internal/logger"
	"github.com/alexisbeaulieu97/pageshell/internal/render/htmlrender"
)

// Route paths.
const (
	PathDocument   = "/"
	PathStylesheet = "/styles.css"
	PathHealth     = "/healthz"
)

const shutdownTimeout = 10 * time.Second

// Options configures the server.
type Options struct {
	Addr   string
	App    app.Options
	Logger *logger.Logger
}

// Server renders a fresh document for every request.
type Server struct {
	addr   string
	shell  *app.Shell
	log    *logger.Logger
	router chi.Router
}

// New creates a server and its routes.
func New(opts Options) *Server {
	if opts.App.Logger == nil {
		opts.App.Logger = opts.Logger
	}

	s := &Server{
		addr:  opts.Addr,
		shell: app.New(opts.App),
		log:   opts.Logger,
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger(opts.Logger))
	r.Use(chimiddleware.Recoverer)

	r.Get(PathDocument, s.handleDocument)
	r.Get(PathStylesheet, s.handleStylesheet)
	r.Get(PathHealth, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	s.router = r
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.With("addr", ln.Addr().String()).Info("server starting")
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.log.Info("shutdown complete")
	return nil
}

func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	doc := s.shell.Document()

	page := htmlrender.Page{
		Title:          doc.Title,
		Sheet:          doc.Sheet,
		Body:           doc.Body,
		StylesheetHref: PathStylesheet,
	}
	if r.URL.Query().Get("inline") == "1" {
		page.StylesheetHref = ""
	}

	out, err := htmlrender.String(page)
	if err != nil {
		s.log.Error(err, "render document")
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(out))
}

func (s *Server) handleStylesheet(w http.ResponseWriter, _ *http.Request) {
	doc := s.shell.Document()

	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	if _, err := doc.Sheet.WriteTo(w); err != nil {
		s.log.Error(err, "write stylesheet")
	}
}
